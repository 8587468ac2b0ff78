// Package httppeer talks to other registries over their HTTP API: peer replicas for anti-entropy and the
// upstream environment for proxied services.
package httppeer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
)

// maxErrorBody bounds how much of an error response ends up in the returned error.
const maxErrorBody = 512

// NewHTTPClient creates the pooled client shared by the peer and upstream adapters. Timeouts come from the
// request context.
func NewHTTPClient() *http.Client {
	return cleanhttp.DefaultPooledClient()
}

// baseURL turns a peer address into a base URL. Bare host:port addresses default to http.
func baseURL(address string) string {
	address = strings.TrimRight(address, "/")
	if strings.Contains(address, "://") {
		return address
	}
	return "http://" + address
}

// doJSON sends in (when not nil) as JSON and decodes a 200 response into out.
func doJSON(ctx context.Context, client *http.Client, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("can't marshal request, err: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("can't build request, err: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed, err: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%s %s answered %d: %s", method, url, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("can't decode response of %s %s, err: %w", method, url, err)
	}
	return nil
}
