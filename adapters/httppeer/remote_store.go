package httppeer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jsabin/discovery/api"
	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/interfaces"
)

// RemoteStore exchanges store entries with peers through POST /v1/store/{store}/exchange.
type RemoteStore struct {
	client *http.Client
}

var _ interfaces.RemoteStore = (*RemoteStore)(nil)

func NewRemoteStore(client *http.Client) *RemoteStore {
	if client == nil {
		client = NewHTTPClient()
	}
	return &RemoteStore{client: client}
}

// Exchange sends entries to peer and returns the peer's answer.
func (r *RemoteStore) Exchange(ctx context.Context, peer string, store string, entries []domain.Entry) ([]domain.Entry, error) {
	target := baseURL(peer) + "/v1/store/" + url.PathEscape(store) + "/exchange"
	var resp api.ExchangeResponse
	if err := doJSON(ctx, r.client, http.MethodPost, target, api.ExchangeRequest{Entries: api.ToExchangeEntries(entries)}, &resp); err != nil {
		return nil, fmt.Errorf("exchange with %s failed, err: %w", peer, err)
	}
	return api.FromExchangeEntries(resp.Entries), nil
}
