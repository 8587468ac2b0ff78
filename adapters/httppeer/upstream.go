package httppeer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jsabin/discovery/api"
	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/interfaces"
)

// Upstream queries the registry of the proxied environment. URIs are tried in order until one answers.
type Upstream struct {
	client      *http.Client
	environment string
	uris        []string
}

var _ interfaces.Upstream = (*Upstream)(nil)

// NewUpstream creates an Upstream for environment served at uris. Panics without uris or environment.
func NewUpstream(client *http.Client, environment string, uris []string) *Upstream {
	if environment == "" {
		panic("httppeer.upstream.go: environment is required")
	}
	if len(uris) == 0 {
		panic("httppeer.upstream.go: at least one uri is required")
	}
	if client == nil {
		client = NewHTTPClient()
	}
	return &Upstream{client: client, environment: environment, uris: uris}
}

// GetServices returns the services of serviceType known upstream.
func (u *Upstream) GetServices(ctx context.Context, serviceType string) ([]domain.Service, error) {
	var errs []error
	for _, uri := range u.uris {
		services, err := u.getServices(ctx, uri, serviceType)
		if err == nil {
			return services, nil
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("no upstream answered for type %s, err: %w", serviceType, errors.Join(errs...))
}

func (u *Upstream) getServices(ctx context.Context, uri string, serviceType string) ([]domain.Service, error) {
	var resp api.ServicesResponse
	if err := doJSON(ctx, u.client, http.MethodGet, baseURL(uri)+"/v1/service/"+url.PathEscape(serviceType), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Environment != u.environment {
		return nil, fmt.Errorf("%s serves environment %q, expected %q", uri, resp.Environment, u.environment)
	}
	services, err := api.FromServiceRepresentations(resp.Services)
	if err != nil {
		return nil, fmt.Errorf("%s answered an invalid service, err: %w", uri, err)
	}
	return services, nil
}
