package interfaces

import (
	"context"

	"github.com/jsabin/discovery/domain"
)

// ProxyStore exposes services of an upstream environment for an allow-list of types.
// The boolean result tells "not proxied" (false) apart from "proxied, nothing there" (true, empty).
//
//go:generate moq -stub -out mock/proxy_store.go -pkg mock . ProxyStore
type ProxyStore interface {
	// GetByType returns the last fetched services of serviceType.
	// Returns:
	// 1) (services, true) when serviceType is proxied, services may be empty;
	// 2) (nil, false) when serviceType is not proxied.
	GetByType(serviceType string) ([]domain.Service, bool)

	// GetByTypeAndPool is GetByType filtered to pool.
	GetByTypeAndPool(serviceType, pool string) ([]domain.Service, bool)

	// FilterAndGetAll returns every proxied service plus the candidates whose type is not proxied.
	FilterAndGetAll(candidates []domain.Service) []domain.Service
}

// Upstream queries the registry of another environment.
//
//go:generate moq -stub -out mock/upstream.go -pkg mock . Upstream
type Upstream interface {
	// GetServices fetches the services of serviceType.
	// Returns:
	// 1) (services, nil) on success, possibly empty;
	// 2) (nil, error) when no upstream answered or the answer is malformed.
	GetServices(ctx context.Context, serviceType string) ([]domain.Service, error)
}
