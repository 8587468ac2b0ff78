package interfaces

import (
	"context"

	"github.com/jsabin/discovery/domain"
)

// ServiceAggregator answers service queries by merging the dynamic, config and proxy stores.
//
//go:generate moq -stub -out mock/service_aggregator.go -pkg mock . ServiceAggregator
type ServiceAggregator interface {
	// GetAll returns every known service.
	// Returns:
	// 1) (services, nil), possibly empty;
	// 2) (nil, service_unavailable) while initialization is pending;
	// 3) (nil, internal_server_error) when the config store fails.
	GetAll(ctx context.Context) ([]domain.Service, error)

	// GetByType returns the services of serviceType. Errors as GetAll.
	GetByType(ctx context.Context, serviceType string) ([]domain.Service, error)

	// GetByTypeAndPool returns the services of serviceType in pool. Errors as GetAll.
	GetByTypeAndPool(ctx context.Context, serviceType, pool string) ([]domain.Service, error)
}
