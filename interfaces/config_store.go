package interfaces

import (
	"context"

	"github.com/jsabin/discovery/domain"
)

// ConfigStore holds statically configured services. Queries never report absence, only possibly empty sets.
//
//go:generate moq -stub -out mock/config_store.go -pkg mock . ConfigStore
type ConfigStore interface {
	// GetAll returns all static services.
	// Returns:
	// 1) (services, nil), possibly empty;
	// 2) (nil, internal_server_error) when the backing storage fails.
	GetAll(ctx context.Context) ([]domain.Service, error)

	// GetByType returns the static services of the given type. Errors as GetAll.
	GetByType(ctx context.Context, serviceType string) ([]domain.Service, error)

	// GetByTypeAndPool returns the static services of the given type and pool. Errors as GetAll.
	GetByTypeAndPool(ctx context.Context, serviceType, pool string) ([]domain.Service, error)

	// Put stores the services, replacing any with the same id.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when the backing storage fails.
	Put(ctx context.Context, services []domain.Service) error

	// Delete removes the static service with the given id.
	// Returns:
	// 1) nil on success;
	// 2) entity_not_found when no such service exists;
	// 3) internal_server_error when the backing storage fails.
	Delete(ctx context.Context, id domain.ServiceID) error
}
