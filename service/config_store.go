package service

import (
	"context"

	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ConfigStore holds the statically configured services. They never expire.
type ConfigStore struct {
	cache  interfaces.Cache[domain.Service]
	logger log.Logger
}

var _ interfaces.ConfigStore = (*ConfigStore)(nil)

func NewConfigStore(cache interfaces.Cache[domain.Service], logger log.Logger) *ConfigStore {
	return &ConfigStore{
		cache:  helpers.NilPanic(cache, "service.config_store.go: cache is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "service.config_store.go: logger is required"), "component", "ConfigStore"),
	}
}

// GetAll returns all static services.
func (s *ConfigStore) GetAll(ctx context.Context) ([]domain.Service, error) {
	services, err := s.cache.ListAllValues(ctx)
	if err != nil {
		return nil, NewInternalServerError("failed to read static services", err)
	}
	return domain.UnionServices(services), nil
}

func (s *ConfigStore) GetByType(ctx context.Context, serviceType string) ([]domain.Service, error) {
	services, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterByType(services, serviceType), nil
}

func (s *ConfigStore) GetByTypeAndPool(ctx context.Context, serviceType, pool string) ([]domain.Service, error) {
	services, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterByTypeAndPool(services, serviceType, pool), nil
}

// Put stores services under their ids, replacing earlier versions. Node ids are dropped: static services have no owner.
func (s *ConfigStore) Put(ctx context.Context, services []domain.Service) error {
	for _, svc := range services {
		if svc.ID.IsZero() {
			return NewBadParameterError("static service id is required", nil)
		}
		svc.NodeID = nil
		if err := s.cache.WriteValue(ctx, svc.ID.String(), svc, 0); err != nil {
			return NewInternalServerError("failed to store static service", err)
		}
		level.Info(s.logger).Log("msg", "static service stored", "id", svc.ID, "type", svc.Type, "pool", svc.Pool)
	}
	return nil
}

// Delete removes the static service id. Returns entity_not_found when it does not exist.
func (s *ConfigStore) Delete(ctx context.Context, id domain.ServiceID) error {
	// entity_not_found from the cache passes through
	svc, err := s.cache.GetValue(ctx, id.String())
	if err != nil {
		return NewInternalServerError("failed to read static service", err)
	}
	if err := s.cache.DeleteValue(ctx, id.String()); err != nil {
		return NewInternalServerError("failed to delete static service", err)
	}
	level.Info(s.logger).Log("msg", "static service deleted", "id", id, "type", svc.Type, "pool", svc.Pool)
	return nil
}
