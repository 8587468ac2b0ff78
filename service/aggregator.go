package service

import (
	"context"

	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"
)

// ServiceAggregator answers queries from the dynamic, static and proxy stores.
// Local results are the union of dynamic and static services; a proxied type is answered by the upstream alone.
type ServiceAggregator struct {
	dynamic interfaces.DynamicStore
	static  interfaces.ConfigStore
	proxy   interfaces.ProxyStore
	tracker interfaces.InitializationTracker
}

var _ interfaces.ServiceAggregator = (*ServiceAggregator)(nil)

func NewServiceAggregator(
	dynamic interfaces.DynamicStore,
	static interfaces.ConfigStore,
	proxy interfaces.ProxyStore,
	tracker interfaces.InitializationTracker,
) *ServiceAggregator {
	return &ServiceAggregator{
		dynamic: helpers.NilPanic(dynamic, "service.aggregator.go: dynamic store is required"),
		static:  helpers.NilPanic(static, "service.aggregator.go: config store is required"),
		proxy:   helpers.NilPanic(proxy, "service.aggregator.go: proxy store is required"),
		tracker: helpers.NilPanic(tracker, "service.aggregator.go: initialization tracker is required"),
	}
}

func (a *ServiceAggregator) ready() error {
	if a.tracker.IsPending() {
		return NewServiceUnavailableError("registry is initializing", nil)
	}
	return nil
}

// GetAll returns every service, with proxied types replaced by their upstream services.
func (a *ServiceAggregator) GetAll(ctx context.Context) ([]domain.Service, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	static, err := a.static.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return a.proxy.FilterAndGetAll(domain.UnionServices(a.dynamic.GetAll(), static)), nil
}

// GetByType returns the services of serviceType.
func (a *ServiceAggregator) GetByType(ctx context.Context, serviceType string) ([]domain.Service, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if proxied, ok := a.proxy.GetByType(serviceType); ok {
		return domain.UnionServices(proxied), nil
	}
	static, err := a.static.GetByType(ctx, serviceType)
	if err != nil {
		return nil, err
	}
	return domain.UnionServices(a.dynamic.GetByType(serviceType), static), nil
}

// GetByTypeAndPool returns the services of serviceType in pool.
func (a *ServiceAggregator) GetByTypeAndPool(ctx context.Context, serviceType, pool string) ([]domain.Service, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if proxied, ok := a.proxy.GetByTypeAndPool(serviceType, pool); ok {
		return domain.UnionServices(proxied), nil
	}
	static, err := a.static.GetByTypeAndPool(ctx, serviceType, pool)
	if err != nil {
		return nil, err
	}
	return domain.UnionServices(a.dynamic.GetByTypeAndPool(serviceType, pool), static), nil
}
