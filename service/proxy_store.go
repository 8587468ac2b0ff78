package service

import (
	"context"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ProxyTask is the initialization task completed once every proxied type has been fetched.
const ProxyTask = "proxy"

// ProxyStoreConfig configures a ProxyStore.
type ProxyStoreConfig struct {
	// Types is the allow-list of service types answered by the upstream environment.
	Types []string
	// RefreshInterval is the period between refresh rounds.
	RefreshInterval time.Duration
	// FetchTimeout bounds the upstream query for one type.
	FetchTimeout time.Duration
}

// ProxyStore caches the services of the proxied types as last seen in the upstream environment.
// Without an upstream or without types it proxies nothing.
type ProxyStore struct {
	types           []string
	proxied         map[string]struct{}
	refreshInterval time.Duration
	fetchTimeout    time.Duration
	upstream        interfaces.Upstream
	initialized     func()
	logger          log.Logger

	mu      sync.Mutex
	pending map[string]struct{} // proxied types not yet fetched successfully

	snapshot atomic.Pointer[map[string][]domain.Service]

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ interfaces.ProxyStore = (*ProxyStore)(nil)

// NewProxyStore creates a ProxyStore. upstream may be nil, which leaves the store unconfigured.
// A configured store registers ProxyTask with tracker.
func NewProxyStore(cfg ProxyStoreConfig, upstream interfaces.Upstream, tracker *InitializationTracker, logger log.Logger) *ProxyStore {
	helpers.NilPanic(tracker, "service.proxy_store.go: tracker is required")
	s := &ProxyStore{
		proxied:     make(map[string]struct{}),
		pending:     make(map[string]struct{}),
		initialized: func() {},
		logger:      log.WithPrefix(helpers.NilPanic(logger, "service.proxy_store.go: logger is required"), "component", "ProxyStore"),
	}
	if upstream == nil || len(cfg.Types) == 0 {
		return s
	}

	s.upstream = upstream
	s.refreshInterval = helpers.DurationPanic(cfg.RefreshInterval, "service.proxy_store.go: refresh interval must be positive")
	s.fetchTimeout = helpers.DurationPanic(cfg.FetchTimeout, "service.proxy_store.go: fetch timeout must be positive")
	initial := make(map[string][]domain.Service, len(cfg.Types))
	for _, t := range cfg.Types {
		if _, ok := s.proxied[t]; ok {
			continue
		}
		s.proxied[t] = struct{}{}
		s.types = append(s.types, t)
		s.pending[t] = struct{}{}
		initial[t] = []domain.Service{}
	}
	s.snapshot.Store(&initial)
	s.initialized = tracker.Register(ProxyTask)
	return s
}

// Configured reports whether the store proxies any type.
func (s *ProxyStore) Configured() bool {
	return s.upstream != nil
}

// GetByType returns the cached services of serviceType. The flag is false when serviceType is not proxied.
func (s *ProxyStore) GetByType(serviceType string) ([]domain.Service, bool) {
	if _, ok := s.proxied[serviceType]; !ok {
		return nil, false
	}
	return slices.Clone((*s.snapshot.Load())[serviceType]), true
}

// GetByTypeAndPool is GetByType narrowed to pool. A proxied type without services in pool yields an empty result.
func (s *ProxyStore) GetByTypeAndPool(serviceType, pool string) ([]domain.Service, bool) {
	services, ok := s.GetByType(serviceType)
	if !ok {
		return nil, false
	}
	return domain.FilterByTypeAndPool(services, serviceType, pool), true
}

// FilterAndGetAll returns every cached proxied service plus the candidates of types that are not proxied.
func (s *ProxyStore) FilterAndGetAll(candidates []domain.Service) []domain.Service {
	if !s.Configured() {
		return candidates
	}
	snapshot := *s.snapshot.Load()
	sets := make([][]domain.Service, 0, len(s.types)+1)
	for _, t := range s.types {
		sets = append(sets, snapshot[t])
	}
	local := make([]domain.Service, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := s.proxied[c.Type]; !ok {
			local = append(local, c)
		}
	}
	return domain.UnionServices(append(sets, local)...)
}

// Start refreshes immediately and then on every interval until ctx is done or Stop is called.
// It does nothing on an unconfigured store.
func (s *ProxyStore) Start(ctx context.Context) {
	if !s.Configured() {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.Refresh(ctx)

		ticker := time.NewTicker(s.refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Refresh(ctx)
			}
		}
	}()
}

// Stop ends the refresh loop and waits for the running round to finish.
func (s *ProxyStore) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// Refresh queries the upstream once per proxied type, concurrently, and swaps in the new snapshot.
// A type whose query fails keeps its previous services. ProxyTask completes on the round that leaves
// no proxied type without a successful fetch.
func (s *ProxyStore) Refresh(ctx context.Context) {
	if !s.Configured() {
		return
	}

	var mu sync.Mutex
	fetched := make(map[string][]domain.Service, len(s.types))
	var wg sync.WaitGroup
	for _, t := range s.types {
		wg.Add(1)
		go func() {
			defer wg.Done()
			services, err := s.fetch(ctx, t)
			if err != nil {
				level.Warn(s.logger).Log("msg", "failed to refresh proxied type", "type", t, "err", err)
				return
			}
			mu.Lock()
			fetched[t] = services
			mu.Unlock()
		}()
	}
	wg.Wait()

	next := maps.Clone(*s.snapshot.Load())
	maps.Copy(next, fetched)
	s.snapshot.Store(&next)

	if s.markFetched(fetched) {
		s.initialized()
	}
}

// markFetched records the successful types and reports whether none remain pending.
func (s *ProxyStore) markFetched(fetched map[string][]domain.Service) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for t := range fetched {
		delete(s.pending, t)
	}
	return len(s.pending) == 0
}

func (s *ProxyStore) fetch(ctx context.Context, serviceType string) ([]domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	services, err := s.upstream.GetServices(ctx, serviceType)
	if err != nil {
		return nil, err
	}
	// the upstream is asked for one type and must not widen it
	return domain.FilterByType(services, serviceType), nil
}
