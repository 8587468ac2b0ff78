package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(serviceType, pool, location string, withNode bool) domain.Service {
	s := domain.Service{
		ID:         domain.NewID[domain.ServiceKind](),
		Type:       serviceType,
		Pool:       pool,
		Location:   location,
		Properties: map[string]string{"key": location},
	}
	if withNode {
		s.NodeID = helpers.Ptr(domain.NewID[domain.NodeKind]())
	}
	return s
}

// upstreamOf answers like a registry holding services.
func upstreamOf(services ...domain.Service) *mock.UpstreamMock {
	return &mock.UpstreamMock{
		GetServicesFunc: func(ctx context.Context, serviceType string) ([]domain.Service, error) {
			return domain.FilterByType(services, serviceType), nil
		},
	}
}

func newTestProxyStore(upstream *mock.UpstreamMock, tracker *InitializationTracker, types ...string) *ProxyStore {
	return NewProxyStore(ProxyStoreConfig{
		Types:           types,
		RefreshInterval: time.Hour,
		FetchTimeout:    time.Second,
	}, upstream, tracker, log.NewNopLogger())
}

func TestProxyStore_Unconfigured(t *testing.T) {
	candidates := []domain.Service{testService("type", "pool", "/location", true)}

	for name, s := range map[string]*ProxyStore{
		"no upstream": NewProxyStore(ProxyStoreConfig{Types: []string{"storage"}}, nil, NewInitializationTracker(), log.NewNopLogger()),
		"no types":    NewProxyStore(ProxyStoreConfig{}, upstreamOf(), NewInitializationTracker(), log.NewNopLogger()),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, s.Configured())
			assert.Equal(t, candidates, s.FilterAndGetAll(candidates))

			services, proxied := s.GetByType("type")
			assert.False(t, proxied)
			assert.Nil(t, services)
			_, proxied = s.GetByTypeAndPool("type", "pool")
			assert.False(t, proxied)

			s.Start(context.Background())
			s.Refresh(context.Background())
			s.Stop()
		})
	}

	tracker := NewInitializationTracker()
	NewProxyStore(ProxyStoreConfig{}, nil, tracker, log.NewNopLogger())
	assert.False(t, tracker.IsPending(), "an unconfigured store never holds up readiness")
}

func TestProxyStore_Proxy(t *testing.T) {
	for _, withNode := range []bool{true, false} {
		t.Run(map[bool]string{true: "dynamic", false: "static"}[withNode], func(t *testing.T) {
			service1 := testService("storage", "pool1", "/location/1", withNode)
			service2 := testService("storage", "pool2", "/location/2", withNode)
			service3 := testService("customer", "general", "/location/3", withNode)
			upstream := upstreamOf(service1, service2, service3)

			s := newTestProxyStore(upstream, NewInitializationTracker(), "storage", "customer", "auth")
			s.Refresh(context.Background())
			assert.Len(t, upstream.GetServicesCalls(), 3)

			service4 := testService("storage", "pool1", "/location/4", withNode)
			service5 := testService("auth", "pool3", "/location/5", withNode)
			service6 := testService("event", "general", "/location/6", withNode)
			assert.ElementsMatch(t,
				[]domain.Service{service1, service2, service3, service6},
				s.FilterAndGetAll([]domain.Service{service4, service5, service6}))

			tests := []struct {
				serviceType string
				pool        string
				want        []domain.Service
				proxied     bool
			}{
				{serviceType: "storage", want: []domain.Service{service1, service2}, proxied: true},
				{serviceType: "customer", want: []domain.Service{service3}, proxied: true},
				{serviceType: "auth", want: []domain.Service{}, proxied: true},
				{serviceType: "event"},
				{serviceType: "storage", pool: "pool1", want: []domain.Service{service1}, proxied: true},
				{serviceType: "storage", pool: "pool2", want: []domain.Service{service2}, proxied: true},
				{serviceType: "customer", pool: "general", want: []domain.Service{service3}, proxied: true},
				{serviceType: "customer", pool: "pool3", want: []domain.Service{}, proxied: true},
				{serviceType: "auth", pool: "pool3", want: []domain.Service{}, proxied: true},
				{serviceType: "event", pool: "general"},
			}
			for _, tt := range tests {
				var got []domain.Service
				var proxied bool
				if tt.pool == "" {
					got, proxied = s.GetByType(tt.serviceType)
				} else {
					got, proxied = s.GetByTypeAndPool(tt.serviceType, tt.pool)
				}
				assert.Equal(t, tt.proxied, proxied, "%s/%s", tt.serviceType, tt.pool)
				if tt.proxied {
					assert.NotNil(t, got, "%s/%s", tt.serviceType, tt.pool)
					assert.ElementsMatch(t, tt.want, got, "%s/%s", tt.serviceType, tt.pool)
				} else {
					assert.Nil(t, got, "%s/%s", tt.serviceType, tt.pool)
				}
			}
		})
	}
}

func TestProxyStore_ProxiedTypeIsEmptyBeforeFirstRefresh(t *testing.T) {
	s := newTestProxyStore(upstreamOf(), NewInitializationTracker(), "storage")
	services, proxied := s.GetByType("storage")
	assert.True(t, proxied)
	assert.Empty(t, services)
	assert.NotNil(t, services)
}

func TestProxyStore_FailedTypeKeepsPreviousSnapshot(t *testing.T) {
	storage := testService("storage", "pool1", "/location/1", false)
	customer := testService("customer", "general", "/location/2", false)
	var failing atomic.Bool
	upstream := &mock.UpstreamMock{
		GetServicesFunc: func(ctx context.Context, serviceType string) ([]domain.Service, error) {
			if serviceType == "storage" && failing.Load() {
				return nil, errors.New("connection reset")
			}
			if serviceType == "storage" {
				return []domain.Service{storage}, nil
			}
			return []domain.Service{customer}, nil
		},
	}
	s := newTestProxyStore(upstream, NewInitializationTracker(), "storage", "customer")
	s.Refresh(context.Background())

	customerUpdated := testService("customer", "general", "/location/3", false)
	customer = customerUpdated
	failing.Store(true)
	s.Refresh(context.Background())

	got, _ := s.GetByType("storage")
	assert.Equal(t, []domain.Service{storage}, got)
	got, _ = s.GetByType("customer")
	assert.Equal(t, []domain.Service{customerUpdated}, got)
}

func TestProxyStore_DropsServicesOfOtherTypes(t *testing.T) {
	upstream := &mock.UpstreamMock{
		GetServicesFunc: func(ctx context.Context, serviceType string) ([]domain.Service, error) {
			return []domain.Service{testService("storage", "p", "/1", false), testService("web", "p", "/2", false)}, nil
		},
	}
	s := newTestProxyStore(upstream, NewInitializationTracker(), "storage")
	s.Refresh(context.Background())

	got, _ := s.GetByType("storage")
	require.Len(t, got, 1)
	assert.Equal(t, "storage", got[0].Type)
}

func TestProxyStore_FetchTimeout(t *testing.T) {
	upstream := &mock.UpstreamMock{
		GetServicesFunc: func(ctx context.Context, serviceType string) ([]domain.Service, error) {
			if serviceType == "slow" {
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return []domain.Service{testService(serviceType, "p", "/1", false)}, nil
		},
	}
	s := NewProxyStore(ProxyStoreConfig{
		Types:           []string{"slow", "fast"},
		RefreshInterval: time.Hour,
		FetchTimeout:    10 * time.Millisecond,
	}, upstream, NewInitializationTracker(), log.NewNopLogger())

	s.Refresh(context.Background())
	got, _ := s.GetByType("fast")
	assert.Len(t, got, 1, "a stalled type does not starve the others")
	got, _ = s.GetByType("slow")
	assert.Empty(t, got)
}

func TestProxyStore_StartCompletesInitialization(t *testing.T) {
	tracker := NewInitializationTracker()
	service1 := testService("storage", "pool1", "/location/1", false)
	s := newTestProxyStore(upstreamOf(service1), tracker, "storage")
	assert.True(t, tracker.IsPending())

	s.Start(context.Background())
	defer s.Stop()
	require.Eventually(t, func() bool { return !tracker.IsPending() }, time.Second, time.Millisecond)

	got, proxied := s.GetByType("storage")
	assert.True(t, proxied)
	assert.Equal(t, []domain.Service{service1}, got, "readiness waits for the first refresh")
}

func TestProxyStore_InitializationWaitsForSuccessfulFetch(t *testing.T) {
	storage := testService("storage", "pool1", "/location/1", false)
	search := testService("search", "pool1", "/location/2", false)

	tests := []struct {
		name   string
		broken map[string]bool
		types  []string
	}{
		{name: "every type fails", broken: map[string]bool{"storage": true, "search": true}, types: []string{"storage", "search"}},
		{name: "one type fails", broken: map[string]bool{"search": true}, types: []string{"storage", "search"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var recovered atomic.Bool
			upstream := &mock.UpstreamMock{
				GetServicesFunc: func(ctx context.Context, serviceType string) ([]domain.Service, error) {
					if tt.broken[serviceType] && !recovered.Load() {
						return nil, errors.New("connection refused")
					}
					return domain.FilterByType([]domain.Service{storage, search}, serviceType), nil
				},
			}
			tracker := NewInitializationTracker()
			s := newTestProxyStore(upstream, tracker, tt.types...)

			s.Refresh(context.Background())
			s.Refresh(context.Background())
			assert.True(t, tracker.IsPending(), "a type without a successful fetch holds up readiness")

			recovered.Store(true)
			s.Refresh(context.Background())
			assert.False(t, tracker.IsPending())

			recovered.Store(false)
			s.Refresh(context.Background())
			assert.False(t, tracker.IsPending(), "later failures do not revoke readiness")
		})
	}
}

func TestProxyStore_StartStaysPendingUntilUpstreamRecovers(t *testing.T) {
	service1 := testService("storage", "pool1", "/location/1", false)
	var calls atomic.Int32
	upstream := &mock.UpstreamMock{
		GetServicesFunc: func(ctx context.Context, serviceType string) ([]domain.Service, error) {
			if calls.Add(1) <= 3 {
				return nil, errors.New("connection refused")
			}
			return []domain.Service{service1}, nil
		},
	}
	tracker := NewInitializationTracker()
	s := NewProxyStore(ProxyStoreConfig{
		Types:           []string{"storage"},
		RefreshInterval: 10 * time.Millisecond,
		FetchTimeout:    time.Second,
	}, upstream, tracker, log.NewNopLogger())

	s.Start(context.Background())
	defer s.Stop()
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)
	assert.True(t, tracker.IsPending(), "a failed first round leaves the registry unready")

	require.Eventually(t, func() bool { return !tracker.IsPending() }, time.Second, time.Millisecond)
	assert.GreaterOrEqual(t, calls.Load(), int32(4))
	got, proxied := s.GetByType("storage")
	assert.True(t, proxied)
	assert.Equal(t, []domain.Service{service1}, got)
}
