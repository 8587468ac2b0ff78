// Package consul lists replicas as instances of a Consul agent service carrying a TTL check. An instance whose
// check is not refreshed turns critical and drops out of the peer list.
package consul

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsabin/discovery/adapters/membership"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hashicorp/consul/api"
)

// Kind is the membership kind of this package.
const Kind = "consul"

const (
	addressMeta = "address"
	// deregisterAfter is how long Consul keeps an instance whose check stays critical.
	deregisterAfter = time.Minute
)

func init() {
	membership.RegisterFactory(Kind, func(cfg membership.Config, logger log.Logger) (interfaces.Membership, error) {
		return New(cfg, logger)
	})
}

// Membership is a Consul backed peer list.
type Membership struct {
	client    *api.Client
	service   string
	serviceID string
	checkID   string
	self      string
	ttl       time.Duration
	logger    log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ interfaces.Membership = (*Membership)(nil)

// New creates a client of the agent at the first endpoint, or of the default agent when there is none.
func New(cfg membership.Config, logger log.Logger) (*Membership, error) {
	helpers.StrPanic(cfg.Self, "consul.go: self address is required")
	if cfg.TTL <= 0 {
		cfg.TTL = membership.DefaultTTL
	}

	consulConfig := api.DefaultConfig()
	if len(cfg.Endpoints) > 0 {
		consulConfig.Address = cfg.Endpoints[0]
	}
	client, err := api.NewClient(consulConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consul client: %w", err)
	}

	service := serviceName(cfg.Namespace)
	serviceID := service + "-" + cfg.Self
	return &Membership{
		client:    client,
		service:   service,
		serviceID: serviceID,
		checkID:   "service:" + serviceID,
		self:      cfg.Self,
		ttl:       cfg.TTL,
		logger:    logger,
	}, nil
}

func serviceName(namespace string) string {
	if namespace == "" {
		return "discovery"
	}
	return "discovery-" + namespace
}

// Register adds the local instance with a passing TTL check and keeps the check passing until Deregister.
func (m *Membership) Register(ctx context.Context) error {
	registration := &api.AgentServiceRegistration{
		ID:   m.serviceID,
		Name: m.service,
		Meta: map[string]string{addressMeta: m.self},
		Check: &api.AgentServiceCheck{
			CheckID:                        m.checkID,
			TTL:                            m.ttl.String(),
			DeregisterCriticalServiceAfter: deregisterAfter.String(),
		},
	}
	if err := m.client.Agent().ServiceRegisterOpts(registration, api.ServiceRegisterOpts{}.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to register service: %w", err)
	}
	if err := m.client.Agent().UpdateTTL(m.checkID, "", api.HealthPassing); err != nil {
		return fmt.Errorf("failed to pass check: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel == nil {
		var keepCtx context.Context
		keepCtx, m.cancel = context.WithCancel(context.Background())
		m.wg.Add(1)
		go m.keepAlive(keepCtx)
	}
	level.Info(m.logger).Log("msg", "registered", "service", m.service, "id", m.serviceID)
	return nil
}

func (m *Membership) keepAlive(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.client.Agent().UpdateTTL(m.checkID, "", api.HealthPassing); err != nil {
				level.Warn(m.logger).Log("msg", "failed to pass check", "err", err)
			}
		}
	}
}

func (m *Membership) stopKeepAlive() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()
	if cancel != nil {
		cancel()
		m.wg.Wait()
	}
}

// Peers lists the instances with passing checks.
func (m *Membership) Peers(ctx context.Context) ([]string, error) {
	entries, _, err := m.client.Health().Service(m.service, "", true, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to discover peers: %w", err)
	}
	addresses := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Service == nil {
			continue
		}
		addresses = append(addresses, entry.Service.Meta[addressMeta])
	}
	return membership.ExcludeSelf(addresses, m.self), nil
}

// Deregister stops refreshing the check and removes the local instance.
func (m *Membership) Deregister(context.Context) error {
	m.stopKeepAlive()
	if err := m.client.Agent().ServiceDeregister(m.serviceID); err != nil {
		return fmt.Errorf("failed to deregister service: %w", err)
	}
	return nil
}

// Close stops refreshing the check. The instance turns critical once its TTL passes.
func (m *Membership) Close() error {
	m.stopKeepAlive()
	return nil
}
