// Package etcd lists replicas as keys under /{namespace}/replicas/ bound to a lease the replica keeps alive.
package etcd

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/jsabin/discovery/adapters/membership"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	clientv3 "go.etcd.io/etcd/client/v3"
)

// Kind is the membership kind of this package.
const Kind = "etcd"

const dialTimeout = 5 * time.Second

func init() {
	membership.RegisterFactory(Kind, func(cfg membership.Config, logger log.Logger) (interfaces.Membership, error) {
		return New(cfg, logger)
	})
}

// Membership is an etcd backed peer list.
type Membership struct {
	client *clientv3.Client
	prefix string
	self   string
	ttl    time.Duration
	logger log.Logger

	mu      sync.Mutex
	leaseID clientv3.LeaseID
	cancel  context.CancelFunc
}

var _ interfaces.Membership = (*Membership)(nil)

// New creates a client of cfg.Endpoints. The lease TTL is cfg.TTL rounded down to seconds, at least one.
func New(cfg membership.Config, logger log.Logger) (*Membership, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, errors.New("etcd membership requires endpoints")
	}
	helpers.StrPanic(cfg.Self, "etcd.go: self address is required")

	client, err := clientv3.New(clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: dialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("etcd connect: %w", err)
	}
	return &Membership{
		client: client,
		prefix: path.Join("/", cfg.Namespace, "replicas") + "/",
		self:   cfg.Self,
		ttl:    cfg.TTL,
		logger: logger,
	}, nil
}

func leaseSeconds(ttl time.Duration) int64 {
	return max(int64(ttl/time.Second), 1)
}

// Register puts the local key under a fresh lease and keeps the lease alive until Deregister or Close.
func (m *Membership) Register(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return nil
	}

	lease, err := m.client.Grant(ctx, leaseSeconds(m.ttl))
	if err != nil {
		return fmt.Errorf("etcd grant: %w", err)
	}
	if _, err := m.client.Put(ctx, m.prefix+m.self, m.self, clientv3.WithLease(lease.ID)); err != nil {
		return fmt.Errorf("etcd put: %w", err)
	}

	keepCtx, cancel := context.WithCancel(context.Background())
	ch, err := m.client.KeepAlive(keepCtx, lease.ID)
	if err != nil {
		cancel()
		return fmt.Errorf("etcd keepalive: %w", err)
	}
	go func() {
		for range ch {
		}
		if keepCtx.Err() == nil {
			level.Warn(m.logger).Log("msg", "lease keepalive stopped", "lease", lease.ID)
		}
	}()

	m.leaseID = lease.ID
	m.cancel = cancel
	level.Info(m.logger).Log("msg", "registered", "key", m.prefix+m.self, "lease", lease.ID)
	return nil
}

// Peers lists the values under the replicas prefix.
func (m *Membership) Peers(ctx context.Context) ([]string, error) {
	resp, err := m.client.Get(ctx, m.prefix, clientv3.WithPrefix())
	if err != nil {
		return nil, fmt.Errorf("etcd get: %w", err)
	}
	addresses := make([]string, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		addresses = append(addresses, string(kv.Value))
	}
	return membership.ExcludeSelf(addresses, m.self), nil
}

// Deregister revokes the lease, which deletes the local key.
func (m *Membership) Deregister(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel == nil {
		return nil
	}
	m.cancel()
	m.cancel = nil
	if _, err := m.client.Revoke(ctx, m.leaseID); err != nil {
		return fmt.Errorf("etcd revoke: %w", err)
	}
	return nil
}

func (m *Membership) Close() error {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()
	return m.client.Close()
}
