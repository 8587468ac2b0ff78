// Package membership tells a replica who its peers are. Backends register a Factory under their kind from init,
// so a binary supports the kinds whose packages it imports.
package membership

import (
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/jsabin/discovery/interfaces"

	"github.com/go-kit/log"
)

// DefaultTTL is how long a registration outlives a replica that stopped refreshing it.
const DefaultTTL = 15 * time.Second

// Config is shared by every backend. Backends ignore the fields they don't need.
type Config struct {
	Kind string
	// Endpoints are the backend servers.
	Endpoints []string
	// Self is the address peers reach the local replica at.
	Self string
	// Peers is the fixed peer list of the static kind.
	Peers []string
	// Namespace separates registries of different environments sharing a backend.
	Namespace string
	// TTL bounds how long a dead replica stays listed. DefaultTTL when zero.
	TTL time.Duration
}

// Factory creates the membership of one kind.
type Factory func(cfg Config, logger log.Logger) (interfaces.Membership, error)

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// RegisterFactory makes kind available to New. A later registration of the same kind replaces the earlier one.
func RegisterFactory(kind string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[kind] = factory
}

// Kinds returns the registered kinds, sorted.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	kinds := make([]string, 0, len(factories))
	for kind := range factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// New creates the membership of cfg.Kind.
func New(cfg Config, logger log.Logger) (interfaces.Membership, error) {
	mu.RLock()
	factory, ok := factories[cfg.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported membership kind: %q, known kinds: %v", cfg.Kind, Kinds())
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return factory(cfg, log.WithPrefix(logger, "component", "Membership", "kind", cfg.Kind))
}

// ExcludeSelf returns the distinct non-empty addresses other than self, sorted.
func ExcludeSelf(addresses []string, self string) []string {
	peers := make([]string, 0, len(addresses))
	for _, address := range addresses {
		if address == "" || address == self {
			continue
		}
		peers = append(peers, address)
	}
	sort.Strings(peers)
	return slices.Compact(peers)
}
