package service

import (
	"sync"

	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"
)

// ReplicationTask is the initialization task completed by the first replication cycle.
const ReplicationTask = "replication"

// InitializationTracker counts the startup tasks still running. Queries are refused while any is pending.
type InitializationTracker struct {
	mu      sync.Mutex
	pending map[string]struct{}
	ready   chan struct{}
	closed  bool
}

var _ interfaces.InitializationTracker = (*InitializationTracker)(nil)

func NewInitializationTracker() *InitializationTracker {
	return &InitializationTracker{
		pending: make(map[string]struct{}),
		ready:   make(chan struct{}),
	}
}

// Register adds a pending task and returns the func completing it. Calling the func more than once is harmless.
// Panics on an empty or already pending name, or when every task has already completed.
func (t *InitializationTracker) Register(name string) func() {
	helpers.StrPanic(name, "service.initialization_tracker.go: task name is required")
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		panic("service.initialization_tracker.go: register after initialization completed: " + name)
	}
	if _, ok := t.pending[name]; ok {
		panic("service.initialization_tracker.go: task already registered: " + name)
	}
	t.pending[name] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() { t.complete(name) })
	}
}

func (t *InitializationTracker) complete(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, name)
	if len(t.pending) == 0 && !t.closed {
		t.closed = true
		close(t.ready)
	}
}

// IsPending reports whether a registered task has not completed yet.
func (t *InitializationTracker) IsPending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending) > 0
}

// Ready is closed once every registered task has completed.
func (t *InitializationTracker) Ready() <-chan struct{} {
	return t.ready
}
