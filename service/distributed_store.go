package service

import (
	"bytes"
	"context"
	"iter"
	"sync"
	"time"

	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/zhangyunhao116/skipmap"
)

type entryTable = skipmap.FuncMap[string, domain.Entry]

// DistributedStoreConfig configures a DistributedStore.
type DistributedStoreConfig struct {
	// Name identifies the store on the replication wire.
	Name string
	// TombstoneMaxAge is how long a deletion is remembered and replicated before it is purged.
	TombstoneMaxAge time.Duration
	// SweepInterval is the period of the expiry sweep.
	SweepInterval time.Duration
}

// DistributedStore is the local replica of an eventually consistent key to Entry map.
// Writers (local Put/Delete and Apply of peer state) are serialized by writeMu and resolve conflicts with
// domain.Entry.Supersedes; readers go straight to the lock-free skipmap and see whole entries only.
type DistributedStore struct {
	name            string
	tombstoneMaxAge time.Duration
	sweepInterval   time.Duration
	now             interfaces.TimeProvider
	clock           *VersionClock
	logger          log.Logger

	writeMu sync.Mutex
	entries *entryTable
	changes chan struct{}

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDistributedStore creates an empty store. Panics on an empty name, non-positive durations or nil collaborators.
func NewDistributedStore(cfg DistributedStoreConfig, now interfaces.TimeProvider, logger log.Logger) *DistributedStore {
	name := helpers.StrPanic(cfg.Name, "service.distributed_store.go: name is required")
	return &DistributedStore{
		name:            name,
		tombstoneMaxAge: helpers.DurationPanic(cfg.TombstoneMaxAge, "service.distributed_store.go: tombstone max age must be positive"),
		sweepInterval:   helpers.DurationPanic(cfg.SweepInterval, "service.distributed_store.go: sweep interval must be positive"),
		now:             helpers.NilPanic(now, "service.distributed_store.go: time provider is required"),
		clock:           NewVersionClock(now),
		logger:          log.WithPrefix(helpers.NilPanic(logger, "service.distributed_store.go: logger is required"), "component", "DistributedStore", "store", name),
		entries: skipmap.NewFunc[string, domain.Entry](func(a, b string) bool {
			return a < b
		}),
		changes: make(chan struct{}, 1),
	}
}

// Name returns the replication name of the store.
func (s *DistributedStore) Name() string {
	return s.name
}

// Changes fires after local writes. Signals coalesce: one pending signal stands for any number of writes.
func (s *DistributedStore) Changes() <-chan struct{} {
	return s.changes
}

// Put inserts or overwrites the entry for key. A nil value is stored as empty.
func (s *DistributedStore) Put(key []byte, value []byte, maxAge time.Duration) {
	if value == nil {
		value = []byte{}
	}
	s.write(domain.Entry{Key: bytes.Clone(key), Value: bytes.Clone(value), MaxAge: maxAge})
}

// Delete replaces the entry for key with a tombstone, also when the key is unknown locally,
// so the deletion reaches peers that still hold it.
func (s *DistributedStore) Delete(key []byte) {
	s.write(domain.Entry{Key: bytes.Clone(key), MaxAge: s.tombstoneMaxAge, Tombstone: true})
}

func (s *DistributedStore) write(e domain.Entry) {
	s.writeMu.Lock()
	e.Version = s.clock.Next()
	e.CreatedAt = s.now.Now()
	s.entries.Store(string(e.Key), e)
	s.writeMu.Unlock()

	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// Get returns the live entry for key.
func (s *DistributedStore) Get(key []byte) (domain.Entry, bool) {
	e, ok := s.entries.Load(string(key))
	if !ok || e.Tombstone || e.Expired(s.now.Now()) {
		return domain.Entry{}, false
	}
	return e, true
}

// GetAll yields the live entries in key order. Every iteration reads the table afresh.
func (s *DistributedStore) GetAll() iter.Seq[domain.Entry] {
	return func(yield func(domain.Entry) bool) {
		now := s.now.Now()
		s.entries.Range(func(_ string, e domain.Entry) bool {
			if e.Tombstone || e.Expired(now) {
				return true
			}
			return yield(e)
		})
	}
}

// Snapshot returns the live entries and the unexpired tombstones.
func (s *DistributedStore) Snapshot() []domain.Entry {
	now := s.now.Now()
	out := make([]domain.Entry, 0, s.entries.Len())
	s.entries.Range(func(_ string, e domain.Entry) bool {
		if !e.Expired(now) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Apply merges entries received from a peer. Entries already dead on arrival are dropped, a dead local
// entry counts as absent. Returns the number of entries that replaced local state.
func (s *DistributedStore) Apply(entries []domain.Entry) int {
	now := s.now.Now()
	applied := 0

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	for _, e := range entries {
		if len(e.Key) == 0 || e.Expired(now) {
			continue
		}
		s.clock.Observe(e.Version)
		k := string(e.Key)
		if current, ok := s.entries.Load(k); ok && !current.Expired(now) && !e.Supersedes(current) {
			continue
		}
		e.Key = bytes.Clone(e.Key)
		e.Value = bytes.Clone(e.Value)
		s.entries.Store(k, e)
		applied++
	}
	return applied
}

// Exchange applies the sender's entries and answers with every local entry that supersedes the sender's
// version of the key or that the sender did not send at all.
func (s *DistributedStore) Exchange(entries []domain.Entry) []domain.Entry {
	s.Apply(entries)

	theirs := make(map[string]domain.Entry, len(entries))
	for _, e := range entries {
		k := string(e.Key)
		if prev, ok := theirs[k]; !ok || e.Supersedes(prev) {
			theirs[k] = e
		}
	}

	out := make([]domain.Entry, 0)
	for _, local := range s.Snapshot() {
		if remote, ok := theirs[string(local.Key)]; ok && !local.Supersedes(remote) {
			continue
		}
		out = append(out, local)
	}
	return out
}

// Start runs the expiry sweep until ctx is done or Stop is called.
func (s *DistributedStore) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := s.sweep(); removed > 0 {
					level.Debug(s.logger).Log("msg", "expired entries removed", "count", removed)
				}
			}
		}
	}()
}

// Stop ends the expiry sweep and waits for it to exit.
func (s *DistributedStore) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// sweep physically removes dead entries and tombstones. Returns the number of removed keys.
func (s *DistributedStore) sweep() int {
	now := s.now.Now()
	var dead []string
	s.entries.Range(func(k string, e domain.Entry) bool {
		if e.Expired(now) {
			dead = append(dead, k)
		}
		return true
	})
	if len(dead) == 0 {
		return 0
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	removed := 0
	for _, k := range dead {
		// a peer may have replaced the entry since the scan
		if e, ok := s.entries.Load(k); ok && e.Expired(now) {
			s.entries.Delete(k)
			removed++
		}
	}
	return removed
}
