package interfaces

import (
	"iter"
	"time"

	"github.com/jsabin/discovery/domain"
)

// DistributedStore is an eventually consistent key to Entry map replicated across registry peers.
// None of its methods block on network I/O.
//
//go:generate moq -stub -out mock/distributed_store.go -pkg mock . DistributedStore
type DistributedStore interface {
	// Put inserts or overwrites the entry for key with a fresh version, expiring after maxAge.
	Put(key []byte, value []byte, maxAge time.Duration)

	// Delete tombstones key so the deletion replicates to peers.
	Delete(key []byte)

	// Get returns the live entry for key.
	// Returns:
	// 1) (entry, true) when a live entry exists;
	// 2) (zero, false) when the key is absent, deleted or expired.
	Get(key []byte) (domain.Entry, bool)

	// GetAll returns a restartable sequence of all live entries. Deleted and expired entries are never yielded.
	GetAll() iter.Seq[domain.Entry]
}

// Replica is the replication side of a DistributedStore.
//
//go:generate moq -stub -out mock/replica.go -pkg mock . Replica
type Replica interface {
	// Snapshot returns every live entry and every unexpired tombstone.
	Snapshot() []domain.Entry

	// Apply merges entries received from a peer and returns how many of them replaced local state.
	Apply(entries []domain.Entry) int

	// Exchange applies the sender's entries and returns the local entries the sender is missing or holds an older version of.
	Exchange(entries []domain.Entry) []domain.Entry
}
