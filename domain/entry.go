package domain

import (
	"bytes"
	"time"
)

// Entry is the unit of replication: a versioned, TTL-bounded key/value pair.
// A tombstone records a deletion and carries no value; it expires like any other entry.
type Entry struct {
	Key       []byte
	Value     []byte
	Version   uint64
	MaxAge    time.Duration
	CreatedAt time.Time
	Tombstone bool
}

// ExpiresAt is the instant after which the entry is dead.
func (e Entry) ExpiresAt() time.Time {
	return e.CreatedAt.Add(e.MaxAge)
}

// Expired reports whether the entry is dead at now.
func (e Entry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt())
}

// Supersedes reports whether e wins over other for the same key. The order is total, so replicas
// that see the same pair of entries in any order keep the same winner:
// higher version, then live over tombstone, then the greater value byte-wise,
// then the longer max age, then the later creation time.
func (e Entry) Supersedes(other Entry) bool {
	if e.Version != other.Version {
		return e.Version > other.Version
	}
	if e.Tombstone != other.Tombstone {
		return !e.Tombstone
	}
	if c := bytes.Compare(e.Value, other.Value); c != 0 {
		return c > 0
	}
	if e.MaxAge != other.MaxAge {
		return e.MaxAge > other.MaxAge
	}
	return e.CreatedAt.After(other.CreatedAt)
}
