package service

import (
	"sync/atomic"

	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"
)

// VersionClock issues entry versions: the wall clock in nanoseconds, bumped past the last issued or observed
// version so versions never repeat and a local write always supersedes what this replica has already seen.
type VersionClock struct {
	now  interfaces.TimeProvider
	last atomic.Uint64
}

// NewVersionClock creates a VersionClock reading wall time from now. Panics on nil now.
func NewVersionClock(now interfaces.TimeProvider) *VersionClock {
	return &VersionClock{now: helpers.NilPanic(now, "service.version_clock.go: time provider is required")}
}

// Next returns a version greater than every version issued or observed before.
func (c *VersionClock) Next() uint64 {
	for {
		last := c.last.Load()
		next := uint64(c.now.Now().UnixNano())
		if next <= last {
			next = last + 1
		}
		if c.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// Observe records a version seen on a peer.
func (c *VersionClock) Observe(version uint64) {
	for {
		last := c.last.Load()
		if version <= last || c.last.CompareAndSwap(last, version) {
			return
		}
	}
}
