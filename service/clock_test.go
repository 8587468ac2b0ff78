package service

import (
	"sync"
	"testing"
	"time"

	"github.com/jsabin/discovery/interfaces/mock"

	"github.com/stretchr/testify/assert"
)

// testClock is a settable wall clock shared by the store tests.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *testClock) provider() *mock.TimeProviderMock {
	return &mock.TimeProviderMock{NowFunc: c.Now}
}

func TestNewTimeProvider(t *testing.T) {
	fixed := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)
	tp := NewTimeProvider(func() time.Time { return fixed })
	assert.Equal(t, fixed, tp.Now())

	assert.PanicsWithValue(t, "service.time_provider.go: now is required", func() {
		NewTimeProvider(nil)
	})
}

func TestVersionClock(t *testing.T) {
	clock := newTestClock()
	vc := NewVersionClock(clock.provider())

	first := vc.Next()
	assert.Equal(t, uint64(clock.Now().UnixNano()), first)

	second := vc.Next()
	assert.Equal(t, first+1, second, "same wall time must still produce increasing versions")

	clock.Advance(time.Second)
	third := vc.Next()
	assert.Equal(t, uint64(clock.Now().UnixNano()), third)

	remote := third + uint64(time.Hour)
	vc.Observe(remote)
	assert.Equal(t, remote+1, vc.Next(), "a version seen from a peer must be exceeded by the next local one")

	vc.Observe(1)
	assert.Equal(t, remote+2, vc.Next())
}
