package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loopback routes exchanges to in-process stores by peer address.
func loopback(peers map[string]*DistributedStore) *mock.RemoteStoreMock {
	return &mock.RemoteStoreMock{
		ExchangeFunc: func(ctx context.Context, peer string, store string, entries []domain.Entry) ([]domain.Entry, error) {
			s, ok := peers[peer]
			if !ok {
				return nil, errors.New("connection refused")
			}
			return s.Exchange(entries), nil
		},
	}
}

func staticPeers(peers ...string) *mock.MembershipMock {
	return &mock.MembershipMock{
		PeersFunc: func(ctx context.Context) ([]string, error) {
			return peers, nil
		},
	}
}

func newTestReplicator(replica *DistributedStore, membership *mock.MembershipMock, remote *mock.RemoteStoreMock, initialized func()) *Replicator {
	return NewReplicator(ReplicatorConfig{
		Store:       "dynamic",
		Interval:    time.Hour,
		PeerTimeout: time.Second,
		TriggerRate: 1000,
	}, replica, replica.Changes(), membership, remote, initialized, log.NewNopLogger())
}

func TestNewReplicator_Panics(t *testing.T) {
	clock := newTestClock()
	store := newTestDistributedStore(clock)
	assert.PanicsWithValue(t, "service.replicator.go: store is required", func() {
		NewReplicator(ReplicatorConfig{Interval: time.Second, PeerTimeout: time.Second}, store, nil, staticPeers(), loopback(nil), func() {}, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.replicator.go: membership is required", func() {
		NewReplicator(ReplicatorConfig{Store: "dynamic", Interval: time.Second, PeerTimeout: time.Second}, store, nil, nil, loopback(nil), func() {}, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.replicator.go: initialized callback is required", func() {
		NewReplicator(ReplicatorConfig{Store: "dynamic", Interval: time.Second, PeerTimeout: time.Second}, store, nil, staticPeers(), loopback(nil), nil, log.NewNopLogger())
	})
}

func TestReplicator_CyclePropagatesBothWays(t *testing.T) {
	clock := newTestClock()
	a := newTestDistributedStore(clock)
	b := newTestDistributedStore(clock)
	a.Put([]byte("node-a"), []byte("from a"), time.Minute)
	b.Put([]byte("node-b"), []byte("from b"), time.Minute)

	remote := loopback(map[string]*DistributedStore{"b:8080": b})
	r := newTestReplicator(a, staticPeers("b:8080"), remote, func() {})
	r.Cycle(context.Background())

	want := map[string]string{"node-a": "from a", "node-b": "from b"}
	assert.Equal(t, want, liveEntries(a))
	assert.Equal(t, want, liveEntries(b))

	calls := remote.ExchangeCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "b:8080", calls[0].Peer)
	assert.Equal(t, "dynamic", calls[0].Store)
	_, hasDeadline := calls[0].Ctx.Deadline()
	assert.True(t, hasDeadline, "each exchange runs under the peer timeout")
}

func TestReplicator_CycleContinuesPastFailedPeer(t *testing.T) {
	clock := newTestClock()
	a := newTestDistributedStore(clock)
	c := newTestDistributedStore(clock)
	a.Put([]byte("node-a"), []byte("from a"), time.Minute)

	remote := loopback(map[string]*DistributedStore{"c:8080": c})
	r := newTestReplicator(a, staticPeers("down:8080", "c:8080"), remote, func() {})
	r.Cycle(context.Background())

	assert.Len(t, remote.ExchangeCalls(), 2)
	assert.Equal(t, map[string]string{"node-a": "from a"}, liveEntries(c))
}

func TestReplicator_CycleWithoutPeers(t *testing.T) {
	clock := newTestClock()
	a := newTestDistributedStore(clock)
	remote := loopback(nil)

	newTestReplicator(a, staticPeers(), remote, func() {}).Cycle(context.Background())
	assert.Empty(t, remote.ExchangeCalls())

	failing := &mock.MembershipMock{
		PeersFunc: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("zookeeper session expired")
		},
	}
	newTestReplicator(a, failing, remote, func() {}).Cycle(context.Background())
	assert.Empty(t, remote.ExchangeCalls())
}

func TestReplicator_StartMarksInitializedAfterFirstCycle(t *testing.T) {
	clock := newTestClock()
	a := newTestDistributedStore(clock)
	b := newTestDistributedStore(clock)
	b.Put([]byte("node-b"), []byte("from b"), time.Minute)

	var initialized atomic.Bool
	var sawPeerState atomic.Bool
	r := newTestReplicator(a, staticPeers("b:8080"), loopback(map[string]*DistributedStore{"b:8080": b}), func() {
		_, ok := a.Get([]byte("node-b"))
		sawPeerState.Store(ok)
		initialized.Store(true)
	})
	r.Start(context.Background())
	defer r.Stop()

	require.Eventually(t, initialized.Load, time.Second, time.Millisecond)
	assert.True(t, sawPeerState.Load(), "readiness follows the first completed exchange")
}

func TestReplicator_LocalWriteTriggersEarlyCycle(t *testing.T) {
	clock := newTestClock()
	a := newTestDistributedStore(clock)
	b := newTestDistributedStore(clock)

	var initialized atomic.Bool
	r := newTestReplicator(a, staticPeers("b:8080"), loopback(map[string]*DistributedStore{"b:8080": b}), func() {
		initialized.Store(true)
	})
	r.Start(context.Background())
	defer r.Stop()
	require.Eventually(t, initialized.Load, time.Second, time.Millisecond)

	a.Put([]byte("node-a"), []byte("from a"), time.Minute)
	require.Eventually(t, func() bool {
		_, ok := b.Get([]byte("node-a"))
		return ok
	}, time.Second, time.Millisecond, "the write reaches the peer long before the hourly tick")
}

func TestReplicator_StopIsSafeBeforeStart(t *testing.T) {
	clock := newTestClock()
	r := newTestReplicator(newTestDistributedStore(clock), staticPeers(), loopback(nil), func() {})
	assert.NotPanics(t, r.Stop)
}
