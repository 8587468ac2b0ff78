package service

import (
	"context"
	"sync"
	"time"

	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/time/rate"
)

// ReplicatorConfig configures a Replicator.
type ReplicatorConfig struct {
	// Store is the name peers know the replicated store by.
	Store string
	// Interval is the period of the anti-entropy cycle.
	Interval time.Duration
	// PeerTimeout bounds a single exchange with one peer.
	PeerTimeout time.Duration
	// TriggerRate is the number of early cycles per second allowed after local writes. 0 disables early cycles.
	TriggerRate float64
}

// Replicator runs anti-entropy for one store: every cycle it sends the store snapshot to each peer
// and applies what the peer answers with.
type Replicator struct {
	store       string
	interval    time.Duration
	peerTimeout time.Duration
	replica     interfaces.Replica
	changes     <-chan struct{}
	limiter     *rate.Limiter
	membership  interfaces.Membership
	remote      interfaces.RemoteStore
	initialized func()
	logger      log.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReplicator creates a Replicator. changes may be nil when the store does not signal writes.
// initialized is called once, after the first cycle has finished. Panics on invalid config or nil collaborators.
func NewReplicator(
	cfg ReplicatorConfig,
	replica interfaces.Replica,
	changes <-chan struct{},
	membership interfaces.Membership,
	remote interfaces.RemoteStore,
	initialized func(),
	logger log.Logger,
) *Replicator {
	r := &Replicator{
		store:       helpers.StrPanic(cfg.Store, "service.replicator.go: store is required"),
		interval:    helpers.DurationPanic(cfg.Interval, "service.replicator.go: interval must be positive"),
		peerTimeout: helpers.DurationPanic(cfg.PeerTimeout, "service.replicator.go: peer timeout must be positive"),
		replica:     helpers.NilPanic(replica, "service.replicator.go: replica is required"),
		changes:     changes,
		membership:  helpers.NilPanic(membership, "service.replicator.go: membership is required"),
		remote:      helpers.NilPanic(remote, "service.replicator.go: remote store is required"),
		initialized: helpers.NilPanic(initialized, "service.replicator.go: initialized callback is required"),
		logger:      log.WithPrefix(helpers.NilPanic(logger, "service.replicator.go: logger is required"), "component", "Replicator", "store", cfg.Store),
	}
	if cfg.TriggerRate > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(cfg.TriggerRate), 1)
	}
	return r
}

// Start runs the first cycle in the background and then keeps replicating until ctx is done or Stop is called.
func (r *Replicator) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

// Stop ends replication and waits for the running cycle to finish.
func (r *Replicator) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Replicator) run(ctx context.Context) {
	r.Cycle(ctx)
	r.initialized()

	changes := r.changes
	if r.limiter == nil {
		changes = nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Cycle(ctx)
		case <-changes:
			// a dropped trigger is covered by the next tick
			if r.limiter.Allow() {
				r.Cycle(ctx)
			}
		}
	}
}

// Cycle exchanges the current snapshot with every peer concurrently and returns once all exchanges ended.
// Failures are logged and left to the next cycle.
func (r *Replicator) Cycle(ctx context.Context) {
	peers, err := r.membership.Peers(ctx)
	if err != nil {
		level.Warn(r.logger).Log("msg", "failed to list peers", "err", err)
		return
	}
	if len(peers) == 0 {
		return
	}

	entries := r.replica.Snapshot()
	var wg sync.WaitGroup
	for _, peer := range peers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.exchange(ctx, peer, entries)
		}()
	}
	wg.Wait()
}

func (r *Replicator) exchange(ctx context.Context, peer string, entries []domain.Entry) {
	ctx, cancel := context.WithTimeout(ctx, r.peerTimeout)
	defer cancel()

	response, err := r.remote.Exchange(ctx, peer, r.store, entries)
	if err != nil {
		level.Warn(r.logger).Log("msg", "exchange with peer failed", "peer", peer, "err", err)
		return
	}
	if applied := r.replica.Apply(response); applied > 0 {
		level.Debug(r.logger).Log("msg", "applied peer entries", "peer", peer, "sent", len(entries), "received", len(response), "applied", applied)
	}
}
