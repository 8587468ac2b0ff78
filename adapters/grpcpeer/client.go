package grpcpeer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsabin/discovery/api"
	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/interfaces"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// RemoteStore exchanges entries with peers over gRPC, keeping one connection per peer.
type RemoteStore struct {
	dialOptions []grpc.DialOption

	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

var _ interfaces.RemoteStore = (*RemoteStore)(nil)

// NewRemoteStore creates a RemoteStore. Without options connections are plaintext.
func NewRemoteStore(dialOptions ...grpc.DialOption) *RemoteStore {
	if len(dialOptions) == 0 {
		dialOptions = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	return &RemoteStore{
		dialOptions: dialOptions,
		conns:       make(map[string]*grpc.ClientConn),
	}
}

func (r *RemoteStore) conn(peer string) (*grpc.ClientConn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.conns[peer]; ok {
		return c, nil
	}
	c, err := grpc.NewClient(peer, r.dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("can't create client for %s, err: %w", peer, err)
	}
	r.conns[peer] = c
	return c, nil
}

// Exchange sends entries to peer and returns the peer's answer.
func (r *RemoteStore) Exchange(ctx context.Context, peer string, store string, entries []domain.Entry) ([]domain.Entry, error) {
	c, err := r.conn(peer)
	if err != nil {
		return nil, err
	}

	req := &ExchangeRequest{Store: store, Entries: api.ToExchangeEntries(entries)}
	var resp api.ExchangeResponse
	if err := c.Invoke(ctx, ExchangeMethod, req, &resp, grpc.CallContentSubtype(CodecName)); err != nil {
		return nil, fmt.Errorf("exchange with %s failed, err: %w", peer, err)
	}
	return api.FromExchangeEntries(resp.Entries), nil
}

// Close closes every peer connection.
func (r *RemoteStore) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var errs []error
	for peer, c := range r.conns {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", peer, err))
		}
		delete(r.conns, peer)
	}
	return errors.Join(errs...)
}
