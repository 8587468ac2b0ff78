package interfaces

import (
	"context"

	"github.com/jsabin/discovery/domain"
)

// RemoteStore is the transport used to gossip with a peer replica.
//
//go:generate moq -stub -out mock/remote_store.go -pkg mock . RemoteStore
type RemoteStore interface {
	// Exchange sends entries of the named store to peer and returns the entries the peer holds newer or additionally.
	// Returns:
	// 1) (entries, nil) on success;
	// 2) (nil, error) when the peer is unreachable or answers with an error.
	Exchange(ctx context.Context, peer string, store string, entries []domain.Entry) ([]domain.Entry, error)
}

// Membership tracks the replicas taking part in replication.
//
//go:generate moq -stub -out mock/membership.go -pkg mock . Membership
type Membership interface {
	// Register announces the local replica to the other members.
	Register(ctx context.Context) error

	// Peers returns the addresses of the other replicas, never including the local one.
	Peers(ctx context.Context) ([]string, error)

	// Deregister withdraws the local replica.
	Deregister(ctx context.Context) error

	// Close releases the backend connection.
	Close() error
}
