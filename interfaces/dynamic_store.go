package interfaces

import "github.com/jsabin/discovery/domain"

// DynamicStore holds services announced by live nodes.
//
//go:generate moq -stub -out mock/dynamic_store.go -pkg mock . DynamicStore
type DynamicStore interface {
	// Put replaces everything previously announced by nodeID with the services of announcement.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when the announcement can't be serialized.
	Put(nodeID domain.NodeID, announcement domain.DynamicAnnouncement) error

	// Delete withdraws everything announced by nodeID.
	Delete(nodeID domain.NodeID)

	// GetAll returns the services of all nodes whose announcement is still alive.
	GetAll() []domain.Service

	// GetByType returns the live services of the given type.
	GetByType(serviceType string) []domain.Service

	// GetByTypeAndPool returns the live services of the given type and pool.
	GetByTypeAndPool(serviceType, pool string) []domain.Service
}
