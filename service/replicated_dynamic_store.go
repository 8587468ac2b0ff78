package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/helpers"
	"github.com/jsabin/discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ReplicatedDynamicStore keeps node announcements in a DistributedStore, one entry per node:
// the key is the node id, the value the JSON list of the node's services.
type ReplicatedDynamicStore struct {
	store  interfaces.DistributedStore
	maxAge time.Duration
	logger log.Logger
}

var _ interfaces.DynamicStore = (*ReplicatedDynamicStore)(nil)

// NewReplicatedDynamicStore creates a ReplicatedDynamicStore whose announcements expire after maxAge unless re-announced.
func NewReplicatedDynamicStore(store interfaces.DistributedStore, maxAge time.Duration, logger log.Logger) *ReplicatedDynamicStore {
	return &ReplicatedDynamicStore{
		store:  helpers.NilPanic(store, "service.replicated_dynamic_store.go: distributed store is required"),
		maxAge: helpers.DurationPanic(maxAge, "service.replicated_dynamic_store.go: max age must be positive"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "service.replicated_dynamic_store.go: logger is required"), "component", "ReplicatedDynamicStore"),
	}
}

// Put replaces everything nodeID announced before with announcement.
func (s *ReplicatedDynamicStore) Put(nodeID domain.NodeID, announcement domain.DynamicAnnouncement) error {
	value, err := json.Marshal(announcement.ToServices(nodeID))
	if err != nil {
		return NewInternalServerError("failed to encode announcement", fmt.Errorf("ReplicatedDynamicStore.Put failed to marshal services of node %s, err: %w", nodeID, err))
	}
	s.store.Put(nodeID.Bytes(), value, s.maxAge)
	return nil
}

// Delete withdraws everything nodeID announced.
func (s *ReplicatedDynamicStore) Delete(nodeID domain.NodeID) {
	s.store.Delete(nodeID.Bytes())
}

// GetAll returns the services of every live announcement.
func (s *ReplicatedDynamicStore) GetAll() []domain.Service {
	var perNode [][]domain.Service
	for e := range s.store.GetAll() {
		var services []domain.Service
		if err := json.Unmarshal(e.Value, &services); err != nil {
			level.Warn(s.logger).Log("msg", "skipping undecodable entry", "key", string(e.Key), "err", err)
			continue
		}
		perNode = append(perNode, services)
	}
	return domain.UnionServices(perNode...)
}

func (s *ReplicatedDynamicStore) GetByType(serviceType string) []domain.Service {
	return domain.FilterByType(s.GetAll(), serviceType)
}

func (s *ReplicatedDynamicStore) GetByTypeAndPool(serviceType, pool string) []domain.Service {
	return domain.FilterByTypeAndPool(s.GetAll(), serviceType, pool)
}
