package api

import (
	"fmt"
	"time"

	"github.com/jsabin/discovery/domain"
)

// ToExchangeEntries converts store entries to their wire form. Never returns nil.
func ToExchangeEntries(entries []domain.Entry) []ExchangeEntry {
	out := make([]ExchangeEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, ExchangeEntry{
			Key:       e.Key,
			Value:     e.Value,
			Version:   e.Version,
			MaxAgeNs:  e.MaxAge.Nanoseconds(),
			CreatedAt: e.CreatedAt,
			Tombstone: e.Tombstone,
		})
	}
	return out
}

// FromExchangeEntries converts wire entries back to store entries. Never returns nil.
func FromExchangeEntries(entries []ExchangeEntry) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		value := e.Value
		if value == nil && !e.Tombstone {
			value = []byte{}
		}
		out = append(out, domain.Entry{
			Key:       e.Key,
			Value:     value,
			Version:   e.Version,
			MaxAge:    time.Duration(e.MaxAgeNs),
			CreatedAt: e.CreatedAt,
			Tombstone: e.Tombstone,
		})
	}
	return out
}

// ToServiceRepresentations converts services to their wire form. Never returns nil.
func ToServiceRepresentations(services []domain.Service) []ServiceRepresentation {
	out := make([]ServiceRepresentation, 0, len(services))
	for _, s := range services {
		var nodeID *string
		if s.NodeID != nil {
			id := s.NodeID.String()
			nodeID = &id
		}
		properties := s.Properties
		if properties == nil {
			properties = map[string]string{}
		}
		out = append(out, ServiceRepresentation{
			Id:         s.ID.String(),
			NodeId:     nodeID,
			Type:       s.Type,
			Pool:       s.Pool,
			Location:   s.Location,
			Properties: properties,
		})
	}
	return out
}

// FromServiceRepresentations parses services received from another registry.
func FromServiceRepresentations(representations []ServiceRepresentation) ([]domain.Service, error) {
	out := make([]domain.Service, 0, len(representations))
	for _, r := range representations {
		id, err := domain.ParseID[domain.ServiceKind](r.Id)
		if err != nil {
			return nil, fmt.Errorf("service id: %w", err)
		}
		s := domain.Service{
			ID:         id,
			Type:       r.Type,
			Pool:       r.Pool,
			Location:   r.Location,
			Properties: r.Properties,
		}
		if r.NodeId != nil {
			nodeID, err := domain.ParseID[domain.NodeKind](*r.NodeId)
			if err != nil {
				return nil, fmt.Errorf("node id of service %s: %w", r.Id, err)
			}
			s.NodeID = &nodeID
		}
		out = append(out, s)
	}
	return out, nil
}
