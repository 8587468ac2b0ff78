package domain

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Service is one service instance as answered by queries.
// NodeID is nil for statically configured and proxied services.
type Service struct {
	ID         ServiceID         `json:"id"`
	NodeID     *NodeID           `json:"nodeId,omitempty"`
	Type       string            `json:"type"`
	Pool       string            `json:"pool"`
	Location   string            `json:"location"`
	Properties map[string]string `json:"properties"`
}

// Equal compares all fields, a nil and an empty Properties map are equal.
func (s Service) Equal(other Service) bool {
	if s.ID != other.ID || s.Type != other.Type || s.Pool != other.Pool || s.Location != other.Location {
		return false
	}
	if (s.NodeID == nil) != (other.NodeID == nil) {
		return false
	}
	if s.NodeID != nil && *s.NodeID != *other.NodeID {
		return false
	}
	return maps.Equal(s.Properties, other.Properties)
}

// Key returns a canonical encoding of all fields: two services have the same key iff they are Equal.
func (s Service) Key() string {
	var b strings.Builder
	writeField := func(v string) {
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}
	writeField(s.ID.String())
	if s.NodeID != nil {
		writeField(s.NodeID.String())
	} else {
		b.WriteByte('-')
	}
	writeField(s.Type)
	writeField(s.Pool)
	writeField(s.Location)
	for _, k := range slices.Sorted(maps.Keys(s.Properties)) {
		writeField(k)
		writeField(s.Properties[k])
	}
	return b.String()
}

// UnionServices merges the given slices into one set, keeping the first occurrence of equal services.
// The result is never nil.
func UnionServices(sets ...[]Service) []Service {
	size := 0
	for _, set := range sets {
		size += len(set)
	}
	seen := make(map[string]struct{}, size)
	out := make([]Service, 0, size)
	for _, set := range sets {
		for _, s := range set {
			k := s.Key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// FilterByType returns the services of exactly the given type. The result is never nil.
func FilterByType(services []Service, serviceType string) []Service {
	out := make([]Service, 0)
	for _, s := range services {
		if s.Type == serviceType {
			out = append(out, s)
		}
	}
	return out
}

// FilterByTypeAndPool returns the services of exactly the given type and pool. The result is never nil.
func FilterByTypeAndPool(services []Service, serviceType, pool string) []Service {
	out := make([]Service, 0)
	for _, s := range services {
		if s.Type == serviceType && s.Pool == pool {
			out = append(out, s)
		}
	}
	return out
}
