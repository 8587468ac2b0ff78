package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NodeKind tags identifiers of announcing nodes.
type NodeKind struct{}

// ServiceKind tags identifiers of announced services.
type ServiceKind struct{}

// ID is a random identifier typed by the kind of entity it names, so a node id can't be passed
// where a service id is expected. The zero value is the nil UUID.
type ID[T any] uuid.UUID

// NodeID identifies an announcing node.
type NodeID = ID[NodeKind]

// ServiceID identifies one announced service.
type ServiceID = ID[ServiceKind]

// NewID returns a random identifier.
func NewID[T any]() ID[T] {
	return ID[T](uuid.New())
}

// ParseID parses the canonical textual form of an identifier.
func ParseID[T any](s string) (ID[T], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[T]{}, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return ID[T](u), nil
}

func (id ID[T]) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether id is the nil UUID.
func (id ID[T]) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

// Bytes returns the key under which the entity is stored.
func (id ID[T]) Bytes() []byte {
	return []byte(id.String())
}

func (id ID[T]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID[T]) UnmarshalText(data []byte) error {
	parsed, err := ParseID[T](string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
