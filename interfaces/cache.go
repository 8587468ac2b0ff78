package interfaces

import (
	"context"
	"time"
)

// Cache represents a durable keyed store of values.
//
//go:generate moq -stub -out mock/cache.go -pkg mock . Cache
type Cache[T any] interface {
	// WriteValue writes value under key. A zero ttl keeps the value until it is deleted.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when marshalling fails or when the storage write fails.
	WriteValue(ctx context.Context, key string, item T, ttl time.Duration) error

	// GetValue reads the value stored under key.
	// Returns:
	// 1) (item, nil) on success;
	// 2) (zero, entity_not_found) when the key is absent;
	// 3) (zero, internal_server_error) when the storage read or unmarshalling fails.
	GetValue(ctx context.Context, key string) (T, error)

	// ListAllValues returns all values in the cache. Values that can't be read or unmarshalled are skipped.
	// Returns:
	// 1) (items, nil), items is empty but non-nil when the cache holds nothing;
	// 2) (nil, internal_server_error) when listing keys fails.
	ListAllValues(ctx context.Context) ([]T, error)

	// DeleteValue deletes the value for the given key.
	// Returns:
	// 1) nil on success;
	// 2) entity_not_found when the key is absent;
	// 3) internal_server_error when the storage delete fails.
	DeleteValue(ctx context.Context, key string) error
}
