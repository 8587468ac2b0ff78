package myredis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jsabin/discovery/interfaces"
	"github.com/jsabin/discovery/service"

	"github.com/go-redis/redis/v8"
)

const scanBatch = 100

type redisCache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
	zero      T
}

// NewCache creates the redis implementation of interfaces.Cache. Keys are stored as "<prefix>:<key>".
func NewCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) interfaces.Cache[T] {
	return &redisCache[T]{
		client:    client,
		prefix:    prefix,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

// WriteValue stores item under key. A zero ttl keeps the item until it is deleted.
func (r *redisCache[T]) WriteValue(ctx context.Context, key string, item T, ttl time.Duration) error {
	bytes, err := r.marshal(item)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}

	err = r.client.Set(ctx, r.generateKey(key), bytes, ttl).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}

	return nil
}

func (r *redisCache[T]) GetValue(ctx context.Context, key string) (T, error) {
	bytes, err := r.client.Get(ctx, r.generateKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return r.zero, service.NewEntityNotFoundError("Entity not found", nil)
	}
	if err != nil {
		return r.zero, service.NewInternalServerError("Redis get key error", fmt.Errorf("can't read item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}

	item, err := r.unmarshal(bytes)
	if err != nil {
		return r.zero, service.NewInternalServerError("Redis unmarshal item error", fmt.Errorf("can't unmarshal item of type %T (key='%s'), err: %w", r.zero, key, err))
	}
	return item, nil
}

func (r *redisCache[T]) DeleteValue(ctx context.Context, key string) error {
	deleted, err := r.client.Del(ctx, r.generateKey(key)).Result()
	if err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}
	if deleted == 0 {
		return service.NewEntityNotFoundError("Entity not found", nil)
	}
	return nil
}

// ListAllValues scans the keys under the cache prefix then fetches their values.
// Keys that vanish or hold undecodable values in between are skipped; an empty cache yields an empty slice.
func (r *redisCache[T]) ListAllValues(ctx context.Context) ([]T, error) {
	prefixWithColon := r.prefix + ":"
	var keys []string
	iter := r.client.Scan(ctx, 0, prefixWithColon+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		if k := iter.Val(); strings.HasPrefix(k, prefixWithColon) {
			keys = append(keys, k)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, service.NewInternalServerError("Redis scan keys error", fmt.Errorf("redis scan keys error, err: %w", err))
	}

	items := make([]T, 0, len(keys))
	if len(keys) == 0 {
		return items, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis get values error", fmt.Errorf("redis mget error, err: %w", err))
	}
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		item, err := r.unmarshal([]byte(s))
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *redisCache[T]) generateKey(key string) string {
	return r.prefix + ":" + key
}
