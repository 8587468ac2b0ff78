package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsabin/discovery/domain"
	"github.com/jsabin/discovery/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheOf(services ...domain.Service) *mock.CacheMock[domain.Service] {
	return &mock.CacheMock[domain.Service]{
		ListAllValuesFunc: func(ctx context.Context) ([]domain.Service, error) {
			return services, nil
		},
	}
}

func TestConfigStore_Get(t *testing.T) {
	s1 := testService("storage", "general", "/1", false)
	s2 := testService("storage", "alpha", "/2", false)
	s3 := testService("web", "general", "/3", false)
	store := NewConfigStore(cacheOf(s1, s2, s3, s1), log.NewNopLogger())
	ctx := context.Background()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Service{s1, s2, s3}, all)

	byType, err := store.GetByType(ctx, "storage")
	require.NoError(t, err)
	assert.Equal(t, []domain.Service{s1, s2}, byType)

	byPool, err := store.GetByTypeAndPool(ctx, "storage", "alpha")
	require.NoError(t, err)
	assert.Equal(t, []domain.Service{s2}, byPool)

	none, err := store.GetByTypeAndPool(ctx, "web", "alpha")
	require.NoError(t, err)
	assert.NotNil(t, none, "the static store answers empty, never absent")
	assert.Empty(t, none)
}

func TestConfigStore_GetError(t *testing.T) {
	cache := &mock.CacheMock[domain.Service]{
		ListAllValuesFunc: func(ctx context.Context) ([]domain.Service, error) {
			return nil, errors.New("redis: connection pool timeout")
		},
	}
	store := NewConfigStore(cache, log.NewNopLogger())

	_, err := store.GetAll(context.Background())
	assert.True(t, IsInternalServerError(err))
	_, err = store.GetByType(context.Background(), "storage")
	assert.True(t, IsInternalServerError(err))
	_, err = store.GetByTypeAndPool(context.Background(), "storage", "general")
	assert.True(t, IsInternalServerError(err))
}

func TestConfigStore_Put(t *testing.T) {
	cache := &mock.CacheMock[domain.Service]{}
	store := NewConfigStore(cache, log.NewNopLogger())

	owned := testService("storage", "general", "/1", true)
	plain := testService("web", "general", "/2", false)
	require.NoError(t, store.Put(context.Background(), []domain.Service{owned, plain}))

	calls := cache.WriteValueCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, owned.ID.String(), calls[0].Key)
	assert.Nil(t, calls[0].Item.NodeID, "static services have no owning node")
	assert.Zero(t, calls[0].Ttl)
	assert.Equal(t, plain, calls[1].Item)

	err := store.Put(context.Background(), []domain.Service{{Type: "web"}})
	assert.True(t, IsBadParameterError(err))

	failing := &mock.CacheMock[domain.Service]{
		WriteValueFunc: func(ctx context.Context, key string, item domain.Service, ttl time.Duration) error {
			return errors.New("redis: READONLY")
		},
	}
	err = NewConfigStore(failing, log.NewNopLogger()).Put(context.Background(), []domain.Service{plain})
	assert.True(t, IsInternalServerError(err))
}

func TestConfigStore_Delete(t *testing.T) {
	id := domain.NewID[domain.ServiceKind]()
	stored := domain.Service{ID: id, Type: "storage", Pool: "general", Location: "/a"}
	notFound := NewEntityNotFoundError("entity not found", nil)
	tests := []struct {
		name        string
		getErr      error
		deleteErr   error
		wantDeletes int
		checker     func(error) bool
	}{
		{name: "deleted", wantDeletes: 1, checker: func(err error) bool { return err == nil }},
		{name: "not found", getErr: notFound, checker: IsEntityNotFoundError},
		{name: "read failure", getErr: errors.New("redis: i/o timeout"), checker: IsInternalServerError},
		{name: "removed concurrently", deleteErr: notFound, wantDeletes: 1, checker: IsEntityNotFoundError},
		{name: "delete failure", deleteErr: errors.New("redis: i/o timeout"), wantDeletes: 1, checker: IsInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := &mock.CacheMock[domain.Service]{
				GetValueFunc: func(ctx context.Context, key string) (domain.Service, error) {
					assert.Equal(t, id.String(), key)
					if tt.getErr != nil {
						return domain.Service{}, tt.getErr
					}
					return stored, nil
				},
				DeleteValueFunc: func(ctx context.Context, key string) error {
					assert.Equal(t, id.String(), key)
					return tt.deleteErr
				},
			}
			err := NewConfigStore(cache, log.NewNopLogger()).Delete(context.Background(), id)
			assert.True(t, tt.checker(err), "unexpected error %v", err)
			assert.Len(t, cache.DeleteValueCalls(), tt.wantDeletes)
		})
	}
}

func TestNewConfigStore_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.config_store.go: cache is required", func() {
		NewConfigStore(nil, log.NewNopLogger())
	})
	assert.NotPanics(t, func() {
		NewConfigStore(cacheOf(), log.NewNopLogger())
	})
}
