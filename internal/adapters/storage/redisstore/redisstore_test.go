package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/config"
	"petclinic/internal/domain/vets"
	"petclinic/internal/platform/web"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	_ = c.Close()

	c, err = NewClient(context.Background(), config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	_ = c.Close()

	_, err = NewClient(context.Background(), config.RedisConfig{URL: "://bad"})
	assert.Error(t, err)
}

func TestVetsCache_MissThenHit(t *testing.T) {
	mr, rdb := newTestClient(t)
	cache := NewVetsCache(rdb, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.GetAll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	list := []vets.Vet{
		{ID: 2, FirstName: "Helen", LastName: "Leary", Specialties: []vets.Specialty{{ID: 1, Name: "radiology"}}},
	}
	require.NoError(t, cache.SetAll(ctx, list))

	got, ok, err := cache.GetAll(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, list, got)

	mr.FastForward(2 * time.Minute)
	_, ok, err = cache.GetAll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVetsCache_Invalidate(t *testing.T) {
	_, rdb := newTestClient(t)
	cache := NewVetsCache(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetAll(ctx, []vets.Vet{{ID: 1, FirstName: "James", LastName: "Carter"}}))
	require.NoError(t, cache.Invalidate(ctx))

	_, ok, err := cache.GetAll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFlashStore_PopOnce(t *testing.T) {
	_, rdb := newTestClient(t)
	store := NewFlashStore(rdb)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "abc", web.Flash{Message: "New Owner Created"}, time.Minute))

	f, ok, err := store.Pop(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "New Owner Created", f.Message)

	_, ok, err = store.Pop(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}
