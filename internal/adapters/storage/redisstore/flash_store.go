package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"petclinic/internal/platform/web"
)

const keyFlashPrefix = "petclinic:flash:"

// FlashStore comparte los flashes entre réplicas.
type FlashStore struct {
	rdb *redis.Client
}

func NewFlashStore(rdb *redis.Client) *FlashStore {
	return &FlashStore{rdb: rdb}
}

func (s *FlashStore) Put(ctx context.Context, id string, f web.Flash, ttl time.Duration) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyFlashPrefix+id, b, ttl).Err()
}

func (s *FlashStore) Pop(ctx context.Context, id string) (web.Flash, bool, error) {
	b, err := s.rdb.GetDel(ctx, keyFlashPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return web.Flash{}, false, nil
	}
	if err != nil {
		return web.Flash{}, false, err
	}

	var f web.Flash
	if err := json.Unmarshal(b, &f); err != nil {
		return web.Flash{}, false, err
	}
	return f, !f.Empty(), nil
}
