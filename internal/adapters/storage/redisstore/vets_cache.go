package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"petclinic/internal/domain/vets"
)

const keyVets = "petclinic:vets:all"

// VetsCache guarda la lista de veterinarios serializada en JSON.
type VetsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewVetsCache(rdb *redis.Client, ttl time.Duration) *VetsCache {
	return &VetsCache{rdb: rdb, ttl: ttl}
}

type cachedVet struct {
	ID          int              `json:"id"`
	FirstName   string           `json:"firstName"`
	LastName    string           `json:"lastName"`
	Specialties []vets.Specialty `json:"specialties"`
}

func (c *VetsCache) GetAll(ctx context.Context) ([]vets.Vet, bool, error) {
	b, err := c.rdb.Get(ctx, keyVets).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var cached []cachedVet
	if err := json.Unmarshal(b, &cached); err != nil {
		return nil, false, err
	}

	out := make([]vets.Vet, 0, len(cached))
	for _, v := range cached {
		out = append(out, vets.Vet{
			ID:          v.ID,
			FirstName:   v.FirstName,
			LastName:    v.LastName,
			Specialties: v.Specialties,
		})
	}
	return out, true, nil
}

func (c *VetsCache) SetAll(ctx context.Context, list []vets.Vet) error {
	cached := make([]cachedVet, 0, len(list))
	for _, v := range list {
		cached = append(cached, cachedVet{
			ID:          v.ID,
			FirstName:   v.FirstName,
			LastName:    v.LastName,
			Specialties: v.Specialties,
		})
	}

	b, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyVets, b, c.ttl).Err()
}

// Invalidate borra la entrada; la próxima lectura vuelve a la base.
func (c *VetsCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyVets).Err()
}
