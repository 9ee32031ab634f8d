package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic/internal/domain/owners"
)

type petTypeRepo struct {
	mu    sync.RWMutex
	types []owners.PetType
}

func NewPetTypeRepo(types ...owners.PetType) owners.PetTypeRepository {
	cp := append([]owners.PetType(nil), types...)
	return &petTypeRepo{types: cp}
}

func (r *petTypeRepo) FindPetTypes(ctx context.Context) ([]owners.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]owners.PetType(nil), r.types...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
