package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic/internal/domain/vets"
	"petclinic/internal/platform/paging"
)

type vetRepo struct {
	mu   sync.RWMutex
	vets []vets.Vet
}

func NewVetRepo(list ...vets.Vet) vets.Repository {
	r := &vetRepo{}
	for i, v := range list {
		if v.ID == 0 {
			v.ID = i + 1
		}
		r.vets = append(r.vets, cloneVet(v))
	}
	sort.Slice(r.vets, func(i, j int) bool { return r.vets[i].ID < r.vets[j].ID })
	return r
}

func (r *vetRepo) FindAll(ctx context.Context) ([]vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Vet, 0, len(r.vets))
	for _, v := range r.vets {
		out = append(out, cloneVet(v))
	}
	return out, nil
}

func (r *vetRepo) FindPage(ctx context.Context, page paging.Request) (paging.Page[vets.Vet], error) {
	all, _ := r.FindAll(ctx)
	return paging.Slice(all, page), nil
}

func cloneVet(v vets.Vet) vets.Vet {
	v.Specialties = append([]vets.Specialty(nil), v.Specialties...)
	v.SortSpecialties()
	return v
}
