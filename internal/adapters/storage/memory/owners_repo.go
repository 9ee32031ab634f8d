package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petclinic/internal/domain/owners"
	"petclinic/internal/platform/paging"
)

type ownerRepo struct {
	mu   sync.RWMutex
	byID map[int]owners.Owner

	nextOwnerID int
	nextPetID   int
	nextVisitID int
}

// NewOwnerRepo arranca con los owners dados (se les asignan ids si no tienen).
func NewOwnerRepo(initial ...owners.Owner) owners.Repository {
	r := &ownerRepo{byID: make(map[int]owners.Owner)}
	for i := range initial {
		o := initial[i].Clone()
		_ = r.save(&o)
	}
	return r
}

func (r *ownerRepo) FindByLastName(ctx context.Context, lastName string, page paging.Request) (paging.Page[owners.Owner], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := strings.ToLower(strings.TrimSpace(lastName))
	matches := make([]owners.Owner, 0)
	for _, o := range r.byID {
		if strings.HasPrefix(strings.ToLower(o.LastName), prefix) {
			matches = append(matches, o.Clone())
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		li, lj := strings.ToLower(matches[i].LastName), strings.ToLower(matches[j].LastName)
		if li != lj {
			return li < lj
		}
		return matches[i].ID < matches[j].ID
	})

	return paging.Slice(matches, page), nil
}

func (r *ownerRepo) FindByID(ctx context.Context, id int) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o.Clone(), nil
}

func (r *ownerRepo) Save(ctx context.Context, o *owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(o)
}

// save asigna ids a lo nuevo y fusiona el snapshot con lo guardado, igual
// que el repo de Postgres: mascotas y visitas ausentes en o se conservan.
// Requiere el lock tomado.
func (r *ownerRepo) save(o *owners.Owner) error {
	if o == nil {
		return errors.New("owner required")
	}

	var stored owners.Owner
	if o.IsNew() {
		r.nextOwnerID++
		o.ID = r.nextOwnerID
		stored.ID = o.ID
	} else {
		cur, exists := r.byID[o.ID]
		if !exists {
			return owners.ErrNotFound
		}
		stored = cur.Clone()
	}

	stored.FirstName = o.FirstName
	stored.LastName = o.LastName
	stored.Address = o.Address
	stored.City = o.City
	stored.Telephone = o.Telephone

	for i := range o.Pets {
		p := &o.Pets[i]
		if p.IsNew() {
			r.nextPetID++
			p.ID = r.nextPetID
		}
		for j := range p.Visits {
			if p.Visits[j].IsNew() {
				r.nextVisitID++
				p.Visits[j].ID = r.nextVisitID
			}
		}

		sp := stored.PetByID(p.ID)
		if sp == nil {
			cp := *p
			cp.Visits = append([]owners.Visit(nil), p.Visits...)
			stored.Pets = append(stored.Pets, cp)
			continue
		}
		sp.Name = p.Name
		sp.BirthDate = p.BirthDate
		sp.Type = p.Type
		for _, v := range p.Visits {
			if !hasVisit(sp.Visits, v.ID) {
				sp.Visits = append(sp.Visits, v)
			}
		}
	}

	r.byID[o.ID] = stored
	return nil
}

func hasVisit(visits []owners.Visit, id int) bool {
	for _, v := range visits {
		if v.ID == id {
			return true
		}
	}
	return false
}
