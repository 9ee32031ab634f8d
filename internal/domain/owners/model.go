package owners

import (
	"sort"
	"strings"
	"time"
)

// PetType es el catálogo de especies (cat, dog, ...).
type PetType struct {
	ID   int
	Name string
}

// Visit es una cita registrada para una mascota.
type Visit struct {
	ID          int
	Date        time.Time
	Description string
}

func (v Visit) IsNew() bool { return v.ID == 0 }

type Pet struct {
	ID        int
	Name      string
	BirthDate time.Time
	Type      PetType

	Visits []Visit
}

func (p Pet) IsNew() bool { return p.ID == 0 }

func (p *Pet) AddVisit(v Visit) {
	p.Visits = append(p.Visits, v)
}

// SortVisits deja las visitas por fecha ascendente.
func (p *Pet) SortVisits() {
	sort.SliceStable(p.Visits, func(i, j int) bool {
		return p.Visits[i].Date.Before(p.Visits[j].Date)
	})
}

// Owner es la raíz del agregado: guardar un owner persiste sus mascotas y visitas.
type Owner struct {
	ID        int
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string

	Pets []Pet
}

func (o Owner) IsNew() bool { return o.ID == 0 }

func (o Owner) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

func (o *Owner) AddPet(p Pet) {
	o.Pets = append(o.Pets, p)
}

// Pet busca por nombre sin distinguir mayúsculas. Con ignoreNew se saltan las mascotas sin id.
func (o *Owner) Pet(name string, ignoreNew bool) *Pet {
	name = strings.TrimSpace(name)
	for i := range o.Pets {
		p := &o.Pets[i]
		if ignoreNew && p.IsNew() {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

func (o *Owner) PetByID(id int) *Pet {
	for i := range o.Pets {
		if o.Pets[i].ID == id {
			return &o.Pets[i]
		}
	}
	return nil
}

// AddVisit agrega la visita a la mascota del owner; false si la mascota no es suya.
func (o *Owner) AddVisit(petID int, v Visit) bool {
	p := o.PetByID(petID)
	if p == nil {
		return false
	}
	p.AddVisit(v)
	return true
}

// SortPets deja las mascotas por nombre y sus visitas por fecha.
func (o *Owner) SortPets() {
	sort.SliceStable(o.Pets, func(i, j int) bool {
		return strings.ToLower(o.Pets[i].Name) < strings.ToLower(o.Pets[j].Name)
	})
	for i := range o.Pets {
		o.Pets[i].SortVisits()
	}
}

// Clone copia el agregado completo (slices incluidos).
func (o Owner) Clone() Owner {
	out := o
	if o.Pets != nil {
		out.Pets = make([]Pet, len(o.Pets))
		for i, p := range o.Pets {
			cp := p
			if p.Visits != nil {
				cp.Visits = append([]Visit(nil), p.Visits...)
			}
			out.Pets[i] = cp
		}
	}
	return out
}
