package vets

import (
	"sort"
	"strings"
)

type Specialty struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Vet y Specialty son muchos a muchos: la misma especialidad se comparte entre veterinarios.
type Vet struct {
	ID          int
	FirstName   string
	LastName    string
	Specialties []Specialty
}

func (v Vet) NrOfSpecialties() int { return len(v.Specialties) }

func (v *Vet) AddSpecialty(s Specialty) {
	v.Specialties = append(v.Specialties, s)
	v.SortSpecialties()
}

// SortSpecialties ordena por nombre, que es como se muestran.
func (v *Vet) SortSpecialties() {
	sort.SliceStable(v.Specialties, func(i, j int) bool {
		return strings.ToLower(v.Specialties[i].Name) < strings.ToLower(v.Specialties[j].Name)
	})
}

// Vets envuelve la lista para la respuesta JSON ({"vetList": [...]}).
type Vets struct {
	vetList []Vet
}

func NewVets(list []Vet) *Vets {
	return &Vets{vetList: list}
}

// VetList nunca devuelve nil.
func (v *Vets) VetList() []Vet {
	if v.vetList == nil {
		v.vetList = make([]Vet, 0)
	}
	return v.vetList
}

func (v *Vets) Add(vet Vet) {
	v.vetList = append(v.VetList(), vet)
}
