package memory

import (
	"time"

	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/vets"
)

// Datos de ejemplo del modo sin base de datos. Son los mismos que siembra la migración de Postgres.

func SamplePetTypes() []owners.PetType {
	return []owners.PetType{
		{ID: 1, Name: "cat"},
		{ID: 2, Name: "dog"},
		{ID: 3, Name: "lizard"},
		{ID: 4, Name: "snake"},
		{ID: 5, Name: "bird"},
		{ID: 6, Name: "hamster"},
	}
}

func SampleVets() []vets.Vet {
	radiology := vets.Specialty{ID: 1, Name: "radiology"}
	surgery := vets.Specialty{ID: 2, Name: "surgery"}
	dentistry := vets.Specialty{ID: 3, Name: "dentistry"}

	return []vets.Vet{
		{ID: 1, FirstName: "James", LastName: "Carter"},
		{ID: 2, FirstName: "Helen", LastName: "Leary", Specialties: []vets.Specialty{radiology}},
		{ID: 3, FirstName: "Linda", LastName: "Douglas", Specialties: []vets.Specialty{surgery, dentistry}},
		{ID: 4, FirstName: "Rafael", LastName: "Ortega", Specialties: []vets.Specialty{surgery}},
		{ID: 5, FirstName: "Henry", LastName: "Stevens", Specialties: []vets.Specialty{radiology}},
		{ID: 6, FirstName: "Sharon", LastName: "Jenkins"},
	}
}

func SampleOwners() []owners.Owner {
	t := SamplePetTypes()
	cat, dog, lizard, snake, bird, hamster := t[0], t[1], t[2], t[3], t[4], t[5]

	return []owners.Owner{
		{FirstName: "George", LastName: "Franklin", Address: "110 W. Liberty St.", City: "Madison", Telephone: "6085551023",
			Pets: []owners.Pet{{Name: "Leo", BirthDate: date(2010, 9, 7), Type: cat}}},
		{FirstName: "Betty", LastName: "Davis", Address: "638 Cardinal Ave.", City: "Sun Prairie", Telephone: "6085551749",
			Pets: []owners.Pet{{Name: "Basil", BirthDate: date(2012, 8, 6), Type: hamster}}},
		{FirstName: "Eduardo", LastName: "Rodriquez", Address: "2693 Commerce St.", City: "McFarland", Telephone: "6085558763",
			Pets: []owners.Pet{
				{Name: "Rosy", BirthDate: date(2011, 4, 17), Type: dog},
				{Name: "Jewel", BirthDate: date(2010, 3, 7), Type: dog},
			}},
		{FirstName: "Harold", LastName: "Davis", Address: "563 Friendly St.", City: "Windsor", Telephone: "6085553198",
			Pets: []owners.Pet{{Name: "Iggy", BirthDate: date(2010, 11, 30), Type: lizard}}},
		{FirstName: "Peter", LastName: "McTavish", Address: "2387 S. Fair Way", City: "Madison", Telephone: "6085552765",
			Pets: []owners.Pet{{Name: "George", BirthDate: date(2010, 1, 20), Type: snake}}},
		{FirstName: "Jean", LastName: "Coleman", Address: "105 N. Lake St.", City: "Monona", Telephone: "6085552654",
			Pets: []owners.Pet{
				{Name: "Samantha", BirthDate: date(2012, 9, 4), Type: cat, Visits: []owners.Visit{
					{Date: date(2013, 1, 1), Description: "rabies shot"},
					{Date: date(2013, 1, 4), Description: "spayed"},
				}},
				{Name: "Max", BirthDate: date(2012, 9, 4), Type: cat, Visits: []owners.Visit{
					{Date: date(2013, 1, 2), Description: "rabies shot"},
					{Date: date(2013, 1, 3), Description: "neutered"},
				}},
			}},
		{FirstName: "Jeff", LastName: "Black", Address: "1450 Oak Blvd.", City: "Monona", Telephone: "6085555387",
			Pets: []owners.Pet{{Name: "Lucky", BirthDate: date(2011, 8, 6), Type: bird}}},
		{FirstName: "Maria", LastName: "Escobito", Address: "345 Maple St.", City: "Madison", Telephone: "6085557683",
			Pets: []owners.Pet{{Name: "Mulligan", BirthDate: date(2007, 2, 24), Type: dog}}},
		{FirstName: "David", LastName: "Schroeder", Address: "2749 Blackhawk Trail", City: "Madison", Telephone: "6085559435",
			Pets: []owners.Pet{{Name: "Freddy", BirthDate: date(2010, 3, 9), Type: bird}}},
		{FirstName: "Carlos", LastName: "Estaban", Address: "2335 Independence La.", City: "Waunakee", Telephone: "6085555487",
			Pets: []owners.Pet{
				{Name: "Lucky", BirthDate: date(2010, 6, 24), Type: dog},
				{Name: "Sly", BirthDate: date(2012, 6, 8), Type: cat},
			}},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
