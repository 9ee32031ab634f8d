package owners

import (
	"context"
	"errors"

	"petclinic/internal/platform/paging"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	// FindByLastName busca por prefijo de apellido; vacío devuelve todos.
	FindByLastName(ctx context.Context, lastName string, page paging.Request) (paging.Page[Owner], error)
	FindByID(ctx context.Context, id int) (Owner, error)
	// Save inserta o actualiza el owner con sus mascotas y visitas nuevas, asignando ids.
	Save(ctx context.Context, o *Owner) error
}

type PetTypeRepository interface {
	FindPetTypes(ctx context.Context) ([]PetType, error)
}
