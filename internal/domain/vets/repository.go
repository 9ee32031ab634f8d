package vets

import (
	"context"

	"petclinic/internal/platform/paging"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Vet, error)
	FindPage(ctx context.Context, page paging.Request) (paging.Page[Vet], error)
}

// Cache guarda la lista completa de veterinarios; ok=false es un miss.
type Cache interface {
	GetAll(ctx context.Context) (list []Vet, ok bool, err error)
	SetAll(ctx context.Context, list []Vet) error
}
