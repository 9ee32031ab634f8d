package owners

import (
	"context"
	"fmt"
	"strings"
	"time"

	"petclinic/internal/platform/paging"
)

type Service struct {
	repo     Repository
	types    PetTypeRepository
	now      func() time.Time
	pageSize int
}

func NewService(repo Repository, types PetTypeRepository, pageSize int) *Service {
	if pageSize < 1 {
		pageSize = paging.DefaultSize
	}
	return &Service{
		repo:     repo,
		types:    types,
		now:      time.Now,
		pageSize: pageSize,
	}
}

func (s *Service) FindOwners(ctx context.Context, lastName string, page int) (paging.Page[Owner], error) {
	return s.repo.FindByLastName(ctx, strings.TrimSpace(lastName), paging.NewRequest(page, s.pageSize))
}

func (s *Service) FindOwner(ctx context.Context, id int) (Owner, error) {
	if id < 1 {
		return Owner{}, ErrNotFound
	}
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}
	o.SortPets()
	return o, nil
}

func (s *Service) Save(ctx context.Context, o *Owner) error {
	if err := s.repo.Save(ctx, o); err != nil {
		return fmt.Errorf("save owner: %w", err)
	}
	return nil
}

func (s *Service) PetTypes(ctx context.Context) ([]PetType, error) {
	return s.types.FindPetTypes(ctx)
}

// ResolvePetType acepta el nombre del tipo o su id numérico.
func (s *Service) ResolvePetType(ctx context.Context, ref string) (PetType, bool, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return PetType{}, false, nil
	}
	types, err := s.PetTypes(ctx)
	if err != nil {
		return PetType{}, false, err
	}
	for _, t := range types {
		if strings.EqualFold(t.Name, ref) || fmt.Sprint(t.ID) == ref {
			return t, true, nil
		}
	}
	return PetType{}, false, nil
}

// Today es la fecha actual en UTC a medianoche, igual que las fechas de formulario.
func (s *Service) Today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

func NotFoundMessage(id int) string {
	return fmt.Sprintf("Owner not found with id: %d. Please ensure the ID is correct and the owner exists in the database.", id)
}
