package vets

import (
	"context"
	"fmt"

	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/paging"
)

type Service struct {
	repo     Repository
	cache    Cache
	log      logger.Logger
	pageSize int
}

// NewService: cache puede ser nil.
func NewService(repo Repository, cache Cache, log logger.Logger, pageSize int) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if pageSize < 1 {
		pageSize = paging.DefaultSize
	}
	return &Service{
		repo:     repo,
		cache:    cache,
		log:      log,
		pageSize: pageSize,
	}
}

// FindAll pasa por la cache; un fallo de cache no corta el request.
func (s *Service) FindAll(ctx context.Context) ([]Vet, error) {
	if s.cache != nil {
		list, ok, err := s.cache.GetAll(ctx)
		if err != nil {
			s.log.Warn("vets cache get failed", map[string]any{"err": err})
		} else if ok {
			return list, nil
		}
	}

	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find vets: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetAll(ctx, list); err != nil {
			s.log.Warn("vets cache set failed", map[string]any{"err": err})
		}
	}
	return list, nil
}

func (s *Service) FindPage(ctx context.Context, page int) (paging.Page[Vet], error) {
	p, err := s.repo.FindPage(ctx, paging.NewRequest(page, s.pageSize))
	if err != nil {
		return paging.Page[Vet]{}, fmt.Errorf("find vets page: %w", err)
	}
	return p, nil
}
