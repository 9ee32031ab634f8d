package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/vets"
	"petclinic/internal/platform/paging"
)

type VetsRepo struct {
	db *sqlx.DB
}

func NewVetsRepo(db *sqlx.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

type vetRow struct {
	ID        int    `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

type vetSpecialtyRow struct {
	VetID int    `db:"vet_id"`
	ID    int    `db:"id"`
	Name  string `db:"name"`
}

func (r *VetsRepo) FindAll(ctx context.Context) ([]vets.Vet, error) {
	var rows []vetRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, first_name, last_name FROM vets ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select vets: %w", err)
	}
	return r.withSpecialties(ctx, rows)
}

func (r *VetsRepo) FindPage(ctx context.Context, page paging.Request) (paging.Page[vets.Vet], error) {
	page = paging.NewRequest(page.Page, page.Size)

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM vets`); err != nil {
		return paging.Page[vets.Vet]{}, fmt.Errorf("count vets: %w", err)
	}

	var rows []vetRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT id, first_name, last_name FROM vets ORDER BY id LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset()); err != nil {
		return paging.Page[vets.Vet]{}, fmt.Errorf("select vets: %w", err)
	}

	items, err := r.withSpecialties(ctx, rows)
	if err != nil {
		return paging.Page[vets.Vet]{}, err
	}
	return paging.Page[vets.Vet]{
		Items:      items,
		Number:     page.Page,
		Size:       page.Size,
		TotalItems: total,
	}, nil
}

func (r *VetsRepo) withSpecialties(ctx context.Context, rows []vetRow) ([]vets.Vet, error) {
	out := make([]vets.Vet, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	query, args, err := sqlx.In(`
		SELECT vs.vet_id, s.id, s.name
		FROM vet_specialties vs
		JOIN specialties s ON s.id = vs.specialty_id
		WHERE vs.vet_id IN (?)
		ORDER BY s.name
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("build specialties query: %w", err)
	}

	var specs []vetSpecialtyRow
	if err := r.db.SelectContext(ctx, &specs, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select specialties: %w", err)
	}

	byVet := make(map[int][]vets.Specialty, len(rows))
	for _, s := range specs {
		byVet[s.VetID] = append(byVet[s.VetID], vets.Specialty{ID: s.ID, Name: s.Name})
	}

	for _, row := range rows {
		out = append(out, vets.Vet{
			ID:          row.ID,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Specialties: byVet[row.ID],
		})
	}
	return out, nil
}

type PetTypesRepo struct {
	db *sqlx.DB
}

func NewPetTypesRepo(db *sqlx.DB) *PetTypesRepo {
	return &PetTypesRepo{db: db}
}

func (r *PetTypesRepo) FindPetTypes(ctx context.Context) ([]owners.PetType, error) {
	var rows []struct {
		ID   int    `db:"id"`
		Name string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name FROM types ORDER BY name`); err != nil {
		return nil, fmt.Errorf("select pet types: %w", err)
	}

	out := make([]owners.PetType, 0, len(rows))
	for _, row := range rows {
		out = append(out, owners.PetType{ID: row.ID, Name: row.Name})
	}
	return out, nil
}
