package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"petclinic/internal/domain/owners"
	"petclinic/internal/platform/paging"
)

type OwnersRepo struct {
	db *sqlx.DB
}

func NewOwnersRepo(db *sqlx.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

type ownerRow struct {
	ID        int    `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Address   string `db:"address"`
	City      string `db:"city"`
	Telephone string `db:"telephone"`
}

type petRow struct {
	ID        int       `db:"id"`
	OwnerID   int       `db:"owner_id"`
	Name      string    `db:"name"`
	BirthDate time.Time `db:"birth_date"`
	TypeID    int       `db:"type_id"`
	TypeName  string    `db:"type_name"`
}

type visitRow struct {
	ID          int       `db:"id"`
	PetID       int       `db:"pet_id"`
	Date        time.Time `db:"visit_date"`
	Description string    `db:"description"`
}

func (r ownerRow) toDomain() owners.Owner {
	return owners.Owner{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		City:      r.City,
		Telephone: r.Telephone,
	}
}

func (r *OwnersRepo) FindByLastName(ctx context.Context, lastName string, page paging.Request) (paging.Page[owners.Owner], error) {
	page = paging.NewRequest(page.Page, page.Size)
	pattern := likePrefix(lastName)

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM owners WHERE last_name ILIKE $1`, pattern); err != nil {
		return paging.Page[owners.Owner]{}, fmt.Errorf("count owners: %w", err)
	}

	var rows []ownerRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE last_name ILIKE $1
		ORDER BY last_name, id
		LIMIT $2 OFFSET $3
	`, pattern, page.Limit(), page.Offset()); err != nil {
		return paging.Page[owners.Owner]{}, fmt.Errorf("select owners: %w", err)
	}

	items := make([]owners.Owner, 0, len(rows))
	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
		ids = append(ids, row.ID)
	}

	if err := r.attachPets(ctx, items, ids); err != nil {
		return paging.Page[owners.Owner]{}, err
	}

	return paging.Page[owners.Owner]{
		Items:      items,
		Number:     page.Page,
		Size:       page.Size,
		TotalItems: total,
	}, nil
}

func (r *OwnersRepo) FindByID(ctx context.Context, id int) (owners.Owner, error) {
	var row ownerRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, fmt.Errorf("select owner: %w", err)
	}

	out := []owners.Owner{row.toDomain()}
	if err := r.attachPets(ctx, out, []int{row.ID}); err != nil {
		return owners.Owner{}, err
	}
	return out[0], nil
}

// attachPets carga mascotas (con tipo) y visitas de varios owners en dos consultas.
func (r *OwnersRepo) attachPets(ctx context.Context, list []owners.Owner, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
		SELECT p.id, p.owner_id, p.name, p.birth_date, t.id AS type_id, t.name AS type_name
		FROM pets p
		JOIN types t ON t.id = p.type_id
		WHERE p.owner_id IN (?)
		ORDER BY p.name, p.id
	`, ids)
	if err != nil {
		return fmt.Errorf("build pets query: %w", err)
	}

	var pets []petRow
	if err := r.db.SelectContext(ctx, &pets, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("select pets: %w", err)
	}
	if len(pets) == 0 {
		return nil
	}

	petIDs := make([]int, 0, len(pets))
	for _, p := range pets {
		petIDs = append(petIDs, p.ID)
	}

	query, args, err = sqlx.In(`
		SELECT id, pet_id, visit_date, description
		FROM visits
		WHERE pet_id IN (?)
		ORDER BY visit_date, id
	`, petIDs)
	if err != nil {
		return fmt.Errorf("build visits query: %w", err)
	}

	var visits []visitRow
	if err := r.db.SelectContext(ctx, &visits, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("select visits: %w", err)
	}

	byPet := make(map[int][]owners.Visit, len(pets))
	for _, v := range visits {
		byPet[v.PetID] = append(byPet[v.PetID], owners.Visit{
			ID:          v.ID,
			Date:        v.Date,
			Description: v.Description,
		})
	}

	index := make(map[int]int, len(list))
	for i, o := range list {
		index[o.ID] = i
	}
	for _, p := range pets {
		i, ok := index[p.OwnerID]
		if !ok {
			continue
		}
		list[i].AddPet(owners.Pet{
			ID:        p.ID,
			Name:      p.Name,
			BirthDate: p.BirthDate,
			Type:      owners.PetType{ID: p.TypeID, Name: p.TypeName},
			Visits:    byPet[p.ID],
		})
	}
	return nil
}

// Save persiste el agregado en una transacción. Las visitas ya guardadas no se modifican.
func (r *OwnersRepo) Save(ctx context.Context, o *owners.Owner) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if o.IsNew() {
		err = tx.QueryRowxContext(ctx, `
			INSERT INTO owners (first_name, last_name, address, city, telephone)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, o.FirstName, o.LastName, o.Address, o.City, o.Telephone).Scan(&o.ID)
		if err != nil {
			return fmt.Errorf("insert owner: %w", err)
		}
	} else {
		res, err := tx.ExecContext(ctx, `
			UPDATE owners
			SET first_name = $2, last_name = $3, address = $4, city = $5, telephone = $6
			WHERE id = $1
		`, o.ID, o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
		if err != nil {
			return fmt.Errorf("update owner: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return owners.ErrNotFound
		}
	}

	for i := range o.Pets {
		if err := savePet(ctx, tx, o.ID, &o.Pets[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func savePet(ctx context.Context, tx *sqlx.Tx, ownerID int, p *owners.Pet) error {
	if p.IsNew() {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO pets (name, birth_date, type_id, owner_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, p.Name, p.BirthDate, p.Type.ID, ownerID).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("insert pet: %w", err)
		}
	} else {
		_, err := tx.ExecContext(ctx, `
			UPDATE pets
			SET name = $2, birth_date = $3, type_id = $4
			WHERE id = $1 AND owner_id = $5
		`, p.ID, p.Name, p.BirthDate, p.Type.ID, ownerID)
		if err != nil {
			return fmt.Errorf("update pet: %w", err)
		}
	}

	for i := range p.Visits {
		v := &p.Visits[i]
		if !v.IsNew() {
			continue
		}
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO visits (pet_id, visit_date, description)
			VALUES ($1, $2, $3)
			RETURNING id
		`, p.ID, v.Date, v.Description).Scan(&v.ID)
		if err != nil {
			return fmt.Errorf("insert visit: %w", err)
		}
	}
	return nil
}
