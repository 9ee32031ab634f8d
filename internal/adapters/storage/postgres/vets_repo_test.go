package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/platform/paging"
)

var (
	vetCols  = []string{"id", "first_name", "last_name"}
	specCols = []string{"vet_id", "id", "name"}
)

func TestVetsRepo_FindAll(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVetsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name FROM vets ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(vetCols).
			AddRow(1, "James", "Carter").
			AddRow(3, "Linda", "Douglas"))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE vs.vet_id IN ($1, $2)`)).
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows(specCols).
			AddRow(3, 3, "dentistry").
			AddRow(3, 2, "surgery"))

	list, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Empty(t, list[0].Specialties)
	require.Len(t, list[1].Specialties, 2)
	assert.Equal(t, "dentistry", list[1].Specialties[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVetsRepo_FindPage(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVetsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM vets`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))
	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $1 OFFSET $2`)).
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows(vetCols).AddRow(6, "Sharon", "Jenkins"))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE vs.vet_id IN ($1)`)).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows(specCols))

	page, err := repo.FindPage(context.Background(), paging.NewRequest(2, 5))
	require.NoError(t, err)

	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 2, page.TotalPages())
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Jenkins", page.Items[0].LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVetsRepo_FindAllError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVetsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM vets`)).WillReturnError(errors.New("boom"))

	_, err := repo.FindAll(context.Background())
	assert.Error(t, err)
}

func TestPetTypesRepo_FindPetTypes(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPetTypesRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM types ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(5, "bird").
			AddRow(1, "cat"))

	types, err := repo.FindPetTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, 5, types[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikePrefix(t *testing.T) {
	assert.Equal(t, "%", likePrefix(""))
	assert.Equal(t, "Dav%", likePrefix("Dav"))
	assert.Equal(t, `a\\b%`, likePrefix(`a\b`))
}
