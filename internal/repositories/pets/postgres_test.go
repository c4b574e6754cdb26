package pets

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/models"
)

func TestPostgresRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pets")).
		WithArgs(sqlmock.AnyArg(), "dog", "Rex", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresRepository(db, 50)
	id, err := repo.Create(context.Background(), &models.Pet{Type: "dog", Name: "Rex", Age: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "pet_type", "pet_name", "pet_age"}).
		AddRow("pet-1", "dog", "Rex", 3)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, pet_type, pet_name, pet_age FROM pets")).
		WithArgs("pet-1").
		WillReturnRows(rows)

	repo := NewPostgresRepository(db, 50)
	pet, err := repo.GetByID(context.Background(), "pet-1")
	require.NoError(t, err)
	assert.Equal(t, "dog", pet.Type)
	assert.Equal(t, 3, pet.Age)
}

func TestPostgresRepository_GetMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, pet_type, pet_name, pet_age FROM pets")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "pet_type", "pet_name", "pet_age"}))

	repo := NewPostgresRepository(db, 50)
	_, err = repo.GetByID(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostgresRepository_ListClamping(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "pet_type", "pet_name", "pet_age"}).
		AddRow("pet-1", "dog", "", 0).
		AddRow("pet-2", "cat", "", 0)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, pet_type, pet_name, pet_age FROM pets")).
		WithArgs(50).
		WillReturnRows(rows)

	repo := NewPostgresRepository(db, 50)
	pets, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, pets, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}
