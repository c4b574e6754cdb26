package users

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/models"
)

func TestPostgresRepository_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"username", "password_hash", "salt", "identity_id"}).
		AddRow("alice", []byte{1, 2}, []byte{3, 4}, "id-1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT username, password_hash, salt, identity_id FROM users")).
		WithArgs("alice").
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	user, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "id-1", user.IdentityID())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT username, password_hash, salt, identity_id FROM users")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password_hash", "salt", "identity_id"}))

	repo := NewPostgresRepository(db)
	_, err = repo.GetByUsername(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostgresRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", []byte{1, 2}, []byte{3, 4}, "id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresRepository(db)
	name, err := repo.Create(context.Background(), &models.User{
		Username:     "alice",
		PasswordHash: []byte{1, 2},
		Salt:         []byte{3, 4},
		Identity:     &models.UserIdentity{IdentityID: "id-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	repo := NewPostgresRepository(db)
	_, err = repo.Create(context.Background(), &models.User{Username: "alice"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestPostgresRepository_CreateFault(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New("connection reset"))

	repo := NewPostgresRepository(db)
	_, err = repo.Create(context.Background(), &models.User{Username: "alice"})
	require.Error(t, err)

	var dae *apperrors.DataAccessError
	assert.ErrorAs(t, err, &dae)
}
