package users

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/models"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, &apperrors.DataAccessError{Op: "cannot lookup null or empty user"}
	}

	query :=
		`SELECT username, password_hash, salt, identity_id FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	var identityID sql.NullString
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.Username, &user.PasswordHash, &user.Salt, &identityID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperrors.DataAccessError{Op: "get user", Err: apperrors.ErrNotFound}
		}
		return nil, &apperrors.DataAccessError{Op: "get user", Err: err}
	}

	if identityID.Valid && identityID.String != "" {
		user.Identity = &models.UserIdentity{IdentityID: identityID.String}
	}
	return user, nil
}

// Create relies on the UNIQUE constraint on username; a concurrent
// duplicate insert surfaces as apperrors.ErrAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (string, error) {
	if user == nil || strings.TrimSpace(user.Username) == "" {
		return "", &apperrors.DataAccessError{Op: "cannot create user with empty username"}
	}

	query :=
		`INSERT INTO users (username, password_hash, salt, identity_id)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.Username, user.PasswordHash, user.Salt, user.IdentityID())

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return "", &apperrors.DataAccessError{Op: "create user", Err: apperrors.ErrAlreadyExists}
		}
		return "", &apperrors.DataAccessError{Op: "create user", Err: err}
	}

	return user.Username, nil
}
