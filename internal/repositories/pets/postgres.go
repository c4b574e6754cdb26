package pets

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/models"
)

type PostgresRepository struct {
	db        *sql.DB
	scanLimit int
}

func NewPostgresRepository(db *sql.DB, scanLimit int) *PostgresRepository {
	return &PostgresRepository{db: db, scanLimit: scanLimit}
}

func (r *PostgresRepository) Create(ctx context.Context, pet *models.Pet) (string, error) {
	if pet == nil || strings.TrimSpace(pet.Type) == "" {
		return "", &apperrors.DataAccessError{Op: "cannot create pet with empty type"}
	}

	id := pet.ID
	if id == "" {
		id = uuid.NewString()
	}

	query :=
		`INSERT INTO pets (id, pet_type, pet_name, pet_age)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query, id, pet.Type, pet.Name, pet.Age)
	if err != nil {
		return "", &apperrors.DataAccessError{Op: "create pet", Err: err}
	}

	return id, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &apperrors.DataAccessError{Op: "cannot lookup null or empty petId"}
	}

	query :=
		`SELECT id, pet_type, pet_name, pet_age FROM pets
		 WHERE id = $1
		 `

	pet := &models.Pet{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&pet.ID, &pet.Type, &pet.Name, &pet.Age)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperrors.DataAccessError{Op: "get pet", Err: apperrors.ErrNotFound}
		}
		return nil, &apperrors.DataAccessError{Op: "get pet", Err: err}
	}

	return pet, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]models.Pet, error) {
	if limit <= 0 || limit > r.scanLimit {
		limit = r.scanLimit
	}

	query :=
		`SELECT id, pet_type, pet_name, pet_age FROM pets
		 ORDER BY created_at
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, &apperrors.DataAccessError{Op: "list pets", Err: err}
	}
	defer rows.Close()

	pets := []models.Pet{}
	for rows.Next() {
		var pet models.Pet
		if err := rows.Scan(&pet.ID, &pet.Type, &pet.Name, &pet.Age); err != nil {
			return nil, &apperrors.DataAccessError{Op: "decode pets", Err: err}
		}
		pets = append(pets, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperrors.DataAccessError{Op: "list pets", Err: err}
	}

	return pets, nil
}
