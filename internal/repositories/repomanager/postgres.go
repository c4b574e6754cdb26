package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/petgate/internal/migrations"
	"github.com/dmitrijs2005/petgate/internal/repositories/pets"
	"github.com/dmitrijs2005/petgate/internal/repositories/users"
)

type PostgresManager struct {
	db    *sql.DB
	users users.Repository
	pets  pets.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func NewPostgresManager(dsn string, scanLimit int) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:    db,
		users: users.NewPostgresRepository(db),
		pets:  pets.NewPostgresRepository(db, scanLimit),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresManager) Users() users.Repository {
	return m.users
}

func (m *PostgresManager) Pets() pets.Repository {
	return m.pets
}
