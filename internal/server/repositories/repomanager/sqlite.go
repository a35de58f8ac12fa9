package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/noflow/engine/internal/dbx"
	"github.com/noflow/engine/internal/server/migrations"
	"github.com/noflow/engine/internal/server/repositories/users"
)

// SQLiteRepositoryManager vends SQLite-backed repositories. The embedded
// backend keeps local development free of external services.
type SQLiteRepositoryManager struct{}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() (*SQLiteRepositoryManager, error) {
	return &SQLiteRepositoryManager{}, nil
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// RunMigrations sets up goose with the embedded migrations and runs the
// sqlite migration set.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "sqlite")
}
