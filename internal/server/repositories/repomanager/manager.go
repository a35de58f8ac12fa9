package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/noflow/engine/internal/dbx"
	"github.com/noflow/engine/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes a schema migration hook for the backend it serves.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

// NewRepositoryManager returns the manager matching the configured database
// driver ("pgx" or "sqlite").
func NewRepositoryManager(driver string) (RepositoryManager, error) {
	switch driver {
	case "pgx":
		return NewPostgresRepositoryManager()
	case "sqlite":
		return NewSQLiteRepositoryManager()
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
}
