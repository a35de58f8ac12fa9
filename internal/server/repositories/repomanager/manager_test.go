package repomanager

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRepositoryManager_DriverSelection(t *testing.T) {
	pg, err := NewRepositoryManager("pgx")
	require.NoError(t, err)
	require.IsType(t, &PostgresRepositoryManager{}, pg)

	lite, err := NewRepositoryManager("sqlite")
	require.NoError(t, err)
	require.IsType(t, &SQLiteRepositoryManager{}, lite)

	_, err = NewRepositoryManager("oracle")
	require.Error(t, err)
}

func TestSQLiteRunMigrations_CreatesUsersTable(t *testing.T) {
	db, err := sql.Open("sqlite", "file:repomanager_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	m, err := NewSQLiteRepositoryManager()
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(context.Background(), db))

	var n int
	err = db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n)
	require.NoError(t, err)
	require.Zero(t, n)
}
