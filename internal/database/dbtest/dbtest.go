// Package dbtest provides migrated in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"devconnector/internal/database"
	"devconnector/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// New opens a private shared-cache in-memory database, runs all migrations and
// closes it when the test ends.
func New(t testing.TB) *sql.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Type: "sqlite",
		Path: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}

	db, err := database.NewConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(context.Background(), db, cfg.Type))

	return db
}
