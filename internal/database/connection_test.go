package database

import (
	"context"
	"testing"

	"devconnector/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverName(t *testing.T) {
	name, err := DriverName("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", name)

	name, err = DriverName("postgres")
	require.NoError(t, err)
	assert.Equal(t, "postgres", name)

	_, err = DriverName("mongodb")
	assert.Error(t, err)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "./app.db?_foreign_keys=on", sqliteDSN("./app.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", sqliteDSN("file:x?mode=memory"))
}

func TestNewConnection_UnsupportedType(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Type: "oracle"})
	assert.Error(t, err)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	cfg := &config.DatabaseConfig{Type: "sqlite", Path: "file:migrations_test?mode=memory&cache=shared"}

	db, err := NewConnection(cfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(context.Background(), db, cfg.Type))
	require.NoError(t, RunMigrations(context.Background(), db, cfg.Type))

	for _, table := range []string{"users", "profiles", "profile_experience", "profile_education"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}
