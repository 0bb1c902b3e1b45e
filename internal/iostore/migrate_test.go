package iostore

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veljkom/venuerank/schema"
)

func TestMigrateStore_NoneBackend(t *testing.T) {
	err := MigrateStore(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrateStore_SQLite(t *testing.T) {
	// Create a temporary database file for testing
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_migration.db")

	// Run migration to latest version (should go to version 1)
	err := MigrateStore(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)

	// Verify migration was successful by checking the database file exists
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)

	// Run migration again (should be a no-op)
	err = MigrateStore(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)

	// Run migration to a specific version (version 1)
	err = MigrateStore(schema.SQLiteBackend, dbPath, 1)
	assert.NoError(t, err)

	// Rollback to version 0
	err = MigrateStore(schema.SQLiteBackend, dbPath, 0)
	assert.NoError(t, err)

	// Migrate back up to version 1
	err = MigrateStore(schema.SQLiteBackend, dbPath, 1)
	assert.NoError(t, err)
}

func TestMigrateStore_SQLiteInMemory(t *testing.T) {
	// Test with in-memory database
	err := MigrateStore(schema.SQLiteBackend, ":memory:", -1)
	require.NoError(t, err)
}

func TestMigrateStore_InvalidMySQLConnString(t *testing.T) {
	err := MigrateStore(schema.MySQLBackend, "not a dsn", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse MySQL connection string")
}

func TestMigrationFilesPerDialect(t *testing.T) {
	// Every wired SQL backend ships its own dialect directory with matching
	// up/down pairs under the same version numbers.
	for _, backend := range []schema.DatabaseBackend{
		schema.SQLiteBackend,
		schema.MySQLBackend,
		schema.PostgreSQLBackend,
	} {
		entries, err := fs.ReadDir(migrationsFS, "migrations/"+string(backend))
		require.NoError(t, err, "backend %s", backend)

		ups, downs := 0, 0
		for _, e := range entries {
			switch {
			case strings.HasSuffix(e.Name(), ".up.sql"):
				ups++
			case strings.HasSuffix(e.Name(), ".down.sql"):
				downs++
			}
		}
		assert.Positive(t, ups, "backend %s has no up migrations", backend)
		assert.Equal(t, ups, downs, "backend %s up/down mismatch", backend)
	}
}

func TestMigrationDialects(t *testing.T) {
	read := func(backend schema.DatabaseBackend) string {
		data, err := fs.ReadFile(migrationsFS,
			"migrations/"+string(backend)+"/000001_create_core_tables.up.sql")
		require.NoError(t, err)
		return string(data)
	}

	sqliteSQL := read(schema.SQLiteBackend)
	assert.Contains(t, sqliteSQL, "AUTOINCREMENT")

	mysqlSQL := read(schema.MySQLBackend)
	assert.Contains(t, mysqlSQL, "AUTO_INCREMENT")
	assert.NotContains(t, mysqlSQL, "AUTOINCREMENT")

	postgresSQL := read(schema.PostgreSQLBackend)
	assert.Contains(t, postgresSQL, "BIGSERIAL")
	assert.NotContains(t, postgresSQL, "AUTOINCREMENT")
}
