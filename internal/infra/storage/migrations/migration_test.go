package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestRunner_UpIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrations.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	runner := NewRunner(db, "sqlite")

	count, err := runner.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(SQLiteMigrations()), count)

	count, err = runner.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	applied, err := runner.Applied(ctx)
	require.NoError(t, err)
	assert.True(t, applied["001"])

	var tables int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='devices'").Scan(&tables))
	assert.Equal(t, 1, tables)
}

func TestRunner_UnsupportedDialect(t *testing.T) {
	runner := NewRunner(nil, "oracle")

	_, err := runner.Up(context.Background())
	assert.ErrorContains(t, err, "unsupported dialect")
}

func TestMigrationVersionsAreAligned(t *testing.T) {
	sqlite := SQLiteMigrations()
	postgres := PostgresMigrations()

	require.Equal(t, len(sqlite), len(postgres))
	for i := range sqlite {
		assert.Equal(t, sqlite[i].Version, postgres[i].Version)
	}
}
