package migration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"xunit/internal/config"
	"xunit/internal/storage"
)

func TestIsValidDatabaseName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"default", "xunit_history", true},
		{"digits", "runs_2024", true},
		{"empty", "", false},
		{"quote", "x'y", false},
		{"backtick", "x`y", false},
		{"statement", "x;DROP", false},
		{"comment", "x--", false},
		{"space", "my db", false},
		{"too long", string(make([]byte, 65)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidDatabaseName(tt.input))
		})
	}
}

func TestSchemaMigrator_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	cfg.OutputJSONDir = filepath.Join("nested", "storage")

	m := NewSchemaMigrator(cfg, zap.NewNop())
	require.NoError(t, m.Run(ctx))
	// a second run finds everything in place
	require.NoError(t, m.Run(ctx))

	driver, dsn, err := cfg.HistoryDataSource()
	require.NoError(t, err)
	_, err = os.Stat(dsn)
	require.NoError(t, err)

	history, err := storage.OpenHistory(ctx, driver, dsn, nil)
	require.NoError(t, err)
	defer history.Close()

	runs, err := history.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestEnsureDatabase_SQLiteDirectory(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	dm := NewDatabaseManager(cfg, nil)

	created, err := dm.EnsureDatabase(context.Background())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = dm.EnsureDatabase(context.Background())
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureDatabase_MemoryDSN(t *testing.T) {
	cfg := config.New()
	cfg.History.DSN = ":memory:"

	created, err := NewDatabaseManager(cfg, nil).EnsureDatabase(context.Background())
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureDatabase_UnsupportedDriver(t *testing.T) {
	cfg := config.New()
	cfg.History.Driver = "postgres"

	_, err := NewDatabaseManager(cfg, nil).EnsureDatabase(context.Background())
	assert.ErrorContains(t, err, "unsupported history driver")
}
