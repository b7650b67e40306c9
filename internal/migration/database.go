package migration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"xunit/internal/config"
)

// DatabaseManager makes sure the run history database exists
type DatabaseManager struct {
	config *config.Config
	logger *zap.Logger
}

// NewDatabaseManager creates a new DatabaseManager
func NewDatabaseManager(cfg *config.Config, logger *zap.Logger) *DatabaseManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DatabaseManager{config: cfg, logger: logger}
}

// EnsureDatabase creates the history database if it does not exist.
// For sqlite this means the directory holding the database file.
// It reports whether anything was created.
func (dm *DatabaseManager) EnsureDatabase(ctx context.Context) (bool, error) {
	driver, dsn, err := dm.config.HistoryDataSource()
	if err != nil {
		return false, err
	}

	switch driver {
	case "sqlite":
		return dm.ensureSQLiteDir(dsn)
	case "mysql":
		return dm.ensureMySQLDatabase(ctx)
	default:
		return false, fmt.Errorf("unsupported history driver %q", driver)
	}
}

func (dm *DatabaseManager) ensureSQLiteDir(dsn string) (bool, error) {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return false, nil
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("create history dir: %w", err)
	}
	dm.logger.Info("Created history directory", zap.String("dir", dir))
	return true, nil
}

func (dm *DatabaseManager) ensureMySQLDatabase(ctx context.Context) (bool, error) {
	serverDSN, err := dm.config.HistoryServerDSN()
	if err != nil {
		return false, err
	}

	// Connect to MySQL server (without specifying database)
	db, err := sql.Open("mysql", serverDSN)
	if err != nil {
		return false, fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return false, fmt.Errorf("failed to ping database server: %w", err)
	}

	dbName := dm.config.HistoryDatabaseName()
	exists, err := databaseExists(ctx, db, dbName)
	if err != nil {
		return false, fmt.Errorf("failed to check database %s: %w", dbName, err)
	}
	if exists {
		return false, nil
	}
	if err := createDatabase(ctx, db, dbName); err != nil {
		return false, fmt.Errorf("failed to create database %s: %w", dbName, err)
	}
	dm.logger.Info("Created history database", zap.String("database", dbName))
	return true, nil
}

func databaseExists(ctx context.Context, db *sql.DB, dbName string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRowContext(ctx, query, dbName).Scan(&exists)
	return exists, err
}

func createDatabase(ctx context.Context, db *sql.DB, dbName string) error {
	if !isValidDatabaseName(dbName) {
		return fmt.Errorf("invalid database name: %s", dbName)
	}

	query := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)
	_, err := db.ExecContext(ctx, query)
	return err
}

// isValidDatabaseName accepts unquoted MySQL identifiers only
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '$':
		default:
			return false
		}
	}
	return true
}
