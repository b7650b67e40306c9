package migration

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"xunit/internal/config"
	"xunit/internal/storage"
)

// Migrator runs database migrations
type Migrator interface {
	Run(ctx context.Context) error
}

// SchemaMigrator prepares the run history database and its tables
type SchemaMigrator struct {
	config   *config.Config
	logger   *zap.Logger
	database *DatabaseManager
}

// NewSchemaMigrator creates a migrator for the configured history database
func NewSchemaMigrator(cfg *config.Config, logger *zap.Logger) *SchemaMigrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchemaMigrator{
		config:   cfg,
		logger:   logger,
		database: NewDatabaseManager(cfg, logger),
	}
}

// Run creates the database if needed and then the history schema
func (m *SchemaMigrator) Run(ctx context.Context) error {
	if _, err := m.database.EnsureDatabase(ctx); err != nil {
		return err
	}

	driver, dsn, err := m.config.HistoryDataSource()
	if err != nil {
		return err
	}
	history, err := storage.OpenHistory(ctx, driver, dsn, m.logger)
	if err != nil {
		return err
	}
	defer history.Close()

	if err := history.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("migrate %s history: %w", driver, err)
	}
	m.logger.Info("History schema is up to date", zap.String("driver", driver))
	return nil
}
