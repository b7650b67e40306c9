package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"xunit/internal/report"
)

// schema works unchanged on MySQL and SQLite
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		started_at BIGINT NOT NULL,
		total INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		errored INTEGER NOT NULL,
		duration_ms BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS run_failures (
		run_id VARCHAR(36) NOT NULL,
		position INTEGER NOT NULL,
		suite VARCHAR(255) NOT NULL,
		test VARCHAR(255) NOT NULL,
		status VARCHAR(16) NOT NULL,
		kind VARCHAR(32) NOT NULL,
		message TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	)`,
}

// RunRecord is one stored run
type RunRecord struct {
	ID        string
	StartedAt time.Time
	Total     int
	Passed    int
	Failed    int
	Errored   int
	Duration  time.Duration
}

// FailureRow is one stored failure of a run
type FailureRow struct {
	Suite   string
	Test    string
	Status  string
	Kind    string
	Message string
}

// History keeps a record of past runs
type History interface {
	Record(ctx context.Context, runID string, startedAt time.Time, summary report.Summary) error
	Recent(ctx context.Context, limit int) ([]RunRecord, error)
	Failures(ctx context.Context, runID string) ([]FailureRow, error)
	Close() error
}

// SQLHistory stores runs in a MySQL or SQLite database
type SQLHistory struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenHistory connects to the history database and checks the connection
func OpenHistory(ctx context.Context, driver, dsn string, logger *zap.Logger) (*SQLHistory, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s history: %w", driver, err)
	}
	if driver == "sqlite" {
		// a single connection serializes writers and keeps in-memory databases alive
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s history: %w", driver, err)
	}
	return NewSQLHistory(db, logger), nil
}

// NewSQLHistory wraps an open database
func NewSQLHistory(db *sql.DB, logger *zap.Logger) *SQLHistory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLHistory{db: db, logger: logger}
}

// EnsureSchema creates the history tables if they do not exist
func (h *SQLHistory) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := h.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create history schema: %w", err)
		}
	}
	return nil
}

// Record stores a run and its failures in one transaction
func (h *SQLHistory) Record(ctx context.Context, runID string, startedAt time.Time, summary report.Summary) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, total, passed, failed, errored, duration_ms) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, startedAt.UnixMilli(), summary.Found, summary.Passed, summary.Failed, summary.Errored, summary.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("insert run %s: %w", runID, err)
	}

	for i, f := range summary.Failures {
		kind := ""
		if f.Kind != 0 {
			kind = f.Kind.String()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_failures (run_id, position, suite, test, status, kind, message) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, i, f.ID.Suite, f.ID.Name, f.Status.String(), kind, f.Message)
		if err != nil {
			return fmt.Errorf("insert failure %s: %w", f.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", runID, err)
	}
	h.logger.Debug("Recorded run in history",
		zap.String("run_id", runID),
		zap.Int("failures", len(summary.Failures)))
	return nil
}

// Recent returns the latest runs, newest first
func (h *SQLHistory) Recent(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, started_at, total, passed, failed, errored, duration_ms FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var (
			r          RunRecord
			startedAt  int64
			durationMS int64
		)
		if err := rows.Scan(&r.ID, &startedAt, &r.Total, &r.Passed, &r.Failed, &r.Errored, &durationMS); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt = time.UnixMilli(startedAt).UTC()
		r.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, r)
	}
	return records, rows.Err()
}

// Failures returns the failures of a run in run order
func (h *SQLHistory) Failures(ctx context.Context, runID string) ([]FailureRow, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT suite, test, status, kind, message FROM run_failures WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("query failures: %w", err)
	}
	defer rows.Close()

	var failures []FailureRow
	for rows.Next() {
		var f FailureRow
		if err := rows.Scan(&f.Suite, &f.Test, &f.Status, &f.Kind, &f.Message); err != nil {
			return nil, fmt.Errorf("scan failure: %w", err)
		}
		failures = append(failures, f)
	}
	return failures, rows.Err()
}

// Close closes the database
func (h *SQLHistory) Close() error {
	return h.db.Close()
}
