// Package store persists a processing-run audit trail in PostgreSQL.
// Persistence is optional: when no database is configured the runner simply
// skips auditing, the engine itself never touches the store.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Run is one audited processing run.
type Run struct {
	ID         uuid.UUID `json:"id"`
	ProfileKey string    `json:"profileKey"`
	FileName   string    `json:"fileName"`
	Encoding   string    `json:"encoding"`
	Delimiter  string    `json:"delimiter"`
	RowCount   int       `json:"rowCount"`
	OutputRows int       `json:"outputRows"`
	ErrorCount int       `json:"errorCount"`
	Duration   int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RunParams contains the facts recorded for a finished run.
type RunParams struct {
	ProfileKey string
	FileName   string
	Encoding   string
	Delimiter  string
	RowCount   int
	OutputRows int
	ErrorCount int
	Duration   time.Duration
}

// Store handles run audit operations.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a store over an existing connection pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Connect opens a connection pool and verifies it with a ping.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS processing_runs (
    id           UUID PRIMARY KEY,
    profile_key  TEXT NOT NULL,
    file_name    TEXT NOT NULL,
    encoding     TEXT NOT NULL,
    delimiter    TEXT NOT NULL,
    row_count    INTEGER NOT NULL,
    output_rows  INTEGER NOT NULL,
    error_count  INTEGER NOT NULL,
    duration_ms  BIGINT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_processing_runs_profile
    ON processing_runs (profile_key, created_at DESC);
`

// EnsureSchema creates the audit table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// RecordRun inserts one audit row and returns it with its generated id.
func (s *Store) RecordRun(ctx context.Context, params RunParams) (Run, error) {
	run := Run{
		ID:         uuid.New(),
		ProfileKey: params.ProfileKey,
		FileName:   params.FileName,
		Encoding:   params.Encoding,
		Delimiter:  params.Delimiter,
		RowCount:   params.RowCount,
		OutputRows: params.OutputRows,
		ErrorCount: params.ErrorCount,
		Duration:   params.Duration.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}

	const q = `
INSERT INTO processing_runs
    (id, profile_key, file_name, encoding, delimiter, row_count, output_rows, error_count, duration_ms, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.pool.Exec(ctx, q,
		run.ID, run.ProfileKey, run.FileName, run.Encoding, run.Delimiter,
		run.RowCount, run.OutputRows, run.ErrorCount, run.Duration, run.CreatedAt)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

// RecentRuns returns the latest runs for a profile, newest first. An empty
// profileKey returns runs across all profiles.
func (s *Store) RecentRuns(ctx context.Context, profileKey string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	const q = `
SELECT id, profile_key, file_name, encoding, delimiter, row_count, output_rows, error_count, duration_ms, created_at
FROM processing_runs
WHERE ($1 = '' OR profile_key = $1)
ORDER BY created_at DESC
LIMIT $2`

	rows, err := s.pool.Query(ctx, q, profileKey, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.ProfileKey, &r.FileName, &r.Encoding, &r.Delimiter,
			&r.RowCount, &r.OutputRows, &r.ErrorCount, &r.Duration, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
