// Package store provides optional PostgreSQL persistence for tailoring runs
// and their per-job results. The pipeline works without it; a connection
// failure is a warning, not a fatal error.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CreateRun records the start of an orchestration run and returns its ID.
func (s *Store) CreateRun(ctx context.Context, inputDir string, jobCount int) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO tailoring_runs (input_dir, job_count, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		inputDir, jobCount,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a run as finished with the given status.
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE tailoring_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveResult stores one job's tailoring result. Facts are stored as JSON so
// the keyword list survives intact. Re-saving a job within a run upserts.
func (s *Store) SaveResult(ctx context.Context, runID uuid.UUID, jobName, company, jobTitle string, facts any, resumePath, coverLetterPath string) error {
	factsJSON, err := json.Marshal(facts)
	if err != nil {
		return fmt.Errorf("failed to marshal facts: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO tailoring_results (run_id, job_name, company, job_title, facts, resume_path, cover_letter_path)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (run_id, job_name) DO UPDATE
		 SET company = $3, job_title = $4, facts = $5, resume_path = $6, cover_letter_path = $7, created_at = NOW()`,
		runID, jobName, company, jobTitle, factsJSON, resumePath, coverLetterPath,
	)
	if err != nil {
		return fmt.Errorf("failed to save result for job %s: %w", jobName, err)
	}
	return nil
}

// Run is one recorded orchestration run.
type Run struct {
	ID          uuid.UUID  `json:"id"`
	InputDir    string     `json:"input_dir"`
	JobCount    int        `json:"job_count"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// GetRun retrieves a run by ID, or nil when it does not exist.
func (s *Store) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := s.pool.QueryRow(ctx,
		`SELECT id, input_dir, job_count, status, created_at, completed_at
		 FROM tailoring_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.InputDir, &run.JobCount, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, input_dir, job_count, status, created_at, completed_at
		 FROM tailoring_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.InputDir, &run.JobCount, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
