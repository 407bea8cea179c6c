package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aretw0/stagedash/pkg/domain"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath is where PipeGo keeps its run history.
const DefaultPath = "data/pipego.db"

// Run statuses written by the PipeGo runner.
const (
	RunRunning = "running"
	RunSuccess = "success"
	RunFailed  = "failed"
)

// Source implements ports.PipelineSource over a PipeGo run-history database.
//
// Every project is a pipeline and every part of a project is a stage, ordered by
// its first recorded run. A stage's status is the status of its most recent run.
type Source struct {
	db *sql.DB
}

// Open opens the database at path, creating the runs table if it is missing.
func Open(path string) (*Source, error) {
	if path == "" {
		path = DefaultPath
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Source{db: db}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *Source) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			status TEXT NOT NULL,
			config_path TEXT NOT NULL,
			project_name TEXT NOT NULL DEFAULT '',
			part TEXT NOT NULL DEFAULT 'default',
			started_at DATETIME NOT NULL,
			finished_at DATETIME,
			duration TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_project_name ON runs(project_name)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_part ON runs(part)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute schema query: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Source) Close() error {
	return s.db.Close()
}

// RecordRun appends a run to the history and returns its id.
func (s *Source) RecordRun(ctx context.Context, project, part, status string, startedAt time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (status, config_path, project_name, part, started_at) VALUES (?, ?, ?, ?, ?)`,
		status, "", project, part, startedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	return res.LastInsertId()
}

// ListPipelines returns every project name, ordered by its first run.
func (s *Source) ListPipelines(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT project_name
		FROM runs
		WHERE project_name != ''
		GROUP BY project_name
		ORDER BY MIN(id)`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// PipelineState returns the project's parts with the status of their latest run.
func (s *Source) PipelineState(ctx context.Context, name string) (*domain.Pipeline, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.part, r.status
		FROM runs r
		JOIN (
			SELECT part, MIN(id) AS first_id, MAX(id) AS last_id
			FROM runs
			WHERE project_name = ?
			GROUP BY part
		) p ON r.id = p.last_id
		ORDER BY p.first_id`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs of %s: %w", name, err)
	}
	defer rows.Close()

	pipeline := &domain.Pipeline{Name: name}
	for rows.Next() {
		var part, status string
		if err := rows.Scan(&part, &status); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		latest := domain.ParseExecutionStatus(StageStatus(status))
		pipeline.Stages = append(pipeline.Stages, domain.Stage{Name: part, Latest: &latest})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(pipeline.Stages) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPipelineNotFound, name)
	}
	return pipeline, nil
}

// StageStatus translates a PipeGo run status into the dashboard's raw status.
// Unknown statuses are passed through unchanged.
func StageStatus(runStatus string) string {
	switch runStatus {
	case RunRunning:
		return domain.RawInProgress
	case RunSuccess:
		return domain.RawSucceeded
	case RunFailed:
		return domain.RawFailed
	default:
		return runStatus
	}
}
