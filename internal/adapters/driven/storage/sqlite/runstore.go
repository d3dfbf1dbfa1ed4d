package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/prepset/prepset-cli/internal/core/domain"
	"github.com/prepset/prepset-cli/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// SaveRun stores a run and its per-split summaries.
func (s *runStore) SaveRun(ctx context.Context, run *domain.Run) error {
	if run == nil {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, strategy, started_at, finished_at, status, error)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			strategy = excluded.strategy,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at,
			status = excluded.status,
			error = excluded.error
	`, run.ID, run.Strategy,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		string(run.Status), nullString(run.Error))
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	for _, split := range run.Splits {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_splits (run_id, split, input_path, output_path, accepted, rejected)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(run_id, split) DO UPDATE SET
				input_path = excluded.input_path,
				output_path = excluded.output_path,
				accepted = excluded.accepted,
				rejected = excluded.rejected
		`, run.ID, string(split.Split), split.InputPath,
			nullString(split.OutputPath), split.Accepted, split.Rejected)
		if err != nil {
			return fmt.Errorf("saving run split: %w", err)
		}
	}

	return tx.Commit()
}

// SaveRejections stores the rejection diagnostics for a run.
func (s *runStore) SaveRejections(ctx context.Context, runID string, rejections []domain.RunRejection) error {
	if len(rejections) == 0 {
		return nil
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, rej := range rejections {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_rejections (run_id, split, line, reason)
			VALUES (?, ?, ?, ?)
		`, runID, string(rej.Split), rej.Line, rej.Reason)
		if err != nil {
			return fmt.Errorf("saving rejection: %w", err)
		}
	}

	return tx.Commit()
}

// GetRun retrieves a run by ID, including its splits.
func (s *runStore) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, strategy, started_at, finished_at, status, error
		FROM runs WHERE id = ?
	`, runID)

	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}

	splits, err := s.listSplits(ctx, runID)
	if err != nil {
		return nil, err
	}
	run.Splits = splits

	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *runStore) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	query := `
		SELECT id, strategy, started_at, finished_at, status, error
		FROM runs ORDER BY started_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}

		splits, err := s.listSplits(ctx, run.ID)
		if err != nil {
			return nil, err
		}
		run.Splits = splits
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

// ListRejections returns a run's diagnostics in insertion order.
func (s *runStore) ListRejections(ctx context.Context, runID string) ([]domain.RunRejection, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT split, line, reason
		FROM run_rejections WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying rejections: %w", err)
	}
	defer rows.Close()

	var rejections []domain.RunRejection //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rej domain.RunRejection
		var split string
		if err := rows.Scan(&split, &rej.Line, &rej.Reason); err != nil {
			return nil, fmt.Errorf("scanning rejection: %w", err)
		}
		rej.Split = domain.SplitName(split)
		rejections = append(rejections, rej)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rejections: %w", err)
	}

	return rejections, nil
}

// listSplits loads the per-split summaries for a run.
func (s *runStore) listSplits(ctx context.Context, runID string) ([]domain.RunSplit, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT split, input_path, output_path, accepted, rejected
		FROM run_splits WHERE run_id = ? ORDER BY split DESC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run splits: %w", err)
	}
	defer rows.Close()

	var splits []domain.RunSplit //nolint:prealloc // size unknown from query
	for rows.Next() {
		var split domain.RunSplit
		var name string
		var outputPath sql.NullString
		if err := rows.Scan(&name, &split.InputPath, &outputPath,
			&split.Accepted, &split.Rejected); err != nil {
			return nil, fmt.Errorf("scanning run split: %w", err)
		}
		split.Split = domain.SplitName(name)
		split.OutputPath = outputPath.String
		splits = append(splits, split)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run splits: %w", err)
	}

	return splits, nil
}

// scanner abstracts sql.Row and sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

// scanRun scans one runs row.
func scanRun(row scanner) (*domain.Run, error) {
	var run domain.Run
	var startedAt, finishedAt, status string
	var errMsg sql.NullString

	if err := row.Scan(&run.ID, &run.Strategy, &startedAt, &finishedAt,
		&status, &errMsg); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	started, err := time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	finished, err := time.Parse(time.RFC3339Nano, finishedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing finished_at: %w", err)
	}

	run.StartedAt = started
	run.FinishedAt = finished
	run.Status = domain.RunStatus(status)
	run.Error = errMsg.String
	return &run, nil
}

// nullString converts an empty string to NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
