package driven

import (
	"context"

	"github.com/prepset/prepset-cli/internal/core/domain"
)

// RunStore persists pipeline run history.
type RunStore interface {
	// SaveRun stores a run and its per-split summaries.
	SaveRun(ctx context.Context, run *domain.Run) error

	// SaveRejections stores the rejection diagnostics for a run.
	SaveRejections(ctx context.Context, runID string, rejections []domain.RunRejection) error

	// GetRun retrieves a run by ID, including its splits.
	// Returns domain.ErrNotFound if the run does not exist.
	GetRun(ctx context.Context, runID string) (*domain.Run, error)

	// ListRuns returns the most recent runs, newest first.
	// A limit of zero or less means no limit.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)

	// ListRejections returns a run's stored diagnostics in insertion
	// order.
	ListRejections(ctx context.Context, runID string) ([]domain.RunRejection, error)
}
