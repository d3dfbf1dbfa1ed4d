package driving

import (
	"context"

	"github.com/prepset/prepset-cli/internal/core/domain"
)

// ReportService exposes stored run history.
type ReportService interface {
	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)

	// GetRun returns one run with its rejection diagnostics.
	GetRun(ctx context.Context, runID string) (*domain.Run, []domain.RunRejection, error)
}
