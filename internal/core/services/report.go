package services

import (
	"context"

	"github.com/prepset/prepset-cli/internal/core/domain"
	"github.com/prepset/prepset-cli/internal/core/ports/driven"
	"github.com/prepset/prepset-cli/internal/core/ports/driving"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService exposes stored run history.
type ReportService struct {
	runStore driven.RunStore
}

// NewReportService creates a new report service.
func NewReportService(runStore driven.RunStore) *ReportService {
	return &ReportService{runStore: runStore}
}

// ListRuns returns the most recent runs, newest first.
func (s *ReportService) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotFound
	}
	return s.runStore.ListRuns(ctx, limit)
}

// GetRun returns one run with its rejection diagnostics.
func (s *ReportService) GetRun(ctx context.Context, runID string) (*domain.Run, []domain.RunRejection, error) {
	if s.runStore == nil {
		return nil, nil, domain.ErrNotFound
	}

	run, err := s.runStore.GetRun(ctx, runID)
	if err != nil {
		return nil, nil, err
	}

	rejections, err := s.runStore.ListRejections(ctx, runID)
	if err != nil {
		return nil, nil, err
	}

	return run, rejections, nil
}
