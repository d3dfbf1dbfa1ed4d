// Package memory provides in-memory storage implementations, used as
// fallbacks and in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/prepset/prepset-cli/internal/core/domain"
	"github.com/prepset/prepset-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu         sync.RWMutex
	runs       map[string]domain.Run
	rejections map[string][]domain.RunRejection
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs:       make(map[string]domain.Run),
		rejections: make(map[string][]domain.RunRejection),
	}
}

// SaveRun stores a run and its per-split summaries.
func (s *RunStore) SaveRun(_ context.Context, run *domain.Run) error {
	if run == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = *run
	return nil
}

// SaveRejections stores the rejection diagnostics for a run.
func (s *RunStore) SaveRejections(_ context.Context, runID string, rejections []domain.RunRejection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejections[runID] = append(s.rejections[runID], rejections...)
	return nil
}

// GetRun retrieves a run by ID.
func (s *RunStore) GetRun(_ context.Context, runID string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *RunStore) ListRuns(_ context.Context, limit int) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var runs []domain.Run //nolint:prealloc // filtered below
	for id := range s.runs {
		runs = append(runs, s.runs[id])
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// ListRejections returns a run's diagnostics in insertion order.
func (s *RunStore) ListRejections(_ context.Context, runID string) ([]domain.RunRejection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rejections[runID], nil
}
