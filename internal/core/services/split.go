package services

import (
	"context"
	"path/filepath"

	"github.com/prepset/prepset-cli/internal/core/domain"
	"github.com/prepset/prepset-cli/internal/core/ports/driven"
	"github.com/prepset/prepset-cli/internal/logger"
)

// SplitProcessor drives the reader and validator over one dataset
// split, filtering records and collecting diagnostics.
type SplitProcessor struct {
	reader    driven.RecordReader
	validator driven.Validator
}

// NewSplitProcessor creates a new split processor.
func NewSplitProcessor(reader driven.RecordReader, validator driven.Validator) *SplitProcessor {
	return &SplitProcessor{
		reader:    reader,
		validator: validator,
	}
}

// Process reads the split at path in line order, validates every
// record, and returns the accepted records plus one diagnostic per
// rejection. Rejections never abort the split; reader parse errors do.
// A positive max stops reading once that many records are accepted, so
// the result holds exactly the first max acceptable ones.
func (p *SplitProcessor) Process(ctx context.Context, split domain.SplitName, path string, max int) (*domain.SplitResult, error) {
	if p.reader == nil || p.validator == nil {
		return nil, domain.ErrInvalidInput
	}

	result := &domain.SplitResult{Split: split}

	err := p.reader.ForEach(ctx, path, func(rec domain.Record) error {
		verdict := p.validator.Validate(rec)
		if !verdict.Accepted {
			result.Rejections = append(result.Rejections, domain.Rejection{
				Line:   verdict.Line,
				Reason: verdict.Reason,
			})
			logger.Warn("skipping invalid record at %s:%d: %s",
				filepath.Base(path), verdict.Line, verdict.Reason)
			return nil
		}

		result.Accepted = append(result.Accepted, rec)
		if max > 0 && len(result.Accepted) >= max {
			return driven.ErrStopIteration
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("%s split: %d accepted, %d rejected",
		split, result.AcceptedCount(), result.RejectedCount())
	return result, nil
}
