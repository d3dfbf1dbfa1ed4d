package driven

import (
	"context"

	"github.com/prepset/prepset-cli/internal/core/domain"
)

// RecordWriter serialises accepted records back to line-delimited JSON.
type RecordWriter interface {
	// Write creates (or truncates) the file at path and writes one
	// compact JSON object per line, in slice order, UTF-8 encoded.
	// Field order within an object is not preserved.
	Write(ctx context.Context, path string, records []domain.Record) error
}
