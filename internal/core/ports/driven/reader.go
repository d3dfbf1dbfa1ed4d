package driven

import (
	"context"
	"errors"

	"github.com/prepset/prepset-cli/internal/core/domain"
)

// ErrStopIteration signals early termination of a read loop.
// A RecordReader treats it as a clean stop, not a failure.
var ErrStopIteration = errors.New("stop iteration")

// RecordReader streams a line-delimited JSON file as parsed records.
type RecordReader interface {
	// ForEach reads the file at path line by line and invokes fn for
	// every non-blank line with a Record carrying the 1-based
	// physical line number and the parsed value. Line numbers are
	// strictly increasing; blank lines are skipped silently but still
	// advance the count.
	//
	// A malformed line aborts the read with a *domain.ParseError.
	// A missing file wraps domain.ErrMissingInput. If fn returns
	// ErrStopIteration, ForEach stops reading and returns nil; any
	// other error from fn is returned as-is.
	ForEach(ctx context.Context, path string, fn func(domain.Record) error) error
}
