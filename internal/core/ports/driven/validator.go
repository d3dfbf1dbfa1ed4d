package driven

import (
	"github.com/prepset/prepset-cli/internal/core/domain"
)

// EmptyPolicy decides how the pipeline treats a split that accepted
// zero records. The policy travels with the validation strategy so the
// orchestrator never inspects the concrete validator type.
type EmptyPolicy int

const (
	// EmptyIsError aborts the split: a dataset with no valid records
	// is unusable under the strategy.
	EmptyIsError EmptyPolicy = iota

	// EmptyIsWarning logs the condition and still writes the (empty)
	// output, tolerating partially empty splits during iterative
	// dataset cleanup.
	EmptyIsWarning
)

// Validator decides whether a record belongs in the cleaned dataset.
// Implementations must be safe for concurrent use: both splits may
// validate on separate goroutines against the same instance.
type Validator interface {
	// Name identifies the strategy ("chat", "schema").
	Name() string

	// EmptyPolicy returns the strategy's zero-accepted-records policy.
	EmptyPolicy() EmptyPolicy

	// Validate checks one record and returns a verdict. It is a pure
	// function of the record (and, for schema validation, the schema
	// document loaded at construction).
	Validate(rec domain.Record) domain.Verdict
}
