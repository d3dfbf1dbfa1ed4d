package domain

import "time"

// RunStatus is the terminal state of a pipeline run.
type RunStatus string

const (
	// RunSucceeded means every split completed and wrote output.
	RunSucceeded RunStatus = "succeeded"

	// RunFailed means at least one split hit a fatal condition.
	RunFailed RunStatus = "failed"
)

// Run is a persisted record of one pipeline execution.
type Run struct {
	// ID is the unique run identifier.
	ID string

	// Strategy names the validator used ("chat" or "schema").
	Strategy string

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run ended, success or not.
	FinishedAt time.Time

	// Status is the terminal state.
	Status RunStatus

	// Error holds the fatal error message for failed runs.
	Error string

	// Splits holds per-split inputs, outputs and counts.
	Splits []RunSplit
}

// RunSplit summarises one split within a run.
type RunSplit struct {
	// Split names the partition.
	Split SplitName

	// InputPath is the source file.
	InputPath string

	// OutputPath is the cleaned copy, empty if none was written.
	OutputPath string

	// Accepted is the number of records written.
	Accepted int

	// Rejected is the number of records skipped.
	Rejected int
}

// RunRejection is a stored rejection diagnostic tied to a run.
type RunRejection struct {
	// Split names the partition the rejection came from.
	Split SplitName

	// Line is the 1-based line number in the input file.
	Line int

	// Reason is the validation failure message.
	Reason string
}
