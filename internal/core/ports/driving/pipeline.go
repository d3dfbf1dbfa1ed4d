package driving

import (
	"context"

	"github.com/prepset/prepset-cli/internal/core/domain"
)

// Pipeline runs the validation pipeline over the train and eval splits
// and writes cleaned copies of both.
type Pipeline interface {
	// Run processes both splits and returns their reports. It fails
	// on the fatal conditions of the configured strategy (missing
	// input, parse error, schema load failure, empty result under a
	// strict policy); per-record rejections never fail the run.
	Run(ctx context.Context, req PipelineRequest) (*PipelineResult, error)
}

// PipelineRequest carries one run's inputs and limits.
type PipelineRequest struct {
	// TrainPath is the train split input file.
	TrainPath string

	// EvalPath is the eval split input file.
	EvalPath string

	// MaxTrain caps accepted train records. Zero means no cap.
	MaxTrain int

	// MaxEval caps accepted eval records. Zero means no cap.
	MaxEval int

	// OutputSuffix names the cleaned copies; empty selects
	// domain.DefaultOutputSuffix.
	OutputSuffix string
}

// PipelineResult reports a completed run.
type PipelineResult struct {
	// RunID identifies the persisted run, empty when history is off.
	RunID string

	// Train is the train split report.
	Train SplitReport

	// Eval is the eval split report.
	Eval SplitReport
}

// SplitReport summarises one processed split.
type SplitReport struct {
	// Split names the partition.
	Split domain.SplitName

	// InputPath is the source file.
	InputPath string

	// OutputPath is the cleaned copy that was written.
	OutputPath string

	// Accepted is the number of records written.
	Accepted int

	// Rejected is the number of records skipped.
	Rejected int

	// Rejections holds the per-record diagnostics in line order.
	Rejections []domain.Rejection

	// Warning carries a non-fatal condition (e.g. zero accepted
	// records under a lenient policy). Empty when none.
	Warning string
}
