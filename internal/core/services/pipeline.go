package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prepset/prepset-cli/internal/core/domain"
	"github.com/prepset/prepset-cli/internal/core/ports/driven"
	"github.com/prepset/prepset-cli/internal/core/ports/driving"
	"github.com/prepset/prepset-cli/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.Pipeline = (*Pipeline)(nil)

// Pipeline orchestrates the validation pipeline over the train and
// eval splits. The splits share no mutable state: the validator is
// immutable after construction, and each split owns its own read
// stream, accepted-record buffer, and output file.
type Pipeline struct {
	reader    driven.RecordReader
	validator driven.Validator
	writer    driven.RecordWriter
	runStore  driven.RunStore
}

// NewPipeline creates a pipeline with the given validation strategy.
// runStore may be nil, which disables run history.
func NewPipeline(
	reader driven.RecordReader,
	validator driven.Validator,
	writer driven.RecordWriter,
	runStore driven.RunStore,
) *Pipeline {
	return &Pipeline{
		reader:    reader,
		validator: validator,
		writer:    writer,
		runStore:  runStore,
	}
}

// Run processes both splits concurrently and writes cleaned copies.
// Per-record rejections are reported, not fatal; a parse error,
// missing input, or strict-policy empty result aborts the run. A
// failure in one split never corrupts the other's output.
func (p *Pipeline) Run(ctx context.Context, req driving.PipelineRequest) (*driving.PipelineResult, error) {
	if p.reader == nil || p.validator == nil || p.writer == nil {
		return nil, errors.New("pipeline not fully configured")
	}

	started := time.Now()
	logger.Info("validating datasets with %s strategy", p.validator.Name())

	jobs := []struct {
		split domain.SplitName
		path  string
		max   int
	}{
		{domain.SplitTrain, req.TrainPath, req.MaxTrain},
		{domain.SplitEval, req.EvalPath, req.MaxEval},
	}

	reports := make([]driving.SplitReport, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reports[i], errs[i] = p.processSplit(ctx, jobs[i].split, jobs[i].path, jobs[i].max, req.OutputSuffix)
		}(i)
	}
	wg.Wait()

	var runErr error
	for _, err := range errs {
		if err != nil {
			runErr = err
			break
		}
	}

	result := &driving.PipelineResult{
		Train: reports[0],
		Eval:  reports[1],
	}
	p.record(ctx, result, started, runErr)

	if runErr != nil {
		return nil, runErr
	}

	logger.Info("validated: %d train, %d eval",
		result.Train.Accepted, result.Eval.Accepted)
	return result, nil
}

// processSplit runs one split end to end: read, validate, apply the
// empty-result policy, then write. The output is only written after
// the whole split processed cleanly, so a fatal error leaves no
// partial output behind.
func (p *Pipeline) processSplit(
	ctx context.Context,
	split domain.SplitName,
	path string,
	max int,
	suffix string,
) (driving.SplitReport, error) {
	report := driving.SplitReport{Split: split, InputPath: path}

	if !domain.RecognisedExtension(path) {
		logger.Warn("unrecognised dataset extension for %s; expected .jsonl or .ndjson", path)
	}

	proc := NewSplitProcessor(p.reader, p.validator)
	result, err := proc.Process(ctx, split, path, max)
	if err != nil {
		return report, fmt.Errorf("%s split: %w", split, err)
	}

	report.Accepted = result.AcceptedCount()
	report.Rejected = result.RejectedCount()
	report.Rejections = result.Rejections

	if result.AcceptedCount() == 0 {
		if p.validator.EmptyPolicy() == driven.EmptyIsError {
			return report, fmt.Errorf("%s split (%s): %w", split, path, domain.ErrEmptyResult)
		}
		report.Warning = fmt.Sprintf("%s split produced no valid records", split)
		logger.Warn("%s", report.Warning)
	}

	out := domain.OutputPath(path, suffix)
	if err := p.writer.Write(ctx, out, result.Accepted); err != nil {
		return report, fmt.Errorf("%s split: %w", split, err)
	}
	report.OutputPath = out

	return report, nil
}

// record persists the run when history is configured. Storage
// failures degrade to a warning; they never fail a completed run.
func (p *Pipeline) record(ctx context.Context, result *driving.PipelineResult, started time.Time, runErr error) {
	if p.runStore == nil {
		return
	}

	run := &domain.Run{
		ID:         uuid.New().String(),
		Strategy:   p.validator.Name(),
		StartedAt:  started,
		FinishedAt: time.Now(),
		Status:     domain.RunSucceeded,
	}
	if runErr != nil {
		run.Status = domain.RunFailed
		run.Error = runErr.Error()
	}

	for _, report := range []driving.SplitReport{result.Train, result.Eval} {
		run.Splits = append(run.Splits, domain.RunSplit{
			Split:      report.Split,
			InputPath:  report.InputPath,
			OutputPath: report.OutputPath,
			Accepted:   report.Accepted,
			Rejected:   report.Rejected,
		})
	}

	if err := p.runStore.SaveRun(ctx, run); err != nil {
		logger.Warn("saving run history: %v", err)
		return
	}

	var rejections []domain.RunRejection
	for _, report := range []driving.SplitReport{result.Train, result.Eval} {
		for _, rej := range report.Rejections {
			rejections = append(rejections, domain.RunRejection{
				Split:  report.Split,
				Line:   rej.Line,
				Reason: rej.Reason,
			})
		}
	}
	if err := p.runStore.SaveRejections(ctx, run.ID, rejections); err != nil {
		logger.Warn("saving run diagnostics: %v", err)
		return
	}

	result.RunID = run.ID
}
