package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prepset/prepset-cli/internal/core/ports/driven"
	"github.com/prepset/prepset-cli/internal/core/ports/driving"
	"github.com/prepset/prepset-cli/internal/validators/schema"
	"github.com/prepset/prepset-cli/internal/validators/structural"
)

var (
	validateTrain     string
	validateEval      string
	validateSchema    string
	validateMaxTrain  int
	validateMaxEval   int
	validateSuffix    string
	validateNoHistory bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate and filter JSONL dataset splits",
	Long: `Validates every record of the train and eval splits, skips invalid
records with a per-line diagnostic, optionally caps each split, and
writes cleaned copies next to the inputs (train.jsonl -> train.valid.jsonl).

By default records are checked against the chat-message contract: a
"messages" list of role/content string pairs covering the user and
assistant roles. Passing --schema switches to JSON Schema
(Draft 2020-12) validation against the given document.`,
	RunE: runValidate,
}

func init() {
	addValidationFlags(validateCmd)
	rootCmd.AddCommand(validateCmd)
}

// addValidationFlags registers the flags shared by validate and watch.
func addValidationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&validateTrain, "train", "", "train split input file (required)")
	cmd.Flags().StringVar(&validateEval, "eval", "", "eval split input file (required)")
	cmd.Flags().StringVar(&validateSchema, "schema", "", "JSON Schema file (enables the schema strategy)")
	cmd.Flags().IntVar(&validateMaxTrain, "max-train", 0, "maximum accepted train records (0 = no cap)")
	cmd.Flags().IntVar(&validateMaxEval, "max-eval", 0, "maximum accepted eval records (0 = no cap)")
	cmd.Flags().StringVar(&validateSuffix, "suffix", "", "output name suffix (default \".valid\")")
	cmd.Flags().BoolVar(&validateNoHistory, "no-history", false, "do not record this run")
	cmd.MarkFlagRequired("train") //nolint:errcheck
	cmd.MarkFlagRequired("eval")  //nolint:errcheck
}

func runValidate(cmd *cobra.Command, _ []string) error {
	req, pipeline, err := buildValidation(cmd)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	printResult(cmd, result)
	return nil
}

// buildValidation assembles the request and pipeline for the flags
// currently set, falling back to config-file defaults for unset flags.
func buildValidation(cmd *cobra.Command) (driving.PipelineRequest, driving.Pipeline, error) {
	req := driving.PipelineRequest{
		TrainPath:    validateTrain,
		EvalPath:     validateEval,
		MaxTrain:     validateMaxTrain,
		MaxEval:      validateMaxEval,
		OutputSuffix: validateSuffix,
	}
	applyConfigDefaults(cmd, &req)

	if newPipeline == nil {
		return req, nil, errors.New("pipeline not configured")
	}

	validator, err := buildValidator(validateSchema)
	if err != nil {
		return req, nil, err
	}

	store := runStore
	if validateNoHistory || (configStore != nil && configStore.GetBool("history.disabled")) {
		store = nil
	}

	return req, newPipeline(validator, store), nil
}

// buildValidator selects the strategy: schema when a schema document
// is given, the chat contract otherwise.
func buildValidator(schemaPath string) (driven.Validator, error) {
	if schemaPath == "" {
		return structural.New(), nil
	}
	return schema.New(schemaPath)
}

// applyConfigDefaults fills request fields from the config store for
// flags the user did not set.
func applyConfigDefaults(cmd *cobra.Command, req *driving.PipelineRequest) {
	if configStore == nil {
		return
	}
	if !cmd.Flags().Changed("max-train") {
		req.MaxTrain = configStore.GetInt("validate.max_train")
	}
	if !cmd.Flags().Changed("max-eval") {
		req.MaxEval = configStore.GetInt("validate.max_eval")
	}
	if !cmd.Flags().Changed("suffix") {
		if s := configStore.GetString("validate.output_suffix"); s != "" {
			req.OutputSuffix = s
		}
	}
}

// printResult prints both split reports and the final summary.
func printResult(cmd *cobra.Command, result *driving.PipelineResult) {
	printSplitReport(cmd, result.Train)
	printSplitReport(cmd, result.Eval)

	cmd.Println(styleSuccess.Render(fmt.Sprintf("Validated: %d train, %d eval",
		result.Train.Accepted, result.Eval.Accepted)))

	if result.RunID != "" {
		cmd.Println(styleMuted.Render("Run recorded: " + result.RunID))
	}
}

// printSplitReport prints one split's diagnostics and counts.
func printSplitReport(cmd *cobra.Command, report driving.SplitReport) {
	cmd.Printf("%s %s\n", styleTitle.Render(string(report.Split)+":"), report.InputPath)

	for _, rej := range report.Rejections {
		cmd.Printf("  %s %s:%d: %s\n", styleWarning.Render("skip"),
			filepath.Base(report.InputPath), rej.Line, rej.Reason)
	}
	if report.Warning != "" {
		cmd.Printf("  %s\n", styleWarning.Render(report.Warning))
	}

	cmd.Printf("  %d accepted, %d rejected -> %s\n",
		report.Accepted, report.Rejected, report.OutputPath)
}
