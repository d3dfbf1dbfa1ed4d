package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prepset/prepset-cli/internal/core/ports/driving"
)

// ValidateInput is the input schema for the validate_dataset tool.
type ValidateInput struct {
	TrainPath  string `json:"train_path" jsonschema:"path to the train split JSONL file"`
	EvalPath   string `json:"eval_path" jsonschema:"path to the eval split JSONL file"`
	SchemaPath string `json:"schema_path,omitempty" jsonschema:"optional JSON Schema file; omit to validate against the chat-message contract"`
	MaxTrain   int    `json:"max_train,omitempty" jsonschema:"maximum accepted train records (0 = no cap)"`
	MaxEval    int    `json:"max_eval,omitempty" jsonschema:"maximum accepted eval records (0 = no cap)"`
}

// ValidateOutput is the output schema for the validate_dataset tool.
type ValidateOutput struct {
	RunID string      `json:"run_id,omitempty"`
	Train SplitOutput `json:"train"`
	Eval  SplitOutput `json:"eval"`
}

// SplitOutput reports one validated split.
type SplitOutput struct {
	OutputPath string `json:"output_path"`
	Accepted   int    `json:"accepted"`
	Rejected   int    `json:"rejected"`
	Warning    string `json:"warning,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_dataset",
		Description: "Validate JSONL fine-tuning dataset splits and write cleaned copies",
	}, s.handleValidate)
}

// handleValidate handles the validate_dataset tool invocation.
func (s *Server) handleValidate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ValidateInput,
) (*mcp.CallToolResult, ValidateOutput, error) {
	pipeline, err := s.ports.NewPipeline(input.SchemaPath)
	if err != nil {
		return nil, ValidateOutput{}, err
	}

	result, err := pipeline.Run(ctx, driving.PipelineRequest{
		TrainPath: input.TrainPath,
		EvalPath:  input.EvalPath,
		MaxTrain:  input.MaxTrain,
		MaxEval:   input.MaxEval,
	})
	if err != nil {
		return nil, ValidateOutput{}, err
	}

	return nil, ValidateOutput{
		RunID: result.RunID,
		Train: toSplitOutput(result.Train),
		Eval:  toSplitOutput(result.Eval),
	}, nil
}

// toSplitOutput converts a split report to tool output.
func toSplitOutput(report driving.SplitReport) SplitOutput {
	return SplitOutput{
		OutputPath: report.OutputPath,
		Accepted:   report.Accepted,
		Rejected:   report.Rejected,
		Warning:    report.Warning,
	}
}
