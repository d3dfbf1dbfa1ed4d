package mcp

import (
	"github.com/prepset/prepset-cli/internal/core/ports/driving"
)

// PipelineFactory builds a pipeline for the requested strategy.
// A non-empty schemaPath selects the schema strategy; empty selects
// the chat-message contract.
type PipelineFactory func(schemaPath string) (driving.Pipeline, error)

// Ports aggregates the capabilities required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// NewPipeline builds validation pipelines per tool call.
	NewPipeline PipelineFactory
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.NewPipeline == nil {
		return ErrMissingPipelineFactory
	}
	return nil
}
