package mcp

import (
	"context"

	"github.com/prepset/prepset-cli/internal/core/ports/driving"
)

// mockPipeline is a mock implementation of driving.Pipeline.
type mockPipeline struct {
	result  *driving.PipelineResult
	err     error
	lastReq driving.PipelineRequest
}

func (m *mockPipeline) Run(_ context.Context, req driving.PipelineRequest) (*driving.PipelineResult, error) {
	m.lastReq = req
	return m.result, m.err
}

// mockFactory returns a factory yielding the given pipeline, recording
// the schema path it was asked for.
func mockFactory(p *mockPipeline, factoryErr error) (PipelineFactory, *string) {
	var schemaPath string
	return func(path string) (driving.Pipeline, error) {
		schemaPath = path
		if factoryErr != nil {
			return nil, factoryErr
		}
		return p, nil
	}, &schemaPath
}
