// Package mcp provides an MCP (Model Context Protocol) server adapter
// for prepset. It lets AI assistants trigger dataset validation runs.
package mcp

import "errors"

// ErrMissingPipelineFactory is returned when no pipeline factory is provided.
var ErrMissingPipelineFactory = errors.New("mcp: pipeline factory is required")
