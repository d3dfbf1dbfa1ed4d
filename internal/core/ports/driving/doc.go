// Package driving defines the inbound port interfaces through which
// the CLI, watch loop, and MCP server drive the core services.
package driving
