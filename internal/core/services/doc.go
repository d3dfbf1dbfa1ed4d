// Package services implements the core application logic: the split
// processor, the pipeline orchestrator, and run-history reporting.
// Services depend only on the port interfaces, never on adapters.
package services
