// Package schema validates records against an externally supplied
// JSON Schema (Draft 2020-12) document.
package schema

import (
	"encoding/json"
	"os"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/prepset/prepset-cli/internal/core/domain"
	"github.com/prepset/prepset-cli/internal/core/ports/driven"
)

// Ensure Validator implements the interface.
var _ driven.Validator = (*Validator)(nil)

// Validator evaluates records against a resolved schema document.
// The schema is loaded once at construction and never mutated, so a
// single instance is safe to share across split goroutines.
type Validator struct {
	path     string
	resolved *jsonschema.Resolved
}

// New loads and resolves the schema document at path.
// Returns a *domain.SchemaLoadError if the file is missing, is not
// valid JSON, or fails resolution.
func New(path string) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.SchemaLoadError{Path: path, Err: err}
	}

	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &domain.SchemaLoadError{Path: path, Err: err}
	}

	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, &domain.SchemaLoadError{Path: path, Err: err}
	}

	return &Validator{path: path, resolved: resolved}, nil
}

// Name identifies the strategy.
func (v *Validator) Name() string {
	return "schema"
}

// EmptyPolicy is lenient: callers may tolerate partially empty splits
// during iterative dataset cleanup.
func (v *Validator) EmptyPolicy() driven.EmptyPolicy {
	return driven.EmptyIsWarning
}

// SchemaPath returns the path the schema was loaded from.
func (v *Validator) SchemaPath() string {
	return v.path
}

// Validate evaluates the record against the schema. Only the first
// violation is surfaced as the rejection reason.
func (v *Validator) Validate(rec domain.Record) domain.Verdict {
	if err := v.resolved.Validate(rec.Value); err != nil {
		return domain.Reject(rec.Line, err.Error())
	}
	return domain.Accept(rec.Line)
}
