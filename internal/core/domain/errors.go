package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent pipeline failures.
// Rejected records are never errors; they travel as Rejection values.
var (
	// ErrMissingInput indicates a referenced input file does not exist.
	ErrMissingInput = errors.New("input file does not exist")

	// ErrEmptyResult indicates a split produced zero accepted records.
	// Fatal or warning depending on the validator's empty policy.
	ErrEmptyResult = errors.New("no valid records")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// ParseError is a fatal per-line JSON syntax failure. A corrupt line
// means the file's line-to-record correspondence cannot be trusted, so
// the whole split aborts and its partial output is discarded.
type ParseError struct {
	// Path identifies the file.
	Path string

	// Line is the 1-based physical line that failed to parse.
	Line int

	// Err is the underlying syntax diagnostic.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: invalid JSON: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaLoadError is a fatal failure to load or resolve the JSON
// Schema document in schema-validator mode.
type SchemaLoadError struct {
	// Path identifies the schema file.
	Path string

	// Err is the underlying read, parse, or resolution failure.
	Err error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("loading schema %s: %v", e.Path, e.Err)
}

func (e *SchemaLoadError) Unwrap() error { return e.Err }
