package domain

import (
	"path/filepath"
	"strings"
)

// SplitName identifies one dataset partition.
type SplitName string

const (
	// SplitTrain is the training partition.
	SplitTrain SplitName = "train"

	// SplitEval is the evaluation partition.
	SplitEval SplitName = "eval"
)

// Chat role names required in every structurally valid record.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// RequiredRoles returns the role names that must each appear at least
// once among a chat record's messages.
func RequiredRoles() []string {
	return []string{RoleUser, RoleAssistant}
}

// Record is one JSON value read from a dataset line.
// The value is opaque at this level; validators decide its shape.
type Record struct {
	// Line is the 1-based physical line number in the source file.
	Line int

	// Value is the parsed JSON value.
	Value any
}

// Message is a single chat turn within a record.
type Message struct {
	// Role is the speaker ("user", "assistant", "system", ...).
	Role string `json:"role"`

	// Content is the turn's text.
	Content string `json:"content"`
}

// DefaultOutputSuffix is inserted before the input's extension when
// naming the cleaned copy (train.jsonl -> train.valid.jsonl).
const DefaultOutputSuffix = ".valid"

// OutputPath derives the cleaned-copy path for an input file by
// inserting suffix before the extension. Output naming is explicit
// configuration, never inferred from ambient state.
func OutputPath(input, suffix string) string {
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}

// RecognisedExtension reports whether the path looks like a
// line-delimited JSON variant. Unrecognised extensions are logged by
// the pipeline, not rejected.
func RecognisedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return true
	}
	return false
}
