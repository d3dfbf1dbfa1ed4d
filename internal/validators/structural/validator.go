// Package structural validates records against the fixed chat-message
// contract: a "messages" list of role/content pairs covering the
// required role set.
package structural

import (
	"fmt"

	"github.com/prepset/prepset-cli/internal/core/domain"
	"github.com/prepset/prepset-cli/internal/core/ports/driven"
)

// Ensure Validator implements the interface.
var _ driven.Validator = (*Validator)(nil)

// Validator checks the chat-message structural invariant.
type Validator struct{}

// New creates a new structural validator.
func New() *Validator {
	return &Validator{}
}

// Name identifies the strategy.
func (v *Validator) Name() string {
	return "chat"
}

// EmptyPolicy is strict: a dataset with no valid chat records is
// unusable for fine-tuning.
func (v *Validator) EmptyPolicy() driven.EmptyPolicy {
	return driven.EmptyIsError
}

// Validate runs the checks in order, short-circuiting on the first
// failure. Acceptance is all-or-nothing per record.
func (v *Validator) Validate(rec domain.Record) domain.Verdict {
	obj, ok := rec.Value.(map[string]any)
	if !ok {
		return domain.Reject(rec.Line, "record is not a JSON object")
	}

	raw, ok := obj["messages"]
	if !ok {
		return domain.Reject(rec.Line, `missing required field "messages"`)
	}
	msgs, ok := raw.([]any)
	if !ok {
		return domain.Reject(rec.Line, `field "messages" is not a list`)
	}

	seen := make(map[string]bool, len(msgs))
	for i, elem := range msgs {
		msg, ok := elem.(map[string]any)
		if !ok {
			return domain.Reject(rec.Line, fmt.Sprintf("messages[%d] is not an object", i))
		}

		role, ok := msg["role"].(string)
		if !ok {
			return domain.Reject(rec.Line, fmt.Sprintf(`messages[%d] missing string field "role"`, i))
		}
		if _, ok := msg["content"].(string); !ok {
			return domain.Reject(rec.Line, fmt.Sprintf(`messages[%d] missing string field "content"`, i))
		}

		seen[role] = true
	}

	for _, role := range domain.RequiredRoles() {
		if !seen[role] {
			return domain.Reject(rec.Line, fmt.Sprintf("missing required role %q", role))
		}
	}

	return domain.Accept(rec.Line)
}
