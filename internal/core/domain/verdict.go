package domain

// Verdict is the accept/reject outcome of validating one record.
// Acceptance is all-or-nothing; a rejecting verdict carries a
// human-readable reason and the record's line number.
type Verdict struct {
	// Accepted reports whether the record passed validation.
	Accepted bool

	// Line is the 1-based line number of the validated record.
	Line int

	// Reason explains the rejection. Empty when accepted.
	Reason string
}

// Accept returns an accepting verdict for the given line.
func Accept(line int) Verdict {
	return Verdict{Accepted: true, Line: line}
}

// Reject returns a rejecting verdict with a diagnostic reason.
func Reject(line int, reason string) Verdict {
	return Verdict{Line: line, Reason: reason}
}
