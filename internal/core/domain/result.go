package domain

// Rejection is a per-record diagnostic emitted when a record fails
// validation. Rejections are data, not errors: processing continues.
type Rejection struct {
	// Line is the 1-based line number of the rejected record.
	Line int

	// Reason is the first validation failure, human-readable.
	Reason string
}

// SplitResult is the outcome of processing one dataset split.
// Accepted records and rejections both keep input line order.
type SplitResult struct {
	// Split names the processed partition.
	Split SplitName

	// Accepted holds the records that passed validation, in input
	// order, truncated to the configured cap when one is set.
	Accepted []Record

	// Rejections holds one diagnostic per rejected record.
	Rejections []Rejection
}

// AcceptedCount returns the number of accepted records.
func (r *SplitResult) AcceptedCount() int {
	return len(r.Accepted)
}

// RejectedCount returns the number of rejected records.
func (r *SplitResult) RejectedCount() int {
	return len(r.Rejections)
}
