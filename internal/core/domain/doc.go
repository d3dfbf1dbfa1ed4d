// Package domain contains the core business entities for prepset:
// dataset records, validation verdicts, split results, run history,
// and the pipeline's error taxonomy. It has no dependencies on
// adapters or external services.
package domain
