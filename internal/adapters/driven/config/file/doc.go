// Package file provides a TOML file-backed configuration store.
// It holds CLI defaults such as per-split caps, the output suffix,
// and whether run history is recorded.
package file
