// Package sqlite provides SQLite-backed run-history storage using
// modernc.org/sqlite (pure Go, no cgo). Schema changes are applied
// through embedded, numbered migration files.
package sqlite
