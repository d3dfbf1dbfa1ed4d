// Package driven defines the outbound port interfaces the core
// services depend on: record IO, validation strategies, run history
// storage, and configuration. Adapters under internal/adapters/driven
// implement them.
package driven
