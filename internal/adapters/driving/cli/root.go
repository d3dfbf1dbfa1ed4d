// Package cli provides the cobra command-line interface for prepset.
package cli

import (
	"sync"

	"github.com/spf13/cobra"

	"github.com/prepset/prepset-cli/internal/adapters/driven/config/file"
	"github.com/prepset/prepset-cli/internal/adapters/driven/jsonl"
	"github.com/prepset/prepset-cli/internal/adapters/driven/storage/memory"
	"github.com/prepset/prepset-cli/internal/adapters/driven/storage/sqlite"
	"github.com/prepset/prepset-cli/internal/core/ports/driven"
	"github.com/prepset/prepset-cli/internal/core/ports/driving"
	"github.com/prepset/prepset-cli/internal/core/services"
	"github.com/prepset/prepset-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "prepset",
	Short: "Validate and clean JSONL fine-tuning datasets",
	Long: `prepset validates line-delimited JSON datasets intended for
supervised fine-tuning. Each record is checked against either the
chat-message contract or a JSON Schema (Draft 2020-12), invalid
records are skipped with per-line diagnostics, and cleaned copies
are written next to the inputs.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

// Services consumed by the commands. Package-level so tests can swap
// implementations.
var (
	configStore   driven.ConfigStore
	runStore      driven.RunStore
	reportService driving.ReportService

	// newPipeline builds a pipeline around the chosen validation
	// strategy. store may be nil to disable run history.
	newPipeline = func(v driven.Validator, store driven.RunStore) driving.Pipeline {
		return services.NewPipeline(jsonl.NewReader(), v, jsonl.NewWriter(), store)
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

var initOnce sync.Once

// initServices wires the default adapters. Storage failures degrade
// to in-memory history rather than blocking validation.
func initServices() {
	initOnce.Do(func() {
		if configStore == nil {
			cs, err := file.NewConfigStore("")
			if err != nil {
				logger.Warn("config store unavailable: %v", err)
			} else {
				configStore = cs
			}
		}

		if runStore == nil {
			store, err := sqlite.NewStore("")
			if err != nil {
				logger.Warn("run history store unavailable: %v", err)
				runStore = memory.NewRunStore()
			} else {
				runStore = store.RunStore()
			}
		}

		if reportService == nil {
			reportService = services.NewReportService(runStore)
		}
	})
}

// Execute wires the default services and runs the root command.
func Execute() error {
	initServices()
	return rootCmd.Execute()
}
