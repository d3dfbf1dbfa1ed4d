package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/prepset/prepset-cli/internal/logger"
)

// debounceInterval coalesces bursts of file events into one re-run.
const debounceInterval = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-validate datasets when the inputs change",
	Long: `Runs validation once, then watches the train and eval input files
and re-runs validation whenever either changes. Useful while cleaning
a dataset iteratively. Press Ctrl+C to stop.`,
	RunE: runWatch,
}

func init() {
	addValidationFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	req, pipeline, err := buildValidation(cmd)
	if err != nil {
		return err
	}

	runOnce := func() {
		result, err := pipeline.Run(cmd.Context(), req)
		if err != nil {
			cmd.PrintErrf("validation failed: %v\n", err)
			return
		}
		printResult(cmd, result)
	}
	runOnce()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories: editors often replace files
	// rather than writing in place.
	watched := map[string]bool{
		filepath.Clean(req.TrainPath): true,
		filepath.Clean(req.EvalPath):  true,
	}
	dirs := map[string]bool{}
	for path := range watched {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	cmd.Println("Watching for changes. Press Ctrl+C to stop.")

	var debounce *time.Timer
	trigger := make(chan struct{}, 1)
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-trigger:
			runOnce()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("input changed: %s", event.Name)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceInterval, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
