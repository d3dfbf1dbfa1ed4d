package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prepset/prepset-cli/internal/adapters/driven/storage/memory"
	"github.com/prepset/prepset-cli/internal/core/services"
)

const validChatLine = `{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":"yo"}]}`

// setupTestServices swaps the package services for in-memory
// implementations and returns a cleanup that restores them.
func setupTestServices() func() {
	oldConfigStore := configStore
	oldRunStore := runStore
	oldReportService := reportService

	configStore = nil
	runStore = memory.NewRunStore()
	reportService = services.NewReportService(runStore)

	return func() {
		configStore = oldConfigStore
		runStore = oldRunStore
		reportService = oldReportService

		// Reset flag-bound state shared between validate and watch.
		validateTrain = ""
		validateEval = ""
		validateSchema = ""
		validateMaxTrain = 0
		validateMaxEval = 0
		validateSuffix = ""
		validateNoHistory = false
	}
}

// writeSplitFiles creates train and eval dataset files in one temp dir.
func writeSplitFiles(t *testing.T, train, eval string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	trainPath := filepath.Join(dir, "train.jsonl")
	evalPath := filepath.Join(dir, "eval.jsonl")
	require.NoError(t, os.WriteFile(trainPath, []byte(train), 0600))
	require.NoError(t, os.WriteFile(evalPath, []byte(eval), 0600))
	return trainPath, evalPath
}
