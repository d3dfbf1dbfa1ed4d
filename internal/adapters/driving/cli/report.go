package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var reportLimit int

var reportCmd = &cobra.Command{
	Use:   "report [run-id]",
	Short: "Show validation run history",
	Long: `Lists recent validation runs with their per-split counts.
If a run ID is provided, shows that run's details including every
rejection diagnostic.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVarP(&reportLimit, "limit", "n", 10, "maximum number of runs to list")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	ctx := cmd.Context()

	if len(args) > 0 {
		runID := args[0]
		run, rejections, err := reportService.GetRun(ctx, runID)
		if err != nil {
			return fmt.Errorf("failed to get run: %w", err)
		}

		cmd.Printf("%s %s\n", styleTitle.Render("Run:"), run.ID)
		cmd.Printf("  Strategy: %s\n", run.Strategy)
		cmd.Printf("  Status:   %s\n", run.Status)
		cmd.Printf("  Started:  %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
		if run.Error != "" {
			cmd.Printf("  Error:    %s\n", run.Error)
		}

		for _, split := range run.Splits {
			cmd.Printf("\n  %s: %d accepted, %d rejected\n", split.Split, split.Accepted, split.Rejected)
			cmd.Printf("    Input:  %s\n", split.InputPath)
			if split.OutputPath != "" {
				cmd.Printf("    Output: %s\n", split.OutputPath)
			}
		}

		if len(rejections) > 0 {
			cmd.Println("\n  Rejections:")
			for _, rej := range rejections {
				cmd.Printf("    %s:%d: %s\n", rej.Split, rej.Line, rej.Reason)
			}
		}
		return nil
	}

	runs, err := reportService.ListRuns(ctx, reportLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded yet.")
		return nil
	}

	for i := range runs {
		run := &runs[i]
		cmd.Printf("%s  %s  %s  %s\n",
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.ID, run.Strategy, run.Status)
		for _, split := range run.Splits {
			cmd.Printf("  %s: %d accepted, %d rejected\n",
				split.Split, split.Accepted, split.Rejected)
		}
	}

	cmd.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}
