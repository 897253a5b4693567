package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the comprehensive analytics report",
	Long: `Compute the full-history report: summary statistics, mood analysis,
goal progress, activity patterns, growth metrics, recommendations, and
achievement tracking. Output is JSON on stdout.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	report, err := analyticsSvc.ComprehensiveReport(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	return printJSON(report)
}
