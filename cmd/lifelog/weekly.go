package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Generate the weekly progress report",
	Long: `Compute the trailing-seven-day report: entry count, mood summary,
achievements, challenges, goals worked on, and next-week focus suggestions.`,
	RunE: runWeekly,
}

func runWeekly(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	report, err := analyticsSvc.WeeklyReport(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate weekly report: %w", err)
	}
	return printJSON(report)
}
