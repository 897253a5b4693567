package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journal store counters",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	stats, err := journalSvc.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	return printJSON(stats)
}
