package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent [n]",
	Short: "Show the most recent journal entries",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRecent,
}

func runRecent(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	limit := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid entry count %q", args[0])
		}
		limit = n
	}

	events, err := journalSvc.RecentEvents(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No entries yet")
		return nil
	}
	for _, e := range events {
		fmt.Printf("%s [%s] %s\n", e.Date.Format("2006-01-02"), e.Type, e.Entry)
	}
	return nil
}
