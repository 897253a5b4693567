package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lifelog/lifelog/internal/logger"
)

var eventType string

var addCmd = &cobra.Command{
	Use:   "add <entry text>",
	Short: "Record a journal entry",
	Long:  `Append a journal entry stamped with today's date and the current time.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&eventType, "type", "t", "", "Event type (e.g. general, career)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	event, err := journalSvc.AddEvent(ctx, strings.Join(args, " "), eventType)
	if err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}

	logger.Ctx(ctx).Info("entry recorded",
		logger.String("date", event.Date.Format("2006-01-02")),
		logger.String("type", event.Type))
	fmt.Printf("Recorded %s entry for %s\n", event.Type, event.Date.Format("2006-01-02"))
	return nil
}
