package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lifelog/lifelog/internal/models"
)

var goalTarget string

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <goal text>",
	Short: "Add a new goal",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGoalAdd,
}

var goalDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a goal completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalDone,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active goals",
	RunE:  runGoalList,
}

func init() {
	goalAddCmd.Flags().StringVar(&goalTarget, "target", "", "Target date (YYYY-MM-DD)")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalDoneCmd)
	goalCmd.AddCommand(goalListCmd)
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	var target *models.Date
	if goalTarget != "" {
		t, err := time.Parse("2006-01-02", goalTarget)
		if err != nil {
			return fmt.Errorf("invalid target date %q (want YYYY-MM-DD)", goalTarget)
		}
		d := models.DateOf(t)
		target = &d
	}

	goal, err := journalSvc.AddGoal(ctx, strings.Join(args, " "), target)
	if err != nil {
		return fmt.Errorf("failed to add goal: %w", err)
	}

	fmt.Printf("Added goal #%d: %s\n", goal.ID, goal.Text)
	return nil
}

func runGoalDone(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid goal id %q", args[0])
	}

	goal, err := journalSvc.CompleteGoal(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to complete goal: %w", err)
	}

	fmt.Printf("Completed goal #%d: %s\n", goal.ID, goal.Text)
	return nil
}

func runGoalList(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	goals, err := journalSvc.ActiveGoals(ctx)
	if err != nil {
		return fmt.Errorf("failed to list goals: %w", err)
	}

	if len(goals) == 0 {
		fmt.Println("No active goals")
		return nil
	}
	for _, g := range goals {
		line := fmt.Sprintf("#%d %s (%d%%)", g.ID, g.Text, g.Progress)
		if g.TargetDate != nil && !g.TargetDate.IsZero() {
			line += fmt.Sprintf(" due %s", g.TargetDate.Format("2006-01-02"))
		}
		fmt.Println(line)
	}
	return nil
}
