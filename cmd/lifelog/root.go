package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifelog/lifelog/internal/config"
	"github.com/lifelog/lifelog/internal/logger"
	"github.com/lifelog/lifelog/internal/repository"
	"github.com/lifelog/lifelog/internal/service"
)

var (
	journalPath    string
	journalBackend string

	cfg          *config.Config
	journalRepo  repository.JournalRepository
	journalSvc   service.JournalService
	analyticsSvc service.AnalyticsService
)

var rootCmd = &cobra.Command{
	Use:   "lifelog",
	Short: "Personal journal with analytics",
	Long: `A personal journaling backend that records life events and goals
and computes mood, growth, goal, and activity analytics over them.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", "", "Path to the journal store (overrides config)")
	rootCmd.PersistentFlags().StringVar(&journalBackend, "backend", "", "Journal backend: json or sqlite (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(statsCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flag overrides
	if journalPath != "" {
		cfg.Journal.Path = journalPath
	}
	if journalBackend != "" {
		cfg.Journal.Backend = journalBackend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))

	switch cfg.Journal.Backend {
	case config.BackendSQLite:
		journalRepo, err = repository.NewSQLiteRepository(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
	default:
		journalRepo = repository.NewJSONFileRepository(cfg.Journal.Path)
	}

	journalSvc = service.NewJournalService(journalRepo)
	analyticsSvc = service.NewAnalyticsService(journalRepo, nil)
	return nil
}

// commandContext tags the command's context for log correlation.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := logger.WithOperationID(cmd.Context(), "")
	return logger.WithJournal(ctx, cfg.Journal.Path)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
