package service

import (
	"context"

	"github.com/lifelog/lifelog/internal/models"
)

// AnalyticsService defines the interface for report generation. Both
// operations are pure functions of the journal snapshot at call time and
// always return a report, degrading to zero/neutral sections when data is
// missing.
type AnalyticsService interface {
	ComprehensiveReport(ctx context.Context) (*models.Report, error)
	WeeklyReport(ctx context.Context) (*models.WeeklyReport, error)
}

// JournalService defines the interface for journal write and lookup
// operations.
type JournalService interface {
	AddEvent(ctx context.Context, entry, eventType string) (*models.Event, error)
	AddGoal(ctx context.Context, text string, targetDate *models.Date) (*models.Goal, error)
	CompleteGoal(ctx context.Context, id int) (*models.Goal, error)
	RecentEvents(ctx context.Context, limit int) ([]models.Event, error)
	ActiveGoals(ctx context.Context) ([]models.Goal, error)
	Stats(ctx context.Context) (*models.StoreStats, error)
}
