package repository

import (
	"context"
	"errors"

	"github.com/lifelog/lifelog/internal/models"
)

var (
	// ErrStorageUnavailable indicates the journal document could not be
	// read. Callers that prefer to degrade treat it as an empty snapshot.
	ErrStorageUnavailable = errors.New("journal storage unavailable")

	// ErrGoalNotFound indicates the goal id does not exist in the journal.
	ErrGoalNotFound = errors.New("goal not found")
)

// JournalRepository defines the interface for journal data access. The
// analytics service only ever calls LoadSnapshot and WritePattern; the
// mutating operations back the journal service.
type JournalRepository interface {
	// LoadSnapshot returns a consistent read of the whole journal. A
	// missing document yields an empty snapshot, not an error.
	LoadSnapshot(ctx context.Context) (*models.Snapshot, error)

	// AppendEvent stamps and stores a new journal entry.
	AppendEvent(ctx context.Context, event *models.Event) (*models.Event, error)

	// AppendGoal assigns the next goal id and stores the goal as active.
	AppendGoal(ctx context.Context, goal *models.Goal) (*models.Goal, error)

	// CompleteGoal marks a goal completed and stamps its completion date.
	CompleteGoal(ctx context.Context, id int) (*models.Goal, error)

	// WritePattern stores an advisory analysis result. Best-effort: report
	// generation must not depend on it succeeding.
	WritePattern(ctx context.Context, name string, data any) error

	// Stats returns the basic journal counters.
	Stats(ctx context.Context) (*models.StoreStats, error)
}
