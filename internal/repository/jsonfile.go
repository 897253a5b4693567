package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/lifelog/lifelog/internal/models"
)

// jsonFileRepository stores the whole journal as one flat JSON document.
// This is the canonical backend: one file per deployment, read-all on load
// and write-all on mutation. A mutex guards the file so a load never
// observes a partial write.
type jsonFileRepository struct {
	path string
	mu   sync.Mutex
}

// NewJSONFileRepository creates a journal repository backed by a single
// JSON document at path. The file is created on first write.
func NewJSONFileRepository(path string) JournalRepository {
	return &jsonFileRepository{path: path}
}

func (r *jsonFileRepository) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// load reads the document without taking the lock; callers hold it.
func (r *jsonFileRepository) load() (*models.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.EmptySnapshot(), nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, r.path, err)
	}

	snapshot := models.EmptySnapshot()
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrStorageUnavailable, r.path, err)
	}

	// Older documents may omit sections entirely
	if snapshot.Events == nil {
		snapshot.Events = []models.Event{}
	}
	if snapshot.Goals == nil {
		snapshot.Goals = []models.Goal{}
	}
	if snapshot.Patterns == nil {
		snapshot.Patterns = map[string]models.Pattern{}
	}
	if snapshot.Warnings == nil {
		snapshot.Warnings = []string{}
	}

	return snapshot, nil
}

// save writes the document via a temp file and rename so readers never see
// a truncated document.
func (r *jsonFileRepository) save(snapshot *models.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

func (r *jsonFileRepository) AppendEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.load()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if event.Date.IsZero() {
		event.Date = models.DateOf(now)
	}
	if event.Timestamp == nil {
		event.Timestamp = &models.Timestamp{Time: now}
	}
	if event.Type == "" {
		event.Type = models.EventTypeGeneral
	}

	snapshot.Events = append(snapshot.Events, *event)
	if err := r.save(snapshot); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *jsonFileRepository) AppendGoal(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.load()
	if err != nil {
		return nil, err
	}

	goal.ID = len(snapshot.Goals) + 1
	goal.Status = models.GoalStatusActive
	goal.Progress = 0
	if goal.CreatedDate.IsZero() {
		goal.CreatedDate = models.DateOf(time.Now())
	}

	snapshot.Goals = append(snapshot.Goals, *goal)
	if err := r.save(snapshot); err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *jsonFileRepository) CompleteGoal(ctx context.Context, id int) (*models.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range snapshot.Goals {
		if snapshot.Goals[i].ID != id {
			continue
		}
		completed := models.DateOf(time.Now())
		snapshot.Goals[i].Status = models.GoalStatusCompleted
		snapshot.Goals[i].CompletedDate = &completed
		snapshot.Goals[i].Progress = 100
		if err := r.save(snapshot); err != nil {
			return nil, err
		}
		goal := snapshot.Goals[i]
		return &goal, nil
	}

	return nil, fmt.Errorf("%w: id %d", ErrGoalNotFound, id)
}

func (r *jsonFileRepository) WritePattern(ctx context.Context, name string, data any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.load()
	if err != nil {
		return err
	}

	snapshot.Patterns[name] = models.Pattern{
		Data:        data,
		LastUpdated: time.Now(),
	}
	return r.save(snapshot)
}

func (r *jsonFileRepository) Stats(ctx context.Context) (*models.StoreStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.load()
	if err != nil {
		return nil, err
	}

	return &models.StoreStats{
		TotalEvents:     len(snapshot.Events),
		TotalGoals:      len(snapshot.Goals),
		ActiveGoals:     len(snapshot.ActiveGoals()),
		PatternsTracked: len(snapshot.Patterns),
		Warnings:        len(snapshot.Warnings),
	}, nil
}
