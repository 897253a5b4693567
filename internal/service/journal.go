package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lifelog/lifelog/internal/models"
	"github.com/lifelog/lifelog/internal/repository"
)

var (
	// ErrEmptyEntry indicates a blank journal entry or goal text.
	ErrEmptyEntry = errors.New("entry text is required")
)

const defaultRecentLimit = 10

type journalService struct {
	repo repository.JournalRepository
}

// NewJournalService creates a new journal service.
func NewJournalService(repo repository.JournalRepository) JournalService {
	return &journalService{repo: repo}
}

func (s *journalService) AddEvent(ctx context.Context, entry, eventType string) (*models.Event, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil, ErrEmptyEntry
	}
	if eventType == "" {
		eventType = models.EventTypeGeneral
	}

	event, err := s.repo.AppendEvent(ctx, &models.Event{Entry: entry, Type: eventType})
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}
	return event, nil
}

func (s *journalService) AddGoal(ctx context.Context, text string, targetDate *models.Date) (*models.Goal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyEntry
	}

	goal, err := s.repo.AppendGoal(ctx, &models.Goal{Text: text, TargetDate: targetDate})
	if err != nil {
		return nil, fmt.Errorf("failed to append goal: %w", err)
	}
	return goal, nil
}

func (s *journalService) CompleteGoal(ctx context.Context, id int) (*models.Goal, error) {
	goal, err := s.repo.CompleteGoal(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to complete goal: %w", err)
	}
	return goal, nil
}

func (s *journalService) RecentEvents(ctx context.Context, limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	snapshot, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}
	return lastN(snapshot.Events, limit), nil
}

func (s *journalService) ActiveGoals(ctx context.Context) ([]models.Goal, error) {
	snapshot, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}
	return snapshot.ActiveGoals(), nil
}

func (s *journalService) Stats(ctx context.Context) (*models.StoreStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal stats: %w", err)
	}
	return stats, nil
}
