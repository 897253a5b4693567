package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lifelog/lifelog/internal/models"
	"github.com/lifelog/lifelog/internal/repository"
)

func TestAddEvent(t *testing.T) {
	t.Run("successful add", func(t *testing.T) {
		repo := newMockJournalRepository(nil)
		svc := NewJournalService(repo)

		event, err := svc.AddEvent(context.Background(), "shipped the release", "")
		if err != nil {
			t.Fatalf("AddEvent() error = %v", err)
		}
		if event.Entry != "shipped the release" {
			t.Errorf("entry = %q", event.Entry)
		}
		if event.Type != models.EventTypeGeneral {
			t.Errorf("type = %q, want %q", event.Type, models.EventTypeGeneral)
		}
		if event.Date.IsZero() {
			t.Error("date not stamped")
		}
		if len(repo.snapshot.Events) != 1 {
			t.Errorf("stored events = %d, want 1", len(repo.snapshot.Events))
		}
	})

	t.Run("career type preserved", func(t *testing.T) {
		repo := newMockJournalRepository(nil)
		svc := NewJournalService(repo)

		event, err := svc.AddEvent(context.Background(), "interview went well", models.EventTypeCareer)
		if err != nil {
			t.Fatalf("AddEvent() error = %v", err)
		}
		if event.Type != models.EventTypeCareer {
			t.Errorf("type = %q, want %q", event.Type, models.EventTypeCareer)
		}
	})

	t.Run("whitespace entry rejected", func(t *testing.T) {
		repo := newMockJournalRepository(nil)
		svc := NewJournalService(repo)

		if _, err := svc.AddEvent(context.Background(), "   \n\t", ""); !errors.Is(err, ErrEmptyEntry) {
			t.Errorf("error = %v, want ErrEmptyEntry", err)
		}
		if len(repo.snapshot.Events) != 0 {
			t.Errorf("stored events = %d, want 0", len(repo.snapshot.Events))
		}
	})

	t.Run("entry is trimmed", func(t *testing.T) {
		repo := newMockJournalRepository(nil)
		svc := NewJournalService(repo)

		event, err := svc.AddEvent(context.Background(), "  a walk in the park  ", "")
		if err != nil {
			t.Fatalf("AddEvent() error = %v", err)
		}
		if event.Entry != "a walk in the park" {
			t.Errorf("entry = %q, want trimmed text", event.Entry)
		}
	})
}

func TestAddGoal(t *testing.T) {
	t.Run("successful add", func(t *testing.T) {
		repo := newMockJournalRepository(nil)
		svc := NewJournalService(repo)

		target := models.NewDate(2026, 12, 31)
		goal, err := svc.AddGoal(context.Background(), "Read twelve books", &target)
		if err != nil {
			t.Fatalf("AddGoal() error = %v", err)
		}
		if goal.ID != 1 {
			t.Errorf("id = %d, want 1", goal.ID)
		}
		if goal.Status != models.GoalStatusActive {
			t.Errorf("status = %q, want active", goal.Status)
		}
		if goal.TargetDate == nil || !goal.TargetDate.Equal(target.Time) {
			t.Errorf("target date = %v, want %v", goal.TargetDate, target)
		}
	})

	t.Run("empty text rejected", func(t *testing.T) {
		repo := newMockJournalRepository(nil)
		svc := NewJournalService(repo)

		if _, err := svc.AddGoal(context.Background(), "", nil); !errors.Is(err, ErrEmptyEntry) {
			t.Errorf("error = %v, want ErrEmptyEntry", err)
		}
	})

	t.Run("ids are sequential", func(t *testing.T) {
		repo := newMockJournalRepository(nil)
		svc := NewJournalService(repo)

		for i := 1; i <= 3; i++ {
			goal, err := svc.AddGoal(context.Background(), fmt.Sprintf("goal %d", i), nil)
			if err != nil {
				t.Fatalf("AddGoal() error = %v", err)
			}
			if goal.ID != i {
				t.Errorf("id = %d, want %d", goal.ID, i)
			}
		}
	})
}

func TestCompleteGoal(t *testing.T) {
	t.Run("marks goal completed", func(t *testing.T) {
		repo := newMockJournalRepository(&models.Snapshot{
			Goals: []models.Goal{{ID: 1, Text: "Finish the thesis", Status: models.GoalStatusActive}},
		})
		svc := NewJournalService(repo)

		goal, err := svc.CompleteGoal(context.Background(), 1)
		if err != nil {
			t.Fatalf("CompleteGoal() error = %v", err)
		}
		if goal.Status != models.GoalStatusCompleted {
			t.Errorf("status = %q, want completed", goal.Status)
		}
		if goal.CompletedDate == nil || goal.CompletedDate.IsZero() {
			t.Error("completed date not stamped")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := newMockJournalRepository(nil)
		svc := NewJournalService(repo)

		if _, err := svc.CompleteGoal(context.Background(), 42); !errors.Is(err, repository.ErrGoalNotFound) {
			t.Errorf("error = %v, want ErrGoalNotFound", err)
		}
	})
}

func TestRecentEvents(t *testing.T) {
	events := make([]models.Event, 0, 15)
	for i := 0; i < 15; i++ {
		events = append(events, eventOn(15-i, fmt.Sprintf("entry %d", i)))
	}
	repo := newMockJournalRepository(&models.Snapshot{Events: events})
	svc := NewJournalService(repo)

	t.Run("default limit", func(t *testing.T) {
		recent, err := svc.RecentEvents(context.Background(), 0)
		if err != nil {
			t.Fatalf("RecentEvents() error = %v", err)
		}
		if len(recent) != defaultRecentLimit {
			t.Errorf("len = %d, want %d", len(recent), defaultRecentLimit)
		}
		if recent[len(recent)-1].Entry != "entry 14" {
			t.Errorf("last entry = %q, want newest", recent[len(recent)-1].Entry)
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		recent, err := svc.RecentEvents(context.Background(), 3)
		if err != nil {
			t.Fatalf("RecentEvents() error = %v", err)
		}
		if len(recent) != 3 {
			t.Errorf("len = %d, want 3", len(recent))
		}
	})

	t.Run("storage error propagates", func(t *testing.T) {
		broken := newMockJournalRepository(nil)
		broken.loadErr = fmt.Errorf("%w: io error", repository.ErrStorageUnavailable)

		if _, err := NewJournalService(broken).RecentEvents(context.Background(), 5); !errors.Is(err, repository.ErrStorageUnavailable) {
			t.Errorf("error = %v, want ErrStorageUnavailable", err)
		}
	})
}

func TestActiveGoalsFilter(t *testing.T) {
	completed := models.NewDate(2026, 3, 1)
	repo := newMockJournalRepository(&models.Snapshot{
		Goals: []models.Goal{
			{ID: 1, Text: "still going", Status: models.GoalStatusActive},
			{ID: 2, Text: "done", Status: models.GoalStatusCompleted, CompletedDate: &completed},
			{ID: 3, Text: "also going", Status: models.GoalStatusActive},
		},
	})
	svc := NewJournalService(repo)

	goals, err := svc.ActiveGoals(context.Background())
	if err != nil {
		t.Fatalf("ActiveGoals() error = %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("len = %d, want 2", len(goals))
	}
	if goals[0].ID != 1 || goals[1].ID != 3 {
		t.Errorf("goals = %+v", goals)
	}
}

func TestJournalStats(t *testing.T) {
	repo := newMockJournalRepository(&models.Snapshot{
		Events: []models.Event{eventOn(1, "one"), eventOn(0, "two")},
		Goals:  []models.Goal{{ID: 1, Text: "goal", Status: models.GoalStatusActive}},
	})
	svc := NewJournalService(repo)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalEvents != 2 || stats.TotalGoals != 1 || stats.ActiveGoals != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
