package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lifelog/lifelog/internal/models"
	"github.com/lifelog/lifelog/internal/repository"
)

func TestWeeklyReportEmptyJournal(t *testing.T) {
	repo := newMockJournalRepository(nil)
	svc := NewAnalyticsService(repo, nil)

	report, err := svc.WeeklyReport(context.Background())
	if err != nil {
		t.Fatalf("WeeklyReport() error = %v", err)
	}

	if report.Period != "Weekly Report" {
		t.Errorf("period = %q", report.Period)
	}
	if report.EntriesThisWeek != 0 {
		t.Errorf("entries = %d, want 0", report.EntriesThisWeek)
	}
	if report.MoodSummary != "No entries this week" {
		t.Errorf("mood summary = %q", report.MoodSummary)
	}
	want := []string{"Increase daily reflection consistency"}
	if len(report.NextWeekFocus) != 1 || report.NextWeekFocus[0] != want[0] {
		t.Errorf("next week focus = %v, want %v", report.NextWeekFocus, want)
	}
}

func TestWeeklyReportExcludesOldEntries(t *testing.T) {
	repo := newMockJournalRepository(&models.Snapshot{
		Events: []models.Event{
			eventOn(30, "old entry"),
			eventOn(8, "just outside the window"),
			eventOn(3, "inside the window"),
			eventOn(1, "also inside"),
		},
	})
	svc := NewAnalyticsService(repo, nil)

	report, err := svc.WeeklyReport(context.Background())
	if err != nil {
		t.Fatalf("WeeklyReport() error = %v", err)
	}
	if report.EntriesThisWeek != 2 {
		t.Errorf("entries = %d, want 2", report.EntriesThisWeek)
	}
}

func TestWeeklyReportDegradesOnStorageError(t *testing.T) {
	repo := newMockJournalRepository(nil)
	repo.loadErr = fmt.Errorf("%w: connection refused", repository.ErrStorageUnavailable)
	svc := NewAnalyticsService(repo, nil)

	report, err := svc.WeeklyReport(context.Background())
	if err != nil {
		t.Fatalf("WeeklyReport() error = %v, want degraded report", err)
	}
	if report.EntriesThisWeek != 0 {
		t.Errorf("entries = %d, want 0", report.EntriesThisWeek)
	}
}

func TestWeeklyMoodSummary(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    string
	}{
		{
			name:    "predominantly positive",
			entries: []string{"happy and excited about the launch", "grateful for the team"},
			want:    "Predominantly positive",
		},
		{
			name:    "some challenges",
			entries: []string{"stressed about the deadline", "so tired tonight"},
			want:    "Some challenges noted",
		},
		{
			name:    "balanced",
			entries: []string{"happy morning but a stressed afternoon"},
			want:    "Balanced week",
		},
		{
			name:    "neutral entries balance out",
			entries: []string{"a quiet ordinary day"},
			want:    "Balanced week",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make([]models.Event, 0, len(tt.entries))
			for i, entry := range tt.entries {
				events = append(events, eventOn(len(tt.entries)-i, entry))
			}
			repo := newMockJournalRepository(&models.Snapshot{Events: events})
			svc := NewAnalyticsService(repo, nil)

			report, err := svc.WeeklyReport(context.Background())
			if err != nil {
				t.Fatalf("WeeklyReport() error = %v", err)
			}
			if report.MoodSummary != tt.want {
				t.Errorf("mood summary = %q, want %q", report.MoodSummary, tt.want)
			}
		})
	}
}

func TestWeeklyReportFlaggedEntries(t *testing.T) {
	events := []models.Event{
		eventOn(6, "completed the onboarding flow"),
		eventOn(5, "a difficult conversation with my manager"),
		eventOn(4, "finished the draft"),
		eventOn(2, "achieved a long-standing target"),
	}
	repo := newMockJournalRepository(&models.Snapshot{Events: events})
	svc := NewAnalyticsService(repo, nil)

	report, err := svc.WeeklyReport(context.Background())
	if err != nil {
		t.Fatalf("WeeklyReport() error = %v", err)
	}

	wantAchievements := []string{
		"completed the onboarding flow",
		"finished the draft",
		"achieved a long-standing target",
	}
	if len(report.Achievements) != len(wantAchievements) {
		t.Fatalf("achievements = %v, want %v", report.Achievements, wantAchievements)
	}
	for i, want := range wantAchievements {
		if report.Achievements[i] != want {
			t.Errorf("achievements[%d] = %q, want %q", i, report.Achievements[i], want)
		}
	}
	if len(report.Challenges) != 1 || report.Challenges[0] != "a difficult conversation with my manager" {
		t.Errorf("challenges = %v", report.Challenges)
	}
}

func TestWeeklyReportFlaggedEntriesCapped(t *testing.T) {
	events := make([]models.Event, 0, 7)
	for i := 0; i < 7; i++ {
		events = append(events, eventOn(6-i%6, fmt.Sprintf("completed task %d", i)))
	}
	repo := newMockJournalRepository(&models.Snapshot{Events: events})
	svc := NewAnalyticsService(repo, nil)

	report, err := svc.WeeklyReport(context.Background())
	if err != nil {
		t.Fatalf("WeeklyReport() error = %v", err)
	}
	if len(report.Achievements) != 5 {
		t.Errorf("achievements = %d, want cap of 5", len(report.Achievements))
	}
}

func TestWeeklyReportGoalsMentioned(t *testing.T) {
	repo := newMockJournalRepository(&models.Snapshot{
		Events: []models.Event{
			eventOn(2, "practiced spanish vocabulary during lunch"),
			eventOn(1, "went for a short run"),
		},
		Goals: []models.Goal{
			{ID: 1, Text: "Learn Spanish fluently", Status: models.GoalStatusActive},
			{ID: 2, Text: "Declutter the garage", Status: models.GoalStatusActive},
		},
	})
	svc := NewAnalyticsService(repo, nil)

	report, err := svc.WeeklyReport(context.Background())
	if err != nil {
		t.Fatalf("WeeklyReport() error = %v", err)
	}

	if len(report.GoalsWorkedOn) != 1 || report.GoalsWorkedOn[0] != "Learn Spanish fluently" {
		t.Errorf("goals worked on = %v, want [Learn Spanish fluently]", report.GoalsWorkedOn)
	}
	// The untouched active goal surfaces as a focus suggestion
	found := false
	for _, s := range report.NextWeekFocus {
		if s == "Work on neglected goal: Declutter the garage" {
			found = true
		}
	}
	if !found {
		t.Errorf("next week focus = %v, want neglected-goal suggestion", report.NextWeekFocus)
	}
}

func TestNextWeekFocusDefault(t *testing.T) {
	repo := newMockJournalRepository(&models.Snapshot{
		Events: []models.Event{
			eventOn(3, "a pleasant walk"),
			eventOn(2, "a movie night"),
			eventOn(1, "cooked a new recipe"),
		},
	})
	svc := NewAnalyticsService(repo, nil)

	report, err := svc.WeeklyReport(context.Background())
	if err != nil {
		t.Fatalf("WeeklyReport() error = %v", err)
	}

	want := []string{"Continue current positive momentum"}
	if len(report.NextWeekFocus) != 1 || report.NextWeekFocus[0] != want[0] {
		t.Errorf("next week focus = %v, want %v", report.NextWeekFocus, want)
	}
}

func TestNextWeekFocusRecurringChallenges(t *testing.T) {
	repo := newMockJournalRepository(&models.Snapshot{
		Events: []models.Event{
			eventOn(5, "a difficult commute"),
			eventOn(4, "another difficult meeting"),
			eventOn(3, "still a struggle to focus"),
			eventOn(1, "a normal day"),
		},
	})
	svc := NewAnalyticsService(repo, nil)

	report, err := svc.WeeklyReport(context.Background())
	if err != nil {
		t.Fatalf("WeeklyReport() error = %v", err)
	}

	found := false
	for _, s := range report.NextWeekFocus {
		if s == "Address recurring challenges with specific action plans" {
			found = true
		}
	}
	if !found {
		t.Errorf("next week focus = %v, want recurring-challenge suggestion", report.NextWeekFocus)
	}
}

func TestWeeklyReportDateRange(t *testing.T) {
	repo := newMockJournalRepository(nil)
	svc := NewAnalyticsService(repo, nil)

	report, err := svc.WeeklyReport(context.Background())
	if err != nil {
		t.Fatalf("WeeklyReport() error = %v", err)
	}

	now := time.Now()
	wantEnd := now.Format("2006-01-02")
	wantStart := now.AddDate(0, 0, -7).Format("2006-01-02")
	if !strings.HasPrefix(report.DateRange, wantStart) || !strings.HasSuffix(report.DateRange, wantEnd) {
		t.Errorf("date range = %q, want %q to %q", report.DateRange, wantStart, wantEnd)
	}
}
