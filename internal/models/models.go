package models

import "time"

// Event types. The journal accepts arbitrary type strings; these are the
// ones the CLI writes.
const (
	EventTypeGeneral = "general"
	EventTypeCareer  = "career"
)

// GoalStatus is the lifecycle state of a goal. Unknown values are
// tolerated on load and excluded from both active and completed counts.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

// Event is a single journal entry. Events are immutable once appended;
// analytics only ever reads them.
type Event struct {
	ID        string     `json:"id,omitempty"`
	Date      Date       `json:"date"`
	Timestamp *Timestamp `json:"timestamp,omitempty"`
	Entry     string     `json:"entry"`
	Type      string     `json:"type,omitempty"`
}

// When returns the event's instant, falling back to its calendar date when
// no timestamp was recorded. Zero when the record carries neither.
func (e Event) When() time.Time {
	if e.Timestamp != nil && !e.Timestamp.IsZero() {
		return e.Timestamp.Time
	}
	return e.Date.Time
}

// Goal is a tracked objective. The JSON field names follow the journal
// document format ("goal" for the text).
type Goal struct {
	ID            int        `json:"id"`
	Text          string     `json:"goal"`
	Status        GoalStatus `json:"status"`
	CreatedDate   Date       `json:"created_date"`
	CompletedDate *Date      `json:"completed_date,omitempty"`
	TargetDate    *Date      `json:"target_date"`
	Progress      int        `json:"progress"`
}

// Pattern is an advisory derived-data cache entry written by analytics.
// Its absence never affects report correctness.
type Pattern struct {
	Data        any       `json:"data"`
	LastUpdated time.Time `json:"last_updated"`
}

// Snapshot is a consistent read of the whole journal document. Analytics
// treats it as immutable.
type Snapshot struct {
	Events   []Event            `json:"life_events"`
	Goals    []Goal             `json:"goals"`
	Patterns map[string]Pattern `json:"patterns"`
	Warnings []string           `json:"warnings"`
}

// EmptySnapshot returns a snapshot with all sections present and empty.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Events:   []Event{},
		Goals:    []Goal{},
		Patterns: map[string]Pattern{},
		Warnings: []string{},
	}
}

// ActiveGoals returns the goals whose status is active.
func (s *Snapshot) ActiveGoals() []Goal {
	active := make([]Goal, 0)
	for _, g := range s.Goals {
		if g.Status == GoalStatusActive {
			active = append(active, g)
		}
	}
	return active
}

// CompletedGoals returns the goals whose status is completed.
func (s *Snapshot) CompletedGoals() []Goal {
	completed := make([]Goal, 0)
	for _, g := range s.Goals {
		if g.Status == GoalStatusCompleted {
			completed = append(completed, g)
		}
	}
	return completed
}

// StoreStats are the basic journal counters exposed by the store.
type StoreStats struct {
	TotalEvents     int `json:"total_events"`
	TotalGoals      int `json:"total_goals"`
	ActiveGoals     int `json:"active_goals"`
	PatternsTracked int `json:"patterns_tracked"`
	Warnings        int `json:"warnings"`
}
