package models

import "time"

// Report is the comprehensive analytics report. It is computed fresh on
// every request and never persisted.
type Report struct {
	Summary             Summary             `json:"summary"`
	MoodAnalysis        MoodAnalysis        `json:"mood_analysis"`
	GoalProgress        GoalProgress        `json:"goal_progress"`
	ActivityPatterns    ActivityPatterns    `json:"activity_patterns"`
	GrowthMetrics       GrowthMetrics       `json:"growth_metrics"`
	Recommendations     []Recommendation    `json:"recommendations"`
	AchievementTracking AchievementTracking `json:"achievement_tracking"`
	GeneratedAt         time.Time           `json:"generated_at"`
}

// Summary holds the basic journal statistics.
type Summary struct {
	TotalEntries          int     `json:"total_entries"`
	TotalGoals            int     `json:"total_goals"`
	ActiveGoals           int     `json:"active_goals"`
	DaysTracked           int     `json:"days_tracked"`
	AverageEntriesPerWeek float64 `json:"average_entries_per_week"`
	ConsistencyScore      float64 `json:"consistency_score"`
}

// MoodPoint is the mood score derived from a single entry.
type MoodPoint struct {
	Date               Date `json:"date"`
	MoodScore          int  `json:"mood_score"`
	PositiveIndicators int  `json:"positive_indicators"`
	NegativeIndicators int  `json:"negative_indicators"`
}

// WeeklyMood is the average mood score for one ISO week.
type WeeklyMood struct {
	Week    string  `json:"week"`
	Average float64 `json:"average"`
}

// MoodAnalysis holds mood-over-time metrics.
//
// Trend values: "improving", "declining", "stable", "insufficient_data".
type MoodAnalysis struct {
	DailyMood      []MoodPoint  `json:"daily_mood"`
	WeeklyAverages []WeeklyMood `json:"weekly_averages"`
	OverallTrend   string       `json:"overall_trend"`
	MoodVolatility float64      `json:"mood_volatility"`
}

// OverdueGoal is an active goal whose target date has passed.
type OverdueGoal struct {
	Goal        string `json:"goal"`
	TargetDate  Date   `json:"target_date"`
	DaysOverdue int    `json:"days_overdue"`
}

// GoalProgress holds goal completion metrics. Message carries the sentinel
// text when there are no goals to analyze.
type GoalProgress struct {
	Message               string         `json:"message,omitempty"`
	TotalGoals            int            `json:"total_goals"`
	CompletedGoals        int            `json:"completed_goals"`
	ActiveGoals           int            `json:"active_goals"`
	CompletionRate        float64        `json:"completion_rate"`
	AverageCompletionDays float64        `json:"average_completion_time"`
	GoalsByCategory       map[string]int `json:"goals_by_category"`
	OverdueGoals          []OverdueGoal  `json:"overdue_goals"`
}

// EntryFrequency holds engagement metrics derived from entry gaps.
type EntryFrequency struct {
	DaysSinceLast  int     `json:"days_since_last"`
	AverageGap     float64 `json:"average_gap"`
	FrequencyScore float64 `json:"frequency_score"`
}

// ActivityPatterns holds day-of-week and hour-of-day histograms. PeakHour
// is nil when there is no activity data.
type ActivityPatterns struct {
	Message        string         `json:"message,omitempty"`
	ActivityByDay  map[string]int `json:"activity_by_day"`
	ActivityByHour map[int]int    `json:"activity_by_hour"`
	MostActiveDay  string         `json:"most_active_day,omitempty"`
	PeakHour       *int           `json:"peak_hour"`
	EntryFrequency EntryFrequency `json:"entry_frequency"`
}

// GrowthMetrics holds personal growth and resilience scores.
type GrowthMetrics struct {
	GrowthIndicators       int            `json:"growth_indicators"`
	ChallengeMentions      int            `json:"challenge_mentions"`
	GrowthToChallengeRatio float64        `json:"growth_to_challenge_ratio"`
	ResilienceScore        float64        `json:"resilience_score"`
	LearningFrequency      float64        `json:"learning_frequency"`
	SkillDevelopmentAreas  map[string]int `json:"skill_development_areas"`
}

// Recommendation is a single data-driven suggestion.
type Recommendation struct {
	Type           string `json:"type"`
	Priority       string `json:"priority"`
	Recommendation string `json:"recommendation"`
}

// Achievement is an entry flagged by achievement keywords.
type Achievement struct {
	Date        Date   `json:"date"`
	Achievement string `json:"achievement"`
	Type        string `json:"type"`
}

// AchievementTracking holds achievement totals and monthly counts.
type AchievementTracking struct {
	TotalAchievements  int            `json:"total_achievements"`
	RecentAchievements []Achievement  `json:"recent_achievements"`
	MonthlyCounts      map[string]int `json:"monthly_counts"`
	AchievementRate    float64        `json:"achievement_rate"`
}

// WeeklyReport is the focused trailing-seven-day report.
type WeeklyReport struct {
	Period          string   `json:"period"`
	DateRange       string   `json:"date_range"`
	EntriesThisWeek int      `json:"entries_this_week"`
	MoodSummary     string   `json:"mood_summary"`
	Achievements    []string `json:"achievements"`
	Challenges      []string `json:"challenges"`
	GoalsWorkedOn   []string `json:"goals_worked_on"`
	NextWeekFocus   []string `json:"next_week_focus"`
}
