package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lifelog/lifelog/internal/logger"
	"github.com/lifelog/lifelog/internal/models"
	"github.com/lifelog/lifelog/internal/repository"
)

// Report windows. Growth and learning metrics look at the trailing
// entries, not the full history.
const (
	moodHistoryLimit    = 30
	weeklyAverageLimit  = 12
	growthWindow        = 30
	skillWindow         = 50
	recentAchievements  = 10
	minEventsForScoring = 7
	minEventsResilience = 5
	recoveryLookahead   = 3
)

// Default scores where the data cannot support a measurement.
const (
	resilienceDefaultSparse       = 50 // fewer than minEventsResilience events
	resilienceDefaultNoChallenges = 75
)

// Degraded-section sentinels.
const (
	msgNoGoals    = "No goals found for analysis"
	msgNoActivity = "No activity data available"
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type analyticsService struct {
	repo      repository.JournalRepository
	extractor *Extractor
}

// NewAnalyticsService creates a new analytics service. A nil extractor
// gets the default lexicons.
func NewAnalyticsService(repo repository.JournalRepository, extractor *Extractor) AnalyticsService {
	if extractor == nil {
		extractor = NewExtractor(DefaultLexicons())
	}
	return &analyticsService{
		repo:      repo,
		extractor: extractor,
	}
}

// ComprehensiveReport computes the full-history report. Storage failures
// degrade to an empty snapshot; a report is always returned.
func (s *analyticsService) ComprehensiveReport(ctx context.Context) (*models.Report, error) {
	snapshot := s.loadSnapshot(ctx)
	now := time.Now()
	today := models.DateOf(now)

	report := &models.Report{
		Summary:             s.summarize(snapshot),
		MoodAnalysis:        s.analyzeMood(snapshot.Events),
		GoalProgress:        s.analyzeGoals(snapshot.Goals, today),
		ActivityPatterns:    s.analyzeActivity(snapshot.Events, today),
		GrowthMetrics:       s.growthMetrics(snapshot.Events),
		AchievementTracking: s.trackAchievements(snapshot.Events),
		GeneratedAt:         now,
	}
	report.Recommendations = s.recommend(report.MoodAnalysis, report.GoalProgress, report.ActivityPatterns)

	// Advisory cache; report correctness never depends on these writes
	s.writePattern(ctx, "skill_focus", report.GrowthMetrics.SkillDevelopmentAreas)
	s.writePattern(ctx, "goal_focus", report.GoalProgress.GoalsByCategory)

	return report, nil
}

// WeeklyReport computes the trailing-seven-day report.
func (s *analyticsService) WeeklyReport(ctx context.Context) (*models.WeeklyReport, error) {
	snapshot := s.loadSnapshot(ctx)
	now := time.Now()
	today := models.DateOf(now)
	weekAgo := models.DateOf(now.AddDate(0, 0, -7))

	recent := make([]models.Event, 0)
	for _, e := range snapshot.Events {
		if e.Date.IsZero() || e.Date.Before(weekAgo.Time) {
			continue
		}
		recent = append(recent, e)
	}

	lex := s.extractor.Lexicons()
	mentioned := s.goalsMentioned(recent, snapshot.Goals)

	return &models.WeeklyReport{
		Period:          "Weekly Report",
		DateRange:       fmt.Sprintf("%s to %s", weekAgo.Format("2006-01-02"), today.Format("2006-01-02")),
		EntriesThisWeek: len(recent),
		MoodSummary:     s.weeklyMood(recent),
		Achievements:    s.flaggedEntries(recent, lex.WeeklyAchievement, 5),
		Challenges:      s.flaggedEntries(recent, lex.WeeklyChallenge, 3),
		GoalsWorkedOn:   mentioned,
		NextWeekFocus:   s.nextWeekFocus(recent, snapshot, mentioned),
	}, nil
}

// loadSnapshot reads the journal, degrading an unreadable store to the
// empty snapshot so reports always compute.
func (s *analyticsService) loadSnapshot(ctx context.Context) *models.Snapshot {
	snapshot, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		logger.Ctx(ctx).Warn("journal unavailable, analyzing empty snapshot", logger.Err(err))
		return models.EmptySnapshot()
	}
	return snapshot
}

func (s *analyticsService) writePattern(ctx context.Context, name string, data any) {
	if err := s.repo.WritePattern(ctx, name, data); err != nil {
		logger.Ctx(ctx).Warn("pattern write failed", logger.String("pattern", name), logger.Err(err))
	}
}

func (s *analyticsService) summarize(snapshot *models.Snapshot) models.Summary {
	events := snapshot.Events
	dates := eventDates(events)

	summary := models.Summary{
		TotalEntries: len(events),
		TotalGoals:   len(snapshot.Goals),
		ActiveGoals:  len(snapshot.ActiveGoals()),
		DaysTracked:  uniqueDays(events),
	}

	if len(dates) > 0 {
		weeks := dates[len(dates)-1].Sub(dates[0]).Hours() / 24 / 7
		if weeks < 1 {
			weeks = 1
		}
		summary.AverageEntriesPerWeek = float64(len(events)) / weeks
	}

	// Too few entries to call anything a habit yet
	if len(events) >= minEventsForScoring {
		if gaps := gapsInDays(dates); len(gaps) > 0 {
			summary.ConsistencyScore = clamp(100-meanInt(gaps)*10, 0, 100)
		}
	}

	return summary
}

func (s *analyticsService) analyzeMood(events []models.Event) models.MoodAnalysis {
	daily := make([]models.MoodPoint, 0, len(events))
	weekly := make(map[string][]float64)

	for _, e := range events {
		if e.Date.IsZero() {
			continue
		}
		positive, negative := s.extractor.MoodScore(e.Entry)
		score := positive - negative

		daily = append(daily, models.MoodPoint{
			Date:               e.Date,
			MoodScore:          score,
			PositiveIndicators: positive,
			NegativeIndicators: negative,
		})
		week := weekKey(e.Date.Time)
		weekly[week] = append(weekly[week], float64(score))
	}

	weeks := make([]string, 0, len(weekly))
	for w := range weekly {
		weeks = append(weeks, w)
	}
	sort.Strings(weeks)

	averages := make([]models.WeeklyMood, 0, len(weeks))
	values := make([]float64, 0, len(weeks))
	for _, w := range weeks {
		avg := mean(weekly[w])
		averages = append(averages, models.WeeklyMood{Week: w, Average: avg})
		values = append(values, avg)
	}

	return models.MoodAnalysis{
		DailyMood:      lastN(daily, moodHistoryLimit),
		WeeklyAverages: lastN(averages, weeklyAverageLimit),
		OverallTrend:   classifyTrend(values),
		MoodVolatility: sampleStddev(values),
	}
}

func (s *analyticsService) analyzeGoals(goals []models.Goal, today models.Date) models.GoalProgress {
	progress := models.GoalProgress{
		GoalsByCategory: make(map[string]int),
		OverdueGoals:    []models.OverdueGoal{},
	}

	if len(goals) == 0 {
		progress.Message = msgNoGoals
		return progress
	}

	var completionDays []float64
	for _, g := range goals {
		switch g.Status {
		case models.GoalStatusCompleted:
			progress.CompletedGoals++
			if !g.CreatedDate.IsZero() && g.CompletedDate != nil && !g.CompletedDate.IsZero() {
				completionDays = append(completionDays, float64(g.CreatedDate.DaysUntil(*g.CompletedDate)))
			}
		case models.GoalStatusActive:
			progress.ActiveGoals++
			if g.TargetDate != nil && !g.TargetDate.IsZero() && g.TargetDate.Before(today.Time) {
				progress.OverdueGoals = append(progress.OverdueGoals, models.OverdueGoal{
					Goal:        g.Text,
					TargetDate:  *g.TargetDate,
					DaysOverdue: g.TargetDate.DaysUntil(today),
				})
			}
		}
		progress.GoalsByCategory[s.extractor.ClassifyGoal(g.Text)]++
	}

	progress.TotalGoals = len(goals)
	progress.CompletionRate = float64(progress.CompletedGoals) / float64(len(goals)) * 100
	progress.AverageCompletionDays = mean(completionDays)

	return progress
}

func (s *analyticsService) analyzeActivity(events []models.Event, today models.Date) models.ActivityPatterns {
	patterns := models.ActivityPatterns{
		ActivityByDay:  make(map[string]int),
		ActivityByHour: make(map[int]int),
	}

	var dayCounts [7]int
	var hourCounts [24]int
	tracked := 0

	for _, e := range events {
		when := e.When()
		if when.IsZero() {
			continue
		}
		tracked++
		dayCounts[int(when.Weekday())]++
		hourCounts[when.Hour()]++
	}

	if tracked == 0 {
		patterns.Message = msgNoActivity
		return patterns
	}

	// Peak selection iterates fixed day/hour order, so ties resolve to the
	// earliest bucket deterministically.
	bestDay := 0
	for i, count := range dayCounts {
		if count > 0 {
			patterns.ActivityByDay[dayNames[i]] = count
		}
		if count > dayCounts[bestDay] {
			bestDay = i
		}
	}
	patterns.MostActiveDay = dayNames[bestDay]

	peakHour := 0
	for hour, count := range hourCounts {
		if count > 0 {
			patterns.ActivityByHour[hour] = count
		}
		if count > hourCounts[peakHour] {
			peakHour = hour
		}
	}
	patterns.PeakHour = &peakHour

	patterns.EntryFrequency = s.entryFrequency(events, today)
	return patterns
}

func (s *analyticsService) entryFrequency(events []models.Event, today models.Date) models.EntryFrequency {
	dates := eventDates(events)
	if len(dates) == 0 {
		return models.EntryFrequency{}
	}

	averageGap := meanInt(gapsInDays(dates))
	last := dates[len(dates)-1]

	return models.EntryFrequency{
		DaysSinceLast:  int(today.Sub(last).Hours() / 24),
		AverageGap:     averageGap,
		FrequencyScore: clamp(100-averageGap*5, 0, 100),
	}
}

func (s *analyticsService) growthMetrics(events []models.Event) models.GrowthMetrics {
	lex := s.extractor.Lexicons()
	recent := lastN(events, growthWindow)

	growth := 0
	challenge := 0
	for _, e := range recent {
		growth += s.extractor.CountMatches(e.Entry, lex.Growth)
		challenge += s.extractor.CountMatches(e.Entry, lex.Challenge)
	}

	denom := challenge
	if denom < 1 {
		denom = 1
	}

	return models.GrowthMetrics{
		GrowthIndicators:       growth,
		ChallengeMentions:      challenge,
		GrowthToChallengeRatio: float64(growth) / float64(denom),
		ResilienceScore:        s.resilienceScore(events),
		LearningFrequency:      s.learningFrequency(events),
		SkillDevelopmentAreas:  s.skillAreas(events),
	}
}

// resilienceScore measures recovery after challenges: for every entry
// containing a challenge word, look for a recovery word within the next
// few entries.
func (s *analyticsService) resilienceScore(events []models.Event) float64 {
	if len(events) < minEventsResilience {
		return resilienceDefaultSparse
	}

	lex := s.extractor.Lexicons()
	challenges := 0
	recovered := 0

	for i, e := range events {
		if !s.extractor.ContainsAny(e.Entry, lex.ResilienceChallenge) {
			continue
		}
		challenges++
		for j := i + 1; j < len(events) && j <= i+recoveryLookahead; j++ {
			if s.extractor.ContainsAny(events[j].Entry, lex.Recovery) {
				recovered++
				break
			}
		}
	}

	if challenges == 0 {
		return resilienceDefaultNoChallenges
	}
	return float64(recovered) / float64(challenges) * 100
}

func (s *analyticsService) learningFrequency(events []models.Event) float64 {
	if len(events) == 0 {
		return 0
	}

	lex := s.extractor.Lexicons()
	recent := lastN(events, growthWindow)

	count := 0
	for _, e := range recent {
		if s.extractor.ContainsAny(e.Entry, lex.Learning) {
			count++
		}
	}
	return float64(count) / float64(len(recent)) * 100
}

func (s *analyticsService) skillAreas(events []models.Event) map[string]int {
	areas := make(map[string]int)
	for _, e := range lastN(events, skillWindow) {
		for _, cat := range s.extractor.SkillAreas(e.Entry) {
			areas[cat]++
		}
	}
	return areas
}

// recommend evaluates the recommendation rules in fixed order: mood, then
// goals, then engagement. Only firing rules emit.
func (s *analyticsService) recommend(mood models.MoodAnalysis, goals models.GoalProgress, activity models.ActivityPatterns) []models.Recommendation {
	recommendations := make([]models.Recommendation, 0, 3)

	if mood.OverallTrend == TrendDeclining {
		recommendations = append(recommendations, models.Recommendation{
			Type:           "mood",
			Priority:       "high",
			Recommendation: "Your mood trend shows decline. Consider scheduling activities that typically boost your mood.",
		})
	}

	if goals.CompletionRate < 50 {
		recommendations = append(recommendations, models.Recommendation{
			Type:           "goals",
			Priority:       "medium",
			Recommendation: "Your goal completion rate is low. Consider breaking goals into smaller, more manageable tasks.",
		})
	}

	if activity.EntryFrequency.DaysSinceLast > 7 {
		recommendations = append(recommendations, models.Recommendation{
			Type:           "engagement",
			Priority:       "medium",
			Recommendation: "You haven't logged an entry in a while. Regular reflection helps maintain progress.",
		})
	}

	return recommendations
}

func (s *analyticsService) trackAchievements(events []models.Event) models.AchievementTracking {
	lex := s.extractor.Lexicons()

	achievements := make([]models.Achievement, 0)
	monthly := make(map[string]int)

	for _, e := range events {
		if !s.extractor.ContainsAny(e.Entry, lex.Achievement) {
			continue
		}
		eventType := e.Type
		if eventType == "" {
			eventType = models.EventTypeGeneral
		}
		achievements = append(achievements, models.Achievement{
			Date:        e.Date,
			Achievement: e.Entry,
			Type:        eventType,
		})
		if !e.Date.IsZero() {
			monthly[monthKey(e.Date.Time)]++
		}
	}

	totalEvents := len(events)
	if totalEvents < 1 {
		totalEvents = 1
	}

	return models.AchievementTracking{
		TotalAchievements:  len(achievements),
		RecentAchievements: lastN(achievements, recentAchievements),
		MonthlyCounts:      monthly,
		AchievementRate:    float64(len(achievements)) / float64(totalEvents) * 100,
	}
}

func (s *analyticsService) weeklyMood(recent []models.Event) string {
	if len(recent) == 0 {
		return "No entries this week"
	}

	lex := s.extractor.Lexicons()
	positive := 0
	negative := 0
	for _, e := range recent {
		positive += s.extractor.CountMatches(e.Entry, lex.WeeklyPositive)
		negative += s.extractor.CountMatches(e.Entry, lex.WeeklyNegative)
	}

	switch {
	case positive > negative:
		return "Predominantly positive"
	case negative > positive:
		return "Some challenges noted"
	default:
		return "Balanced week"
	}
}

// flaggedEntries returns up to limit entries containing any of the words,
// verbatim, in journal order.
func (s *analyticsService) flaggedEntries(recent []models.Event, words []string, limit int) []string {
	flagged := make([]string, 0, limit)
	for _, e := range recent {
		if !s.extractor.ContainsAny(e.Entry, words) {
			continue
		}
		flagged = append(flagged, e.Entry)
		if len(flagged) == limit {
			break
		}
	}
	return flagged
}

// goalsMentioned reports which goals this week's entries touch. A goal is
// mentioned when any of the first three words of its text appears as a
// substring in any entry.
func (s *analyticsService) goalsMentioned(recent []models.Event, goals []models.Goal) []string {
	mentioned := make([]string, 0)
	for _, g := range goals {
		keywords := strings.Fields(strings.ToLower(g.Text))
		if len(keywords) > 3 {
			keywords = keywords[:3]
		}
		for _, e := range recent {
			if s.extractor.ContainsAny(e.Entry, keywords) {
				mentioned = append(mentioned, g.Text)
				break
			}
		}
	}
	return mentioned
}

// nextWeekFocus generates up to three suggestions from fixed rules, with a
// default encouragement when none fire.
func (s *analyticsService) nextWeekFocus(recent []models.Event, snapshot *models.Snapshot, mentioned []string) []string {
	suggestions := make([]string, 0, 3)

	if len(recent) < 3 {
		suggestions = append(suggestions, "Increase daily reflection consistency")
	}

	mentionedSet := make(map[string]bool, len(mentioned))
	for _, text := range mentioned {
		mentionedSet[text] = true
	}
	for _, g := range snapshot.ActiveGoals() {
		if mentionedSet[g.Text] {
			continue
		}
		suggestions = append(suggestions, fmt.Sprintf("Work on neglected goal: %s", g.Text))
		break
	}

	lex := s.extractor.Lexicons()
	challengeEntries := 0
	for _, e := range recent {
		if s.extractor.ContainsAny(e.Entry, lex.FocusChallenge) {
			challengeEntries++
		}
	}
	if challengeEntries > 2 {
		suggestions = append(suggestions, "Address recurring challenges with specific action plans")
	}

	if len(suggestions) == 0 {
		return []string{"Continue current positive momentum"}
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
