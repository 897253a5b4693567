package service

import "strings"

// Category is a named keyword set within a lexicon.
type Category struct {
	Name  string
	Words []string
}

// Lexicons is the keyword configuration for the text signal extractor.
// The sets are treated as immutable after construction; matching is
// case-insensitive substring containment, so short keywords may match
// inside longer words ("sad" matches "sadly"). That semantics is load
// bearing for score compatibility across deployments.
type Lexicons struct {
	// Comprehensive-report mood lexicons
	Positive []string
	Negative []string

	// Growth metrics
	Growth              []string
	Challenge           []string
	ResilienceChallenge []string
	Recovery            []string
	Learning            []string

	// Achievement tracking
	Achievement []string

	// Weekly report uses smaller, separate sets
	WeeklyPositive    []string
	WeeklyNegative    []string
	WeeklyAchievement []string
	WeeklyChallenge   []string
	FocusChallenge    []string

	// Skill taxonomy; an entry may count toward several categories
	Skills []Category

	// Goal categories in priority order; first match wins. Goals that hit
	// none fall into GoalFallbackCategory.
	GoalCategories []Category
}

// GoalFallbackCategory is the bucket for goals that match no category.
const GoalFallbackCategory = "personal"

// DefaultLexicons returns the standard keyword sets.
func DefaultLexicons() Lexicons {
	return Lexicons{
		Positive: []string{
			"happy", "excited", "grateful", "accomplished", "successful",
			"motivated", "confident", "proud", "satisfied", "optimistic",
		},
		Negative: []string{
			"sad", "frustrated", "angry", "stressed", "overwhelmed",
			"disappointed", "worried", "anxious", "tired", "discouraged",
		},
		Growth: []string{
			"learned", "improved", "developed", "achieved", "mastered",
			"overcame", "progress", "growth", "success",
		},
		Challenge: []string{
			"challenge", "difficult", "struggle", "problem", "obstacle", "setback",
		},
		ResilienceChallenge: []string{
			"problem", "difficult", "struggle", "setback", "failed",
		},
		Recovery: []string{
			"solved", "overcame", "better", "improved", "learned",
		},
		Learning: []string{
			"learned", "discovered", "realized", "understood", "insight", "knowledge",
		},
		Achievement: []string{
			"achieved", "accomplished", "completed", "finished",
			"succeeded", "won", "graduated", "promoted",
		},
		WeeklyPositive: []string{
			"happy", "excited", "accomplished", "grateful", "successful",
		},
		WeeklyNegative: []string{
			"stressed", "frustrated", "tired", "overwhelmed", "disappointed",
		},
		WeeklyAchievement: []string{
			"achieved", "completed", "finished", "accomplished", "succeeded",
		},
		WeeklyChallenge: []string{
			"difficult", "challenging", "struggle", "problem", "obstacle",
		},
		FocusChallenge: []string{
			"difficult", "challenging", "struggle",
		},
		Skills: []Category{
			{Name: "technical", Words: []string{"programming", "coding", "software", "computer", "technical", "digital"}},
			{Name: "communication", Words: []string{"presentation", "speaking", "writing", "communication", "meeting"}},
			{Name: "leadership", Words: []string{"leadership", "management", "team", "leading", "mentoring"}},
			{Name: "creative", Words: []string{"design", "creative", "art", "writing", "innovation"}},
			{Name: "analytical", Words: []string{"analysis", "data", "research", "problem-solving", "critical thinking"}},
		},
		GoalCategories: []Category{
			{Name: "career", Words: []string{"career", "job", "work", "professional"}},
			{Name: "health", Words: []string{"health", "fitness", "exercise", "diet"}},
			{Name: "relationships", Words: []string{"relationship", "family", "friend", "social"}},
			{Name: "learning", Words: []string{"learn", "skill", "education", "course"}},
		},
	}
}

// Extractor scores free text against the configured lexicons. It is a
// pure-function component: no side effects, safe for concurrent use.
type Extractor struct {
	lex Lexicons
}

// NewExtractor creates an extractor with the given lexicons.
func NewExtractor(lex Lexicons) *Extractor {
	return &Extractor{lex: lex}
}

// Lexicons returns the extractor's keyword configuration.
func (e *Extractor) Lexicons() Lexicons {
	return e.lex
}

// CountMatches returns how many of the words occur in text. Each word
// counts at most once regardless of how often it repeats.
func (e *Extractor) CountMatches(text string, words []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, word := range words {
		if strings.Contains(lower, word) {
			count++
		}
	}
	return count
}

// ContainsAny reports whether any of the words occur in text.
func (e *Extractor) ContainsAny(text string, words []string) bool {
	lower := strings.ToLower(text)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// MoodScore returns the positive and negative indicator counts for one
// entry. The mood score is positive minus negative.
func (e *Extractor) MoodScore(text string) (positive, negative int) {
	return e.CountMatches(text, e.lex.Positive), e.CountMatches(text, e.lex.Negative)
}

// SkillAreas returns the skill categories the text touches, in taxonomy
// order. A single entry may hit several categories.
func (e *Extractor) SkillAreas(text string) []string {
	var areas []string
	for _, cat := range e.lex.Skills {
		if e.ContainsAny(text, cat.Words) {
			areas = append(areas, cat.Name)
		}
	}
	return areas
}

// ClassifyGoal buckets a goal into the first matching category, falling
// back to GoalFallbackCategory.
func (e *Extractor) ClassifyGoal(text string) string {
	for _, cat := range e.lex.GoalCategories {
		if e.ContainsAny(text, cat.Words) {
			return cat.Name
		}
	}
	return GoalFallbackCategory
}
