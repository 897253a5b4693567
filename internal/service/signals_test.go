package service

import (
	"reflect"
	"testing"
)

func TestCountMatchesSubstringContainment(t *testing.T) {
	e := NewExtractor(DefaultLexicons())

	tests := []struct {
		name  string
		text  string
		words []string
		want  int
	}{
		{
			name:  "keyword inside longer word",
			text:  "Sadly the demo failed",
			words: []string{"sad"},
			want:  1,
		},
		{
			name:  "case insensitive",
			text:  "HAPPY about the launch",
			words: []string{"happy"},
			want:  1,
		},
		{
			name:  "repeated keyword counts once",
			text:  "happy happy happy",
			words: []string{"happy"},
			want:  1,
		},
		{
			name:  "multiple distinct keywords",
			text:  "happy and proud and confident",
			words: []string{"happy", "proud", "confident", "grateful"},
			want:  3,
		},
		{
			name:  "no match",
			text:  "an uneventful day",
			words: []string{"happy", "proud"},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.CountMatches(tt.text, tt.words); got != tt.want {
				t.Errorf("CountMatches(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestMoodScore(t *testing.T) {
	e := NewExtractor(DefaultLexicons())

	positive, negative := e.MoodScore("Felt happy and proud, though a bit tired")
	if positive != 2 {
		t.Errorf("positive = %d, want 2", positive)
	}
	if negative != 1 {
		t.Errorf("negative = %d, want 1", negative)
	}
}

func TestSkillAreasMultipleCategories(t *testing.T) {
	e := NewExtractor(DefaultLexicons())

	areas := e.SkillAreas("Spent the morning programming and the afternoon on leadership training")
	want := []string{"technical", "leadership"}
	if !reflect.DeepEqual(areas, want) {
		t.Errorf("SkillAreas = %v, want %v", areas, want)
	}
}

func TestClassifyGoal(t *testing.T) {
	e := NewExtractor(DefaultLexicons())

	tests := []struct {
		text string
		want string
	}{
		{"Get a promotion at my job", "career"},
		{"Run a marathon for fitness", "health"},
		{"Call family more often", "relationships"},
		{"Take an education course", "learning"},
		{"Meditate every morning", "personal"},
		// "work" hits career before "health" is considered; first match wins
		{"Work on my health", "career"},
	}

	for _, tt := range tests {
		if got := e.ClassifyGoal(tt.text); got != tt.want {
			t.Errorf("ClassifyGoal(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
