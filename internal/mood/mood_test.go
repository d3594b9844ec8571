package mood

import (
	"math"
	"testing"

	"github.com/mstern/zenith/internal/models"
)

const epsilon = 1e-9

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		entry models.CheckIn
		want  float64
	}{
		{
			name:  "best possible day",
			entry: models.CheckIn{Mood: models.MoodVeryHappy, Energy: 10, Focus: 10},
			want:  1.0,
		},
		{
			name:  "worst possible day",
			entry: models.CheckIn{Mood: models.MoodVerySad, Energy: 1, Focus: 1},
			want:  -1.0,
		},
		{
			name:  "dead neutral",
			entry: models.CheckIn{Mood: models.MoodNeutral, Energy: 5, Focus: 6},
			want:  (0 + (2*4.0/9 - 1) + (2*5.0/9 - 1)) / 3,
		},
		{
			name:  "mixed entry",
			entry: models.CheckIn{Mood: models.MoodHappy, Energy: 1, Focus: 10},
			want:  0.5 / 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.entry)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
			if got < -1 || got > 1 {
				t.Errorf("Score() = %v outside [-1, 1]", got)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	e := models.CheckIn{Mood: models.MoodSad, Energy: 3, Focus: 9, Gratitude: "x"}
	if Score(e) != Score(e) {
		t.Error("Score() not reproducible for identical inputs")
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		score float64
		want  Category
	}{
		{score: 1.0, want: CategoryPositive},
		{score: 0.001, want: CategoryPositive},
		{score: 0, want: CategoryNeutral},
		{score: -0.001, want: CategoryNegative},
		{score: -1.0, want: CategoryNegative},
	}

	for _, tt := range tests {
		if got := Categorize(tt.score); got != tt.want {
			t.Errorf("Categorize(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{score: 0, want: 0},
		{score: 1, want: 100},
		{score: -1, want: 100},
		{score: 0.5, want: 50},
		{score: -0.333, want: 33},
	}

	for _, tt := range tests {
		if got := Intensity(tt.score); got != tt.want {
			t.Errorf("Intensity(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}
