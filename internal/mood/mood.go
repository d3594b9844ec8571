// Package mood turns a check-in entry into a bounded positivity score for
// calendar rendering. Pure functions only.
package mood

import (
	"math"

	"github.com/mstern/zenith/internal/models"
)

// Category buckets a score for presentation.
type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNegative Category = "negative"
	CategoryNeutral  Category = "neutral"
)

// moodPoint maps the 5-point scale onto [-1, 1], evenly spaced.
func moodPoint(m models.Mood) float64 {
	switch m {
	case models.MoodVeryHappy:
		return 1
	case models.MoodHappy:
		return 0.5
	case models.MoodSad:
		return -0.5
	case models.MoodVerySad:
		return -1
	default:
		return 0
	}
}

// rescale maps a 1-10 rating linearly onto [-1, 1].
func rescale(v int) float64 {
	return 2*float64(v-1)/9 - 1
}

// Score returns the overall positivity of an entry in [-1, 1]: the
// unweighted mean of the mood point and the rescaled energy and focus
// ratings. Deterministic for identical inputs.
func Score(e models.CheckIn) float64 {
	return (moodPoint(e.Mood) + rescale(e.Energy) + rescale(e.Focus)) / 3
}

// Categorize buckets a score: strictly positive, strictly negative, or
// neutral at exactly zero.
func Categorize(score float64) Category {
	switch {
	case score > 0:
		return CategoryPositive
	case score < 0:
		return CategoryNegative
	default:
		return CategoryNeutral
	}
}

// Intensity is the display strength of a score, 0-100.
func Intensity(score float64) int {
	return int(math.Round(math.Abs(score) * 100))
}
