package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Mood is the categorical happiness rating attached to a check-in.
type Mood string

const (
	MoodVeryHappy Mood = "very_happy"
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodSad       Mood = "sad"
	MoodVerySad   Mood = "very_sad"
)

// Moods lists the canonical scale from most to least positive.
var Moods = []Mood{MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad}

// legacyMoods maps the values earlier schema variants persisted: the
// title-cased strings of the emoji flow and the 6-point categorical scale.
// "sick" has no slot on the 5-point scale and folds into very_sad.
var legacyMoods = map[string]Mood{
	"very happy": MoodVeryHappy,
	"happy":      MoodHappy,
	"neutral":    MoodNeutral,
	"sad":        MoodSad,
	"very sad":   MoodVerySad,
	"great":      MoodVeryHappy,
	"good":       MoodHappy,
	"okay":       MoodNeutral,
	"bad":        MoodSad,
	"terrible":   MoodVerySad,
	"sick":       MoodVerySad,
}

// ParseMood normalizes a persisted or user-supplied mood value. The second
// return is false when the value is not recognized in any schema variant.
func ParseMood(s string) (Mood, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	switch Mood(norm) {
	case MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad:
		return Mood(norm), true
	}
	if m, ok := legacyMoods[norm]; ok {
		return m, true
	}
	if m, ok := legacyMoods[strings.ReplaceAll(norm, "_", " ")]; ok {
		return m, true
	}
	return "", false
}

func (m *Mood) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, ok := ParseMood(s); ok {
		*m = parsed
	} else {
		// Unknown legacy value; the owning store decides what to do with it.
		*m = Mood(s)
	}
	return nil
}

// Emoji returns the display glyph for a mood.
func (m Mood) Emoji() string {
	switch m {
	case MoodVeryHappy:
		return "😊"
	case MoodHappy:
		return "🙂"
	case MoodSad:
		return "😔"
	case MoodVerySad:
		return "😫"
	default:
		return "😐"
	}
}

// Label returns a human-readable name for a mood.
func (m Mood) Label() string {
	switch m {
	case MoodVeryHappy:
		return "Very Happy"
	case MoodHappy:
		return "Happy"
	case MoodSad:
		return "Sad"
	case MoodVerySad:
		return "Very Sad"
	default:
		return "Neutral"
	}
}

// CheckIn is a single daily wellness record. One entry per calendar day;
// upserts overwrite the whole record.
type CheckIn struct {
	Mood       Mood      `json:"mood"`
	Energy     int       `json:"energy"`
	Focus      int       `json:"focus"`
	Gratitude  string    `json:"gratitude,omitempty"`
	Intentions string    `json:"intentions,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
