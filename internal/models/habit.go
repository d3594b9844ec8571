package models

import (
	"encoding/json"
	"strings"
	"time"
)

// TimeOfDay says when during the day a habit is meant to happen.
type TimeOfDay string

const (
	TimeAnytime   TimeOfDay = "anytime"
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

// TimeOfDayOrder is the preferred grouping order for list rendering.
var TimeOfDayOrder = []TimeOfDay{TimeMorning, TimeAnytime, TimeAfternoon, TimeEvening}

// ParseTimeOfDay maps a free-form string onto a known period. Unknown or
// empty values fall back to anytime, matching how legacy records without the
// field are read.
func ParseTimeOfDay(s string) TimeOfDay {
	switch TimeOfDay(strings.ToLower(strings.TrimSpace(s))) {
	case TimeMorning:
		return TimeMorning
	case TimeAfternoon:
		return TimeAfternoon
	case TimeEvening:
		return TimeEvening
	default:
		return TimeAnytime
	}
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTimeOfDay(s)
	return nil
}

// Habit represents a recurring practice to track. Immutable after creation
// except for deletion.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TimeOfDay TimeOfDay `json:"timeOfDay"`
	CreatedAt time.Time `json:"createdAt"`
}
