// Package checkin owns the day-keyed wellness entries: one record per
// calendar day with mood, energy, focus, and free-text fields.
package checkin

import (
	"sort"
	"time"

	"github.com/mstern/zenith/internal/constants"
	"github.com/mstern/zenith/internal/dateutil"
	"github.com/mstern/zenith/internal/errors"
	"github.com/mstern/zenith/internal/logger"
	"github.com/mstern/zenith/internal/models"
	"github.com/mstern/zenith/internal/storage"
)

// DayEntry pairs a day key with its entry for month listings.
type DayEntry struct {
	Day   string
	Entry models.CheckIn
}

// Store is the in-memory source of truth for check-ins. Constructed once
// with a reference instant; future-dated entries are repaired away at load
// and rejected at upsert against that instant.
type Store struct {
	entries map[string]models.CheckIn
	adapter *storage.Adapter
	now     func() time.Time
}

// NewStore loads the check-in document and runs the one-time repair pass:
// entries under malformed day keys or dated after the reference instant are
// dropped, legacy mood values are normalized, and missing or out-of-range
// ratings are brought back into 1-10.
func NewStore(adapter *storage.Adapter, now func() time.Time) *Store {
	s := &Store{
		entries: make(map[string]models.CheckIn),
		adapter: adapter,
		now:     now,
	}

	raw := make(map[string]models.CheckIn)
	adapter.Load(constants.KeyCheckIns, &raw)

	ref := now()
	dropped := 0
	for day, e := range raw {
		if !dateutil.ValidDay(day) || dateutil.IsFutureDay(day, ref) {
			dropped++
			continue
		}
		s.entries[day] = repair(day, e)
	}
	if dropped > 0 {
		logger.Warn("Dropped invalid check-in entries at load", "count", dropped)
	}

	return s
}

// repair normalizes a persisted entry in place of rejecting it.
func repair(day string, e models.CheckIn) models.CheckIn {
	if m, ok := models.ParseMood(string(e.Mood)); ok {
		e.Mood = m
	} else {
		e.Mood = models.MoodNeutral
	}
	e.Energy = clampRating(e.Energy)
	e.Focus = clampRating(e.Focus)
	if e.Timestamp.IsZero() || dateutil.DayKey(e.Timestamp) != day {
		if d, err := dateutil.ParseDay(day); err == nil {
			e.Timestamp = d
		}
	}
	return e
}

func clampRating(v int) int {
	switch {
	case v == 0:
		return constants.DefaultRating
	case v < constants.RatingMin:
		return constants.RatingMin
	case v > constants.RatingMax:
		return constants.RatingMax
	default:
		return v
	}
}

// Upsert records the full entry for a day, replacing any existing one. The
// store is left untouched on any validation failure.
func (s *Store) Upsert(day string, e models.CheckIn) error {
	d, err := dateutil.ParseDay(day)
	if err != nil {
		return errors.Validationf("day", "%q is not a valid day (expected YYYY-MM-DD)", day)
	}
	if dateutil.IsFutureDay(day, s.now()) {
		return errors.Validationf("day", "%s is in the future", day)
	}

	mood, ok := models.ParseMood(string(e.Mood))
	if !ok {
		return errors.Validationf("mood", "%q is not a recognized mood", e.Mood)
	}
	e.Mood = mood

	if e.Energy < constants.RatingMin || e.Energy > constants.RatingMax {
		return errors.Validationf("energy", "%d is outside %d-%d", e.Energy, constants.RatingMin, constants.RatingMax)
	}
	if e.Focus < constants.RatingMin || e.Focus > constants.RatingMax {
		return errors.Validationf("focus", "%d is outside %d-%d", e.Focus, constants.RatingMin, constants.RatingMax)
	}

	// The day key must stay derivable from the timestamp. A zero timestamp
	// is filled from the day; a disagreeing one is the caller's bug.
	if e.Timestamp.IsZero() {
		e.Timestamp = d
	} else if dateutil.DayKey(e.Timestamp) != day {
		return errors.Validationf("timestamp", "%s does not fall on %s",
			e.Timestamp.Format(time.RFC3339), day)
	}

	s.entries[day] = e
	return s.adapter.Save(constants.KeyCheckIns, s.entries)
}

// Get returns the entry for a day, if recorded.
func (s *Store) Get(day string) (models.CheckIn, bool) {
	e, ok := s.entries[day]
	return e, ok
}

// Len returns the number of recorded entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Days returns all recorded day keys in ascending order.
func (s *Store) Days() []string {
	days := make([]string, 0, len(s.entries))
	for day := range s.entries {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// EntriesInMonth returns the entries whose day falls in the month containing
// t, most recent day first.
func (s *Store) EntriesInMonth(t time.Time) []DayEntry {
	var out []DayEntry
	for day, e := range s.entries {
		if dateutil.InMonth(day, t) {
			out = append(out, DayEntry{Day: day, Entry: e})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	return out
}
