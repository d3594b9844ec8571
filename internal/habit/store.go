// Package habit owns the habit collection and the per-day completion ledger,
// including the streak algorithm.
package habit

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mstern/zenith/internal/constants"
	"github.com/mstern/zenith/internal/dateutil"
	"github.com/mstern/zenith/internal/errors"
	"github.com/mstern/zenith/internal/logger"
	"github.com/mstern/zenith/internal/models"
	"github.com/mstern/zenith/internal/storage"
)

// Badge is the tiered label for a streak length.
type Badge string

const (
	BadgeSeed  Badge = "seed"
	BadgeGlow  Badge = "glow"
	BadgeShine Badge = "shine"
	BadgeSpark Badge = "spark"
	BadgeBlaze Badge = "blaze"
)

// Emoji returns the display glyph for a badge.
func (b Badge) Emoji() string {
	switch b {
	case BadgeBlaze:
		return "🔥"
	case BadgeSpark:
		return "⚡"
	case BadgeShine:
		return "✨"
	case BadgeGlow:
		return "💫"
	default:
		return "🌱"
	}
}

// Store is the single in-memory source of truth for habits and completions.
// Mutations go through its methods and are persisted after each commit.
// Single caller at a time; the CLI serializes access.
type Store struct {
	habits  []models.Habit
	ledger  Ledger
	adapter *storage.Adapter
	now     func() time.Time
}

// NewStore loads both documents from the adapter, repairing what it can:
// malformed day keys are dropped and duplicate ids collapse via the set
// decode.
func NewStore(adapter *storage.Adapter, now func() time.Time) *Store {
	s := &Store{
		ledger:  make(Ledger),
		adapter: adapter,
		now:     now,
	}

	adapter.Load(constants.KeyHabits, &s.habits, constants.LegacyKeyHabits)
	adapter.Load(constants.KeyCompletions, &s.ledger, constants.LegacyKeyCompletions)
	if s.ledger == nil {
		s.ledger = make(Ledger)
	}
	s.ledger.sanitize()

	logger.Debug("Habit store loaded", "habits", len(s.habits), "days", len(s.ledger))
	return s
}

// Habits returns the habit collection in insertion order.
func (s *Store) Habits() []models.Habit {
	out := make([]models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// Get returns the habit with the given id.
func (s *Store) Get(id string) (models.Habit, error) {
	for _, h := range s.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, errors.NotFound("habit", id)
}

// GetByName returns the first habit whose name matches (case-insensitive).
func (s *Store) GetByName(name string) (models.Habit, error) {
	for _, h := range s.habits {
		if strings.EqualFold(h.Name, name) {
			return h, nil
		}
	}
	return models.Habit{}, errors.NotFound("habit", name)
}

// Add creates a habit with a fresh id and appends it to the collection.
func (s *Store) Add(name string, tod models.TimeOfDay) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, errors.Validationf("name", "must not be empty")
	}
	if tod == "" {
		tod = models.TimeAnytime
	}

	h := models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		TimeOfDay: tod,
		CreatedAt: s.now(),
	}
	s.habits = append(s.habits, h)

	if err := s.adapter.Save(constants.KeyHabits, s.habits); err != nil {
		return h, err
	}
	return h, nil
}

// Delete removes the habit and sweeps its id from every day's completion
// set. Both updates land as one visible state transition; an unknown id is a
// no-op. Persistence failures surface after the in-memory commit.
func (s *Store) Delete(id string) error {
	idx := -1
	for i, h := range s.habits {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	s.habits = append(s.habits[:idx], s.habits[idx+1:]...)
	s.ledger.Sweep(id)

	if err := s.adapter.Save(constants.KeyHabits, s.habits); err != nil {
		return err
	}
	return s.adapter.Save(constants.KeyCompletions, s.ledger)
}

// Toggle flips completion of the habit on the given day.
func (s *Store) Toggle(id, day string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if !dateutil.ValidDay(day) {
		return errors.Validationf("day", "%q is not a valid day (expected YYYY-MM-DD)", day)
	}

	done := s.ledger.Toggle(day, id)
	logger.Debug("Toggled completion", "habit", id, "day", day, "done", done)

	return s.adapter.Save(constants.KeyCompletions, s.ledger)
}

// Completed reports whether the habit is done on the given day.
func (s *Store) Completed(id, day string) bool {
	return s.ledger.Has(day, id)
}

// CompletedOn returns the habits completed on a day, in insertion order.
func (s *Store) CompletedOn(day string) []models.Habit {
	var out []models.Habit
	for _, h := range s.habits {
		if s.ledger.Has(day, h.ID) {
			out = append(out, h)
		}
	}
	return out
}

// Streak counts consecutive completed days walking backward from refDay.
// An incomplete refDay does not by itself break a streak that ran through
// the previous day: the walk then starts at refDay-1, so a streak can show
// as still open before today's habit is done.
func (s *Store) Streak(id, refDay string) (int, error) {
	if _, err := s.Get(id); err != nil {
		return 0, err
	}
	day, err := dateutil.ParseDay(refDay)
	if err != nil {
		return 0, errors.Validationf("day", "%q is not a valid day (expected YYYY-MM-DD)", refDay)
	}

	if !s.ledger.Has(refDay, id) {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for s.ledger.Has(dateutil.DayKey(day), id) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

// ByTimeOfDay groups habits by their period, preserving insertion order
// within each group.
func (s *Store) ByTimeOfDay() map[models.TimeOfDay][]models.Habit {
	out := make(map[models.TimeOfDay][]models.Habit)
	for _, h := range s.habits {
		out[h.TimeOfDay] = append(out[h.TimeOfDay], h)
	}
	return out
}

// StreakBadge maps a streak length to its tier. Thresholds are inclusive
// lower bounds, highest first.
func StreakBadge(streak int) Badge {
	switch {
	case streak >= 30:
		return BadgeBlaze
	case streak >= 14:
		return BadgeSpark
	case streak >= 7:
		return BadgeShine
	case streak >= 3:
		return BadgeGlow
	default:
		return BadgeSeed
	}
}
