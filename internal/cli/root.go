package cli

import (
	"time"

	"github.com/mstern/zenith/internal/checkin"
	"github.com/mstern/zenith/internal/dateutil"
	"github.com/mstern/zenith/internal/errors"
	"github.com/mstern/zenith/internal/habit"
	"github.com/mstern/zenith/internal/storage"
)

// Context carries the loaded stores into every command. The stores are
// constructed once at startup and are the single source of truth for the
// process; commands re-read them after each mutation rather than caching.
type Context struct {
	Habits   *habit.Store
	CheckIns *checkin.Store
	Adapter  *storage.Adapter
	Now      func() time.Time
}

// Today returns the current day key from the injected clock.
func (c *Context) Today() string {
	return dateutil.DayKey(c.Now())
}

// resolveDay defaults an empty --day flag to today and validates the rest.
func (c *Context) resolveDay(day string) (string, error) {
	if day == "" {
		return c.Today(), nil
	}
	if !dateutil.ValidDay(day) {
		return "", errors.Validationf("day", "%q is not a valid day (expected YYYY-MM-DD)", day)
	}
	return day, nil
}
