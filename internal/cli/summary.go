package cli

import (
	"fmt"
	"sort"

	"github.com/mstern/zenith/internal/constants"
	"github.com/mstern/zenith/internal/habit"
	"github.com/mstern/zenith/internal/models"
)

type SummaryCmd struct{}

// Run prints the monthly habit summary: every habit with its current streak
// and badge, sorted longest streak first, then grouped by time of day.
func (c *SummaryCmd) Run(ctx *Context) error {
	habits := ctx.Habits.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits added yet. Add some habits to see your progress!")
		return nil
	}

	fmt.Println(quoteStyle.Render(constants.RandomQuote()))
	fmt.Println()

	today := ctx.Today()
	streaks := make(map[string]int, len(habits))
	for _, h := range habits {
		n, err := ctx.Habits.Streak(h.ID, today)
		if err != nil {
			return err
		}
		streaks[h.ID] = n
	}

	fmt.Println(titleStyle.Render("Current Streaks"))
	ranked := make([]models.Habit, len(habits))
	copy(ranked, habits)
	sort.SliceStable(ranked, func(i, j int) bool {
		return streaks[ranked[i].ID] > streaks[ranked[j].ID]
	})
	for _, h := range ranked {
		n := streaks[h.ID]
		badge := habit.StreakBadge(n)
		fmt.Printf("  %s %-24s %3d day(s)  %s\n", badge.Emoji(), h.Name, n, dimStyle.Render(string(h.TimeOfDay)))
	}

	groups := ctx.Habits.ByTimeOfDay()
	for _, period := range models.TimeOfDayOrder {
		periodHabits := groups[period]
		if len(periodHabits) == 0 {
			continue
		}
		fmt.Println()
		fmt.Println(titleStyle.Render(fmt.Sprintf("%s habits", period)))
		for _, h := range periodHabits {
			fmt.Printf("  %-24s started %s\n", h.Name, h.CreatedAt.Format("Jan 2, 2006"))
		}
	}

	return nil
}
