package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mstern/zenith/internal/constants"
	"github.com/mstern/zenith/internal/habit"
	"github.com/mstern/zenith/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with their streaks." default:"1"`
	Done   HabitDoneCmd   `cmd:"" help:"Toggle a habit's completion for a day."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its completion history."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
	When string `short:"w" help:"Time of day (anytime|morning|afternoon|evening)." default:"anytime" enum:"anytime,morning,afternoon,evening"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	h, err := ctx.Habits.Add(c.Name, models.ParseTimeOfDay(c.When))
	if err != nil {
		return err
	}
	fmt.Printf("Added habit: %s (%s)\n", h.Name, h.TimeOfDay)
	return nil
}

type HabitListCmd struct{}

var (
	badgeStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
	quoteStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("13"))
)

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Habits.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits added yet. Add your first habit with 'zenith habit add'.")
		return nil
	}

	fmt.Println(quoteStyle.Render(constants.RandomQuote()))
	fmt.Println()

	today := ctx.Today()
	for _, h := range habits {
		streak, err := ctx.Habits.Streak(h.ID, today)
		if err != nil {
			return err
		}

		status := "[ ]"
		if ctx.Habits.Completed(h.ID, today) {
			status = "[x]"
		}

		line := fmt.Sprintf("%s %s %s", status, h.Name, dimStyle.Render(string(h.TimeOfDay)))
		if streak > 0 {
			badge := habit.StreakBadge(streak)
			line += fmt.Sprintf("  %s %s", badgeStyle.Render(fmt.Sprintf("%d day streak", streak)), badge.Emoji())
		}
		fmt.Println(line)
	}

	return nil
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Day  string `short:"d" help:"Day in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	h, err := ctx.Habits.GetByName(c.Name)
	if err != nil {
		return err
	}

	day, err := ctx.resolveDay(c.Day)
	if err != nil {
		return err
	}

	if err := ctx.Habits.Toggle(h.ID, day); err != nil {
		return err
	}

	if ctx.Habits.Completed(h.ID, day) {
		fmt.Printf("Marked %q done for %s\n", h.Name, day)
	} else {
		fmt.Printf("Unmarked %q for %s\n", h.Name, day)
	}
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	h, err := ctx.Habits.GetByName(c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Habits.Delete(h.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (completion history removed)\n", h.Name)
	return nil
}
