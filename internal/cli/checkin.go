package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mstern/zenith/internal/errors"
	"github.com/mstern/zenith/internal/models"
	"github.com/mstern/zenith/internal/mood"
)

type CheckinCmd struct {
	New  CheckinNewCmd  `cmd:"" help:"Record a daily check-in." default:"withargs"`
	Show CheckinShowCmd `cmd:"" help:"Show the check-in for a day."`
}

type CheckinNewCmd struct {
	Day        string `short:"d" help:"Day in YYYY-MM-DD format (default: today)." default:""`
	Mood       string `short:"m" help:"Mood (very_happy|happy|neutral|sad|very_sad)."`
	Energy     int    `short:"e" help:"Energy level 1-10."`
	Focus      int    `short:"f" help:"Focus level 1-10."`
	Gratitude  string `short:"g" help:"One thing you were grateful for."`
	Intentions string `short:"i" help:"Your main intention."`
}

func (c *CheckinNewCmd) Run(ctx *Context) error {
	day, err := ctx.resolveDay(c.Day)
	if err != nil {
		return err
	}

	entry := models.CheckIn{
		Energy:     c.Energy,
		Focus:      c.Focus,
		Gratitude:  c.Gratitude,
		Intentions: c.Intentions,
	}
	if c.Mood != "" {
		m, ok := models.ParseMood(c.Mood)
		if !ok {
			return errors.Validationf("mood", "%q is not a recognized mood", c.Mood)
		}
		entry.Mood = m
	}

	// Anything not supplied by flags is asked interactively, one question
	// at a time like the original check-in flow.
	if entry.Mood == "" || entry.Energy == 0 || entry.Focus == 0 {
		if err := runQuestionnaire(day, &entry); err != nil {
			return err
		}
	}

	if err := ctx.CheckIns.Upsert(day, entry); err != nil {
		return err
	}

	fmt.Printf("Check-in saved for %s. Thank you for your entry! ✨\n", day)
	return nil
}

func runQuestionnaire(day string, entry *models.CheckIn) error {
	var groups []*huh.Group

	if entry.Mood == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title(fmt.Sprintf("How were you feeling on %s?", day)).
				Description("Pick the option that best matches your mood.").
				Options(
					huh.NewOption("😊 Very Happy", models.MoodVeryHappy),
					huh.NewOption("🙂 Happy", models.MoodHappy),
					huh.NewOption("😐 Neutral", models.MoodNeutral),
					huh.NewOption("😔 Sad", models.MoodSad),
					huh.NewOption("😫 Very Sad", models.MoodVerySad),
				).
				Value(&entry.Mood),
		))
	}

	if entry.Energy == 0 {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Title("How was your energy level?").
				Options(
					huh.NewOption("⚡️⚡️⚡️ Fully charged", 10),
					huh.NewOption("⚡️⚡️ Good", 7),
					huh.NewOption("⚡️ Running low", 4),
					huh.NewOption("🔋 Empty", 2),
				).
				Value(&entry.Energy),
		))
	}

	if entry.Focus == 0 {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Title("What was your focus level?").
				Options(
					huh.NewOption("Very focused 🎯", 10),
					huh.NewOption("Somewhat focused 👀", 7),
					huh.NewOption("Easily distracted 🦋", 4),
					huh.NewOption("Can't focus 😵", 2),
				).
				Value(&entry.Focus),
		))
	}

	if entry.Gratitude == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("What were you grateful for?").
				Placeholder("Write one thing you were grateful for").
				Value(&entry.Gratitude),
		))
	}

	if entry.Intentions == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("What was your main intention?").
				Placeholder("Your primary goal or intention").
				Value(&entry.Intentions),
		))
	}

	return huh.NewForm(groups...).Run()
}

type CheckinShowCmd struct {
	Day string `short:"d" help:"Day in YYYY-MM-DD format (default: today)." default:""`
}

var titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func (c *CheckinShowCmd) Run(ctx *Context) error {
	day, err := ctx.resolveDay(c.Day)
	if err != nil {
		return err
	}

	entry, ok := ctx.CheckIns.Get(day)
	if !ok {
		fmt.Printf("No entry for %s.\n", day)
		return nil
	}

	score := mood.Score(entry)
	fmt.Println(titleStyle.Render(fmt.Sprintf("Entry for %s", day)))
	fmt.Printf("Mood:   %s %s\n", entry.Mood.Emoji(), entry.Mood.Label())
	fmt.Printf("Energy: ⚡️ %d/10\n", entry.Energy)
	fmt.Printf("Focus:  🎯 %d/10\n", entry.Focus)
	if entry.Gratitude != "" {
		fmt.Printf("Gratitude:  %s\n", entry.Gratitude)
	}
	if entry.Intentions != "" {
		fmt.Printf("Intentions: %s\n", entry.Intentions)
	}
	fmt.Printf("Overall: %.2f (%s)\n", score, mood.Categorize(score))
	return nil
}
