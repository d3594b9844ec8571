package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mstern/zenith/internal/dateutil"
	"github.com/mstern/zenith/internal/errors"
	"github.com/mstern/zenith/internal/mood"
)

type CalendarCmd struct {
	Month       string `short:"m" help:"Month to show in YYYY-MM format (default: current month)."`
	Interactive bool   `short:"i" help:"Browse months interactively."`
}

var (
	calHeaderStyle  = lipgloss.NewStyle().Bold(true)
	weekdayStyle    = lipgloss.NewStyle().Faint(true)
	positiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	negativeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")) // pink
	todayStyle      = lipgloss.NewStyle().Underline(true)
	outOfMonthStyle = lipgloss.NewStyle().Faint(true)
)

func (c *CalendarCmd) Run(ctx *Context) error {
	month := dateutil.StartOfMonth(ctx.Now())
	if c.Month != "" {
		parsed, err := time.ParseInLocation("2006-01", c.Month, time.Local)
		if err != nil {
			return errors.Validationf("month", "%q is not a valid month (expected YYYY-MM)", c.Month)
		}
		month = parsed
	}

	if c.Interactive {
		m := calendarModel{ctx: ctx, month: month}
		_, err := tea.NewProgram(m).Run()
		return err
	}

	fmt.Println(renderMonth(ctx, month))
	return nil
}

// renderMonth draws the mood calendar for one month: a day cell carries the
// mood emoji when an entry exists, tinted by the sign of its score, with
// adjacent-month days dimmed and future days left unmarked.
func renderMonth(ctx *Context, month time.Time) string {
	now := ctx.Now()

	var b strings.Builder
	b.WriteString(calHeaderStyle.Render(month.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(weekdayStyle.Render(" Sun  Mon  Tue  Wed  Thu  Fri  Sat"))
	b.WriteString("\n")

	grid := dateutil.MonthGrid(month)
	for i, day := range grid {
		key := dateutil.DayKey(day)
		cell := fmt.Sprintf("%3d", day.Day())

		marker := " "
		style := lipgloss.NewStyle()
		if entry, ok := ctx.CheckIns.Get(key); ok && !dateutil.IsFutureDay(key, now) {
			marker = entry.Mood.Emoji()
			if mood.Categorize(mood.Score(entry)) == mood.CategoryNegative {
				style = negativeStyle
			} else {
				style = positiveStyle
			}
		}
		if day.Month() != month.Month() {
			style = outOfMonthStyle
		}
		if dateutil.SameDay(day, now) {
			style = style.Inherit(todayStyle)
		}

		b.WriteString(style.Render(cell))
		b.WriteString(marker)
		b.WriteString(" ")
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}

	entries := ctx.CheckIns.EntriesInMonth(month)
	if len(entries) > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d check-in(s) this month, most recent first:\n", len(entries)))
		for _, de := range entries {
			score := mood.Score(de.Entry)
			b.WriteString(fmt.Sprintf("  %s  %s %-10s energy %2d  focus %2d  score %+.2f\n",
				de.Day, de.Entry.Mood.Emoji(), de.Entry.Mood.Label(), de.Entry.Energy, de.Entry.Focus, score))
		}
	}

	return b.String()
}

// calendarModel is the interactive month browser: left/right pages through
// months, t jumps back to the current one.
type calendarModel struct {
	ctx   *Context
	month time.Time
}

func (m calendarModel) Init() tea.Cmd { return nil }

func (m calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.month = m.month.AddDate(0, -1, 0)
		case "right", "l":
			m.month = m.month.AddDate(0, 1, 0)
		case "t":
			m.month = dateutil.StartOfMonth(m.ctx.Now())
		}
	}
	return m, nil
}

func (m calendarModel) View() string {
	return renderMonth(m.ctx, m.month) + "\n" + weekdayStyle.Render("←/→ change month · t today · q quit") + "\n"
}
