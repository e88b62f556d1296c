package view

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Period is a preset range of store days to browse Z-Reads over.
type Period int

const (
	PeriodLast7Days Period = iota
	PeriodThisMonth
	PeriodLastMonth
	PeriodCustom
)

var periodLabels = [...]string{
	PeriodLast7Days: "Last 7 days",
	PeriodThisMonth: "This month",
	PeriodLastMonth: "Last month",
	PeriodCustom:    "Custom days",
}

func (p Period) String() string {
	if p < 0 || int(p) >= len(periodLabels) {
		return "Unknown"
	}

	return periodLabels[p]
}

// periodDays returns the first and last store day of p, both inclusive, counted
// back from today.
func periodDays(p Period, today time.Time) (time.Time, time.Time) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	firstOfMonth := day.AddDate(0, 0, 1-day.Day())

	switch p {
	case PeriodThisMonth:
		return firstOfMonth, day
	case PeriodLastMonth:
		return firstOfMonth.AddDate(0, -1, 0), firstOfMonth.AddDate(0, 0, -1)
	default:
		return day.AddDate(0, 0, -6), day
	}
}

// PeriodSelectedMsg carries the chosen day range. From and To are midnights in the
// store location.
type PeriodSelectedMsg struct {
	From time.Time
	To   time.Time
}

var errDayOrder = errors.New("last day is before first day")

// PeriodPicker offers the preset periods and falls back to a two-field form for
// custom days.
type PeriodPicker struct {
	loc    *time.Location
	now    func() time.Time
	cursor Period

	custom   *huh.Form
	from, to *string
	err      error
}

func NewPeriodPicker(loc *time.Location) PeriodPicker {
	return PeriodPicker{loc: loc, now: time.Now}
}

// Editing reports whether the custom day form is open.
func (m PeriodPicker) Editing() bool {
	return m.custom != nil
}

// Reset closes the custom form and moves the cursor back to the first preset.
func (m *PeriodPicker) Reset() {
	m.cursor = PeriodLast7Days
	m.custom = nil
	m.err = nil
}

func (m PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	if m.custom != nil {
		return m.updateCustom(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > PeriodLast7Days {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < PeriodCustom {
			m.cursor++
		}
	case "enter":
		if m.cursor == PeriodCustom {
			return m, m.openCustom()
		}

		from, to := periodDays(m.cursor, m.now().In(m.loc))

		return m, selectPeriod(from, to)
	}

	return m, nil
}

// openCustom starts the custom form with both days set to today.
func (m *PeriodPicker) openCustom() tea.Cmd {
	today := m.now().In(m.loc).Format(time.DateOnly)
	from, to := today, today
	m.from, m.to = &from, &to

	m.custom = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("First day").Placeholder("YYYY-MM-DD").CharLimit(10).Value(m.from).Validate(validDay(m.loc)),
		huh.NewInput().Title("Last day").Placeholder("YYYY-MM-DD").CharLimit(10).Value(m.to).Validate(validDay(m.loc)),
	)).WithWidth(40).WithShowHelp(false)

	return m.custom.Init()
}

func validDay(loc *time.Location) func(string) error {
	return func(s string) error {
		if _, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc); err != nil {
			return errors.New("use YYYY-MM-DD")
		}

		return nil
	}
}

func (m PeriodPicker) updateCustom(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.custom = nil
		m.err = nil

		return m, nil
	}

	form, cmd := m.custom.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.custom = f
	}

	if m.custom.State != huh.StateCompleted {
		return m, cmd
	}

	from, to, err := m.customDays()
	if err != nil {
		m.err = err

		return m, m.openCustom()
	}

	m.custom = nil
	m.err = nil

	return m, selectPeriod(from, to)
}

// customDays reads the completed custom form. Both fields were validated by the form.
func (m PeriodPicker) customDays() (time.Time, time.Time, error) {
	from, _ := time.ParseInLocation(time.DateOnly, strings.TrimSpace(*m.from), m.loc)
	to, _ := time.ParseInLocation(time.DateOnly, strings.TrimSpace(*m.to), m.loc)

	if to.Before(from) {
		return time.Time{}, time.Time{}, errDayOrder
	}

	return from, to, nil
}

func selectPeriod(from, to time.Time) tea.Cmd {
	return func() tea.Msg {
		return PeriodSelectedMsg{From: from, To: to}
	}
}

func (m PeriodPicker) View() string {
	var b strings.Builder

	if m.custom != nil {
		b.WriteString("Custom days\n\n")
		b.WriteString(m.custom.View())
		b.WriteString("\n(Esc: presets)")
	} else {
		b.WriteString("Show Z-Reads for\n\n")

		for p := PeriodLast7Days; p <= PeriodCustom; p++ {
			cursor := "  "
			if p == m.cursor {
				cursor = "> "
			}

			b.WriteString(cursor + p.String() + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()))
	}

	return b.String()
}
