package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/backoffice/internal/export"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
)

type readState int

const (
	readStateForm readState = iota
	readStateRunning
	readStateResult
)

// Generous ceiling over the service's own report timeout.
const readTimeout = 5 * time.Minute

type readFields struct {
	store    string
	employee string
	name     string
	date     string
}

// ReadModel runs an X-Read or a Z-Read for one store and day.
type ReadModel struct {
	CommonModel
	reports  *reconcile.Service
	exporter *export.Service
	kind     ledger.ReadType

	state   readState
	form    *huh.Form
	fields  *readFields
	spinner spinner.Model

	report *reconcile.Report
	err    error
}

func NewReadModel(kind ledger.ReadType, reports *reconcile.Service, exporter *export.Service) ReadModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ReadModel{
		reports:  reports,
		exporter: exporter,
		kind:     kind,
		state:    readStateForm,
		fields:   &readFields{date: time.Now().In(reports.Location()).Format(time.DateOnly)},
		spinner:  s,
	}
	m.form = m.buildForm()

	return m
}

func (m ReadModel) Title() string {
	if m.kind == ledger.ZRead {
		return "Z-Read (end of day)"
	}

	return "X-Read (shift)"
}

func (m ReadModel) ShortHelp() string {
	switch m.state {
	case readStateRunning:
		return "Computing..."
	case readStateResult:
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: confirm"
}

func (m ReadModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ReadModel) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("store").
			Title("Store Code").
			Value(&m.fields.store).
			Validate(required("store code")),
		huh.NewInput().
			Key("date").
			Title("Business Day").
			Placeholder("YYYY-MM-DD").
			Value(&m.fields.date).
			Validate(validDate),
	}

	if m.kind == ledger.ZRead {
		fields = append(fields,
			huh.NewInput().
				Key("employee").
				Title("Employee ID").
				Value(&m.fields.employee).
				Validate(required("employee id")),
			huh.NewInput().
				Key("name").
				Title("Employee Name").
				Value(&m.fields.name),
			huh.NewConfirm().
				Key("confirm").
				Title("Close the day? A Z-Read can only be taken once.").
				Affirmative("Close day").
				Negative("Cancel").
				Validate(func(ok bool) error {
					if !ok {
						return errors.New("press Esc to cancel")
					}

					return nil
				}),
		)
	} else {
		fields = append(fields,
			huh.NewInput().
				Key("employee").
				Title("Employee ID").
				Description("Leave blank for the whole store").
				Value(&m.fields.employee),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithWidth(50).WithShowHelp(false)
}

func (m ReadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case readStateForm:
		return m.updateForm(msg)
	case readStateRunning:
		return m.updateRunning(msg)
	case readStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ReadModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = readStateRunning
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runCmd(*m.fields))
}

func (m ReadModel) updateRunning(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(readResultMsg); ok {
		m.state = readStateResult
		m.report = result.report
		m.err = result.err

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

type readResultMsg struct {
	report *reconcile.Report
	err    error
}

func (m ReadModel) runCmd(f readFields) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()

		loc := m.reports.Location()

		day := time.Now().In(loc)
		if f.date != "" {
			var err error
			if day, err = ledger.ParseDay(f.date, loc); err != nil {
				return readResultMsg{err: err}
			}
		}

		win := ledger.DayWindow(strings.TrimSpace(f.store), day, loc)

		if m.kind == ledger.ZRead {
			r, err := m.reports.ComputeAndCommitZRead(ctx, win, reconcile.Actor{EmployeeID: f.employee, Name: f.name})
			return readResultMsg{report: r, err: err}
		}

		win.EmployeeID = strings.TrimSpace(f.employee)
		r, err := m.reports.ComputeXRead(ctx, win)

		return readResultMsg{report: r, err: err}
	}
}

func (m ReadModel) View() string {
	switch m.state {
	case readStateForm:
		return padded.Render(lipgloss.JoinVertical(lipgloss.Left, successStyle.Render(m.Title()), "", m.form.View()))
	case readStateRunning:
		return padded.Render(fmt.Sprintf("%s Reconciling the day's ledger...", m.spinner.View()))
	case readStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ReadModel) viewResult() string {
	if m.err != nil {
		msg := m.err.Error()

		var infraErr *reconcile.InfraError
		if errors.As(m.err, &infraErr) && infraErr.Retryable() {
			msg = "The ledger did not answer in time. Try again in a moment.\n\n" + msg
		}

		return padded.Render(errorStyle.Render("Error: " + msg))
	}

	header := successStyle.Render(m.Title() + " complete")
	if m.report.Partial {
		header = warnStyle.Render(m.Title() + " (partial: some figures were unavailable)")
	}

	lines := []string{header, "", m.exporter.GenerateSummary(m.report)}

	if n := len(m.report.Gaps); n > 0 {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("%d ledger gap(s) skipped; see server log.", n)))
	}

	return padded.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
