package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/backoffice/internal/cashlog"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

type cashLogFields struct {
	typ      ledger.CashLogType
	shift    ledger.Shift
	branch   string
	employee string
	counts   [13]string
}

// denominations maps the form counts, largest face value first.
func (f *cashLogFields) denominations() (ledger.Denominations, error) {
	var n [13]int

	for i, s := range f.counts {
		c, err := parseCount(s)
		if err != nil {
			return ledger.Denominations{}, err
		}

		n[i] = c
	}

	return ledger.Denominations{
		Bill1000: n[0], Bill500: n[1], Bill200: n[2], Bill100: n[3], Bill50: n[4], Bill20: n[5],
		Coin20: n[6], Coin10: n[7], Coin5: n[8], Coin1: n[9],
		Cent25: n[10], Cent10: n[11], Cent5: n[12],
	}, nil
}

// CashLogModel records an opening float or an end-of-shift cash takeout.
type CashLogModel struct {
	CommonModel
	svc *cashlog.Service

	form   *huh.Form
	fields *cashLogFields
	done   bool
	saved  *ledger.CashLog
	err    error
}

func NewCashLogModel(svc *cashlog.Service) CashLogModel {
	m := CashLogModel{
		svc:    svc,
		fields: &cashLogFields{typ: ledger.CashInitial, shift: ledger.ShiftOpening},
	}
	m.form = m.buildForm()

	return m
}

func (m CashLogModel) Title() string { return "Log Cash" }

func (m CashLogModel) ShortHelp() string {
	if m.done {
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: next"
}

func (m CashLogModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m CashLogModel) buildForm() *huh.Form {
	labels := ledger.Denominations{}.List()

	var bills, coins []huh.Field

	for i, d := range labels {
		in := huh.NewInput().
			Key("count_" + d.Label).
			Title(fmt.Sprintf("₱%s", d.Label)).
			Placeholder("0").
			Value(&m.fields.counts[i]).
			Validate(validCount)

		if i < 6 {
			bills = append(bills, in)
		} else {
			coins = append(coins, in)
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ledger.CashLogType]().
				Title("Type").
				Options(
					huh.NewOption("Initial cash (opening float)", ledger.CashInitial),
					huh.NewOption("Cash takeout (declaration)", ledger.CashTakeout),
				).
				Value(&m.fields.typ),
			huh.NewSelect[ledger.Shift]().
				Title("Shift").
				Options(
					huh.NewOption("Opening", ledger.ShiftOpening),
					huh.NewOption("Closing", ledger.ShiftClosing),
				).
				Value(&m.fields.shift),
			huh.NewInput().
				Title("Store Code").
				Value(&m.fields.branch).
				Validate(required("store code")),
			huh.NewInput().
				Title("Employee ID").
				Value(&m.fields.employee).
				Validate(required("employee id")),
		),
		huh.NewGroup(bills...).Title("Bills"),
		huh.NewGroup(coins...).Title("Coins"),
	).WithWidth(50).WithShowHelp(false)
}

type cashLogSavedMsg struct {
	log *ledger.CashLog
	err error
}

func (m CashLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	if saved, ok := msg.(cashLogSavedMsg); ok {
		m.saved = saved.log
		m.err = saved.err

		return m, nil
	}

	if m.done {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.done = true

	return m, m.saveCmd(*m.fields)
}

func (m CashLogModel) saveCmd(f cashLogFields) tea.Cmd {
	return func() tea.Msg {
		d, err := f.denominations()
		if err != nil {
			return cashLogSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		l, err := m.svc.Record(ctx, cashlog.RecordParams{
			Type:          f.typ,
			Shift:         f.shift,
			Denominations: d,
			EmployeeID:    f.employee,
			BranchCode:    f.branch,
		})

		return cashLogSavedMsg{log: l, err: err}
	}
}

func (m CashLogModel) View() string {
	switch {
	case m.err != nil:
		return padded.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.saved != nil:
		return padded.Render(lipgloss.JoinVertical(lipgloss.Left,
			successStyle.Render("Cash logged"),
			"",
			fmt.Sprintf("%s / %s for %s", m.saved.Type, m.saved.Shift, m.saved.BranchCode),
			fmt.Sprintf("Total: %s", FormatAmount(m.saved.Total)),
		))
	case m.done:
		return padded.Render("Saving...")
	}

	return padded.Render(m.form.View())
}
