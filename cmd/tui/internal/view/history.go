package view

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/backoffice/internal/export"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
)

type historyState int

const (
	historyStateStore historyState = iota
	historyStatePeriod
	historyStateBrowse
	historyStateDetail
)

const exportDir = "./exports"

// HistoryModel browses committed Z-Reads of a store.
type HistoryModel struct {
	CommonModel
	reports  *reconcile.Service
	exporter *export.Service

	state     historyState
	storeForm *huh.Form
	store     *string
	picker    PeriodPicker
	table     table.Model
	previews  []*reconcile.Preview

	status string
	err    error
}

func NewHistoryModel(reports *reconcile.Service, exporter *export.Service) HistoryModel {
	columns := []table.Column{
		{Title: "Day", Width: 12},
		{Title: "Snapshot", Width: 20},
		{Title: "Net Sales", Width: 16},
		{Title: "Accumulated", Width: 18},
		{Title: "Over/Short", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	store := new(string)

	return HistoryModel{
		reports:  reports,
		exporter: exporter,
		state:    historyStateStore,
		store:    store,
		storeForm: huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Store Code").
				Value(store).
				Validate(required("store code")),
		)).WithWidth(40).WithShowHelp(false),
		picker: NewPeriodPicker(reports.Location()),
		table:  t,
	}
}

func (m HistoryModel) Title() string { return "Z-Read History" }

func (m HistoryModel) ShortHelp() string {
	switch m.state {
	case historyStateBrowse:
		return "Esc: back | Enter: view | x: export | r: refresh"
	case historyStateDetail:
		return "Esc: back to list | x: export"
	}

	return "Esc: back | Enter: confirm"
}

func (m HistoryModel) Init() tea.Cmd {
	return m.storeForm.Init()
}

type historyLoadedMsg struct {
	previews []*reconcile.Preview
	err      error
}

type historyExportedMsg struct {
	items []export.Item
	err   error
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PeriodSelectedMsg:
		m.state = historyStateBrowse
		return m, m.loadCmd(msg)

	case historyLoadedMsg:
		m.err = msg.err
		m.previews = msg.previews
		m.refreshTable()

		return m, nil

	case historyExportedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Export failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Exported %d file(s) to %s", len(msg.items), exportDir)
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case historyStateStore:
		return m.updateStore(msg)
	case historyStatePeriod:
		return m.updatePeriod(msg)
	case historyStateBrowse:
		return m.updateBrowse(msg)
	case historyStateDetail:
		return m.updateDetail(msg)
	}

	return m, nil
}

func (m HistoryModel) updateStore(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.storeForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.storeForm = f
	}

	if m.storeForm.State == huh.StateCompleted {
		m.state = historyStatePeriod
		return m, nil
	}

	return m, cmd
}

func (m HistoryModel) updatePeriod(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && !m.picker.Editing() {
		return m, Back
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	return m, cmd
}

func (m HistoryModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = historyStatePeriod
			m.picker.Reset()
			m.status = ""

			return m, nil
		case "enter":
			if m.selected() != nil {
				m.state = historyStateDetail
			}

			return m, nil
		case "x":
			return m, m.exportCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m HistoryModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = historyStateBrowse
		case "x":
			return m, m.exportCmd()
		}
	}

	return m, nil
}

func (m HistoryModel) selected() *reconcile.Preview {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.previews) {
		return nil
	}

	return m.previews[idx]
}

func (m *HistoryModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.previews))

	for _, p := range m.previews {
		acc := "-"
		if p.Report.AccumulatedSales != nil {
			acc = FormatAmount(p.Report.AccumulatedSales.New)
		}

		rows = append(rows, table.Row{
			p.Day,
			strconv.FormatInt(p.ID, 10),
			FormatAmount(p.Report.Sales.Net),
			acc,
			FormatAmount(p.Report.OverShort),
		})
	}

	m.table.SetRows(rows)
}

func (m HistoryModel) loadCmd(period PeriodSelectedMsg) tea.Cmd {
	store := *m.store

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		previews, err := m.reports.ListZReads(ctx, store, period.From, period.To)

		return historyLoadedMsg{previews: previews, err: err}
	}
}

func (m HistoryModel) exportCmd() tea.Cmd {
	p := m.selected()
	if p == nil {
		return nil
	}

	return func() tea.Msg {
		day, err := ledger.ParseDay(p.Day, m.reports.Location())
		if err != nil {
			return historyExportedMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		items, err := m.exporter.Export(ctx, p.StoreCode, day, exportDir)

		return historyExportedMsg{items: items, err: err}
	}
}

func (m HistoryModel) View() string {
	var body string

	switch m.state {
	case historyStateStore:
		body = m.storeForm.View()
	case historyStatePeriod:
		body = m.picker.View()
	case historyStateBrowse:
		switch {
		case m.err != nil:
			body = errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
		case len(m.previews) == 0:
			body = fmt.Sprintf("No Z-Reads for %s in this range.", *m.store)
		default:
			body = m.table.View()
		}
	case historyStateDetail:
		if p := m.selected(); p != nil {
			body = m.exporter.GenerateSummary(p.Report)
		}
	}

	if m.status != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", warnStyle.Render(m.status))
	}

	return padded.Render(body)
}
