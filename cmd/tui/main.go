package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bwmarrin/snowflake"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/backoffice/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/backoffice/internal/cashlog"
	cashlogStore "github.com/MrJamesThe3rd/backoffice/internal/cashlog/store"
	"github.com/MrJamesThe3rd/backoffice/internal/config"
	"github.com/MrJamesThe3rd/backoffice/internal/database"
	"github.com/MrJamesThe3rd/backoffice/internal/export"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
	reconcileStore "github.com/MrJamesThe3rd/backoffice/internal/reconcile/store"
	"github.com/MrJamesThe3rd/backoffice/internal/sequence"
	sequenceStore "github.com/MrJamesThe3rd/backoffice/internal/sequence/store"
)

type model struct {
	reportService  *reconcile.Service
	cashlogService *cashlog.Service
	exportService  *export.Service

	currentView View

	xReadView   view.ReadModel
	zReadView   view.ReadModel
	cashLogView view.CashLogModel
	historyView view.HistoryModel
}

type View int

const (
	ViewMenu    View = 0
	ViewXRead   View = 1
	ViewZRead   View = 2
	ViewCashLog View = 3
	ViewHistory View = 4
)

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fatal("failed to load config", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		fatal("failed to load store timezone", err)
	}

	node, err := snowflake.NewNode(cfg.Store.SnowflakeNode)
	if err != nil {
		fatal("failed to create snowflake node", err)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		fatal("failed to connect to database", err)
	}

	var expSvc *export.Service

	repSvc := reconcile.NewService(
		reconcileStore.New(db),
		sequence.NewService(sequenceStore.New(db)),
		node,
		reconcile.WithLocation(loc),
		reconcile.WithTimeout(cfg.Store.ReportTimeout),
		reconcile.WithPublisher(reconcile.PublisherFunc(func(ctx context.Context, r *reconcile.Report) error {
			return expSvc.Publish(ctx, r)
		})),
	)
	expSvc = export.NewService(repSvc, cfg.Export.URL, cfg.Export.Token)
	cashSvc := cashlog.NewService(cashlogStore.New(db), loc)

	return model{
		reportService:  repSvc,
		cashlogService: cashSvc,
		exportService:  expSvc,
		currentView:    ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewXRead
				m.xReadView = view.NewReadModel(ledger.XRead, m.reportService, m.exportService)

				return m, m.xReadView.Init()
			case "2":
				m.currentView = ViewZRead
				m.zReadView = view.NewReadModel(ledger.ZRead, m.reportService, m.exportService)

				return m, m.zReadView.Init()
			case "3":
				m.currentView = ViewCashLog
				m.cashLogView = view.NewCashLogModel(m.cashlogService)

				return m, m.cashLogView.Init()
			case "4":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.reportService, m.exportService)

				return m, m.historyView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewXRead:
		var newModel tea.Model
		newModel, cmd = m.xReadView.Update(msg)
		m.xReadView = newModel.(view.ReadModel)
	case ViewZRead:
		var newModel tea.Model
		newModel, cmd = m.zReadView.Update(msg)
		m.zReadView = newModel.(view.ReadModel)
	case ViewCashLog:
		var newModel tea.Model
		newModel, cmd = m.cashLogView.Update(msg)
		m.cashLogView = newModel.(view.CashLogModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Back Office\n\n" +
				"1. X-Read (shift report)\n" +
				"2. Z-Read (close the day)\n" +
				"3. Log Cash\n" +
				"4. Z-Read History\n\n" +
				"q. Quit",
		)
	case ViewXRead:
		return m.xReadView.View()
	case ViewZRead:
		return m.zReadView.View()
	case ViewCashLog:
		return m.cashLogView.View()
	case ViewHistory:
		return m.historyView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
