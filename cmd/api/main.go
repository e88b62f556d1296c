package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/backoffice/internal/cashlog"
	cashlogStore "github.com/MrJamesThe3rd/backoffice/internal/cashlog/store"
	"github.com/MrJamesThe3rd/backoffice/internal/config"
	"github.com/MrJamesThe3rd/backoffice/internal/database"
	"github.com/MrJamesThe3rd/backoffice/internal/export"
	backofficeHttp "github.com/MrJamesThe3rd/backoffice/internal/http"
	"github.com/MrJamesThe3rd/backoffice/internal/http/auth"
	cashlogHandler "github.com/MrJamesThe3rd/backoffice/internal/http/cashlog"
	exportHandler "github.com/MrJamesThe3rd/backoffice/internal/http/export"
	reportHandler "github.com/MrJamesThe3rd/backoffice/internal/http/report"
	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
	reconcileStore "github.com/MrJamesThe3rd/backoffice/internal/reconcile/store"
	"github.com/MrJamesThe3rd/backoffice/internal/sequence"
	sequenceStore "github.com/MrJamesThe3rd/backoffice/internal/sequence/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(cfg.App.LogLevel)

	if cfg.Server.JWTSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("failed to load store timezone", "error", err)
		os.Exit(1)
	}

	node, err := snowflake.NewNode(cfg.Store.SnowflakeNode)
	if err != nil {
		slog.Error("failed to create snowflake node", "node", cfg.Store.SnowflakeNode, "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var exportService *export.Service

	var (
		sequenceService = sequence.NewService(sequenceStore.New(db))
		cashlogService  = cashlog.NewService(cashlogStore.New(db), loc)
		reportService   = reconcile.NewService(
			reconcileStore.New(db),
			sequenceService,
			node,
			reconcile.WithLocation(loc),
			reconcile.WithTimeout(cfg.Store.ReportTimeout),
			reconcile.WithPublisher(reconcile.PublisherFunc(func(ctx context.Context, r *reconcile.Report) error {
				return exportService.Publish(ctx, r)
			})),
		)
	)

	exportService = export.NewService(reportService, cfg.Export.URL, cfg.Export.Token)

	var (
		reportH  = reportHandler.NewHandler(reportService)
		cashlogH = cashlogHandler.NewHandler(cashlogService, loc)
		exportH  = exportHandler.NewHandler(exportService, loc)
	)

	router := backofficeHttp.New(cfg.Server.AllowedOrigins, auth.NewTokens(cfg.Server.JWTSecret), reportH, cashlogH, exportH)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.App.Port),
		Handler:     router,
		ReadTimeout: cfg.Server.Timeout,
		// Z-Read computation may run up to REPORT_TIMEOUT.
		WriteTimeout: cfg.Store.ReportTimeout + cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr, "timezone", loc.String())

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
