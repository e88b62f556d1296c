package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/backoffice/internal/http/auth"
	"github.com/MrJamesThe3rd/backoffice/internal/http/cashlog"
	"github.com/MrJamesThe3rd/backoffice/internal/http/export"
	"github.com/MrJamesThe3rd/backoffice/internal/http/report"
)

func New(
	allowedOrigins []string,
	tokens *auth.Tokens,
	reportsV1 *report.Handler,
	cashLogsV1 *cashlog.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(tokens.Middleware)

		r.Route("/reports", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			reportsV1.Routes(r)
		})

		r.Route("/cash-logs", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			cashLogsV1.Routes(r)
		})

		r.Route("/export", exportV1.Routes)
	})

	return router
}
