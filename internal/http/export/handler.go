package export

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/backoffice/internal/export"
	"github.com/MrJamesThe3rd/backoffice/internal/http/respond"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

type Service interface {
	Republish(ctx context.Context, storeCode string, day time.Time) error
	Export(ctx context.Context, storeCode string, day time.Time, outputDir string) ([]export.Item, error)
}

type Handler struct {
	svc Service
	loc *time.Location
}

func NewHandler(svc Service, loc *time.Location) *Handler {
	return &Handler{svc: svc, loc: loc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/{store}/{date}", h.publish)
	r.Get("/{store}/{date}", h.download)
}

func (h *Handler) params(w http.ResponseWriter, r *http.Request) (string, time.Time, bool) {
	day, err := ledger.ParseDay(chi.URLParam(r, "date"), h.loc)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return "", time.Time{}, false
	}

	return chi.URLParam(r, "store"), day, true
}

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	store, day, ok := h.params(w, r)
	if !ok {
		return
	}

	if err := h.svc.Republish(r.Context(), store, day); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	store, day, ok := h.params(w, r)
	if !ok {
		return
	}

	tmpDir, err := os.MkdirTemp("", "zread-export-*")
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(tmpDir)

	if _, err := h.svc.Export(r.Context(), store, day, tmpDir); err != nil {
		respond.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"zread_%s.zip\"", day.Format("20060102")))

	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()

	err = filepath.Walk(tmpDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		relPath, _ := filepath.Rel(tmpDir, path)

		zf, err := zipWriter.Create(relPath)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(zf, f)

		return err
	})
	if err != nil {
		slog.Error("failed to create zip", "error", err)
	}
}
