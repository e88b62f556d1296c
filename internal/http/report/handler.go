package report

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/backoffice/internal/http/auth"
	"github.com/MrJamesThe3rd/backoffice/internal/http/respond"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
)

type Service interface {
	ComputeXRead(ctx context.Context, w ledger.Window) (*reconcile.Report, error)
	ComputeAndCommitZRead(ctx context.Context, w ledger.Window, actor reconcile.Actor) (*reconcile.Report, error)
	GetZRead(ctx context.Context, storeCode string, day time.Time) (*reconcile.Preview, error)
	ListZReads(ctx context.Context, storeCode string, from, to time.Time) ([]*reconcile.Preview, error)
	Location() *time.Location
}

type Handler struct {
	svc Service
	now func() time.Time
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/x-read", h.xRead)
	r.Post("/z-read", h.zRead)
	r.Get("/z-read/{store}", h.listZReads)
	r.Get("/z-read/{store}/{date}", h.getZRead)
}

type previewResponse struct {
	ID        string            `json:"id"`
	Type      ledger.ReadType   `json:"type"`
	StoreCode string            `json:"storeCode"`
	Day       string            `json:"day"`
	CreatedAt time.Time         `json:"createdAt"`
	Report    *reconcile.Report `json:"report,omitempty"`
}

func toPreviewResponse(p *reconcile.Preview, withReport bool) previewResponse {
	resp := previewResponse{
		ID:        strconv.FormatInt(p.ID, 10),
		Type:      p.Type,
		StoreCode: p.StoreCode,
		Day:       p.Day,
		CreatedAt: p.CreatedAt,
	}

	if withReport {
		resp.Report = p.Report
	}

	return resp
}

// day parses an optional YYYY-MM-DD in the store timezone, defaulting to today.
func (h *Handler) day(s string) (time.Time, error) {
	if s == "" {
		return h.now().In(h.svc.Location()), nil
	}

	return ledger.ParseDay(s, h.svc.Location())
}

func (h *Handler) xRead(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	store := q.Get("store")
	if store == "" {
		respond.BadRequest(w, "store is required")
		return
	}

	day, err := h.day(q.Get("date"))
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	win := ledger.DayWindow(store, day, h.svc.Location())
	win.EmployeeID = q.Get("employee")

	report, err := h.svc.ComputeXRead(r.Context(), win)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, report)
}

type zReadRequest struct {
	StoreCode string `json:"store_code"`
	Date      string `json:"date"`
}

func (h *Handler) zRead(w http.ResponseWriter, r *http.Request) {
	var req zReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	actor, _ := auth.FromContext(r.Context())

	if req.StoreCode == "" {
		req.StoreCode = actor.StoreCode
	}

	if req.StoreCode == "" {
		respond.BadRequest(w, "store_code is required")
		return
	}

	day, err := h.day(req.Date)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	report, err := h.svc.ComputeAndCommitZRead(r.Context(),
		ledger.DayWindow(req.StoreCode, day, h.svc.Location()),
		reconcile.Actor{EmployeeID: actor.EmployeeID, Name: actor.Name},
	)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, report)
}

func (h *Handler) getZRead(w http.ResponseWriter, r *http.Request) {
	day, err := ledger.ParseDay(chi.URLParam(r, "date"), h.svc.Location())
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	p, err := h.svc.GetZRead(r.Context(), chi.URLParam(r, "store"), day)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPreviewResponse(p, true))
}

func (h *Handler) listZReads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	to, err := h.day(q.Get("to"))
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	from := to.AddDate(0, 0, -30)

	if s := q.Get("from"); s != "" {
		if from, err = ledger.ParseDay(s, h.svc.Location()); err != nil {
			respond.BadRequest(w, err.Error())
			return
		}
	}

	if to.Before(from) {
		respond.BadRequest(w, "to must not be before from")
		return
	}

	previews, err := h.svc.ListZReads(r.Context(), chi.URLParam(r, "store"), from, to)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]previewResponse, len(previews))
	for i, p := range previews {
		resp[i] = toPreviewResponse(p, false)
	}

	respond.JSON(w, http.StatusOK, resp)
}
