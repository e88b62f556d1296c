package cashlog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/cashlog"
	"github.com/MrJamesThe3rd/backoffice/internal/http/auth"
	"github.com/MrJamesThe3rd/backoffice/internal/http/respond"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

type Service interface {
	Record(ctx context.Context, params cashlog.RecordParams) (*ledger.CashLog, error)
	ListDay(ctx context.Context, branchCode string, day time.Time) ([]*ledger.CashLog, error)
}

type Handler struct {
	svc Service
	loc *time.Location
}

func NewHandler(svc Service, loc *time.Location) *Handler {
	return &Handler{svc: svc, loc: loc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
}

type createCashLogRequest struct {
	Type          ledger.CashLogType   `json:"type"`
	Shift         ledger.Shift         `json:"shift"`
	Denominations ledger.Denominations `json:"denominations"`
	BranchCode    string               `json:"branch_code"`
	CashDate      *time.Time           `json:"cash_date,omitempty"`
}

type cashLogResponse struct {
	ID            uuid.UUID            `json:"id"`
	Type          ledger.CashLogType   `json:"type"`
	Shift         ledger.Shift         `json:"shift"`
	Denominations ledger.Denominations `json:"denominations"`
	Total         decimal.Decimal      `json:"total"`
	EmployeeID    string               `json:"employee_id"`
	BranchCode    string               `json:"branch_code"`
	CashDate      time.Time            `json:"cash_date"`
}

func toResponse(l *ledger.CashLog) cashLogResponse {
	return cashLogResponse{
		ID:            l.ID,
		Type:          l.Type,
		Shift:         l.Shift,
		Denominations: l.Denominations,
		Total:         l.Total,
		EmployeeID:    l.EmployeeID,
		BranchCode:    l.BranchCode,
		CashDate:      l.CashDate,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCashLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	actor, _ := auth.FromContext(r.Context())

	params := cashlog.RecordParams{
		Type:          req.Type,
		Shift:         req.Shift,
		Denominations: req.Denominations,
		EmployeeID:    actor.EmployeeID,
		BranchCode:    req.BranchCode,
	}

	if params.BranchCode == "" {
		params.BranchCode = actor.StoreCode
	}

	if req.CashDate != nil {
		params.CashDate = *req.CashDate
	}

	l, err := h.svc.Record(r.Context(), params)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(l))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	store := q.Get("store")
	if store == "" {
		respond.BadRequest(w, "store is required")
		return
	}

	day := time.Now().In(h.loc)

	if s := q.Get("date"); s != "" {
		var err error
		if day, err = ledger.ParseDay(s, h.loc); err != nil {
			respond.BadRequest(w, err.Error())
			return
		}
	}

	logs, err := h.svc.ListDay(r.Context(), store, day)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]cashLogResponse, len(logs))
	for i, l := range logs {
		resp[i] = toResponse(l)
	}

	respond.JSON(w, http.StatusOK, resp)
}
