package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/backoffice/internal/http/auth"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
)

var manila = time.FixedZone("PHT", 8*60*60)

type fakeService struct {
	xRead  func(w ledger.Window) (*reconcile.Report, error)
	zRead  func(w ledger.Window, actor reconcile.Actor) (*reconcile.Report, error)
	get    func(store string, day time.Time) (*reconcile.Preview, error)
	list   func(store string, from, to time.Time) ([]*reconcile.Preview, error)
	called bool
}

func (f *fakeService) ComputeXRead(_ context.Context, w ledger.Window) (*reconcile.Report, error) {
	f.called = true
	return f.xRead(w)
}

func (f *fakeService) ComputeAndCommitZRead(_ context.Context, w ledger.Window, actor reconcile.Actor) (*reconcile.Report, error) {
	f.called = true
	return f.zRead(w, actor)
}

func (f *fakeService) GetZRead(_ context.Context, store string, day time.Time) (*reconcile.Preview, error) {
	f.called = true
	return f.get(store, day)
}

func (f *fakeService) ListZReads(_ context.Context, store string, from, to time.Time) ([]*reconcile.Preview, error) {
	f.called = true
	return f.list(store, from, to)
}

func (f *fakeService) Location() *time.Location { return manila }

func serve(t *testing.T, svc *fakeService, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc)
	h.now = func() time.Time { return time.Date(2024, 3, 5, 18, 0, 0, 0, manila) }

	r := chi.NewRouter()
	h.Routes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestXRead(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantStart  time.Time
		wantEmp    string
	}{
		{
			name:       "explicit date and employee",
			target:     "/x-read?store=MNL-01&employee=E-7&date=2024-03-01",
			wantStatus: http.StatusOK,
			wantStart:  time.Date(2024, 3, 1, 0, 0, 0, 0, manila),
			wantEmp:    "E-7",
		},
		{
			name:       "defaults to today",
			target:     "/x-read?store=MNL-01",
			wantStatus: http.StatusOK,
			wantStart:  time.Date(2024, 3, 5, 0, 0, 0, 0, manila),
		},
		{
			name:       "missing store",
			target:     "/x-read",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad date",
			target:     "/x-read?store=MNL-01&date=05/03/2024",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{
				xRead: func(w ledger.Window) (*reconcile.Report, error) {
					assert.Equal(t, "MNL-01", w.StoreCode)
					assert.True(t, w.Start.Equal(tt.wantStart), "start %s", w.Start)
					assert.Equal(t, tt.wantEmp, w.EmployeeID)

					return &reconcile.Report{Type: ledger.XRead, StoreCode: w.StoreCode, EmployeeID: w.EmployeeID}, nil
				},
			}

			rec := serve(t, svc, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, svc.called)
		})
	}
}

func TestZRead(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "committed", body: `{"store_code":"MNL-01","date":"2024-03-05"}`, wantStatus: http.StatusCreated},
		{name: "store from token", body: `{"date":"2024-03-05"}`, wantStatus: http.StatusCreated},
		{name: "duplicate", body: `{"store_code":"MNL-01"}`, err: reconcile.ErrDuplicateZRead, wantStatus: http.StatusConflict},
		{name: "no eod data", body: `{"store_code":"MNL-01"}`, err: reconcile.ErrNoInitialCash, wantStatus: http.StatusUnprocessableEntity},
		{
			name:       "ledger down",
			body:       `{"store_code":"MNL-01"}`,
			err:        &reconcile.InfraError{Op: "listing orders", Err: context.DeadlineExceeded},
			wantStatus: http.StatusServiceUnavailable,
		},
		{name: "malformed", body: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{
				zRead: func(w ledger.Window, actor reconcile.Actor) (*reconcile.Report, error) {
					assert.Equal(t, "MNL-01", w.StoreCode)
					assert.Empty(t, w.EmployeeID)
					assert.Equal(t, reconcile.Actor{EmployeeID: "E-7", Name: "Ana"}, actor)

					if tt.err != nil {
						return nil, tt.err
					}

					return &reconcile.Report{Type: ledger.ZRead, StoreCode: w.StoreCode}, nil
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/z-read", strings.NewReader(tt.body))
			req = req.WithContext(auth.WithActor(req.Context(), auth.Actor{EmployeeID: "E-7", Name: "Ana", StoreCode: "MNL-01"}))

			rec := serve(t, svc, req)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				var got map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, "z-read", got["type"])
			}
		})
	}
}

func TestGetZRead(t *testing.T) {
	svc := &fakeService{
		get: func(store string, day time.Time) (*reconcile.Preview, error) {
			if day.Day() != 5 {
				return nil, reconcile.ErrNoZRead
			}

			return &reconcile.Preview{
				ID:        1234567890123,
				Type:      ledger.ZRead,
				StoreCode: store,
				Day:       "2024-03-05",
				Report:    &reconcile.Report{Sales: reconcile.Sales{Net: decimal.NewFromInt(112)}},
			}, nil
		},
	}

	rec := serve(t, svc, httptest.NewRequest(http.MethodGet, "/z-read/MNL-01/2024-03-05", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		ID     string `json:"id"`
		Report struct {
			Sales struct {
				Net string `json:"net"`
			} `json:"SALES"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "1234567890123", got.ID)
	assert.Equal(t, "112", got.Report.Sales.Net)

	rec = serve(t, svc, httptest.NewRequest(http.MethodGet, "/z-read/MNL-01/2024-03-04", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListZReads(t *testing.T) {
	svc := &fakeService{
		list: func(store string, from, to time.Time) ([]*reconcile.Preview, error) {
			assert.Equal(t, "MNL-01", store)
			assert.Equal(t, "2024-03-01", from.Format(time.DateOnly))
			assert.Equal(t, "2024-03-05", to.Format(time.DateOnly))

			return []*reconcile.Preview{
				{ID: 1, Type: ledger.ZRead, StoreCode: store, Day: "2024-03-01", Report: &reconcile.Report{}},
			}, nil
		},
	}

	rec := serve(t, svc, httptest.NewRequest(http.MethodGet, "/z-read/MNL-01?from=2024-03-01", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2024-03-01", got[0]["day"])
	assert.NotContains(t, got[0], "report")

	svc.called = false
	rec = serve(t, svc, httptest.NewRequest(http.MethodGet, "/z-read/MNL-01?from=2024-03-09&to=2024-03-01", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, svc.called)
}
