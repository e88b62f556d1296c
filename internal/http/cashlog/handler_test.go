package cashlog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/backoffice/internal/cashlog"
	"github.com/MrJamesThe3rd/backoffice/internal/http/auth"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

var manila = time.FixedZone("PHT", 8*60*60)

func newRouter(repo cashlog.Repository) chi.Router {
	r := chi.NewRouter()
	NewHandler(cashlog.NewService(repo, manila), manila).Routes(r)

	return r
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *cashlog.MockRepository)
		wantStatus int
	}{
		{
			name: "opening float",
			body: `{"type":"initial","shift":"OPENING","denominations":{"bill1000":1},"cash_date":"2024-03-05T08:00:00+08:00"}`,
			setupMock: func(m *cashlog.MockRepository) {
				m.EXPECT().
					CreateCashLog(gomock.Any(), gomock.Any(), "2024-03-05").
					DoAndReturn(func(_ context.Context, l *ledger.CashLog, _ string) error {
						assert.Equal(t, "E-7", l.EmployeeID)
						assert.Equal(t, "MNL-01", l.BranchCode)
						assert.Equal(t, "1000", l.Total.String())

						return nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "already logged",
			body: `{"type":"cash takeout","shift":"CLOSING","denominations":{"coin5":3}}`,
			setupMock: func(m *cashlog.MockRepository) {
				m.EXPECT().CreateCashLog(gomock.Any(), gomock.Any(), gomock.Any()).Return(cashlog.ErrDuplicate)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "storage down",
			body: `{"type":"initial","shift":"OPENING","denominations":{"bill1000":1}}`,
			setupMock: func(m *cashlog.MockRepository) {
				m.EXPECT().CreateCashLog(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown type",
			body:       `{"type":"float","shift":"OPENING"}`,
			setupMock:  func(m *cashlog.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative count",
			body:       `{"type":"initial","shift":"OPENING","denominations":{"bill20":-1}}`,
			setupMock:  func(m *cashlog.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := cashlog.NewMockRepository(ctrl)
			tt.setupMock(repo)

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req = req.WithContext(auth.WithActor(req.Context(), auth.Actor{EmployeeID: "E-7", StoreCode: "MNL-01"}))

			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := cashlog.NewMockRepository(ctrl)

	start := time.Date(2024, 3, 5, 0, 0, 0, 0, manila)
	id := uuid.New()

	repo.EXPECT().
		ListCashLogs(gomock.Any(), "MNL-01", start.UTC(), start.AddDate(0, 0, 1).UTC()).
		Return([]*ledger.CashLog{{ID: id, Type: ledger.CashInitial, BranchCode: "MNL-01"}}, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?store=MNL-01&date=2024-03-05", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []cashLogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
}
