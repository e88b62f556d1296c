package cashlog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/backoffice/internal/cashlog"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

var pht = time.FixedZone("PHT", 8*60*60)

func TestService_Record(t *testing.T) {
	// 23:30 UTC on the 14th is the 15th in Manila.
	cashDate := time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC)

	valid := cashlog.RecordParams{
		Type:          ledger.CashInitial,
		Shift:         ledger.ShiftOpening,
		Denominations: ledger.Denominations{Bill1000: 1, Bill100: 2, Coin5: 1},
		EmployeeID:    "E1",
		BranchCode:    "1000",
		CashDate:      cashDate,
	}

	type testCase struct {
		name      string
		params    cashlog.RecordParams
		setupMock func(m *cashlog.MockRepository)
		wantErr   error
		wantTotal string
	}

	tests := []testCase{
		{
			name:   "Success",
			params: valid,
			setupMock: func(m *cashlog.MockRepository) {
				m.EXPECT().
					CreateCashLog(gomock.Any(), gomock.Any(), "2024-03-15").
					DoAndReturn(func(_ context.Context, l *ledger.CashLog, _ string) error {
						l.CreatedAt = time.Now()
						return nil
					})
			},
			wantTotal: "1205",
		},
		{
			name:   "Duplicate",
			params: valid,
			setupMock: func(m *cashlog.MockRepository) {
				m.EXPECT().CreateCashLog(gomock.Any(), gomock.Any(), gomock.Any()).Return(cashlog.ErrDuplicate)
			},
			wantErr: cashlog.ErrDuplicate,
		},
		{
			name: "UnknownType",
			params: func() cashlog.RecordParams {
				p := valid
				p.Type = "float"
				return p
			}(),
			wantErr: cashlog.ErrInvalid,
		},
		{
			name: "NegativeCount",
			params: func() cashlog.RecordParams {
				p := valid
				p.Denominations.Coin1 = -3
				return p
			}(),
			wantErr: cashlog.ErrInvalid,
		},
		{
			name: "MissingEmployee",
			params: func() cashlog.RecordParams {
				p := valid
				p.EmployeeID = ""
				return p
			}(),
			wantErr: cashlog.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := cashlog.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := cashlog.NewService(repo, pht)

			got, err := svc.Record(context.Background(), tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(got.Total), got.Total.String())
			assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", got.ID.String())
		})
	}
}

func TestService_Record_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cashlog.NewMockRepository(ctrl)
	repo.EXPECT().CreateCashLog(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	_, err := cashlog.NewService(repo, pht).Record(context.Background(), cashlog.RecordParams{
		Type:       ledger.CashTakeout,
		Shift:      ledger.ShiftClosing,
		EmployeeID: "E1",
		BranchCode: "1000",
	})
	require.ErrorIs(t, err, cashlog.ErrUnavailable)
	assert.NotErrorIs(t, err, cashlog.ErrDuplicate)
}

func TestService_Record_CashiersShareShift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var cashiers []string

	repo := cashlog.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCashLog(gomock.Any(), gomock.Any(), "2024-03-15").
		DoAndReturn(func(_ context.Context, l *ledger.CashLog, _ string) error {
			cashiers = append(cashiers, l.EmployeeID)
			return nil
		}).
		Times(2)

	svc := cashlog.NewService(repo, pht)

	for _, employee := range []string{"E1", "E2"} {
		_, err := svc.Record(context.Background(), cashlog.RecordParams{
			Type:          ledger.CashInitial,
			Shift:         ledger.ShiftOpening,
			Denominations: ledger.Denominations{Bill1000: 1},
			EmployeeID:    employee,
			BranchCode:    "1000",
			CashDate:      time.Date(2024, 3, 15, 8, 0, 0, 0, pht),
		})
		require.NoError(t, err, employee)
	}

	assert.Equal(t, []string{"E1", "E2"}, cashiers)
}

func TestService_ListDay_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cashlog.NewMockRepository(ctrl)
	repo.EXPECT().ListCashLogs(gomock.Any(), "1000", gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	got, err := cashlog.NewService(repo, pht).ListDay(context.Background(), "1000", time.Date(2024, 3, 15, 12, 0, 0, 0, pht))
	require.ErrorIs(t, err, cashlog.ErrUnavailable)
	assert.Nil(t, got)
}

func TestService_ListDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cashlog.NewMockRepository(ctrl)
	repo.EXPECT().
		ListCashLogs(gomock.Any(), "1000",
			time.Date(2024, 3, 14, 16, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC)).
		Return([]*ledger.CashLog{{BranchCode: "1000"}}, nil)

	got, err := cashlog.NewService(repo, pht).ListDay(context.Background(), "1000", time.Date(2024, 3, 15, 12, 0, 0, 0, pht))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
