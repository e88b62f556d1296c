package cashlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

var (
	// ErrDuplicate is returned when the cashier already logged this cash type for the shift and day.
	ErrDuplicate   = errors.New("cashier already logged this cash count today")
	ErrInvalid     = errors.New("invalid cash log")
	// ErrUnavailable wraps storage failures the caller may retry.
	ErrUnavailable = errors.New("cash log storage unavailable")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=cashlog
type Repository interface {
	// CreateCashLog inserts l unless the same cashier already logged the type for the
	// shift and day at the branch, in which case it returns ErrDuplicate.
	CreateCashLog(ctx context.Context, l *ledger.CashLog, day string) error
	ListCashLogs(ctx context.Context, branchCode string, from, to time.Time) ([]*ledger.CashLog, error)
}

type Service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewService(repo Repository, loc *time.Location) *Service {
	return &Service{repo: repo, loc: loc, now: time.Now}
}

type RecordParams struct {
	Type          ledger.CashLogType
	Shift         ledger.Shift
	Denominations ledger.Denominations
	EmployeeID    string
	BranchCode    string
	// CashDate defaults to now.
	CashDate time.Time
}

// Record stores a counted float. The total is always derived from the denominations.
func (s *Service) Record(ctx context.Context, params RecordParams) (*ledger.CashLog, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	cashDate := params.CashDate
	if cashDate.IsZero() {
		cashDate = s.now()
	}

	l := &ledger.CashLog{
		ID:            uuid.New(),
		Type:          params.Type,
		Shift:         params.Shift,
		Denominations: params.Denominations,
		Total:         params.Denominations.Total(),
		EmployeeID:    params.EmployeeID,
		BranchCode:    params.BranchCode,
		CashDate:      cashDate,
	}

	day := cashDate.In(s.loc).Format(time.DateOnly)

	if err := s.repo.CreateCashLog(ctx, l, day); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, err
		}

		return nil, fmt.Errorf("recording cash log: %w: %w", ErrUnavailable, err)
	}

	slog.Info("cash log recorded",
		"branch", l.BranchCode,
		"employee", l.EmployeeID,
		"type", l.Type,
		"shift", l.Shift,
		"total", l.Total.StringFixed(2),
	)

	return l, nil
}

// ListDay returns the cash logs of a branch for the calendar day of day.
func (s *Service) ListDay(ctx context.Context, branchCode string, day time.Time) ([]*ledger.CashLog, error) {
	w := ledger.DayWindow(branchCode, day, s.loc)

	logs, err := s.repo.ListCashLogs(ctx, branchCode, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("listing cash logs: %w: %w", ErrUnavailable, err)
	}

	return logs, nil
}

func validate(p RecordParams) error {
	switch p.Type {
	case ledger.CashInitial, ledger.CashTakeout:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, p.Type)
	}

	switch p.Shift {
	case ledger.ShiftOpening, ledger.ShiftClosing:
	default:
		return fmt.Errorf("%w: unknown shift %q", ErrInvalid, p.Shift)
	}

	if p.BranchCode == "" || p.EmployeeID == "" {
		return fmt.Errorf("%w: branch and employee are required", ErrInvalid)
	}

	if p.Denominations.Negative() {
		return fmt.Errorf("%w: denomination counts cannot be negative", ErrInvalid)
	}

	return nil
}
