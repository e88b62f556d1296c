package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/backoffice/internal/cashlog"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateCashLog relies on the (branch_code, employee_id, type, shift, cash_day) unique key, so
// the duplicate check and the insert are one statement.
func (s *Store) CreateCashLog(ctx context.Context, l *ledger.CashLog, day string) error {
	cashDay, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return fmt.Errorf("parsing cash day %q: %w", day, err)
	}

	denominations, err := json.Marshal(l.Denominations)
	if err != nil {
		return fmt.Errorf("encoding denominations: %w", err)
	}

	query := `
		INSERT INTO cash_logs (id, type, shift, denominations, total, employee_id, branch_code, cash_date, cash_day, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		l.ID,
		l.Type,
		l.Shift,
		denominations,
		l.Total,
		l.EmployeeID,
		l.BranchCode,
		l.CashDate,
		cashDay,
	).Scan(&l.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return cashlog.ErrDuplicate
		}

		return fmt.Errorf("creating cash log: %w", err)
	}

	return nil
}

func (s *Store) ListCashLogs(ctx context.Context, branchCode string, from, to time.Time) ([]*ledger.CashLog, error) {
	query := `
		SELECT id, type, shift, denominations, total, employee_id, branch_code, cash_date, created_at
		FROM cash_logs
		WHERE branch_code = $1 AND cash_date >= $2 AND cash_date < $3
		ORDER BY cash_date ASC`

	rows, err := s.db.QueryContext(ctx, query, branchCode, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing cash logs: %w", err)
	}
	defer rows.Close()

	var logs []*ledger.CashLog

	for rows.Next() {
		var (
			l             ledger.CashLog
			typ, shift    string
			denominations []byte
		)

		if err := rows.Scan(
			&l.ID, &typ, &shift, &denominations, &l.Total, &l.EmployeeID, &l.BranchCode, &l.CashDate, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning cash log: %w", err)
		}

		if err := json.Unmarshal(denominations, &l.Denominations); err != nil {
			return nil, fmt.Errorf("decoding denominations of cash log %s: %w", l.ID, err)
		}

		l.Type = ledger.CashLogType(typ)
		l.Shift = ledger.Shift(shift)
		logs = append(logs, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cash logs: %w", err)
	}

	return logs, nil
}
