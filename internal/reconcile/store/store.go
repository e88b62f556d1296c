package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// windowFilter returns the store, start, end and as-of arguments of w plus the
// employee condition for cashier windows.
func windowFilter(w ledger.Window, employeeColumn string) (string, []any) {
	args := []any{w.StoreCode, w.Start, w.End, w.AsOf}
	if w.EmployeeID == "" {
		return "", args
	}

	return fmt.Sprintf(" AND %s = $5", employeeColumn), append(args, w.EmployeeID)
}

// parseDay turns a YYYY-MM-DD key into a DATE parameter.
func parseDay(day string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing day %q: %w", day, err)
	}

	return t, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Expected column order: id, txn_number, item_id, name, category, quantity, unit_price, status, vat_type, order_date, created_at
func scanOrder(s scanner) (ledger.Order, error) {
	var o ledger.Order

	var status, vatType string

	if err := s.Scan(
		&o.ID, &o.TxnNumber, &o.ItemID, &o.Name, &o.Category, &o.Quantity, &o.UnitPrice,
		&status, &vatType, &o.OrderDate, &o.CreatedAt,
	); err != nil {
		return o, err
	}

	o.Status = ledger.OrderStatus(status)
	o.VATType = ledger.VATType(vatType)

	return o, nil
}

func (s *Store) ListOrders(ctx context.Context, w ledger.Window) ([]ledger.Order, error) {
	cond, args := windowFilter(w, "t.employee_id")

	query := `
		SELECT o.id, o.txn_number, o.item_id, o.name, o.category, o.quantity, o.unit_price,
			o.status, o.vat_type, o.order_date, o.created_at
		FROM orders o
		JOIN transactions t ON t.txn_number = o.txn_number
		WHERE t.store_code = $1 AND o.order_date >= $2 AND o.order_date < $3 AND o.created_at <= $4` + cond + `
		ORDER BY o.order_date ASC, o.id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []ledger.Order

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, nil
}

const selectPaymentColumns = `
	p.id, p.txn_number, p.store_code, p.method, p.custom_payment_key, p.amount, p.excess_cash,
	p.excess_gift_card_amount, p.status, p.payment_date, p.created_at, t.txn_number IS NULL AS orphan
`

// Expected column order: selectPaymentColumns
func scanPayment(s scanner) (ledger.PaymentLog, error) {
	var p ledger.PaymentLog

	var status string

	if err := s.Scan(
		&p.ID, &p.TxnNumber, &p.StoreCode, &p.Method, &p.CustomPaymentKey, &p.Amount, &p.ExcessCash,
		&p.ExcessGiftCardAmount, &status, &p.PaymentDate, &p.CreatedAt, &p.Orphan,
	); err != nil {
		return p, err
	}

	p.Status = ledger.PaymentStatus(status)

	return p, nil
}

func (s *Store) queryPayments(ctx context.Context, query string, args ...any) ([]ledger.PaymentLog, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []ledger.PaymentLog

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payments: %w", err)
	}

	return payments, nil
}

func (s *Store) ListPayments(ctx context.Context, w ledger.Window) ([]ledger.PaymentLog, error) {
	cond, args := windowFilter(w, "t.employee_id")

	query := `SELECT ` + selectPaymentColumns + `
		FROM payment_logs p
		LEFT JOIN transactions t ON t.txn_number = p.txn_number
		WHERE p.store_code = $1 AND p.payment_date >= $2 AND p.payment_date < $3 AND p.created_at <= $4` + cond + `
		ORDER BY p.payment_date ASC, p.id ASC`

	return s.queryPayments(ctx, query, args...)
}

func (s *Store) ListPaymentsByTxn(ctx context.Context, txnNumbers []string, asOf time.Time) ([]ledger.PaymentLog, error) {
	if len(txnNumbers) == 0 {
		return nil, nil
	}

	query := `SELECT ` + selectPaymentColumns + `
		FROM payment_logs p
		LEFT JOIN transactions t ON t.txn_number = p.txn_number
		WHERE p.txn_number = ANY($1) AND p.created_at <= $2
		ORDER BY p.payment_date ASC, p.id ASC`

	return s.queryPayments(ctx, query, txnNumbers, asOf)
}

func (s *Store) ListDiscounts(ctx context.Context, w ledger.Window) ([]ledger.DiscountLog, error) {
	cond, args := windowFilter(w, "t.employee_id")

	query := `
		SELECT d.id, d.txn_number, d.discount, d.receipt_label, d.amount, d.discount_date, d.created_at
		FROM discount_logs d
		JOIN transactions t ON t.txn_number = d.txn_number
		WHERE t.store_code = $1 AND d.discount_date >= $2 AND d.discount_date < $3 AND d.created_at <= $4` + cond + `
		ORDER BY d.discount_date ASC, d.id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing discounts: %w", err)
	}
	defer rows.Close()

	var discounts []ledger.DiscountLog

	for rows.Next() {
		var d ledger.DiscountLog
		if err := rows.Scan(&d.ID, &d.TxnNumber, &d.Discount, &d.ReceiptLabel, &d.Amount, &d.DiscountDate, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning discount: %w", err)
		}

		discounts = append(discounts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating discounts: %w", err)
	}

	return discounts, nil
}

func (s *Store) ListTransactionAmounts(ctx context.Context, w ledger.Window) ([]ledger.TransactionAmount, error) {
	cond, args := windowFilter(w, "t.employee_id")

	query := `
		SELECT a.txn_number, a.vatable_sale, a.vat_amount, a.vat_exempt, a.vat_zero_rated, a.non_vat,
			a.total_amount, a.created_at
		FROM transaction_amounts a
		JOIN transactions t ON t.txn_number = a.txn_number
		WHERE t.store_code = $1 AND t.transaction_date >= $2 AND t.transaction_date < $3 AND a.created_at <= $4` + cond

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transaction amounts: %w", err)
	}
	defer rows.Close()

	var amounts []ledger.TransactionAmount

	for rows.Next() {
		var a ledger.TransactionAmount
		if err := rows.Scan(
			&a.TxnNumber, &a.VatableSale, &a.VATAmount, &a.VATExempt, &a.VATZeroRated, &a.NonVAT,
			&a.TotalAmount, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning transaction amount: %w", err)
		}

		amounts = append(amounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction amounts: %w", err)
	}

	return amounts, nil
}

const selectTransactionColumns = `
	t.txn_number, t.si_number, t.void_number, t.original_txn_number, t.amount, t.type,
	t.store_code, t.employee_id, t.transaction_date, t.created_at
`

// Expected column order: selectTransactionColumns
func scanTransaction(s scanner) (ledger.Transaction, error) {
	var t ledger.Transaction

	var typ string

	if err := s.Scan(
		&t.TxnNumber, &t.SINumber, &t.VoidNumber, &t.OriginalTxnNumber, &t.Amount, &typ,
		&t.StoreCode, &t.EmployeeID, &t.TransactionDate, &t.CreatedAt,
	); err != nil {
		return t, err
	}

	t.Type = ledger.TransactionType(typ)

	return t, nil
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]ledger.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txns []ledger.Transaction

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txns = append(txns, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txns, nil
}

func (s *Store) ListTransactions(ctx context.Context, w ledger.Window) ([]ledger.Transaction, error) {
	cond, args := windowFilter(w, "t.employee_id")

	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.store_code = $1 AND t.transaction_date >= $2 AND t.transaction_date < $3 AND t.created_at <= $4` + cond + `
		ORDER BY t.transaction_date ASC, t.txn_number ASC`

	return s.queryTransactions(ctx, query, args...)
}

func (s *Store) GetTransactions(ctx context.Context, txnNumbers []string, asOf time.Time) ([]ledger.Transaction, error) {
	if len(txnNumbers) == 0 {
		return nil, nil
	}

	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.txn_number = ANY($1) AND t.created_at <= $2`

	return s.queryTransactions(ctx, query, txnNumbers, asOf)
}

func (s *Store) ListCashLogs(ctx context.Context, w ledger.Window) ([]ledger.CashLog, error) {
	cond, args := windowFilter(w, "employee_id")

	query := `
		SELECT id, type, shift, denominations, total, employee_id, branch_code, cash_date, created_at
		FROM cash_logs
		WHERE branch_code = $1 AND cash_date >= $2 AND cash_date < $3 AND created_at <= $4` + cond + `
		ORDER BY cash_date ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cash logs: %w", err)
	}
	defer rows.Close()

	var logs []ledger.CashLog

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
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cash logs: %w", err)
	}

	return logs, nil
}

func (s *Store) SumPayments(ctx context.Context, storeCode string, before, asOf time.Time) (reconcile.PaymentTotals, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0), COALESCE(SUM(excess_cash), 0)
		FROM payment_logs
		WHERE store_code = $1 AND status = 'success' AND payment_date < $2 AND created_at <= $3`

	var totals reconcile.PaymentTotals
	if err := s.db.QueryRowContext(ctx, query, storeCode, before, asOf).Scan(&totals.Success, &totals.ExcessCash); err != nil {
		return totals, fmt.Errorf("summing payments: %w", err)
	}

	return totals, nil
}

// CountZReads counts the store's Z-Reads for report days before day, committed after
// the most recent counter reset.
func (s *Store) CountZReads(ctx context.Context, storeCode, day string) (int, error) {
	d, err := parseDay(day)
	if err != nil {
		return 0, err
	}

	query := `
		SELECT COUNT(*)
		FROM previews
		WHERE store_code = $1 AND type = $2 AND report_day < $3
		  AND created_at >= COALESCE(
		      (SELECT MAX(reset_at) FROM reset_count_logs WHERE store_code = $1),
		      '-infinity'::timestamptz)`

	var n int
	if err := s.db.QueryRowContext(ctx, query, storeCode, ledger.ZRead, d).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting z-reads: %w", err)
	}

	return n, nil
}

func zReadExists(ctx context.Context, q queryer, storeCode, day string) (bool, error) {
	d, err := parseDay(day)
	if err != nil {
		return false, err
	}

	query := `SELECT EXISTS (SELECT 1 FROM previews WHERE store_code = $1 AND report_day = $2 AND type = $3)`

	var exists bool
	if err := q.QueryRowContext(ctx, query, storeCode, d, ledger.ZRead).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking z-read: %w", err)
	}

	return exists, nil
}

func (s *Store) ZReadExists(ctx context.Context, storeCode, day string) (bool, error) {
	return zReadExists(ctx, s.db, storeCode, day)
}

const selectPreviewColumns = `id, type, store_code, report_day, report, created_at`

// Expected column order: selectPreviewColumns
func scanPreview(s scanner) (*reconcile.Preview, error) {
	var (
		p      reconcile.Preview
		typ    string
		day    time.Time
		report []byte
	)

	if err := s.Scan(&p.ID, &typ, &p.StoreCode, &day, &report, &p.CreatedAt); err != nil {
		return nil, err
	}

	p.Type = ledger.ReadType(typ)
	p.Day = day.Format(time.DateOnly)
	p.Report = &reconcile.Report{}

	if err := json.Unmarshal(report, p.Report); err != nil {
		return nil, fmt.Errorf("decoding report of preview %d: %w", p.ID, err)
	}

	return &p, nil
}

func (s *Store) GetPreview(ctx context.Context, storeCode, day string, readType ledger.ReadType) (*reconcile.Preview, error) {
	d, err := parseDay(day)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + selectPreviewColumns + `
		FROM previews
		WHERE store_code = $1 AND report_day = $2 AND type = $3
		ORDER BY created_at DESC
		LIMIT 1`

	p, err := scanPreview(s.db.QueryRowContext(ctx, query, storeCode, d, readType))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting preview: %w", err)
	}

	return p, nil
}

func (s *Store) ListPreviews(ctx context.Context, storeCode string, readType ledger.ReadType, from, to string) ([]*reconcile.Preview, error) {
	fromDay, err := parseDay(from)
	if err != nil {
		return nil, err
	}

	toDay, err := parseDay(to)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + selectPreviewColumns + `
		FROM previews
		WHERE store_code = $1 AND type = $2 AND report_day >= $3 AND report_day <= $4
		ORDER BY report_day ASC`

	rows, err := s.db.QueryContext(ctx, query, storeCode, readType, fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("listing previews: %w", err)
	}
	defer rows.Close()

	var previews []*reconcile.Preview

	for rows.Next() {
		p, err := scanPreview(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning preview: %w", err)
		}

		previews = append(previews, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating previews: %w", err)
	}

	return previews, nil
}

func commitLockKey(storeCode, day string) int64 {
	h := fnv.New64a()
	h.Write([]byte("z-read"))
	h.Write([]byte{0})
	h.Write([]byte(storeCode))
	h.Write([]byte{0})
	h.Write([]byte(day))

	return int64(h.Sum64())
}

type commitTx struct {
	tx *sql.Tx
}

// BeginCommit opens the Z-Read unit of work. The advisory lock is held until
// the transaction ends, so concurrent commits for a store and day run one at a time.
func (s *Store) BeginCommit(ctx context.Context, storeCode, day string) (reconcile.CommitTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning z-read tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", commitLockKey(storeCode, day)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring z-read lock: %w", err)
	}

	return &commitTx{tx: dbTx}, nil
}

func (c *commitTx) Commit() error   { return c.tx.Commit() }
func (c *commitTx) Rollback() error { return c.tx.Rollback() }

func (c *commitTx) ZReadExists(ctx context.Context, storeCode, day string) (bool, error) {
	return zReadExists(ctx, c.tx, storeCode, day)
}

func (c *commitTx) CreatePreview(ctx context.Context, p *reconcile.Preview) error {
	d, err := parseDay(p.Day)
	if err != nil {
		return err
	}

	report, err := json.Marshal(p.Report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	query := `
		INSERT INTO previews (id, type, store_code, report_day, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if _, err := c.tx.ExecContext(ctx, query, p.ID, p.Type, p.StoreCode, d, report, p.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return reconcile.ErrDuplicateZRead
		}

		return fmt.Errorf("creating preview: %w", err)
	}

	return nil
}

func (c *commitTx) CreateReadLog(ctx context.Context, l *ledger.ReadLog) error {
	query := `
		INSERT INTO read_logs (id, type, employee_id, store_code, read_date)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := c.tx.ExecContext(ctx, query, l.ID, l.Type, l.EmployeeID, l.StoreCode, l.ReadDate); err != nil {
		return fmt.Errorf("creating read log: %w", err)
	}

	return nil
}

func (c *commitTx) CreateActivityLog(ctx context.Context, a *ledger.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, activity_id, employee_id, employee_name, store_code, action, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if _, err := c.tx.ExecContext(ctx, query,
		a.ID,
		a.ActivityID,
		a.EmployeeID,
		a.EmployeeName,
		a.StoreCode,
		a.Action,
		a.Description,
		a.CreatedAt,
	); err != nil {
		return fmt.Errorf("creating activity log: %w", err)
	}

	return nil
}
