package reconcile_test

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
)

// memLedger is an in-memory Repository. BeginCommit holds a single lock until
// the unit of work ends, like the advisory lock of the SQL store.
type memLedger struct {
	mu       sync.Mutex
	commitMu sync.Mutex

	orders    []ledger.Order
	payments  []ledger.PaymentLog
	discounts []ledger.DiscountLog
	amounts   []ledger.TransactionAmount
	txns      []ledger.Transaction
	cashLogs  []ledger.CashLog

	previews   []*reconcile.Preview
	readLogs   []ledger.ReadLog
	activities []ledger.ActivityLog
	writes     int
}

func (l *memLedger) txn(number string) (ledger.Transaction, bool) {
	for _, t := range l.txns {
		if t.TxnNumber == number {
			return t, true
		}
	}

	return ledger.Transaction{}, false
}

func (l *memLedger) visible(w ledger.Window, at, created time.Time, txnNumber string) bool {
	if !w.Contains(at) || created.After(w.AsOf) {
		return false
	}

	if w.EmployeeID == "" {
		return true
	}

	t, ok := l.txn(txnNumber)

	return ok && t.EmployeeID == w.EmployeeID
}

func (l *memLedger) ListOrders(_ context.Context, w ledger.Window) ([]ledger.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []ledger.Order
	for _, o := range l.orders {
		if l.visible(w, o.OrderDate, o.CreatedAt, o.TxnNumber) {
			out = append(out, o)
		}
	}

	return out, nil
}

func (l *memLedger) ListPayments(_ context.Context, w ledger.Window) ([]ledger.PaymentLog, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []ledger.PaymentLog
	for _, p := range l.payments {
		if p.StoreCode != w.StoreCode || !l.visible(w, p.PaymentDate, p.CreatedAt, p.TxnNumber) {
			continue
		}

		_, ok := l.txn(p.TxnNumber)
		p.Orphan = !ok
		out = append(out, p)
	}

	return out, nil
}

func (l *memLedger) ListDiscounts(_ context.Context, w ledger.Window) ([]ledger.DiscountLog, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []ledger.DiscountLog
	for _, d := range l.discounts {
		if l.visible(w, d.DiscountDate, d.CreatedAt, d.TxnNumber) {
			out = append(out, d)
		}
	}

	return out, nil
}

func (l *memLedger) ListTransactionAmounts(_ context.Context, w ledger.Window) ([]ledger.TransactionAmount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []ledger.TransactionAmount
	for _, a := range l.amounts {
		t, ok := l.txn(a.TxnNumber)
		if ok && l.visible(w, t.TransactionDate, a.CreatedAt, a.TxnNumber) {
			out = append(out, a)
		}
	}

	return out, nil
}

func (l *memLedger) ListTransactions(_ context.Context, w ledger.Window) ([]ledger.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []ledger.Transaction
	for _, t := range l.txns {
		if t.StoreCode == w.StoreCode && l.visible(w, t.TransactionDate, t.CreatedAt, t.TxnNumber) {
			out = append(out, t)
		}
	}

	return out, nil
}

func (l *memLedger) ListCashLogs(_ context.Context, w ledger.Window) ([]ledger.CashLog, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []ledger.CashLog
	for _, c := range l.cashLogs {
		if c.BranchCode != w.StoreCode || !w.Contains(c.CashDate) || c.CreatedAt.After(w.AsOf) {
			continue
		}

		if w.EmployeeID != "" && c.EmployeeID != w.EmployeeID {
			continue
		}

		out = append(out, c)
	}

	return out, nil
}

func (l *memLedger) GetTransactions(_ context.Context, numbers []string, _ time.Time) ([]ledger.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []ledger.Transaction
	for _, t := range l.txns {
		if slices.Contains(numbers, t.TxnNumber) {
			out = append(out, t)
		}
	}

	return out, nil
}

func (l *memLedger) ListPaymentsByTxn(_ context.Context, numbers []string, _ time.Time) ([]ledger.PaymentLog, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []ledger.PaymentLog
	for _, p := range l.payments {
		if slices.Contains(numbers, p.TxnNumber) {
			out = append(out, p)
		}
	}

	return out, nil
}

func (l *memLedger) SumPayments(_ context.Context, storeCode string, before, asOf time.Time) (reconcile.PaymentTotals, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out reconcile.PaymentTotals
	for _, p := range l.payments {
		if p.StoreCode != storeCode || p.Status != ledger.PaymentSuccess || !p.PaymentDate.Before(before) || p.CreatedAt.After(asOf) {
			continue
		}

		out.Success = out.Success.Add(p.Amount)
		out.ExcessCash = out.ExcessCash.Add(p.ExcessCash)
	}

	return out, nil
}

func (l *memLedger) CountZReads(_ context.Context, storeCode, day string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, p := range l.previews {
		if p.Type == ledger.ZRead && p.StoreCode == storeCode && p.Day < day {
			n++
		}
	}

	return n, nil
}

func (l *memLedger) ZReadExists(_ context.Context, storeCode, day string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.zReadExists(storeCode, day), nil
}

func (l *memLedger) zReadExists(storeCode, day string) bool {
	for _, p := range l.previews {
		if p.Type == ledger.ZRead && p.StoreCode == storeCode && p.Day == day {
			return true
		}
	}

	return false
}

func (l *memLedger) GetPreview(_ context.Context, storeCode, day string, readType ledger.ReadType) (*reconcile.Preview, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.previews {
		if p.Type == readType && p.StoreCode == storeCode && p.Day == day {
			return p, nil
		}
	}

	return nil, ledger.ErrNotFound
}

func (l *memLedger) ListPreviews(_ context.Context, storeCode string, readType ledger.ReadType, from, to string) ([]*reconcile.Preview, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []*reconcile.Preview
	for _, p := range l.previews {
		if p.Type == readType && p.StoreCode == storeCode && p.Day >= from && p.Day <= to {
			out = append(out, p)
		}
	}

	return out, nil
}

func (l *memLedger) BeginCommit(_ context.Context, _, _ string) (reconcile.CommitTx, error) {
	l.commitMu.Lock()

	return &memCommit{ledger: l}, nil
}

type memCommit struct {
	ledger     *memLedger
	done       bool
	previews   []*reconcile.Preview
	readLogs   []ledger.ReadLog
	activities []ledger.ActivityLog
}

func (c *memCommit) ZReadExists(ctx context.Context, storeCode, day string) (bool, error) {
	return c.ledger.ZReadExists(ctx, storeCode, day)
}

func (c *memCommit) CreatePreview(_ context.Context, p *reconcile.Preview) error {
	c.previews = append(c.previews, p)
	return nil
}

func (c *memCommit) CreateReadLog(_ context.Context, r *ledger.ReadLog) error {
	c.readLogs = append(c.readLogs, *r)
	return nil
}

func (c *memCommit) CreateActivityLog(_ context.Context, a *ledger.ActivityLog) error {
	c.activities = append(c.activities, *a)
	return nil
}

func (c *memCommit) Commit() error {
	if c.done {
		return nil
	}

	l := c.ledger
	l.mu.Lock()
	l.previews = append(l.previews, c.previews...)
	l.readLogs = append(l.readLogs, c.readLogs...)
	l.activities = append(l.activities, c.activities...)
	l.writes += len(c.previews) + len(c.readLogs) + len(c.activities)
	l.mu.Unlock()

	c.end()

	return nil
}

func (c *memCommit) Rollback() error {
	c.end()
	return nil
}

func (c *memCommit) end() {
	if !c.done {
		c.done = true
		c.ledger.commitMu.Unlock()
	}
}

type counter struct {
	n atomic.Int64
}

func (c *counter) Next(context.Context, string) (int64, error) {
	return c.n.Add(1), nil
}
