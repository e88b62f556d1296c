package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

const (
	activitySequence = "activity"
	defaultTimeout   = 3 * time.Minute
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reconcile
type Repository interface {
	ListOrders(ctx context.Context, w ledger.Window) ([]ledger.Order, error)
	ListPayments(ctx context.Context, w ledger.Window) ([]ledger.PaymentLog, error)
	ListDiscounts(ctx context.Context, w ledger.Window) ([]ledger.DiscountLog, error)
	ListTransactionAmounts(ctx context.Context, w ledger.Window) ([]ledger.TransactionAmount, error)
	ListTransactions(ctx context.Context, w ledger.Window) ([]ledger.Transaction, error)
	ListCashLogs(ctx context.Context, w ledger.Window) ([]ledger.CashLog, error)

	GetTransactions(ctx context.Context, txnNumbers []string, asOf time.Time) ([]ledger.Transaction, error)
	ListPaymentsByTxn(ctx context.Context, txnNumbers []string, asOf time.Time) ([]ledger.PaymentLog, error)
	SumPayments(ctx context.Context, storeCode string, before, asOf time.Time) (PaymentTotals, error)
	// CountZReads counts committed Z-Reads for report days before day, since the last
	// counter reset.
	CountZReads(ctx context.Context, storeCode, day string) (int, error)

	ZReadExists(ctx context.Context, storeCode, day string) (bool, error)
	GetPreview(ctx context.Context, storeCode, day string, readType ledger.ReadType) (*Preview, error)
	ListPreviews(ctx context.Context, storeCode string, readType ledger.ReadType, from, to string) ([]*Preview, error)

	BeginCommit(ctx context.Context, storeCode, day string) (CommitTx, error)
}

// CommitTx is the unit of work a Z-Read is persisted in. BeginCommit serializes
// commits per store and day.
type CommitTx interface {
	ZReadExists(ctx context.Context, storeCode, day string) (bool, error)
	CreatePreview(ctx context.Context, p *Preview) error
	CreateReadLog(ctx context.Context, l *ledger.ReadLog) error
	CreateActivityLog(ctx context.Context, a *ledger.ActivityLog) error
	Commit() error
	Rollback() error
}

type Sequencer interface {
	Next(ctx context.Context, key string) (int64, error)
}

// Publisher receives committed Z-Reads. Failures never undo the commit.
type Publisher interface {
	Publish(ctx context.Context, r *Report) error
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, r *Report) error

func (f PublisherFunc) Publish(ctx context.Context, r *Report) error {
	return f(ctx, r)
}

type Service struct {
	repo      Repository
	sequence  Sequencer
	node      *snowflake.Node
	publisher Publisher
	loc       *time.Location
	timeout   time.Duration
	now       func() time.Time
}

type Option func(*Service)

// WithLocation sets the store timezone calendar days are cut in.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithTimeout bounds the ledger reads of one report.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, seq Sequencer, node *snowflake.Node, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		sequence: seq,
		node:     node,
		loc:      time.UTC,
		timeout:  defaultTimeout,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Location is the store timezone.
func (s *Service) Location() *time.Location {
	return s.loc
}

// ComputeXRead builds a report for the window without writing anything.
// The window's EmployeeID restricts it to one cashier.
func (s *Service) ComputeXRead(ctx context.Context, w ledger.Window) (*Report, error) {
	return s.compute(ctx, w, ledger.XRead)
}

// ComputeAndCommitZRead builds the store's report for the calendar day of w and
// persists it with its audit trail, at most once per store and day.
func (s *Service) ComputeAndCommitZRead(ctx context.Context, w ledger.Window, actor Actor) (*Report, error) {
	w.EmployeeID = ""
	day := w.Day(s.loc)

	exists, err := s.repo.ZReadExists(ctx, w.StoreCode, day)
	if err != nil {
		return nil, infra("checking z-read", err)
	}

	if exists {
		return nil, ErrDuplicateZRead
	}

	report, err := s.compute(ctx, w, ledger.ZRead)
	if err != nil {
		return nil, err
	}

	// Past this point the commit runs to completion or rolls back.
	commitCtx := context.WithoutCancel(ctx)

	if err := s.commit(commitCtx, report, day, actor); err != nil {
		return nil, err
	}

	slog.Info("z-read committed", "store", w.StoreCode, "day", day, "employee", actor.EmployeeID)

	if s.publisher != nil {
		if err := s.publisher.Publish(commitCtx, report); err != nil {
			slog.Error("publishing z-read", "store", w.StoreCode, "day", day, "error", err)
		}
	}

	return report, nil
}

func (s *Service) GetZRead(ctx context.Context, storeCode string, day time.Time) (*Preview, error) {
	key := day.In(s.loc).Format(time.DateOnly)

	p, err := s.repo.GetPreview(ctx, storeCode, key, ledger.ZRead)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return nil, ErrNoZRead
		}

		return nil, infra("getting z-read", err)
	}

	return p, nil
}

func (s *Service) ListZReads(ctx context.Context, storeCode string, from, to time.Time) ([]*Preview, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid range: %s is before %s", to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	previews, err := s.repo.ListPreviews(ctx, storeCode, ledger.ZRead,
		from.In(s.loc).Format(time.DateOnly), to.In(s.loc).Format(time.DateOnly))
	if err != nil {
		return nil, infra("listing z-reads", err)
	}

	return previews, nil
}

func (s *Service) commit(ctx context.Context, report *Report, day string, actor Actor) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.repo.BeginCommit(ctx, report.StoreCode, day)
	if err != nil {
		return infra("beginning z-read commit", err)
	}
	defer tx.Rollback()

	exists, err := tx.ZReadExists(ctx, report.StoreCode, day)
	if err != nil {
		return infra("checking z-read", err)
	}

	if exists {
		return ErrDuplicateZRead
	}

	// Activity ids are issued only for commits that go ahead.
	activityID, err := s.sequence.Next(ctx, activitySequence)
	if err != nil {
		return infra("issuing activity id", err)
	}

	now := s.now()

	preview := &Preview{
		ID:        s.node.Generate().Int64(),
		Type:      ledger.ZRead,
		StoreCode: report.StoreCode,
		Day:       day,
		Report:    report,
		CreatedAt: now,
	}
	if err := tx.CreatePreview(ctx, preview); err != nil {
		if errors.Is(err, ErrDuplicateZRead) {
			return err
		}

		return infra("saving z-read snapshot", err)
	}

	readLog := &ledger.ReadLog{
		ID:         uuid.New(),
		Type:       ledger.ZRead,
		EmployeeID: actor.EmployeeID,
		StoreCode:  report.StoreCode,
		ReadDate:   now,
	}
	if err := tx.CreateReadLog(ctx, readLog); err != nil {
		return infra("saving read log", err)
	}

	activity := &ledger.ActivityLog{
		ID:           uuid.New(),
		ActivityID:   activityID,
		EmployeeID:   actor.EmployeeID,
		EmployeeName: actor.Name,
		StoreCode:    report.StoreCode,
		Action:       "Z-READ",
		Description:  fmt.Sprintf("%s generated the Z-Read for %s", actor.Name, day),
		CreatedAt:    now,
	}
	if err := tx.CreateActivityLog(ctx, activity); err != nil {
		return infra("saving activity log", err)
	}

	if err := tx.Commit(); err != nil {
		return infra("committing z-read", err)
	}

	return nil
}

func (s *Service) compute(ctx context.Context, w ledger.Window, readType ledger.ReadType) (*Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	w.AsOf = s.now()

	in := snapshot{window: w, readType: readType}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.repo.ListOrders(gctx, w)
		if err != nil {
			return infra("listing orders", err)
		}

		in.orders = rows

		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ListPayments(gctx, w)
		if err != nil {
			return infra("listing payments", err)
		}

		in.payments = rows

		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ListCashLogs(gctx, w)
		if err != nil {
			return infra("listing cash logs", err)
		}

		in.cashLogs = rows

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if readType == ledger.ZRead && !hasInitialCash(in.cashLogs) {
		return nil, ErrNoInitialCash
	}

	in.exclusions = ResolveExclusions(in.orders, in.payments)

	var partial atomic.Bool

	g, gctx = errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.repo.ListDiscounts(gctx, w)
		if err != nil {
			return s.tolerate(gctx, readType, "listing discounts", err, &partial)
		}

		in.discounts = rows

		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ListTransactionAmounts(gctx, w)
		if err != nil {
			return s.tolerate(gctx, readType, "listing transaction amounts", err, &partial)
		}

		in.amounts = rows

		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ListTransactions(gctx, w)
		if err != nil {
			return s.tolerate(gctx, readType, "listing transactions", err, &partial)
		}

		in.transactions = rows

		return nil
	})
	g.Go(func() error {
		origins, gaps, err := s.resolveRefundOrigins(gctx, in.payments, w.AsOf)
		if err != nil {
			return err
		}

		in.origins = origins
		in.originGaps = gaps

		return nil
	})

	if readType == ledger.ZRead {
		g.Go(func() error {
			totals, err := s.repo.SumPayments(gctx, w.StoreCode, w.End, w.AsOf)
			if err != nil {
				return infra("summing payments", err)
			}

			in.totals = totals

			return nil
		})
		g.Go(func() error {
			count, err := s.repo.CountZReads(gctx, w.StoreCode, w.Day(s.loc))
			if err != nil {
				return infra("counting z-reads", err)
			}

			in.zReadCount = count

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := assemble(in, s.loc)
	report.Partial = partial.Load()

	for _, gap := range report.Gaps {
		slog.Warn("ledger integrity gap",
			"store", w.StoreCode,
			"txn_number", gap.TxnNumber,
			"reason", gap.Reason,
		)
	}

	return report, nil
}

// tolerate decides whether a failed sub-aggregate aborts the report. X-Reads report
// zero for it and are marked partial; Z-Reads and timeouts always abort.
func (s *Service) tolerate(ctx context.Context, readType ledger.ReadType, op string, err error, partial *atomic.Bool) error {
	if readType == ledger.ZRead || ctx.Err() != nil || isContextErr(err) {
		return infra(op, err)
	}

	slog.Warn("sub-aggregate unavailable, reporting zero", "op", op, "error", err)
	partial.Store(true)

	return nil
}

// resolveRefundOrigins finds the original payment of every refund paid out in
// payments. Refunds whose original cannot be found are returned as gaps.
func (s *Service) resolveRefundOrigins(ctx context.Context, payments []ledger.PaymentLog, asOf time.Time) (map[string]RefundOrigin, []Gap, error) {
	refunds := refundTxnNumbers(payments)
	if len(refunds) == 0 {
		return nil, nil, nil
	}

	txns, err := s.repo.GetTransactions(ctx, refunds, asOf)
	if err != nil {
		return nil, nil, infra("getting refund transactions", err)
	}

	byNumber := make(map[string]ledger.Transaction, len(txns))
	originalSet := TxnSet{}

	for _, t := range txns {
		byNumber[t.TxnNumber] = t
		originalSet.add(t.OriginalTxnNumber)
	}

	originals := map[string][]ledger.PaymentLog{}

	if len(originalSet) > 0 {
		rows, err := s.repo.ListPaymentsByTxn(ctx, originalSet.Sorted(), asOf)
		if err != nil {
			return nil, nil, infra("listing original payments", err)
		}

		for _, p := range rows {
			originals[p.TxnNumber] = append(originals[p.TxnNumber], p)
		}
	}

	origins := make(map[string]RefundOrigin, len(refunds))

	var gaps []Gap

	for _, number := range refunds {
		refund, ok := byNumber[number]
		if !ok {
			gaps = append(gaps, Gap{TxnNumber: number, Reason: "refund payment has no transaction"})
			continue
		}

		origin, err := originalPaymentMethod(refund, originals)
		if err != nil {
			gaps = append(gaps, Gap{TxnNumber: number, Reason: err.Error()})
			continue
		}

		origins[number] = origin
	}

	return origins, gaps, nil
}

func hasInitialCash(logs []ledger.CashLog) bool {
	for _, l := range logs {
		if l.Type == ledger.CashInitial {
			return true
		}
	}

	return false
}
