package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

// PaymentTotals are all-history payment sums for a store.
type PaymentTotals struct {
	Success    decimal.Decimal
	ExcessCash decimal.Decimal
}

// AccumulationInput feeds the running grand total of a Z-Read.
type AccumulationInput struct {
	// All-history sums of success payments up to the window end.
	AllSuccess    decimal.Decimal
	AllExcessCash decimal.Decimal

	// Window sums.
	TodaySuccess     decimal.Decimal // Σ(amount − excessCash) of success payments
	TodayExcessCash  decimal.Decimal
	TodayRefundsPaid decimal.Decimal
	ReturnsTotal     decimal.Decimal
	RefundsTotal     decimal.Decimal
}

// Accumulate computes the running grand total before and after the window.
// NEW of one day equals OLD of the next when every refund and return of the later
// day pays out its transaction amount in full and no excess cash was handed back.
func Accumulate(in AccumulationInput) AccumulatedSales {
	old := in.AllSuccess.
		Add(in.ReturnsTotal.Abs()).
		Add(in.RefundsTotal.Abs()).
		Sub(in.TodayRefundsPaid).
		Sub(in.AllExcessCash).
		Sub(in.TodaySuccess).
		Add(in.TodayExcessCash)

	return AccumulatedSales{
		Old: old,
		New: in.AllSuccess.Sub(in.TodayExcessCash),
	}
}

// accumulationInput gathers the window sums over every payment and transaction of
// the store, orphans included, so that consecutive days chain.
func accumulationInput(payments []ledger.PaymentLog, txns []ledger.Transaction, totals PaymentTotals) AccumulationInput {
	in := AccumulationInput{
		AllSuccess:    totals.Success,
		AllExcessCash: totals.ExcessCash,
	}

	for _, p := range payments {
		switch p.Status {
		case ledger.PaymentSuccess:
			in.TodaySuccess = in.TodaySuccess.Add(p.Amount.Sub(p.ExcessCash))
			in.TodayExcessCash = in.TodayExcessCash.Add(p.ExcessCash)
		case ledger.PaymentRefund:
			in.TodayRefundsPaid = in.TodayRefundsPaid.Add(p.Amount)
		}
	}

	for _, t := range txns {
		switch t.Type {
		case ledger.TypeReturn:
			in.ReturnsTotal = in.ReturnsTotal.Add(t.Amount.Abs())
		case ledger.TypeRefund:
			in.RefundsTotal = in.RefundsTotal.Add(t.Amount.Abs())
		}
	}

	return in
}
