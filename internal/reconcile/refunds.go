package reconcile

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

// RefundOrigin is how and when the sale behind a refund was paid.
type RefundOrigin struct {
	Kind   ledger.PaymentMethodKind
	PaidAt time.Time
}

// originalPaymentMethod follows a refund or return transaction to the first success
// payment of the sale it reverses. originals is keyed by transaction number.
func originalPaymentMethod(refund ledger.Transaction, originals map[string][]ledger.PaymentLog) (RefundOrigin, error) {
	if refund.OriginalTxnNumber == "" {
		return RefundOrigin{}, fmt.Errorf("refund %s has no original transaction: %w", refund.TxnNumber, ErrOriginNotFound)
	}

	var paid []ledger.PaymentLog
	for _, p := range originals[refund.OriginalTxnNumber] {
		if p.Status == ledger.PaymentSuccess {
			paid = append(paid, p)
		}
	}

	if len(paid) == 0 {
		return RefundOrigin{}, fmt.Errorf("refund %s of %s: %w", refund.TxnNumber, refund.OriginalTxnNumber, ErrOriginNotFound)
	}

	first := slices.MinFunc(paid, func(a, b ledger.PaymentLog) int {
		if c := a.PaymentDate.Compare(b.PaymentDate); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return RefundOrigin{Kind: first.Kind(), PaidAt: first.PaymentDate}, nil
}

// refundTxnNumbers lists the distinct transactions that paid out a refund in payments.
func refundTxnNumbers(payments []ledger.PaymentLog) []string {
	set := TxnSet{}
	for _, p := range payments {
		if p.Status == ledger.PaymentRefund && !p.Orphan {
			set.add(p.TxnNumber)
		}
	}

	return set.Sorted()
}

// RefundFigures are the refund payouts that affect what the drawer should hold.
type RefundFigures struct {
	PriorDayCash      decimal.Decimal
	SameDayCash       decimal.Decimal
	SameDayCustomCash decimal.Decimal
}

// SplitRefunds sorts refund payouts by the day and tender of the original sale.
// Refunds without a resolved origin contribute nothing. The result does not depend
// on the order of payments.
func SplitRefunds(payments []ledger.PaymentLog, origins map[string]RefundOrigin, loc *time.Location) RefundFigures {
	var out RefundFigures

	for _, p := range payments {
		if p.Status != ledger.PaymentRefund || p.Orphan {
			continue
		}

		origin, ok := origins[p.TxnNumber]
		if !ok {
			continue
		}

		priorDay := origin.PaidAt.Before(p.PaymentDate) && !ledger.SameDay(origin.PaidAt, p.PaymentDate, loc)

		switch {
		case origin.Kind.Type == ledger.MethodCash && priorDay:
			out.PriorDayCash = out.PriorDayCash.Add(p.Amount)
		case origin.Kind.Type == ledger.MethodCash:
			out.SameDayCash = out.SameDayCash.Add(p.Amount)
		case origin.Kind.Type == ledger.MethodCustomCash && !priorDay:
			out.SameDayCustomCash = out.SameDayCustomCash.Add(p.Amount)
		}
	}

	return out
}
