package reconcile

import (
	"slices"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

// TxnSet is a set of transaction numbers.
type TxnSet map[string]struct{}

func (s TxnSet) Has(txn string) bool {
	_, ok := s[txn]
	return ok
}

func (s TxnSet) add(txn string) {
	if txn != "" {
		s[txn] = struct{}{}
	}
}

// Union returns a new set holding the members of s and every other set.
func (s TxnSet) Union(others ...TxnSet) TxnSet {
	out := make(TxnSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}

	for _, o := range others {
		for k := range o {
			out[k] = struct{}{}
		}
	}

	return out
}

// Sorted returns the members in ascending order.
func (s TxnSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}

	slices.Sort(out)

	return out
}

// Exclusions holds the transaction sets every aggregator filters on.
type Exclusions struct {
	Voided   TxnSet
	Refunded TxnSet
	Returned TxnSet
	// Redeemed holds transactions settled with the redemption method.
	Redeemed TxnSet
}

// VoidReturned is voided ∪ returned.
func (e Exclusions) VoidReturned() TxnSet {
	return e.Voided.Union(e.Returned)
}

// VoidRefundedReturned is voided ∪ refunded ∪ returned.
func (e Exclusions) VoidRefundedReturned() TxnSet {
	return e.Voided.Union(e.Refunded, e.Returned)
}

// NonSales is every transaction that must stay out of discount totals.
func (e Exclusions) NonSales() TxnSet {
	return e.Voided.Union(e.Refunded, e.Returned, e.Redeemed)
}

// ResolveExclusions derives the exclusion sets from the order lines and payments of a
// window. It only reads its inputs, so repeated calls over the same rows agree.
func ResolveExclusions(orders []ledger.Order, payments []ledger.PaymentLog) Exclusions {
	ex := Exclusions{
		Voided:   TxnSet{},
		Refunded: TxnSet{},
		Returned: TxnSet{},
		Redeemed: TxnSet{},
	}

	for _, o := range orders {
		switch o.Status {
		case ledger.OrderVoid:
			ex.Voided.add(o.TxnNumber)
		case ledger.OrderRefund:
			ex.Refunded.add(o.TxnNumber)
		case ledger.OrderReturn:
			ex.Returned.add(o.TxnNumber)
		}
	}

	for _, p := range payments {
		if p.Kind().Type == ledger.MethodRedemption {
			ex.Redeemed.add(p.TxnNumber)
		}
	}

	return ex
}
