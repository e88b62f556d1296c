package reconcile

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

// AggregateVAT sums the VAT decomposition of every transaction that was not voided,
// refunded or returned.
func AggregateVAT(amounts []ledger.TransactionAmount, ex Exclusions) VAT {
	var out VAT

	excluded := ex.VoidRefundedReturned()

	for _, a := range amounts {
		if excluded.Has(a.TxnNumber) {
			continue
		}

		d := &out.Details
		d.VatableSales = d.VatableSales.Add(a.VatableSale)
		d.VATAmount = d.VATAmount.Add(a.VATAmount)
		d.VATExempt = d.VATExempt.Add(a.VATExempt)
		d.VATZeroRated = d.VATZeroRated.Add(a.VATZeroRated)
		d.NonVAT = d.NonVAT.Add(a.NonVAT)
		d.TotalAmount = d.TotalAmount.Add(a.TotalAmount)

		if !a.VATExempt.IsZero() || !a.VATZeroRated.IsZero() {
			out.Count++
		}
	}

	out.Total = out.Details.VATAmount

	return out
}

// AggregateCategories nets item lines per category: paid lines of transactions that
// were not voided add, refund and return lines subtract. A category that only has
// returns in the window ends up negative.
func AggregateCategories(orders []ledger.Order, ex Exclusions) Department {
	type acc struct {
		count int
		total decimal.Decimal
		vat   decimal.Decimal
	}

	categories := map[string]*acc{}

	for _, o := range orders {
		var sign int

		switch o.Status {
		case ledger.OrderPaid:
			if ex.Voided.Has(o.TxnNumber) {
				continue
			}

			sign = 1
		case ledger.OrderRefund, ledger.OrderReturn:
			sign = -1
		default:
			continue
		}

		c, ok := categories[o.Category]
		if !ok {
			c = &acc{}
			categories[o.Category] = c
		}

		line := o.LineTotal()
		var vat decimal.Decimal
		if o.VATType == ledger.VATable {
			_, vat = ledger.BackOutVAT(line)
		}

		if sign < 0 {
			line = line.Neg()
			vat = vat.Neg()
		}

		c.count += sign * o.Quantity
		c.total = c.total.Add(line)
		c.vat = c.vat.Add(vat)
	}

	out := Department{Categories: make([]CategoryLine, 0, len(categories))}
	for name, c := range categories {
		out.Categories = append(out.Categories, CategoryLine{
			Category:  name,
			Tally:     Tally{Count: c.count, Total: c.total},
			VATAmount: c.vat,
		})
		out.Summary.Count += c.count
		out.Summary.Total = out.Summary.Total.Add(c.total)
	}

	slices.SortFunc(out.Categories, func(a, b CategoryLine) int {
		return cmp.Compare(a.Category, b.Category)
	})

	return out
}
