package reconcile

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

// AuditTransactions counts the sales, non-sales, void, refund and return
// transactions of a window and finds the first and last invoice and void numbers.
func AuditTransactions(txns []ledger.Transaction, ex Exclusions) (CashierAudit, NumberRange, NumberRange) {
	var (
		audit   CashierAudit
		siNum   NumberRange
		voidNum NumberRange
	)

	sorted := slices.Clone(txns)
	slices.SortFunc(sorted, func(a, b ledger.Transaction) int {
		if c := a.TransactionDate.Compare(b.TransactionDate); c != 0 {
			return c
		}

		return cmp.Compare(a.TxnNumber, b.TxnNumber)
	})

	excluded := ex.VoidRefundedReturned()

	for _, t := range sorted {
		switch t.Type {
		case ledger.TypeRegular:
			switch {
			case ex.Redeemed.Has(t.TxnNumber):
				audit.NumNonSalesTxn++
			case !excluded.Has(t.TxnNumber):
				audit.NumSalesTxn++
			}
		case ledger.TypeVoid:
			audit.NumVoidTxn++
			audit.VoidTxnAmount = audit.VoidTxnAmount.Add(t.Amount.Abs())
			extend(&voidNum, t.VoidNumber)
		case ledger.TypeRefund:
			audit.NumRefundTxn++
			audit.RefundTxnAmount = audit.RefundTxnAmount.Add(t.Amount.Abs())
		case ledger.TypeReturn:
			audit.NumReturnTxn++
			audit.ReturnTxnAmount = audit.ReturnTxnAmount.Add(t.Amount.Abs())
		}

		extend(&siNum, t.SINumber)
	}

	return audit, siNum, voidNum
}

func extend(r *NumberRange, number string) {
	if number == "" {
		return
	}

	if r.From == "" {
		r.From = number
	}

	r.To = number
}

// AverageBasket is net sales per sales transaction, zero when there were none.
func AverageBasket(net decimal.Decimal, salesTxns int) decimal.Decimal {
	if salesTxns == 0 {
		return decimal.Zero
	}

	return net.Div(decimal.NewFromInt(int64(salesTxns))).Round(2)
}
