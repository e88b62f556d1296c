package reconcile

import (
	"time"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

// snapshot is every row a report is built from, read as of one instant.
type snapshot struct {
	window   ledger.Window
	readType ledger.ReadType

	orders       []ledger.Order
	payments     []ledger.PaymentLog
	discounts    []ledger.DiscountLog
	amounts      []ledger.TransactionAmount
	transactions []ledger.Transaction
	cashLogs     []ledger.CashLog

	exclusions Exclusions
	origins    map[string]RefundOrigin
	originGaps []Gap

	// Z-Read only.
	totals     PaymentTotals
	zReadCount int
}

// assemble merges the rows of a snapshot into a report. It performs no I/O.
func assemble(in snapshot, loc *time.Location) *Report {
	w := in.window

	r := &Report{
		Type:        in.readType,
		StoreCode:   w.StoreCode,
		EmployeeID:  w.EmployeeID,
		From:        w.Start,
		To:          w.End,
		GeneratedAt: w.AsOf,
	}

	payments, figures, gaps := ClassifyPayments(in.payments, in.exclusions)
	r.Payments = payments
	r.Gaps = append(gaps, in.originGaps...)

	r.Discounts = ClassifyDiscounts(in.discounts, in.exclusions)
	r.VAT = AggregateVAT(in.amounts, in.exclusions)
	r.Department = AggregateCategories(in.orders, in.exclusions)

	r.InitialFund, r.Takeout = SumCashLogs(in.cashLogs)

	drawer := ReconcileDrawer(DrawerInput{
		InitialCash: r.InitialFund.Total,
		Declaration: r.Takeout.Total,
		Payments:    figures,
		Refunds:     SplitRefunds(in.payments, in.origins, loc),
	})
	r.CashDrop = drawer.CashDrop
	r.FinalTotal = drawer.FinalTotal
	r.OverShort = drawer.OverShort

	r.CashierAudit, r.SINum, r.VoidNum = AuditTransactions(in.transactions, in.exclusions)

	r.Sales.Net = figures.NetSales
	r.Sales.Gross = figures.NetSales.
		Add(r.Discounts.Summary.TotalItemDiscounts.Total).
		Add(r.Discounts.Summary.TotalVATDiscounts.Total)

	r.CashierAudit.NumItemsSold = r.Department.Summary.Count
	r.CashierAudit.TotalDiscountAmount = r.Discounts.Summary.TotalItemDiscounts.Total.
		Add(r.Discounts.Summary.TotalVATDiscounts.Total)
	r.CashierAudit.AveBasket = AverageBasket(r.Sales.Net, r.CashierAudit.NumSalesTxn)

	if in.readType == ledger.ZRead {
		acc := Accumulate(accumulationInput(in.payments, in.transactions, in.totals))
		r.AccumulatedSales = &acc

		count := in.zReadCount
		r.ZReadLogsCount = &count
	}

	return r
}
