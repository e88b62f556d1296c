package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

// DrawerInput is everything the cash drawer reconciliation needs.
type DrawerInput struct {
	InitialCash decimal.Decimal
	// Declaration is the cash counted at close.
	Declaration decimal.Decimal
	Payments    PaymentFigures
	Refunds     RefundFigures
}

// DrawerResult is the reconciled drawer.
type DrawerResult struct {
	CashDrop   CashDrop
	FinalTotal decimal.Decimal
	OverShort  decimal.Decimal
}

// ReconcileDrawer computes what should be in the drawer and compares it with what
// was declared. OverShort covers cash handling only and is positive when the drawer
// is over.
func ReconcileDrawer(in DrawerInput) DrawerResult {
	p := in.Payments
	r := in.Refunds

	totalInDrawer := in.InitialCash.
		Add(p.CashPayments).
		Add(p.GiftCardNet()).
		Add(p.ReturnedCash).
		Add(p.CustomCashPayments).
		Add(r.PriorDayCash).
		Sub(r.SameDayCustomCash)

	expectedCash := in.InitialCash.
		Add(p.CashPayments).
		Add(p.ReturnedCash).
		Add(p.CustomCashPayments).
		Add(r.PriorDayCash).
		Sub(p.ExcessCash).
		Sub(r.SameDayCustomCash)

	finalTotal := in.Declaration.
		Add(p.GiftCardGross()).
		Sub(p.ExcessGiftCard)

	return DrawerResult{
		CashDrop: CashDrop{
			TotalInDrawer:        totalInDrawer,
			TotalCashDeclaration: in.Declaration,
			ExpectedCash:         expectedCash,
			InitialCash:          in.InitialCash,
			CashPayments:         p.CashPayments,
			GiftCardNetPayment:   p.GiftCardNet(),
			GiftCardGrossPayment: p.GiftCardGross(),
			ReturnedCash:         p.ReturnedCash,
			CustomCashPayments:   p.CustomCashPayments,
			PriorDayCashRefunds:  r.PriorDayCash,
			SameDayCashRefunds:   r.SameDayCash,
			SameDayCustomRefunds: r.SameDayCustomCash,
			ExcessCash:           p.ExcessCash,
			ExcessGiftCard:       p.ExcessGiftCard,
		},
		FinalTotal: finalTotal,
		OverShort:  in.Declaration.Sub(expectedCash),
	}
}

// SumCashLogs splits the cash logs of a window into the opening float and the
// declared takeouts.
func SumCashLogs(logs []ledger.CashLog) (InitialFund, Takeout) {
	initial := InitialFund{Missing: true}
	var takeout Takeout

	for _, l := range logs {
		switch l.Type {
		case ledger.CashInitial:
			initial.Missing = false
			initial.Total = initial.Total.Add(l.Total)
			initial.Denominations = initial.Denominations.Add(l.Denominations)
		case ledger.CashTakeout:
			takeout.Count++
			takeout.Total = takeout.Total.Add(l.Total)
			takeout.Denominations = takeout.Denominations.Add(l.Denominations)
		}
	}

	return initial, takeout
}
