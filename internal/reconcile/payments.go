package reconcile

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

// PaymentFigures are the payment-derived amounts the drawer and sales blocks consume.
type PaymentFigures struct {
	CashPayments       decimal.Decimal
	CustomCashPayments decimal.Decimal
	GiftCardAmount     decimal.Decimal
	// ExcessCash and ExcessGiftCard are the change handed back across every tender.
	ExcessCash     decimal.Decimal
	ExcessGiftCard decimal.Decimal
	// GiftCardExcessCash and GiftCardExcessGiftCard are the change handed back on
	// gift card tenders only.
	GiftCardExcessCash     decimal.Decimal
	GiftCardExcessGiftCard decimal.Decimal
	// ReturnedCash is cash paid on transactions that were later returned.
	ReturnedCash decimal.Decimal
	NetSales     decimal.Decimal
}

// GiftCardGross is the gift card value consumed. Tender amounts include any change
// handed back.
func (f PaymentFigures) GiftCardGross() decimal.Decimal {
	return f.GiftCardAmount
}

// GiftCardNet is the gift card value applied to sales: GiftCardGross less the change
// handed back on gift card tenders as cash or new gift cards.
func (f PaymentFigures) GiftCardNet() decimal.Decimal {
	return f.GiftCardGross().Sub(f.GiftCardExcessCash).Sub(f.GiftCardExcessGiftCard)
}

type methodBuckets map[string]*Tally

func (b methodBuckets) add(method string, amount decimal.Decimal) {
	t, ok := b[method]
	if !ok {
		t = &Tally{}
		b[method] = t
	}

	t.add(amount)
}

func (b methodBuckets) group() MethodGroup {
	g := MethodGroup{Details: []MethodTally{}}
	for method, t := range b {
		g.Details = append(g.Details, MethodTally{Method: method, Tally: *t})
		g.Tally = g.Tally.plus(*t)
	}

	slices.SortFunc(g.Details, func(a, b MethodTally) int {
		return cmp.Compare(a.Method, b.Method)
	})

	return g
}

// ClassifyPayments buckets the success payments of a window by method family.
// Payments of voided, refunded or returned transactions are left out of every
// bucket; cash paid on a returned transaction is reported as ReturnedCash instead.
// Orphan payments are skipped and reported as gaps.
func ClassifyPayments(payments []ledger.PaymentLog, ex Exclusions) (Payments, PaymentFigures, []Gap) {
	var (
		out     Payments
		figures PaymentFigures
		gaps    []Gap
	)

	excluded := ex.VoidRefundedReturned()

	cod := methodBuckets{}
	cards := methodBuckets{}
	eWallets := methodBuckets{}
	giftCards := methodBuckets{}
	others := methodBuckets{}
	customCash := methodBuckets{}
	customNonCash := methodBuckets{}

	for _, p := range payments {
		if p.Orphan {
			gaps = append(gaps, Gap{TxnNumber: p.TxnNumber, Reason: "payment has no transaction"})
			continue
		}

		if p.Status != ledger.PaymentVoid && p.Status != ledger.PaymentRefund {
			out.Summary.NonVoidRefundCount++
		}

		if p.Status != ledger.PaymentSuccess {
			continue
		}

		kind := p.Kind()

		if excluded.Has(p.TxnNumber) {
			if kind.Type == ledger.MethodCash && ex.Returned.Has(p.TxnNumber) {
				figures.ReturnedCash = figures.ReturnedCash.Add(p.Amount)
			}

			continue
		}

		figures.ExcessCash = figures.ExcessCash.Add(p.ExcessCash)
		figures.ExcessGiftCard = figures.ExcessGiftCard.Add(p.ExcessGiftCardAmount)

		if kind.Type != ledger.MethodRedemption {
			figures.NetSales = figures.NetSales.Add(p.Amount.Sub(p.ExcessCash).Sub(p.ExcessGiftCardAmount))
		}

		switch kind.Type {
		case ledger.MethodCash:
			out.Cash.add(p.Amount)
			figures.CashPayments = figures.CashPayments.Add(p.Amount)
		case ledger.MethodCustomCash:
			customCash.add(kind.Detail, p.Amount)
			figures.CustomCashPayments = figures.CustomCashPayments.Add(p.Amount)
		case ledger.MethodCustomNonCash:
			customNonCash.add(kind.Detail, p.Amount)
		case ledger.MethodCard:
			cards.add(kind.Detail, p.Amount)
		case ledger.MethodEWallet:
			eWallets.add(kind.Detail, p.Amount)
		case ledger.MethodGiftCard, ledger.MethodCustomGiftCard:
			giftCards.add(kind.String(), p.Amount)
			figures.GiftCardAmount = figures.GiftCardAmount.Add(p.Amount)
			figures.GiftCardExcessCash = figures.GiftCardExcessCash.Add(p.ExcessCash)
			figures.GiftCardExcessGiftCard = figures.GiftCardExcessGiftCard.Add(p.ExcessGiftCardAmount)
		case ledger.MethodCashOnDelivery:
			cod.add(kind.Detail, p.Amount)
		case ledger.MethodRedemption:
			out.NonCash.Returns.add(p.Amount)
		default:
			others.add(kind.Detail, p.Amount)
		}
	}

	out.CashOnDelivery = cod.group()
	out.NonCash.Cards = cards.group()
	out.NonCash.EWallets = eWallets.group()
	out.NonCash.GiftCards = giftCards.group()
	out.NonCash.Others = others.group()
	out.Custom.Cash = customCash.group()
	out.Custom.NonCash = customNonCash.group()

	out.Summary.Cash = out.Cash.plus(out.Custom.Cash.Tally)
	out.Summary.NonCash = out.NonCash.Cards.Tally.
		plus(out.NonCash.EWallets.Tally).
		plus(out.NonCash.GiftCards.Tally).
		plus(out.NonCash.Returns).
		plus(out.NonCash.Others.Tally).
		plus(out.CashOnDelivery.Tally).
		plus(out.Custom.NonCash.Tally)
	out.Summary.Total = out.Summary.Cash.plus(out.Summary.NonCash)

	return out, figures, gaps
}
