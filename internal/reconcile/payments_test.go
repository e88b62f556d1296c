package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
)

func TestClassifyPayments(t *testing.T) {
	ex := reconcile.ResolveExclusions([]ledger.Order{
		{TxnNumber: "VOID", Status: ledger.OrderVoid},
		{TxnNumber: "RET", Status: ledger.OrderReturn},
	}, []ledger.PaymentLog{
		{TxnNumber: "EXCH", Method: "RMES"},
	})

	payments := []ledger.PaymentLog{
		{TxnNumber: "T1", Method: "Cash", Amount: dec("112"), Status: ledger.PaymentSuccess},
		{TxnNumber: "T2", Method: "Card (Visa)", Amount: dec("300"), Status: ledger.PaymentSuccess},
		{TxnNumber: "T3", Method: "Card (Mastercard)", Amount: dec("150"), Status: ledger.PaymentSuccess},
		{TxnNumber: "T4", Method: "Card (Visa)", Amount: dec("50"), Status: ledger.PaymentSuccess},
		{TxnNumber: "T5", Method: "GCash", Amount: dec("75"), Status: ledger.PaymentSuccess},
		{
			TxnNumber: "T6", Method: "Gift Card", Amount: dec("500"), ExcessCash: dec("20"),
			ExcessGiftCardAmount: dec("30"), Status: ledger.PaymentSuccess,
		},
		{TxnNumber: "T7", Method: "Pay Later", CustomPaymentKey: "CUSTOM::c_paylater", Amount: dec("40"), Status: ledger.PaymentSuccess},
		{TxnNumber: "T8", Method: "Voucher", CustomPaymentKey: "CUSTOM::nc_voucher", Amount: dec("60"), Status: ledger.PaymentSuccess},
		{TxnNumber: "T9", Method: "Cash on Delivery (Lalamove)", Amount: dec("90"), Status: ledger.PaymentSuccess},
		{TxnNumber: "EXCH", Method: "RMES", Amount: dec("80"), Status: ledger.PaymentSuccess},
		{TxnNumber: "VOID", Method: "Cash", Amount: dec("999"), Status: ledger.PaymentSuccess},
		{TxnNumber: "RET", Method: "Cash", Amount: dec("45"), Status: ledger.PaymentSuccess},
		{TxnNumber: "T10", Method: "Cash", Amount: dec("10"), Status: ledger.PaymentVoid},
		{TxnNumber: "T11", Method: "Cash", Amount: dec("25"), Status: ledger.PaymentRefund},
		{TxnNumber: "GONE", Method: "Cash", Amount: dec("5"), Status: ledger.PaymentSuccess, Orphan: true},
	}

	got, figures, gaps := reconcile.ClassifyPayments(payments, ex)

	assert.Equal(t, 1, got.Cash.Count)
	assert.True(t, dec("112").Equal(got.Cash.Total))

	require.Len(t, got.NonCash.Cards.Details, 2)
	assert.Equal(t, "Mastercard", got.NonCash.Cards.Details[0].Method)
	assert.Equal(t, "Visa", got.NonCash.Cards.Details[1].Method)
	assert.Equal(t, 2, got.NonCash.Cards.Details[1].Count)
	assert.True(t, dec("350").Equal(got.NonCash.Cards.Details[1].Total))
	assert.True(t, dec("500").Equal(got.NonCash.Cards.Total))

	assert.True(t, dec("75").Equal(got.NonCash.EWallets.Total))
	assert.True(t, dec("500").Equal(got.NonCash.GiftCards.Total))
	assert.True(t, dec("90").Equal(got.CashOnDelivery.Total))
	assert.True(t, dec("40").Equal(got.Custom.Cash.Total))
	assert.True(t, dec("60").Equal(got.Custom.NonCash.Total))
	assert.Equal(t, 1, got.NonCash.Returns.Count)
	assert.True(t, dec("80").Equal(got.NonCash.Returns.Total))

	assert.True(t, dec("152").Equal(got.Summary.Cash.Total))
	assert.True(t, dec("1305").Equal(got.Summary.NonCash.Total))
	assert.True(t, dec("1457").Equal(got.Summary.Total.Total))
	assert.Equal(t, 12, got.Summary.NonVoidRefundCount)

	assert.True(t, dec("112").Equal(figures.CashPayments))
	assert.True(t, dec("40").Equal(figures.CustomCashPayments))
	assert.True(t, dec("45").Equal(figures.ReturnedCash))
	assert.True(t, dec("500").Equal(figures.GiftCardGross()))
	assert.True(t, dec("450").Equal(figures.GiftCardNet()))
	// Everything but the redemption, less the excess handed back.
	assert.True(t, dec("1327").Equal(figures.NetSales), figures.NetSales.String())

	require.Len(t, gaps, 1)
	assert.Equal(t, "GONE", gaps[0].TxnNumber)
}

func TestClassifyPayments_ChangeGiven(t *testing.T) {
	tests := []struct {
		name        string
		payment     ledger.PaymentLog
		declaration string
		wantGross   string
		wantNet     string
		wantSales   string
		wantDrawer  string
		wantFinal   string
	}{
		{
			name: "CashWithChange",
			payment: ledger.PaymentLog{
				TxnNumber: "T1", Method: "Cash", Amount: dec("200"), ExcessCash: dec("88"),
				Status: ledger.PaymentSuccess,
			},
			declaration: "1112",
			wantGross:   "0",
			wantNet:     "0",
			wantSales:   "112",
			wantDrawer:  "1200",
			wantFinal:   "1112",
		},
		{
			name: "GiftCardWithChange",
			payment: ledger.PaymentLog{
				TxnNumber: "T1", Method: "Gift Card", Amount: dec("500"), ExcessCash: dec("50"),
				Status: ledger.PaymentSuccess,
			},
			// 50 change paid out of the float.
			declaration: "950",
			wantGross:   "500",
			wantNet:     "450",
			wantSales:   "450",
			wantDrawer:  "1450",
			wantFinal:   "1450",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, figures, _ := reconcile.ClassifyPayments([]ledger.PaymentLog{tt.payment}, reconcile.Exclusions{})

			assert.True(t, dec(tt.wantGross).Equal(figures.GiftCardGross()), "gross %s", figures.GiftCardGross())
			assert.True(t, dec(tt.wantNet).Equal(figures.GiftCardNet()), "net %s", figures.GiftCardNet())
			assert.True(t, dec(tt.wantSales).Equal(figures.NetSales), "sales %s", figures.NetSales)

			got := reconcile.ReconcileDrawer(reconcile.DrawerInput{
				InitialCash: dec("1000"),
				Declaration: dec(tt.declaration),
				Payments:    figures,
			})

			assert.True(t, dec(tt.wantDrawer).Equal(got.CashDrop.TotalInDrawer), "in drawer %s", got.CashDrop.TotalInDrawer)
			assert.True(t, dec(tt.wantFinal).Equal(got.FinalTotal), "final %s", got.FinalTotal)
			assert.True(t, got.OverShort.IsZero(), "over/short %s", got.OverShort)
		})
	}
}
