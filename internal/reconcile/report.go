package reconcile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

// Report is the assembled X-Read or Z-Read snapshot. Field names are consumed by
// printers and accreditation exporters and must stay stable.
type Report struct {
	Type        ledger.ReadType `json:"type"`
	StoreCode   string          `json:"storeCode"`
	EmployeeID  string          `json:"employeeId,omitempty"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Partial     bool            `json:"partial"`

	Payments     Payments        `json:"payments"`
	Discounts    Discounts       `json:"discounts"`
	VAT          VAT             `json:"vat"`
	Department   Department      `json:"department"`
	InitialFund  InitialFund     `json:"initialFund"`
	Takeout      Takeout         `json:"takeout"`
	CashDrop     CashDrop        `json:"cashDrop"`
	FinalTotal   decimal.Decimal `json:"FINAL_TOTAL"`
	OverShort    decimal.Decimal `json:"OVER_SHORT"`
	CashierAudit CashierAudit    `json:"cashierAudit"`
	SINum        NumberRange     `json:"SI_NUM"`
	VoidNum      NumberRange     `json:"VOID_NUM"`
	Sales        Sales           `json:"SALES"`

	AccumulatedSales *AccumulatedSales `json:"ACCUMULATED_SALES,omitempty"`
	ZReadLogsCount   *int              `json:"zReadLogsCount,omitempty"`

	Gaps []Gap `json:"-"`
}

// Tally is a count and total pair.
type Tally struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

func (t *Tally) add(amount decimal.Decimal) {
	t.Count++
	t.Total = t.Total.Add(amount)
}

func (t Tally) plus(o Tally) Tally {
	return Tally{Count: t.Count + o.Count, Total: t.Total.Add(o.Total)}
}

// MethodTally is a Tally for one brand, provider, courier or custom method.
type MethodTally struct {
	Method string `json:"method"`
	Tally
}

// MethodGroup is a bucket total plus its per-method breakdown.
type MethodGroup struct {
	Tally
	Details []MethodTally `json:"details"`
}

type Payments struct {
	Cash           Tally          `json:"cash"`
	CashOnDelivery MethodGroup    `json:"cashOnDelivery"`
	NonCash        NonCash        `json:"nonCash"`
	Custom         CustomPayments `json:"custom"`
	Summary        PaymentSummary `json:"summary"`
}

type NonCash struct {
	Cards     MethodGroup `json:"cards"`
	EWallets  MethodGroup `json:"eWallets"`
	GiftCards MethodGroup `json:"giftCards"`
	Returns   Tally       `json:"returns"`
	Others    MethodGroup `json:"others"`
}

type CustomPayments struct {
	Cash    MethodGroup `json:"cash"`
	NonCash MethodGroup `json:"nonCash"`
}

type PaymentSummary struct {
	Cash               Tally `json:"cash"`
	NonCash            Tally `json:"nonCash"`
	Total              Tally `json:"total"`
	NonVoidRefundCount int   `json:"nonVoidRefundCount"`
}

type Discounts struct {
	Items   []DiscountItem  `json:"DISCOUNT_ITEMS"`
	Regular []DiscountLine  `json:"REGULAR_DISCOUNTS"`
	Special []DiscountLine  `json:"SPECIAL_DISCOUNTS"`
	VAT     []DiscountLine  `json:"VAT_DISCOUNTS"`
	Summary DiscountSummary `json:"summary"`
}

// DiscountItem is one non-VAT discount application, printed verbatim.
type DiscountItem struct {
	TxnNumber    string          `json:"txnNumber"`
	Discount     string          `json:"discount"`
	ReceiptLabel string          `json:"receiptLabel"`
	Amount       decimal.Decimal `json:"amount"`
}

// DiscountLine groups discount applications sharing a receipt label.
type DiscountLine struct {
	ReceiptLabel string `json:"receiptLabel"`
	Tally
}

type DiscountSummary struct {
	TotalItemDiscounts    Tally `json:"totalItemDiscounts"`
	TotalVATDiscounts     Tally `json:"totalVatDiscounts"`
	TotalRegularDiscounts Tally `json:"totalRegularDiscounts"`
	TotalSpecialDiscounts Tally `json:"totalSpecialDiscounts"`
}

type VAT struct {
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"total"`
	Details VATDetails      `json:"VAT_DETAILS"`
}

type VATDetails struct {
	VatableSales decimal.Decimal `json:"vatableSales"`
	VATAmount    decimal.Decimal `json:"vatAmount"`
	VATExempt    decimal.Decimal `json:"vatExempt"`
	VATZeroRated decimal.Decimal `json:"vatZeroRated"`
	NonVAT       decimal.Decimal `json:"nonVat"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

type Department struct {
	Categories []CategoryLine `json:"CATEGORIES"`
	Summary    Tally          `json:"summary"`
}

// CategoryLine is sold-minus-returned for one category. Count and Total go negative
// when returns exceed in-window sales.
type CategoryLine struct {
	Category string `json:"category"`
	Tally
	VATAmount decimal.Decimal `json:"vatAmount"`
}

type InitialFund struct {
	Total         decimal.Decimal      `json:"total"`
	Missing       bool                 `json:"missing"`
	Denominations ledger.Denominations `json:"denominations"`
}

type Takeout struct {
	Total         decimal.Decimal      `json:"total"`
	Count         int                  `json:"count"`
	Denominations ledger.Denominations `json:"denominations"`
}

type CashDrop struct {
	TotalInDrawer        decimal.Decimal `json:"TOTAL_IN_DRAWER"`
	TotalCashDeclaration decimal.Decimal `json:"TOTAL_CASH_DECLARATION"`
	ExpectedCash         decimal.Decimal `json:"EXPECTED_CASH"`
	InitialCash          decimal.Decimal `json:"INITIAL_CASH"`
	CashPayments         decimal.Decimal `json:"CASH_PAYMENTS"`
	GiftCardNetPayment   decimal.Decimal `json:"GIFT_CARD_NET_PAYMENT"`
	GiftCardGrossPayment decimal.Decimal `json:"GIFT_CARD_GROSS_PAYMENT"`
	ReturnedCash         decimal.Decimal `json:"RETURNED_CASH"`
	CustomCashPayments   decimal.Decimal `json:"CUSTOM_CASH_PAYMENTS"`
	PriorDayCashRefunds  decimal.Decimal `json:"PRIOR_DAY_CASH_REFUNDS"`
	SameDayCashRefunds   decimal.Decimal `json:"SAME_DAY_CASH_REFUNDS"`
	SameDayCustomRefunds decimal.Decimal `json:"SAME_DAY_CUSTOM_CASH_REFUNDS"`
	ExcessCash           decimal.Decimal `json:"EXCESS_CASH"`
	ExcessGiftCard       decimal.Decimal `json:"EXCESS_GIFT_CARD"`
}

type CashierAudit struct {
	NumItemsSold        int             `json:"NUM_ITEMS_SOLD"`
	NumSalesTxn         int             `json:"NUM_SALES_TXN"`
	NumNonSalesTxn      int             `json:"NUM_NON_SALES_TXN"`
	NumVoidTxn          int             `json:"NUM_VOID_TXN"`
	VoidTxnAmount       decimal.Decimal `json:"VOID_TXN_AMOUNT"`
	NumRefundTxn        int             `json:"NUM_REFUND_TXN"`
	RefundTxnAmount     decimal.Decimal `json:"REFUND_TXN_AMOUNT"`
	NumReturnTxn        int             `json:"NUM_RETURN_TXN"`
	ReturnTxnAmount     decimal.Decimal `json:"RETURN_TXN_AMOUNT"`
	TotalDiscountAmount decimal.Decimal `json:"TOTAL_DISCOUNT_AMOUNT"`
	AveBasket           decimal.Decimal `json:"AVE_BASKET"`
}

type NumberRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Sales struct {
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
}

type AccumulatedSales struct {
	Old decimal.Decimal `json:"old"`
	New decimal.Decimal `json:"new"`
}

// Gap is a data-integrity problem found while assembling a report.
type Gap struct {
	TxnNumber string
	Reason    string
}
