package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// TransactionType is the kind of sellable event a Transaction records.
type TransactionType string

const (
	TypeRegular TransactionType = "regular"
	TypeVoid    TransactionType = "void"
	TypeRefund  TransactionType = "refund"
	TypeReturn  TransactionType = "return"
)

// Transaction is one row per sellable event. Rows are never mutated.
type Transaction struct {
	TxnNumber         string
	SINumber          string // blank for non-invoiced events
	VoidNumber        string // blank unless Type is void
	OriginalTxnNumber string // set on refund and return rows
	Amount            decimal.Decimal
	Type              TransactionType
	StoreCode         string
	EmployeeID        string
	TransactionDate   time.Time
	CreatedAt         time.Time
}

// PaymentStatus is the outcome recorded on a PaymentLog.
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentVoid    PaymentStatus = "void"
	PaymentRefund  PaymentStatus = "refund"
)

// PaymentLog is one payment instrument applied to a transaction.
type PaymentLog struct {
	ID                   int64
	TxnNumber            string
	StoreCode            string
	Method               string
	CustomPaymentKey     string
	Amount               decimal.Decimal
	ExcessCash           decimal.Decimal
	ExcessGiftCardAmount decimal.Decimal
	Status               PaymentStatus
	PaymentDate          time.Time
	CreatedAt            time.Time

	// Orphan is set by the store when no Transaction row exists for TxnNumber.
	Orphan bool
}

// Kind classifies the payment once; see Classify.
func (p PaymentLog) Kind() PaymentMethodKind {
	return Classify(p.Method, p.CustomPaymentKey)
}

// DiscountLog is one discount application.
type DiscountLog struct {
	ID           int64
	TxnNumber    string
	Discount     string // code: SCD, PWD, VAT, VATZR, PROMOCODE...
	ReceiptLabel string
	Amount       decimal.Decimal
	DiscountDate time.Time
	CreatedAt    time.Time
}

// TransactionAmount holds the VAT decomposition of one Transaction.
type TransactionAmount struct {
	TxnNumber    string
	VatableSale  decimal.Decimal
	VATAmount    decimal.Decimal
	VATExempt    decimal.Decimal
	VATZeroRated decimal.Decimal
	NonVAT       decimal.Decimal
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
}

// OrderStatus is the status of an item line.
type OrderStatus string

const (
	OrderPaid   OrderStatus = "paid"
	OrderVoid   OrderStatus = "void"
	OrderRefund OrderStatus = "refund"
	OrderReturn OrderStatus = "return"
)

// VATType is the tax treatment of an item line.
type VATType string

const (
	VATable     VATType = "vatable"
	VATExempt   VATType = "vat-exempt"
	VATZeroRate VATType = "zero-rated"
	NonVAT      VATType = "non-vat"
)

// Order is one item line. Voids, refunds and returns append new lines carrying the
// original TxnNumber and the corresponding status.
type Order struct {
	ID        int64
	TxnNumber string
	ItemID    string
	Name      string
	Category  string
	Quantity  int
	UnitPrice decimal.Decimal
	Status    OrderStatus
	VATType   VATType
	OrderDate time.Time
	CreatedAt time.Time
}

// LineTotal is UnitPrice × Quantity.
func (o Order) LineTotal() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// CashLogType distinguishes the opening float from the end-of-shift declaration.
type CashLogType string

const (
	CashInitial CashLogType = "initial"
	CashTakeout CashLogType = "cash takeout"
)

// Shift is the register shift a cash log belongs to.
type Shift string

const (
	ShiftOpening Shift = "OPENING"
	ShiftClosing Shift = "CLOSING"
)

// CashLog records a counted cash float.
type CashLog struct {
	ID            uuid.UUID
	Type          CashLogType
	Shift         Shift
	Denominations Denominations
	Total         decimal.Decimal
	EmployeeID    string
	BranchCode    string
	CashDate      time.Time
	CreatedAt     time.Time
}

// ReadType is the kind of end-of-shift/end-of-day read.
type ReadType string

const (
	XRead ReadType = "x-read"
	ZRead ReadType = "z-read"
)

// ReadLog is the audit row of a completed read.
type ReadLog struct {
	ID         uuid.UUID
	Type       ReadType
	EmployeeID string
	StoreCode  string
	ReadDate   time.Time
}

// ActivityLog describes who triggered an action.
type ActivityLog struct {
	ID           uuid.UUID
	ActivityID   int64
	EmployeeID   string
	EmployeeName string
	StoreCode    string
	Action       string
	Description  string
	CreatedAt    time.Time
}
