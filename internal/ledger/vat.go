package ledger

import "github.com/shopspring/decimal"

// VATRate is the VAT included in every vatable price.
var VATRate = decimal.New(12, -2)

var vatDivisor = decimal.NewFromInt(1).Add(VATRate)

// BackOutVAT splits a VAT-inclusive price into its vatable base and VAT, rounded to centavos.
// The two parts always sum back to price.
func BackOutVAT(price decimal.Decimal) (vatable, vat decimal.Decimal) {
	vatable = price.Div(vatDivisor).Round(2)
	vat = price.Sub(vatable)

	return vatable, vat
}
