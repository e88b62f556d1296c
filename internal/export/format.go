package export

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Amount formats a peso amount with thousands separators and two decimals.
func Amount(d decimal.Decimal) string {
	return printer.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

// Count formats an integer with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}
