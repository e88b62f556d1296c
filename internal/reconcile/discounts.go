package reconcile

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

type discountClass int

const (
	discountRegular discountClass = iota
	discountSpecial
	discountVAT
)

var (
	vatDiscountCodes = map[string]struct{}{
		"VAT":    {},
		"VATZR":  {},
		"VATEX":  {},
		"VAT EX": {},
		"DPLMTS": {},
	}
	specialDiscountCodes = map[string]struct{}{
		"SCD":    {},
		"SCD-5%": {},
		"PWD":    {},
		"PNSTMD": {},
	}
)

func classifyDiscount(code string) discountClass {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := vatDiscountCodes[code]; ok {
		return discountVAT
	}

	if _, ok := specialDiscountCodes[code]; ok {
		return discountSpecial
	}

	return discountRegular
}

type discountKey struct {
	class discountClass
	label string
}

// ClassifyDiscounts groups the discount applications of a window by receipt label.
// Discounts of voided, refunded, returned or redeemed transactions are left out.
func ClassifyDiscounts(discounts []ledger.DiscountLog, ex Exclusions) Discounts {
	out := Discounts{
		Items:   []DiscountItem{},
		Regular: []DiscountLine{},
		Special: []DiscountLine{},
		VAT:     []DiscountLine{},
	}

	excluded := ex.NonSales()
	groups := map[discountKey]*Tally{}

	for _, d := range discounts {
		if excluded.Has(d.TxnNumber) {
			continue
		}

		class := classifyDiscount(d.Discount)

		label := d.ReceiptLabel
		if label == "" {
			label = d.Discount
		}

		key := discountKey{class: class, label: label}
		t, ok := groups[key]
		if !ok {
			t = &Tally{}
			groups[key] = t
		}

		t.add(d.Amount)

		if class == discountVAT {
			out.Summary.TotalVATDiscounts.add(d.Amount)
			continue
		}

		out.Summary.TotalItemDiscounts.add(d.Amount)
		out.Items = append(out.Items, DiscountItem{
			TxnNumber:    d.TxnNumber,
			Discount:     d.Discount,
			ReceiptLabel: label,
			Amount:       d.Amount,
		})

		if class == discountSpecial {
			out.Summary.TotalSpecialDiscounts.add(d.Amount)
		} else {
			out.Summary.TotalRegularDiscounts.add(d.Amount)
		}
	}

	for key, t := range groups {
		line := DiscountLine{ReceiptLabel: key.label, Tally: *t}

		switch key.class {
		case discountVAT:
			out.VAT = append(out.VAT, line)
		case discountSpecial:
			out.Special = append(out.Special, line)
		default:
			out.Regular = append(out.Regular, line)
		}
	}

	byLabel := func(a, b DiscountLine) int { return cmp.Compare(a.ReceiptLabel, b.ReceiptLabel) }
	slices.SortFunc(out.VAT, byLabel)
	slices.SortFunc(out.Special, byLabel)
	slices.SortFunc(out.Regular, byLabel)

	return out
}
