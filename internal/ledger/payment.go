package ledger

import (
	"strings"
)

// MethodType is the closed set of payment method families.
type MethodType int

const (
	MethodOther MethodType = iota
	MethodCash
	MethodCard
	MethodEWallet
	MethodGiftCard
	MethodCashOnDelivery
	MethodCustomCash
	MethodCustomNonCash
	MethodCustomGiftCard
	MethodRedemption
)

func (t MethodType) String() string {
	switch t {
	case MethodCash:
		return "cash"
	case MethodCard:
		return "card"
	case MethodEWallet:
		return "e-wallet"
	case MethodGiftCard:
		return "gift-card"
	case MethodCashOnDelivery:
		return "cash-on-delivery"
	case MethodCustomCash:
		return "custom-cash"
	case MethodCustomNonCash:
		return "custom-non-cash"
	case MethodCustomGiftCard:
		return "custom-gift-card"
	case MethodRedemption:
		return "redemption"
	}

	return "other"
}

// RedemptionMethod is the label of the exchange/return-credit settlement method.
const RedemptionMethod = "RMES"

const (
	customPrefix         = "CUSTOM::"
	customCashPrefix     = customPrefix + "c_"
	customNonCashPrefix  = customPrefix + "nc_"
	customGiftCardPrefix = customPrefix + "gc_"
)

var eWalletProviders = map[string]struct{}{
	"gcash":      {},
	"maya":       {},
	"paymaya":    {},
	"grabpay":    {},
	"shopeepay":  {},
	"wechat pay": {},
	"alipay":     {},
}

// PaymentMethodKind is a payment method resolved once from its raw label and key.
// Detail carries the brand, provider, courier or custom key where the family has one.
type PaymentMethodKind struct {
	Type   MethodType
	Detail string
}

// Cash reports whether the tender lands in the drawer as cash.
func (k PaymentMethodKind) Cash() bool {
	return k.Type == MethodCash || k.Type == MethodCustomCash
}

// GiftCard reports whether the tender is a gift card, built-in or custom.
func (k PaymentMethodKind) GiftCard() bool {
	return k.Type == MethodGiftCard || k.Type == MethodCustomGiftCard
}

func (k PaymentMethodKind) String() string {
	if k.Detail == "" {
		return k.Type.String()
	}

	return k.Type.String() + "(" + k.Detail + ")"
}

// Classify maps a raw method label and custom payment key to its kind.
// The custom key wins over the label: custom methods carry free-text labels.
func Classify(method, customKey string) PaymentMethodKind {
	switch {
	case strings.HasPrefix(customKey, customCashPrefix):
		return PaymentMethodKind{Type: MethodCustomCash, Detail: customKey}
	case strings.HasPrefix(customKey, customNonCashPrefix):
		return PaymentMethodKind{Type: MethodCustomNonCash, Detail: customKey}
	case strings.HasPrefix(customKey, customGiftCardPrefix):
		return PaymentMethodKind{Type: MethodCustomGiftCard, Detail: customKey}
	}

	label := strings.TrimSpace(method)
	lower := strings.ToLower(label)

	switch {
	case lower == "cash":
		return PaymentMethodKind{Type: MethodCash}
	case label == RedemptionMethod:
		return PaymentMethodKind{Type: MethodRedemption}
	case lower == "gift card" || lower == "giftcard":
		return PaymentMethodKind{Type: MethodGiftCard}
	}

	if family, detail, ok := splitLabel(label); ok {
		switch strings.ToLower(family) {
		case "card":
			return PaymentMethodKind{Type: MethodCard, Detail: detail}
		case "e-wallet", "ewallet":
			return PaymentMethodKind{Type: MethodEWallet, Detail: detail}
		case "cash on delivery", "cod":
			return PaymentMethodKind{Type: MethodCashOnDelivery, Detail: detail}
		case "gift card":
			return PaymentMethodKind{Type: MethodGiftCard, Detail: detail}
		}
	}

	if _, ok := eWalletProviders[lower]; ok {
		return PaymentMethodKind{Type: MethodEWallet, Detail: label}
	}

	return PaymentMethodKind{Type: MethodOther, Detail: label}
}

// splitLabel splits "Family (Detail)".
func splitLabel(label string) (string, string, bool) {
	open := strings.Index(label, "(")
	if open <= 0 || !strings.HasSuffix(label, ")") {
		return "", "", false
	}

	return strings.TrimSpace(label[:open]), strings.TrimSpace(label[open+1 : len(label)-1]), true
}
