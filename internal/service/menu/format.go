package menu

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatAmount renders a monetary amount at currency display scale,
// rounding half up. Call sites prepend the ₦ symbol.
func formatAmount(v decimal.Decimal) string {
	return v.StringFixed(0)
}

// sanitizeDigits strips every non-digit rune from free-text numeric input.
// An empty result means the input was not a usable amount or quantity.
func sanitizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

// scratchDecimal parses a decimal previously written to session scratch
// data, falling back to def when the key is absent or unreadable.
func scratchDecimal(raw, def string) decimal.Decimal {
	if raw == "" {
		raw = def
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		v, _ = decimal.NewFromString(def)
	}
	return v
}
