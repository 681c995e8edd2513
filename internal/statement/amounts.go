package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CleanAmount converts strings like "$1,234.56", "+$20" or "($15.00)" to a decimal.
//
// Everything except digits, '.' and '-' is discarded. A value wrapped in
// parentheses is negative whatever sign remains. Unparsable input is zero.
func CleanAmount(raw string) decimal.Decimal {
	negative := strings.Contains(raw, "(") && strings.Contains(raw, ")")

	stripped := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)

	d, err := decimal.NewFromString(stripped)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return d.Abs().Neg()
	}
	return d
}

// applyIndicator forces the sign of amount from a DR/CR style flag.
// CR wins over DR when a flag carries both.
func applyIndicator(amount decimal.Decimal, flag string) decimal.Decimal {
	f := strings.ToUpper(strings.TrimSpace(flag))
	switch {
	case strings.Contains(f, "CR"):
		return amount.Abs()
	case strings.Contains(f, "DR"):
		return amount.Abs().Neg()
	default:
		return amount
	}
}
