package utils

import (
	"strings"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount the way the receipt and admin list show it:
// currency symbol plus the amount grouped with commas, using the currency's
// decimal places and symbol position.
// Example: 1234.5 USD -> "$1,234.50"; 1500 JPY -> "¥1,500".
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	fixed := amount.StringFixed(int32(currency.Decimals))
	grouped := groupThousands(fixed)
	if currency.Position == domain.SymbolAfter {
		return grouped + " " + currency.Symbol
	}
	return currency.Symbol + grouped
}

// groupThousands inserts comma separators into the integer part of a fixed
// decimal string. Grouping is fixed (comma/period) as in the original, not
// locale-dependent.
func groupThousands(fixed string) string {
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
