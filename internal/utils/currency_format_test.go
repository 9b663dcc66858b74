package utils_test

import (
	"testing"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/computeralex/seventh-traditioner/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmountGrouping(t *testing.T) {
	usd := domain.Currency{Code: "USD", Symbol: "$", Decimals: 2, Position: domain.SymbolBefore}
	jpy := domain.Currency{Code: "JPY", Symbol: "¥", Decimals: 0, Position: domain.SymbolBefore}
	sek := domain.Currency{Code: "SEK", Symbol: "kr", Decimals: 2, Position: domain.SymbolAfter}

	tests := []struct {
		amount   string
		currency domain.Currency
		expected string
	}{
		{"0", usd, "$0.00"},
		{"5", usd, "$5.00"},
		{"999.99", usd, "$999.99"},
		{"1000", usd, "$1,000.00"},
		{"1234567.89", usd, "$1,234,567.89"},
		{"-1234.5", usd, "$-1,234.50"},
		{"1500", jpy, "¥1,500"},
		{"123456789", jpy, "¥123,456,789"},
		{"99.9", sek, "99.90 kr"},
	}
	for _, tc := range tests {
		got := utils.FormatAmount(decimal.RequireFromString(tc.amount), tc.currency)
		assert.Equal(t, tc.expected, got, "formatting %s %s", tc.amount, tc.currency.Code)
	}
}
