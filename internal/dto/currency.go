package dto

import (
	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse describes one enabled currency to the form frontend.
type CurrencyResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Position string `json:"position"`
}

// ToCurrencyResponse converts a domain Currency descriptor.
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:     c.Code,
		Name:     c.Name,
		Symbol:   c.Symbol,
		Decimals: c.Decimals,
		Position: string(c.Position),
	}
}

// ToCurrencyResponseSlice converts a slice of descriptors.
func ToCurrencyResponseSlice(cs []domain.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, len(cs))
	for i, c := range cs {
		out[i] = ToCurrencyResponse(c)
	}
	return out
}

// RateResponse is the USD->currency exchange rate answer.
type RateResponse struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

// AmountLimits are the converted min/max hints for one currency. They are
// advisory only; the server never rejects a captured payment over them.
type AmountLimits struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}
