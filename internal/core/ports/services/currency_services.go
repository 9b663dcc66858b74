package services

import (
	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencySvcFacade exposes the static currency descriptor table and the
// conversion/rounding rules. All operations are pure; there is no
// context.Context because nothing blocks.
type CurrencySvcFacade interface {
	// GetCurrencyByCode returns the descriptor for a supported currency,
	// or apperrors.ErrNotFound for anything outside the supported set.
	GetCurrencyByCode(code string) (*domain.Currency, error)

	// ListCurrencies returns the administrator-enabled descriptors, sorted
	// by name as the form shows them.
	ListCurrencies() []domain.Currency

	// IsSupported reports whether the code is in the enabled set.
	IsSupported(code string) bool

	// FormatAmount renders an amount with the currency's symbol, decimal
	// places and symbol position.
	FormatAmount(amount decimal.Decimal, code string) string

	// ConvertFromUSD applies an exchange rate to a USD amount and rounds per
	// the mode and direction. Pure function of its inputs; the rate comes
	// from the exchange-rate service.
	ConvertFromUSD(usdAmount, rate decimal.Decimal, code string, mode domain.RoundingMode, direction domain.RoundingDirection) (decimal.Decimal, error)
}
