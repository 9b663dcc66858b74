package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExchangeRateSvcFacade supplies USD-relative exchange rates. Rates are
// fetched from an external source and cached; lookups may therefore block on
// a network call and can fail outright when the source is down.
type ExchangeRateSvcFacade interface {
	// GetRate returns the USD->currency rate. USD itself is always 1.
	GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error)
}
