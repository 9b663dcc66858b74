package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	"github.com/shopspring/decimal"
)

// USDRateSource fetches the full USD-relative rate map in one call.
type USDRateSource interface {
	FetchUSDRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// ExchangeRateService caches the USD rate map from an external source. Rates
// drive advisory amount hints only, so a stale map within the TTL window is
// acceptable.
type ExchangeRateService struct {
	source USDRateSource
	ttl    time.Duration

	mu        sync.RWMutex
	rates     map[string]decimal.Decimal
	fetchedAt time.Time
}

// NewExchangeRateService creates an ExchangeRateService with the given cache
// TTL. A non-positive TTL defaults to 24 hours, matching the source's own
// publication cadence.
func NewExchangeRateService(source USDRateSource, ttl time.Duration) *ExchangeRateService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &ExchangeRateService{source: source, ttl: ttl}
}

// GetRate returns the USD->currency rate. USD itself is always 1 and never
// touches the source.
func (s *ExchangeRateService) GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	code := strings.ToUpper(currencyCode)
	if code == "USD" {
		return decimal.NewFromInt(1), nil
	}

	rates, err := s.currentRates(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	rate, ok := rates[code]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no exchange rate for %s", apperrors.ErrNotFound, code)
	}
	return rate, nil
}

func (s *ExchangeRateService) currentRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	s.mu.RLock()
	if s.rates != nil && time.Since(s.fetchedAt) < s.ttl {
		rates := s.rates
		s.mu.RUnlock()
		return rates, nil
	}
	s.mu.RUnlock()

	rates, err := s.source.FetchUSDRates(ctx)
	if err != nil {
		// Serve the expired map rather than fail when the source is down.
		s.mu.RLock()
		stale := s.rates
		s.mu.RUnlock()
		if stale != nil {
			return stale, nil
		}
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}

	s.mu.Lock()
	s.rates = rates
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return rates, nil
}
