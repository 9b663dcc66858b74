package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	"github.com/computeralex/seventh-traditioner/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRateSource counts fetches and can be made to fail.
type stubRateSource struct {
	rates   map[string]decimal.Decimal
	err     error
	fetches int
}

func (s *stubRateSource) FetchUSDRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	s.fetches++
	if s.err != nil {
		return nil, s.err
	}
	return s.rates, nil
}

func TestGetRateUSDIsAlwaysOne(t *testing.T) {
	source := &stubRateSource{err: fmt.Errorf("should not be called")}
	svc := services.NewExchangeRateService(source, time.Hour)

	rate, err := svc.GetRate(context.Background(), "usd")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
	assert.Zero(t, source.fetches)
}

func TestGetRateCachesWithinTTL(t *testing.T) {
	source := &stubRateSource{rates: map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.91"),
		"JPY": decimal.NewFromInt(150),
	}}
	svc := services.NewExchangeRateService(source, time.Hour)

	for i := 0; i < 3; i++ {
		rate, err := svc.GetRate(context.Background(), "EUR")
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("0.91")))
	}
	assert.Equal(t, 1, source.fetches)

	rate, err := svc.GetRate(context.Background(), "jpy")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 1, source.fetches)
}

func TestGetRateUnknownCurrency(t *testing.T) {
	source := &stubRateSource{rates: map[string]decimal.Decimal{"EUR": decimal.NewFromInt(1)}}
	svc := services.NewExchangeRateService(source, time.Hour)

	_, err := svc.GetRate(context.Background(), "XYZ")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetRateServesStaleMapWhenSourceFails(t *testing.T) {
	source := &stubRateSource{rates: map[string]decimal.Decimal{"EUR": decimal.NewFromInt(1)}}
	svc := services.NewExchangeRateService(source, time.Nanosecond) // immediate expiry

	_, err := svc.GetRate(context.Background(), "EUR")
	require.NoError(t, err)

	source.err = fmt.Errorf("cdn down")
	time.Sleep(time.Millisecond)

	rate, err := svc.GetRate(context.Background(), "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestGetRateFailsWithoutAnyMap(t *testing.T) {
	source := &stubRateSource{err: fmt.Errorf("cdn down")}
	svc := services.NewExchangeRateService(source, time.Hour)

	_, err := svc.GetRate(context.Background(), "EUR")
	assert.Error(t, err)
}
