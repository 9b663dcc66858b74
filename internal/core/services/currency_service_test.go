package services_test

import (
	"testing"

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/computeralex/seventh-traditioner/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	svc *services.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.svc = services.NewCurrencyService(nil) // all supported currencies enabled
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode() {
	usd, err := suite.svc.GetCurrencyByCode("usd")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "USD", usd.Code)
	assert.Equal(suite.T(), "$", usd.Symbol)
	assert.Equal(suite.T(), 2, usd.Decimals)

	jpy, err := suite.svc.GetCurrencyByCode("JPY")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, jpy.Decimals)

	_, err = suite.svc.GetCurrencyByCode("XYZ")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrenciesSortedByName() {
	currencies := suite.svc.ListCurrencies()
	require.Len(suite.T(), currencies, 24)
	for i := 1; i < len(currencies); i++ {
		assert.LessOrEqual(suite.T(), currencies[i-1].Name, currencies[i].Name)
	}
}

func (suite *CurrencyServiceTestSuite) TestEnabledSubset() {
	svc := services.NewCurrencyService([]string{"usd", "EUR", "XXX"})
	currencies := svc.ListCurrencies()
	require.Len(suite.T(), currencies, 2)
	assert.True(suite.T(), svc.IsSupported("USD"))
	assert.True(suite.T(), svc.IsSupported("eur"))
	assert.False(suite.T(), svc.IsSupported("GBP"))
	assert.False(suite.T(), svc.IsSupported("XXX"))
}

func (suite *CurrencyServiceTestSuite) TestFormatAmount() {
	tests := []struct {
		amount   string
		code     string
		expected string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"1500", "JPY", "¥1,500"},
		{"1000000", "HUF", "1,000,000 Ft"},
		{"99.9", "SEK", "99.90 kr"},
		{"250", "EUR", "€250.00"},
		{"42", "TWD", "NT$42"},
	}
	for _, tc := range tests {
		amount, err := decimal.NewFromString(tc.amount)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), tc.expected, suite.svc.FormatAmount(amount, tc.code), "formatting %s %s", tc.amount, tc.code)
	}
}

func (suite *CurrencyServiceTestSuite) TestConvertFromUSDSimple() {
	usd := decimal.NewFromInt(10)
	rate := decimal.RequireFromString("0.9137")

	got, err := suite.svc.ConvertFromUSD(usd, rate, "EUR", domain.RoundSimple, domain.RoundNearest)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "9.14", got.StringFixed(2))

	up, err := suite.svc.ConvertFromUSD(usd, rate, "EUR", domain.RoundSimple, domain.RoundUp)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "9.14", up.StringFixed(2))

	down, err := suite.svc.ConvertFromUSD(usd, rate, "EUR", domain.RoundSimple, domain.RoundDown)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "9.13", down.StringFixed(2))
}

func (suite *CurrencyServiceTestSuite) TestConvertFromUSDSmart() {
	usd := decimal.NewFromInt(10)
	rate := decimal.NewFromInt(150) // 10 USD -> 1500 JPY exactly on the increment

	exact, err := suite.svc.ConvertFromUSD(usd, rate, "JPY", domain.RoundSmart, domain.RoundUp)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), exact.Equal(decimal.NewFromInt(1500)), "got %s", exact)

	// 10 USD at 151.3 = 1513, snaps to the 50-yen increment.
	rate = decimal.RequireFromString("151.3")
	up, err := suite.svc.ConvertFromUSD(usd, rate, "JPY", domain.RoundSmart, domain.RoundUp)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), up.Equal(decimal.NewFromInt(1550)), "got %s", up)

	down, err := suite.svc.ConvertFromUSD(usd, rate, "JPY", domain.RoundSmart, domain.RoundDown)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), down.Equal(decimal.NewFromInt(1500)), "got %s", down)

	nearest, err := suite.svc.ConvertFromUSD(usd, rate, "JPY", domain.RoundSmart, domain.RoundNearest)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), nearest.Equal(decimal.NewFromInt(1500)), "got %s", nearest)
}

func (suite *CurrencyServiceTestSuite) TestConvertFromUSDSmartDefaultIncrement() {
	// EUR has no special increment so smart rounding snaps to whole units.
	usd := decimal.NewFromInt(10)
	rate := decimal.RequireFromString("0.9137")

	up, err := suite.svc.ConvertFromUSD(usd, rate, "EUR", domain.RoundSmart, domain.RoundUp)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), up.Equal(decimal.NewFromInt(10)), "got %s", up)

	down, err := suite.svc.ConvertFromUSD(usd, rate, "EUR", domain.RoundSmart, domain.RoundDown)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), down.Equal(decimal.NewFromInt(9)), "got %s", down)
}

func (suite *CurrencyServiceTestSuite) TestConvertFromUSDRejectsBadInput() {
	_, err := suite.svc.ConvertFromUSD(decimal.NewFromInt(10), decimal.Zero, "EUR", domain.RoundSimple, domain.RoundNearest)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)

	_, err = suite.svc.ConvertFromUSD(decimal.NewFromInt(10), decimal.NewFromInt(1), "XYZ", domain.RoundSimple, domain.RoundNearest)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
