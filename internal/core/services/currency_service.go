package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/computeralex/seventh-traditioner/internal/utils"
	"github.com/shopspring/decimal"
)

// supportedCurrencies is the full descriptor table. Administrators can enable
// a subset of it; the table itself never changes at runtime.
var supportedCurrencies = map[string]domain.Currency{
	"AUD": {Code: "AUD", Name: "Australian Dollar", Symbol: "$", Decimals: 2, Position: domain.SymbolBefore},
	"BRL": {Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Decimals: 2, Position: domain.SymbolBefore},
	"CAD": {Code: "CAD", Name: "Canadian Dollar", Symbol: "$", Decimals: 2, Position: domain.SymbolBefore},
	"CNY": {Code: "CNY", Name: "Chinese Renminbi", Symbol: "¥", Decimals: 2, Position: domain.SymbolBefore},
	"CZK": {Code: "CZK", Name: "Czech Koruna", Symbol: "Kč", Decimals: 2, Position: domain.SymbolAfter},
	"DKK": {Code: "DKK", Name: "Danish Krone", Symbol: "kr", Decimals: 2, Position: domain.SymbolAfter},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€", Decimals: 2, Position: domain.SymbolBefore},
	"HKD": {Code: "HKD", Name: "Hong Kong Dollar", Symbol: "$", Decimals: 2, Position: domain.SymbolBefore},
	"HUF": {Code: "HUF", Name: "Hungarian Forint", Symbol: "Ft", Decimals: 0, Position: domain.SymbolAfter},
	"ILS": {Code: "ILS", Name: "Israeli New Shekel", Symbol: "₪", Decimals: 2, Position: domain.SymbolBefore},
	"JPY": {Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Decimals: 0, Position: domain.SymbolBefore},
	"MYR": {Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM", Decimals: 2, Position: domain.SymbolBefore},
	"MXN": {Code: "MXN", Name: "Mexican Peso", Symbol: "$", Decimals: 2, Position: domain.SymbolBefore},
	"TWD": {Code: "TWD", Name: "New Taiwan Dollar", Symbol: "NT$", Decimals: 0, Position: domain.SymbolBefore},
	"NZD": {Code: "NZD", Name: "New Zealand Dollar", Symbol: "$", Decimals: 2, Position: domain.SymbolBefore},
	"NOK": {Code: "NOK", Name: "Norwegian Krone", Symbol: "kr", Decimals: 2, Position: domain.SymbolAfter},
	"PHP": {Code: "PHP", Name: "Philippine Peso", Symbol: "₱", Decimals: 2, Position: domain.SymbolBefore},
	"PLN": {Code: "PLN", Name: "Polish Złoty", Symbol: "zł", Decimals: 2, Position: domain.SymbolAfter},
	"GBP": {Code: "GBP", Name: "Pound Sterling", Symbol: "£", Decimals: 2, Position: domain.SymbolBefore},
	"SGD": {Code: "SGD", Name: "Singapore Dollar", Symbol: "$", Decimals: 2, Position: domain.SymbolBefore},
	"SEK": {Code: "SEK", Name: "Swedish Krona", Symbol: "kr", Decimals: 2, Position: domain.SymbolAfter},
	"CHF": {Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Decimals: 2, Position: domain.SymbolBefore},
	"THB": {Code: "THB", Name: "Thai Baht", Symbol: "฿", Decimals: 2, Position: domain.SymbolBefore},
	"USD": {Code: "USD", Name: "United States Dollar", Symbol: "$", Decimals: 2, Position: domain.SymbolBefore},
}

// CurrencyService serves the currency descriptor table and the conversion
// and rounding rules.
type CurrencyService struct {
	enabled []domain.Currency // sorted by name
}

// NewCurrencyService creates a CurrencyService restricted to enabledCodes.
// An empty enabledCodes enables the whole supported set; unknown codes are
// silently dropped.
func NewCurrencyService(enabledCodes []string) *CurrencyService {
	var enabled []domain.Currency
	if len(enabledCodes) == 0 {
		for _, c := range supportedCurrencies {
			enabled = append(enabled, c)
		}
	} else {
		for _, code := range enabledCodes {
			if c, ok := supportedCurrencies[strings.ToUpper(code)]; ok {
				enabled = append(enabled, c)
			}
		}
	}
	sort.Slice(enabled, func(i, j int) bool { return enabled[i].Name < enabled[j].Name })
	return &CurrencyService{enabled: enabled}
}

// GetCurrencyByCode returns the descriptor for a supported currency.
func (s *CurrencyService) GetCurrencyByCode(code string) (*domain.Currency, error) {
	c, ok := supportedCurrencies[strings.ToUpper(code)]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrNotFound, code)
	}
	return &c, nil
}

// ListCurrencies returns the enabled descriptors sorted by display name.
func (s *CurrencyService) ListCurrencies() []domain.Currency {
	out := make([]domain.Currency, len(s.enabled))
	copy(out, s.enabled)
	return out
}

// IsSupported reports whether the code is in the enabled set.
func (s *CurrencyService) IsSupported(code string) bool {
	code = strings.ToUpper(code)
	for _, c := range s.enabled {
		if c.Code == code {
			return true
		}
	}
	return false
}

// FormatAmount renders an amount with the currency's symbol, decimal places
// and symbol position. Unknown codes fall back to a bare fixed string so a
// stored record always displays something.
func (s *CurrencyService) FormatAmount(amount decimal.Decimal, code string) string {
	c, ok := supportedCurrencies[strings.ToUpper(code)]
	if !ok {
		return amount.StringFixed(2) + " " + strings.ToUpper(code)
	}
	return utils.FormatAmount(amount, c)
}

// ConvertFromUSD converts a USD amount at the given rate and rounds per the
// mode and direction. Smart rounding snaps to the currency's denomination
// increment; simple rounding uses the currency's decimal places. Direction
// "up" never under-states and "down" never over-states the result.
func (s *CurrencyService) ConvertFromUSD(usdAmount, rate decimal.Decimal, code string, mode domain.RoundingMode, direction domain.RoundingDirection) (decimal.Decimal, error) {
	c, err := s.GetCurrencyByCode(code)
	if err != nil {
		return decimal.Zero, err
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	raw := usdAmount.Mul(rate)

	if mode == domain.RoundSmart {
		increment := decimal.NewFromInt(domain.SmartIncrementFor(c.Code))
		steps := raw.Div(increment)
		switch direction {
		case domain.RoundUp:
			steps = steps.Ceil()
		case domain.RoundDown:
			steps = steps.Floor()
		default:
			steps = steps.Round(0)
		}
		return steps.Mul(increment), nil
	}

	places := int32(c.Decimals)
	switch direction {
	case domain.RoundUp:
		return raw.RoundUp(places), nil
	case domain.RoundDown:
		return raw.RoundDown(places), nil
	default:
		return raw.Round(places), nil
	}
}
