package domain

// SymbolPosition says on which side of the amount a currency symbol is printed.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// Currency describes the presentation rules for one supported currency.
// The descriptor table is static configuration; administrators may enable a
// subset of it but never alter individual descriptors.
type Currency struct {
	Code     string         `json:"code"`   // ISO-like 3-letter code, e.g. "USD"
	Name     string         `json:"name"`   // e.g. "United States Dollar"
	Symbol   string         `json:"symbol"` // e.g. "$"
	Decimals int            `json:"decimals"`
	Position SymbolPosition `json:"position"`
}

// RoundingMode selects how converted amounts are rounded.
type RoundingMode string

const (
	// RoundSimple rounds to the currency's decimal places.
	RoundSimple RoundingMode = "simple"
	// RoundSmart rounds to a denomination-appropriate increment.
	RoundSmart RoundingMode = "smart"
)

// RoundingDirection biases rounding so thresholds stay honest: minimums are
// never under-stated (up) and maximums never over-stated (down).
type RoundingDirection string

const (
	RoundUp      RoundingDirection = "up"
	RoundDown    RoundingDirection = "down"
	RoundNearest RoundingDirection = "nearest"
)

// smartIncrements holds the denomination-appropriate rounding increment per
// currency. Currencies conventionally quoted in large whole units round to
// coarser steps; everything else rounds to a whole unit.
var smartIncrements = map[string]int64{
	"JPY": 50,
	"KRW": 50,
	"INR": 5,
	"THB": 5,
	"VND": 1000,
	"CLP": 100,
	"IDR": 100,
}

// SmartIncrementFor returns the smart-rounding increment for a currency code.
func SmartIncrementFor(code string) int64 {
	if inc, ok := smartIncrements[code]; ok {
		return inc
	}
	return 1
}
