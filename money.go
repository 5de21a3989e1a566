package tally

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency the tracker reports in unless configured
// otherwise.
const DefaultCurrency = "INR"

// ParseAmount coerces an untyped amount string into a decimal value.
// Record values come from forms and CSV files, so anything can show up here:
// empty, missing, or non-numeric input coerces to zero rather than failing.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Formatter renders amounts as locale-formatted currency strings: currency
// symbol, thousands grouped in threes, exactly two fractional digits for the
// usual currencies. The grouping convention is the one go-money defines for
// the currency; it is deliberately explicit here and pinned by tests.
type Formatter struct {
	cur *money.Currency
}

// NewFormatter returns a formatter for the given ISO currency code. Unknown
// codes fall back to go-money's default currency handling.
func NewFormatter(code string) Formatter {
	// Calling the money constructor is the way to get a never-nil currency.
	return Formatter{cur: money.New(0, code).Currency()}
}

// Format renders a decimal amount.
func (f Formatter) Format(v decimal.Decimal) string {
	minor := v.Round(int32(f.cur.Fraction)).Shift(int32(f.cur.Fraction))
	return f.cur.Formatter().Format(minor.IntPart())
}

// FormatString coerces an untyped amount string and renders it. Non-numeric
// input renders as zero; this never panics.
func (f Formatter) FormatString(s string) string {
	return f.Format(ParseAmount(s))
}
