package util

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol is prefixed to every displayed amount
const CurrencySymbol = "₹"

// CurrencyFormatter renders amounts with locale-aware digit grouping.
// It only affects display; amounts are never re-parsed from its output.
type CurrencyFormatter struct {
	printer *message.Printer
}

// NewCurrencyFormatter creates a formatter for a BCP 47 locale such as "en-IN".
// Unknown locales fall back to English.
func NewCurrencyFormatter(locale string) *CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &CurrencyFormatter{printer: message.NewPrinter(tag)}
}

// Format groups the digits of d, keeping up to two fraction digits
func (f *CurrencyFormatter) Format(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatWithSymbol prefixes the grouped amount with the currency symbol.
// Negative amounts render as -₹1,000.
func (f *CurrencyFormatter) FormatWithSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + CurrencySymbol + f.Format(d.Abs())
	}
	return CurrencySymbol + f.Format(d)
}
