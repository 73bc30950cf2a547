// Package format renders duty amounts as display-ready text.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"import-duty/core/rates"
)

// DefaultLocale is the locale FormatNumber groups digits for
var DefaultLocale = language.AmericanEnglish

// FormatNumber renders n with thousands separators in the default locale,
// keeping at most two fraction digits. NaN and infinities render as "0".
func FormatNumber(n float64) string {
	return FormatNumberIn(DefaultLocale, n)
}

// FormatNumberIn renders n with the digit grouping of tag
func FormatNumberIn(tag language.Tag, n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(n, number.MaxFractionDigits(2)))
}

// FormatMoney renders a whole amount followed by its currency code
func FormatMoney(tag language.Tag, amount int64, currency rates.Currency) string {
	return FormatNumberIn(tag, float64(amount)) + " " + currency.String()
}

// ParseLocale parses a BCP 47 tag, falling back to DefaultLocale
func ParseLocale(s string) language.Tag {
	if s == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLocale
	}
	return tag
}
