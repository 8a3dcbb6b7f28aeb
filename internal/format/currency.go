// Package format renders money and percentages for reports and API responses.
// The base currency follows id-ID conventions, everything else en-US.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/luminark/holdings/internal/models"
)

const (
	minForeignFraction = 2
	maxForeignFraction = 8

	idrGrapheme = "Rp"
)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// Currency formats amount in code. IDR renders as "Rp 1.500.000" with no
// fraction digits; other currencies as "$1,234.50" with 2 to 8 fraction digits.
func Currency(amount decimal.Decimal, code string) string {
	code = models.NormalizeCurrency(code)
	if code == models.CurrencyIDR {
		return render(amount, 0, ",", ".", idrGrapheme, "$ 1")
	}

	digits := fractionDigits(amount)
	grapheme, template := foreignSymbol(code)
	return render(amount, digits, ".", ",", grapheme, template)
}

// CurrencyValue formats a raw string amount; empty or non-numeric input is zero.
func CurrencyValue(raw, code string) string {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		amount = decimal.Zero
	}
	return Currency(amount, code)
}

// Number formats amount with id-ID grouping and exactly decimals fraction digits.
func Number(amount decimal.Decimal, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return render(amount, decimals, ",", ".", "", "1")
}

// Percent formats a percentage with an explicit sign and two decimals.
func Percent(p decimal.Decimal) string {
	s := p.StringFixed(2)
	if p.Round(2).IsPositive() {
		return "+" + s + "%"
	}
	if p.Round(2).IsZero() {
		return "0.00%"
	}
	return s + "%"
}

// ParseCurrency reverses Currency for the same code.
func ParseCurrency(s, code string) (decimal.Decimal, error) {
	code = models.NormalizeCurrency(code)
	raw := strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))

	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	if code == models.CurrencyIDR {
		raw = strings.TrimPrefix(raw, idrGrapheme)
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	} else {
		grapheme, _ := foreignSymbol(code)
		raw = strings.TrimPrefix(raw, strings.TrimSpace(grapheme))
		raw = strings.ReplaceAll(raw, ",", "")
	}
	raw = strings.TrimSpace(raw)

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %q as %s: %w", s, code, err)
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}

func formatter(fraction int, decimalSep, thousandSep, grapheme, template string) *money.Formatter {
	return money.NewFormatter(fraction, decimalSep, thousandSep, grapheme, template)
}

// render rounds amount half away from zero to digits fraction digits and
// formats it. Amounts whose minor units overflow int64 skip go-money and are
// laid out the same way from the decimal's digits.
func render(amount decimal.Decimal, digits int, decimalSep, thousandSep, grapheme, template string) string {
	minor := amount.Round(int32(digits)).Shift(int32(digits))
	if minor.Abs().LessThanOrEqual(maxMinorUnits) {
		return formatter(digits, decimalSep, thousandSep, grapheme, template).Format(minor.IntPart())
	}

	sa := minor.Abs().BigInt().String()
	if len(sa) <= digits {
		sa = strings.Repeat("0", digits-len(sa)+1) + sa
	}
	if thousandSep != "" {
		for i := len(sa) - digits - 3; i > 0; i -= 3 {
			sa = sa[:i] + thousandSep + sa[i:]
		}
	}
	if digits > 0 {
		sa = sa[:len(sa)-digits] + decimalSep + sa[len(sa)-digits:]
	}
	sa = strings.Replace(template, "1", sa, 1)
	sa = strings.Replace(sa, "$", grapheme, 1)
	if minor.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

// fractionDigits is the number of significant fraction digits, clamped to [2, 8].
func fractionDigits(amount decimal.Decimal) int {
	s := amount.Abs().Round(maxForeignFraction).String()
	digits := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		digits = len(s) - i - 1
	}
	if digits < minForeignFraction {
		return minForeignFraction
	}
	if digits > maxForeignFraction {
		return maxForeignFraction
	}
	return digits
}

// foreignSymbol returns the go-money grapheme for code, or "CODE " when unknown.
func foreignSymbol(code string) (grapheme, template string) {
	if cur := money.GetCurrency(code); cur != nil && cur.Grapheme != "" {
		return cur.Grapheme, "$1"
	}
	return code + " ", "$1"
}
