// Package money converts between stored minor units and their decimal text form.
//
// Amounts are stored as int64 cents everywhere in the system. Text only appears
// at the edges (CSV rows, CLI flags, seed files), and that text is always a
// plain decimal with exactly two fractional digits, e.g. "1500.00" or "-12.50".
package money

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var canonicalAmount = regexp.MustCompile(`^-?\d+\.\d{2}$`)

// Format renders cents as a decimal string with two fractional digits.
func Format(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// Parse converts a canonical decimal string to cents. Values with a missing or
// extra fractional digit, a leading plus sign, thousands separators or
// exponents are rejected rather than coerced.
func Parse(s string) (int64, error) {
	if !canonicalAmount.MatchString(s) {
		return 0, fmt.Errorf("amount %q must be a decimal with exactly two fractional digits", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, err)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has sub-cent precision", s)
	}
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}
	// Leading zeros and "-0.00" parse fine but do not format back to s.
	if Format(cents.IntPart()) != s {
		return 0, fmt.Errorf("amount %q is not in canonical form %q", s, Format(cents.IntPart()))
	}
	return cents.IntPart(), nil
}

// ParseLoose accepts any decimal text and rounds it to cents, half away from zero. It is
// meant for seed files and CLI flags where "1500" is a reasonable spelling.
func ParseLoose(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, err)
	}
	cents := d.Shift(2).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}
	return cents.IntPart(), nil
}

// Ratio returns num/den rounded to places decimal places, or an invalid
// NullDecimal when den is zero.
func Ratio(num, den int64, places int32) decimal.NullDecimal {
	if den == 0 {
		return decimal.NullDecimal{}
	}
	r := decimal.NewFromInt(num).DivRound(decimal.NewFromInt(den), places)
	return decimal.NullDecimal{Decimal: r, Valid: true}
}
