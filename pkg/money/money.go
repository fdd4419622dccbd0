// Package money handles amounts expressed in the smallest currency unit
// (ariary) plus their digit-grouped string form used at the form boundary
// ("5 000 000"). Crypto equivalents are carried as decimals with 2 places.
package money

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAmount   = errors.New("amount is empty")
	ErrInvalidAmount = errors.New("amount is not numeric")
	ErrInvalidRate   = errors.New("rate is not numeric")
)

// Parse interprets a digit-grouped amount string as an integer amount.
// Grouping separators (spaces of any kind, apostrophes, commas, dots,
// underscores) are stripped; anything else non-numeric is rejected.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyAmount
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '\'', r == ',', r == '.', r == '_':
			// grouping separator
		default:
			return 0, ErrInvalidAmount
		}
	}
	if b.Len() == 0 {
		return 0, ErrInvalidAmount
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return n, nil
}

// ParseRate interprets a percentage string ("5", "3.5", "3,5") as a float.
// Negative rates are rejected.
func ParseRate(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, ErrEmptyAmount
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, ErrInvalidRate
	}
	return f, nil
}

// ParseDecimal interprets an exchange-rate string as a positive decimal.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.Sign() <= 0 {
		return decimal.Zero, ErrInvalidRate
	}
	return d, nil
}

// Group renders an amount with space-separated thousands: 5000000 -> "5 000 000".
func Group(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, " ")
	if neg {
		return "-" + out
	}
	return out
}

// Format renders an amount for display with the currency suffix.
func Format(n int64) string { return Group(n) + " Ar" }

// FormatUSDT renders a crypto-equivalent amount at fixed 2 decimal places.
func FormatUSDT(d decimal.Decimal) string { return d.StringFixed(2) + " USDT" }
