// Package money formats and parses monetary values using Brazilian
// Real conventions (thousands separator ".", decimal separator ",").
package money

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatBRL formats a float64 amount into Brazilian Real notation,
// e.g. 2920.00 -> "R$ 2.920,00". The result always includes exactly
// 2 decimal places.
func FormatBRL(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "R$ " + groupThousands(intPart) + "," + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts "." separators into an integer string,
// grouping digits in threes from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}

// ParseBRL parses a Brazilian Real currency string ("R$ 1.234,56")
// back into a float64. Any character outside digits, comma and dot is
// stripped; dots are treated as thousands separators and removed, the
// comma becomes the decimal point. Unparsable or empty input yields 0,
// never an error.
func ParseBRL(text string) float64 {
	if text == "" {
		return 0
	}

	var clean strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			clean.WriteRune(r)
		}
	}

	normalized := strings.ReplaceAll(clean.String(), ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}
	return value
}

// FormatDate renders a date in the Brazilian short convention, DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

var portugueseMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatLongDate renders a date in the long Portuguese form used on
// printed documents, e.g. "12 de março de 2026".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), portugueseMonths[t.Month()-1], t.Year())
}
