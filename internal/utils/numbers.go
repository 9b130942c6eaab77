package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FoldArabicDigits rewrites Arabic-Indic (٠-٩) and Extended Arabic-Indic
// (۰-۹) digits to their ASCII equivalents.
func FoldArabicDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseDecimal parses a localized numeric string as typed into the product
// form: thousands separators ("12,500", "12٬500") and surrounding whitespace
// are stripped, Arabic-Indic digits folded. The Arabic decimal separator
// (٫) maps to a dot.
func ParseDecimal(s string) (float64, error) {
	cleaned := FoldArabicDigits(strings.TrimSpace(s))
	cleaned = strings.NewReplacer(
		",", "",
		"٬", "",
		" ", "",
		" ", "",
		"٫", ".",
	).Replace(cleaned)

	if cleaned == "" {
		return 0, fmt.Errorf("empty numeric value")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q: %w", s, err)
	}
	return v, nil
}

// ParseInt is ParseDecimal for whole numbers (stock, quantities).
func ParseInt(s string) (int, error) {
	v, err := ParseDecimal(s)
	if err != nil {
		return 0, err
	}
	if v != float64(int(v)) {
		return 0, fmt.Errorf("expected whole number, got %q", s)
	}
	return int(v), nil
}
