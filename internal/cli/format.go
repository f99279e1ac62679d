// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// currency is the symbol prefixed to money values, set once at startup from
// config.
var currency = "Rp"

// SetCurrency overrides the currency symbol used by the money formatters.
func SetCurrency(symbol string) {
	if symbol != "" {
		currency = symbol
	}
}

// FormatMoney formats a currency amount with grouping separators.
// e.g., 2500000 -> "Rp 2,500,000"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}
	return currency + " " + FormatNumber(int64(math.Round(v)))
}

// FormatMoneyCompact formats a currency amount with a magnitude suffix,
// for chart axes and tight columns. e.g., 2500000 -> "Rp 2.5M"
func FormatMoneyCompact(v float64) string {
	if v < 0 {
		return "-" + FormatMoneyCompact(-v)
	}
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%s %.1fB", currency, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%s %.1fM", currency, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s %.0fk", currency, v/1e3)
	default:
		return fmt.Sprintf("%s %.0f", currency, v)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
