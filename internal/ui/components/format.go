package components

import (
	"fmt"
	"strconv"
)

// FormatNumber abbreviates large counters with K and M suffixes:
// 1_500_000 -> "1.5M", 2_500 -> "2.5K", 42 -> "42".
func FormatNumber(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatRate renders a success rate percentage with one decimal.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}
