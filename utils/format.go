package utils

import (
	"fmt"
	"strconv"
)

// FormatMoney renders a USD amount in compact listing style ($1.2M, $500K).
func FormatMoney(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.1fM", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("$%.0fK", amount/1_000)
	default:
		return "$" + strconv.FormatFloat(amount, 'f', 0, 64)
	}
}

// ReadinessLabel buckets a display score into the three seller-facing tiers.
func ReadinessLabel(score int) string {
	switch {
	case score >= 80:
		return "Ready to Sell"
	case score >= 60:
		return "Almost Ready"
	default:
		return "Needs Work"
	}
}
