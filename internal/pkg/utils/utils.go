package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatAmount prints the shortest decimal form of amount, keeping one fractional digit
// for whole numbers.
// Example: 546.8 -> "546.8", 117 -> "117.0"
func FormatAmount(amount float64) string {
	str := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(str, ".") {
		str += ".0"
	}

	return str
}
