package math

import (
	"math"
	"strconv"
)

// Format formats a float based on the given precision
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Round2 rounds the given value to 2 decimal places.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// IsFinite checks that the value is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
