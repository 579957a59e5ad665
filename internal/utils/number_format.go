package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatMagnitude renders a conversion result. Integral values render with
// no decimals; fractional values with up to 4 decimals, trailing zeros and a
// trailing point stripped.
// Example: 1000 -> "1000", 0.30480 -> "0.3048", 2.20462262 -> "2.2046"
func FormatMagnitude(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatInput renders a user-supplied number in its shortest exact form.
// Example: 100 -> "100", 2.5 -> "2.5"
func FormatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
