package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMagnitude(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integral", 1000, "1000"},
		{"zero", 0, "0"},
		{"negative integral", -40, "-40"},
		{"four decimals", 0.3048, "0.3048"},
		{"rounded to four", 2.2046226218, "2.2046"},
		{"trailing zeros stripped", 1.5, "1.5"},
		{"rounds up to integer form", 11.99999, "12"},
		{"tiny negative", -0.00001, "0"},
		{"large", 1e15, "1000000000000000"},
		{"infinity", math.Inf(1), "+Inf"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatMagnitude(tc.in))
		})
	}
}

func TestFormatInput(t *testing.T) {
	assert.Equal(t, "100", FormatInput(100))
	assert.Equal(t, "2.5", FormatInput(2.5))
	assert.Equal(t, "0.000001", FormatInput(0.000001))
}
