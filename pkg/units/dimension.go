package units

import (
	"fmt"
	"strings"
)

// Base identifies one of the base physical dimensions a unit is expressed in.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Temperature
	numBases
)

var baseNames = [numBases]string{
	Length:      "[length]",
	Mass:        "[mass]",
	Time:        "[time]",
	Temperature: "[temperature]",
}

// Dimension is the vector of exponents of the base dimensions.
// The zero value is dimensionless.
type Dimension [numBases]int8

// Dim builds a Dimension from base/exponent pairs, e.g. Dim(Length, 1, Time, -1).
func Dim(pairs ...int) Dimension {
	var d Dimension
	for i := 0; i+1 < len(pairs); i += 2 {
		d[pairs[i]] += int8(pairs[i+1])
	}
	return d
}

// String renders the dimension the way it appears in conversion errors,
// for example "[length] / [time]" or "[mass] / [length] / [time] ** 2".
func (d Dimension) String() string {
	var num, den []string
	for b := Base(0); b < numBases; b++ {
		exp := d[b]
		switch {
		case exp > 0:
			num = append(num, power(baseNames[b], exp))
		case exp < 0:
			den = append(den, power(baseNames[b], -exp))
		}
	}
	if len(num) == 0 && len(den) == 0 {
		return "dimensionless"
	}

	var sb strings.Builder
	if len(num) == 0 {
		sb.WriteString("1")
	} else {
		sb.WriteString(strings.Join(num, " * "))
	}
	for _, p := range den {
		sb.WriteString(" / ")
		sb.WriteString(p)
	}
	return sb.String()
}

func power(name string, exp int8) string {
	if exp == 1 {
		return name
	}
	return fmt.Sprintf("%s ** %d", name, exp)
}
