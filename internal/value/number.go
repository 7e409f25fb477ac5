package value

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var rNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// RoundNumber rounds x to the given number of decimal digits, with halves
// rounded away from zero.
func RoundNumber(x float64, digits int) float64 {
	multiplier := math.Pow(10, float64(digits))
	return math.Round(x*multiplier) / multiplier
}

// ParseNumber parses a decimal number string. It returns nil if the string
// is not a number.
func ParseNumber(s string) Value {
	s = strings.TrimSpace(s)
	if !rNumber.MatchString(s) {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return NewNumber(f)
}

// ParseInteger parses an integer string in the given radix. It returns nil
// if the string is not an integer.
func ParseInteger(s string, radix int) Value {
	i, err := strconv.ParseInt(strings.TrimSpace(s), radix, 64)
	if err != nil {
		return nil
	}
	return NewNumber(float64(i))
}

// IsInteger reports whether f holds an exact integer value.
func IsInteger(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}
