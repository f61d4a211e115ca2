package calculator

import (
	"math"
	"strconv"
)

// Round1 rounds x to one decimal place.
// Halfway cases are resolved to even on the exact binary value of x, so
// Round1(8.96) == 9.0 and Round1(0.25) == 0.2.
func Round1(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	if err != nil {
		return x
	}
	return v
}
