package problem

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Int returns a uniform integer in [low, high)
func Int(r *rand.Rand, low, high int) int {
	return int(uniform(r, float64(low), float64(high)))
}

// Decimal returns a uniform decimal in [low, high) with between 1 and
// precision digits after the decimal point.
func Decimal(r *rand.Rand, low, high float64, precision int) float64 {
	scale := math.Pow(10, float64(Int(r, 1, precision+1)))
	return uniform(r, low*scale, high*scale) / scale
}

// uniform draws from [0,1), scales into [low, high) and floors
func uniform(r *rand.Rand, low, high float64) float64 {
	return math.Floor(r.Float64()*(high-low) + low)
}

// Round rounds x to the given number of decimal places, half to even on the
// exact binary value.
func Round(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// FormatDecimal formats x as the shortest decimal that parses back to x,
// always with a fractional part ("12.0", not "12").
func FormatDecimal(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// floorDivFloat is floored float division computed from the exact remainder,
// so 1000 / 1.6 gives 624 rather than the 625 that math.Floor(1000/1.6)
// returns after rounding the quotient.
func floorDivFloat(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	q := math.Floor(div)
	if div-q > 0.5 {
		q++
	}
	return q
}
