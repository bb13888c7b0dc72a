package problem

import (
	"math"
	"math/rand"
	"strconv"
)

const (
	timesOp = ` \times `
	divOp   = ` \div `
)

// IntMultiplication generates a*b with both factors in [low, high)
func IntMultiplication(r *rand.Rand, low, high int) Generator {
	return func() Problem {
		a := Int(r, low, high)
		b := Int(r, low, high)
		return Problem{
			Prompt: strconv.Itoa(a) + timesOp + strconv.Itoa(b) + " =",
			Answer: strconv.Itoa(a * b),
		}
	}
}

// DecMultiplication generates a*b with decimal factors in [low, high). The
// answer is rounded to 2*precision places.
func DecMultiplication(r *rand.Rand, low, high float64, precision int) Generator {
	return func() Problem {
		a := Decimal(r, low, high, precision)
		b := Decimal(r, low, high, precision)
		return Problem{
			Prompt: FormatDecimal(a) + timesOp + FormatDecimal(b) + " =",
			Answer: FormatDecimal(Round(a*b, 2*precision)),
		}
	}
}

// IntDivision generates a/b with a in [low, high) and b in [1, high/10).
// The answer is the floored quotient and remainder, "<q>r<m>". high must be
// at least 10 or the divisor can be zero.
func IntDivision(r *rand.Rand, low, high int) Generator {
	return func() Problem {
		a := Int(r, low, high)
		b := Int(r, 1, floorDiv(high, 10))
		return Problem{
			Prompt: strconv.Itoa(a) + divOp + strconv.Itoa(b) + " =",
			Answer: strconv.Itoa(floorDiv(a, b)) + "r" + strconv.Itoa(floorMod(a, b)),
		}
	}
}

// DecDivision generates a decimal division that comes out to a clean answer.
// It picks the divisor a in [low, high/10) and the answer first, then derives
// the dividend b = round(a*answer, 2*precision), so b stays near high.
// low must be positive.
func DecDivision(r *rand.Rand, low, high float64, precision int) Generator {
	return func() Problem {
		a := Decimal(r, low, floorDivFloat(high, 10), precision)
		q := floorDivFloat(high, a)
		ans := Decimal(r, math.Min(q, low), math.Max(q, low), precision)
		b := Round(a*ans, 2*precision)
		return Problem{
			Prompt: FormatDecimal(b) + divOp + FormatDecimal(a) + " =",
			Answer: FormatDecimal(ans),
		}
	}
}
