package deepzoom

import (
	"math"
	"strconv"
)

// Float is the fixed precision of the render boundary: a float32, which is
// what the GPU consumes.
type Float float32

var _ Number[Float] = Float(0)

// Add returns x+y rounded to float32.
func (x Float) Add(y Float) Float { return x + y }

// Sub returns x-y rounded to float32.
func (x Float) Sub(y Float) Float { return x - y }

// Mul returns x*y rounded to float32.
func (x Float) Mul(y Float) Float { return x * y }

// Neg returns -x.
func (x Float) Neg() Float { return -x }

// Abs returns |x|.
func (x Float) Abs() Float {
	return Float(math.Abs(float64(x)))
}

// Div returns x/y, or ErrDivisionByZero when y is zero (of either sign).
func (x Float) Div(y Float) (Float, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
// NaN compares equal to everything since both operators fail for it.
func (x Float) Cmp(y Float) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Sign returns -1, 0 or +1 for negative, zero and positive x. NaN is 0.
func (x Float) Sign() int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func (x Float) Float32() float32 { return float32(x) }
func (x Float) Float64() float64 { return float64(x) }

func (Float) FromInt(i int64) Float { return Float(i) }

// FromFloat64 rounds f to float32. Infinities and NaN are representable, so no
// error is returned.
func (Float) FromFloat64(f float64) (Float, error) { return Float(f), nil }

func (x Float) RoundTo(uint) Float { return x }

func (x Float) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}
