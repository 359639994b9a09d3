package deepzoom

import (
	"math"
	"math/big"
)

// Rat is an exact rational number of unbounded size. It is the precision used
// for the accumulated view transform and the anchor point.
//
// The zero value is 0. A Rat never shares mutable state with another Rat, so it
// can be copied freely.
type Rat struct {
	r *big.Rat
}

var _ Number[Rat] = Rat{}

// NewRat returns a/b. It panics if b is 0, like big.NewRat.
func NewRat(a, b int64) Rat {
	return Rat{big.NewRat(a, b)}
}

// RatFromInt returns i as a Rat.
func RatFromInt(i int64) Rat {
	return Rat{new(big.Rat).SetInt64(i)}
}

// RatFromFloat64 returns the exact value of f. Every finite float64 is a
// dyadic rational, so the conversion never rounds.
func RatFromFloat64(f float64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, ErrNonFinite
	}
	return Rat{new(big.Rat).SetFloat64(f)}, nil
}

// RatFromFloat32 returns the exact value of f.
func RatFromFloat32(f float32) (Rat, error) {
	return RatFromFloat64(float64(f))
}

func (x Rat) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// Add returns the exact sum x+y.
func (x Rat) Add(y Rat) Rat { return Rat{new(big.Rat).Add(x.rat(), y.rat())} }

// Sub returns the exact difference x-y.
func (x Rat) Sub(y Rat) Rat { return Rat{new(big.Rat).Sub(x.rat(), y.rat())} }

// Mul returns the exact product x*y.
func (x Rat) Mul(y Rat) Rat { return Rat{new(big.Rat).Mul(x.rat(), y.rat())} }

// Neg returns -x.
func (x Rat) Neg() Rat { return Rat{new(big.Rat).Neg(x.rat())} }

// Abs returns |x|.
func (x Rat) Abs() Rat { return Rat{new(big.Rat).Abs(x.rat())} }

// Div returns x/y, or ErrDivisionByZero when y is zero.
func (x Rat) Div(y Rat) (Rat, error) {
	if y.Sign() == 0 {
		return Rat{}, ErrDivisionByZero
	}
	return Rat{new(big.Rat).Quo(x.rat(), y.rat())}, nil
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Rat) Cmp(y Rat) int { return x.rat().Cmp(y.rat()) }

// Sign returns -1, 0 or +1 for negative, zero and positive x.
func (x Rat) Sign() int {
	if x.r == nil {
		return 0
	}
	return x.r.Sign()
}

// Float32 returns the nearest float32 (round half to even).
func (x Rat) Float32() float32 {
	f, _ := x.rat().Float32()
	return f
}

// Float64 returns the nearest float64 (round half to even).
func (x Rat) Float64() float64 {
	f, _ := x.rat().Float64()
	return f
}

func (Rat) FromInt(i int64) Rat { return RatFromInt(i) }

func (Rat) FromFloat64(f float64) (Rat, error) { return RatFromFloat64(f) }

// RoundTo rounds x to prec significant bits, to nearest even. The result is a
// dyadic rational whose size is bounded by prec.
func (x Rat) RoundTo(prec uint) Rat {
	if prec == 0 || x.Sign() == 0 {
		return x
	}
	f := new(big.Float).SetPrec(prec).SetMode(big.ToNearestEven).SetRat(x.rat())
	r, _ := f.Rat(nil)
	return Rat{r}
}

// BitExp returns an estimate of log2|x|: the bit length of the numerator minus
// the bit length of the denominator. It is exact to within one. Zero reports
// math.MinInt.
func (x Rat) BitExp() int {
	if x.Sign() == 0 {
		return math.MinInt
	}
	return x.r.Num().BitLen() - x.r.Denom().BitLen()
}

// String returns x as "a/b", or "a" when x is an integer.
func (x Rat) String() string {
	return x.rat().RatString()
}

// FloatString returns x in decimal with the given number of digits after the
// point, rounding the last digit.
func (x Rat) FloatString(prec int) string {
	return x.rat().FloatString(prec)
}
