package deepzoom

import "errors"

// ErrDivisionByZero is returned when a value is divided by exact zero.
var ErrDivisionByZero = errors.New("deepzoom: division by zero")

// ErrNonFinite is returned when widening a NaN or infinite float, which has no
// rational value.
var ErrNonFinite = errors.New("deepzoom: non-finite value")

// Number is the arithmetic capability set the transform and orbit code is
// generic over. Implementations are immutable values: every operation returns a
// new value and never modifies its receiver.
//
// Constructor methods (FromInt, FromFloat64) ignore their receiver, so they can
// be called on the zero value of T.
type Number[T any] interface {
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	// Div returns ErrDivisionByZero when y is zero.
	Div(y T) (T, error)
	Neg() T
	Abs() T
	// Cmp returns -1, 0 or +1 depending on whether the receiver is less than,
	// equal to, or greater than y.
	Cmp(y T) int
	Sign() int

	// Float32 narrows to the nearest float32. Magnitudes beyond float32 range
	// narrow to an infinity.
	Float32() float32
	Float64() float64

	FromInt(i int64) T
	// FromFloat64 widens f exactly when the type can hold it. NaN and
	// infinities return ErrNonFinite for exact types.
	FromFloat64(f float64) (T, error)

	// RoundTo rounds to prec significant bits. Fixed-precision types return
	// the receiver unchanged; prec 0 means unbounded.
	RoundTo(prec uint) T

	String() string
}

// Zero returns the additive identity of T.
func Zero[T Number[T]]() T {
	var z T
	return z.FromInt(0)
}

// One returns the multiplicative identity of T.
func One[T Number[T]]() T {
	var z T
	return z.FromInt(1)
}

// Two returns 2 in T.
func Two[T Number[T]]() T {
	var z T
	return z.FromInt(2)
}

// Half returns 1/2 in T.
func Half[T Number[T]]() T {
	var z T
	h, _ := z.FromFloat64(0.5)
	return h
}

// Min returns the smaller of a and b.
func Min[T Number[T]](a, b T) T {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Number[T]](a, b T) T {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
