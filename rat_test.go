package deepzoom

import (
	"errors"
	"math"
	"testing"
)

func TestRatArithmeticIdentities(t *testing.T) {
	vals := []Rat{
		NewRat(1, 3), NewRat(-7, 2), RatFromInt(0), RatFromInt(12345), NewRat(1, 1<<40),
	}
	one := One[Rat]()
	for _, a := range vals {
		for _, b := range vals {
			if got := a.Add(b).Sub(b); got.Cmp(a) != 0 {
				t.Errorf("%v + %v - %v = %v", a, b, b, got)
			}
		}
		if got := a.Mul(one); got.Cmp(a) != 0 {
			t.Errorf("%v * 1 = %v", a, got)
		}
		if a.Sign() == 0 {
			continue
		}
		q, err := a.Div(a)
		if err != nil || q.Cmp(one) != 0 {
			t.Errorf("%v / %v = %v, %v", a, a, q, err)
		}
	}
}

func TestRatZeroValue(t *testing.T) {
	var z Rat
	if z.Sign() != 0 || z.Cmp(RatFromInt(0)) != 0 {
		t.Errorf("zero value = %v", z)
	}
	if got := z.Add(RatFromInt(2)); got.Cmp(Two[Rat]()) != 0 {
		t.Errorf("0 + 2 = %v", got)
	}
	if z.String() != "0" {
		t.Errorf("String = %q", z.String())
	}
}

func TestRatDivByZero(t *testing.T) {
	_, err := RatFromInt(1).Div(Rat{})
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("err = %v, want ErrDivisionByZero", err)
	}
}

func TestRatImmutable(t *testing.T) {
	a := NewRat(1, 2)
	_ = a.Add(RatFromInt(5))
	_ = a.Neg()
	_ = a.Mul(RatFromInt(9))
	if a.Cmp(NewRat(1, 2)) != 0 {
		t.Errorf("receiver changed to %v", a)
	}
}

func TestRatFromFloat64(t *testing.T) {
	for _, f := range []float64{0, 0.1, -1.5, 1e-300, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		r, err := RatFromFloat64(f)
		if err != nil {
			t.Fatalf("RatFromFloat64(%v): %v", f, err)
		}
		if got := r.Float64(); got != f {
			t.Errorf("round trip %v = %v", f, got)
		}
	}
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := RatFromFloat64(f); !errors.Is(err, ErrNonFinite) {
			t.Errorf("RatFromFloat64(%v) err = %v, want ErrNonFinite", f, err)
		}
	}
}

func TestRatFloat32Narrowing(t *testing.T) {
	if got := NewRat(1, 3).Float32(); got != float32(1.0/3.0) {
		t.Errorf("1/3 = %v", got)
	}
	huge := RatFromInt(1).Mul(RatFromInt(1 << 62)).Mul(RatFromInt(1 << 62)).Mul(RatFromInt(1 << 62))
	huge = huge.Mul(huge)
	if got := huge.Float32(); !math.IsInf(float64(got), 1) {
		t.Errorf("2^372 narrowed to %v, want +Inf", got)
	}
}

func TestRatRoundTo(t *testing.T) {
	third := NewRat(1, 3)
	if got := third.RoundTo(0); got.Cmp(third) != 0 {
		t.Errorf("RoundTo(0) = %v, want exact", got)
	}
	r := third.RoundTo(24)
	if got := r.Float32(); got != float32(1.0/3.0) {
		t.Errorf("RoundTo(24) = %v", got)
	}
	if r.Cmp(third) == 0 {
		t.Error("RoundTo(24) should not be exact for 1/3")
	}
	// Values that already fit stay put.
	if got := NewRat(3, 4).RoundTo(8); got.Cmp(NewRat(3, 4)) != 0 {
		t.Errorf("3/4 rounded = %v", got)
	}
}

func TestRatBitExp(t *testing.T) {
	tests := []struct {
		r    Rat
		want int
	}{
		{RatFromInt(1), 0},
		{RatFromInt(8), 3},
		{NewRat(1, 8), -3},
		{NewRat(-1, 1 << 20), -20},
	}
	for _, tt := range tests {
		if got := tt.r.BitExp(); got != tt.want {
			t.Errorf("BitExp(%v) = %d, want %d", tt.r, got, tt.want)
		}
	}
	if got := (Rat{}).BitExp(); got != math.MinInt {
		t.Errorf("BitExp(0) = %d", got)
	}
}

func TestRatStrings(t *testing.T) {
	if got := NewRat(6, 4).String(); got != "3/2" {
		t.Errorf("String = %q, want 3/2", got)
	}
	if got := NewRat(1, 3).FloatString(4); got != "0.3333" {
		t.Errorf("FloatString = %q", got)
	}
}

func TestMinMax(t *testing.T) {
	a, b := NewRat(1, 3), NewRat(1, 2)
	if Min(a, b).Cmp(a) != 0 || Max(a, b).Cmp(b) != 0 {
		t.Error("Min/Max on Rat")
	}
	if Min(Float(2), Float(-1)) != -1 || Max(Float(2), Float(-1)) != 2 {
		t.Error("Min/Max on Float")
	}
}
