package deepzoom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func ratMatrix(vals ...int64) Matrix3[Rat] {
	var m Matrix3[Rat]
	for i := range m {
		m[i] = RatFromInt(vals[i])
	}
	return m
}

func assertMatrix(t *testing.T, name string, got, want Matrix3[Rat]) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Constructors ---

func TestIdentity(t *testing.T) {
	assertMatrix(t, "identity", Identity[Rat](), ratMatrix(1, 0, 0, 0, 1, 0, 0, 0, 1))
	f := Identity[Float]()
	want := Matrix3[Float]{1, 0, 0, 0, 1, 0, 0, 0, 1}
	if f != want {
		t.Errorf("float identity = %v, want %v", f, want)
	}
}

func TestScaleTranslateLayout(t *testing.T) {
	assertMatrix(t, "scale", Scale(RatFromInt(2), RatFromInt(3)), ratMatrix(2, 0, 0, 0, 3, 0, 0, 0, 1))
	assertMatrix(t, "translate", Translate(RatFromInt(4), RatFromInt(5)), ratMatrix(1, 0, 4, 0, 1, 5, 0, 0, 1))
}

// --- Mul ---

func TestMulKnownProduct(t *testing.T) {
	a := ratMatrix(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := ratMatrix(9, 8, 7, 6, 5, 4, 3, 2, 1)
	assertMatrix(t, "a*b", a.Mul(b), ratMatrix(30, 24, 18, 84, 69, 54, 138, 114, 90))
}

func TestMulIdentity(t *testing.T) {
	a := ratMatrix(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assertMatrix(t, "a*I", a.Mul(Identity[Rat]()), a)
	assertMatrix(t, "I*a", Identity[Rat]().Mul(a), a)
}

func TestTranslateInverse(t *testing.T) {
	x, y := NewRat(7, 3), NewRat(-5, 11)
	got := Translate(x, y).Mul(Translate(x.Neg(), y.Neg()))
	assertMatrix(t, "T*T^-1", got, Identity[Rat]())
}

func TestScaleInverse(t *testing.T) {
	s := NewRat(3, 7)
	inv, err := One[Rat]().Div(s)
	if err != nil {
		t.Fatal(err)
	}
	got := Scale(s, s).Mul(Scale(inv, inv))
	assertMatrix(t, "S*S^-1", got, Identity[Rat]())
}

func TestMulOrderMatters(t *testing.T) {
	s := Scale(RatFromInt(2), RatFromInt(2))
	tr := Translate(RatFromInt(1), RatFromInt(0))

	// tr acts first: (0,0) -> (1,0) -> (2,0).
	x, _, _ := s.Mul(tr).Apply(Rat{}, Rat{})
	if x.Cmp(RatFromInt(2)) != 0 {
		t.Errorf("S*T origin x = %v, want 2", x)
	}
	// s acts first: (0,0) -> (0,0) -> (1,0).
	x, _, _ = tr.Mul(s).Apply(Rat{}, Rat{})
	if x.Cmp(RatFromInt(1)) != 0 {
		t.Errorf("T*S origin x = %v, want 1", x)
	}
}

func TestMulFloatMatchesRat(t *testing.T) {
	a := ratMatrix(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := ratMatrix(9, 8, 7, 6, 5, 4, 3, 2, 1)
	got := NarrowMatrix(a).Mul(NarrowMatrix(b))
	want := NarrowMatrix(a.Mul(b))
	if got != want {
		t.Errorf("float product = %v, want %v", got, want)
	}
}

// --- Apply / At ---

func TestApplyAffine(t *testing.T) {
	m := Translate(RatFromInt(3), RatFromInt(-1)).Mul(Scale(RatFromInt(2), RatFromInt(4)))
	x, y, w := m.Apply(RatFromInt(1), RatFromInt(1))
	if x.Cmp(RatFromInt(5)) != 0 || y.Cmp(RatFromInt(3)) != 0 || w.Cmp(RatFromInt(1)) != 0 {
		t.Errorf("Apply = (%v, %v, %v), want (5, 3, 1)", x, y, w)
	}
}

func TestAtColumnRow(t *testing.T) {
	m := ratMatrix(0, 1, 2, 3, 4, 5, 6, 7, 8)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := RatFromInt(int64(row*3 + col))
			if got := m.At(col, row); got.Cmp(want) != 0 {
				t.Errorf("At(%d, %d) = %v, want %v", col, row, got, want)
			}
		}
	}
}

// --- ScaleAround ---

func TestScaleAroundFixedPoint(t *testing.T) {
	px, py := NewRat(1, 3), NewRat(-2, 5)
	m := ScaleAround(px, py, NewRat(7, 2))
	x, y, _ := m.Apply(px, py)
	if x.Cmp(px) != 0 || y.Cmp(py) != 0 {
		t.Errorf("pivot moved to (%v, %v)", x, y)
	}
	// A point one unit right of the pivot ends 3.5 units right of it.
	x, _, _ = m.Apply(px.Add(One[Rat]()), py)
	if d := x.Sub(px); d.Cmp(NewRat(7, 2)) != 0 {
		t.Errorf("offset = %v, want 7/2", d)
	}
}

// --- Lerp ---

func TestLerp(t *testing.T) {
	a := Scale(RatFromInt(4), RatFromInt(4))
	b := Identity[Rat]()
	assertMatrix(t, "t=0", a.Lerp(b, Rat{}), a)
	assertMatrix(t, "t=1", a.Lerp(b, One[Rat]()), b)
	mid := a.Lerp(b, Half[Rat]())
	if got := mid[0].Float64(); got != 2.5 {
		t.Errorf("t=0.5 m0 = %v, want 2.5", got)
	}
}

// --- Conversions ---

func TestNarrowWiden(t *testing.T) {
	m := Translate(NewRat(1, 4), NewRat(-3, 8))
	back, err := WidenMatrix(NarrowMatrix(m))
	if err != nil {
		t.Fatal(err)
	}
	assertMatrix(t, "round trip", back, m)

	bad := Identity[Float]()
	bad[2] = Float(math.Inf(1))
	if _, err := WidenMatrix(bad); err == nil {
		t.Error("expected error widening +Inf")
	}
}

func TestMatrixString(t *testing.T) {
	got := Translate(NewRat(1, 2), RatFromInt(3)).String()
	want := "[1 0 1/2; 0 1 3; 0 0 1]"
	if got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
