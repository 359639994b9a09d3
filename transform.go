package deepzoom

import (
	"fmt"
	"strings"
)

// Matrix3 is a 3x3 matrix in row-major order representing a 2D affine
// transform in homogeneous coordinates:
//
//	| m0 m1 m2 |
//	| m3 m4 m5 |
//	| m6 m7 m8 |
//
// The bottom row is [0 0 1] for every matrix built from Identity, Scale and
// Translate, but the type does not enforce it.
type Matrix3[N Number[N]] [9]N

// Identity returns the identity matrix.
func Identity[N Number[N]]() Matrix3[N] {
	return Scale(One[N](), One[N]())
}

// Scale returns a matrix scaling x by sx and y by sy.
func Scale[N Number[N]](sx, sy N) Matrix3[N] {
	z, o := Zero[N](), One[N]()
	return Matrix3[N]{
		sx, z, z,
		z, sy, z,
		z, z, o,
	}
}

// Translate returns a matrix translating by (tx, ty).
func Translate[N Number[N]](tx, ty N) Matrix3[N] {
	z, o := Zero[N](), One[N]()
	return Matrix3[N]{
		o, z, tx,
		z, o, ty,
		z, z, o,
	}
}

// ScaleAround returns Translate(px, py) * Scale(s, s) * Translate(-px, -py),
// a uniform scale that leaves (px, py) fixed.
func ScaleAround[N Number[N]](px, py, s N) Matrix3[N] {
	return Translate(px, py).Mul(Scale(s, s)).Mul(Translate(px.Neg(), py.Neg()))
}

// Mul returns the product m * o. Applied to a point, o acts first and m second,
// so accumulating state with m = m.Mul(step) applies each new step in the
// local frame of everything before it.
func (m Matrix3[N]) Mul(o Matrix3[N]) Matrix3[N] {
	var r Matrix3[N]
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3].Mul(o[col]).
				Add(m[row*3+1].Mul(o[3+col])).
				Add(m[row*3+2].Mul(o[6+col]))
		}
	}
	return r
}

// Apply returns m * (x, y, 1). For affine matrices w is 1.
func (m Matrix3[N]) Apply(x, y N) (tx, ty, w N) {
	tx = m[0].Mul(x).Add(m[1].Mul(y)).Add(m[2])
	ty = m[3].Mul(x).Add(m[4].Mul(y)).Add(m[5])
	w = m[6].Mul(x).Add(m[7].Mul(y)).Add(m[8])
	return tx, ty, w
}

// At returns the entry in the given column and row. At(c, r) == m[r*3+c].
func (m Matrix3[N]) At(column, row int) N {
	return m[row*3+column]
}

// Equal reports whether every entry of m compares equal to the entry of o.
func (m Matrix3[N]) Equal(o Matrix3[N]) bool {
	for i := range m {
		if m[i].Cmp(o[i]) != 0 {
			return false
		}
	}
	return true
}

// Lerp returns m + (o - m) * t, entry by entry.
func (m Matrix3[N]) Lerp(o Matrix3[N], t N) Matrix3[N] {
	var r Matrix3[N]
	for i := range m {
		r[i] = m[i].Add(o[i].Sub(m[i]).Mul(t))
	}
	return r
}

func (m Matrix3[N]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range m {
		if i > 0 {
			if i%3 == 0 {
				b.WriteString("; ")
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(m[i].String())
	}
	b.WriteByte(']')
	return b.String()
}

// NarrowMatrix converts an exact matrix to the render precision.
func NarrowMatrix(m Matrix3[Rat]) Matrix3[Float] {
	var r Matrix3[Float]
	for i := range m {
		r[i] = Float(m[i].Float32())
	}
	return r
}

// WidenMatrix converts a render-precision matrix to exact values. It fails only
// if an entry is NaN or infinite.
func WidenMatrix(m Matrix3[Float]) (Matrix3[Rat], error) {
	var r Matrix3[Rat]
	for i := range m {
		v, err := RatFromFloat32(float32(m[i]))
		if err != nil {
			return Matrix3[Rat]{}, fmt.Errorf("widen entry %d: %w", i, err)
		}
		r[i] = v
	}
	return r, nil
}
