// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix2 is a 3x2 affine transformation matrix, storing the six
// non-constant elements in column-major order:
//
//	XX YX
//	XY YY
//	X0 Y0
//
// Point transformation is: X' = XX*X + XY*Y + X0; Y' = YX*X + YY*Y + Y0.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// NewMatrix2 returns a new [Matrix2] with the given elements.
func NewMatrix2(xx, yx, xy, yy, x0, y0 float32) Matrix2 {
	return Matrix2{xx, yx, xy, yy, x0, y0}
}

// Translate2D returns a new [Matrix2] that translates by the given offsets.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YY: 1, X0: x, Y0: y}
}

// Scale2D returns a new [Matrix2] that scales by the given factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{XX: x, YY: y}
}

// Rotate2D returns a new [Matrix2] that rotates by the given angle in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{XX: c, YX: s, XY: -s, YY: c}
}

// Skew2D returns a new [Matrix2] that skews by the given angles in radians.
func Skew2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YX: Tan(y), XY: Tan(x), YY: 1}
}

// IsIdentity returns whether the matrix is the identity transform.
func (m Matrix2) IsIdentity() bool {
	return m == Identity2()
}

// Mul returns m*o. This applies o first, and then m,
// the *reverse* of the "logical" order.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*o.XX + m.XY*o.YX,
		YX: m.YX*o.XX + m.YY*o.YX,
		XY: m.XX*o.XY + m.XY*o.YY,
		YY: m.YX*o.XY + m.YY*o.YY,
		X0: m.XX*o.X0 + m.XY*o.Y0 + m.X0,
		Y0: m.YX*o.X0 + m.YY*o.Y0 + m.Y0,
	}
}

// Translate returns the matrix with the given translation applied before m,
// equivalent to m.Mul(Translate2D(x, y)).
func (m Matrix2) Translate(x, y float32) Matrix2 {
	return m.Mul(Translate2D(x, y))
}

// Scale returns the matrix with the given scaling applied before m,
// equivalent to m.Mul(Scale2D(x, y)).
func (m Matrix2) Scale(x, y float32) Matrix2 {
	return m.Mul(Scale2D(x, y))
}

// MulVector2AsPoint returns the vector transformed as a point,
// including the translation components.
func (m Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(m.XX*v.X+m.XY*v.Y+m.X0, m.YX*v.X+m.YY*v.Y+m.Y0)
}

// MulVector2AsVector returns the vector transformed as a vector,
// without the translation components.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(m.XX*v.X+m.XY*v.Y, m.YX*v.X+m.YY*v.Y)
}

// MulBox2 returns the axis-aligned bounding box of the given box
// transformed as points by the matrix.
func (m Matrix2) MulBox2(b Box2) Box2 {
	tl := m.MulVector2AsPoint(b.Min)
	tr := m.MulVector2AsPoint(Vec2(b.Max.X, b.Min.Y))
	bl := m.MulVector2AsPoint(Vec2(b.Min.X, b.Max.Y))
	br := m.MulVector2AsPoint(b.Max)
	return Box2{
		Min: tl.Min(tr).Min(bl).Min(br),
		Max: tl.Max(tr).Max(bl).Max(br),
	}
}

// Inverse returns the inverse of the matrix.
// A degenerate (zero-determinant) matrix inverts to the identity.
func (m Matrix2) Inverse() Matrix2 {
	det := m.XX*m.YY - m.XY*m.YX
	if det == 0 {
		return Identity2()
	}
	inv := 1 / det
	return Matrix2{
		XX: m.YY * inv,
		YX: -m.YX * inv,
		XY: -m.XY * inv,
		YY: m.XX * inv,
		X0: (m.XY*m.Y0 - m.YY*m.X0) * inv,
		Y0: (m.YX*m.X0 - m.XX*m.Y0) * inv,
	}
}

// ExtractRot extracts the rotation angle in radians from the matrix.
func (m Matrix2) ExtractRot() float32 {
	return Atan2(-m.XY, m.XX)
}
