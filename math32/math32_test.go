// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, Vec2(5, 6), v.Add(Vec2(2, 2)))
	assert.Equal(t, Vec2(1, 2), v.Sub(Vec2(2, 2)))
	assert.Equal(t, Vec2(6, 8), v.MulScalar(2))
	assert.Equal(t, Vec2(1.5, 2), v.DivScalar(2))
	assert.Equal(t, Vec2(-3, -4), v.Negate())
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(11), v.Dot(Vec2(1, 2)))
	assert.Equal(t, Vec2(2, 2), Vector2Scalar(2))
	assert.Equal(t, Vec2(3, 2), v.Min(Vec2(7, 2)))
	assert.Equal(t, Vec2(7, 4), v.Max(Vec2(7, 2)))
}

func TestMatrix2Compose(t *testing.T) {
	// Mul applies its argument first.
	m := Translate2D(10, 0).Mul(Scale2D(2, 2))
	assert.Equal(t, Vec2(12, 2), m.MulVector2AsPoint(Vec2(1, 1)))

	m = Scale2D(2, 2).Mul(Translate2D(10, 0))
	assert.Equal(t, Vec2(22, 2), m.MulVector2AsPoint(Vec2(1, 1)))

	// Vectors ignore translation.
	assert.Equal(t, Vec2(2, 2), m.MulVector2AsVector(Vec2(1, 1)))
}

func TestMatrix2Rotate(t *testing.T) {
	m := Rotate2D(Pi / 2)
	p := m.MulVector2AsPoint(Vec2(1, 0))
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 1, p.Y, 1e-6)
	assert.InDelta(t, Pi/2, m.ExtractRot(), 1e-6)
}

func TestMatrix2Inverse(t *testing.T) {
	m := Translate2D(5, -3).Mul(Scale2D(2, 4))
	inv := m.Inverse()
	p := inv.MulVector2AsPoint(m.MulVector2AsPoint(Vec2(7, 11)))
	assert.InDelta(t, 7, p.X, 1e-5)
	assert.InDelta(t, 11, p.Y, 1e-5)

	assert.Equal(t, Identity2(), Scale2D(0, 0).Inverse())
}

func TestMatrix2IsIdentity(t *testing.T) {
	assert.True(t, Identity2().IsIdentity())
	assert.False(t, Translate2D(1, 0).IsIdentity())
}

func TestBox2(t *testing.T) {
	b := B2(10, 20, 110, 70)
	assert.Equal(t, float32(100), b.Width())
	assert.Equal(t, float32(50), b.Height())
	assert.Equal(t, Vec2(60, 45), b.Center())
	assert.Equal(t, float32(5000), b.Area())

	assert.Equal(t, B2(20, 30, 100, 60), b.Inset(10))
	assert.Equal(t, B2(0, 10, 120, 80), b.Inset(-10))
	assert.Equal(t, B2(15, 35, 115, 85), b.Translate(Vec2(5, 15)))

	assert.Equal(t, B2(0, 0, 110, 70), b.Union(B2(0, 0, 5, 5)))
	assert.Equal(t, B2(10, 20, 50, 50), b.Intersect(B2(0, 0, 50, 50)))
	assert.True(t, b.ContainsPoint(Vec2(10, 20)))
	assert.False(t, b.ContainsPoint(Vec2(9, 20)))
}

func TestFixedConversions(t *testing.T) {
	assert.Equal(t, fixed.Int26_6(96), ToFixed(1.5))
	assert.Equal(t, float32(1.5), FromFixed(fixed.Int26_6(96)))
	assert.Equal(t, float32(-1.5), FromFixed(fixed.Int26_6(-96)))
	assert.Equal(t, Vec2(0.5, -0.25), Vector2FromFixed(fixed.Point26_6{X: 32, Y: -16}))
	assert.Equal(t, B2(1, 2, 5, 7), B2FromRect(image.Rect(1, 2, 5, 7)))
}

func TestMulBox2(t *testing.T) {
	b := B2(0, 0, 10, 10)
	got := Translate2D(5, 5).Mul(Scale2D(2, 2)).MulBox2(b)
	assert.Equal(t, B2(5, 5, 25, 25), got)
}
