// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sides

// Floats contains float32 values for each side/corner of a box.
type Floats = Sides[float32]

// NewFloats is a helper that creates new sides/corners
// and calls Set on them with the given values.
func NewFloats(vals ...float32) Floats {
	return NewSides(vals...)
}

// SumHorizontal returns the sum of the Left and Right side values.
func SumHorizontal(s Floats) float32 {
	return s.Left + s.Right
}

// SumVertical returns the sum of the Top and Bottom side values.
func SumVertical(s Floats) float32 {
	return s.Top + s.Bottom
}

// Add returns the element-wise sum of two side value sets.
func Add(a, b Floats) Floats {
	return Floats{
		Top:    a.Top + b.Top,
		Right:  a.Right + b.Right,
		Bottom: a.Bottom + b.Bottom,
		Left:   a.Left + b.Left,
	}
}

// MulScalar returns the side values multiplied by the given scalar.
func MulScalar(s Floats, scalar float32) Floats {
	return Floats{
		Top:    s.Top * scalar,
		Right:  s.Right * scalar,
		Bottom: s.Bottom * scalar,
		Left:   s.Left * scalar,
	}
}
