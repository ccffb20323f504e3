// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides provides flexible representation of box sides
// or corners, with either a single value for all, or different values
// for subsets.
package sides

import "log/slog"

// Indexes provides names for the Sides in order defined.
type Indexes int32

const (
	Top Indexes = iota
	Right
	Bottom
	Left
)

// Sides contains values for each side or corner of a box.
// If Sides contains sides, the struct field names correspond
// directly to the side values (ie: Top = top side value).
// If Sides contains corners, the struct field names correspond
// to the corners as follows: Top = top left, Right = top right,
// Bottom = bottom right, Left = bottom left.
type Sides[T any] struct {

	// top/top-left value
	Top T

	// right/top-right value
	Right T

	// bottom/bottom-right value
	Bottom T

	// left/bottom-left value
	Left T
}

// NewSides is a helper that creates new sides/corners of the given type
// and calls Set on them with the given values.
func NewSides[T any](vals ...T) Sides[T] {
	s := Sides[T]{}
	s.Set(vals...)
	return s
}

// Set sets the values of the sides/corners from the given list of 0 to 4
// values, using the CSS multi-side/corner setting syntax
// (see https://www.w3schools.com/css/css_padding.asp): 1 value sets all,
// 2 sets vertical then horizontal, 3 sets top, horizontal, bottom,
// and 4 sets top, right, bottom, left.
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	switch len(vals) {
	case 0:
		var zval T
		s.SetAll(zval)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.SetVertical(vals[0])
		s.SetHorizontal(vals[1])
	case 3:
		s.Top = vals[0]
		s.SetHorizontal(vals[1])
		s.Bottom = vals[2]
	case 4:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
	default:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
		slog.Error("programmer error: sides.Set: expected 0 to 4 values, but got", "numValues", len(vals))
	}
	return s
}

// SetAll sets all of the sides/corners to the given value.
func (s *Sides[T]) SetAll(val T) *Sides[T] {
	s.Top = val
	s.Right = val
	s.Bottom = val
	s.Left = val
	return s
}

// SetVertical sets the values for the sides/corners in the
// vertical/diagonally descending direction
// (top/top-left and bottom/bottom-right) to the given value.
func (s *Sides[T]) SetVertical(val T) *Sides[T] {
	s.Top = val
	s.Bottom = val
	return s
}

// SetHorizontal sets the values for the sides/corners in the
// horizontal/diagonally ascending direction
// (right/top-right and left/bottom-left) to the given value.
func (s *Sides[T]) SetHorizontal(val T) *Sides[T] {
	s.Right = val
	s.Left = val
	return s
}

// SetSide sets the value for the given side index.
func (s *Sides[T]) SetSide(i Indexes, val T) {
	switch i {
	case Top:
		s.Top = val
	case Right:
		s.Right = val
	case Bottom:
		s.Bottom = val
	default:
		s.Left = val
	}
}

// Side returns the value for the given side index.
func (s Sides[T]) Side(i Indexes) T {
	switch i {
	case Top:
		return s.Top
	case Right:
		return s.Right
	case Bottom:
		return s.Bottom
	default:
		return s.Left
	}
}
