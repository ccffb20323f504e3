// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return Box2{Vector2FromPoint(rect.Min), Vector2FromPoint(rect.Max)}
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min = Vector2Scalar(Infinity)
	b.Max = Vector2Scalar(-Infinity)
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Size returns the size of this bounding box as a vector.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Width returns the width of this bounding box.
func (b Box2) Width() float32 {
	return b.Max.X - b.Min.X
}

// Height returns the height of this bounding box.
func (b Box2) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// Center returns the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Area returns the area of this bounding box.
func (b Box2) Area() float32 {
	return b.Width() * b.Height()
}

// Translate returns the box translated by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// Inset returns the box inset on all sides by the given amount.
// A negative amount inflates the box.
func (b Box2) Inset(amount float32) Box2 {
	return Box2{b.Min.AddScalar(amount), b.Max.AddScalar(-amount)}
}

// InsetSides returns the box inset by the given per-side amounts:
// top, right, bottom, left.
func (b Box2) InsetSides(top, right, bottom, left float32) Box2 {
	return Box2{
		Min: Vec2(b.Min.X+left, b.Min.Y+top),
		Max: Vec2(b.Max.X-right, b.Max.Y-bottom),
	}
}

// Union returns the smallest box containing both this box and the other.
func (b Box2) Union(other Box2) Box2 {
	return Box2{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// Intersect returns the intersection of this box with the other box.
func (b Box2) Intersect(other Box2) Box2 {
	return Box2{b.Min.Max(other.Min), b.Max.Min(other.Max)}
}

// ContainsPoint returns whether the box contains the given point.
func (b Box2) ContainsPoint(pt Vector2) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X && pt.Y >= b.Min.Y && pt.Y <= b.Max.Y
}

// ContainsBox returns whether the box fully contains the other box.
func (b Box2) ContainsBox(other Box2) bool {
	return b.Min.X <= other.Min.X && other.Max.X <= b.Max.X &&
		b.Min.Y <= other.Min.Y && other.Max.Y <= b.Max.Y
}

// MulScalar returns the box with both corners scaled by the given factor.
func (b Box2) MulScalar(scalar float32) Box2 {
	return Box2{b.Min.MulScalar(scalar), b.Max.MulScalar(scalar)}
}
