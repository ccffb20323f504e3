// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"github.com/sumiweb/sumi/sides"
	"github.com/sumiweb/sumi/styles/units"
)

// BorderStyle is the line style of a border edge or outline.
// Only solid rendering is implemented; the decorative styles paint
// as solid.
type BorderStyle int32

const (
	BorderNone BorderStyle = iota
	BorderHidden
	BorderSolid
	BorderDotted
	BorderDashed
	BorderDouble
	BorderGroove
	BorderRidge
	BorderInset
	BorderOutset
)

// IsPainted reports whether the style produces any ink.
func (b BorderStyle) IsPainted() bool {
	return b != BorderNone && b != BorderHidden
}

// CornerRadii is the horizontal and vertical radius of one border
// corner. Percentages resolve against the border-box dimension of the
// matching axis.
type CornerRadii struct {
	X, Y units.Value
}

// Border is the border of an element, with independent per-side widths,
// styles, and colors, and per-corner radii. Corners follow the
// [sides.Sides] convention: Top is top-left, Right is top-right,
// Bottom is bottom-right, Left is bottom-left.
type Border struct {
	// Width is the border width per side, in CSS pixels. An edge whose
	// style is none or hidden has width zero by style resolution.
	Width sides.Floats

	// Style is the line style per side.
	Style sides.Sides[BorderStyle]

	// Color is the resolved color per side.
	Color sides.Sides[color.RGBA]

	// Radius is the per-corner radii.
	Radius sides.Sides[CornerRadii]
}

// HasRadius reports whether any corner has a nonzero radius.
func (b *Border) HasRadius() bool {
	for c := sides.Top; c <= sides.Left; c++ {
		r := b.Radius.Side(c)
		if !r.X.IsZero() || !r.Y.IsZero() {
			return true
		}
	}
	return false
}

// Outline is the outline of an element, drawn outside the border box
// without affecting layout.
type Outline struct {
	// Width is the outline width in CSS pixels.
	Width float32

	// Offset is the gap between the border box and the outline, in
	// CSS pixels. Negative offsets move the outline inward.
	Offset float32

	// Style is the line style; none and hidden suppress the outline.
	Style BorderStyle

	// Color is the resolved outline color.
	Color color.RGBA
}

// Shadow is one entry of the box-shadow list.
type Shadow struct {
	// OffsetX and OffsetY displace the shadow, in CSS pixels.
	OffsetX, OffsetY float32

	// Blur is the blur radius in CSS pixels.
	Blur float32

	// Spread grows (or shrinks, if negative) the shadow rectangle on
	// all sides before blurring, in CSS pixels.
	Spread float32

	// Color is the resolved shadow color.
	Color color.RGBA

	// Inset draws the shadow inside the border box instead of
	// outside.
	Inset bool
}
