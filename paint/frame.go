// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"github.com/sumiweb/sumi/dom"
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/ppath"
	"github.com/sumiweb/sumi/sides"
	"github.com/sumiweb/sumi/styles"
)

// cssBox selects which box of a frame a path is built on.
type cssBox int32

const (
	outlineBox cssBox = iota
	outlineInnerBox
	borderBox
	paddingBox
	contentBox
)

type direction int32

const (
	clockwise direction = iota
	anticlockwise
)

// Frame is the resolved geometry of one element in device pixels:
// its boxes, border and padding widths, and clamped corner radii.
// It is computed once per element and then used to build the border,
// outline, background, and clip paths.
type Frame struct {
	BorderBox  math32.Box2
	PaddingBox math32.Box2
	ContentBox math32.Box2
	OutlineBox math32.Box2

	OutlineWidth float32

	// OutlineOffset is the gap between the border box and the inner
	// edge of the outline. Negative offsets pull the outline inward.
	OutlineOffset float32

	PaddingWidth sides.Floats
	BorderWidth  sides.Floats

	// Radii are the resolved border radii per corner, clamped so
	// adjacent corners never overlap.
	Radii sides.Sides[math32.Vector2]
}

// NewFrame derives the frame of an element from its style and layout
// box, scaling CSS pixels to device pixels. Percentage radii resolve
// against the border-box axis of the matching dimension.
func NewFrame(style *styles.Style, layout *dom.Layout, scale float32) *Frame {
	f := &Frame{}

	width := layout.Width * scale
	height := layout.Height * scale
	for s := sides.Top; s <= sides.Left; s++ {
		f.BorderWidth.SetSide(s, style.Border.Width.Side(s)*scale)
		f.PaddingWidth.SetSide(s, style.Padding.Side(s)*scale)
	}
	f.OutlineWidth = style.Outline.Width * scale
	f.OutlineOffset = style.Outline.Offset * scale

	f.BorderBox = math32.B2(0, 0, width, height)
	f.PaddingBox = f.BorderBox.InsetSides(
		f.BorderWidth.Top, f.BorderWidth.Right, f.BorderWidth.Bottom, f.BorderWidth.Left)
	f.ContentBox = f.PaddingBox.InsetSides(
		f.PaddingWidth.Top, f.PaddingWidth.Right, f.PaddingWidth.Bottom, f.PaddingWidth.Left)
	f.OutlineBox = f.BorderBox.Inset(-(f.OutlineWidth + f.OutlineOffset))

	for c := sides.Top; c <= sides.Left; c++ {
		r := style.Border.Radius.Side(c)
		f.Radii.SetSide(c, math32.Vec2(
			r.X.ToDots(layout.Width)*scale,
			r.Y.ToDots(layout.Height)*scale,
		))
	}

	// Clamp the radii so adjacent corners never overlap: shrink all
	// of them by the smallest side-length to radii-sum ratio.
	topOverlap := width / (f.Radii.Top.X + f.Radii.Right.X)
	bottomOverlap := width / (f.Radii.Left.X + f.Radii.Bottom.X)
	leftOverlap := height / (f.Radii.Top.Y + f.Radii.Left.Y)
	rightOverlap := height / (f.Radii.Right.Y + f.Radii.Bottom.Y)
	minFactor := math32.Min(
		math32.Min(topOverlap, bottomOverlap),
		math32.Min(leftOverlap, rightOverlap))
	if minFactor < 1 {
		for c := sides.Top; c <= sides.Left; c++ {
			f.Radii.SetSide(c, f.Radii.Side(c).MulScalar(minFactor))
		}
	}

	return f
}

// HasRadius reports whether any corner is rounded after clamping.
func (f *Frame) HasRadius() bool {
	for c := sides.Top; c <= sides.Left; c++ {
		r := f.Radii.Side(c)
		if r.X != 0 && r.Y != 0 {
			return true
		}
	}
	return false
}

func (f *Frame) box(b cssBox) math32.Box2 {
	switch b {
	case outlineBox:
		return f.OutlineBox
	case outlineInnerBox:
		return f.BorderBox.Inset(-f.OutlineOffset)
	case paddingBox:
		return f.PaddingBox
	case contentBox:
		return f.ContentBox
	default:
		return f.BorderBox
	}
}

// corner returns the sharp corner point of the given box.
func (f *Frame) corner(c sides.Indexes, b cssBox) math32.Vector2 {
	box := f.box(b)
	switch c {
	case sides.Top: // top-left
		return box.Min
	case sides.Right: // top-right
		return math32.Vec2(box.Max.X, box.Min.Y)
	case sides.Bottom: // bottom-right
		return box.Max
	default: // bottom-left
		return math32.Vec2(box.Min.X, box.Max.Y)
	}
}

// cornerInsets returns the x and y inset of the given corner for the
// given per-side widths.
func cornerInsets(w sides.Floats, c sides.Indexes) math32.Vector2 {
	switch c {
	case sides.Top: // top-left
		return math32.Vec2(w.Left, w.Top)
	case sides.Right: // top-right
		return math32.Vec2(w.Right, w.Top)
	case sides.Bottom: // bottom-right
		return math32.Vec2(w.Right, w.Bottom)
	default: // bottom-left
		return math32.Vec2(w.Left, w.Bottom)
	}
}

// isSharp reports whether the corner of the given box has no arc:
// either the border radius is zero, or the box is inset past the
// radius.
func (f *Frame) isSharp(c sides.Indexes, b cssBox) bool {
	r := f.Radii.Side(c)
	if r.X == 0 || r.Y == 0 {
		return true
	}
	var w sides.Floats
	switch b {
	case outlineBox, outlineInnerBox, borderBox:
		return false
	case paddingBox:
		w = f.BorderWidth
	default:
		w = sides.Add(f.BorderWidth, f.PaddingWidth)
	}
	in := cornerInsets(w, c)
	return r.X <= in.X || r.Y <= in.Y
}

// ellipse returns the center and radii of the corner's arc on the
// given box. The center is shared across boxes; the radii shrink by
// the box insets.
func (f *Frame) ellipse(c sides.Indexes, b cssBox) (center, radii math32.Vector2) {
	r := f.Radii.Side(c)
	size := f.BorderBox.Size()
	switch c {
	case sides.Top: // top-left
		center = r
	case sides.Right: // top-right
		center = math32.Vec2(size.X-r.X, r.Y)
	case sides.Bottom: // bottom-right
		center = math32.Vec2(size.X-r.X, size.Y-r.Y)
	default: // bottom-left
		center = math32.Vec2(r.X, size.Y-r.Y)
	}
	center = center.Add(f.BorderBox.Min)

	switch b {
	case borderBox:
		radii = r
	case outlineBox:
		radii = r.AddScalar(f.OutlineWidth + f.OutlineOffset).Max(math32.Vector2{})
	case outlineInnerBox:
		radii = r.AddScalar(f.OutlineOffset).Max(math32.Vector2{})
	case paddingBox:
		radii = r.Sub(cornerInsets(f.BorderWidth, c))
	default:
		radii = r.Sub(cornerInsets(sides.Add(f.BorderWidth, f.PaddingWidth), c))
	}
	return center, radii
}

// cornerArc returns the quarter arc of a corner on the given box,
// swept clockwise or anticlockwise.
func (f *Frame) cornerArc(c sides.Indexes, b cssBox, dir direction) ppath.Arc {
	center, radii := f.ellipse(c, b)

	sweep := float32(1)
	if dir == anticlockwise {
		sweep = -1
	}

	var offset float32
	switch c {
	case sides.Top: // top-left
		offset = -math32.Pi / 2
	case sides.Right: // top-right
		offset = 0
	case sides.Bottom: // bottom-right
		offset = math32.Pi / 2
	default: // bottom-left
		offset = math32.Pi
	}
	if dir == anticlockwise {
		offset += math32.Pi / 2
	}

	// The arc parameterization starts on the positive x axis, so
	// shift by 3pi/2 to land on the top of the unit circle.
	return ppath.Arc{
		Center: center,
		Radii:  radii,
		Start:  offset + math32.Pi + math32.Pi/2,
		Sweep:  math32.Pi / 2 * sweep,
	}
}

// startAngle solves for the angle at which the border color changes
// within a corner arc, from the ratio of the two adjacent border
// widths and the corner radii.
func startAngle(btWidth, brWidth float32, radii math32.Vector2) float32 {
	w := btWidth / brWidth
	x := radii.Y / (w * radii.X)
	return math32.Atan((x-math32.Sqrt(x)*math32.Sqrt2)/(x-2)) * 2
}

func (f *Frame) cornerStartAngle(c sides.Indexes, radii math32.Vector2) float32 {
	in := cornerInsets(f.BorderWidth, c)
	return startAngle(in.Y, in.X, radii)
}

// partialCornerArc returns the half of a corner arc belonging to one
// edge, for corners where the two adjacent edges may differ in color.
// The split angle depends on the ratio of the adjacent border widths.
func (f *Frame) partialCornerArc(c sides.Indexes, b cssBox, edge sides.Indexes, dir direction) ppath.Arc {
	center, radii := f.ellipse(c, b)
	theta := f.cornerStartAngle(c, radii)

	sweep := float32(1)
	if dir == anticlockwise {
		sweep = -1
	}

	var offset float32
	switch edge {
	case sides.Top:
		offset = 0
	case sides.Right:
		offset = math32.Pi / 2
	case sides.Bottom:
		offset = math32.Pi
	default:
		offset = math32.Pi + math32.Pi/2
	}

	if edge == sides.Top || edge == sides.Bottom {
		theta = math32.Pi/2 - theta
	}

	var start float32
	switch {
	case c == edge && b == paddingBox:
		// First corner, inner arc: begins at the split.
		start = 0
	case c == edge && b == borderBox:
		// First corner, outer arc: sweeps up to the split.
		start = -theta
	case b == borderBox:
		start = 0
	default:
		start = theta
	}

	return ppath.Arc{
		Center: center,
		Radii:  radii,
		Start:  start + offset + math32.Pi + math32.Pi/2,
		Sweep:  theta * sweep,
	}
}

// cornerNeedsInfill reports whether the border radius exceeds the
// border width on both axes of the corner, leaving a gap that the
// edge's inner arc must fill.
func (f *Frame) cornerNeedsInfill(c sides.Indexes) bool {
	r := f.Radii.Side(c)
	in := cornerInsets(f.BorderWidth, c)
	return r.X > in.X && r.Y > in.Y
}

// edgeCorners returns the first and second corner of an edge in paint
// order.
func edgeCorners(edge sides.Indexes) (c0, c1 sides.Indexes) {
	switch edge {
	case sides.Top:
		return sides.Top, sides.Right // top-left, top-right
	case sides.Right:
		return sides.Right, sides.Bottom // top-right, bottom-right
	case sides.Bottom:
		return sides.Bottom, sides.Left // bottom-right, bottom-left
	default:
		return sides.Left, sides.Top // bottom-left, top-left
	}
}

// BorderEdgePath builds the fill path of one border edge: the region
// between the border box and padding box on that side, with the
// corner arcs split so adjacent edges of different colors meet
// exactly on the outer-to-inner corner diagonal.
func (f *Frame) BorderEdgePath(edge sides.Indexes) *ppath.Path {
	p := &ppath.Path{}
	c0, c1 := edgeCorners(edge)

	if f.isSharp(c0, borderBox) {
		p.MoveTo(f.corner(c0, paddingBox))
		p.LineTo(f.corner(c0, borderBox))
	} else {
		if f.cornerNeedsInfill(c0) {
			p.InsertArc(f.partialCornerArc(c0, paddingBox, edge, anticlockwise))
		} else {
			p.MoveTo(f.corner(c0, paddingBox))
		}
		p.InsertArc(f.partialCornerArc(c0, borderBox, edge, clockwise))
	}

	if f.isSharp(c1, borderBox) {
		p.LineTo(f.corner(c1, borderBox))
		p.LineTo(f.corner(c1, paddingBox))
	} else {
		p.InsertArc(f.partialCornerArc(c1, borderBox, edge, clockwise))
		if f.cornerNeedsInfill(c1) {
			p.InsertArc(f.partialCornerArc(c1, paddingBox, edge, anticlockwise))
		} else {
			p.LineTo(f.corner(c1, paddingBox))
		}
	}

	return p
}

// shape appends the rounded outline of a box, traversed in the given
// direction.
func (f *Frame) shape(p *ppath.Path, b cssBox, dir direction) {
	route := [4]sides.Indexes{sides.Top, sides.Right, sides.Bottom, sides.Left}
	if dir == anticlockwise {
		route = [4]sides.Indexes{sides.Top, sides.Left, sides.Bottom, sides.Right}
	}
	for _, c := range route {
		if f.isSharp(c, b) {
			p.LineOrMoveTo(f.corner(c, b))
		} else {
			p.InsertArc(f.cornerArc(c, b, dir))
		}
	}
}

// BorderBoxPath returns the rounded border-box outline.
func (f *Frame) BorderBoxPath() *ppath.Path {
	p := &ppath.Path{}
	f.shape(p, borderBox, clockwise)
	return p
}

// PaddingBoxPath returns the rounded padding-box outline.
func (f *Frame) PaddingBoxPath() *ppath.Path {
	p := &ppath.Path{}
	f.shape(p, paddingBox, clockwise)
	return p
}

// ContentBoxPath returns the rounded content-box outline.
func (f *Frame) ContentBoxPath() *ppath.Path {
	p := &ppath.Path{}
	f.shape(p, contentBox, clockwise)
	return p
}

// BackgroundClipPath returns the rounded outline of the given
// background clip box.
func (f *Frame) BackgroundClipPath(clip styles.BackgroundBox) *ppath.Path {
	switch clip {
	case styles.PaddingBox:
		return f.PaddingBoxPath()
	case styles.ContentBox:
		return f.ContentBoxPath()
	default:
		return f.BorderBoxPath()
	}
}

// BackgroundClipBox returns the rectangle of the given background box.
func (f *Frame) BackgroundClipBox(clip styles.BackgroundBox) math32.Box2 {
	switch clip {
	case styles.PaddingBox:
		return f.PaddingBox
	case styles.ContentBox:
		return f.ContentBox
	default:
		return f.BorderBox
	}
}

// OutlinePath returns the outline ring: the outline box clockwise
// with the border box, pushed out by the outline offset, cut out of
// it anticlockwise.
func (f *Frame) OutlinePath() *ppath.Path {
	p := &ppath.Path{}
	f.shape(p, outlineBox, clockwise)
	p.MoveTo(f.corner(sides.Top, outlineInnerBox))
	f.shape(p, outlineInnerBox, anticlockwise)
	p.MoveTo(f.corner(sides.Top, outlineInnerBox))
	return p
}

// ShadowClipPath returns a clip for outset shadows: the given shadow
// extent rectangle with the element's rounded border box cut out, so
// the shadow never shows through the element itself.
func (f *Frame) ShadowClipPath(shadowRect math32.Box2) *ppath.Path {
	p := &ppath.Path{}
	for _, c := range [4]sides.Indexes{sides.Top, sides.Right, sides.Bottom, sides.Left} {
		var pt math32.Vector2
		switch c {
		case sides.Top:
			pt = shadowRect.Min
		case sides.Right:
			pt = math32.Vec2(shadowRect.Max.X, shadowRect.Min.Y)
		case sides.Bottom:
			pt = shadowRect.Max
		default:
			pt = math32.Vec2(shadowRect.Min.X, shadowRect.Max.Y)
		}
		p.LineOrMoveTo(pt)
	}

	// Inner subpath, wound the other way so the nonzero fill leaves
	// a hole over the element.
	if f.isSharp(sides.Top, borderBox) {
		p.MoveTo(f.corner(sides.Top, borderBox))
	} else {
		arc := f.cornerArc(sides.Top, borderBox, anticlockwise)
		p.MoveTo(arc.Point(arc.Start))
		p.InsertArc(arc)
	}
	for _, c := range [3]sides.Indexes{sides.Left, sides.Bottom, sides.Right} {
		if f.isSharp(c, borderBox) {
			p.LineOrMoveTo(f.corner(c, borderBox))
		} else {
			p.InsertArc(f.cornerArc(c, borderBox, anticlockwise))
		}
	}
	return p
}
