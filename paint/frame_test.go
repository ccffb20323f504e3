// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sumiweb/sumi/dom"
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/ppath"
	"github.com/sumiweb/sumi/sides"
	"github.com/sumiweb/sumi/styles"
	"github.com/sumiweb/sumi/styles/units"
)

func frameStyle() *styles.Style {
	s := styles.NewStyle()
	s.Border.Width.SetAll(2)
	s.Padding.SetAll(3)
	s.Outline.Width = 4
	return s
}

func TestFrameBoxes(t *testing.T) {
	layout := &dom.Layout{Width: 100, Height: 50}
	f := NewFrame(frameStyle(), layout, 1)

	assert.Equal(t, math32.B2(0, 0, 100, 50), f.BorderBox)
	assert.Equal(t, math32.B2(2, 2, 98, 48), f.PaddingBox)
	assert.Equal(t, math32.B2(5, 5, 95, 45), f.ContentBox)
	assert.Equal(t, math32.B2(-4, -4, 104, 54), f.OutlineBox)
	assert.False(t, f.HasRadius())
}

func TestFrameScale(t *testing.T) {
	layout := &dom.Layout{Width: 100, Height: 50}
	f := NewFrame(frameStyle(), layout, 2)

	assert.Equal(t, math32.B2(0, 0, 200, 100), f.BorderBox)
	assert.Equal(t, math32.B2(4, 4, 196, 96), f.PaddingBox)
	assert.Equal(t, math32.B2(10, 10, 190, 90), f.ContentBox)
	assert.Equal(t, float32(8), f.OutlineWidth)
}

func TestFramePercentRadii(t *testing.T) {
	s := styles.NewStyle()
	s.Border.Radius.Top = styles.CornerRadii{X: units.Percent(10), Y: units.Percent(20)}
	layout := &dom.Layout{Width: 200, Height: 100}
	f := NewFrame(s, layout, 1)

	assert.Equal(t, math32.Vec2(20, 20), f.Radii.Top)
	assert.True(t, f.HasRadius())
}

func TestFrameRadiiClamp(t *testing.T) {
	s := styles.NewStyle()
	for c := sides.Top; c <= sides.Left; c++ {
		s.Border.Radius.SetSide(c, styles.CornerRadii{X: units.Dot(40), Y: units.Dot(40)})
	}
	layout := &dom.Layout{Width: 100, Height: 50}
	f := NewFrame(s, layout, 1)

	// The vertical radii sums exceed the height, so every radius
	// shrinks by 50/80.
	for c := sides.Top; c <= sides.Left; c++ {
		r := f.Radii.Side(c)
		assert.InDelta(t, 25, r.X, 1e-4)
		assert.InDelta(t, 25, r.Y, 1e-4)
	}
}

func TestBorderBoxPathSharp(t *testing.T) {
	layout := &dom.Layout{Width: 100, Height: 50}
	f := NewFrame(styles.NewStyle(), layout, 1)

	p := f.BorderBoxPath()
	assert.Equal(t, []ppath.Verbs{ppath.MoveTo, ppath.LineTo, ppath.LineTo, ppath.LineTo}, p.Verbs)
	assert.Equal(t, math32.Vec2(0, 0), p.Points[0])
	assert.Equal(t, math32.Vec2(100, 0), p.Points[1])
	assert.Equal(t, math32.Vec2(100, 50), p.Points[2])
	assert.Equal(t, math32.Vec2(0, 50), p.Points[3])
}

func TestBorderBoxPathRounded(t *testing.T) {
	s := styles.NewStyle()
	for c := sides.Top; c <= sides.Left; c++ {
		s.Border.Radius.SetSide(c, styles.CornerRadii{X: units.Dot(10), Y: units.Dot(10)})
	}
	layout := &dom.Layout{Width: 100, Height: 50}
	f := NewFrame(s, layout, 1)

	p := f.BorderBoxPath()
	// Four corner arcs, one cubic each.
	assert.Equal(t, []ppath.Verbs{
		ppath.MoveTo, ppath.CubeTo,
		ppath.LineTo, ppath.CubeTo,
		ppath.LineTo, ppath.CubeTo,
		ppath.LineTo, ppath.CubeTo,
	}, p.Verbs)

	// The path stays on the border box.
	b := p.Bounds()
	assert.InDelta(t, 0, b.Min.X, 0.1)
	assert.InDelta(t, 0, b.Min.Y, 0.1)
	assert.InDelta(t, 100, b.Max.X, 0.1)
	assert.InDelta(t, 50, b.Max.Y, 0.1)

	// The top-left arc enters from the left edge of the corner circle.
	assert.InDelta(t, 0, p.Points[0].X, 1e-4)
	assert.InDelta(t, 10, p.Points[0].Y, 1e-4)
}

func TestBorderEdgePath(t *testing.T) {
	layout := &dom.Layout{Width: 100, Height: 50}
	f := NewFrame(frameStyle(), layout, 1)

	// Sharp corners: each edge is a quad between border and padding box.
	p := f.BorderEdgePath(sides.Top)
	assert.Equal(t, []ppath.Verbs{ppath.MoveTo, ppath.LineTo, ppath.LineTo, ppath.LineTo}, p.Verbs)
	assert.Equal(t, math32.Vec2(2, 2), p.Points[0])
	assert.Equal(t, math32.Vec2(0, 0), p.Points[1])
	assert.Equal(t, math32.Vec2(100, 0), p.Points[2])
	assert.Equal(t, math32.Vec2(98, 2), p.Points[3])
}

func TestBackgroundClipBoxes(t *testing.T) {
	layout := &dom.Layout{Width: 100, Height: 50}
	f := NewFrame(frameStyle(), layout, 1)

	assert.Equal(t, f.BorderBox, f.BackgroundClipBox(styles.BorderBox))
	assert.Equal(t, f.PaddingBox, f.BackgroundClipBox(styles.PaddingBox))
	assert.Equal(t, f.ContentBox, f.BackgroundClipBox(styles.ContentBox))
}

func TestOutlinePath(t *testing.T) {
	layout := &dom.Layout{Width: 100, Height: 50}
	f := NewFrame(frameStyle(), layout, 1)

	p := f.OutlinePath()
	b := p.Bounds()
	assert.Equal(t, math32.B2(-4, -4, 104, 54), b)
}

func TestOutlineOffset(t *testing.T) {
	s := frameStyle()
	s.Outline.Offset = 3
	layout := &dom.Layout{Width: 100, Height: 50}
	f := NewFrame(s, layout, 1)

	// The ring moves outward by the offset on both of its edges.
	assert.Equal(t, math32.B2(-7, -7, 107, 57), f.OutlineBox)

	p := f.OutlinePath()
	assert.Equal(t, math32.B2(-7, -7, 107, 57), p.Bounds())
	// The inner cutout sits at the offset, not at the border box.
	assert.Contains(t, p.Points, math32.Vec2(-3, -3))

	assert.Equal(t, float32(6), NewFrame(s, layout, 2).OutlineOffset)
}

func TestShadowClipPath(t *testing.T) {
	layout := &dom.Layout{Width: 100, Height: 50}
	f := NewFrame(styles.NewStyle(), layout, 1)

	rect := math32.B2(-20, -20, 120, 70)
	p := f.ShadowClipPath(rect)
	assert.Equal(t, rect, p.Bounds())
	// Outer rectangle plus the inner cut-out subpath.
	moves := 0
	for _, v := range p.Verbs {
		if v == ppath.MoveTo {
			moves++
		}
	}
	assert.Equal(t, 2, moves)
}
