// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/ppath"
	"github.com/sumiweb/sumi/sides"
)

// Shape is a fillable, strokeable, clippable geometric shape.
// Every shape can be lowered to a [ppath.Path] outline.
type Shape interface {

	// Path returns the shape's outline as a path.
	Path() *ppath.Path

	// Bounds returns the shape's bounding box.
	Bounds() math32.Box2
}

// Rect is an axis-aligned rectangle [Shape].
type Rect struct {
	Box math32.Box2
}

// NewRect returns a [Rect] shape for the given box.
func NewRect(b math32.Box2) Rect {
	return Rect{Box: b}
}

func (r Rect) Path() *ppath.Path {
	p := &ppath.Path{}
	p.MoveTo(r.Box.Min)
	p.LineTo(math32.Vec2(r.Box.Max.X, r.Box.Min.Y))
	p.LineTo(r.Box.Max)
	p.LineTo(math32.Vec2(r.Box.Min.X, r.Box.Max.Y))
	p.ClosePath()
	return p
}

func (r Rect) Bounds() math32.Box2 {
	return r.Box
}

// RoundedRect is a rectangle [Shape] with four independently
// rounded corners, each with separate x and y radii
// (Top = top-left, Right = top-right, Bottom = bottom-right,
// Left = bottom-left, per [sides.Sides] corner convention).
type RoundedRect struct {
	Box   math32.Box2
	Radii sides.Sides[math32.Vector2]
}

// NewRoundedRect returns a [RoundedRect] with the same radius
// on all corners.
func NewRoundedRect(b math32.Box2, radius float32) RoundedRect {
	return RoundedRect{Box: b, Radii: sides.NewSides(math32.Vector2Scalar(radius))}
}

func (r RoundedRect) Path() *ppath.Path {
	b := r.Box
	p := &ppath.Path{}
	tl, tr, br, bl := r.Radii.Top, r.Radii.Right, r.Radii.Bottom, r.Radii.Left

	p.MoveTo(math32.Vec2(b.Min.X+tl.X, b.Min.Y))
	p.LineTo(math32.Vec2(b.Max.X-tr.X, b.Min.Y))
	if tr.X > 0 && tr.Y > 0 {
		p.InsertArc(ppath.Arc{
			Center: math32.Vec2(b.Max.X-tr.X, b.Min.Y+tr.Y),
			Radii:  tr, Start: -math32.Pi / 2, Sweep: math32.Pi / 2,
		})
	}
	p.LineTo(math32.Vec2(b.Max.X, b.Max.Y-br.Y))
	if br.X > 0 && br.Y > 0 {
		p.InsertArc(ppath.Arc{
			Center: math32.Vec2(b.Max.X-br.X, b.Max.Y-br.Y),
			Radii:  br, Start: 0, Sweep: math32.Pi / 2,
		})
	}
	p.LineTo(math32.Vec2(b.Min.X+bl.X, b.Max.Y))
	if bl.X > 0 && bl.Y > 0 {
		p.InsertArc(ppath.Arc{
			Center: math32.Vec2(b.Min.X+bl.X, b.Max.Y-bl.Y),
			Radii:  bl, Start: math32.Pi / 2, Sweep: math32.Pi / 2,
		})
	}
	p.LineTo(math32.Vec2(b.Min.X, b.Min.Y+tl.Y))
	if tl.X > 0 && tl.Y > 0 {
		p.InsertArc(ppath.Arc{
			Center: math32.Vec2(b.Min.X+tl.X, b.Min.Y+tl.Y),
			Radii:  tl, Start: math32.Pi, Sweep: math32.Pi / 2,
		})
	}
	p.ClosePath()
	return p
}

func (r RoundedRect) Bounds() math32.Box2 {
	return r.Box
}

// Circle is a circle [Shape].
type Circle struct {
	Center math32.Vector2
	Radius float32
}

// NewCircle returns a [Circle] shape.
func NewCircle(center math32.Vector2, radius float32) Circle {
	return Circle{Center: center, Radius: radius}
}

func (c Circle) Path() *ppath.Path {
	p := &ppath.Path{}
	radii := math32.Vector2Scalar(c.Radius)
	p.InsertArc(ppath.Arc{Center: c.Center, Radii: radii, Start: 0, Sweep: math32.Pi})
	p.InsertArc(ppath.Arc{Center: c.Center, Radii: radii, Start: math32.Pi, Sweep: math32.Pi})
	p.ClosePath()
	return p
}

func (c Circle) Bounds() math32.Box2 {
	r := math32.Vector2Scalar(c.Radius)
	return math32.Box2{Min: c.Center.Sub(r), Max: c.Center.Add(r)}
}

// Line is a line segment [Shape], only meaningful for stroking.
type Line struct {
	Start math32.Vector2
	End   math32.Vector2
}

// NewLine returns a [Line] shape.
func NewLine(start, end math32.Vector2) Line {
	return Line{Start: start, End: end}
}

func (l Line) Path() *ppath.Path {
	p := &ppath.Path{}
	p.MoveTo(l.Start)
	p.LineTo(l.End)
	return p
}

func (l Line) Bounds() math32.Box2 {
	return math32.Box2{Min: l.Start.Min(l.End), Max: l.Start.Max(l.End)}
}

// PathShape is an arbitrary path [Shape].
type PathShape struct {
	P *ppath.Path
}

// NewPathShape returns a [PathShape] wrapping the given path.
func NewPathShape(p *ppath.Path) PathShape {
	return PathShape{P: p}
}

func (s PathShape) Path() *ppath.Path {
	return s.P
}

func (s PathShape) Bounds() math32.Box2 {
	return s.P.Bounds()
}
