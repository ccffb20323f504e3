// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppath provides a compact 2D vector path representation
// using MoveTo, LineTo, QuadTo, CubeTo, and Close commands,
// like the SVG path element.
package ppath

import "github.com/sumiweb/sumi/math32"

// Verbs are the path command verbs.
type Verbs byte

const (
	MoveTo Verbs = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

// nPoints is the number of points each verb consumes.
var nPoints = [...]int{MoveTo: 1, LineTo: 1, QuadTo: 2, CubeTo: 3, Close: 0}

// NumPoints returns the number of points the verb consumes.
func (v Verbs) NumPoints() int {
	return nPoints[v]
}

// Path is a sequence of path commands, with the points for each
// command stored in order in Points ([Verbs.NumPoints] each).
type Path struct {
	Verbs  []Verbs
	Points []math32.Vector2
}

// IsEmpty returns whether the path contains no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Verbs) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	np := &Path{
		Verbs:  make([]Verbs, len(p.Verbs)),
		Points: make([]math32.Vector2, len(p.Points)),
	}
	copy(np.Verbs, p.Verbs)
	copy(np.Points, p.Points)
	return np
}

// CurrentPoint returns the last point added to the path,
// or the zero vector if the path is empty.
func (p *Path) CurrentPoint() math32.Vector2 {
	if len(p.Points) == 0 {
		return math32.Vector2{}
	}
	return p.Points[len(p.Points)-1]
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(pt math32.Vector2) *Path {
	p.Verbs = append(p.Verbs, MoveTo)
	p.Points = append(p.Points, pt)
	return p
}

// LineTo draws a line to the given point.
func (p *Path) LineTo(pt math32.Vector2) *Path {
	p.Verbs = append(p.Verbs, LineTo)
	p.Points = append(p.Points, pt)
	return p
}

// QuadTo draws a quadratic curve to the given end point
// via the given control point.
func (p *Path) QuadTo(c, end math32.Vector2) *Path {
	p.Verbs = append(p.Verbs, QuadTo)
	p.Points = append(p.Points, c, end)
	return p
}

// CubeTo draws a cubic curve to the given end point
// via the two given control points.
func (p *Path) CubeTo(c1, c2, end math32.Vector2) *Path {
	p.Verbs = append(p.Verbs, CubeTo)
	p.Points = append(p.Points, c1, c2, end)
	return p
}

// LineOrMoveTo draws a line to the given point, or starts the
// path there if it is empty. This is the standard way of joining
// path fragments such as arcs into a single outline.
func (p *Path) LineOrMoveTo(pt math32.Vector2) *Path {
	if p.IsEmpty() {
		return p.MoveTo(pt)
	}
	return p.LineTo(pt)
}

// ClosePath closes the current subpath with a line back to its start.
func (p *Path) ClosePath() *Path {
	p.Verbs = append(p.Verbs, Close)
	return p
}

// Append appends the commands of the other path to this one.
func (p *Path) Append(other *Path) *Path {
	p.Verbs = append(p.Verbs, other.Verbs...)
	p.Points = append(p.Points, other.Points...)
	return p
}

// Transform returns a new path with all points transformed
// by the given matrix.
func (p *Path) Transform(m math32.Matrix2) *Path {
	np := p.Clone()
	for i, pt := range np.Points {
		np.Points[i] = m.MulVector2AsPoint(pt)
	}
	return np
}

// Bounds returns the bounding box of the path's points.
// Curve control points are included, so this is a conservative
// (containing) bound for the drawn geometry.
func (p *Path) Bounds() math32.Box2 {
	if len(p.Points) == 0 {
		return math32.Box2{}
	}
	b := math32.B2Empty()
	for _, pt := range p.Points {
		b.Min = b.Min.Min(pt)
		b.Max = b.Max.Max(pt)
	}
	return b
}
