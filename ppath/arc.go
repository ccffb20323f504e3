// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "github.com/sumiweb/sumi/math32"

// Arc is a segment of an axis-aligned ellipse, parameterized by center,
// x and y radii, a start angle, and a signed sweep, all in radians.
// Angle 0 lies on the positive x axis; positive sweep is clockwise
// in the y-down coordinate system used throughout.
type Arc struct {
	Center math32.Vector2
	Radii  math32.Vector2
	Start  float32
	Sweep  float32
}

// Point returns the point on the arc's ellipse at the given angle.
func (a Arc) Point(angle float32) math32.Vector2 {
	return a.Center.Add(math32.Vec2(a.Radii.X*math32.Cos(angle), a.Radii.Y*math32.Sin(angle)))
}

// tangent returns the (unnormalized) derivative of the arc's ellipse
// parameterization at the given angle.
func (a Arc) tangent(angle float32) math32.Vector2 {
	return math32.Vec2(-a.Radii.X*math32.Sin(angle), a.Radii.Y*math32.Cos(angle))
}

// maxArcSegment is the largest angular extent converted to
// a single cubic segment.
const maxArcSegment = math32.Pi / 2

// InsertArc appends the arc to the path as one or more cubic segments,
// connecting to the current point with a line (or starting the path at
// the arc start if the path is empty).
func (p *Path) InsertArc(a Arc) *Path {
	n := int(math32.Ceil(math32.Abs(a.Sweep) / maxArcSegment))
	if n == 0 {
		return p.LineOrMoveTo(a.Point(a.Start))
	}
	p.LineOrMoveTo(a.Point(a.Start))
	step := a.Sweep / float32(n)
	// Standard cubic approximation of an elliptical arc segment.
	k := 4.0 / 3.0 * math32.Tan(step/4)
	for i := 0; i < n; i++ {
		a0 := a.Start + float32(i)*step
		a1 := a0 + step
		p0 := a.Point(a0)
		p1 := a.Point(a1)
		c1 := p0.Add(a.tangent(a0).MulScalar(k))
		c2 := p1.Sub(a.tangent(a1).MulScalar(k))
		p.CubeTo(c1, c2, p1)
	}
	return p
}
