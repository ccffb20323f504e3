// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sumiweb/sumi/math32"
)

func TestPathBuild(t *testing.T) {
	p := &Path{}
	assert.True(t, p.IsEmpty())

	p.MoveTo(math32.Vec2(1, 2))
	p.LineTo(math32.Vec2(3, 4))
	p.QuadTo(math32.Vec2(5, 6), math32.Vec2(7, 8))
	p.CubeTo(math32.Vec2(9, 10), math32.Vec2(11, 12), math32.Vec2(13, 14))
	p.ClosePath()

	assert.Equal(t, []Verbs{MoveTo, LineTo, QuadTo, CubeTo, Close}, p.Verbs)
	assert.Len(t, p.Points, 7)
	assert.Equal(t, math32.Vec2(13, 14), p.CurrentPoint())
	assert.Equal(t, math32.B2(1, 2, 13, 14), p.Bounds())
}

func TestLineOrMoveTo(t *testing.T) {
	p := &Path{}
	p.LineOrMoveTo(math32.Vec2(1, 1))
	assert.Equal(t, []Verbs{MoveTo}, p.Verbs)
	p.LineOrMoveTo(math32.Vec2(2, 2))
	assert.Equal(t, []Verbs{MoveTo, LineTo}, p.Verbs)
}

func TestTransform(t *testing.T) {
	p := &Path{}
	p.MoveTo(math32.Vec2(1, 1)).LineTo(math32.Vec2(2, 2))
	tp := p.Transform(math32.Translate2D(10, 20).Mul(math32.Scale2D(2, 2)))

	// The original path is untouched.
	assert.Equal(t, math32.Vec2(1, 1), p.Points[0])
	assert.Equal(t, math32.Vec2(12, 22), tp.Points[0])
	assert.Equal(t, math32.Vec2(14, 24), tp.Points[1])
}

func TestAppend(t *testing.T) {
	a := (&Path{}).MoveTo(math32.Vec2(0, 0)).LineTo(math32.Vec2(1, 0))
	b := (&Path{}).MoveTo(math32.Vec2(2, 2)).LineTo(math32.Vec2(3, 2))
	a.Append(b)
	assert.Equal(t, []Verbs{MoveTo, LineTo, MoveTo, LineTo}, a.Verbs)
	assert.Len(t, a.Points, 4)
}

func TestArcPoint(t *testing.T) {
	a := Arc{Center: math32.Vec2(10, 10), Radii: math32.Vec2(5, 3)}
	p := a.Point(0)
	assert.InDelta(t, 15, p.X, 1e-6)
	assert.InDelta(t, 10, p.Y, 1e-6)

	p = a.Point(math32.Pi / 2)
	assert.InDelta(t, 10, p.X, 1e-5)
	assert.InDelta(t, 13, p.Y, 1e-5)
}

func TestInsertArc(t *testing.T) {
	// A quarter circle becomes one cubic after the initial move.
	p := (&Path{}).InsertArc(Arc{
		Center: math32.Vec2(0, 0),
		Radii:  math32.Vec2(10, 10),
		Start:  0,
		Sweep:  math32.Pi / 2,
	})
	assert.Equal(t, []Verbs{MoveTo, CubeTo}, p.Verbs)
	assert.InDelta(t, 10, p.Points[0].X, 1e-5)
	assert.InDelta(t, 0, p.Points[0].Y, 1e-5)
	end := p.CurrentPoint()
	assert.InDelta(t, 0, end.X, 1e-4)
	assert.InDelta(t, 10, end.Y, 1e-4)

	// A full half sweep splits into two segments.
	p = (&Path{}).InsertArc(Arc{
		Center: math32.Vec2(0, 0),
		Radii:  math32.Vec2(10, 10),
		Start:  0,
		Sweep:  math32.Pi,
	})
	assert.Equal(t, []Verbs{MoveTo, CubeTo, CubeTo}, p.Verbs)

	// Zero sweep degenerates to a point.
	p = (&Path{}).InsertArc(Arc{Center: math32.Vec2(3, 4), Radii: math32.Vec2(1, 1)})
	assert.Equal(t, []Verbs{MoveTo}, p.Verbs)

	// A second arc connects with a line.
	p.InsertArc(Arc{Center: math32.Vec2(0, 0), Radii: math32.Vec2(1, 1), Sweep: math32.Pi / 2})
	assert.Equal(t, LineTo, p.Verbs[1])
}

func TestArcMidpointOnEllipse(t *testing.T) {
	// The cubic approximation should stay close to the true arc.
	a := Arc{Center: math32.Vec2(0, 0), Radii: math32.Vec2(10, 10), Start: 0, Sweep: math32.Pi / 2}
	p := (&Path{}).InsertArc(a)
	// Evaluate the cubic at t=0.5.
	p0, c1, c2, p1 := p.Points[0], p.Points[1], p.Points[2], p.Points[3]
	mid := p0.MulScalar(0.125).
		Add(c1.MulScalar(0.375)).
		Add(c2.MulScalar(0.375)).
		Add(p1.MulScalar(0.125))
	assert.InDelta(t, 10, mid.Length(), 0.01)
}
