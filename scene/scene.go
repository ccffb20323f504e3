// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the abstract 2D drawing surface that the paint
// core emits into: an ordered stream of fill, stroke, glyph, image,
// layer, and box-shadow commands. Backends (GPU, CPU raster, SVG dump,
// or the in-memory [Recorder]) implement the [Scene] interface.
package scene

import (
	"image/color"

	"github.com/go-text/typesetting/font"
	"github.com/sumiweb/sumi/math32"
)

// FillRule determines how path interiors are calculated for filling.
type FillRule int32

const (
	// NonZero fills regions with nonzero winding count.
	NonZero FillRule = iota

	// EvenOdd fills regions crossed an odd number of times.
	EvenOdd
)

// BlendMode is the compositing mode for a layer.
type BlendMode int32

const (
	// BlendNormal composites the layer with normal source-over blending,
	// honoring the layer alpha.
	BlendNormal BlendMode = iota

	// BlendClip composites the layer as a pure clip group:
	// contents are masked by the clip shape with no color blending.
	BlendClip
)

// Joins specifies how to join two stroke segments.
type Joins int32

const (
	JoinMiter Joins = iota
	JoinRound
	JoinBevel
)

// Caps specifies how to draw the ends of a stroked line.
type Caps int32

const (
	CapButt Caps = iota
	CapRound
	CapSquare
)

// Stroke has the styling parameters for stroking a shape.
type Stroke struct {
	Width      float32
	Join       Joins
	Cap        Caps
	MiterLimit float32
	Dash       []float32
	DashOffset float32
}

// NewStroke returns a [Stroke] of the given width with the default
// miter join and butt caps.
func NewStroke(width float32) *Stroke {
	return &Stroke{Width: width, MiterLimit: 10}
}

// NormalizedCoord is a normalized font variation axis coordinate
// in 2.14 fixed-point format.
type NormalizedCoord = int16

// Glyph is a positioned glyph in a glyph run.
type Glyph struct {
	ID font.GID
	X  float32
	Y  float32
}

// Scene is a sink for 2D drawing commands. The relative order of
// commands pushed into a Scene is the z-order: later commands paint
// over earlier ones.
//
// Coordinates are y-down with the origin at the top left, in device
// pixels (the producer applies any device-scale multiplication before
// emission).
type Scene interface {

	// Reset removes all content from the scene.
	Reset()

	// PushLayer pushes a new layer clipped by the given shape and composited
	// with the scene below using the given blend mode and alpha.
	// Every command until the matching [Scene.PopLayer] is masked by the clip.
	// Transforms are not saved or modified by the layer stack.
	PushLayer(blend BlendMode, alpha float32, transform math32.Matrix2, clip Shape)

	// PopLayer pops the current layer.
	PopLayer()

	// Fill fills a shape with the given brush.
	// The optional brushTransform positions the brush relative to the shape.
	Fill(rule FillRule, transform math32.Matrix2, brush Brush, brushTransform *math32.Matrix2, shape Shape)

	// Stroke strokes the outline of a shape with the given stroke style and brush.
	Stroke(stroke *Stroke, transform math32.Matrix2, brush Brush, brushTransform *math32.Matrix2, shape Shape)

	// DrawGlyphs draws a run of positioned glyphs from the given font face.
	// The glyphTransform, if non-nil, is applied per-glyph (e.g. synthetic
	// italic skew). Coords are the face's normalized variation coordinates.
	DrawGlyphs(face *font.Face, size float32, hint bool, coords []NormalizedCoord,
		rule FillRule, brush Brush, alpha float32,
		transform math32.Matrix2, glyphTransform *math32.Matrix2, glyphs []Glyph)

	// DrawImage draws the image at its natural size under the given transform,
	// with the given sampling parameters.
	DrawImage(img *ImageBrush, transform math32.Matrix2)

	// DrawBoxShadow draws a rounded rectangle blurred with a gaussian filter
	// of the given standard deviation.
	DrawBoxShadow(transform math32.Matrix2, rect math32.Box2, clr color.RGBA, radius, blur float32)
}
