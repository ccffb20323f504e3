// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"image/color"

	"github.com/sumiweb/sumi/math32"
)

// Brush is a fill style: solid color, gradient, or image,
// optionally wrapped in a [NodeBrush] carrying element identity.
type Brush interface {
	isBrush()
}

// SolidBrush is a solid sRGB color with alpha.
type SolidBrush struct {
	Color color.RGBA
}

func (SolidBrush) isBrush() {}

// Solid returns a [SolidBrush] for the given color.
func Solid(c color.RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// GradientKind is the geometric family of a gradient.
type GradientKind int32

const (
	// Linear is a gradient along the line from Start to End.
	Linear GradientKind = iota

	// Radial is a gradient outward from Center up to Radius.
	Radial

	// Sweep is an angular gradient around Center from StartAngle
	// to EndAngle, clockwise.
	Sweep
)

// Extend is the strategy for painting beyond a gradient or image's
// natural bounds.
type Extend int32

const (
	// Pad extends with the terminal color.
	Pad Extend = iota

	// Repeat tiles in the original order.
	Repeat

	// Reflect tiles in alternating reverse order.
	Reflect
)

// Stop is a single gradient color stop; Offset is in [0, 1] along
// the gradient's extent.
type Stop struct {
	Color  color.RGBA
	Offset float32
}

// Gradient is a gradient brush definition.
// Only the geometry fields for the given Kind are meaningful.
type Gradient struct {
	Kind GradientKind

	// Start and End are the linear gradient axis endpoints.
	Start math32.Vector2
	End   math32.Vector2

	// Center is the radial/sweep gradient center.
	Center math32.Vector2

	// Radius is the radial gradient unit radius, scaled by any
	// brush transform into an ellipse.
	Radius float32

	// StartAngle and EndAngle are the sweep gradient angular range
	// in radians.
	StartAngle float32
	EndAngle   float32

	Extend Extend
	Stops  []Stop
}

// GradientBrush is a gradient [Brush].
type GradientBrush struct {
	Gradient Gradient
}

func (GradientBrush) isBrush() {}

// NewLinearGradient returns a linear [Gradient] between the given points
// with the given extend mode.
func NewLinearGradient(start, end math32.Vector2, extend Extend) Gradient {
	return Gradient{Kind: Linear, Start: start, End: end, Extend: extend}
}

// NewRadialGradient returns a radial [Gradient] with the given center and
// radius and the given extend mode.
func NewRadialGradient(center math32.Vector2, radius float32, extend Extend) Gradient {
	return Gradient{Kind: Radial, Center: center, Radius: radius, Extend: extend}
}

// NewSweepGradient returns a sweep [Gradient] around the given center
// covering the given angular range, with the given extend mode.
func NewSweepGradient(center math32.Vector2, start, end float32, extend Extend) Gradient {
	return Gradient{Kind: Sweep, Center: center, StartAngle: start, EndAngle: end, Extend: extend}
}

// AddStop appends a stop with the given color and offset to the gradient.
func (g *Gradient) AddStop(c color.RGBA, offset float32) {
	g.Stops = append(g.Stops, Stop{Color: c, Offset: offset})
}

// ImageQuality is the sampling quality hint for an image brush.
type ImageQuality int32

const (
	QualityLow ImageQuality = iota
	QualityMedium
	QualityHigh
)

// ImageBrush is an image [Brush]: RGBA8 pixels with per-axis extend
// modes and a sampling quality hint.
type ImageBrush struct {
	Image   *image.RGBA
	XExtend Extend
	YExtend Extend
	Quality ImageQuality
	Alpha   float32
}

func (ImageBrush) isBrush() {}

// NewImageBrush returns an [ImageBrush] for the given image with
// repeat extends, full alpha, and the given quality.
func NewImageBrush(img *image.RGBA, quality ImageQuality) *ImageBrush {
	return &ImageBrush{
		Image:   img,
		XExtend: Repeat,
		YExtend: Repeat,
		Quality: quality,
		Alpha:   1,
	}
}

// NodeBrush wraps a brush with the document node that produced it,
// so downstream compositors can map drawn content (glyph runs in
// particular) back to document elements.
type NodeBrush struct {
	Brush Brush
	Node  any
}

func (NodeBrush) isBrush() {}
