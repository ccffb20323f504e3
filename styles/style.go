// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles holds the computed style properties that painting
// consumes. Styles arrive here fully cascaded and mostly resolved to
// CSS pixels; the remaining [units.Value] fields are the properties
// that can only resolve against a box measured at paint time.
package styles

import (
	"image/color"

	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/sides"
	"github.com/sumiweb/sumi/styles/units"
)

// Style is the computed style of one element, restricted to the
// properties that painting reads.
type Style struct {
	// Color is the resolved current color, used for text fill and as
	// the accent for form control chrome.
	Color color.RGBA

	// Opacity is the element opacity in [0, 1]. Zero skips the
	// element entirely; values below one composite the element and
	// its subtree through a layer.
	Opacity float32

	// Display is the display mode. [DisplayNone] skips the element.
	Display Display

	// Visibility hides the element box while keeping its layout.
	Visibility Visibility

	// OverflowX and OverflowY control clipping of overflowing content
	// per axis.
	OverflowX, OverflowY Overflow

	// Padding is the resolved padding width per side, in CSS pixels.
	Padding sides.Floats

	// Background is the background color and image layers.
	Background Background

	// Border is the per-side border and per-corner radius.
	Border Border

	// Outline is the outline drawn outside the border box.
	Outline Outline

	// Shadow is the box-shadow list, first entry visually on top.
	Shadow []Shadow

	// Transform is the element's 2D transform about its transform
	// origin.
	Transform Transform

	// ImageRendering selects the sampling quality for raster images.
	ImageRendering ImageRendering

	// ObjectFit sizes replaced content within the content box.
	ObjectFit ObjectFit

	// ObjectPositionX and ObjectPositionY position replaced content
	// within the content box, percentages resolving against the
	// leftover space.
	ObjectPositionX, ObjectPositionY units.Value
}

// NewStyle returns a style with all properties at their initial values.
func NewStyle() *Style {
	s := &Style{}
	s.Defaults()
	return s
}

// Defaults sets all properties to their CSS initial values.
func (s *Style) Defaults() {
	s.Color = color.RGBA{0, 0, 0, 255}
	s.Opacity = 1
	s.Display = DisplayFlow
	s.Visibility = VisibilityVisible
	s.OverflowX = OverflowVisible
	s.OverflowY = OverflowVisible
	s.Background = Background{}
	s.Border = Border{}
	s.Outline = Outline{}
	s.Shadow = nil
	s.Transform = Transform{
		Matrix:  math32.Identity2(),
		OriginX: units.Percent(50),
		OriginY: units.Percent(50),
	}
	s.ImageRendering = RenderingAuto
	s.ObjectFit = FitFill
	s.ObjectPositionX = units.Percent(50)
	s.ObjectPositionY = units.Percent(50)
}

// Display are the display modes painting distinguishes.
type Display int32

const (
	// DisplayFlow is ordinary block or inline flow content.
	DisplayFlow Display = iota

	// DisplayListItem is flow content with a list marker.
	DisplayListItem

	// DisplayNone removes the element and its subtree from painting.
	DisplayNone
)

// Visibility is the CSS visibility property.
type Visibility int32

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
	VisibilityCollapse
)

// Overflow is the CSS overflow property for one axis.
type Overflow int32

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowClip
	OverflowScroll
	OverflowAuto
)

// IsVisible reports whether the axis leaves overflowing content
// unclipped.
func (o Overflow) IsVisible() bool {
	return o == OverflowVisible
}

// Transform is an element's CSS transform.
type Transform struct {
	// Matrix is the composed 2D affine transform.
	Matrix math32.Matrix2

	// Has3D is set when the transform list contains a 3D function.
	// Painting ignores the whole transform in that case.
	Has3D bool

	// OriginX and OriginY are the transform origin, percentages
	// resolving against the border box.
	OriginX, OriginY units.Value
}

// IsIdentity reports whether applying the transform is a no-op.
func (t *Transform) IsIdentity() bool {
	return t.Has3D || t.Matrix.IsIdentity()
}

// ImageRendering is the CSS image-rendering property.
type ImageRendering int32

const (
	// RenderingAuto lets the painter pick the sampling quality.
	RenderingAuto ImageRendering = iota

	// RenderingCrispEdges favors hard edges over smoothing.
	RenderingCrispEdges

	// RenderingPixelated scales with nearest-neighbor sampling.
	RenderingPixelated
)

// ObjectFit is the CSS object-fit property for replaced content.
type ObjectFit int32

const (
	// FitFill stretches the content to the content box.
	FitFill ObjectFit = iota

	// FitContain scales uniformly to fit inside the content box.
	FitContain

	// FitCover scales uniformly to cover the content box.
	FitCover

	// FitNone keeps the intrinsic size.
	FitNone

	// FitScaleDown behaves as the smaller of none and contain.
	FitScaleDown
)
