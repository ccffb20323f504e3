// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"github.com/sumiweb/sumi/styles/units"
)

// BackgroundBox selects the reference box for background origin and
// clip.
type BackgroundBox int32

const (
	BorderBox BackgroundBox = iota
	PaddingBox
	ContentBox
)

// BackgroundRepeat is the tiling mode of a background layer on one
// axis.
type BackgroundRepeat int32

const (
	// RepeatNo paints a single tile at the resolved position.
	RepeatNo BackgroundRepeat = iota

	// Repeat tiles edge to edge, with a tile edge at the resolved
	// position.
	Repeat

	// RepeatSpace fits whole tiles with even gaps, the first and
	// last tiles touching opposite edges.
	RepeatSpace

	// RepeatRound resizes the tile so a whole number of tiles
	// exactly fills the axis.
	RepeatRound
)

// BackgroundSizeKind is how a background layer's size is determined.
type BackgroundSizeKind int32

const (
	// SizeExplicit uses the layer's Width and Height values, either
	// of which may be auto.
	SizeExplicit BackgroundSizeKind = iota

	// SizeCover scales uniformly so the image covers the origin box.
	SizeCover

	// SizeContain scales uniformly so the image fits in the origin
	// box.
	SizeContain
)

// BackgroundSize is the background-size of one layer.
type BackgroundSize struct {
	Kind BackgroundSizeKind

	// Width and Height apply when Kind is [SizeExplicit],
	// percentages resolving against the origin box.
	Width, Height units.Value
}

// ImageSourceKind discriminates the source of a background image
// layer.
type ImageSourceKind int32

const (
	// SourceNone is a layer with no drawable image, as with
	// background-image: none or a failed load.
	SourceNone ImageSourceKind = iota

	// SourceGradient is a CSS gradient.
	SourceGradient

	// SourceRaster is a decoded raster image held by the element.
	SourceRaster

	// SourceSVG is a vector image held by the element.
	SourceSVG
)

// ImageSource is the image of one background layer. Raster and SVG
// sources refer to decoded resources held on the element by slot
// index, keeping styles free of resource lifetimes.
type ImageSource struct {
	Kind ImageSourceKind

	// Gradient is set when Kind is [SourceGradient].
	Gradient *Gradient

	// Slot indexes the element's loaded background images when Kind
	// is [SourceRaster] or [SourceSVG].
	Slot int
}

// BackgroundLayer is one entry of the background-image list together
// with its per-layer properties. Property lists shorter than the image
// list are extended cyclically at paint time.
type BackgroundLayer struct {
	Image ImageSource

	// OriginBox positions and sizes the image.
	OriginBox BackgroundBox

	// ClipBox clips the painted tiles.
	ClipBox BackgroundBox

	// PositionX and PositionY place the image in the origin box,
	// percentages resolving against the leftover space.
	PositionX, PositionY units.Value

	// Size is the layer's background-size.
	Size BackgroundSize

	// RepeatX and RepeatY are the tiling modes per axis.
	RepeatX, RepeatY BackgroundRepeat
}

// Background is the full background of an element.
type Background struct {
	// Color is the background color, painted below all image layers.
	Color color.RGBA

	// Layers is the background-image list in CSS order: the first
	// layer paints on top.
	Layers []BackgroundLayer
}

// GradientKind is the kind of a CSS gradient.
type GradientKind int32

const (
	GradientLinear GradientKind = iota
	GradientRadial
	GradientConic
)

// LinearDirection is the direction of a linear gradient.
type LinearDirection int32

const (
	ToBottom LinearDirection = iota
	ToTop
	ToRight
	ToLeft
	ToTopRight
	ToBottomRight
	ToBottomLeft
	ToTopLeft

	// DirectionAngle uses the gradient's Angle field.
	DirectionAngle
)

// RadialExtent is the ending shape size of a radial gradient.
type RadialExtent int32

const (
	FarthestCorner RadialExtent = iota
	ClosestCorner
	FarthestSide
	ClosestSide

	// ExtentExplicit uses the gradient's RadiusX and RadiusY.
	ExtentExplicit
)

// RadialShape is the ending shape of a radial gradient.
type RadialShape int32

const (
	ShapeEllipse RadialShape = iota
	ShapeCircle
)

// GradientStop is one entry of a gradient's color stop list.
type GradientStop struct {
	// Color is the stop color. Unused for hints.
	Color color.RGBA

	// Offset is the stop position along the gradient line. For
	// linear and radial gradients, percent resolves against the
	// gradient length and dot is a length in CSS pixels. For conic
	// gradients, percent resolves against a full turn and dot is an
	// angle in radians.
	Offset units.Value

	// HasOffset distinguishes an explicit position from one to be
	// interpolated between neighbors.
	HasOffset bool

	// Hint marks an interpolation hint: a colorless midpoint between
	// the surrounding stops.
	Hint bool
}

// Gradient is a CSS gradient background image.
type Gradient struct {
	Kind GradientKind

	// Repeating rescales the stops to one period and tiles it.
	Repeating bool

	// Direction and Angle apply to linear gradients. Angle is in
	// radians, measured clockwise from pointing up, and is used when
	// Direction is [DirectionAngle].
	Direction LinearDirection
	Angle     float32

	// CenterX and CenterY are the center of radial and conic
	// gradients, percentages resolving against the gradient box.
	CenterX, CenterY units.Value

	// Shape, Extent, RadiusX, and RadiusY size a radial gradient's
	// ending shape. RadiusX and RadiusY apply when Extent is
	// [ExtentExplicit].
	Shape            RadialShape
	Extent           RadialExtent
	RadiusX, RadiusY units.Value

	// FromAngle is the starting angle of a conic gradient, in
	// radians clockwise.
	FromAngle float32

	// Stops is the color stop list, including hints.
	Stops []GradientStop
}
