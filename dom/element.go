// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"image"
	"sync"

	"github.com/anthonynsimon/bild/transform"
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/scene"
	"github.com/sumiweb/sumi/styles"
)

// Element is the element-specific data of a node.
type Element struct {
	// Tag is the lowercased tag name.
	Tag string

	// InputType is the type attribute of an <input>, lowercased.
	InputType string

	// Checked is the checked state of a checkbox or radio input.
	Checked bool

	// Disabled is the disabled attribute.
	Disabled bool

	// Hidden is the hidden attribute.
	Hidden bool

	// Image is the decoded raster content of a replaced element such
	// as <img>.
	Image *RasterImage

	// SVG is the vector content of a replaced element.
	SVG SVGSource

	// Editor is the editing state of a text input.
	Editor *Editor

	// ListItem is the marker of a list-item element.
	ListItem *ListItemLayout

	// BackgroundImages are the decoded background image resources,
	// indexed by the style layers' slots. A nil entry is a source
	// that failed to load.
	BackgroundImages []BackgroundImage
}

// BackgroundImage is one decoded background image resource, either
// raster or vector.
type BackgroundImage struct {
	Raster *RasterImage
	SVG    SVGSource
}

// SVGSource is a drawable vector image. Implementations rasterize or
// replay themselves into the scene.
type SVGSource interface {
	// IntrinsicSize returns the image's natural size in pixels.
	IntrinsicSize() math32.Vector2

	// Draw emits the image into the scene under the given transform,
	// scaled to the given size in device pixels.
	Draw(sc scene.Scene, transform math32.Matrix2, size math32.Vector2)
}

// RasterImage is a decoded raster image with a cache of resized
// versions, keyed by target size and sampling filter. The cache is
// safe for concurrent use.
type RasterImage struct {
	// Image is the decoded image at its intrinsic size.
	Image *image.RGBA

	mu      sync.Mutex
	resized map[resizeKey]*image.RGBA
}

type resizeKey struct {
	w, h    int
	nearest bool
}

// NewRasterImage returns a raster image wrapping the given decoded
// pixels.
func NewRasterImage(img *image.RGBA) *RasterImage {
	return &RasterImage{Image: img}
}

// IntrinsicSize returns the image's pixel size.
func (ri *RasterImage) IntrinsicSize() math32.Vector2 {
	return math32.B2FromRect(ri.Image.Bounds()).Size()
}

// Resized returns the image resampled to w x h pixels, caching the
// result. Pixelated rendering selects nearest-neighbor sampling. The
// intrinsic size is returned as-is without caching.
func (ri *RasterImage) Resized(w, h int, rendering styles.ImageRendering) *image.RGBA {
	b := ri.Image.Bounds()
	if w <= 0 || h <= 0 {
		return nil
	}
	if w == b.Dx() && h == b.Dy() {
		return ri.Image
	}
	key := resizeKey{w: w, h: h, nearest: rendering == styles.RenderingPixelated}
	ri.mu.Lock()
	defer ri.mu.Unlock()
	if img, ok := ri.resized[key]; ok {
		return img
	}
	filter := transform.Linear
	if key.nearest {
		filter = transform.NearestNeighbor
	}
	img := transform.Resize(ri.Image, w, h, filter)
	if ri.resized == nil {
		ri.resized = map[resizeKey]*image.RGBA{}
	}
	ri.resized[key] = img
	return img
}

// Editor is the paint-relevant state of a text input's editor.
type Editor struct {
	// Layout is the editor text's inline layout, in editor-local
	// CSS pixels.
	Layout *InlineLayout

	// Selection are the selection rectangles in editor-local CSS pixels.
	Selection []math32.Box2

	// Caret is the caret rectangle, nil when the caret is not shown.
	Caret *math32.Box2
}

// ListStylePosition is the CSS list-style-position property.
type ListStylePosition int32

const (
	// PositionOutside places the marker outside the principal box;
	// the painter aligns it with the first text line.
	PositionOutside ListStylePosition = iota

	// PositionInside makes the marker part of the item's own inline
	// layout, so the painter has nothing extra to do.
	PositionInside
)

// ListItemLayout is the laid-out marker of a list item.
type ListItemLayout struct {
	// Marker is the marker's own mini-layout.
	Marker *InlineLayout

	// IsChar is set for generated character markers such as bullets
	// and numbers, which get extra end padding; explicit string
	// markers do not.
	IsChar bool

	// Position is the list-style-position.
	Position ListStylePosition
}
