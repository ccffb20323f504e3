// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"image/color"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/scene"
	"golang.org/x/image/math/fixed"
)

// InlineLayout is the shaped and positioned inline content of an
// inline formatting root, in CSS pixels local to the root's border box.
type InlineLayout struct {
	// Lines are the layout lines in visual order.
	Lines []Line

	// Selection are highlight rectangles over selected text, in
	// layout-local CSS pixels.
	Selection []math32.Box2
}

// Line is one line of an inline layout.
type Line struct {
	// Baseline is the line's alphabetic baseline, in CSS pixels from the
	// layout top.
	Baseline float32

	// Items are the positioned line items in visual order.
	Items []InlineItem
}

// InlineItem is a positioned item on a line: a [GlyphRun] or an
// [InlineBox].
type InlineItem interface {
	isInlineItem()
}

// RunMetrics are the font metrics of a glyph run needed for
// decorations, resolved to CSS pixels at the run's font size.
type RunMetrics struct {
	// Ascent and Descent are distances from the baseline, both
	// positive.
	Ascent, Descent float32

	// UnderlineOffset is the signed distance from the baseline to
	// the top of the underline stroke. Negative values place the
	// stroke below the baseline, as fonts usually do.
	UnderlineOffset float32

	// UnderlineSize is the underline stroke thickness.
	UnderlineSize float32

	// StrikethroughOffset is the signed distance from the baseline
	// to the top of the strikethrough stroke.
	StrikethroughOffset float32

	// StrikethroughSize is the strikethrough stroke thickness.
	StrikethroughSize float32
}

// GlyphRun is a run of glyphs sharing one font, size, and style.
type GlyphRun struct {
	// Face is the font face the glyph ids index into.
	Face *font.Face

	// Size is the font size in CSS pixels.
	Size float32

	// Coords are the normalized variation coordinates of the face.
	Coords []scene.NormalizedCoord

	// Offset is the run origin in layout-local CSS pixels: x at the start
	// of the run, y at the baseline.
	Offset math32.Vector2

	// Glyphs are the run's glyphs with positions relative to Offset,
	// advances already accumulated into x.
	Glyphs []scene.Glyph

	// Advance is the total advance width of the run.
	Advance float32

	// Color is the resolved text fill for this run.
	Color color.RGBA

	// SynthesisSkew is the faux-italic skew angle in radians, zero
	// for none.
	SynthesisSkew float32

	// Underline and Strikethrough request the matching decoration
	// stroke.
	Underline, Strikethrough bool

	// Metrics are the decoration metrics at Size.
	Metrics RunMetrics
}

// SetShaped fills the run from shaper output, converting 26.6
// fixed-point positions to CSS pixels. Advances accumulate into the
// per-glyph x positions so the painter sees resolved points.
func (r *GlyphRun) SetShaped(out *shaping.Output) {
	r.Face = out.Face
	r.Size = math32.FromFixed(out.Size)
	r.Advance = math32.FromFixed(out.Advance)

	r.Glyphs = r.Glyphs[:0]
	var pen fixed.Point26_6
	for _, g := range out.Glyphs {
		p := math32.Vector2FromFixed(fixed.Point26_6{X: pen.X + g.XOffset, Y: pen.Y - g.YOffset})
		r.Glyphs = append(r.Glyphs, scene.Glyph{ID: g.GlyphID, X: p.X, Y: p.Y})
		pen.X += g.XAdvance
		pen.Y -= g.YAdvance
	}

	r.Metrics.Ascent = math32.Abs(math32.FromFixed(out.LineBounds.Ascent))
	r.Metrics.Descent = math32.Abs(math32.FromFixed(out.LineBounds.Descent))
}

// ShapeInput returns a shaper input covering one run of text at the
// given font size in CSS pixels.
func ShapeInput(text []rune, face *font.Face, size float32) shaping.Input {
	return shaping.Input{
		Text:   text,
		RunEnd: len(text),
		Face:   face,
		Size:   math32.ToFixed(size),
	}
}

// InlineBox is a nested element positioned on a line. The painter
// recurses into the node's normal paint path at the box position; the
// node's own layout location is not used.
type InlineBox struct {
	// Node is the nested element.
	Node *Node

	// X and Y are the box's border-box origin in layout-local CSS pixels.
	X, Y float32
}

func (*GlyphRun) isInlineItem()  {}
func (*InlineBox) isInlineItem() {}
