// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"

	"github.com/sumiweb/sumi/dom"
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/scene"
	"github.com/sumiweb/sumi/sides"
)

// selectionColor highlights selected text.
var selectionColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}

// textTransform maps layout-local CSS pixels through the element's
// transform. pos is the layout origin relative to the element's
// border box, in CSS pixels.
func (ec *elemCx) textTransform(pos math32.Vector2) math32.Matrix2 {
	t := ec.transform.Mul(math32.Scale2D(ec.scale, ec.scale))
	return math32.Translate2D(pos.X*ec.scale, pos.Y*ec.scale).Mul(t)
}

// drawInlineText paints the inline text of an inline formatting root,
// with any selection highlight below it, then recurses into the
// elements positioned on its lines.
func (ec *elemCx) drawInlineText(sc scene.Scene, pos math32.Vector2) {
	layout := ec.node.Inline
	if layout == nil {
		return
	}
	transform := ec.textTransform(pos)
	for _, rect := range layout.Selection {
		sc.Fill(scene.NonZero, transform, scene.Solid(selectionColor), nil, scene.Rect{Box: rect})
	}
	ec.strokeText(sc, layout, transform)

	pb := sides.Add(ec.style.Padding, ec.style.Border.Width)
	for li := range layout.Lines {
		for _, item := range layout.Lines[li].Items {
			box, ok := item.(*dom.InlineBox)
			if !ok {
				continue
			}
			origin := ec.pos.Add(math32.Vec2(pb.Left+box.X, pb.Top+box.Y))
			ec.pt.renderNode(sc, box.Node, origin)
		}
	}
}

// drawTextInputText paints the text of a text input: selection and
// caret when focused, then the editor's lines.
func (ec *elemCx) drawTextInputText(sc scene.Scene, pos math32.Vector2) {
	if ec.elem == nil || ec.elem.Editor == nil {
		return
	}
	editor := ec.elem.Editor
	transform := ec.textTransform(pos)

	if ec.node.Focused {
		for _, rect := range editor.Selection {
			sc.Fill(scene.NonZero, transform, scene.Solid(selectionColor), nil, scene.Rect{Box: rect})
		}
		if editor.Caret != nil {
			// TODO: use caret-color here once styles carry it.
			sc.Fill(scene.NonZero, transform, scene.Solid(ec.style.Color), nil, scene.Rect{Box: *editor.Caret})
		}
	}

	if editor.Layout != nil {
		ec.strokeText(sc, editor.Layout, transform)
	}
}

// drawMarker paints an outside list marker, right aligned against the
// item's content box and baseline aligned with its first line.
func (ec *elemCx) drawMarker(sc scene.Scene, pos math32.Vector2) {
	if ec.elem == nil || ec.elem.ListItem == nil {
		return
	}
	item := ec.elem.ListItem
	if item.Position != dom.PositionOutside || item.Marker == nil {
		return
	}

	// Char markers get a fixed gap between bullet and content.
	var pad float32
	if item.IsChar {
		pad = 8
	}
	xOffset := -(inlineWidth(item.Marker) + pad)

	var yOffset float32
	if ec.node.Inline != nil && len(ec.node.Inline.Lines) > 0 && len(item.Marker.Lines) > 0 {
		yOffset = ec.node.Inline.Lines[0].Baseline - item.Marker.Lines[0].Baseline
	}

	transform := ec.textTransform(pos.Add(math32.Vec2(xOffset, yOffset)))
	ec.strokeText(sc, item.Marker, transform)
}

// strokeText emits the glyph runs and decorations of an inline layout
// under the given transform.
func (ec *elemCx) strokeText(sc scene.Scene, layout *dom.InlineLayout, transform math32.Matrix2) {
	for li := range layout.Lines {
		line := &layout.Lines[li]
		for _, item := range line.Items {
			run, ok := item.(*dom.GlyphRun)
			if !ok {
				continue
			}
			ec.strokeRun(sc, run, transform)
		}
	}
}

func (ec *elemCx) strokeRun(sc scene.Scene, run *dom.GlyphRun, transform math32.Matrix2) {
	var glyphTransform *math32.Matrix2
	if run.SynthesisSkew != 0 {
		skew := math32.Skew2D(math32.Tan(run.SynthesisSkew), 0)
		glyphTransform = &skew
	}

	glyphs := make([]scene.Glyph, len(run.Glyphs))
	for i, g := range run.Glyphs {
		glyphs[i] = scene.Glyph{
			ID: g.ID,
			X:  run.Offset.X + g.X,
			Y:  run.Offset.Y + g.Y,
		}
	}

	brush := scene.NodeBrush{Brush: scene.Solid(run.Color), Node: ec.node}
	sc.DrawGlyphs(run.Face, run.Size, false, run.Coords, scene.NonZero,
		brush, 1, transform, glyphTransform, glyphs)

	if run.Underline {
		ec.strokeDecoration(sc, run, transform,
			run.Metrics.UnderlineOffset, run.Metrics.UnderlineSize)
	}
	if run.Strikethrough {
		ec.strokeDecoration(sc, run, transform,
			run.Metrics.StrikethroughOffset, run.Metrics.StrikethroughSize)
	}
}

func (ec *elemCx) strokeDecoration(sc scene.Scene, run *dom.GlyphRun, transform math32.Matrix2, offset, size float32) {
	y := run.Offset.Y - offset + size/2
	line := scene.NewLine(math32.Vec2(run.Offset.X, y), math32.Vec2(run.Offset.X+run.Advance, y))
	brush := scene.NodeBrush{Brush: scene.Solid(run.Color), Node: ec.node}
	sc.Stroke(scene.NewStroke(size), transform, brush, nil, line)
}

// inlineWidth is the maximum extent of a layout's glyph runs.
func inlineWidth(layout *dom.InlineLayout) float32 {
	var w float32
	for li := range layout.Lines {
		for _, item := range layout.Lines[li].Items {
			if run, ok := item.(*dom.GlyphRun); ok {
				w = math32.Max(w, run.Offset.X+run.Advance)
			}
		}
	}
	return w
}
