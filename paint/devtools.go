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
	"github.com/sumiweb/sumi/styles"
)

// strokeDevtools outlines the border box when layout debugging is on,
// colored by the element's display.
func (ec *elemCx) strokeDevtools(sc scene.Scene) {
	if !ec.pt.doc.Devtools.ShowLayout {
		return
	}
	var clr color.RGBA
	switch ec.style.Display {
	case styles.DisplayFlow:
		clr = color.RGBA{R: 255, A: 255}
	case styles.DisplayListItem:
		clr = color.RGBA{G: 255, A: 255}
	default:
		clr = color.RGBA{B: 255, A: 255}
	}
	shape := scene.Rect{Box: ec.frame.BorderBox}
	sc.Stroke(scene.NewStroke(ec.scale), ec.transform, scene.Solid(clr), nil, shape)
}

// renderDebugOverlay draws translucent fills over the hovered node's
// content, padding, border and margin areas.
func renderDebugOverlay(sc scene.Scene, doc *dom.Document, node *dom.Node) {
	scale := doc.Scale
	layout := &node.Layout
	style := node.Style
	if style == nil {
		return
	}

	padding := scaleSides(style.Padding, scale)
	border := scaleSides(style.Border.Width, scale)
	margin := scaleSides(layout.Margin, scale)
	pb := sides.Add(padding, border)

	width := layout.Width * scale
	height := layout.Height * scale
	contentWidth := width - pb.Left - pb.Right
	contentHeight := height - pb.Top - pb.Bottom

	abs := node.AbsolutePosition().Sub(doc.ViewportScroll).MulScalar(scale)

	// Content box, blue.
	contentPos := abs.Add(math32.Vec2(pb.Left, pb.Top))
	rect := scene.Rect{Box: math32.B2(0, 0, contentWidth, contentHeight)}
	fill := color.RGBA{R: 66, G: 144, B: 245, A: 128}
	sc.Fill(scene.NonZero, math32.Translate2D(contentPos.X, contentPos.Y), scene.Solid(fill), nil, rect)

	// Padding area, green.
	paddingColor := color.RGBA{R: 81, G: 144, B: 66, A: 128}
	drawCutoutRect(sc,
		abs.Add(math32.Vec2(border.Left, border.Top)),
		math32.Vec2(
			contentWidth+padding.Left+padding.Right,
			contentHeight+padding.Top+padding.Bottom,
		),
		padding, paddingColor)

	// Border area, red.
	borderColor := color.RGBA{R: 245, G: 66, B: 66, A: 128}
	drawCutoutRect(sc, abs, math32.Vec2(width, height), border, borderColor)

	// Margin area, orange.
	marginColor := color.RGBA{R: 249, G: 204, B: 157, A: 128}
	drawCutoutRect(sc,
		abs.Sub(math32.Vec2(margin.Left, margin.Top)),
		math32.Vec2(
			width+margin.Left+margin.Right,
			height+margin.Top+margin.Bottom,
		),
		margin, marginColor)
}

// drawCutoutRect fills the ring between a rectangle and its inset by
// the given edge widths, as eight edge and corner rectangles.
func drawCutoutRect(sc scene.Scene, base, size math32.Vector2, edges sides.Floats, clr color.RGBA) {
	fill := func(pos math32.Vector2, width, height float32) {
		sc.Fill(scene.NonZero, math32.Translate2D(pos.X, pos.Y), scene.Solid(clr), nil,
			scene.Rect{Box: math32.B2(0, 0, width, height)})
	}

	right := size.X - edges.Right
	bottom := size.Y - edges.Bottom
	innerW := size.X - edges.Left - edges.Right
	innerH := size.Y - edges.Top - edges.Bottom

	// Corners.
	fill(base, edges.Left, edges.Top)
	fill(base.Add(math32.Vec2(0, bottom)), edges.Left, edges.Bottom)
	fill(base.Add(math32.Vec2(right, 0)), edges.Right, edges.Top)
	fill(base.Add(math32.Vec2(right, bottom)), edges.Right, edges.Bottom)

	// Edges.
	fill(base.Add(math32.Vec2(0, edges.Top)), edges.Left, innerH)
	fill(base.Add(math32.Vec2(right, edges.Top)), edges.Right, innerH)
	fill(base.Add(math32.Vec2(edges.Left, 0)), innerW, edges.Top)
	fill(base.Add(math32.Vec2(edges.Left, bottom)), innerW, edges.Bottom)
}

func scaleSides(s sides.Floats, scale float32) sides.Floats {
	return sides.MulScalar(s, scale)
}
