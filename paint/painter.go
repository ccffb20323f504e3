// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint walks a laid-out document tree and emits an ordered
// stream of drawing commands into a [scene.Scene]. It assumes styles
// are resolved and layout is complete; do both before painting.
package paint

import (
	"image/color"

	"github.com/sumiweb/sumi/dom"
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/scene"
	"github.com/sumiweb/sumi/sides"
	"github.com/sumiweb/sumi/styles"
)

// Painter paints one document. A call to [Painter.PaintScene] is one
// paint session; the clip budget resets at the start of each session.
type Painter struct {
	doc    *dom.Document
	scale  float32
	layers layerManager
}

// New returns a painter for the document.
func New(doc *dom.Document) *Painter {
	scale := doc.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Painter{doc: doc, scale: scale}
}

// Stats returns the clip budget counters of the last session.
func (pt *Painter) Stats() ClipStats {
	return pt.layers.stats()
}

// PaintScene paints the whole document into the scene: the root
// background first, then the element tree, then the devtools overlay.
func (pt *Painter) PaintScene(sc scene.Scene) {
	pt.layers = layerManager{}

	root := pt.doc.Root
	if root == nil {
		return
	}

	bgWidth := math32.Max(float32(pt.doc.ViewportWidth), root.Layout.Width*pt.scale)
	bgHeight := math32.Max(float32(pt.doc.ViewportHeight), root.Layout.Height*pt.scale)
	rect := scene.Rect{Box: math32.B2(0, 0, bgWidth, bgHeight)}
	sc.Fill(scene.NonZero, math32.Identity2(), scene.Solid(pt.rootBackground(root)), nil, rect)

	pt.renderNode(sc, root, pt.doc.ViewportScroll.Negate())

	if pt.doc.Devtools.HighlightHover && pt.doc.HoverNode != nil {
		renderDebugOverlay(sc, pt.doc, pt.doc.HoverNode)
	}
}

// rootBackground is the canvas background color: the root element's
// background, propagated from the body when the root is transparent,
// defaulting to white.
func (pt *Painter) rootBackground(root *dom.Node) color.RGBA {
	if root.Style != nil && root.Style.Background.Color.A != 0 {
		return root.Style.Background.Color
	}
	for _, child := range root.Children {
		if child.Element != nil && child.Element.Tag == "body" {
			if child.Style != nil && child.Style.Background.Color.A != 0 {
				return child.Style.Background.Color
			}
			break
		}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

func (pt *Painter) renderNode(sc scene.Scene, node *dom.Node, location math32.Vector2) {
	// Text nodes paint as part of their inline root, never directly.
	if node.Kind == dom.KindText {
		return
	}
	pt.renderElement(sc, node, location)
}

// renderElement paints one element and recurses into its children in
// the fixed back-to-front order: outline, outset shadow, background,
// border, clip layer, inset shadow, content, children.
func (pt *Painter) renderElement(sc scene.Scene, node *dom.Node, location math32.Vector2) {
	style := node.Style
	if style == nil {
		return
	}
	if style.Display == styles.DisplayNone {
		return
	}
	if node.Element != nil && node.Element.Hidden {
		return
	}
	if node.IsInputType("hidden") {
		return
	}
	if style.Visibility != styles.VisibilityVisible {
		return
	}
	if style.Opacity == 0 {
		return
	}

	layout := &node.Layout
	if !isFinite(layout.Width) || !isFinite(layout.Height) ||
		layout.Width < 0 || layout.Height < 0 {
		return
	}

	pos := location.Add(math32.Vec2(layout.X, layout.Y))

	// Cull elements whose vertical extent is entirely off screen.
	scaledY := pos.Y * pt.scale
	scaledContentHeight := math32.Max(layout.ContentHeight, layout.Height) * pt.scale
	if scaledY > float32(pt.doc.ViewportHeight) || scaledY+scaledContentHeight < 0 {
		return
	}

	wantsLayer := !style.OverflowX.IsVisible() || !style.OverflowY.IsVisible() ||
		style.Opacity < 1

	frame := NewFrame(style, layout, pt.scale)

	// Tiny clips would mask everything anyway, so skip the subtree.
	if wantsLayer && frame.ContentBox.Area() < 0.01 {
		return
	}

	ec := &elemCx{
		pt:        pt,
		node:      node,
		elem:      node.Element,
		style:     style,
		frame:     frame,
		pos:       pos,
		scale:     pt.scale,
		transform: pt.elementTransform(style, frame, pos),
	}

	ec.drawOutline(sc)
	ec.drawOutsetShadows(sc)
	ec.drawBackground(sc)
	ec.drawBorder(sc)

	clip := frame.PaddingBoxPath()
	if ec.isTextInput() {
		clip = frame.ContentBoxPath()
	}
	pushed := pt.layers.maybePushLayer(sc, wantsLayer, style.Opacity, ec.transform, scene.NewPathShape(clip))

	ec.drawInsetShadows(sc)
	ec.strokeDevtools(sc)

	// The background stays put while the contents scroll.
	pb := sides.Add(style.Padding, style.Border.Width)
	contentPos := math32.Vec2(pb.Left, pb.Top).Sub(node.ScrollOffset)
	ec.pos = ec.pos.Sub(node.ScrollOffset)
	scroll := node.ScrollOffset.MulScalar(pt.scale)
	ec.transform = math32.Translate2D(-scroll.X, -scroll.Y).Mul(ec.transform)

	ec.drawImage(sc)
	ec.drawSVG(sc)
	ec.drawInput(sc)
	ec.drawTextInputText(sc, contentPos)
	ec.drawInlineText(sc, contentPos)
	ec.drawMarker(sc, contentPos)
	// An inline root's element children are positioned by its line
	// layout and recursed into by drawInlineText.
	if node.Inline == nil {
		for _, child := range node.Children {
			pt.renderNode(sc, child, ec.pos)
		}
	}

	pt.layers.maybePopLayer(sc, pushed)
}

// elementTransform composes the scaled box position with the CSS
// transform, conjugated by the transform origin. 3D transforms are
// ignored.
func (pt *Painter) elementTransform(style *styles.Style, frame *Frame, pos math32.Vector2) math32.Matrix2 {
	transform := math32.Translate2D(pos.X*pt.scale, pos.Y*pt.scale)

	t := &style.Transform
	if t.IsIdentity() {
		return transform
	}

	m := t.Matrix
	// The matrix's translation is in CSS pixels; its scale and skew
	// are unitless and stay as they are.
	m.X0 *= pt.scale
	m.Y0 *= pt.scale

	ox := resolveAgainst(t.OriginX, frame.BorderBox.Width(), pt.scale)
	oy := resolveAgainst(t.OriginY, frame.BorderBox.Height(), pt.scale)
	origin := math32.Translate2D(ox, oy)
	originInv := math32.Translate2D(-ox, -oy)
	return transform.Mul(origin.Mul(m).Mul(originInv))
}

// elemCx is the per-element paint context: the element's geometry,
// style and transform, resolved once and shared by the draw passes.
type elemCx struct {
	pt        *Painter
	node      *dom.Node
	elem      *dom.Element
	style     *styles.Style
	frame     *Frame
	pos       math32.Vector2
	scale     float32
	transform math32.Matrix2
}

func (ec *elemCx) isTextInput() bool {
	return ec.elem != nil && ec.elem.Editor != nil
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
