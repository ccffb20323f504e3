// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumiweb/sumi/dom"
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/scene"
	"github.com/sumiweb/sumi/styles"
)

func testRun() *dom.GlyphRun {
	return &dom.GlyphRun{
		Size:   16,
		Offset: math32.Vec2(2, 10),
		Glyphs: []scene.Glyph{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 5, Y: 0},
		},
		Advance: 12,
		Color:   red,
	}
}

func inlineWith(runs ...*dom.GlyphRun) *dom.InlineLayout {
	line := dom.Line{Baseline: 10}
	for _, r := range runs {
		line.Items = append(line.Items, r)
	}
	return &dom.InlineLayout{Lines: []dom.Line{line}}
}

func textElemCx(node *dom.Node) *elemCx {
	style := node.Style
	if style == nil {
		style = styles.NewStyle()
	}
	pt := New(&dom.Document{Scale: 1, ViewportWidth: 800, ViewportHeight: 600})
	return &elemCx{
		pt:        pt,
		node:      node,
		elem:      node.Element,
		style:     style,
		scale:     1,
		transform: math32.Identity2(),
	}
}

func TestTextTransform(t *testing.T) {
	ec := &elemCx{scale: 2, transform: math32.Translate2D(10, 10)}
	m := ec.textTransform(math32.Vec2(3, 4))
	// Layout-local CSS pixels scale to device pixels, then shift by the
	// scaled layout origin and the element transform.
	got := m.MulVector2AsPoint(math32.Vec2(1, 1))
	assert.InDelta(t, 18, got.X, 1e-4)
	assert.InDelta(t, 20, got.Y, 1e-4)
}

func TestDrawInlineText(t *testing.T) {
	node := &dom.Node{Kind: dom.KindElement, Inline: inlineWith(testRun())}
	node.Inline.Selection = []math32.Box2{math32.B2(0, 0, 12, 14)}
	ec := textElemCx(node)

	rec := scene.NewRecorder()
	ec.drawInlineText(rec, math32.Vec2(0, 0))

	require.Len(t, rec.Cmds, 2)
	sel := rec.Cmds[0].(scene.FillCmd)
	assert.Equal(t, scene.Solid(selectionColor), sel.Brush)
	assert.Equal(t, scene.Rect{Box: math32.B2(0, 0, 12, 14)}, sel.Shape)

	glyphs := rec.Cmds[1].(scene.GlyphsCmd)
	assert.Equal(t, float32(16), glyphs.Size)
	assert.Equal(t, float32(1), glyphs.Alpha)
	assert.Nil(t, glyphs.GlyphTransform)
	assert.Equal(t, scene.NodeBrush{Brush: scene.Solid(red), Node: node}, glyphs.Brush)
	// Glyph positions are run offset plus relative position.
	require.Len(t, glyphs.Glyphs, 2)
	assert.Equal(t, scene.Glyph{ID: 1, X: 2, Y: 10}, glyphs.Glyphs[0])
	assert.Equal(t, scene.Glyph{ID: 2, X: 7, Y: 10}, glyphs.Glyphs[1])
}

func TestDrawInlineTextNoLayout(t *testing.T) {
	ec := textElemCx(&dom.Node{Kind: dom.KindElement})
	rec := scene.NewRecorder()
	ec.drawInlineText(rec, math32.Vec2(0, 0))
	assert.Empty(t, rec.Cmds)
}

func TestUnderline(t *testing.T) {
	run := testRun()
	run.Underline = true
	run.Metrics = dom.RunMetrics{UnderlineOffset: -1, UnderlineSize: 2}
	node := &dom.Node{Kind: dom.KindElement, Inline: inlineWith(run)}
	ec := textElemCx(node)

	rec := scene.NewRecorder()
	ec.drawInlineText(rec, math32.Vec2(0, 0))

	require.Len(t, rec.Cmds, 2)
	stroke := rec.Cmds[1].(scene.StrokeCmd)
	assert.Equal(t, float32(2), stroke.Stroke.Width)
	line := stroke.Shape.(scene.Line)
	// Baseline 10, offset -1 below it, centered on the 2px stroke.
	assert.Equal(t, math32.Vec2(2, 12), line.Start)
	assert.Equal(t, math32.Vec2(14, 12), line.End)
}

func TestSynthesisSkew(t *testing.T) {
	run := testRun()
	run.SynthesisSkew = 0.3
	node := &dom.Node{Kind: dom.KindElement, Inline: inlineWith(run)}
	ec := textElemCx(node)

	rec := scene.NewRecorder()
	ec.drawInlineText(rec, math32.Vec2(0, 0))

	glyphs := rec.Cmds[0].(scene.GlyphsCmd)
	require.NotNil(t, glyphs.GlyphTransform)
	want := math32.Skew2D(math32.Tan(0.3), 0)
	assert.Equal(t, want, *glyphs.GlyphTransform)
}

func TestDrawTextInputText(t *testing.T) {
	caret := math32.B2(20, 0, 21, 14)
	node := &dom.Node{
		Kind: dom.KindElement,
		Element: &dom.Element{
			Tag: "input",
			Editor: &dom.Editor{
				Layout:    inlineWith(testRun()),
				Selection: []math32.Box2{math32.B2(0, 0, 10, 14)},
				Caret:     &caret,
			},
		},
		Focused: true,
	}
	ec := textElemCx(node)

	rec := scene.NewRecorder()
	ec.drawTextInputText(rec, math32.Vec2(0, 0))

	// Selection, caret, then the text.
	require.Len(t, rec.Cmds, 3)
	assert.Equal(t, scene.Solid(selectionColor), rec.Cmds[0].(scene.FillCmd).Brush)
	caretFill := rec.Cmds[1].(scene.FillCmd)
	assert.Equal(t, scene.Solid(ec.style.Color), caretFill.Brush)
	assert.Equal(t, scene.Rect{Box: caret}, caretFill.Shape)
	_ = rec.Cmds[2].(scene.GlyphsCmd)

	// Unfocused inputs paint neither selection nor caret.
	node.Focused = false
	rec = scene.NewRecorder()
	ec.drawTextInputText(rec, math32.Vec2(0, 0))
	require.Len(t, rec.Cmds, 1)
	_ = rec.Cmds[0].(scene.GlyphsCmd)
}

func TestDrawInlineBox(t *testing.T) {
	child := &dom.Node{Kind: dom.KindElement, Layout: dom.Layout{Width: 10, Height: 10}}
	child.Style = styles.NewStyle()
	child.Style.Background.Color = blue

	layout := inlineWith(testRun())
	layout.Lines[0].Items = append(layout.Lines[0].Items, &dom.InlineBox{Node: child, X: 5})

	node := &dom.Node{Kind: dom.KindElement, Inline: layout, Children: []*dom.Node{child}}
	node.Style = styles.NewStyle()
	node.Style.Padding.SetAll(2)
	ec := textElemCx(node)

	rec := scene.NewRecorder()
	ec.drawInlineText(rec, math32.Vec2(2, 2))

	// Glyphs first, then the nested element at its line position,
	// shifted by the root's padding edge.
	require.Len(t, rec.Cmds, 2)
	_ = rec.Cmds[0].(scene.GlyphsCmd)
	fill := rec.Cmds[1].(scene.FillCmd)
	assert.Equal(t, scene.Solid(blue), fill.Brush)
	assert.Equal(t, math32.Translate2D(7, 2), fill.Transform)
	assert.Equal(t, math32.B2(0, 0, 10, 10), fill.Shape.Bounds())
}

func TestInlineBoxPaintsOnce(t *testing.T) {
	child := div(0, 0, 10, 10, blue)
	parent := div(10, 10, 100, 20, red)
	parent.Inline = inlineWith(testRun())
	parent.Inline.Lines[0].Items = append(parent.Inline.Lines[0].Items,
		&dom.InlineBox{Node: child, X: 5})
	parent.Children = []*dom.Node{child}
	child.Parent = parent

	doc := testDoc(parent)
	_, rec := paint(doc)

	// The child paints through the line layout only, at the box
	// position rather than its block location.
	var childFills []scene.FillCmd
	for _, f := range fills(rec) {
		if f.Brush == scene.Solid(blue) {
			childFills = append(childFills, f)
		}
	}
	require.Len(t, childFills, 1)
	assert.Equal(t, math32.Translate2D(15, 10), childFills[0].Transform)
}

func TestDrawMarker(t *testing.T) {
	marker := testRun()
	marker.Offset = math32.Vec2(0, 8)
	marker.Advance = 6
	markerLayout := inlineWith(marker)
	markerLayout.Lines[0].Baseline = 8

	node := &dom.Node{
		Kind:   dom.KindElement,
		Inline: inlineWith(testRun()),
		Element: &dom.Element{
			Tag: "li",
			ListItem: &dom.ListItemLayout{
				Marker: markerLayout,
				IsChar: true,
			},
		},
	}
	node.Inline.Lines[0].Baseline = 20
	ec := textElemCx(node)

	rec := scene.NewRecorder()
	ec.drawMarker(rec, math32.Vec2(0, 0))

	require.Len(t, rec.Cmds, 1)
	glyphs := rec.Cmds[0].(scene.GlyphsCmd)
	// The marker shifts left of the content by its width plus the char
	// gap, and down to match the first line baselines.
	want := math32.Translate2D(-14, 12).Mul(math32.Identity2().Mul(math32.Scale2D(1, 1)))
	assert.Equal(t, want, glyphs.Transform)
}

func TestDrawMarkerInside(t *testing.T) {
	node := &dom.Node{
		Kind: dom.KindElement,
		Element: &dom.Element{
			Tag: "li",
			ListItem: &dom.ListItemLayout{
				Marker:   inlineWith(testRun()),
				Position: dom.PositionInside,
			},
		},
	}
	ec := textElemCx(node)

	rec := scene.NewRecorder()
	ec.drawMarker(rec, math32.Vec2(0, 0))
	assert.Empty(t, rec.Cmds)
}

func TestInlineWidth(t *testing.T) {
	a := testRun()
	a.Offset.X = 0
	a.Advance = 5
	b := testRun()
	b.Offset.X = 5
	b.Advance = 7
	assert.Equal(t, float32(12), inlineWidth(inlineWith(a, b)))
}
