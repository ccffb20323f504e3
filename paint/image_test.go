// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumiweb/sumi/dom"
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/scene"
	"github.com/sumiweb/sumi/styles"
)

func TestComputeObjectFit(t *testing.T) {
	container := math32.Vec2(100, 50)
	tests := []struct {
		name   string
		object math32.Vector2
		fit    styles.ObjectFit
		want   math32.Vector2
	}{
		{"fill", math32.Vec2(50, 50), styles.FitFill, math32.Vec2(100, 50)},
		{"contain", math32.Vec2(50, 50), styles.FitContain, math32.Vec2(50, 50)},
		{"contain wide", math32.Vec2(200, 50), styles.FitContain, math32.Vec2(100, 25)},
		{"cover", math32.Vec2(50, 50), styles.FitCover, math32.Vec2(100, 100)},
		{"none", math32.Vec2(30, 30), styles.FitNone, math32.Vec2(30, 30)},
		{"scale-down small", math32.Vec2(10, 10), styles.FitScaleDown, math32.Vec2(10, 10)},
		{"scale-down large", math32.Vec2(200, 200), styles.FitScaleDown, math32.Vec2(50, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeObjectFit(container, tt.object, tt.fit)
			assert.InDelta(t, tt.want.X, got.X, 1e-4)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-4)
		})
	}
}

func imageNode(w, h int) *dom.Node {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &dom.Node{
		Kind:    dom.KindElement,
		Element: &dom.Element{Tag: "img", Image: dom.NewRasterImage(img)},
	}
}

func imageElemCx(node *dom.Node, w, h float32) *elemCx {
	style := styles.NewStyle()
	pt := New(&dom.Document{Scale: 1})
	return &elemCx{
		pt:        pt,
		node:      node,
		elem:      node.Element,
		style:     style,
		frame:     NewFrame(style, &dom.Layout{Width: w, Height: h}, 1),
		scale:     1,
		transform: math32.Identity2(),
	}
}

func TestDrawImage(t *testing.T) {
	node := imageNode(4, 4)
	ec := imageElemCx(node, 4, 4)

	rec := scene.NewRecorder()
	ec.drawImage(rec)

	require.Len(t, rec.Cmds, 1)
	cmd := rec.Cmds[0].(scene.ImageCmd)
	// Same size as the content box, so the original pixels are used.
	assert.Same(t, node.Element.Image.Image, cmd.Image.Image)
	assert.Equal(t, scene.QualityMedium, cmd.Image.Quality)
	assert.Equal(t, math32.Identity2().Mul(math32.Translate2D(0, 0)), cmd.Transform)
}

func TestDrawImageObjectPosition(t *testing.T) {
	node := imageNode(4, 4)
	ec := imageElemCx(node, 10, 4)
	ec.style.ObjectFit = styles.FitNone

	rec := scene.NewRecorder()
	ec.drawImage(rec)

	require.Len(t, rec.Cmds, 1)
	cmd := rec.Cmds[0].(scene.ImageCmd)
	// The default 50% position centers the leftover 6px.
	assert.Equal(t, math32.Identity2().Mul(math32.Translate2D(3, 0)), cmd.Transform)
}

func TestDrawImagePixelated(t *testing.T) {
	node := imageNode(4, 4)
	ec := imageElemCx(node, 4, 4)
	ec.style.ImageRendering = styles.RenderingPixelated

	rec := scene.NewRecorder()
	ec.drawImage(rec)

	require.Len(t, rec.Cmds, 1)
	assert.Equal(t, scene.QualityLow, rec.Cmds[0].(scene.ImageCmd).Image.Quality)
}

func TestDrawImageDegenerate(t *testing.T) {
	node := imageNode(4, 4)
	// A content box under a pixel paints nothing.
	ec := imageElemCx(node, 0.5, 0.5)

	rec := scene.NewRecorder()
	ec.drawImage(rec)
	assert.Empty(t, rec.Cmds)
}

type fakeSVG struct {
	size  math32.Vector2
	calls []struct {
		transform math32.Matrix2
		size      math32.Vector2
	}
}

func (f *fakeSVG) IntrinsicSize() math32.Vector2 { return f.size }

func (f *fakeSVG) Draw(sc scene.Scene, transform math32.Matrix2, size math32.Vector2) {
	f.calls = append(f.calls, struct {
		transform math32.Matrix2
		size      math32.Vector2
	}{transform, size})
}

func TestDrawSVG(t *testing.T) {
	svg := &fakeSVG{size: math32.Vec2(50, 50)}
	node := &dom.Node{
		Kind:    dom.KindElement,
		Element: &dom.Element{Tag: "svg", SVG: svg},
	}
	ec := imageElemCx(node, 100, 50)
	// Replaced vector content always letterboxes, whatever object-fit
	// says.
	ec.style.ObjectFit = styles.FitCover

	rec := scene.NewRecorder()
	ec.drawSVG(rec)

	require.Len(t, svg.calls, 1)
	assert.Equal(t, math32.Vec2(50, 50), svg.calls[0].size)
	// Centered in the 100px axis.
	assert.Equal(t, math32.Identity2().Mul(math32.Translate2D(25, 0)), svg.calls[0].transform)
}

func TestRasterImageResizedCache(t *testing.T) {
	img := dom.NewRasterImage(image.NewRGBA(image.Rect(0, 0, 4, 4)))

	small := img.Resized(2, 2, styles.RenderingAuto)
	require.NotNil(t, small)
	assert.Equal(t, 2, small.Bounds().Dx())

	// Same key returns the cached image.
	assert.Same(t, small, img.Resized(2, 2, styles.RenderingAuto))

	// A different filter is a different cache entry.
	assert.NotSame(t, small, img.Resized(2, 2, styles.RenderingPixelated))

	// The intrinsic size is returned directly.
	assert.Same(t, img.Image, img.Resized(4, 4, styles.RenderingAuto))

	assert.Nil(t, img.Resized(0, 2, styles.RenderingAuto))
}
