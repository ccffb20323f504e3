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
	"github.com/sumiweb/sumi/styles/units"
)

func shadowElemCx(style *styles.Style) *elemCx {
	pt := New(&dom.Document{Scale: 1})
	return &elemCx{
		pt:        pt,
		style:     style,
		frame:     NewFrame(style, &dom.Layout{Width: 100, Height: 50}, 1),
		scale:     1,
		transform: math32.Identity2(),
	}
}

func TestOutsetShadows(t *testing.T) {
	style := styles.NewStyle()
	style.Shadow = []styles.Shadow{
		{OffsetX: 2, OffsetY: 3, Blur: 4, Spread: 1, Color: red},
		{OffsetX: -2, OffsetY: -3, Color: blue},
	}
	ec := shadowElemCx(style)

	rec := scene.NewRecorder()
	ec.drawOutsetShadows(rec)

	// One clip layer around both shadows, drawn in reverse so the
	// first style entry ends up on top.
	require.Len(t, rec.Cmds, 4)
	_ = rec.Cmds[0].(scene.PushLayerCmd)
	first := rec.Cmds[1].(scene.BoxShadowCmd)
	second := rec.Cmds[2].(scene.BoxShadowCmd)
	_ = rec.Cmds[3].(scene.PopLayerCmd)

	assert.Equal(t, blue, first.Color)
	assert.Equal(t, math32.Translate2D(-2, -3).Mul(math32.Identity2()), first.Transform)
	assert.Equal(t, math32.B2(0, 0, 100, 50), first.Rect)

	assert.Equal(t, red, second.Color)
	assert.Equal(t, float32(4), second.Blur)
	// Spread inflates the shadow rectangle.
	assert.Equal(t, math32.B2(-1, -1, 101, 51), second.Rect)
}

func TestInsetShadows(t *testing.T) {
	style := styles.NewStyle()
	style.Shadow = []styles.Shadow{
		{OffsetX: 1, OffsetY: 2, Blur: 3, Color: red, Inset: true},
	}
	ec := shadowElemCx(style)

	rec := scene.NewRecorder()
	ec.drawInsetShadows(rec)

	require.Len(t, rec.Cmds, 3)
	push := rec.Cmds[0].(scene.PushLayerCmd)
	// Inset shadows clip to the rounded border box.
	assert.Equal(t, math32.B2(0, 0, 100, 50), push.Clip.Bounds())
	shadow := rec.Cmds[1].(scene.BoxShadowCmd)
	assert.Equal(t, red, shadow.Color)
	assert.Equal(t, math32.B2(0, 0, 100, 50), shadow.Rect)
	assert.Equal(t, math32.Translate2D(1, 2).Mul(math32.Identity2()), shadow.Transform)
}

func TestShadowPassesSkipOtherKind(t *testing.T) {
	style := styles.NewStyle()
	style.Shadow = []styles.Shadow{{Color: red, Inset: true}}
	ec := shadowElemCx(style)

	rec := scene.NewRecorder()
	ec.drawOutsetShadows(rec)
	assert.Empty(t, rec.Cmds)

	style.Shadow = []styles.Shadow{{Color: red}}
	rec = scene.NewRecorder()
	ec.drawInsetShadows(rec)
	assert.Empty(t, rec.Cmds)
}

func TestAverageRadius(t *testing.T) {
	style := styles.NewStyle()
	style.Border.Radius.Top = styles.CornerRadii{X: units.Dot(8), Y: units.Dot(8)}
	ec := shadowElemCx(style)

	// One rounded corner out of four averages over all eight radii.
	assert.InDelta(t, 2, ec.averageRadius(), 1e-4)
}
