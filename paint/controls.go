// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"

	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/ppath"
	"github.com/sumiweb/sumi/scene"
)

var (
	white        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	grey         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	disabledGrey = color.RGBA{R: 209, G: 209, B: 209, A: 255}
)

// drawInput paints the native widget of checkbox and radio inputs.
// Widgets draw at a size derived from the smaller border box
// dimension, so layout controls the widget size.
func (ec *elemCx) drawInput(sc scene.Scene) {
	if ec.elem == nil || ec.elem.Tag != "input" {
		return
	}
	// TODO: take the accent from css accent-color once styles carry it.
	accent := ec.style.Color
	if ec.elem.Disabled {
		accent = disabledGrey
	}

	box := ec.frame.BorderBox
	minDim := math32.Min(box.Width(), box.Height())
	scale := math32.Max(minDim-4, 0) / 16

	switch ec.elem.InputType {
	case "checkbox":
		frame := scene.NewRoundedRect(box, scale*2)
		drawCheckbox(sc, ec.elem.Checked, frame, ec.transform, accent, scale)
	case "radio":
		drawRadioButton(sc, ec.elem.Checked, box.Center(), ec.transform, accent, scale)
	}
}

func drawCheckbox(sc scene.Scene, checked bool, frame scene.RoundedRect, transform math32.Matrix2, accent color.RGBA, scale float32) {
	if !checked {
		sc.Fill(scene.NonZero, transform, scene.Solid(white), nil, frame)
		sc.Stroke(scene.NewStroke(1), transform, scene.Solid(accent), nil, frame)
		return
	}
	sc.Fill(scene.NonZero, transform, scene.Solid(accent), nil, frame)

	tick := &ppath.Path{}
	tick.MoveTo(math32.Vec2(2, 9))
	tick.LineTo(math32.Vec2(6, 13))
	tick.LineTo(math32.Vec2(14, 2))
	m := math32.Scale2D(scale, scale).Mul(math32.Translate2D(2, 1))
	m = math32.Translate2D(frame.Box.Min.X, frame.Box.Min.Y).Mul(m)
	tick.Transform(m)

	stroke := &scene.Stroke{
		Width:      2 * scale,
		Join:       scene.JoinRound,
		Cap:        scene.CapRound,
		MiterLimit: 10,
	}
	sc.Stroke(stroke, transform, scene.Solid(white), nil, scene.NewPathShape(tick))
}

func drawRadioButton(sc scene.Scene, checked bool, center math32.Vector2, transform math32.Matrix2, accent color.RGBA, scale float32) {
	outerRing := scene.NewCircle(center, 8*scale)
	gap := scene.NewCircle(center, 6*scale)
	inner := scene.NewCircle(center, 4*scale)
	if checked {
		sc.Fill(scene.NonZero, transform, scene.Solid(accent), nil, outerRing)
		sc.Fill(scene.NonZero, transform, scene.Solid(white), nil, gap)
		sc.Fill(scene.NonZero, transform, scene.Solid(accent), nil, inner)
	} else {
		sc.Fill(scene.NonZero, transform, scene.Solid(grey), nil, outerRing)
		sc.Fill(scene.NonZero, transform, scene.Solid(white), nil, gap)
	}
}
