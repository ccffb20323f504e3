// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/scene"
	"github.com/sumiweb/sumi/sides"
)

// drawOutsetShadows paints shadows cast outside the element. The
// whole pass runs inside a clip layer that excludes the border box so
// a translucent element does not show its own shadow through.
func (ec *elemCx) drawOutsetShadows(sc scene.Scene) {
	shadows := ec.style.Shadow
	hasOutset := false
	for i := range shadows {
		if !shadows[i].Inset {
			hasOutset = true
			break
		}
	}
	if !hasOutset {
		return
	}

	var maxRect math32.Box2
	for i := range shadows {
		s := &shadows[i]
		offset := (s.Spread + s.Blur*2.5) * ec.scale
		rect := ec.frame.BorderBox.Inset(-offset)
		rect = rect.Translate(math32.Vec2(s.OffsetX*ec.scale, s.OffsetY*ec.scale))
		maxRect = maxRect.Union(rect)
	}

	clip := scene.NewPathShape(ec.frame.ShadowClipPath(maxRect))
	pushed := ec.pt.layers.maybePushLayer(sc, true, 1, ec.transform, clip)
	for i := len(shadows) - 1; i >= 0; i-- {
		s := &shadows[i]
		if s.Inset || s.Color.A == 0 {
			continue
		}
		transform := math32.Translate2D(s.OffsetX*ec.scale, s.OffsetY*ec.scale).Mul(ec.transform)
		rect := ec.frame.BorderBox.Inset(-s.Spread * ec.scale)
		sc.DrawBoxShadow(transform, rect, s.Color, ec.averageRadius(), s.Blur*ec.scale)
	}
	ec.pt.layers.maybePopLayer(sc, pushed)
}

// drawInsetShadows paints shadows cast inside the element, clipped to
// the rounded border box so they never spill outside it.
func (ec *elemCx) drawInsetShadows(sc scene.Scene) {
	shadows := ec.style.Shadow
	hasInset := false
	for i := range shadows {
		if shadows[i].Inset {
			hasInset = true
			break
		}
	}
	if !hasInset {
		return
	}

	clip := scene.NewPathShape(ec.frame.BorderBoxPath())
	pushed := ec.pt.layers.maybePushLayer(sc, true, 1, ec.transform, clip)
	for i := range shadows {
		s := &shadows[i]
		if !s.Inset || s.Color.A == 0 {
			continue
		}
		transform := math32.Translate2D(s.OffsetX*ec.scale, s.OffsetY*ec.scale).Mul(ec.transform)
		sc.DrawBoxShadow(transform, ec.frame.BorderBox, s.Color, ec.averageRadius(), s.Blur*ec.scale)
	}
	ec.pt.layers.maybePopLayer(sc, pushed)
}

// averageRadius flattens the per-corner radii to the single radius
// the shadow primitive accepts.
// TODO: draw shadows with the matching individual radii.
func (ec *elemCx) averageRadius() float32 {
	var sum float32
	for c := sides.Top; c <= sides.Left; c++ {
		r := ec.frame.Radii.Side(c)
		sum += r.X + r.Y
	}
	return sum / 8
}
