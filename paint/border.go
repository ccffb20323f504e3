// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"github.com/sumiweb/sumi/scene"
	"github.com/sumiweb/sumi/sides"
)

// drawBorder paints the four border edges. Every painted border style
// renders as solid; dotted, dashed and the 3D styles keep their edge
// geometry but not their patterns.
func (ec *elemCx) drawBorder(sc scene.Scene) {
	for edge := sides.Top; edge <= sides.Left; edge++ {
		ec.drawBorderEdge(sc, edge)
	}
}

func (ec *elemCx) drawBorderEdge(sc scene.Scene, edge sides.Indexes) {
	border := &ec.style.Border
	if ec.frame.BorderWidth.Side(edge) <= 0 {
		return
	}
	if !border.Style.Side(edge).IsPainted() {
		return
	}
	clr := border.Color.Side(edge)
	if clr.A == 0 {
		return
	}
	shape := scene.NewPathShape(ec.frame.BorderEdgePath(edge))
	sc.Fill(scene.NonZero, ec.transform, scene.Solid(clr), nil, shape)
}

// drawOutline paints the outline ring outside the border box.
func (ec *elemCx) drawOutline(sc scene.Scene) {
	outline := &ec.style.Outline
	if !outline.Style.IsPainted() || outline.Width <= 0 {
		return
	}
	if outline.Color.A == 0 {
		return
	}
	shape := scene.NewPathShape(ec.frame.OutlinePath())
	sc.Fill(scene.NonZero, ec.transform, scene.Solid(outline.Color), nil, shape)
}
