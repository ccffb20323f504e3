// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"log/slog"

	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/scene"
)

// ClipLimit caps the total number of clip layers pushed per paint
// session. GPU backends allocate per-layer resources, so a runaway
// layer count must degrade to unclipped content rather than exhaust
// the scene buffer.
const ClipLimit = 1024

// ClipStats reports the clip-layer accounting of one paint session.
type ClipStats struct {
	// Used is the number of layers actually pushed.
	Used int

	// Wanted is the number of layers requested, including those
	// denied by the budget.
	Wanted int

	// MaxDepth is the high-water mark of simultaneously open layers.
	MaxDepth int
}

// layerManager tracks the clip budget of one paint session. Layers
// over the budget are silently dropped; their contents still paint,
// just unclipped.
type layerManager struct {
	used     int
	depth    int
	maxDepth int
	wanted   int
	warned   bool
}

// maybePushLayer pushes a clip layer if cond holds and the budget
// allows it, and reports whether a layer was actually pushed. Opacity
// below one composites through an alpha layer; otherwise a pure clip
// layer is used.
func (lm *layerManager) maybePushLayer(sc scene.Scene, cond bool, opacity float32, transform math32.Matrix2, clip scene.Shape) bool {
	if !cond {
		return false
	}
	lm.wanted++
	if lm.used >= ClipLimit {
		if !lm.warned {
			slog.Warn("paint: clip layer budget exceeded; painting unclipped", "limit", ClipLimit)
			lm.warned = true
		}
		return false
	}

	blend := scene.BlendClip
	if opacity != 1 {
		blend = scene.BlendNormal
	}
	sc.PushLayer(blend, opacity, transform, clip)

	lm.used++
	lm.depth++
	if lm.depth > lm.maxDepth {
		lm.maxDepth = lm.depth
	}
	return true
}

// maybePopLayer pops a layer only if its matching push was issued.
func (lm *layerManager) maybePopLayer(sc scene.Scene, pushed bool) {
	if pushed {
		sc.PopLayer()
		lm.depth--
	}
}

func (lm *layerManager) stats() ClipStats {
	return ClipStats{Used: lm.used, Wanted: lm.wanted, MaxDepth: lm.maxDepth}
}
