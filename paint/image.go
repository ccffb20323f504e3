// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/scene"
	"github.com/sumiweb/sumi/styles"
)

// drawImage paints a replaced raster image into the content box,
// sized by object-fit and placed by object-position. The image is
// resampled to the paint size through the element's cache.
func (ec *elemCx) drawImage(sc scene.Scene) {
	if ec.elem == nil || ec.elem.Image == nil || ec.elem.Image.Image == nil {
		return
	}
	img := ec.elem.Image

	container := math32.Vec2(ec.frame.ContentBox.Width(), ec.frame.ContentBox.Height())
	object := img.IntrinsicSize()
	if object.X <= 0 || object.Y <= 0 {
		return
	}
	size := computeObjectFit(container, object, ec.style.ObjectFit)
	if size.X < 1 || size.Y < 1 {
		return
	}

	offset := ec.objectPosition(container, size)
	x := ec.frame.ContentBox.Min.X + offset.X
	y := ec.frame.ContentBox.Min.Y + offset.Y

	resized := img.Resized(int(math32.Round(size.X)), int(math32.Round(size.Y)), ec.style.ImageRendering)
	if resized == nil {
		return
	}
	transform := ec.transform.Mul(math32.Translate2D(x, y))
	sc.DrawImage(scene.NewImageBrush(resized, imageQuality(ec.style.ImageRendering)), transform)
}

// drawSVG paints replaced vector content, always letterboxed into the
// content box.
func (ec *elemCx) drawSVG(sc scene.Scene) {
	if ec.elem == nil || ec.elem.SVG == nil {
		return
	}
	svg := ec.elem.SVG

	container := math32.Vec2(ec.frame.ContentBox.Width(), ec.frame.ContentBox.Height())
	object := svg.IntrinsicSize()
	if object.X <= 0 || object.Y <= 0 {
		return
	}
	size := computeObjectFit(container, object, styles.FitContain)
	if size.X <= 0 || size.Y <= 0 {
		return
	}

	offset := ec.objectPosition(container, size)
	x := ec.frame.ContentBox.Min.X + offset.X
	y := ec.frame.ContentBox.Min.Y + offset.Y

	transform := ec.transform.Mul(math32.Translate2D(x, y))
	svg.Draw(sc, transform, size)
}

// objectPosition resolves object-position against the space left over
// once the content is sized.
func (ec *elemCx) objectPosition(container, size math32.Vector2) math32.Vector2 {
	return math32.Vec2(
		resolveAgainst(ec.style.ObjectPositionX, container.X-size.X, ec.scale),
		resolveAgainst(ec.style.ObjectPositionY, container.Y-size.Y, ec.scale),
	)
}

// computeObjectFit sizes replaced content of the given intrinsic size
// within a container per the CSS object-fit rules. Sizes are in
// device pixels.
func computeObjectFit(container, object math32.Vector2, fit styles.ObjectFit) math32.Vector2 {
	switch fit {
	case styles.FitNone:
		return object
	case styles.FitCover:
		return objectFitRatio(container, object, true)
	case styles.FitContain:
		return objectFitRatio(container, object, false)
	case styles.FitScaleDown:
		contain := objectFitRatio(container, object, false)
		if object.X < contain.X {
			return object
		}
		return contain
	default:
		return container
	}
}

func objectFitRatio(container, object math32.Vector2, cover bool) math32.Vector2 {
	xRatio := container.X / object.X
	yRatio := container.Y / object.Y
	ratio := math32.Min(xRatio, yRatio)
	if cover {
		ratio = math32.Max(xRatio, yRatio)
	}
	return object.MulScalar(ratio)
}
