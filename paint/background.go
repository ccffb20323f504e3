// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"github.com/sumiweb/sumi/dom"
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/scene"
	"github.com/sumiweb/sumi/styles"
)

// tileCountLimit caps the number of tiles emitted for one repeated
// gradient layer. Near-zero background sizes would otherwise explode
// the command count.
const tileCountLimit = 500

// drawBackground paints the background color and all background image
// layers of the element. The color fills the clip box of the
// bottom-most layer. Layers paint back to front, each clipped to its
// own clip box.
func (ec *elemCx) drawBackground(sc scene.Scene) {
	bg := &ec.style.Background

	clip := styles.BorderBox
	if n := len(bg.Layers); n > 0 {
		clip = bg.Layers[n-1].ClipBox
	}
	if bg.Color.A != 0 {
		shape := scene.NewPathShape(ec.frame.BackgroundClipPath(clip))
		sc.Fill(scene.NonZero, ec.transform, scene.Solid(bg.Color), nil, shape)
	}

	for i := len(bg.Layers) - 1; i >= 0; i-- {
		layer := &bg.Layers[i]
		shape := scene.NewPathShape(ec.frame.BackgroundClipPath(layer.ClipBox))
		pushed := ec.pt.layers.maybePushLayer(sc, true, 1, ec.transform, shape)
		switch layer.Image.Kind {
		case styles.SourceGradient:
			ec.drawGradientLayer(sc, layer)
		case styles.SourceRaster:
			ec.drawRasterLayer(sc, layer)
		case styles.SourceSVG:
			ec.drawSVGLayer(sc, layer)
		}
		ec.pt.layers.maybePopLayer(sc, pushed)
	}
}

// drawRasterLayer tiles a raster image over the layer's origin box.
func (ec *elemCx) drawRasterLayer(sc scene.Scene, layer *styles.BackgroundLayer) {
	img := ec.backgroundRaster(layer)
	if img == nil {
		return
	}

	originRect := ec.frame.BackgroundClipBox(layer.OriginBox)
	intrinsic := img.IntrinsicSize()
	imageW := intrinsic.X
	imageH := intrinsic.Y
	if imageW <= 0 || imageH <= 0 {
		return
	}

	pos, size := backgroundPositionAndSize(layer,
		originRect.Width()/ec.scale, originRect.Height()/ec.scale, &intrinsic)
	posX := pos.X * ec.scale
	posY := pos.Y * ec.scale
	size = size.MulScalar(ec.scale)
	if size.X <= 0 || size.Y <= 0 {
		return
	}

	xRatio := size.X / imageW
	yRatio := size.Y / imageH

	brush := scene.NewImageBrush(img.Image, imageQuality(ec.style.ImageRendering))

	transform := ec.transform.Mul(math32.Scale2D(xRatio, yRatio))
	rectW, rectH := originRect.Width(), originRect.Height()

	switch layer.RepeatX {
	case styles.Repeat, styles.RepeatRound:
		ext := extend(posX, size.X)
		transform = math32.Translate2D(originRect.Min.X-ext, 0).Mul(transform)
		rectW = (rectW + ext) / xRatio
	case styles.RepeatSpace:
		// Handled below.
	default:
		transform = math32.Translate2D(originRect.Min.X+posX, 0).Mul(transform)
		rectW = imageW
	}
	switch layer.RepeatY {
	case styles.Repeat, styles.RepeatRound:
		ext := extend(posY, size.Y)
		transform = math32.Translate2D(0, originRect.Min.Y-ext).Mul(transform)
		rectH = (rectH + ext) / yRatio
	case styles.RepeatSpace:
	default:
		transform = math32.Translate2D(0, originRect.Min.Y+posY).Mul(transform)
		rectH = imageH
	}

	spaceX := layer.RepeatX == styles.RepeatSpace
	spaceY := layer.RepeatY == styles.RepeatSpace
	if !spaceX && !spaceY {
		shape := scene.Rect{Box: math32.B2(0, 0, rectW, rectH)}
		sc.Fill(scene.NonZero, transform, brush, nil, shape)
		return
	}

	widthCount, widthGap := 1, float32(0)
	if spaceX {
		widthCount, widthGap = spaceCountAndGap(originRect.Width(), size.X)
		if widthCount == 1 {
			transform = math32.Translate2D(posX, 0).Mul(transform)
		}
		rectW = imageW
	}
	heightCount, heightGap := 1, float32(0)
	if spaceY {
		heightCount, heightGap = spaceCountAndGap(originRect.Height(), size.Y)
		if heightCount == 1 {
			transform = math32.Translate2D(0, posY).Mul(transform)
		}
		rectH = imageH
	}

	shape := scene.Rect{Box: math32.B2(0, 0, rectW, rectH)}
	for hc := 0; hc < heightCount; hc++ {
		for wc := 0; wc < widthCount; wc++ {
			var dx, dy float32
			if spaceX {
				dx = originRect.Min.X + float32(wc)*widthGap
			}
			if spaceY {
				dy = originRect.Min.Y + float32(hc)*heightGap
			}
			tile := math32.Translate2D(dx, dy).Mul(transform)
			sc.Fill(scene.NonZero, tile, brush, nil, shape)
		}
	}
}

// drawSVGLayer draws a vector background image, sized like a raster
// layer and positioned in the padding box. Vector layers do not tile.
func (ec *elemCx) drawSVGLayer(sc scene.Scene, layer *styles.BackgroundLayer) {
	svg := ec.backgroundSVG(layer)
	if svg == nil {
		return
	}

	frameW := ec.frame.PaddingBox.Width()
	frameH := ec.frame.PaddingBox.Height()

	svgSize := svg.IntrinsicSize()
	if svgSize.X <= 0 || svgSize.Y <= 0 {
		return
	}
	intrinsic := svgSize.DivScalar(ec.scale)
	size := backgroundSize(layer, frameW/ec.scale, frameH/ec.scale, &intrinsic, ec.scale)
	size = size.MulScalar(ec.scale)

	pos := backgroundPosition(layer, frameW-size.X, frameH-size.Y)

	transform := math32.Translate2D(ec.pos.X*ec.scale+pos.X, ec.pos.Y*ec.scale+pos.Y)
	svg.Draw(sc, transform, size)
}

// drawGradientLayer tiles a gradient over the layer's origin box.
func (ec *elemCx) drawGradientLayer(sc scene.Scene, layer *styles.BackgroundLayer) {
	originRect := ec.frame.BackgroundClipBox(layer.OriginBox)

	pos, size := backgroundPositionAndSize(layer,
		originRect.Width()/ec.scale, originRect.Height()/ec.scale, nil)
	posX := pos.X * ec.scale
	posY := pos.Y * ec.scale
	size = size.MulScalar(ec.scale)
	if size.X <= 0 || size.Y <= 0 {
		return
	}

	transform := ec.transform
	widthCount, widthGap := 1, float32(0)
	switch layer.RepeatX {
	case styles.Repeat, styles.RepeatRound:
		var ext, width float32
		// When the clip box extends past the origin box the tiling
		// must cover the clip box too, so the run starts at the clip
		// box edge with the position offset folded into the extend.
		switch {
		case layer.ClipBox == styles.BorderBox && layer.OriginBox == styles.PaddingBox:
			ext = extend(ec.frame.BorderWidth.Left+posX, size.X)
			width = ec.frame.BorderBox.Width() + ext
			originRect.Min.X = ec.frame.BorderBox.Min.X
		case layer.ClipBox == styles.BorderBox && layer.OriginBox == styles.ContentBox:
			ext = extend(ec.frame.BorderWidth.Left+ec.frame.PaddingWidth.Left+posX, size.X)
			width = ec.frame.BorderBox.Width() + ext
			originRect.Min.X = ec.frame.BorderBox.Min.X
		case layer.ClipBox == styles.PaddingBox && layer.OriginBox == styles.ContentBox:
			ext = extend(ec.frame.PaddingWidth.Left+posX, size.X)
			width = ec.frame.PaddingBox.Width() + ext
			originRect.Min.X = ec.frame.PaddingBox.Min.X
		default:
			ext = extend(posX, size.X)
			width = originRect.Width() + ext
		}
		widthCount = int(math32.Ceil(width / size.X))
		widthGap = size.X
		transform = math32.Translate2D(originRect.Min.X-ext, 0).Mul(transform)
		originRect.Max.X = originRect.Min.X + size.X
	case styles.RepeatSpace:
		widthCount, widthGap = spaceCountAndGap(originRect.Width(), size.X)
		off := float32(0)
		if widthCount == 1 {
			off = posX
		}
		transform = math32.Translate2D(originRect.Min.X+off, 0).Mul(transform)
		originRect.Max.X = originRect.Min.X + size.X
	default:
		transform = math32.Translate2D(originRect.Min.X+posX, 0).Mul(transform)
		originRect.Max.X = originRect.Min.X + size.X
	}
	heightCount, heightGap := 1, float32(0)
	switch layer.RepeatY {
	case styles.Repeat, styles.RepeatRound:
		var ext, height float32
		switch {
		case layer.ClipBox == styles.BorderBox && layer.OriginBox == styles.PaddingBox:
			ext = extend(ec.frame.BorderWidth.Top+posY, size.Y)
			height = ec.frame.BorderBox.Height() + ext
			originRect.Min.Y = ec.frame.BorderBox.Min.Y
		case layer.ClipBox == styles.BorderBox && layer.OriginBox == styles.ContentBox:
			ext = extend(ec.frame.BorderWidth.Top+ec.frame.PaddingWidth.Top+posY, size.Y)
			height = ec.frame.BorderBox.Height() + ext
			originRect.Min.Y = ec.frame.BorderBox.Min.Y
		case layer.ClipBox == styles.PaddingBox && layer.OriginBox == styles.ContentBox:
			ext = extend(ec.frame.PaddingWidth.Top+posY, size.Y)
			height = ec.frame.PaddingBox.Height() + ext
			originRect.Min.Y = ec.frame.PaddingBox.Min.Y
		default:
			ext = extend(posY, size.Y)
			height = originRect.Height() + ext
		}
		heightCount = int(math32.Ceil(height / size.Y))
		heightGap = size.Y
		transform = math32.Translate2D(0, originRect.Min.Y-ext).Mul(transform)
		originRect.Max.Y = originRect.Min.Y + size.Y
	case styles.RepeatSpace:
		heightCount, heightGap = spaceCountAndGap(originRect.Height(), size.Y)
		off := float32(0)
		if heightCount == 1 {
			off = posY
		}
		transform = math32.Translate2D(0, originRect.Min.Y+off).Mul(transform)
		originRect.Max.Y = originRect.Min.Y + size.Y
	default:
		transform = math32.Translate2D(0, originRect.Min.Y+posY).Mul(transform)
		originRect.Max.Y = originRect.Min.Y + size.Y
	}

	if widthCount*heightCount > tileCountLimit {
		return
	}

	tileRect := math32.B2(0, 0, originRect.Width(), originRect.Height())
	grad, brushTransform, ok := resolveGradient(layer.Image.Gradient, tileRect, ec.frame.BorderBox, ec.scale)
	if !ok {
		return
	}
	brush := scene.GradientBrush{Gradient: grad}
	shape := scene.Rect{Box: tileRect}

	for hc := 0; hc < heightCount; hc++ {
		for wc := 0; wc < widthCount; wc++ {
			tile := math32.Translate2D(float32(wc)*widthGap, float32(hc)*heightGap).Mul(transform)
			sc.Fill(scene.NonZero, tile, brush, brushTransform, shape)
		}
	}
}

func (ec *elemCx) backgroundRaster(layer *styles.BackgroundLayer) *dom.RasterImage {
	if ec.elem == nil {
		return nil
	}
	slot := layer.Image.Slot
	if slot < 0 || slot >= len(ec.elem.BackgroundImages) {
		return nil
	}
	img := ec.elem.BackgroundImages[slot].Raster
	if img == nil || img.Image == nil {
		return nil
	}
	return img
}

func (ec *elemCx) backgroundSVG(layer *styles.BackgroundLayer) dom.SVGSource {
	if ec.elem == nil {
		return nil
	}
	slot := layer.Image.Slot
	if slot < 0 || slot >= len(ec.elem.BackgroundImages) {
		return nil
	}
	return ec.elem.BackgroundImages[slot].SVG
}

// backgroundPositionAndSize resolves the layer's position and size in
// CSS pixels against the origin box, applying round tiling
// adjustments. intrinsic is the image's intrinsic size, or nil for
// gradients, which have none.
func backgroundPositionAndSize(layer *styles.BackgroundLayer, containerW, containerH float32, intrinsic *math32.Vector2) (pos, size math32.Vector2) {
	size = backgroundSize(layer, containerW, containerH, intrinsic, 1)
	pos = backgroundPosition(layer, containerW-size.X, containerH-size.Y)

	if layer.RepeatX == styles.RepeatRound && size.X > 0 {
		count := math32.Round(containerW / size.X)
		if count >= 1 {
			size.X = containerW / count
		}
	}
	if layer.RepeatY == styles.RepeatRound && size.Y > 0 {
		count := math32.Round(containerH / size.Y)
		if count >= 1 {
			size.Y = containerH / count
		}
	}
	return pos, size
}

// backgroundPosition resolves background-position against the
// leftover space once the image size is known.
func backgroundPosition(layer *styles.BackgroundLayer, width, height float32) math32.Vector2 {
	return math32.Vec2(layer.PositionX.ToDots(width), layer.PositionY.ToDots(height))
}

// backgroundSize resolves background-size in CSS pixels. Layers
// without an intrinsic size always fill the container; auto axes keep
// the image's aspect ratio.
func backgroundSize(layer *styles.BackgroundLayer, containerW, containerH float32, intrinsic *math32.Vector2, scale float32) math32.Vector2 {
	switch layer.Size.Kind {
	case styles.SizeCover, styles.SizeContain:
		if intrinsic == nil {
			return math32.Vec2(containerW, containerH)
		}
		xRatio := containerW / intrinsic.X
		yRatio := containerH / intrinsic.Y
		var ratio float32
		small := xRatio < 1 || yRatio < 1
		if (layer.Size.Kind == styles.SizeCover) == small {
			ratio = math32.Min(xRatio, yRatio)
		} else {
			ratio = math32.Max(xRatio, yRatio)
		}
		return intrinsic.MulScalar(ratio)
	}

	w, h := layer.Size.Width, layer.Size.Height
	switch {
	case !w.IsAuto() && !h.IsAuto():
		return math32.Vec2(w.ToDots(containerW), h.ToDots(containerH))
	case !w.IsAuto():
		width := w.ToDots(containerW)
		if intrinsic == nil {
			return math32.Vec2(width, containerH)
		}
		return math32.Vec2(width, intrinsic.Y/intrinsic.X*width)
	case !h.IsAuto():
		height := h.ToDots(containerH)
		if intrinsic == nil {
			return math32.Vec2(containerW, height)
		}
		return math32.Vec2(intrinsic.X/intrinsic.Y*height, height)
	default:
		if intrinsic == nil {
			return math32.Vec2(containerW, containerH)
		}
		return intrinsic.MulScalar(scale)
	}
}

// spaceCountAndGap computes the tile count and the stride between
// tile origins for space tiling. The stride includes the tile size.
func spaceCountAndGap(container, tile float32) (int, float32) {
	if tile <= 0 {
		return 1, 0
	}
	modulo := math32.Mod(container, tile)
	count := int((container - modulo) / tile)
	if count < 1 {
		count = 1
	}
	gap := tile
	if count > 1 {
		gap += modulo / float32(count-1)
	}
	return count, gap
}

// extend computes how far a tile run must start before its container
// so that tiles cover the leading edge at the given position offset.
func extend(offset, length float32) float32 {
	ext := math32.Mod(offset, length)
	if ext > 0 {
		return length - ext
	}
	return -ext
}

func imageQuality(r styles.ImageRendering) scene.ImageQuality {
	switch r {
	case styles.RenderingCrispEdges, styles.RenderingPixelated:
		return scene.QualityLow
	default:
		return scene.QualityMedium
	}
}
