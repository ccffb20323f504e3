// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"

	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/scene"
	"github.com/sumiweb/sumi/styles"
	"github.com/sumiweb/sumi/styles/units"
)

// resolveGradient turns a style gradient into a scene gradient brush
// plus an optional brush transform. rect is the tile rectangle in
// device pixels, boundingBox the element's border box in device
// pixels (linear gradient lines are centered on it). ok is false for
// gradients whose geometry cannot be resolved; such layers are
// omitted.
func resolveGradient(g *styles.Gradient, rect, boundingBox math32.Box2, scale float32) (grad scene.Gradient, brushTransform *math32.Matrix2, ok bool) {
	switch g.Kind {
	case styles.GradientLinear:
		return linearGradient(g, rect, boundingBox, scale)
	case styles.GradientRadial:
		return radialGradient(g, rect, scale)
	case styles.GradientConic:
		return conicGradient(g, rect, scale)
	}
	return scene.Gradient{}, nil, false
}

func gradientExtend(repeating bool) scene.Extend {
	if repeating {
		return scene.Repeat
	}
	return scene.Pad
}

func linearGradient(g *styles.Gradient, rect, boundingBox math32.Box2, scale float32) (scene.Gradient, *math32.Matrix2, bool) {
	var start, end math32.Vector2
	midX := rect.Min.X + rect.Width()/2
	midY := rect.Min.Y + rect.Height()/2

	switch g.Direction {
	case styles.DirectionAngle:
		// The gradient line passes through the border box center,
		// long enough for the endpoints to project onto the
		// farthest tile corners.
		center := boundingBox.Center()
		angle := -g.Angle + math32.Pi
		offsetLength := rect.Width()/2*math32.Abs(math32.Sin(angle)) +
			rect.Height()/2*math32.Abs(math32.Cos(angle))
		offset := math32.Vec2(math32.Sin(angle), math32.Cos(angle)).MulScalar(offsetLength)
		start = center.Sub(offset)
		end = center.Add(offset)
	case styles.ToRight:
		start = math32.Vec2(rect.Min.X, midY)
		end = math32.Vec2(rect.Max.X, midY)
	case styles.ToLeft:
		start = math32.Vec2(rect.Max.X, midY)
		end = math32.Vec2(rect.Min.X, midY)
	case styles.ToBottom:
		start = math32.Vec2(midX, rect.Min.Y)
		end = math32.Vec2(midX, rect.Max.Y)
	case styles.ToTop:
		start = math32.Vec2(midX, rect.Max.Y)
		end = math32.Vec2(midX, rect.Min.Y)
	case styles.ToTopRight:
		start = math32.Vec2(rect.Min.X, rect.Max.Y)
		end = math32.Vec2(rect.Max.X, rect.Min.Y)
	case styles.ToBottomRight:
		start = rect.Min
		end = rect.Max
	case styles.ToBottomLeft:
		start = math32.Vec2(rect.Max.X, rect.Min.Y)
		end = math32.Vec2(rect.Min.X, rect.Max.Y)
	case styles.ToTopLeft:
		start = rect.Max
		end = rect.Min
	}

	grad := scene.NewLinearGradient(start, end, gradientExtend(g.Repeating))
	length := start.DistanceTo(end)
	firstOffset, lastOffset := resolveStops(&grad, g.Stops, length, scale, g.Repeating, false)
	if g.Repeating && len(grad.Stops) > 1 {
		// Shift the endpoints so the visual period matches the
		// original stop range.
		grad.Start = start.Add(end.Sub(start).MulScalar(firstOffset))
		grad.End = end.Add(start.Sub(end).MulScalar(1 - lastOffset))
	}
	return grad, nil, true
}

func radialGradient(g *styles.Gradient, rect math32.Box2, scale float32) (scene.Gradient, *math32.Matrix2, bool) {
	grad := scene.NewRadialGradient(math32.Vec2(0, 0), 1, gradientExtend(g.Repeating))

	cx := resolveAgainst(g.CenterX, rect.Width(), scale)
	cy := resolveAgainst(g.CenterY, rect.Height(), scale)

	var radii math32.Vector2
	switch {
	case g.Extent == styles.ExtentExplicit:
		radii = math32.Vec2(
			resolveAgainst(g.RadiusX, rect.Width(), scale),
			resolveAgainst(g.RadiusY, rect.Height(), scale))
		if g.Shape == styles.ShapeCircle {
			radii.Y = radii.X
		}
	case g.Shape == styles.ShapeCircle:
		var r float32
		switch g.Extent {
		case styles.FarthestSide:
			r = math32.Max(
				math32.Max(cx, rect.Width()-cx),
				math32.Max(cy, rect.Height()-cy))
		case styles.ClosestSide:
			r = math32.Min(
				math32.Min(cx, rect.Width()-cx),
				math32.Min(cy, rect.Height()-cy))
		case styles.FarthestCorner:
			r = (math32.Max(cx, rect.Width()-cx) + math32.Max(cy, rect.Height()-cy)) *
				math32.Sqrt(0.5)
		case styles.ClosestCorner:
			r = (math32.Min(cx, rect.Width()-cx) + math32.Min(cy, rect.Height()-cy)) *
				math32.Sqrt(0.5)
		}
		radii = math32.Vec2(r, r)
	default:
		switch g.Extent {
		case styles.FarthestCorner, styles.FarthestSide:
			radii = math32.Vec2(
				math32.Max(cx, rect.Width()-cx),
				math32.Max(cy, rect.Height()-cy))
			if g.Extent == styles.FarthestCorner {
				radii = radii.MulScalar(math32.Sqrt2)
			}
		case styles.ClosestCorner, styles.ClosestSide:
			radii = math32.Vec2(
				math32.Min(cx, rect.Width()-cx),
				math32.Min(cy, rect.Height()-cy))
			if g.Extent == styles.ClosestCorner {
				radii = radii.MulScalar(math32.Sqrt2)
			}
		default:
			return grad, nil, false
		}
	}

	firstOffset, lastOffset := resolveStops(&grad, g.Stops, radii.X, scale, g.Repeating, false)
	periodScale := float32(1)
	if g.Repeating && len(grad.Stops) >= 2 {
		periodScale = lastOffset - firstOffset
	}
	m := math32.Translate2D(rect.Min.X+cx, rect.Min.Y+cy).
		Mul(math32.Scale2D(radii.X*periodScale, radii.Y*periodScale))
	return grad, &m, true
}

func conicGradient(g *styles.Gradient, rect math32.Box2, scale float32) (scene.Gradient, *math32.Matrix2, bool) {
	grad := scene.NewSweepGradient(math32.Vec2(0, 0), 0, 2*math32.Pi, gradientExtend(g.Repeating))

	firstOffset, lastOffset := resolveStops(&grad, g.Stops, 1, scale, g.Repeating, true)
	if g.Repeating && len(grad.Stops) >= 2 {
		grad.StartAngle = 2 * math32.Pi * firstOffset
		grad.EndAngle = 2 * math32.Pi * lastOffset
	}

	cx := resolveAgainst(g.CenterX, rect.Width(), scale)
	cy := resolveAgainst(g.CenterY, rect.Height(), scale)
	m := math32.Translate2D(rect.Min.X+cx, rect.Min.Y+cy).
		Mul(math32.Rotate2D(g.FromAngle - math32.Pi/2))
	return grad, &m, true
}

// resolveAgainst resolves a paint-time value against a device-pixel
// reference length, scaling pixel values by the device scale.
func resolveAgainst(v units.Value, ref, scale float32) float32 {
	if v.Unit == units.UnitPercent {
		return v.Value / 100 * ref
	}
	return v.Value * scale
}

// stopOffset resolves one stop position to a fraction of the gradient
// length. For conic stops the position is an angle (radians) or a
// percentage of a full turn.
func stopOffset(v units.Value, length, scale float32, angular bool) float32 {
	if v.Unit == units.UnitPercent {
		return v.Value / 100
	}
	if angular {
		return v.Value / (2 * math32.Pi)
	}
	return v.Value * scale / length
}

type resolvedStop struct {
	color  color.RGBA
	offset float32
	hint   bool
}

// resolveStopPositions resolves all stop positions to fractions,
// interpolating missing positions linearly between the nearest
// explicit neighbors (first defaults to 0, last to 1).
func resolveStopPositions(stops []styles.GradientStop, length, scale float32, angular bool) []resolvedStop {
	rs := make([]resolvedStop, len(stops))
	known := make([]bool, len(stops))
	for i, s := range stops {
		rs[i] = resolvedStop{color: s.Color, hint: s.Hint}
		if s.HasOffset || s.Hint {
			rs[i].offset = stopOffset(s.Offset, length, scale, angular)
			known[i] = true
		}
	}
	if len(rs) == 0 {
		return rs
	}
	if !known[0] {
		rs[0].offset = 0
		known[0] = true
	}
	if last := len(rs) - 1; !known[last] {
		rs[last].offset = 1
		known[last] = true
	}
	for i := 1; i < len(rs)-1; i++ {
		if known[i] {
			continue
		}
		// Find the run of unknown positions and spread it evenly
		// between the bounding known offsets.
		j := i
		for !known[j] {
			j++
		}
		prev := rs[i-1].offset
		next := rs[j].offset
		n := j - i + 1
		for k := i; k < j; k++ {
			rs[k].offset = prev + (next-prev)*float32(k-i+1)/float32(n)
			known[k] = true
		}
	}
	return rs
}

func lerpColor(a, b color.RGBA, t float32) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		v := float32(x) + t*(float32(y)-float32(x))
		return uint8(math32.Clamp(math32.Round(v), 0, 255))
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// resolveStops resolves the stop list into the gradient, realizing
// interpolation hints by synthesizing intermediate stops, and returns
// the first and last offset before any repeating rescale. Hints away
// from the midpoint insert nine samples spaced to approximate the
// t^log_mid(0.5) easing of the CSS hint model, seven on the longer
// segment and two on the shorter.
func resolveStops(grad *scene.Gradient, stops []styles.GradientStop, length, scale float32, repeating, angular bool) (firstOffset, lastOffset float32) {
	rs := resolveStopPositions(stops, length, scale, angular)

	var hint *float32
	for idx, s := range rs {
		if s.hint {
			h := s.offset
			hint = &h
			continue
		}
		clr, offset := s.color, s.offset

		if idx == 0 && !repeating && offset != 0 {
			grad.AddStop(clr, 0)
		}

		if hint == nil {
			grad.AddStop(clr, offset)
			continue
		}
		h := *hint
		hint = nil
		if len(grad.Stops) == 0 {
			grad.AddStop(clr, offset)
			continue
		}
		last := grad.Stops[len(grad.Stops)-1]

		switch {
		case h <= last.Offset:
			// Degenerate hint at or before the previous stop.
			switch len(grad.Stops) {
			case 0:
			case 1:
				grad.Stops = grad.Stops[:0]
			default:
				prev := grad.Stops[len(grad.Stops)-2]
				if prev.Offset == h {
					grad.Stops = grad.Stops[:len(grad.Stops)-1]
				}
			}
			grad.AddStop(clr, h)
		case h >= offset:
			// Degenerate hint at or past this stop.
			grad.AddStop(last.Color, h)
			grad.AddStop(clr, last.Offset)
		case h == (last.Offset+offset)/2:
			// A centered hint is plain linear interpolation.
			grad.AddStop(clr, offset)
		default:
			midPoint := (h - last.Offset) / (offset - last.Offset)
			exponent := math32.Log(0.5) / math32.Log(midPoint)
			interpolate := func(cur float32) {
				relative := (cur - last.Offset) / (offset - last.Offset)
				multiplier := math32.Pow(relative, exponent)
				grad.AddStop(lerpColor(last.Color, clr, multiplier), cur)
			}
			if midPoint > 0.5 {
				for i := 0; i < 7; i++ {
					interpolate(last.Offset + (h-last.Offset)*(7+float32(i))/13)
				}
				interpolate(h + (offset-h)/3)
				interpolate(h + (offset-h)*2/3)
			} else {
				interpolate(last.Offset + (h-last.Offset)/3)
				interpolate(last.Offset + (h-last.Offset)*2/3)
				for i := 0; i < 7; i++ {
					interpolate(h + (offset-h)*float32(i)/13)
				}
			}
			grad.AddStop(clr, offset)
		}
	}

	if repeating && len(grad.Stops) > 1 {
		firstOffset = grad.Stops[0].Offset
		lastOffset = grad.Stops[len(grad.Stops)-1].Offset
		if firstOffset != 0 || lastOffset != 1 {
			scaleInv := math32.Max(1e-7, 1/(lastOffset-firstOffset))
			for i := range grad.Stops {
				grad.Stops[i].Offset = (grad.Stops[i].Offset - firstOffset) * scaleInv
			}
		}
		return firstOffset, lastOffset
	}

	// Pin the final stop to the end of the gradient.
	if n := len(grad.Stops); n > 1 && grad.Stops[n-1].Offset < 1 {
		grad.AddStop(grad.Stops[n-1].Color, 1)
	}
	return 0, 1
}
