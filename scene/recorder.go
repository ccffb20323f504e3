// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"github.com/go-text/typesetting/font"
	"github.com/sumiweb/sumi/math32"
)

// Command is a union interface for recorded scene commands:
// [FillCmd], [StrokeCmd], [PushLayerCmd], [PopLayerCmd], [GlyphsCmd],
// [ImageCmd], [BoxShadowCmd], and [ResetCmd].
type Command interface {
	isCommand()
}

// ResetCmd records a [Scene.Reset] call.
type ResetCmd struct{}

// FillCmd records a [Scene.Fill] call.
type FillCmd struct {
	Rule           FillRule
	Transform      math32.Matrix2
	Brush          Brush
	BrushTransform *math32.Matrix2
	Shape          Shape
}

// StrokeCmd records a [Scene.Stroke] call.
type StrokeCmd struct {
	Stroke         *Stroke
	Transform      math32.Matrix2
	Brush          Brush
	BrushTransform *math32.Matrix2
	Shape          Shape
}

// PushLayerCmd records a [Scene.PushLayer] call.
type PushLayerCmd struct {
	Blend     BlendMode
	Alpha     float32
	Transform math32.Matrix2
	Clip      Shape
}

// PopLayerCmd records a [Scene.PopLayer] call.
type PopLayerCmd struct{}

// GlyphsCmd records a [Scene.DrawGlyphs] call.
type GlyphsCmd struct {
	Face           *font.Face
	Size           float32
	Hint           bool
	Coords         []NormalizedCoord
	Rule           FillRule
	Brush          Brush
	Alpha          float32
	Transform      math32.Matrix2
	GlyphTransform *math32.Matrix2
	Glyphs         []Glyph
}

// ImageCmd records a [Scene.DrawImage] call.
type ImageCmd struct {
	Image     *ImageBrush
	Transform math32.Matrix2
}

// BoxShadowCmd records a [Scene.DrawBoxShadow] call.
type BoxShadowCmd struct {
	Transform math32.Matrix2
	Rect      math32.Box2
	Color     color.RGBA
	Radius    float32
	Blur      float32
}

func (ResetCmd) isCommand()     {}
func (FillCmd) isCommand()      {}
func (StrokeCmd) isCommand()    {}
func (PushLayerCmd) isCommand() {}
func (PopLayerCmd) isCommand()  {}
func (GlyphsCmd) isCommand()    {}
func (ImageCmd) isCommand()     {}
func (BoxShadowCmd) isCommand() {}

// Recorder is a [Scene] backend that stores the command stream as plain
// data, for test assertion and for replay onto concrete backends.
type Recorder struct {
	Cmds []Command
}

// NewRecorder returns a new empty [Recorder].
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Reset() {
	r.Cmds = r.Cmds[:0]
	r.Cmds = append(r.Cmds, ResetCmd{})
}

func (r *Recorder) PushLayer(blend BlendMode, alpha float32, transform math32.Matrix2, clip Shape) {
	r.Cmds = append(r.Cmds, PushLayerCmd{Blend: blend, Alpha: alpha, Transform: transform, Clip: clip})
}

func (r *Recorder) PopLayer() {
	r.Cmds = append(r.Cmds, PopLayerCmd{})
}

func (r *Recorder) Fill(rule FillRule, transform math32.Matrix2, brush Brush, brushTransform *math32.Matrix2, shape Shape) {
	r.Cmds = append(r.Cmds, FillCmd{Rule: rule, Transform: transform, Brush: brush, BrushTransform: brushTransform, Shape: shape})
}

func (r *Recorder) Stroke(stroke *Stroke, transform math32.Matrix2, brush Brush, brushTransform *math32.Matrix2, shape Shape) {
	r.Cmds = append(r.Cmds, StrokeCmd{Stroke: stroke, Transform: transform, Brush: brush, BrushTransform: brushTransform, Shape: shape})
}

func (r *Recorder) DrawGlyphs(face *font.Face, size float32, hint bool, coords []NormalizedCoord,
	rule FillRule, brush Brush, alpha float32,
	transform math32.Matrix2, glyphTransform *math32.Matrix2, glyphs []Glyph) {
	r.Cmds = append(r.Cmds, GlyphsCmd{
		Face: face, Size: size, Hint: hint, Coords: coords,
		Rule: rule, Brush: brush, Alpha: alpha,
		Transform: transform, GlyphTransform: glyphTransform,
		Glyphs: append([]Glyph(nil), glyphs...),
	})
}

func (r *Recorder) DrawImage(img *ImageBrush, transform math32.Matrix2) {
	r.Cmds = append(r.Cmds, ImageCmd{Image: img, Transform: transform})
}

func (r *Recorder) DrawBoxShadow(transform math32.Matrix2, rect math32.Box2, clr color.RGBA, radius, blur float32) {
	r.Cmds = append(r.Cmds, BoxShadowCmd{Transform: transform, Rect: rect, Color: clr, Radius: radius, Blur: blur})
}

// Replay plays the recorded commands back onto another scene in order.
func (r *Recorder) Replay(s Scene) {
	for _, cmd := range r.Cmds {
		switch c := cmd.(type) {
		case ResetCmd:
			s.Reset()
		case FillCmd:
			s.Fill(c.Rule, c.Transform, c.Brush, c.BrushTransform, c.Shape)
		case StrokeCmd:
			s.Stroke(c.Stroke, c.Transform, c.Brush, c.BrushTransform, c.Shape)
		case PushLayerCmd:
			s.PushLayer(c.Blend, c.Alpha, c.Transform, c.Clip)
		case PopLayerCmd:
			s.PopLayer()
		case GlyphsCmd:
			s.DrawGlyphs(c.Face, c.Size, c.Hint, c.Coords, c.Rule, c.Brush, c.Alpha, c.Transform, c.GlyphTransform, c.Glyphs)
		case ImageCmd:
			s.DrawImage(c.Image, c.Transform)
		case BoxShadowCmd:
			s.DrawBoxShadow(c.Transform, c.Rect, c.Color, c.Radius, c.Blur)
		}
	}
}

// LayerBalance returns the number of push and pop layer commands recorded.
func (r *Recorder) LayerBalance() (pushes, pops int) {
	for _, cmd := range r.Cmds {
		switch cmd.(type) {
		case PushLayerCmd:
			pushes++
		case PopLayerCmd:
			pops++
		}
	}
	return pushes, pops
}
