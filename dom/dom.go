// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dom holds the laid-out document tree that painting walks.
// Layout and hit testing share the same structure; painting only reads
// it.
package dom

import (
	"github.com/sumiweb/sumi/math32"
	"github.com/sumiweb/sumi/sides"
	"github.com/sumiweb/sumi/styles"
)

// NodeKind is the kind of a document node.
type NodeKind int32

const (
	// KindElement is an element node with a tag and style.
	KindElement NodeKind = iota

	// KindText is a text node; its glyphs are painted through the
	// inline layout of its nearest inline root.
	KindText

	// KindAnonymous is a layout-generated box with no element.
	KindAnonymous
)

// Devtools are the debug overlay switches on a document.
type Devtools struct {
	// HighlightHover paints the box-model overlay over the hovered
	// node.
	HighlightHover bool

	// ShowLayout strokes every laid-out border box.
	ShowLayout bool
}

// Document is a laid-out document ready to paint.
type Document struct {
	// Root is the root element.
	Root *Node

	// ViewportWidth and ViewportHeight are the viewport size in
	// device pixels.
	ViewportWidth, ViewportHeight float32

	// Scale is the device scale factor applied to all layout
	// coordinates.
	Scale float32

	// ViewportScroll is the document scroll offset in CSS pixels,
	// applied to the root's content.
	ViewportScroll math32.Vector2

	// HoverNode is the currently hovered node, for the devtools
	// overlay.
	HoverNode *Node

	// Devtools are the debug overlay switches.
	Devtools Devtools
}

// Layout is the box assigned to a node by layout, in CSS pixels
// relative to the containing node's border box.
type Layout struct {
	// X and Y are the border-box position.
	X, Y float32

	// Width and Height are the border-box size.
	Width, Height float32

	// ContentWidth and ContentHeight are the size of the content
	// including any overflow, used for viewport culling. Zero means
	// the content does not overflow the border box.
	ContentWidth, ContentHeight float32

	// Margin is the resolved margin per side, read only by the
	// devtools overlay.
	Margin sides.Floats
}

// Node is one node of the document tree.
type Node struct {
	// Kind is the node kind.
	Kind NodeKind

	// Parent is the layout parent, nil at the root.
	Parent *Node

	// Children are the layout children in document order.
	Children []*Node

	// Layout is the box assigned by layout.
	Layout Layout

	// ScrollOffset is this node's own scroll position in CSS pixels,
	// applied to its content but not to its background or border.
	ScrollOffset math32.Vector2

	// Style is the computed style; nil means the node has no primary
	// style and is skipped.
	Style *styles.Style

	// Element holds element data; nil for text and anonymous nodes.
	Element *Element

	// Inline is the inline layout when this node is an inline
	// formatting root.
	Inline *InlineLayout

	// Focused is set on the focused node; a focused text input
	// paints its selection and caret.
	Focused bool
}

// IsElement reports whether the node is an element with data.
func (n *Node) IsElement() bool {
	return n.Kind == KindElement && n.Element != nil
}

// IsInputType reports whether the node is an <input> element with the
// given type attribute.
func (n *Node) IsInputType(typ string) bool {
	return n.IsElement() && n.Element.Tag == "input" && n.Element.InputType == typ
}

// AbsolutePosition sums the layout positions up the parent chain,
// including ancestor scroll offsets, yielding the node's border-box
// origin in unscaled CSS pixels relative to the document.
func (n *Node) AbsolutePosition() math32.Vector2 {
	pos := math32.Vec2(n.Layout.X, n.Layout.Y)
	for p := n.Parent; p != nil; p = p.Parent {
		pos.X += p.Layout.X - p.ScrollOffset.X
		pos.Y += p.Layout.Y - p.ScrollOffset.Y
	}
	return pos
}
