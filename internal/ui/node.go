package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, etc. It has optional class and id for CSS matching.
// Children (nodes with Parent set) are laid out inside their parent's screen rectangle.
type Node struct {
	Type   string // "panel", "label", etc.
	Class  string // e.g. "card" for .card
	ID     string // e.g. "greeting" for #greeting
	Text   string // for label-type nodes
	Parent *Node

	// Per-frame adjustments on top of the stylesheet, used by animated views.
	Offset  rl.Vector2 // pixels added after layout
	Scale   float32    // size multiplier around the bottom-center; 0 means 1
	Opacity float32    // multiplied with the style's opacity
	Accent  rl.Color   // when non-transparent, replaces the text and border color

	// Screen is the rectangle the node was last drawn at.
	Screen rl.Rectangle
}

// NewNode creates a fully opaque node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:    typ,
		Class:   class,
		ID:      id,
		Text:    text,
		Opacity: 1,
	}
}

// Contains reports whether the point lies inside the node's last drawn rectangle.
func (n *Node) Contains(p rl.Vector2) bool {
	r := n.Screen
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
