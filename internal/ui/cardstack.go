package ui

import (
	_ "embed"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxStackDepth is how many cards of the deck are drawn at once.
const MaxStackDepth = 3

//go:embed card.css
var defaultCardCSS string

// DefaultStylesheet returns the built-in card overlay stylesheet.
func DefaultStylesheet() *Stylesheet {
	return ParseCSS(defaultCardCSS)
}

// CardView is the data shown on one card. ui does not depend on the cards package;
// the caller copies what it needs.
type CardView struct {
	Title  string
	Text   string
	Accent string // hex color, optional
}

type cardLayer struct {
	panel *Node
	title *Node
	body  *Node
	hint  *Node
}

// CardStack is the overlay showing the greeting header and the top cards of the deck,
// each card further back drawn lower, smaller and fainter.
type CardStack struct {
	greeting  *Node
	recipient *Node
	footer    *Node
	layers    [MaxStackDepth]cardLayer
	visible   int
}

// NewCardStack creates the overlay nodes, styled by .card, .card-title, .card-body,
// .card-hint, #greeting, #recipient and .footer.
func NewCardStack() *CardStack {
	s := &CardStack{
		greeting:  NewNode("label", "", "greeting", "Merry Christmas"),
		recipient: NewNode("label", "", "recipient", ""),
		footer:    NewNode("label", "footer", "", "Designed with love for Christmas  |  click the card for the next wish  |  M toggles music"),
	}
	for i := range s.layers {
		panel := NewNode("panel", "card", "", "")
		s.layers[i] = cardLayer{
			panel: panel,
			title: &Node{Type: "label", Class: "card-title", Parent: panel, Opacity: 1},
			body:  &Node{Type: "label", Class: "card-body", Parent: panel, Opacity: 1},
			hint:  &Node{Type: "label", Class: "card-hint", Parent: panel, Opacity: 1, Text: "Click for the next wish"},
		}
	}
	return s
}

// depthStyle returns the offset, scale and opacity of the card at stack depth i (0 = front).
func depthStyle(i int) (offsetY, scale, opacity float32) {
	offsetY = float32(i) * 8
	scale = 1 - float32(i)*0.05
	opacity = 1
	if i > 0 {
		opacity = max(0.4, 1-float32(i)*0.4)
	}
	return offsetY, scale, opacity
}

// AppendNodes updates the overlay from recipient and cards (front first) and appends its
// nodes to dst, back cards first so the front card is drawn on top. An empty recipient
// hides the header line and the cards (the intro modal is showing).
func (s *CardStack) AppendNodes(dst []*Node, recipient string, cards []CardView) []*Node {
	dst = append(dst, s.greeting)
	if recipient == "" {
		s.visible = 0
		return dst
	}
	s.recipient.Text = "Warm wishes for " + recipient
	dst = append(dst, s.recipient)

	s.visible = min(len(cards), MaxStackDepth)
	for i := s.visible - 1; i >= 0; i-- {
		l := s.layers[i]
		offsetY, scale, opacity := depthStyle(i)
		l.panel.Offset = rl.NewVector2(0, offsetY)
		l.panel.Scale = scale
		l.panel.Opacity = opacity

		accent := rl.Color{}
		if c, ok := ParseHexColor(cards[i].Accent); ok {
			accent = c
		}
		l.title.Text = cards[i].Title
		l.title.Accent = accent
		l.body.Text = cards[i].Text
		for _, child := range []*Node{l.title, l.body, l.hint} {
			child.Opacity = opacity
		}
		l.panel.Accent = accent
		dst = append(dst, l.panel, l.title, l.body)
		if i == 0 {
			dst = append(dst, l.hint)
		}
	}
	return append(dst, s.footer)
}

// FrontContains reports whether p hits the front card as last drawn.
func (s *CardStack) FrontContains(p rl.Vector2) bool {
	return s.visible > 0 && s.layers[0].panel.Contains(p)
}
