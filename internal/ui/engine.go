package ui

import (
	"slices"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultFontSize = 20
	lineSpacing     = 1.35
	borderRoundSegs = 8
)

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next); parents must
// come before their children. Resolved styles are cached and only recomputed when the
// sheet or the node list changes.
// If a font is loaded (LoadFont), text is drawn with it; otherwise raylib's default font is used.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	font         rl.Font
	// measure returns the pixel width of text at size; replaced in tests.
	measure func(text string, size int32) float32
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	e := &Engine{}
	e.measure = e.measureText
	return e
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// LoadFont loads a TTF/OTF font for text rendering. Call after the window exists.
// On failure the engine keeps using the current font and returns false.
func (e *Engine) LoadFont(path string) bool {
	f := rl.LoadFontEx(path, 48, nil)
	if f.Texture.ID == 0 {
		return false
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return true
}

// Font returns the loaded font, or a zero font when none is loaded.
func (e *Engine) Font() rl.Font {
	return e.font
}

// SetNodes replaces the node list. Passing the same nodes in the same order keeps the style cache.
func (e *Engine) SetNodes(nodes []*Node) {
	if e.cacheValid && slices.Equal(e.nodes, nodes) {
		return
	}
	e.nodes = append(e.nodes[:0], nodes...)
	e.cacheValid = false
}

// resolveProps returns merged properties for a node (class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		if (sel[0] == '.' && n.Class == sel[1:]) || (sel[0] == '#' && n.ID == sel[1:]) {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

func (e *Engine) styles() []ComputedStyle {
	if !e.cacheValid {
		e.cachedStyles = make([]ComputedStyle, len(e.nodes))
		for i, n := range e.nodes {
			e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
		}
		e.cacheValid = true
	}
	return e.cachedStyles
}

// Layout sets every node's Screen rectangle for a screen of the given size.
func (e *Engine) Layout(screenW, screenH int32) {
	screen := rl.Rectangle{Width: float32(screenW), Height: float32(screenH)}
	for i, n := range e.nodes {
		st := e.styles()[i]
		area := screen
		if n.Parent != nil {
			area = n.Parent.Screen
		}
		w, h := float32(st.Width), float32(st.Height)
		if w == 0 {
			w = area.Width
		}
		if h == 0 && n.Parent != nil {
			h = area.Height
		}
		x, y := area.X+float32(st.Left), area.Y+float32(st.Top)
		if st.LeftPct >= 0 {
			x = area.X + (area.Width-w)*float32(st.LeftPct)/100
		}
		if st.TopPct >= 0 {
			y = area.Y + (area.Height-h)*float32(st.TopPct)/100
		}
		if s := n.Scale; s > 0 && s != 1 {
			// Scale around the bottom center, like a card stack seen from the front.
			x += w * (1 - s) / 2
			y += h * (1 - s)
			w, h = w*s, h*s
		}
		n.Screen = rl.Rectangle{X: x + n.Offset.X, Y: y + n.Offset.Y, Width: w, Height: h}
	}
}

// Draw lays out and draws all nodes: background, border, then word-wrapped text.
func (e *Engine) Draw() {
	e.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	for i, n := range e.nodes {
		st := e.styles()[i]
		alpha := st.Opacity * n.Opacity
		if alpha <= 0 {
			continue
		}
		r := n.Screen
		text, border := st.Color, st.Border
		if n.Accent.A > 0 {
			text, border = n.Accent, n.Accent
		}
		if st.Background.A > 0 {
			if st.Radius > 0 {
				rl.DrawRectangleRounded(r, st.Radius, borderRoundSegs, rl.Fade(st.Background, alpha))
			} else {
				rl.DrawRectangleRec(r, rl.Fade(st.Background, alpha))
			}
		}
		if (st.HasBorder || n.Accent.A > 0) && r.Width > 0 && r.Height > 0 {
			if st.Radius > 0 {
				rl.DrawRectangleRoundedLinesEx(r, st.Radius, borderRoundSegs, 2, rl.Fade(border, alpha))
			} else {
				rl.DrawRectangleLinesEx(r, 1, rl.Fade(border, alpha))
			}
		}
		if n.Text != "" {
			e.drawText(n, st, rl.Fade(text, alpha))
		}
	}
}

func (e *Engine) drawText(n *Node, st ComputedStyle, col rl.Color) {
	pad := float32(st.Padding)
	r := n.Screen
	maxW := r.Width - 2*pad
	lineH := float32(st.FontSize) * lineSpacing
	y := r.Y + pad
	for _, line := range e.Wrap(n.Text, st.FontSize, maxW) {
		if r.Height > 0 && y+float32(st.FontSize) > r.Y+r.Height {
			break
		}
		x := r.X + pad
		if st.Center {
			x = r.X + (r.Width-e.measure(line, st.FontSize))/2
		}
		if e.font.Texture.ID != 0 {
			rl.DrawTextEx(e.font, line, rl.NewVector2(x, y), float32(st.FontSize), 1, col)
		} else {
			rl.DrawText(line, int32(x), int32(y), st.FontSize, col)
		}
		y += lineH
	}
}

func (e *Engine) measureText(text string, size int32) float32 {
	if e.font.Texture.ID != 0 {
		return rl.MeasureTextEx(e.font, text, float32(size), 1).X
	}
	return float32(rl.MeasureText(text, size))
}

// Wrap splits text into lines no wider than maxW, breaking at spaces. Explicit
// newlines are kept. A single word wider than maxW gets a line of its own.
func (e *Engine) Wrap(text string, size int32, maxW float32) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if maxW > 0 && e.measure(candidate, size) > maxW {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
