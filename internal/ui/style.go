package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".card" or "#greeting"
	Props    map[string]string // e.g. "background" -> "#fffcf5"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds resolved values used for drawing.
// LeftPct/TopPct: 0–100 for percentage positioning inside the parent (or screen); -1 means
// Left/Top are pixels. Padding is the inset of text from the node's edges.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
	Opacity    float32
	Radius     float32 // corner roundness 0..1 as raylib's DrawRectangleRounded expects
	Center     bool    // text-align: center
}

// DefaultComputedStyle returns a minimal style (transparent background, white text, no border, zero size).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.White,
		Border:     rl.Black,
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   defaultFontSize,
		Opacity:    1,
	}
}

// ParseHexColor parses #RGB or #RRGGBB into an opaque rl.Color.
func ParseHexColor(s string) (rl.Color, bool) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return rl.Black, false
	}
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255), true
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100).
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	num, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// parseUnit parses a float in [0,1].
func parseUnit(s string) (float32, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil || f < 0 || f > 1 {
		return 0, false
	}
	return float32(f), true
}

// ResolveProps builds a ComputedStyle from a merged property map (e.g. from matching rules).
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "opacity":
			if f, ok := parseUnit(v); ok {
				out.Opacity = f
			}
		case "border-radius":
			if f, ok := parseUnit(v); ok {
				out.Radius = f
			}
		case "text-align":
			out.Center = strings.TrimSpace(v) == "center"
		}
	}
	return out
}
