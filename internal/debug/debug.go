package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"xmas-card/internal/morph"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays: FPS, heap and morph state. All are off by default.
type Debug struct {
	ShowFPS       bool
	ShowMemAlloc  bool
	ShowMorph     bool
	font          rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount    uint32
	lastFpsText   string
	lastMemText   string
	lastMorphText string
	lastMemStats  runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Toggle flips every overlay on or off together.
func (d *Debug) Toggle() {
	on := !(d.ShowFPS || d.ShowMemAlloc || d.ShowMorph)
	d.ShowFPS, d.ShowMemAlloc, d.ShowMorph = on, on, on
}

// SetFont sets the font used to draw the overlay. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// MorphText describes the engine state in one line, e.g. "sleigh morphing 12.3°".
func MorphText(e *morph.Engine) string {
	state := "settled"
	if !e.Settled() {
		state = "morphing"
	}
	return fmt.Sprintf("%s %s %.1f°", e.Target(), state, e.Rotation()*rl.Rad2deg)
}

// Draw renders the enabled overlays top-right. Call last in the draw loop.
// FPS and memory text are only recomputed every updateInterval frames.
func (d *Debug) Draw(e *morph.Engine) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if (d.ShowFPS && d.lastFpsText == "") || (d.ShowMemAlloc && d.lastMemText == "") {
		update = true
	}

	y := int32(fpsPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, y)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawRight(d.lastMemText, y)
		y += fpsLineHeight
	}
	if d.ShowMorph && e != nil {
		if update || d.lastMorphText == "" {
			d.lastMorphText = MorphText(e)
		}
		d.drawRight(d.lastMorphText, y)
	}
}

func (d *Debug) drawRight(text string, y int32) {
	if text == "" {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fpsFontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-float32(fpsPadding), float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.Green)
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
}
