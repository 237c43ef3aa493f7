package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens. Zero Width or Height uses the monitor size.
type Window struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	TargetFPS  int32
	Background rl.Color
}

// Run opens the window and runs the main loop until it is closed. Each frame it calls
// update with the frame time in seconds, then clears the screen and calls draw.
// init, if set, runs once after the window and GL context exist (fonts, textures).
func Run(w Window, init func(), update func(dt float32), draw func()) {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := w.Width, w.Height
	if w.Fullscreen || width <= 0 || height <= 0 {
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()

	fps := w.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(fps)

	if init != nil {
		init()
	}
	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
}
