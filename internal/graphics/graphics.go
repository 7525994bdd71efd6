package graphics

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WindowOptions configures Open. raylib locks the main goroutine to the main
// OS thread; every call in this package must come from it.
type WindowOptions struct {
	Width, Height int32
	Title         string
	Resizable     bool
}

// Open creates the window and its GL context. Frame pacing is left to the
// caller (the scheduler's ticker), so raylib's own FPS limiter is off.
func Open(o WindowOptions) {
	flags := uint32(rl.FlagMsaa4xHint)
	if o.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(o.Width, o.Height, o.Title)
	rl.SetTargetFPS(0)
}

// ShouldClose reports whether the user asked to close the window (close button or ESC).
func ShouldClose() bool {
	return rl.WindowShouldClose()
}

// Hold keeps the last presented frame on screen, polling input, until the window
// is closed. Used after a static render.
func Hold() {
	for !rl.WindowShouldClose() {
		rl.PollInputEvents()
		rl.WaitTime((50 * time.Millisecond).Seconds())
	}
}

// Close destroys the window.
func Close() {
	rl.CloseWindow()
}
