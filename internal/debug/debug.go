package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lifeboat/internal/lifeboat"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime stats in the top-right corner. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// ShowStats adds frame, shape and failure counters from the scheduler.
	ShowStats bool

	stats      func() lifeboat.Stats
	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns a Debug overlay reading scheduler counters from stats (may be nil).
func New(stats func() lifeboat.Stats) *Debug {
	return &Debug{stats: stats}
}

// Enabled reports whether any overlay is shown.
func (d *Debug) Enabled() bool {
	return d.ShowFPS || d.ShowMemAlloc || d.ShowStats
}

// Text returns the overlay lines for the given readings.
func (d *Debug) Text(fps int32, heap uint64, s lifeboat.Stats) []string {
	var out []string
	if d.ShowFPS {
		out = append(out, fmt.Sprintf("FPS: %d", fps))
	}
	if d.ShowMemAlloc {
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", float64(heap)/(1024*1024)))
	}
	if d.ShowStats && d.stats != nil {
		out = append(out,
			fmt.Sprintf("Frame: %d", s.Frames),
			fmt.Sprintf("Shapes: %d", s.Shapes),
			fmt.Sprintf("Failed: %d render, %d update", s.RenderFailures, s.UpdateFailures),
		)
	}
	return out
}

// Draw renders the enabled overlays. The graphics context calls it between the
// last shape and the end of the frame. Text is only recomputed every
// updateInterval frames.
func (d *Debug) Draw() {
	if !d.Enabled() {
		return
	}
	if d.frameCount%updateInterval == 0 || d.lines == nil {
		runtime.ReadMemStats(&d.memStats)
		var s lifeboat.Stats
		if d.stats != nil {
			s = d.stats()
		}
		d.lines = d.Text(rl.GetFPS(), d.memStats.Alloc, s)
	}
	d.frameCount++

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
