// Package lifeboat schedules frames: every tick it resets the surface, renders
// every registered shape in insertion order, presents, then updates every shape
// in the same order. Static style renders one frame; dynamic style keeps going
// at a fixed rate until its context is cancelled.
package lifeboat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"lifeboat/internal/gl"
	"lifeboat/internal/shape"
)

// Style selects one-shot or continuous rendering.
type Style int

const (
	Static Style = iota
	Dynamic
)

// DefaultFPS is the dynamic frame rate when none is configured.
const DefaultFPS = 60

func (s Style) String() string {
	if s == Dynamic {
		return "dynamic"
	}
	return "static"
}

// ParseStyle accepts "static" or "dynamic".
func ParseStyle(s string) (Style, error) {
	switch s {
	case "static", "STATIC", "":
		return Static, nil
	case "dynamic", "DYNAMIC":
		return Dynamic, nil
	}
	return Static, fmt.Errorf("unknown render style %q", s)
}

// Frame reports one tick.
type Frame struct {
	Index        uint64
	Rendered     int
	RenderFailed int
	UpdateFailed int
	Duration     time.Duration
	// Err combines every render and update failure of the frame.
	Err error
}

// Stats are cumulative over the scheduler's lifetime.
type Stats struct {
	Frames         uint64
	Shapes         int
	RenderFailures uint64
	UpdateFailures uint64
	LastFrame      time.Duration
}

// Lifeboat owns the shape list and the frame cadence. Shapes may be added from
// any goroutine; ticks run on the goroutine calling Float or Tick.
type Lifeboat struct {
	ctx       gl.Context
	style     Style
	fps       int
	log       *zap.Logger
	metrics   *metrics
	newTicker func(time.Duration) Ticker
	hooks     []func(Frame)

	mu     sync.Mutex
	shapes []shape.Renderable
	stats  Stats
}

// Option configures a Lifeboat.
type Option func(*Lifeboat)

// WithStyle sets the render style. The default is Static.
func WithStyle(s Style) Option {
	return func(l *Lifeboat) { l.style = s }
}

// WithFPS sets the dynamic frame rate; values below 1 keep DefaultFPS.
func WithFPS(fps int) Option {
	return func(l *Lifeboat) {
		if fps > 0 {
			l.fps = fps
		}
	}
}

// WithLogger sets the logger for frame failures.
func WithLogger(log *zap.Logger) Option {
	return func(l *Lifeboat) {
		if log != nil {
			l.log = log
		}
	}
}

// WithTicker replaces the time.Ticker used between dynamic frames.
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(l *Lifeboat) { l.newTicker = newTicker }
}

// WithFrameHook calls fn after every tick, on the ticking goroutine.
func WithFrameHook(fn func(Frame)) Option {
	return func(l *Lifeboat) { l.hooks = append(l.hooks, fn) }
}

// New returns a scheduler drawing into ctx.
func New(ctx gl.Context, opts ...Option) *Lifeboat {
	l := &Lifeboat{
		ctx:       ctx,
		style:     Static,
		fps:       DefaultFPS,
		log:       zap.NewNop(),
		newTicker: newTimeTicker,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.metrics == nil {
		l.metrics = newMetrics(nil)
	}
	return l
}

// Style returns the configured render style.
func (l *Lifeboat) Style() Style { return l.style }

// Interval is the time between dynamic frames.
func (l *Lifeboat) Interval() time.Duration {
	return time.Second / time.Duration(l.fps)
}

// AddShape appends s; it is drawn from the next tick on. Shapes are never removed.
func (l *Lifeboat) AddShape(s shape.Renderable) {
	l.mu.Lock()
	l.shapes = append(l.shapes, s)
	n := len(l.shapes)
	l.stats.Shapes = n
	l.mu.Unlock()
	l.metrics.shapes.Set(float64(n))
}

// Shapes returns the registered shapes in insertion order.
func (l *Lifeboat) Shapes() []shape.Renderable {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]shape.Renderable, len(l.shapes))
	copy(out, l.shapes)
	return out
}

// Stats returns the cumulative counters.
func (l *Lifeboat) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Tick runs one frame. Render and update failures are logged and isolated to
// the failing shape; the remaining shapes still draw and update.
func (l *Lifeboat) Tick() Frame {
	start := time.Now()
	shapes := l.Shapes()

	l.mu.Lock()
	l.stats.Frames++
	f := Frame{Index: l.stats.Frames}
	l.mu.Unlock()

	if err := gl.Reset(l.ctx); err != nil {
		l.log.Error("frame reset failed", zap.Uint64("frame", f.Index), zap.Error(err))
		f.Err = multierr.Append(f.Err, err)
	}
	for i, s := range shapes {
		if err := s.Render(l.ctx); err != nil {
			f.RenderFailed++
			f.Err = multierr.Append(f.Err, fmt.Errorf("render shape %d: %w", i, err))
			l.log.Warn("shape skipped", zap.Uint64("frame", f.Index), zap.Int("shape", i),
				zap.String("type", fmt.Sprintf("%T", s)), zap.Error(err))
			continue
		}
		f.Rendered++
	}
	if l.ctx != nil {
		gl.Present(l.ctx)
	}
	for i, s := range shapes {
		if err := s.Update(); err != nil {
			f.UpdateFailed++
			f.Err = multierr.Append(f.Err, fmt.Errorf("update shape %d: %w", i, err))
			l.log.Warn("shape update failed", zap.Uint64("frame", f.Index), zap.Int("shape", i), zap.Error(err))
		}
	}
	f.Duration = time.Since(start)

	l.mu.Lock()
	l.stats.RenderFailures += uint64(f.RenderFailed)
	l.stats.UpdateFailures += uint64(f.UpdateFailed)
	l.stats.LastFrame = f.Duration
	l.mu.Unlock()
	l.metrics.observe(f)

	for _, hook := range l.hooks {
		hook(f)
	}
	return f
}

// Float runs the scheduler. A static scheduler ticks once and returns nil.
// A dynamic one ticks immediately and then once per Interval until ctx is done,
// returning ctx.Err().
func (l *Lifeboat) Float(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.Tick()
	if l.style == Static {
		return nil
	}
	l.log.Info("floating", zap.Int("fps", l.fps), zap.Int("shapes", len(l.Shapes())))
	t := l.newTicker(l.Interval())
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C():
			// a hook may cancel mid-tick; don't start another frame after that
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.Tick()
		}
	}
}
