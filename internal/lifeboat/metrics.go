package lifeboat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	frames         prometheus.Counter
	renderFailures prometheus.Counter
	updateFailures prometheus.Counter
	shapes         prometheus.Gauge
	frameDuration  prometheus.Histogram
}

// newMetrics registers the scheduler metrics with reg. A nil reg keeps them
// in a private registry so several schedulers can coexist (tests, headless runs).
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &metrics{
		frames: f.NewCounter(prometheus.CounterOpts{
			Name: "lifeboat_frames_total",
			Help: "Number of frames ticked",
		}),
		renderFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "lifeboat_shape_render_failures_total",
			Help: "Number of shape renders skipped because of an error",
		}),
		updateFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "lifeboat_shape_update_failures_total",
			Help: "Number of shape updates that returned an error",
		}),
		shapes: f.NewGauge(prometheus.GaugeOpts{
			Name: "lifeboat_shapes",
			Help: "Number of registered shapes",
		}),
		frameDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lifeboat_frame_duration_seconds",
			Help:    "Time spent rendering and updating one frame",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 10),
		}),
	}
}

func (m *metrics) observe(f Frame) {
	m.frames.Inc()
	m.renderFailures.Add(float64(f.RenderFailed))
	m.updateFailures.Add(float64(f.UpdateFailed))
	m.frameDuration.Observe(f.Duration.Seconds())
}

// WithMetrics registers the scheduler's Prometheus metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(l *Lifeboat) { l.metrics = newMetrics(reg) }
}
