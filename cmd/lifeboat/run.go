package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lifeboat/internal/commands"
	"lifeboat/internal/debug"
	"lifeboat/internal/graphics"
	"lifeboat/internal/lifeboat"
	"lifeboat/internal/logger"
)

func registerRun(reg *commands.Registry) {
	f := newSceneFlags("run")
	stats := f.fs.Bool("stats", false, "show frame and shape counters")
	reg.Register("run", "open a window and float the scene", f.fs, func([]string) error {
		return runWindow(f, *stats)
	})
}

func runWindow(f *sceneFlags, showStats bool) error {
	prefs, cfgErr := f.prefs()
	log := logger.New(prefs.LogPath, zapcore.InfoLevel)
	defer log.Close()
	zl := log.Zap()
	if cfgErr != nil {
		zl.Warn("config invalid, using defaults", zap.Error(cfgErr))
	}

	shapes, opts, err := f.build(prefs, zl)
	if err != nil {
		return err
	}

	if prefs.MetricsAddr != "" {
		srv := &http.Server{Addr: prefs.MetricsAddr, Handler: promhttp.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zl.Error("metrics server stopped", zap.Error(err))
			}
		}()
		defer srv.Close()
		zl.Info("serving metrics", zap.String("addr", prefs.MetricsAddr))
	}

	graphics.Open(graphics.WindowOptions{Width: prefs.Width, Height: prefs.Height, Title: prefs.Title, Resizable: true})
	defer graphics.Close()
	glctx := graphics.NewContext(zl)
	defer glctx.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts = append(opts,
		lifeboat.WithLogger(zl),
		lifeboat.WithMetrics(prometheus.DefaultRegisterer),
		lifeboat.WithFrameHook(func(lifeboat.Frame) {
			if graphics.ShouldClose() {
				cancel()
			}
		}),
	)
	boat := lifeboat.New(glctx, opts...)
	for _, s := range shapes {
		boat.AddShape(s)
	}

	overlay := debug.New(boat.Stats)
	overlay.ShowFPS = prefs.ShowFPS
	overlay.ShowMemAlloc = prefs.ShowMemAlloc
	overlay.ShowStats = showStats
	glctx.Overlay = overlay.Draw

	zl.Info("launching", zap.Stringer("style", boat.Style()), zap.Int("shapes", len(shapes)))
	err = boat.Float(ctx)
	if boat.Style() == lifeboat.Static {
		graphics.Hold()
	}
	s := boat.Stats()
	zl.Info("stopped", zap.Uint64("frames", s.Frames), zap.Uint64("render_failures", s.RenderFailures))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
