package main

import (
	"context"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"lifeboat/internal/commands"
	"lifeboat/internal/gl"
	"lifeboat/internal/lifeboat"
	"lifeboat/internal/logger"
)

// frameDump is the YAML written by render.
type frameDump struct {
	Width  int32      `yaml:"width"`
	Height int32      `yaml:"height"`
	Frame  uint64     `yaml:"frame"`
	Failed int        `yaml:"failed,omitempty"`
	Errors []string   `yaml:"errors,omitempty"`
	Draws  []drawDump `yaml:"draws"`
}

type drawDump struct {
	Mode       string               `yaml:"mode"`
	Count      int32                `yaml:"count"`
	Culling    bool                 `yaml:"culling"`
	Attributes []string             `yaml:"attributes,flow"`
	Uniforms   map[string][]float32 `yaml:"uniforms"`
}

func registerRender(reg *commands.Registry) {
	f := newSceneFlags("render")
	out := f.fs.StringP("out", "o", "-", "output file, - for stdout")
	reg.Register("render", "render one frame headless and dump its draw calls as YAML", f.fs, func([]string) error {
		w := io.Writer(os.Stdout)
		if *out != "-" {
			file, err := os.Create(*out)
			if err != nil {
				return err
			}
			defer file.Close()
			w = file
		}
		return renderFrame(f, w)
	})
}

func renderFrame(f *sceneFlags, w io.Writer) error {
	prefs, cfgErr := f.prefs()
	log := logger.New(prefs.LogPath, zapcore.InfoLevel)
	defer log.Close()
	zl := log.Zap()
	if cfgErr != nil {
		zl.Warn("config invalid, using defaults", zap.Error(cfgErr))
	}

	shapes, _, err := f.build(prefs, zl)
	if err != nil {
		return err
	}
	rec := gl.NewRecorder(prefs.Width, prefs.Height)
	var last lifeboat.Frame
	boat := lifeboat.New(rec,
		lifeboat.WithStyle(lifeboat.Static),
		lifeboat.WithLogger(zl),
		lifeboat.WithFrameHook(func(fr lifeboat.Frame) { last = fr }),
	)
	for _, s := range shapes {
		boat.AddShape(s)
	}
	if err := boat.Float(context.Background()); err != nil {
		return err
	}
	return writeDump(w, rec, last)
}

func writeDump(w io.Writer, rec *gl.Recorder, fr lifeboat.Frame) error {
	dump := frameDump{
		Width:  rec.Width,
		Height: rec.Height,
		Frame:  fr.Index,
		Failed: fr.RenderFailed,
	}
	if fr.Err != nil {
		dump.Errors = append(dump.Errors, fr.Err.Error())
	}
	for _, d := range rec.DrawsInFrame(rec.Frames) {
		attrs := make([]string, 0, len(d.Attributes))
		for name := range d.Attributes {
			attrs = append(attrs, name)
		}
		sort.Strings(attrs)
		dump.Draws = append(dump.Draws, drawDump{
			Mode:       d.Mode.String(),
			Count:      d.Count,
			Culling:    d.Culling,
			Attributes: attrs,
			Uniforms:   d.Uniforms,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dump); err != nil {
		return err
	}
	return enc.Close()
}
