package main

import (
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"lifeboat/internal/commands"
	"lifeboat/internal/config"
	"lifeboat/internal/lifeboat"
	"lifeboat/internal/scene"
	"lifeboat/internal/shape"
)

// sceneFlags are shared by run and render. Explicit flags win over the scene
// file, which wins over the config file.
type sceneFlags struct {
	fs         *pflag.FlagSet
	configPath string
	scenePath  string
	style      string
	fps        int
	width      int32
	height     int32
}

func newSceneFlags(name string) *sceneFlags {
	f := &sceneFlags{fs: commands.NewFlagSet(name)}
	f.fs.StringVarP(&f.configPath, "config", "c", config.ConfigPath, "config file (TOML)")
	f.fs.StringVarP(&f.scenePath, "scene", "s", "", "scene file (YAML); default is the built-in demo")
	f.fs.StringVar(&f.style, "style", "", "render style: static or dynamic")
	f.fs.IntVar(&f.fps, "fps", 0, "frames per second in dynamic style")
	f.fs.Int32Var(&f.width, "width", 0, "surface width in pixels")
	f.fs.Int32Var(&f.height, "height", 0, "surface height in pixels")
	return f
}

// prefs loads the config file and applies explicit flags. The returned error
// is from the config file only; prefs are usable either way.
func (f *sceneFlags) prefs() (config.Prefs, error) {
	p, err := config.Load(f.configPath)
	if f.fs.Changed("scene") {
		p.Scene = f.scenePath
	}
	if f.fs.Changed("width") {
		p.Width = f.width
	}
	if f.fs.Changed("height") {
		p.Height = f.height
	}
	return p, err
}

// build loads the scene named in p and returns its shapes with the scheduler
// options for style and frame rate.
func (f *sceneFlags) build(p config.Prefs, log *zap.Logger) ([]shape.Renderable, []lifeboat.Option, error) {
	scn := scene.Demo()
	if p.Scene != "" {
		var err error
		if scn, err = scene.Load(p.Scene); err != nil {
			return nil, nil, err
		}
	}
	if scn.Style == "" {
		scn.Style = p.Style
	}
	if scn.FPS == 0 {
		scn.FPS = p.FPS
	}
	if f.fs.Changed("style") {
		scn.Style = f.style
	}
	if f.fs.Changed("fps") {
		scn.FPS = f.fps
	}
	opts, err := scn.Options()
	if err != nil {
		return nil, nil, err
	}
	shapes, err := scn.Build(log)
	if err != nil {
		return nil, nil, err
	}
	return shapes, opts, nil
}
