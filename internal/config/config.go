package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"lifeboat/internal/logger"
)

// ConfigPath is the path to the config file, relative to the process working directory.
const ConfigPath = "config/lifeboat.toml"

// Prefs holds window, scheduling and debug preferences. Persisted across runs;
// command-line flags override them for a single run.
type Prefs struct {
	Width        int32  `toml:"width"`
	Height       int32  `toml:"height"`
	Title        string `toml:"title"`
	FPS          int    `toml:"fps"`
	Style        string `toml:"style"`
	Scene        string `toml:"scene,omitempty"` // YAML scene file; empty runs the built-in demo
	ShowFPS      bool   `toml:"show_fps"`
	ShowMemAlloc bool   `toml:"show_memalloc"`
	LogPath      string `toml:"log_path"`
	MetricsAddr  string `toml:"metrics_addr,omitempty"` // e.g. ":9090"; empty disables the endpoint
}

// Default returns default preferences (800×600 window, dynamic at 60 FPS, overlays off).
func Default() Prefs {
	return Prefs{
		Width:   800,
		Height:  600,
		Title:   "lifeboat",
		FPS:     60,
		Style:   "dynamic",
		LogPath: logger.LogFilePath,
	}
}

// Load reads preferences from path. A missing file returns Default() and no error;
// an unreadable or invalid file returns Default() and the error. Keys absent from
// the file keep their default values.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, err
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return Default(), fmt.Errorf("%s: window size %dx%d must be positive", path, p.Width, p.Height)
	}
	return p, nil
}

// Save writes p to path, creating the parent directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
