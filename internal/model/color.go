package model

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with 0-255 channels and alpha in [0,1].
// The zero Color means "no color given"; renderers substitute opaque Black for it.
type Color struct {
	R, G, B uint8
	A       float32
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given alpha, clamped to [0,1].
func RGBA(r, g, b uint8, a float32) Color {
	return Color{R: r, G: g, B: b, A: max(0, min(1, a))}
}

// Named presets.
var (
	Black    = RGB(0, 0, 0)
	White    = RGB(255, 255, 255)
	Red      = RGB(255, 0, 0)
	Green    = RGB(0, 255, 0)
	Blue     = RGB(0, 0, 255)
	Yellow   = RGB(255, 255, 0)
	Brown    = RGB(150, 75, 0)
	Purple   = RGB(160, 32, 240)
	Grey     = RGB(128, 128, 128)
	Pink     = RGB(255, 192, 203)
	Burgundy = RGB(128, 0, 32)
	Violet   = RGB(143, 0, 255)
	Magenta  = RGB(255, 0, 255)
	Teal     = RGB(0, 128, 128)
)

var presets = map[string]Color{
	"black":    Black,
	"white":    White,
	"red":      Red,
	"green":    Green,
	"blue":     Blue,
	"yellow":   Yellow,
	"brown":    Brown,
	"purple":   Purple,
	"grey":     Grey,
	"gray":     Grey,
	"pink":     Pink,
	"burgundy": Burgundy,
	"violet":   Violet,
	"magenta":  Magenta,
	"teal":     Teal,
}

// IsZero reports whether c is the unset zero Color.
func (c Color) IsZero() bool {
	return c == Color{}
}

// OrBlack returns c, or Black when c is unset.
func (c Color) OrBlack() Color {
	if c.IsZero() {
		return Black
	}
	return c
}

// Normalized returns r, g, b, a scaled to [0,1] for upload.
func (c Color) Normalized() [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, c.A}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, c.A)
}

// ParseColor accepts a preset name (case-insensitive, e.g. "teal") or a hex string
// ("#0f0", "#00ff00"). Parsed colors are opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := presets[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	hc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := hc.RGB255()
	return RGB(r, g, b), nil
}
