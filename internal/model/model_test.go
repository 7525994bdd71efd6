package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(10, 20, 30)
	assert.Equal(t, Pt(11, 18, 30), p.Add(1, -2, 0))
	assert.Equal(t, Pt(0, 10, 25), p.Sub(Pt(10, 10, 5)))
	assert.Equal(t, [3]float32{10, 20, 30}, p.Coordinate())

	moved := p.Add(5, 5, 5)
	assert.Equal(t, Pt(10, 20, 30), p, "Add must not mutate the receiver")
	assert.NotEqual(t, p, moved)
}

func TestMin(t *testing.T) {
	assert.Equal(t, Pt(0, -3, 1), Min(Pt(4, 2, 1), Pt(0, 5, 9), Pt(7, -3, 2)))
	assert.Equal(t, Point{}, Min())
}

func TestColorFallback(t *testing.T) {
	var unset Color
	assert.True(t, unset.IsZero())
	assert.Equal(t, Black, unset.OrBlack())
	assert.Equal(t, [4]float32{0, 0, 0, 1}, unset.OrBlack().Normalized())
	assert.Equal(t, Teal, Teal.OrBlack())
}

func TestNormalized(t *testing.T) {
	got := RGBA(255, 0, 51, 0.5).Normalized()
	assert.InDelta(t, 1, got[0], 1e-6)
	assert.InDelta(t, 0, got[1], 1e-6)
	assert.InDelta(t, 0.2, got[2], 1e-6)
	assert.InDelta(t, 0.5, got[3], 1e-6)
}

func TestRGBAClampsAlpha(t *testing.T) {
	assert.Equal(t, float32(1), RGBA(1, 2, 3, 4).A)
	assert.Equal(t, float32(0), RGBA(1, 2, 3, -1).A)
}

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"red":     Red,
		"  Teal ": Teal,
		"gray":    Grey,
		"#00ff00": Green,
		"0000ff":  Blue,
		"#fff":    White,
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseColor("not-a-color")
	assert.Error(t, err)
}
