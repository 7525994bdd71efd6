package gl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgram(t *testing.T) {
	for _, p := range []Pipeline{PipelinePoint, PipelineVertexColor} {
		t.Run(p.String(), func(t *testing.T) {
			rec := NewRecorder(100, 100)
			prog, err := NewProgram(rec, p)
			require.NoError(t, err)
			assert.True(t, rec.ProgramLinked(prog))
			assert.Equal(t, 0, rec.LiveShaders(), "shaders are released once linked")
			assert.Equal(t, 1, rec.LivePrograms())
			assert.Equal(t, "UseProgram", rec.Calls[len(rec.Calls)-1])
			assert.GreaterOrEqual(t, rec.AttribLocation(prog, AttribPosition), int32(0))
		})
	}
}

func TestNewProgramLocations(t *testing.T) {
	rec := NewRecorder(100, 100)
	prog, err := NewProgram(rec, PipelineVertexColor)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rec.AttribLocation(prog, AttribVertexColor), int32(0))
	assert.GreaterOrEqual(t, rec.UniformLocation(prog, UniformProjection), int32(0))
	assert.Equal(t, int32(-1), rec.UniformLocation(prog, UniformColor))

	prog, err = NewProgram(rec, PipelinePoint)
	require.NoError(t, err)
	for _, name := range []string{UniformResolution, UniformPointSize, UniformColor} {
		assert.GreaterOrEqual(t, rec.UniformLocation(prog, name), int32(0), name)
	}
	assert.Equal(t, int32(-1), rec.AttribLocation(prog, AttribVertexColor))
}

func TestNewProgramFailures(t *testing.T) {
	cases := []struct {
		name   string
		setup  func(*Recorder)
		stage  string
		target error
	}{
		{"vertex", func(r *Recorder) { r.FailVertex = true }, "vertex", ErrShaderCompile},
		{"fragment", func(r *Recorder) { r.FailFragment = true }, "fragment", ErrShaderCompile},
		{"link", func(r *Recorder) { r.FailLink = true }, "link", ErrProgramLink},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := NewRecorder(100, 100)
			tc.setup(rec)
			prog, err := NewProgram(rec, PipelineVertexColor)
			require.Error(t, err)
			assert.Zero(t, prog)
			assert.True(t, errors.Is(err, tc.target))

			var ce *CompileError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.stage, ce.Stage)
			assert.Equal(t, PipelineVertexColor, ce.Pipeline)
			assert.NotEmpty(t, ce.Log)
			assert.Contains(t, err.Error(), "vertex-color")

			assert.Equal(t, 0, rec.LiveShaders())
			assert.Equal(t, 0, rec.LivePrograms())
			assert.NotContains(t, rec.Calls, "UseProgram")
		})
	}
}

func TestNewProgramNilContext(t *testing.T) {
	_, err := NewProgram(nil, PipelinePoint)
	assert.ErrorIs(t, err, ErrContextUnavailable)
}

func TestBindAttribute(t *testing.T) {
	rec := NewRecorder(10, 10)
	prog, err := NewProgram(rec, PipelinePoint)
	require.NoError(t, err)

	BindAttribute(rec, prog, AttribPosition, 2, []float32{3, 4})
	BindAttribute(rec, prog, "missing", 2, []float32{9, 9})
	rec.DrawArrays(Points, 0, 1)

	require.Len(t, rec.Draws, 1)
	d := rec.Draws[0]
	require.Len(t, d.Attributes, 1)
	assert.Equal(t, []float32{3, 4}, d.Attributes[AttribPosition].Vertex(0))
}

func TestReset(t *testing.T) {
	rec := NewRecorder(100, 50)
	rec.DisplayWidth, rec.DisplayHeight = 200, 80

	require.NoError(t, Reset(rec))
	assert.Equal(t, 1, rec.Frames)
	assert.Equal(t, 1, rec.Resizes)
	assert.Equal(t, 1, rec.Clears)
	assert.Equal(t, [4]int32{0, 0, 200, 80}, rec.LastViewport)
	assert.Equal(t, [4]float32{0, 0, 0, 0}, rec.ClearRGBA)

	require.NoError(t, Reset(rec))
	assert.Equal(t, 1, rec.Resizes, "no resize when the display is unchanged")

	Present(rec)
	assert.Equal(t, 1, rec.Presents)

	assert.ErrorIs(t, Reset(nil), ErrContextUnavailable)
}
