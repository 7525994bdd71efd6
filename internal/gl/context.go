// Package gl describes the GPU capability shapes draw through. It mirrors the
// handful of GL entry points a shape needs and nothing more; the window backend
// lives in internal/graphics and an in-memory implementation is Recorder.
package gl

import "errors"

// ErrContextUnavailable is returned when a shape is asked to render without a context.
var ErrContextUnavailable = errors.New("gl: context unavailable")

// ShaderType selects the pipeline stage a shader source compiles for.
type ShaderType int

const (
	VertexShader ShaderType = iota
	FragmentShader
)

func (t ShaderType) String() string {
	if t == VertexShader {
		return "vertex"
	}
	return "fragment"
}

// Primitive is the draw-call topology.
type Primitive int

const (
	Triangles Primitive = iota
	Points
)

func (p Primitive) String() string {
	if p == Points {
		return "points"
	}
	return "triangles"
}

// Handles. Zero is never a valid handle.
type (
	Shader  uint32
	Program uint32
	Buffer  uint32
)

// Context is the graphics capability consumed by shapes and the scheduler.
// Locations follow GL: -1 means the name is not active in the program.
type Context interface {
	CreateShader(typ ShaderType, source string) Shader
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram(vs, fs Shader) Program
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	AttribLocation(p Program, name string) int32
	UniformLocation(p Program, name string) int32

	// CreateBuffer returns a fresh array buffer; BindBuffer makes it the target of
	// BufferData and VertexAttribPointer.
	CreateBuffer() Buffer
	BindBuffer(b Buffer)
	BufferData(data []float32)
	EnableVertexAttrib(loc int32)
	// VertexAttribPointer reads size float32 components per vertex from the bound buffer.
	VertexAttribPointer(loc, size, stride, offset int32)

	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform4f(loc int32, x, y, z, w float32)
	UniformMatrix4fv(loc int32, m []float32)

	DrawArrays(mode Primitive, first, count int32)
	// Cull toggles back-face culling for subsequent draws.
	Cull(enabled bool)

	// Size is the current drawing surface size in pixels.
	Size() (width, height int32)
	// ResizeToDisplay matches the backing store to the display size and reports whether it changed.
	ResizeToDisplay() bool
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
}

// Framer is implemented by contexts that need explicit frame boundaries
// (e.g. a window that presents on EndFrame).
type Framer interface {
	BeginFrame()
	EndFrame()
}

// Reset prepares ctx for a new frame: begin the frame, match the display size,
// reset the viewport and clear to transparent black.
func Reset(ctx Context) error {
	if ctx == nil {
		return ErrContextUnavailable
	}
	if f, ok := ctx.(Framer); ok {
		f.BeginFrame()
	}
	ctx.ResizeToDisplay()
	w, h := ctx.Size()
	ctx.Viewport(0, 0, w, h)
	ctx.ClearColor(0, 0, 0, 0)
	ctx.Clear()
	return nil
}

// Present ends the frame on contexts that implement Framer.
func Present(ctx Context) {
	if f, ok := ctx.(Framer); ok {
		f.EndFrame()
	}
}
