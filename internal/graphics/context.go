package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"lifeboat/internal/gl"
)

// OpenGL enums rlgl expects as plain integers.
const (
	glFloat          = 0x1406
	glFragmentShader = 0x8B30
	glVertexShader   = 0x8B31
)

// Context implements gl.Context and gl.Framer on raylib's rlgl layer. It must be
// used from the goroutine that opened the window.
//
// Compiled shaders and linked programs are cached by source, so shapes that
// build their program on every Render compile once per pipeline. Vertex arrays
// and buffers live for one frame and are released in EndFrame.
type Context struct {
	log *zap.Logger

	width, height int32
	clearColor    rl.Color

	shaders  map[string]uint32    // source -> shader id
	programs map[[2]uint32]uint32 // shader pair -> program id
	linked   map[uint32]bool

	current  uint32
	vaos     []uint32
	buffers  map[gl.Buffer]*buffer
	nextBuf  gl.Buffer
	bound    gl.Buffer
	pointers map[int32]gl.Buffer // attribute location -> buffer, for the points fallback
	uniforms map[int32][]float32 // uniform values of the current program

	// Overlay, when set, draws 2D content (the debug overlay) on top of the frame.
	Overlay func()
}

type buffer struct {
	id   uint32
	data []float32
}

var (
	_ gl.Context = (*Context)(nil)
	_ gl.Framer  = (*Context)(nil)
)

// NewContext returns a context for the open window.
func NewContext(log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		log:      log,
		width:    int32(rl.GetRenderWidth()),
		height:   int32(rl.GetRenderHeight()),
		shaders:  make(map[string]uint32),
		programs: make(map[[2]uint32]uint32),
		linked:   make(map[uint32]bool),
		buffers:  make(map[gl.Buffer]*buffer),
		pointers: make(map[int32]gl.Buffer),
		uniforms: make(map[int32][]float32),
	}
}

func (c *Context) CreateShader(typ gl.ShaderType, source string) gl.Shader {
	if id, ok := c.shaders[source]; ok {
		return gl.Shader(id)
	}
	kind := int32(glVertexShader)
	if typ == gl.FragmentShader {
		kind = glFragmentShader
	}
	id := rl.LoadShaderId(source, kind)
	if id != 0 {
		c.shaders[source] = id
	}
	return gl.Shader(id)
}

// ShaderCompiled reports whether rlgl returned a shader; rlgl writes the
// compiler log to raylib's trace log instead of returning it.
func (c *Context) ShaderCompiled(s gl.Shader) bool { return s != 0 }

func (c *Context) ShaderInfoLog(s gl.Shader) string {
	return "see raylib trace log"
}

// DeleteShader is a no-op: compiled shaders stay cached until Close.
func (c *Context) DeleteShader(gl.Shader) {}

func (c *Context) CreateProgram(vs, fs gl.Shader) gl.Program {
	if vs == 0 || fs == 0 {
		return 0
	}
	key := [2]uint32{uint32(vs), uint32(fs)}
	if id, ok := c.programs[key]; ok {
		return gl.Program(id)
	}
	id := rl.LoadShaderProgramEx(uint32(vs), uint32(fs))
	if id != 0 {
		c.programs[key] = id
		c.linked[id] = true
	}
	return gl.Program(id)
}

func (c *Context) ProgramLinked(p gl.Program) bool { return c.linked[uint32(p)] }

func (c *Context) ProgramInfoLog(gl.Program) string { return "see raylib trace log" }

func (c *Context) DeleteProgram(p gl.Program) {
	if p == 0 {
		return
	}
	for k, id := range c.programs {
		if id == uint32(p) {
			delete(c.programs, k)
		}
	}
	delete(c.linked, uint32(p))
	rl.UnloadShaderProgram(uint32(p))
}

// UseProgram selects p for the next draw and opens a fresh vertex array for the
// attributes that follow.
func (c *Context) UseProgram(p gl.Program) {
	rl.DrawRenderBatchActive()
	c.current = uint32(p)
	clear(c.pointers)
	clear(c.uniforms)
	vao := rl.LoadVertexArray()
	rl.EnableVertexArray(vao)
	c.vaos = append(c.vaos, vao)
}

func (c *Context) AttribLocation(p gl.Program, name string) int32 {
	return rl.GetLocationAttrib(uint32(p), name)
}

func (c *Context) UniformLocation(p gl.Program, name string) int32 {
	return rl.GetLocationUniform(uint32(p), name)
}

func (c *Context) CreateBuffer() gl.Buffer {
	c.nextBuf++
	c.buffers[c.nextBuf] = &buffer{}
	return c.nextBuf
}

func (c *Context) BindBuffer(b gl.Buffer) {
	c.bound = b
	if buf, ok := c.buffers[b]; ok && buf.id != 0 {
		rl.EnableVertexBuffer(buf.id)
	}
}

func (c *Context) BufferData(data []float32) {
	buf, ok := c.buffers[c.bound]
	if !ok || len(data) == 0 {
		return
	}
	buf.data = data
	if buf.id != 0 {
		rl.UnloadVertexBuffer(buf.id)
	}
	buf.id = rl.LoadVertexBuffer(data, false)
}

func (c *Context) EnableVertexAttrib(loc int32) {
	rl.EnableVertexAttribute(uint32(loc))
}

func (c *Context) VertexAttribPointer(loc, size, stride, offset int32) {
	buf, ok := c.buffers[c.bound]
	if !ok || buf.id == 0 {
		return
	}
	rl.EnableVertexBuffer(buf.id)
	rl.SetVertexAttribute(uint32(loc), size, glFloat, false, stride, offset)
	c.pointers[loc] = c.bound
}

func (c *Context) shader() rl.Shader {
	return rl.Shader{ID: c.current}
}

func (c *Context) Uniform1f(loc int32, v float32) {
	c.setUniform(loc, []float32{v}, rl.ShaderUniformFloat)
}

func (c *Context) Uniform2f(loc int32, x, y float32) {
	c.setUniform(loc, []float32{x, y}, rl.ShaderUniformVec2)
}

func (c *Context) Uniform4f(loc int32, x, y, z, w float32) {
	c.setUniform(loc, []float32{x, y, z, w}, rl.ShaderUniformVec4)
}

func (c *Context) setUniform(loc int32, v []float32, typ rl.ShaderUniformDataType) {
	if loc < 0 {
		return
	}
	c.uniforms[loc] = v
	rl.SetShaderValue(c.shader(), loc, v, typ)
}

// UniformMatrix4fv uploads m unchanged: raylib's Matrix fields M0..M15 are sent
// to GL in field order.
func (c *Context) UniformMatrix4fv(loc int32, m []float32) {
	if loc < 0 || len(m) != 16 {
		return
	}
	rl.SetShaderValueMatrix(c.shader(), loc, rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	})
}

func (c *Context) DrawArrays(mode gl.Primitive, first, count int32) {
	if mode == gl.Points {
		c.drawPoints(first, count)
		return
	}
	rl.EnableShader(c.current)
	rl.DrawVertexArray(first, count)
	rl.DisableVertexArray()
	rl.DisableShader()
}

// drawPoints draws square points on the CPU: rlgl cannot enable program point
// size, so the point shader's size and color uniforms are read back instead.
func (c *Context) drawPoints(first, count int32) {
	rl.DisableVertexArray()
	pos := c.attribData(gl.AttribPosition)
	size := c.uniformValue(gl.UniformPointSize, 1)
	col := c.uniformValue(gl.UniformColor, 4)
	if pos == nil || size == nil || col == nil {
		c.log.Debug("point draw skipped, missing inputs")
		return
	}
	color := rl.ColorFromNormalized(rl.NewVector4(col[0], col[1], col[2], col[3]))
	s := size[0]
	for i := first; i < first+count && int(2*i+1) < len(pos); i++ {
		x, y := pos[2*i], pos[2*i+1]
		rl.DrawRectangleV(rl.NewVector2(x-s/2, y-s/2), rl.NewVector2(s, s), color)
	}
}

func (c *Context) attribData(name string) []float32 {
	b, ok := c.pointers[rl.GetLocationAttrib(c.current, name)]
	if !ok {
		return nil
	}
	return c.buffers[b].data
}

func (c *Context) uniformValue(name string, n int) []float32 {
	v := c.uniforms[rl.GetLocationUniform(c.current, name)]
	if len(v) < n {
		return nil
	}
	return v
}

func (c *Context) Cull(enabled bool) {
	if enabled {
		rl.EnableBackfaceCulling()
	} else {
		rl.DisableBackfaceCulling()
	}
}

func (c *Context) Size() (int32, int32) { return c.width, c.height }

func (c *Context) ResizeToDisplay() bool {
	w, h := int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight())
	if w == c.width && h == c.height {
		return false
	}
	c.log.Debug("surface resized", zap.Int32("width", w), zap.Int32("height", h))
	c.width, c.height = w, h
	return true
}

func (c *Context) Viewport(x, y, width, height int32) {
	rl.Viewport(x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = rl.ColorFromNormalized(rl.NewVector4(r, g, b, a))
}

func (c *Context) Clear() {
	rl.ClearBackground(c.clearColor)
}

func (c *Context) BeginFrame() {
	rl.BeginDrawing()
}

// EndFrame draws the overlay, presents, and releases the frame's vertex data.
func (c *Context) EndFrame() {
	rl.EnableBackfaceCulling()
	if c.Overlay != nil {
		c.Overlay()
	}
	rl.EndDrawing()
	for _, buf := range c.buffers {
		if buf.id != 0 {
			rl.UnloadVertexBuffer(buf.id)
		}
	}
	clear(c.buffers)
	for _, vao := range c.vaos {
		rl.UnloadVertexArray(vao)
	}
	c.vaos = c.vaos[:0]
	clear(c.pointers)
}

// Close releases cached programs and shaders. Call before closing the window.
func (c *Context) Close() {
	for id := range c.linked {
		rl.UnloadShaderProgram(id)
	}
	clear(c.linked)
	clear(c.programs)
	clear(c.shaders)
}
