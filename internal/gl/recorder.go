package gl

import (
	"slices"
	"strings"
)

// Recorder is an in-memory Context. It keeps buffer contents and uniform values
// the way a driver would and snapshots every draw call, which makes it usable
// for tests and for headless frame dumps.
type Recorder struct {
	// Width and Height are the backing store size; DisplayWidth and DisplayHeight
	// are what ResizeToDisplay copies into them.
	Width, Height               int32
	DisplayWidth, DisplayHeight int32

	// Failure injection.
	FailVertex, FailFragment, FailLink bool

	Draws        []Draw
	Calls        []string
	Frames       int // BeginFrame count
	Presents     int // EndFrame count
	Clears       int
	Resizes      int
	LastViewport [4]int32
	ClearRGBA    [4]float32

	next     uint32
	shaders  map[Shader]*recShader
	programs map[Program]*recProgram
	buffers  map[Buffer][]float32
	bound    Buffer
	current  Program
	pointers map[int32]attribPointer
	enabled  map[int32]bool
	culling  bool
}

// Draw is a snapshot of one DrawArrays call.
type Draw struct {
	Frame      int
	Program    Program
	Mode       Primitive
	First      int32
	Count      int32
	Attributes map[string]Attribute
	Uniforms   map[string][]float32
	Culling    bool
}

// Attribute is the data an attribute read at draw time.
type Attribute struct {
	Size int32
	Data []float32
}

// Vertex returns the components of vertex i.
func (a Attribute) Vertex(i int) []float32 {
	return a.Data[i*int(a.Size) : (i+1)*int(a.Size)]
}

type recShader struct {
	typ    ShaderType
	source string
	ok     bool
}

type recProgram struct {
	ok       bool
	attribs  map[string]int32
	uniforms map[string]int32
	values   map[int32][]float32
}

type attribPointer struct {
	buf    Buffer
	size   int32
	stride int32
	offset int32
}

var _ Context = (*Recorder)(nil)
var _ Framer = (*Recorder)(nil)

// NewRecorder returns a Recorder whose surface and display are width×height.
func NewRecorder(width, height int32) *Recorder {
	return &Recorder{
		Width: width, Height: height,
		DisplayWidth: width, DisplayHeight: height,
		shaders:  make(map[Shader]*recShader),
		programs: make(map[Program]*recProgram),
		buffers:  make(map[Buffer][]float32),
		pointers: make(map[int32]attribPointer),
		enabled:  make(map[int32]bool),
	}
}

func (r *Recorder) handle() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) call(op string) {
	r.Calls = append(r.Calls, op)
}

// LiveShaders and LivePrograms count objects created and not yet deleted.
func (r *Recorder) LiveShaders() int  { return len(r.shaders) }
func (r *Recorder) LivePrograms() int { return len(r.programs) }

// DrawsInFrame returns the draws issued during frame n (1-based BeginFrame count).
func (r *Recorder) DrawsInFrame(n int) []Draw {
	var out []Draw
	for _, d := range r.Draws {
		if d.Frame == n {
			out = append(out, d)
		}
	}
	return out
}

func (r *Recorder) CreateShader(typ ShaderType, source string) Shader {
	r.call("CreateShader")
	s := Shader(r.handle())
	fail := (typ == VertexShader && r.FailVertex) || (typ == FragmentShader && r.FailFragment)
	r.shaders[s] = &recShader{typ: typ, source: source, ok: !fail}
	return s
}

func (r *Recorder) ShaderCompiled(s Shader) bool {
	sh, ok := r.shaders[s]
	return ok && sh.ok
}

func (r *Recorder) ShaderInfoLog(s Shader) string {
	if r.ShaderCompiled(s) {
		return ""
	}
	return "recorder: compile failure injected"
}

func (r *Recorder) DeleteShader(s Shader) {
	r.call("DeleteShader")
	delete(r.shaders, s)
}

func (r *Recorder) CreateProgram(vs, fs Shader) Program {
	r.call("CreateProgram")
	p := Program(r.handle())
	prog := &recProgram{
		attribs:  make(map[string]int32),
		uniforms: make(map[string]int32),
		values:   make(map[int32][]float32),
	}
	v, vok := r.shaders[vs]
	f, fok := r.shaders[fs]
	prog.ok = !r.FailLink && vok && fok && v.ok && f.ok
	if prog.ok {
		declare(prog, v.source, true)
		declare(prog, f.source, false)
	}
	r.programs[p] = prog
	return p
}

// declare assigns locations for the attributes and uniforms a source declares.
func declare(p *recProgram, source string, vertex bool) {
	for _, line := range strings.Split(source, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		name := strings.TrimSuffix(fields[2], ";")
		switch {
		case fields[0] == "in" && vertex:
			if _, ok := p.attribs[name]; !ok {
				p.attribs[name] = int32(len(p.attribs))
			}
		case fields[0] == "uniform":
			if _, ok := p.uniforms[name]; !ok {
				p.uniforms[name] = int32(len(p.uniforms))
			}
		}
	}
}

func (r *Recorder) ProgramLinked(p Program) bool {
	prog, ok := r.programs[p]
	return ok && prog.ok
}

func (r *Recorder) ProgramInfoLog(p Program) string {
	if r.ProgramLinked(p) {
		return ""
	}
	return "recorder: link failure injected"
}

func (r *Recorder) DeleteProgram(p Program) {
	r.call("DeleteProgram")
	delete(r.programs, p)
	if r.current == p {
		r.current = 0
	}
}

func (r *Recorder) UseProgram(p Program) {
	r.call("UseProgram")
	r.current = p
}

func (r *Recorder) AttribLocation(p Program, name string) int32 {
	if prog, ok := r.programs[p]; ok {
		if loc, ok := prog.attribs[name]; ok {
			return loc
		}
	}
	return -1
}

func (r *Recorder) UniformLocation(p Program, name string) int32 {
	if prog, ok := r.programs[p]; ok {
		if loc, ok := prog.uniforms[name]; ok {
			return loc
		}
	}
	return -1
}

func (r *Recorder) CreateBuffer() Buffer {
	r.call("CreateBuffer")
	b := Buffer(r.handle())
	r.buffers[b] = nil
	return b
}

func (r *Recorder) BindBuffer(b Buffer) {
	r.call("BindBuffer")
	r.bound = b
}

func (r *Recorder) BufferData(data []float32) {
	r.call("BufferData")
	if _, ok := r.buffers[r.bound]; ok {
		r.buffers[r.bound] = slices.Clone(data)
	}
}

func (r *Recorder) EnableVertexAttrib(loc int32) {
	r.call("EnableVertexAttrib")
	r.enabled[loc] = true
}

func (r *Recorder) VertexAttribPointer(loc, size, stride, offset int32) {
	r.call("VertexAttribPointer")
	r.pointers[loc] = attribPointer{buf: r.bound, size: size, stride: stride, offset: offset}
}

func (r *Recorder) setUniform(op string, loc int32, v ...float32) {
	r.call(op)
	prog, ok := r.programs[r.current]
	if !ok || loc < 0 {
		return
	}
	prog.values[loc] = v
}

func (r *Recorder) Uniform1f(loc int32, v float32) { r.setUniform("Uniform1f", loc, v) }

func (r *Recorder) Uniform2f(loc int32, x, y float32) { r.setUniform("Uniform2f", loc, x, y) }

func (r *Recorder) Uniform4f(loc int32, x, y, z, w float32) {
	r.setUniform("Uniform4f", loc, x, y, z, w)
}

func (r *Recorder) UniformMatrix4fv(loc int32, m []float32) {
	r.setUniform("UniformMatrix4fv", loc, slices.Clone(m)...)
}

func (r *Recorder) DrawArrays(mode Primitive, first, count int32) {
	r.call("DrawArrays")
	d := Draw{
		Frame:      r.Frames,
		Program:    r.current,
		Mode:       mode,
		First:      first,
		Count:      count,
		Attributes: make(map[string]Attribute),
		Uniforms:   make(map[string][]float32),
		Culling:    r.culling,
	}
	if prog, ok := r.programs[r.current]; ok {
		for name, loc := range prog.attribs {
			ptr, ok := r.pointers[loc]
			if !ok || !r.enabled[loc] {
				continue
			}
			d.Attributes[name] = Attribute{Size: ptr.size, Data: slices.Clone(r.buffers[ptr.buf])}
		}
		for name, loc := range prog.uniforms {
			if v, ok := prog.values[loc]; ok {
				d.Uniforms[name] = slices.Clone(v)
			}
		}
	}
	r.Draws = append(r.Draws, d)
}

func (r *Recorder) Cull(enabled bool) {
	r.call("Cull")
	r.culling = enabled
}

func (r *Recorder) Size() (int32, int32) { return r.Width, r.Height }

func (r *Recorder) ResizeToDisplay() bool {
	if r.Width == r.DisplayWidth && r.Height == r.DisplayHeight {
		return false
	}
	r.Width, r.Height = r.DisplayWidth, r.DisplayHeight
	r.Resizes++
	return true
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.call("Viewport")
	r.LastViewport = [4]int32{x, y, width, height}
}

func (r *Recorder) ClearColor(cr, cg, cb, ca float32) {
	r.ClearRGBA = [4]float32{cr, cg, cb, ca}
}

func (r *Recorder) Clear() {
	r.call("Clear")
	r.Clears++
}

func (r *Recorder) BeginFrame() {
	r.Frames++
	clear(r.enabled)
}

func (r *Recorder) EndFrame() {
	r.Presents++
}
