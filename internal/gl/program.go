package gl

import (
	"errors"
	"fmt"
)

var (
	ErrShaderCompile = errors.New("gl: shader compile failed")
	ErrProgramLink   = errors.New("gl: program link failed")
)

// CompileError carries the driver's info log for a failed compile or link.
type CompileError struct {
	Pipeline Pipeline
	Stage    string // "vertex", "fragment" or "link"
	Log      string
	err      error
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("%v (%s pipeline, %s)", e.err, e.Pipeline, e.Stage)
	}
	return fmt.Sprintf("%v (%s pipeline, %s): %s", e.err, e.Pipeline, e.Stage, e.Log)
}

func (e *CompileError) Unwrap() error { return e.err }

// CompileShader compiles source, deleting the shader again if compilation fails.
func CompileShader(ctx Context, typ ShaderType, source string) (Shader, error) {
	s := ctx.CreateShader(typ, source)
	if ctx.ShaderCompiled(s) {
		return s, nil
	}
	log := ctx.ShaderInfoLog(s)
	ctx.DeleteShader(s)
	return 0, &CompileError{Stage: typ.String(), Log: log, err: ErrShaderCompile}
}

// LinkProgram links vs and fs, deleting the program again if linking fails.
func LinkProgram(ctx Context, vs, fs Shader) (Program, error) {
	p := ctx.CreateProgram(vs, fs)
	if ctx.ProgramLinked(p) {
		return p, nil
	}
	log := ctx.ProgramInfoLog(p)
	ctx.DeleteProgram(p)
	return 0, &CompileError{Stage: "link", Log: log, err: ErrProgramLink}
}

// NewProgram builds the program for pipeline and makes it current.
func NewProgram(ctx Context, pipeline Pipeline) (Program, error) {
	if ctx == nil {
		return 0, ErrContextUnavailable
	}
	vsSrc, fsSrc := pipeline.Sources()
	vs, err := CompileShader(ctx, VertexShader, vsSrc)
	if err != nil {
		return 0, withPipeline(err, pipeline)
	}
	fs, err := CompileShader(ctx, FragmentShader, fsSrc)
	if err != nil {
		ctx.DeleteShader(vs)
		return 0, withPipeline(err, pipeline)
	}
	// attached shaders live until the program is deleted
	p, err := LinkProgram(ctx, vs, fs)
	ctx.DeleteShader(vs)
	ctx.DeleteShader(fs)
	if err != nil {
		return 0, withPipeline(err, pipeline)
	}
	ctx.UseProgram(p)
	return p, nil
}

func withPipeline(err error, p Pipeline) error {
	var ce *CompileError
	if errors.As(err, &ce) {
		ce.Pipeline = p
	}
	return err
}

// BindAttribute creates a buffer holding data and points the named attribute at it,
// size components per vertex. Unknown attributes are skipped.
func BindAttribute(ctx Context, p Program, name string, size int32, data []float32) Buffer {
	buf := ctx.CreateBuffer()
	ctx.BindBuffer(buf)
	ctx.BufferData(data)
	loc := ctx.AttribLocation(p, name)
	if loc < 0 {
		return buf
	}
	ctx.EnableVertexAttrib(loc)
	ctx.VertexAttribPointer(loc, size, 0, 0)
	return buf
}
