package shape

import (
	"lifeboat/internal/gl"
	"lifeboat/internal/model"
)

// DefaultPointSize is the point diameter in pixels when PointSettings leaves Size unset.
const DefaultPointSize float32 = 5

// PointSettings configures a Point. Zero fields take defaults: DefaultPointSize and black.
type PointSettings struct {
	Size  float32
	Color model.Color
}

func (s PointSettings) withDefaults() PointSettings {
	if s.Size <= 0 {
		s.Size = DefaultPointSize
	}
	s.Color = s.Color.OrBlack()
	return s
}

// Point draws a single pixel-space vertex as a GPU point of a configurable size.
type Point struct {
	at       model.Point
	settings PointSettings
}

var _ Renderable = (*Point)(nil)

// NewPoint returns a point at p.
func NewPoint(at model.Point, settings PointSettings) *Point {
	return &Point{at: at, settings: settings.withDefaults()}
}

func (p *Point) At() model.Point          { return p.at }
func (p *Point) Settings() PointSettings { return p.settings }

// Render uploads the position and the surface resolution, which the point shader
// uses to map pixels to clip space, then draws one point.
func (p *Point) Render(ctx gl.Context) error {
	if ctx == nil {
		return gl.ErrContextUnavailable
	}
	prog, err := gl.NewProgram(ctx, gl.PipelinePoint)
	if err != nil {
		return err
	}
	gl.BindAttribute(ctx, prog, gl.AttribPosition, 2, []float32{p.at.X, p.at.Y})
	w, h := ctx.Size()
	ctx.Uniform2f(ctx.UniformLocation(prog, gl.UniformResolution), float32(w), float32(h))
	ctx.Uniform1f(ctx.UniformLocation(prog, gl.UniformPointSize), p.settings.Size)
	c := p.settings.Color.Normalized()
	ctx.Uniform4f(ctx.UniformLocation(prog, gl.UniformColor), c[0], c[1], c[2], c[3])
	ctx.Cull(false)
	ctx.DrawArrays(gl.Points, 0, 1)
	return nil
}

// Update does nothing; points are static.
func (p *Point) Update() error {
	return nil
}
