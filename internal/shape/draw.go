package shape

import (
	"lifeboat/internal/gl"
	"lifeboat/internal/matrix"
	"lifeboat/internal/model"
)

// Projection returns the pixel-to-clip projection for ctx's current surface.
// Depth spans twice the larger side so rotated shapes stay inside the clip volume.
func Projection(ctx gl.Context) matrix.Matrix {
	w, h := ctx.Size()
	d := 2 * max(w, h)
	return matrix.Projection3D(float32(w), float32(h), float32(d))
}

// drawVertexColored runs one PipelineVertexColor draw: fresh position and color
// buffers, the composed transform, then the draw call.
func drawVertexColored(ctx gl.Context, s *Shape, positions, colors []float32, cull bool) error {
	if ctx == nil {
		return gl.ErrContextUnavailable
	}
	prog, err := gl.NewProgram(ctx, gl.PipelineVertexColor)
	if err != nil {
		return err
	}
	gl.BindAttribute(ctx, prog, gl.AttribPosition, 3, positions)
	gl.BindAttribute(ctx, prog, gl.AttribVertexColor, 4, colors)
	ctx.UniformMatrix4fv(ctx.UniformLocation(prog, gl.UniformProjection), s.Transform(Projection(ctx)))
	ctx.Cull(cull)
	ctx.DrawArrays(gl.Triangles, 0, int32(len(positions)/3))
	return nil
}

// repeatColor returns c (or black when unset) normalized, once per vertex.
func repeatColor(c model.Color, n int) []float32 {
	rgba := c.OrBlack().Normalized()
	out := make([]float32, 0, n*4)
	for i := 0; i < n; i++ {
		out = append(out, rgba[:]...)
	}
	return out
}

func appendPoints(dst []float32, pts ...model.Point) []float32 {
	for _, p := range pts {
		dst = append(dst, p.X, p.Y, p.Z)
	}
	return dst
}
