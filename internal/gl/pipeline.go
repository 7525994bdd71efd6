package gl

// Pipeline names one of the fixed shader programs shapes draw with.
type Pipeline int

const (
	// PipelinePoint draws pixel-space vertices as points of a uniform color.
	// Attributes: position (vec2). Uniforms: resolution, pointSize, color.
	PipelinePoint Pipeline = iota
	// PipelineVertexColor draws 3D vertices with one color per vertex.
	// Attributes: position (vec3), vertexColor (vec4). Uniforms: projection (mat4).
	PipelineVertexColor
)

// Attribute and uniform names shared by the shader sources and the shapes.
const (
	AttribPosition    = "position"
	AttribVertexColor = "vertexColor"
	UniformPointSize  = "pointSize"
	UniformResolution = "resolution"
	UniformProjection = "projection"
	UniformColor      = "color"
)

func (p Pipeline) String() string {
	switch p {
	case PipelinePoint:
		return "point"
	case PipelineVertexColor:
		return "vertex-color"
	}
	return "unknown"
}

// Sources returns the vertex and fragment shader sources for p.
func (p Pipeline) Sources() (vs, fs string) {
	switch p {
	case PipelinePoint:
		return pointVS, pointFS
	case PipelineVertexColor:
		return vertexColorVS, vertexColorFS
	}
	return "", ""
}

const (
	pointVS = `#version 330
in vec2 position;
uniform vec2 resolution;
uniform float pointSize;
void main() {
  vec2 clip = position / resolution * 2.0 - 1.0;
  gl_Position = vec4(clip * vec2(1, -1), 0, 1);
  gl_PointSize = pointSize;
}
`
	pointFS = `#version 330
uniform vec4 color;
out vec4 finalColor;
void main() {
  finalColor = color;
}
`
	vertexColorVS = `#version 330
in vec3 position;
in vec4 vertexColor;
uniform mat4 projection;
out vec4 fragColor;
void main() {
  gl_Position = projection * vec4(position, 1.0);
  fragColor = vertexColor;
}
`
	vertexColorFS = `#version 330
in vec4 fragColor;
out vec4 finalColor;
void main() {
  finalColor = fragColor;
}
`
)
