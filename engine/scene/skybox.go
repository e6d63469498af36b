package scene

import (
	"github.com/lmgl/lmgl/engine/gfx"
)

// skybox cube: positions only, drawn with LEQUAL depth so it fills the
// far plane behind all geometry.
var skyboxLayout = gfx.VertexLayout{
	Stride: 3 * 4,
	Attributes: []gfx.VertexAttrib{
		{Location: 0, Size: 3, Type: gfx.AttribFloat32, Offset: 0},
	},
}

// Skybox renders a cubemap as the scene background.
type Skybox struct {
	cubemap     gfx.Cubemap
	shader      gfx.Shader
	vertexArray gfx.VertexArray
}

// NewSkybox builds the unit cube geometry for the given cubemap and shader.
func NewSkybox(device gfx.Device, cubemap gfx.Cubemap, shader gfx.Shader) (*Skybox, error) {
	vertices := []float32{
		-1, -1, -1, 1, -1, -1, 1, 1, -1, -1, 1, -1, // back
		-1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1, 1, // front
	}
	indices := []uint32{
		0, 1, 2, 2, 3, 0, // back
		4, 6, 5, 6, 4, 7, // front
		3, 2, 6, 6, 7, 3, // top
		0, 5, 1, 5, 0, 4, // bottom
		1, 5, 6, 6, 2, 1, // right
		0, 3, 7, 7, 4, 0, // left
	}
	va, err := device.CreateVertexArray(vertices, skyboxLayout, indices)
	if err != nil {
		return nil, err
	}
	return &Skybox{cubemap: cubemap, shader: shader, vertexArray: va}, nil
}

func (sb *Skybox) Cubemap() gfx.Cubemap { return sb.cubemap }

// Render draws the skybox with the camera translation stripped from the
// view matrix. Depth comparison is relaxed to LEQUAL for the draw and
// restored afterwards.
func (sb *Skybox) Render(device gfx.Device, camera *Camera) {
	if sb == nil || camera == nil || sb.shader == nil {
		return
	}
	device.SetDepthFunc(gfx.DepthLessEqual)
	sb.shader.Bind()
	view := camera.ViewMatrix().Mat3().Mat4()
	sb.shader.SetMat4("u_View", view)
	sb.shader.SetMat4("u_Projection", camera.ProjectionMatrix())
	sb.cubemap.Bind(0)
	sb.shader.SetInt("u_Skybox", 0)
	sb.vertexArray.Bind()
	device.DrawIndexed(sb.vertexArray.IndexCount())
	sb.vertexArray.Unbind()
	sb.shader.Unbind()
	device.SetDepthFunc(gfx.DepthLess)
}
