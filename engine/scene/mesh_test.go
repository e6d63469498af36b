package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmgl/lmgl/engine/gfx"
)

// nullDevice satisfies gfx.Device for geometry construction only.
type nullDevice struct{}

type nullVertexArray struct{ indexCount int }

func (v nullVertexArray) Bind()           {}
func (v nullVertexArray) Unbind()         {}
func (v nullVertexArray) IndexCount() int { return v.indexCount }

func (nullDevice) CreateShader(name, source string) (gfx.Shader, error) { return nil, nil }
func (nullDevice) CreateTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	return nil, nil
}
func (nullDevice) CreateCubemap(desc gfx.CubemapDesc) (gfx.Cubemap, error) { return nil, nil }
func (nullDevice) CreateVertexArray(vertices []float32, layout gfx.VertexLayout, indices []uint32) (gfx.VertexArray, error) {
	return nullVertexArray{indexCount: len(indices)}, nil
}
func (nullDevice) CreateFramebuffer(w, h int) (gfx.Framebuffer, error) { return nil, nil }
func (nullDevice) CreateShadowMap(w, h int) (gfx.ShadowMap, error)     { return nil, nil }
func (nullDevice) BindDefaultFramebuffer()                             {}
func (nullDevice) Viewport(x, y, w, h int)                             {}
func (nullDevice) ClearColor(r, g, b, a float32)                       {}
func (nullDevice) Clear(mask gfx.ClearMask)                            {}
func (nullDevice) SetDepthTest(enabled bool)                           {}
func (nullDevice) SetDepthFunc(fn gfx.DepthFunc)                       {}
func (nullDevice) SetCulling(mode gfx.CullMode)                        {}
func (nullDevice) SetBlending(enabled bool)                            {}
func (nullDevice) SetPolygonMode(mode gfx.PolygonMode)                 {}
func (nullDevice) DrawIndexed(count int)                               {}
func (nullDevice) Vendor() string                                      { return "null" }
func (nullDevice) Renderer() string                                    { return "null" }
func (nullDevice) Version() string                                     { return "0" }

func TestCubeBounds(t *testing.T) {
	cube, err := NewCube(nullDevice{}, nil, 1)
	require.NoError(t, err)

	assert.Equal(t, 36, cube.IndexCount())
	b := cube.Bounds()
	assert.Equal(t, mgl32.Vec3{-0.5, -0.5, -0.5}, b.Min)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, b.Max)

	s := cube.BoundingSphere()
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, s.Center)
	assert.InDelta(t, math32.Sqrt(0.75), s.Radius, 1e-5)
}

func TestCubeSubdivisionsClamped(t *testing.T) {
	cube, err := NewCube(nullDevice{}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 36, cube.IndexCount(), "clamped up to 1 subdivision")

	fine, err := NewCube(nullDevice{}, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, 6*2*2*6, fine.IndexCount())
}

func TestSphereBounds(t *testing.T) {
	sphere, err := NewUVSphere(nullDevice{}, nil, 2, 16, 24)
	require.NoError(t, err)

	b := sphere.Bounds()
	assert.InDelta(t, -2, b.Min.Y(), 1e-4, "poles reach the full radius")
	assert.InDelta(t, 2, b.Max.Y(), 1e-4)
	assert.GreaterOrEqual(t, sphere.BoundingSphere().Radius, float32(2)*0.99)
}

func TestQuadBounds(t *testing.T) {
	quad, err := NewQuad(nullDevice{}, nil, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, quad.IndexCount())
	assert.Equal(t, mgl32.Vec3{-2, -1, 0}, quad.Bounds().Min)
	assert.Equal(t, mgl32.Vec3{2, 1, 0}, quad.Bounds().Max)
}
