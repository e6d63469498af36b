// Package gfx declares the GPU abstraction the scene and renderer are
// written against. The OpenGL implementation lives in gfx/gl; tests use
// in-memory fakes.
package gfx

import "github.com/go-gl/mathgl/mgl32"

// Shader is a bound-style program handle. Uniform setters operate on the
// currently bound program.
type Shader interface {
	Bind()
	Unbind()
	// ID is a process-unique identity used to group draws by program.
	ID() uint32
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat3(name string, v mgl32.Mat3)
	SetMat4(name string, v mgl32.Mat4)
}

// Texture is a 2D texture handle.
type Texture interface {
	Bind(slot int)
	Width() int
	Height() int
}

// Cubemap is a six-face cube texture handle.
type Cubemap interface {
	Bind(slot int)
}

// VertexArray owns the vertex/index buffers for one piece of geometry.
type VertexArray interface {
	Bind()
	Unbind()
	IndexCount() int
}

// Framebuffer is an offscreen render target with a color attachment.
type Framebuffer interface {
	Bind()
	Resize(width, height int)
	ColorTexture() Texture
	Width() int
	Height() int
}

// ShadowMap is a depth-only render target.
type ShadowMap interface {
	// BindForWriting binds the depth framebuffer, sets the viewport to the
	// map size and clears the depth buffer.
	BindForWriting()
	// BindTexture binds the depth texture for sampling.
	BindTexture(slot int)
	Resize(width, height int)
	// Size returns the side length; shadow maps are square.
	Size() int
}

// AttribType enumerates vertex attribute component types.
type AttribType int

const (
	AttribFloat32 AttribType = iota
)

// VertexAttrib describes one attribute within an interleaved layout.
type VertexAttrib struct {
	Location int
	Size     int // component count
	Type     AttribType
	Offset   int // bytes
}

// VertexLayout describes one interleaved vertex buffer.
type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

// TextureFormat enumerates supported texel formats.
type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
	TextureRGB8
	TextureRGBA16F
)

// TextureDesc describes a 2D texture to create.
type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // nil allocates uninitialized storage
	Nearest       bool   // nearest filtering instead of linear
	ClampToEdge   bool
}

// CubemapDesc describes a cubemap: six RGBA8 faces in +X,-X,+Y,-Y,+Z,-Z order.
type CubemapDesc struct {
	Size  int
	Faces [6][]byte
}

// CullMode selects face culling state.
type CullMode int

const (
	CullNone CullMode = iota
	CullBack
	CullFront
)

// PolygonMode selects rasterization fill mode.
type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
)

// DepthFunc selects the depth comparison.
type DepthFunc int

const (
	DepthLess DepthFunc = iota
	DepthLessEqual
)

// ClearMask selects which buffers Clear touches.
type ClearMask int

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
)

// Device creates GPU resources and owns the pipeline state the renderer
// toggles between passes. Implementations are single-threaded; every call
// must come from the thread owning the GL context.
type Device interface {
	CreateShader(name, source string) (Shader, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateCubemap(desc CubemapDesc) (Cubemap, error)
	CreateVertexArray(vertices []float32, layout VertexLayout, indices []uint32) (VertexArray, error)
	CreateFramebuffer(width, height int) (Framebuffer, error)
	CreateShadowMap(width, height int) (ShadowMap, error)

	// BindDefaultFramebuffer targets the window's backbuffer again.
	BindDefaultFramebuffer()
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)

	SetDepthTest(enabled bool)
	SetDepthFunc(fn DepthFunc)
	SetCulling(mode CullMode)
	SetBlending(enabled bool)
	SetPolygonMode(mode PolygonMode)

	// DrawIndexed issues an indexed triangle draw on the currently bound
	// vertex array and shader.
	DrawIndexed(count int)

	// GPU identification strings for diagnostics.
	Vendor() string
	Renderer() string
	Version() string
}
