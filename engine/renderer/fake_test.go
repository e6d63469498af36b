package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lmgl/lmgl/engine/gfx"
)

// In-memory gfx.Device recording calls, letting the pipeline run without
// a GL context.

type fakeDevice struct {
	nextShaderID uint32

	shaders      []*fakeShader
	drawCalls    int
	drawnIndices []int
	clears       int
	blendChanges []bool
	cullModes    []gfx.CullMode
	polygonModes []gfx.PolygonMode
	boundFBs     []string
}

func newFakeDevice() *fakeDevice { return &fakeDevice{} }

func (d *fakeDevice) CreateShader(name, source string) (gfx.Shader, error) {
	d.nextShaderID++
	s := &fakeShader{name: name, id: d.nextShaderID, uniforms: map[string]any{}}
	d.shaders = append(d.shaders, s)
	return s, nil
}

func (d *fakeDevice) CreateTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	return &fakeTexture{w: desc.Width, h: desc.Height}, nil
}

func (d *fakeDevice) CreateCubemap(desc gfx.CubemapDesc) (gfx.Cubemap, error) {
	return &fakeCubemap{}, nil
}

func (d *fakeDevice) CreateVertexArray(vertices []float32, layout gfx.VertexLayout, indices []uint32) (gfx.VertexArray, error) {
	return &fakeVertexArray{indexCount: len(indices)}, nil
}

func (d *fakeDevice) CreateFramebuffer(w, h int) (gfx.Framebuffer, error) {
	return &fakeFramebuffer{device: d, w: w, h: h, tex: &fakeTexture{w: w, h: h}}, nil
}

func (d *fakeDevice) CreateShadowMap(w, h int) (gfx.ShadowMap, error) {
	return &fakeShadowMap{device: d, size: w}, nil
}

func (d *fakeDevice) BindDefaultFramebuffer() { d.boundFBs = append(d.boundFBs, "default") }

func (d *fakeDevice) Viewport(x, y, w, h int)             {}
func (d *fakeDevice) ClearColor(r, g, b, a float32)       {}
func (d *fakeDevice) Clear(mask gfx.ClearMask)            { d.clears++ }
func (d *fakeDevice) SetDepthTest(enabled bool)           {}
func (d *fakeDevice) SetDepthFunc(fn gfx.DepthFunc)       {}
func (d *fakeDevice) SetCulling(mode gfx.CullMode)        { d.cullModes = append(d.cullModes, mode) }
func (d *fakeDevice) SetBlending(enabled bool)            { d.blendChanges = append(d.blendChanges, enabled) }
func (d *fakeDevice) SetPolygonMode(mode gfx.PolygonMode) { d.polygonModes = append(d.polygonModes, mode) }

func (d *fakeDevice) DrawIndexed(count int) {
	d.drawCalls++
	d.drawnIndices = append(d.drawnIndices, count)
}

func (d *fakeDevice) Vendor() string   { return "fake" }
func (d *fakeDevice) Renderer() string { return "fake" }
func (d *fakeDevice) Version() string  { return "0.0" }

type fakeShader struct {
	name     string
	id       uint32
	binds    int
	uniforms map[string]any
}

func (s *fakeShader) Bind()      { s.binds++ }
func (s *fakeShader) Unbind()    {}
func (s *fakeShader) ID() uint32 { return s.id }

func (s *fakeShader) SetInt(name string, v int32)       { s.uniforms[name] = v }
func (s *fakeShader) SetFloat(name string, v float32)   { s.uniforms[name] = v }
func (s *fakeShader) SetVec2(name string, v mgl32.Vec2) { s.uniforms[name] = v }
func (s *fakeShader) SetVec3(name string, v mgl32.Vec3) { s.uniforms[name] = v }
func (s *fakeShader) SetVec4(name string, v mgl32.Vec4) { s.uniforms[name] = v }
func (s *fakeShader) SetMat3(name string, v mgl32.Mat3) { s.uniforms[name] = v }
func (s *fakeShader) SetMat4(name string, v mgl32.Mat4) { s.uniforms[name] = v }

type fakeTexture struct {
	w, h  int
	binds int
}

func (t *fakeTexture) Bind(slot int) { t.binds++ }
func (t *fakeTexture) Width() int    { return t.w }
func (t *fakeTexture) Height() int   { return t.h }

type fakeCubemap struct{ binds int }

func (c *fakeCubemap) Bind(slot int) { c.binds++ }

type fakeVertexArray struct {
	indexCount int
	binds      int
}

func (v *fakeVertexArray) Bind()           { v.binds++ }
func (v *fakeVertexArray) Unbind()         {}
func (v *fakeVertexArray) IndexCount() int { return v.indexCount }

type fakeFramebuffer struct {
	device *fakeDevice
	w, h   int
	tex    *fakeTexture
}

func (f *fakeFramebuffer) Bind() { f.device.boundFBs = append(f.device.boundFBs, "fb") }
func (f *fakeFramebuffer) Resize(w, h int) {
	f.w, f.h = w, h
	f.tex.w, f.tex.h = w, h
}
func (f *fakeFramebuffer) ColorTexture() gfx.Texture { return f.tex }
func (f *fakeFramebuffer) Width() int                { return f.w }
func (f *fakeFramebuffer) Height() int               { return f.h }

type fakeShadowMap struct {
	device *fakeDevice
	size   int
	writes int
}

func (s *fakeShadowMap) BindForWriting() {
	s.writes++
	s.device.boundFBs = append(s.device.boundFBs, "shadow")
}
func (s *fakeShadowMap) BindTexture(slot int) {}
func (s *fakeShadowMap) Resize(w, h int)      { s.size = w }
func (s *fakeShadowMap) Size() int            { return s.size }
