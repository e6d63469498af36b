// Package glbackend implements gfx.Device on OpenGL 4.1 core.
package glbackend

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/lmgl/lmgl/engine/core"
	"github.com/lmgl/lmgl/engine/gfx"
)

// Device is the OpenGL implementation of gfx.Device. All calls must come
// from the thread that owns the GL context.
type Device struct{}

// NewDevice assumes gl.Init has already run (the platform window does it).
func NewDevice() *Device {
	d := &Device{}
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	return d
}

func (d *Device) BindDefaultFramebuffer() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) Clear(mask gfx.ClearMask) {
	var bits uint32
	if mask&gfx.ClearColor != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&gfx.ClearDepth != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (d *Device) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (d *Device) SetDepthFunc(fn gfx.DepthFunc) {
	switch fn {
	case gfx.DepthLessEqual:
		gl.DepthFunc(gl.LEQUAL)
	default:
		gl.DepthFunc(gl.LESS)
	}
}

func (d *Device) SetCulling(mode gfx.CullMode) {
	switch mode {
	case gfx.CullNone:
		gl.Disable(gl.CULL_FACE)
	case gfx.CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
}

func (d *Device) SetBlending(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

func (d *Device) SetPolygonMode(mode gfx.PolygonMode) {
	switch mode {
	case gfx.PolygonLine:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	case gfx.PolygonPoint:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.POINT)
		gl.PointSize(5)
	default:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (d *Device) DrawIndexed(count int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
}

func (d *Device) Vendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (d *Device) Renderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (d *Device) Version() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

// logGLError is used by resource constructors for the logged-but-continue
// failure class: report, hand back the broken handle, keep running.
func logGLError(what string, args ...any) {
	core.LogError(what, args...)
}
