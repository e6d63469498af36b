package glbackend

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/lmgl/lmgl/engine/gfx"
)

// Framebuffer is an offscreen target with an RGBA16F color attachment and
// a depth renderbuffer, sized for HDR rendering.
type Framebuffer struct {
	fbo           uint32
	depth         uint32
	color         *Texture
	width, height int
}

// CreateFramebuffer allocates the target. Incompleteness is logged, not
// fatal: the renderer keeps going with a possibly-broken framebuffer.
func (d *Device) CreateFramebuffer(width, height int) (gfx.Framebuffer, error) {
	f := &Framebuffer{width: width, height: height}
	gl.GenFramebuffers(1, &f.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)

	f.color = &Texture{width: width, height: height}
	gl.GenTextures(1, &f.color.handle)
	gl.BindTexture(gl.TEXTURE_2D, f.color.handle)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA16F, int32(width), int32(height), 0, gl.RGBA, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, f.color.handle, 0)

	gl.GenRenderbuffers(1, &f.depth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, f.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, f.depth)

	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		logGLError("framebuffer %dx%d incomplete", width, height)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return f, nil
}

func (f *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)
	gl.Viewport(0, 0, int32(f.width), int32(f.height))
}

func (f *Framebuffer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	f.width, f.height = width, height
	f.color.width, f.color.height = width, height
	gl.BindTexture(gl.TEXTURE_2D, f.color.handle)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA16F, int32(width), int32(height), 0, gl.RGBA, gl.FLOAT, nil)
	gl.BindRenderbuffer(gl.RENDERBUFFER, f.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(width), int32(height))
}

func (f *Framebuffer) ColorTexture() gfx.Texture { return f.color }

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }
