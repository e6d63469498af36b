package glbackend

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/lmgl/lmgl/engine/gfx"
)

// ShadowMap is a depth-only framebuffer. Samples outside the map clamp to
// a white border so geometry past the light frustum reads as unshadowed.
type ShadowMap struct {
	fbo           uint32
	depthTex      uint32
	width, height int
}

func (d *Device) CreateShadowMap(width, height int) (gfx.ShadowMap, error) {
	sm := &ShadowMap{width: width, height: height}
	gl.GenFramebuffers(1, &sm.fbo)
	gl.GenTextures(1, &sm.depthTex)
	gl.BindTexture(gl.TEXTURE_2D, sm.depthTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT, int32(width), int32(height), 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	border := [4]float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, sm.depthTex, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)
	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		logGLError("shadow map framebuffer %dx%d incomplete", width, height)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return sm, nil
}

func (sm *ShadowMap) BindForWriting() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.fbo)
	gl.Viewport(0, 0, int32(sm.width), int32(sm.height))
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

func (sm *ShadowMap) BindTexture(slot int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, sm.depthTex)
}

func (sm *ShadowMap) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	sm.width, sm.height = width, height
	gl.BindTexture(gl.TEXTURE_2D, sm.depthTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT, int32(width), int32(height), 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
}

func (sm *ShadowMap) Size() int { return sm.width }
