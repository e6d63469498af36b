package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/lmgl/lmgl/engine/gfx"
)

// Texture wraps a 2D GL texture.
type Texture struct {
	handle        uint32
	width, height int
}

func (d *Device) CreateTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("texture: invalid size %dx%d", desc.Width, desc.Height)
	}
	var internal int32
	var format uint32
	var xtype uint32
	switch desc.Format {
	case gfx.TextureRGB8:
		internal, format, xtype = gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE
	case gfx.TextureRGBA16F:
		internal, format, xtype = gl.RGBA16F, gl.RGBA, gl.FLOAT
	default:
		internal, format, xtype = gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
	}

	t := &Texture{width: desc.Width, height: desc.Height}
	gl.GenTextures(1, &t.handle)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)

	if desc.Pixels != nil {
		gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(desc.Width), int32(desc.Height), 0, format, xtype, gl.Ptr(desc.Pixels))
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(desc.Width), int32(desc.Height), 0, format, xtype, nil)
	}

	filter := int32(gl.LINEAR)
	if desc.Nearest {
		filter = gl.NEAREST
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	wrap := int32(gl.REPEAT)
	if desc.ClampToEdge {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (t *Texture) Bind(slot int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
}

func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

// Cubemap wraps a GL cube texture.
type Cubemap struct {
	handle uint32
}

func (d *Device) CreateCubemap(desc gfx.CubemapDesc) (gfx.Cubemap, error) {
	if desc.Size <= 0 {
		return nil, fmt.Errorf("cubemap: invalid size %d", desc.Size)
	}
	c := &Cubemap{}
	gl.GenTextures(1, &c.handle)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.handle)
	for i, face := range desc.Faces {
		target := uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X + i)
		if face != nil {
			gl.TexImage2D(target, 0, gl.RGBA8, int32(desc.Size), int32(desc.Size), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(face))
		} else {
			gl.TexImage2D(target, 0, gl.RGBA8, int32(desc.Size), int32(desc.Size), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		}
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return c, nil
}

func (c *Cubemap) Bind(slot int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.handle)
}
