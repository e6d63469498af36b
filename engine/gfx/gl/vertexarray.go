package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/lmgl/lmgl/engine/gfx"
)

// VertexArray owns a VAO with one interleaved VBO and an index buffer.
type VertexArray struct {
	vao, vbo, ibo uint32
	indexCount    int
}

func (d *Device) CreateVertexArray(vertices []float32, layout gfx.VertexLayout, indices []uint32) (gfx.VertexArray, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("vertex array: empty geometry")
	}
	va := &VertexArray{indexCount: len(indices)}

	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)

	gl.GenBuffers(1, &va.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	for _, attr := range layout.Attributes {
		gl.EnableVertexAttribArray(uint32(attr.Location))
		gl.VertexAttribPointer(
			uint32(attr.Location),
			int32(attr.Size),
			gl.FLOAT,
			false,
			int32(layout.Stride),
			gl.PtrOffset(attr.Offset),
		)
	}

	gl.GenBuffers(1, &va.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, va.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return va, nil
}

func (va *VertexArray) Bind()   { gl.BindVertexArray(va.vao) }
func (va *VertexArray) Unbind() { gl.BindVertexArray(0) }

func (va *VertexArray) IndexCount() int { return va.indexCount }
