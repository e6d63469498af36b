package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lmgl/lmgl/engine/geom"
	"github.com/lmgl/lmgl/engine/gfx"
)

// Vertex is the interleaved vertex format every mesh uses.
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	Color     mgl32.Vec4
	UV        mgl32.Vec2
	Tangent   mgl32.Vec3
	Bitangent mgl32.Vec3
}

const vertexFloats = 18

// VertexLayout describes the Vertex struct for the GPU.
var VertexLayout = gfx.VertexLayout{
	Stride: vertexFloats * 4,
	Attributes: []gfx.VertexAttrib{
		{Location: 0, Size: 3, Type: gfx.AttribFloat32, Offset: 0},      // position
		{Location: 1, Size: 3, Type: gfx.AttribFloat32, Offset: 3 * 4},  // normal
		{Location: 2, Size: 4, Type: gfx.AttribFloat32, Offset: 6 * 4},  // color
		{Location: 3, Size: 2, Type: gfx.AttribFloat32, Offset: 10 * 4}, // uv
		{Location: 4, Size: 3, Type: gfx.AttribFloat32, Offset: 12 * 4}, // tangent
		{Location: 5, Size: 3, Type: gfx.AttribFloat32, Offset: 15 * 4}, // bitangent
	},
}

// Mesh couples geometry on the GPU with a shader, an optional material and
// bounding volumes. Bounds are computed once at construction from the raw
// vertex data, never per frame.
type Mesh struct {
	vertexArray gfx.VertexArray
	shader      gfx.Shader
	material    *Material
	indexCount  int

	bounds geom.AABB
	sphere geom.Sphere
}

// NewMesh uploads vertices/indices to the device and precomputes bounds.
func NewMesh(device gfx.Device, vertices []Vertex, indices []uint32, shader gfx.Shader) (*Mesh, error) {
	points := make([]mgl32.Vec3, len(vertices))
	flat := make([]float32, 0, len(vertices)*vertexFloats)
	for i, v := range vertices {
		points[i] = v.Position
		flat = append(flat,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
			v.Color.X(), v.Color.Y(), v.Color.Z(), v.Color.W(),
			v.UV.X(), v.UV.Y(),
			v.Tangent.X(), v.Tangent.Y(), v.Tangent.Z(),
			v.Bitangent.X(), v.Bitangent.Y(), v.Bitangent.Z(),
		)
	}
	va, err := device.CreateVertexArray(flat, VertexLayout, indices)
	if err != nil {
		return nil, err
	}
	bounds := geom.AABBFromPoints(points)
	return &Mesh{
		vertexArray: va,
		shader:      shader,
		indexCount:  len(indices),
		bounds:      bounds,
		sphere:      geom.SphereFromAABB(bounds),
	}, nil
}

func (m *Mesh) VertexArray() gfx.VertexArray { return m.vertexArray }
func (m *Mesh) Shader() gfx.Shader           { return m.shader }
func (m *Mesh) IndexCount() int              { return m.indexCount }

func (m *Mesh) SetMaterial(mat *Material) { m.material = mat }
func (m *Mesh) Material() *Material       { return m.material }

func (m *Mesh) Bounds() geom.AABB           { return m.bounds }
func (m *Mesh) BoundingSphere() geom.Sphere { return m.sphere }

// NewCube builds a unit cube centered at the origin, each face a
// subdivisions x subdivisions grid. Subdivisions are clamped to [1,50].
func NewCube(device gfx.Device, shader gfx.Shader, subdivisions int) (*Mesh, error) {
	if subdivisions < 1 {
		subdivisions = 1
	}
	if subdivisions > 50 {
		subdivisions = 50
	}
	var vertices []Vertex
	var indices []uint32
	step := 1 / float32(subdivisions)

	face := func(origin, right, up, normal mgl32.Vec3) {
		start := uint32(len(vertices))
		for y := 0; y <= subdivisions; y++ {
			for x := 0; x <= subdivisions; x++ {
				u := float32(x) * step
				v := float32(y) * step
				pos := origin.Add(right.Mul(u - 0.5)).Add(up.Mul(v - 0.5))
				vertices = append(vertices, Vertex{
					Position: pos,
					Normal:   normal,
					Color:    mgl32.Vec4{1, 1, 1, 1},
					UV:       mgl32.Vec2{u, v},
				})
			}
		}
		cols := uint32(subdivisions + 1)
		for y := 0; y < subdivisions; y++ {
			for x := 0; x < subdivisions; x++ {
				i0 := start + uint32(y)*cols + uint32(x)
				i1 := i0 + 1
				i2 := i0 + cols
				i3 := i2 + 1
				indices = append(indices, i0, i1, i2, i1, i3, i2)
			}
		}
	}
	face(mgl32.Vec3{0, 0, 0.5}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1})
	face(mgl32.Vec3{0, 0, -0.5}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 0, -1})
	face(mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	face(mgl32.Vec3{0, -0.5, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, -1, 0})
	face(mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0})
	face(mgl32.Vec3{-0.5, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{-1, 0, 0})

	return NewMesh(device, vertices, indices, shader)
}

// NewQuad builds an XY-plane quad centered at the origin facing +Z.
func NewQuad(device gfx.Device, shader gfx.Shader, width, height float32) (*Mesh, error) {
	hw, hh := width/2, height/2
	normal := mgl32.Vec3{0, 0, 1}
	white := mgl32.Vec4{1, 1, 1, 1}
	vertices := []Vertex{
		{Position: mgl32.Vec3{-hw, -hh, 0}, Normal: normal, Color: white, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{hw, -hh, 0}, Normal: normal, Color: white, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{hw, hh, 0}, Normal: normal, Color: white, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{-hw, hh, 0}, Normal: normal, Color: white, UV: mgl32.Vec2{0, 1}},
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}
	return NewMesh(device, vertices, indices, shader)
}

// NewUVSphere builds a latitude/longitude sphere. Segment counts are
// clamped to [3,500].
func NewUVSphere(device gfx.Device, shader gfx.Shader, radius float32, latSegs, lonSegs int) (*Mesh, error) {
	clamp := func(v int) int {
		if v < 3 {
			return 3
		}
		if v > 500 {
			return 500
		}
		return v
	}
	latSegs, lonSegs = clamp(latSegs), clamp(lonSegs)

	var vertices []Vertex
	var indices []uint32
	for lat := 0; lat <= latSegs; lat++ {
		theta := float32(lat) * math32.Pi / float32(latSegs)
		sinT, cosT := math32.Sin(theta), math32.Cos(theta)
		for lon := 0; lon <= lonSegs; lon++ {
			phi := float32(lon) * 2 * math32.Pi / float32(lonSegs)
			sinP, cosP := math32.Sin(phi), math32.Cos(phi)
			pos := mgl32.Vec3{
				radius * sinT * cosP,
				radius * cosT,
				radius * sinT * sinP,
			}
			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   pos.Normalize(),
				Color:    mgl32.Vec4{1, 1, 1, 1},
				UV:       mgl32.Vec2{float32(lon) / float32(lonSegs), float32(lat) / float32(latSegs)},
			})
		}
	}
	for lat := 0; lat < latSegs; lat++ {
		for lon := 0; lon < lonSegs; lon++ {
			first := uint32(lat*(lonSegs+1) + lon)
			second := first + uint32(lonSegs) + 1
			indices = append(indices,
				first, first+1, second,
				second, first+1, second+1,
			)
		}
	}
	return NewMesh(device, vertices, indices, shader)
}
