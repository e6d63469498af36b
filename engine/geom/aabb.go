package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box described by its min/max corners.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB builds a box from explicit corners.
func NewAABB(min, max mgl32.Vec3) AABB { return AABB{Min: min, Max: max} }

// AABBFromPoints computes the tight box around a point cloud.
// An empty slice yields the zero box.
func AABBFromPoints(points []mgl32.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Expand(p)
	}
	return b
}

func (b AABB) Center() mgl32.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

func (b AABB) Extents() mgl32.Vec3 { return b.Max.Sub(b.Min).Mul(0.5) }

// Transform returns the box enclosing the 8 transformed corners.
// Conservative: the result is not tight under rotation.
func (b AABB) Transform(m mgl32.Mat4) AABB {
	corners := [8]mgl32.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}
	out := AABB{
		Min: mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: mgl32.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
	for _, c := range corners {
		p := m.Mul4x1(c.Vec4(1)).Vec3()
		out.Min = minVec3(out.Min, p)
		out.Max = maxVec3(out.Max, p)
	}
	return out
}

// Expand grows the box to contain point. Growth is monotonic.
func (b *AABB) Expand(point mgl32.Vec3) {
	b.Min = minVec3(b.Min, point)
	b.Max = maxVec3(b.Max, point)
}

// Merge grows the box to contain other. Growth is monotonic.
func (b *AABB) Merge(other AABB) {
	b.Min = minVec3(b.Min, other.Min)
	b.Max = maxVec3(b.Max, other.Max)
}

func minVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Min(a.X(), b.X()),
		math32.Min(a.Y(), b.Y()),
		math32.Min(a.Z(), b.Z()),
	}
}

func maxVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Max(a.X(), b.X()),
		math32.Max(a.Y(), b.Y()),
		math32.Max(a.Z(), b.Z()),
	}
}
