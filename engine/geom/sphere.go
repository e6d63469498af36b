package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is a bounding sphere.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

func NewSphere(center mgl32.Vec3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// SphereFromAABB encloses the box: center at the box center, radius the
// distance to the max corner. Not the minimal enclosing sphere.
func SphereFromAABB(b AABB) Sphere {
	c := b.Center()
	return Sphere{Center: c, Radius: b.Max.Sub(c).Len()}
}

// Transform moves the center through m and scales the radius by the
// largest column length, which stays conservative under non-uniform scale.
func (s Sphere) Transform(m mgl32.Mat4) Sphere {
	center := m.Mul4x1(s.Center.Vec4(1)).Vec3()
	sx := m.Col(0).Vec3().Len()
	sy := m.Col(1).Vec3().Len()
	sz := m.Col(2).Vec3().Len()
	scale := math32.Max(sx, math32.Max(sy, sz))
	return Sphere{Center: center, Radius: s.Radius * scale}
}
