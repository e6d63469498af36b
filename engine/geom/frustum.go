package geom

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane holds the equation dot(Normal, p) + D = 0. Points with a
// non-negative signed distance are on the side the normal points to.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// DistanceTo reports the signed distance from point to the plane.
func (p Plane) DistanceTo(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

func (p *Plane) normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Mul(1 / l)
	p.D /= l
}

// Frustum plane indices.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum is a view volume bounded by six inward-facing planes. It holds
// no reference to any camera; call SetFromMatrix with the current
// view-projection matrix before querying.
type Frustum struct {
	planes [6]Plane
}

// SetFromMatrix extracts the six planes from a view-projection matrix
// (Gribb/Hartmann row combinations) and normalizes each one.
func (f *Frustum) SetFromMatrix(vp mgl32.Mat4) {
	rows := [4]mgl32.Vec4{vp.Row(0), vp.Row(1), vp.Row(2), vp.Row(3)}

	set := func(idx int, v mgl32.Vec4) {
		f.planes[idx] = Plane{Normal: v.Vec3(), D: v.W()}
		f.planes[idx].normalize()
	}
	set(PlaneLeft, rows[3].Add(rows[0]))
	set(PlaneRight, rows[3].Sub(rows[0]))
	set(PlaneBottom, rows[3].Add(rows[1]))
	set(PlaneTop, rows[3].Sub(rows[1]))
	set(PlaneNear, rows[3].Add(rows[2]))
	set(PlaneFar, rows[3].Sub(rows[2]))
}

// Plane returns one of the six planes by index.
func (f *Frustum) Plane(idx int) Plane { return f.planes[idx] }

// ContainsPoint reports whether point lies inside all six planes.
func (f *Frustum) ContainsPoint(point mgl32.Vec3) bool {
	for i := range f.planes {
		if f.planes[i].DistanceTo(point) < 0 {
			return false
		}
	}
	return true
}

// ContainsSphere reports whether any part of the sphere may be inside.
// Conservative: may accept spheres that only nearly intersect.
func (f *Frustum) ContainsSphere(s Sphere) bool {
	for i := range f.planes {
		if f.planes[i].DistanceTo(s.Center) < -s.Radius {
			return false
		}
	}
	return true
}

// ContainsAABB reports whether any part of the box may be inside, testing
// the corner furthest along each plane normal. Conservative.
func (f *Frustum) ContainsAABB(b AABB) bool {
	for i := range f.planes {
		n := f.planes[i].Normal
		v := b.Min
		if n.X() >= 0 {
			v[0] = b.Max.X()
		}
		if n.Y() >= 0 {
			v[1] = b.Max.Y()
		}
		if n.Z() >= 0 {
			v[2] = b.Max.Z()
		}
		if f.planes[i].DistanceTo(v) < 0 {
			return false
		}
	}
	return true
}
