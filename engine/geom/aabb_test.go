package geom

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAABBFromPoints(t *testing.T) {
	b := AABBFromPoints([]mgl32.Vec3{
		{1, -2, 3},
		{-1, 4, 0},
		{0, 0, -5},
	})
	assert.Equal(t, mgl32.Vec3{-1, -2, -5}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 4, 3}, b.Max)

	assert.Equal(t, AABB{}, AABBFromPoints(nil))
}

func TestAABBCenterExtents(t *testing.T) {
	b := NewAABB(mgl32.Vec3{-2, 0, 2}, mgl32.Vec3{2, 4, 6})
	assert.Equal(t, mgl32.Vec3{0, 2, 4}, b.Center())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, b.Extents())
}

func TestAABBTransformTranslation(t *testing.T) {
	b := NewAABB(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	moved := b.Transform(mgl32.Translate3D(5, -3, 2))
	assert.InDelta(t, 4, moved.Min.X(), 1e-6)
	assert.InDelta(t, -4, moved.Min.Y(), 1e-6)
	assert.InDelta(t, 1, moved.Min.Z(), 1e-6)
	assert.InDelta(t, 6, moved.Max.X(), 1e-6)
}

func TestAABBTransformRotationIsConservative(t *testing.T) {
	b := NewAABB(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(45))
	r := b.Transform(rot)
	// 45° about Y stretches X/Z to sqrt(2)
	assert.InDelta(t, math32.Sqrt(2), r.Max.X(), 1e-5)
	assert.InDelta(t, 1, r.Max.Y(), 1e-5)
}

func TestAABBExpandMerge(t *testing.T) {
	b := NewAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	b.Expand(mgl32.Vec3{-2, 0.5, 3})
	assert.Equal(t, mgl32.Vec3{-2, 0, 0}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 1, 3}, b.Max)

	b.Merge(NewAABB(mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{0, 9, 0}))
	assert.Equal(t, mgl32.Vec3{-5, 0, 0}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 9, 3}, b.Max)
}

func TestSphereFromAABB(t *testing.T) {
	b := NewAABB(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{3, 1, 1})
	s := SphereFromAABB(b)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.Center)
	assert.InDelta(t, math32.Sqrt(4+1+1), s.Radius, 1e-5)
}

func TestSphereTransformScalesRadius(t *testing.T) {
	s := Sphere{Center: mgl32.Vec3{1, 0, 0}, Radius: 2}

	uniform := s.Transform(mgl32.Scale3D(3, 3, 3))
	assert.InDelta(t, 6, uniform.Radius, 1e-5)
	assert.InDelta(t, 3, uniform.Center.X(), 1e-5)

	// non-uniform scale takes the largest axis
	skewed := s.Transform(mgl32.Scale3D(1, 5, 2))
	assert.InDelta(t, 10, skewed.Radius, 1e-5)

	moved := s.Transform(mgl32.Translate3D(0, 4, 0))
	assert.InDelta(t, 2, moved.Radius, 1e-5)
	assert.InDelta(t, 4, moved.Center.Y(), 1e-5)
}
