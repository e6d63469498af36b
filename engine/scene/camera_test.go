package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPerspectiveViewProjection(t *testing.T) {
	c := NewPerspectiveCamera(60, 16.0/9.0, 0.1, 100)
	c.SetPosition(mgl32.Vec3{0, 0, 5})
	c.SetTarget(mgl32.Vec3{0, 0, 0})

	want := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100).
		Mul4(mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}))
	got := c.ViewProjectionMatrix()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, want[i], got[i], 1e-5, "element %d", i)
	}
}

func TestOrthographicProjection(t *testing.T) {
	c := NewPerspectiveCamera(60, 1, 0.1, 100)
	c.SetOrthographic(-10, 10, -5, 5, 0.1, 50)

	assert.Equal(t, Orthographic, c.Mode())
	want := mgl32.Ortho(-10, 10, -5, 5, 0.1, 50)
	assert.Equal(t, want, c.ProjectionMatrix())

	// aspect changes only apply to perspective cameras
	before := c.ProjectionMatrix()
	c.SetAspect(2)
	assert.Equal(t, before, c.ProjectionMatrix())
}

func TestViewMatrixTracksPosition(t *testing.T) {
	c := NewPerspectiveCamera(60, 1, 0.1, 100)
	c.SetPosition(mgl32.Vec3{0, 0, 5})
	c.SetTarget(mgl32.Vec3{0, 0, 0})
	first := c.ViewMatrix()

	c.SetPosition(mgl32.Vec3{3, 1, 5})
	second := c.ViewMatrix()
	assert.NotEqual(t, first, second)

	want := mgl32.LookAtV(mgl32.Vec3{3, 1, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, want, second)
}

func TestUnprojectCenterIsViewDirection(t *testing.T) {
	c := NewPerspectiveCamera(60, 1, 0.1, 100)
	c.SetPosition(mgl32.Vec3{0, 0, 5})
	c.SetTarget(mgl32.Vec3{0, 0, 0})

	ray := c.Unproject(400, 300, 800, 600)
	assert.InDelta(t, 0, ray.X(), 1e-4)
	assert.InDelta(t, 0, ray.Y(), 1e-4)
	assert.InDelta(t, -1, ray.Z(), 1e-4)
}
