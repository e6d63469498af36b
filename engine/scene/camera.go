package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects between perspective and orthographic projection.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

// Camera produces view and projection matrices. The projection matrix is
// recomputed eagerly when parameters change; the view matrix is cached and
// rebuilt lazily when position/target/up moved since the last query.
type Camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	view       mgl32.Mat4
	projection mgl32.Mat4
	viewDirty  bool

	mode   ProjectionMode
	fovDeg float32
	aspect float32
	near   float32
	far    float32
}

// NewPerspectiveCamera creates a camera at (0,0,3) looking at the origin.
// fov is the vertical field of view in degrees.
func NewPerspectiveCamera(fovDeg, aspect, near, far float32) *Camera {
	c := &Camera{
		position:  mgl32.Vec3{0, 0, 3},
		up:        mgl32.Vec3{0, 1, 0},
		viewDirty: true,
	}
	c.SetPerspective(fovDeg, aspect, near, far)
	return c
}

// SetPerspective switches to perspective mode and rebuilds the projection.
func (c *Camera) SetPerspective(fovDeg, aspect, near, far float32) {
	c.mode = Perspective
	c.fovDeg, c.aspect, c.near, c.far = fovDeg, aspect, near, far
	c.projection = mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
}

// SetOrthographic switches to orthographic mode and rebuilds the projection.
func (c *Camera) SetOrthographic(left, right, bottom, top, near, far float32) {
	c.mode = Orthographic
	c.near, c.far = near, far
	c.projection = mgl32.Ortho(left, right, bottom, top, near, far)
}

// SetAspect rebuilds a perspective projection for a new aspect ratio.
// No-op in orthographic mode.
func (c *Camera) SetAspect(aspect float32) {
	if c.mode == Perspective {
		c.SetPerspective(c.fovDeg, aspect, c.near, c.far)
	}
}

func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.viewDirty = true
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }

func (c *Camera) SetTarget(t mgl32.Vec3) {
	c.target = t
	c.viewDirty = true
}

func (c *Camera) Target() mgl32.Vec3 { return c.target }

func (c *Camera) SetUp(u mgl32.Vec3) {
	c.up = u
	c.viewDirty = true
}

func (c *Camera) Up() mgl32.Vec3 { return c.up }

func (c *Camera) Mode() ProjectionMode { return c.mode }

func (c *Camera) Near() float32 { return c.near }
func (c *Camera) Far() float32  { return c.far }

// ViewMatrix returns the cached look-at matrix, recomputing it only when
// position/target/up changed since the previous call.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	if c.viewDirty {
		c.view = mgl32.LookAtV(c.position, c.target, c.up)
		c.viewDirty = false
	}
	return c.view
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 { return c.projection }

// ViewProjectionMatrix returns projection * view, composed fresh each call.
func (c *Camera) ViewProjectionMatrix() mgl32.Mat4 {
	return c.projection.Mul4(c.ViewMatrix())
}

// Unproject converts a screen coordinate (origin top-left) to a normalized
// world-space ray direction from the camera, for picking.
func (c *Camera) Unproject(screenX, screenY, screenW, screenH float32) mgl32.Vec3 {
	x := 2*screenX/screenW - 1
	y := 1 - 2*screenY/screenH
	rayClip := mgl32.Vec4{x, y, -1, 1}
	rayEye := c.projection.Inv().Mul4x1(rayClip)
	rayEye = mgl32.Vec4{rayEye.X(), rayEye.Y(), -1, 0}
	rayWorld := c.ViewMatrix().Inv().Mul4x1(rayEye).Vec3()
	return rayWorld.Normalize()
}
