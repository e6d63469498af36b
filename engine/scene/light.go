package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightType tags the closed set of light kinds.
type LightType int

const (
	LightDirectional LightType = iota
	LightPoint
	LightSpot
)

// Light is a tagged union over the three light kinds. Fields that do not
// apply to a kind are simply ignored by the renderer.
type Light struct {
	Type      LightType
	Color     mgl32.Vec3
	Intensity float32

	direction mgl32.Vec3 // unit length, directional and spot
	Position  mgl32.Vec3 // point and spot
	Range     float32    // point and spot

	// Spot cone angles in radians.
	InnerCone float32
	OuterCone float32

	CastsShadows bool
}

// NewDirectionalLight creates a directional light shining along dir.
func NewDirectionalLight(dir, color mgl32.Vec3) *Light {
	l := &Light{Type: LightDirectional, Color: color, Intensity: 1}
	l.SetDirection(dir)
	return l
}

// NewPointLight creates a point light at pos with the given falloff range.
func NewPointLight(pos mgl32.Vec3, rng float32, color mgl32.Vec3) *Light {
	return &Light{Type: LightPoint, Position: pos, Range: rng, Color: color, Intensity: 1}
}

// NewSpotLight creates a spot light. angleDeg is the outer cone angle in
// degrees; the inner cone defaults to 80% of it.
func NewSpotLight(pos, dir mgl32.Vec3, angleDeg float32, color mgl32.Vec3) *Light {
	l := &Light{Type: LightSpot, Position: pos, Color: color, Intensity: 1}
	l.SetDirection(dir)
	l.OuterCone = mgl32.DegToRad(angleDeg)
	l.InnerCone = mgl32.DegToRad(angleDeg * 0.8)
	return l
}

// SetDirection stores a unit-length direction. Zero vectors are ignored.
func (l *Light) SetDirection(dir mgl32.Vec3) {
	if dir.Len() == 0 {
		return
	}
	l.direction = dir.Normalize()
}

func (l *Light) Direction() mgl32.Vec3 { return l.direction }
