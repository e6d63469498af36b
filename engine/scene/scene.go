package scene

import "github.com/go-gl/mathgl/mgl32"

const defaultShadowResolution = 2048

// Scene owns the root of the node tree, a flat light list, an optional
// skybox and the shadow configuration.
type Scene struct {
	name   string
	root   *Node
	lights []*Light
	skybox *Skybox

	shadowsEnabled   bool
	shadowResolution int
}

// NewScene creates a scene with an internally owned root node named "Root".
func NewScene(name string) *Scene {
	return &Scene{
		name:             name,
		root:             NewNode("Root"),
		shadowResolution: defaultShadowResolution,
	}
}

func (s *Scene) Name() string        { return s.name }
func (s *Scene) SetName(name string) { s.name = name }

func (s *Scene) Root() *Node { return s.root }

// Update propagates world transforms through the whole tree, starting from
// identity at the root. Call once per frame before rendering.
func (s *Scene) Update() {
	s.root.UpdateTransform(mgl32.Ident4())
}

// AddLight appends to the flat light list. Nil lights are ignored.
func (s *Scene) AddLight(l *Light) {
	if l == nil {
		return
	}
	s.lights = append(s.lights, l)
}

// RemoveLight drops l from the flat light list; no-op when absent.
func (s *Scene) RemoveLight(l *Light) {
	for i, existing := range s.lights {
		if existing == l {
			s.lights = append(s.lights[:i], s.lights[i+1:]...)
			return
		}
	}
}

func (s *Scene) ClearLights() { s.lights = s.lights[:0] }

func (s *Scene) Lights() []*Light { return s.lights }

func (s *Scene) SetSkybox(sb *Skybox) { s.skybox = sb }
func (s *Scene) Skybox() *Skybox      { return s.skybox }

func (s *Scene) SetShadowsEnabled(enabled bool) { s.shadowsEnabled = enabled }
func (s *Scene) ShadowsEnabled() bool           { return s.shadowsEnabled }

// SetShadowResolution sets the shadow map size in texels per side.
// Non-positive values are ignored.
func (s *Scene) SetShadowResolution(resolution int) {
	if resolution > 0 {
		s.shadowResolution = resolution
	}
}

func (s *Scene) ShadowResolution() int { return s.shadowResolution }
