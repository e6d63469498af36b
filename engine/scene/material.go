package scene

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lmgl/lmgl/engine/gfx"
)

var materialIDs atomic.Uint64

// Material holds PBR shading parameters and up to six optional texture
// maps. Binding uploads every parameter as a uniform and assigns textures
// to sequential texture units, flagging each present map so the shader can
// branch.
type Material struct {
	id   uint64
	name string

	Albedo    mgl32.Vec3
	Metallic  float32
	Roughness float32
	AO        float32
	Emissive  mgl32.Vec3
	// Alpha below 1 marks geometry using this material as transparent.
	Alpha float32

	AlbedoMap    gfx.Texture
	NormalMap    gfx.Texture
	MetallicMap  gfx.Texture
	RoughnessMap gfx.Texture
	AOMap        gfx.Texture
	EmissiveMap  gfx.Texture
}

// NewMaterial creates a material with neutral defaults: white albedo,
// non-metallic, mid roughness, full occlusion term, opaque.
func NewMaterial(name string) *Material {
	return &Material{
		id:        materialIDs.Add(1),
		name:      name,
		Albedo:    mgl32.Vec3{1, 1, 1},
		Roughness: 0.5,
		AO:        1,
		Alpha:     1,
	}
}

func (m *Material) Name() string { return m.name }

// ID is a process-unique identity used to group draws by material.
func (m *Material) ID() uint64 { return m.id }

// Transparent reports whether this material requires blending.
func (m *Material) Transparent() bool { return m.Alpha < 1 }

// Bind uploads the material parameters to shader. The shader must already
// be bound. Nil shader is a no-op.
func (m *Material) Bind(shader gfx.Shader) {
	if m == nil || shader == nil {
		return
	}
	shader.SetVec3("u_Material.albedo", m.Albedo)
	shader.SetFloat("u_Material.metallic", m.Metallic)
	shader.SetFloat("u_Material.roughness", m.Roughness)
	shader.SetFloat("u_Material.ao", m.AO)
	shader.SetVec3("u_Material.emissive", m.Emissive)
	shader.SetFloat("u_Material.alpha", m.Alpha)

	slot := 0
	bindMap := func(tex gfx.Texture, samplerName, flagName string) {
		if tex != nil {
			tex.Bind(slot)
			shader.SetInt(samplerName, int32(slot))
			shader.SetInt(flagName, 1)
			slot++
		} else {
			shader.SetInt(flagName, 0)
		}
	}
	bindMap(m.AlbedoMap, "u_Material.albedoMap", "u_Material.hasAlbedoMap")
	bindMap(m.NormalMap, "u_Material.normalMap", "u_Material.hasNormalMap")
	bindMap(m.MetallicMap, "u_Material.metallicMap", "u_Material.hasMetallicMap")
	bindMap(m.RoughnessMap, "u_Material.roughnessMap", "u_Material.hasRoughnessMap")
	bindMap(m.AOMap, "u_Material.aoMap", "u_Material.hasAoMap")
	bindMap(m.EmissiveMap, "u_Material.emissiveMap", "u_Material.hasEmissiveMap")
}
