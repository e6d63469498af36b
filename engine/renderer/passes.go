package renderer

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lmgl/lmgl/engine/gfx"
	"github.com/lmgl/lmgl/engine/scene"
)

// shadowPass renders scene depth from the first shadow-casting
// directional light into the shadow map. The whole mesh set is drawn,
// not just the camera-culled queue, so casters behind the camera still
// throw shadows. Front faces are culled to reduce peter-panning.
func (r *Renderer) shadowPass(sc *scene.Scene) {
	r.shadowActive = false
	if !sc.ShadowsEnabled() {
		return
	}

	var caster *scene.Light
	for _, l := range r.dirLights {
		if l.CastsShadows {
			caster = l
			break
		}
	}
	if caster == nil {
		return
	}

	size := sc.ShadowResolution()
	if r.shadowMap == nil {
		sm, err := r.device.CreateShadowMap(size, size)
		if err != nil {
			return
		}
		r.shadowMap = sm
	} else if r.shadowMap.Size() != size {
		r.shadowMap.Resize(size, size)
	}

	r.lightSpace = lightSpaceMatrix(caster.Direction(), r.shadowCenter, r.shadowRadius)

	r.shadowMap.BindForWriting()
	r.device.SetCulling(gfx.CullFront)
	r.depthShader.Bind()
	r.depthShader.SetMat4("u_LightSpaceMatrix", r.lightSpace)
	for i := range r.shadowQueue {
		item := &r.shadowQueue[i]
		if item.Transparent || item.Mesh.VertexArray() == nil {
			continue
		}
		r.depthShader.SetMat4("u_Model", item.Transform)
		item.Mesh.VertexArray().Bind()
		r.device.DrawIndexed(item.Mesh.IndexCount())
		r.stats.DrawCalls++
	}
	r.applyCulling()
	r.shadowActive = true
}

// lightSpaceMatrix builds the orthographic view-projection a directional
// light sees, centered on the shadow volume. The light has no position,
// so a virtual eye is placed back along its direction.
func lightSpaceMatrix(dir, center mgl32.Vec3, radius float32) mgl32.Mat4 {
	eye := center.Sub(dir.Mul(radius * 2))
	up := mgl32.Vec3{0, 1, 0}
	if mgl32.Abs(dir.Y()) > 0.99 {
		up = mgl32.Vec3{0, 0, 1}
	}
	view := mgl32.LookAtV(eye, center, up)
	proj := mgl32.Ortho(-radius, radius, -radius, radius, 0.1, radius*4)
	return proj.Mul4(view)
}

// lightUniform names an element field of a shader light array, e.g.
// u_PointLights[3].color.
func lightUniform(array string, index int, field string) string {
	return array + "[" + strconv.Itoa(index) + "]." + field
}
