package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lmgl/lmgl/engine/core"
	"github.com/lmgl/lmgl/engine/geom"
	"github.com/lmgl/lmgl/engine/gfx"
	"github.com/lmgl/lmgl/engine/profiler"
	"github.com/lmgl/lmgl/engine/scene"
)

// ToneMapMode selects the operator applied in the final composite pass.
type ToneMapMode int

const (
	ToneMapNone ToneMapMode = iota
	ToneMapReinhard
	ToneMapACES
)

// RenderMode switches how triangles are rasterized.
type RenderMode int

const (
	RenderModeSolid RenderMode = iota
	RenderModeWireframe
	RenderModePoints
)

const (
	maxDirectionalLights = 4
	maxPointLights       = 16
	maxSpotLights        = 8
	shadowTextureSlot    = 15
	blurPassCount        = 10
)

// Renderer draws a scene graph through a multi-pass HDR pipeline:
// shadow depth, lit opaque into a floating-point target, bloom
// extraction and blur, then a tone-mapped composite to the screen.
type Renderer struct {
	device gfx.Device
	width  int
	height int

	// per-frame state, reused across frames to avoid reallocation
	queue        []RenderItem
	shadowQueue  []RenderItem
	frustum      geom.Frustum
	dirLights    []*scene.Light
	pointLights  []*scene.Light
	spotLights   []*scene.Light
	lastMaterial *scene.Material
	stats        Stats

	sceneFB  gfx.Framebuffer
	brightFB gfx.Framebuffer
	blurFB   [2]gfx.Framebuffer

	shadowMap    gfx.ShadowMap
	lightSpace   mgl32.Mat4
	shadowActive bool
	shadowCenter mgl32.Vec3
	shadowRadius float32

	defaultShader gfx.Shader
	skyboxShader  gfx.Shader
	depthShader   gfx.Shader
	brightShader  gfx.Shader
	blurShader    gfx.Shader
	postShader    gfx.Shader

	screenQuad      gfx.VertexArray
	defaultMaterial *scene.Material

	renderMode     RenderMode
	clearColor     mgl32.Vec4
	depthTest      bool
	faceCulling    bool
	bloomEnabled   bool
	bloomThreshold float32
	bloomIntensity float32
	toneMap        ToneMapMode
	exposure       float32
	gamma          float32
}

// New creates a renderer targeting the given backbuffer size. It compiles
// the pipeline's built-in shaders and allocates the HDR framebuffers.
func New(device gfx.Device, width, height int) (*Renderer, error) {
	r := &Renderer{
		device:         device,
		width:          width,
		height:         height,
		clearColor:     mgl32.Vec4{0.05, 0.05, 0.08, 1},
		depthTest:      true,
		faceCulling:    true,
		bloomEnabled:   true,
		bloomThreshold: 1.0,
		bloomIntensity: 1.0,
		toneMap:        ToneMapACES,
		exposure:       1.0,
		gamma:          2.2,
		shadowCenter:   mgl32.Vec3{0, 2, 0},
		shadowRadius:   20,
	}

	var err error
	if r.defaultShader, err = device.CreateShader("pbr", pbrShaderSource); err != nil {
		return nil, err
	}
	if r.skyboxShader, err = device.CreateShader("skybox", skyboxShaderSource); err != nil {
		return nil, err
	}
	if r.depthShader, err = device.CreateShader("depth", depthShaderSource); err != nil {
		return nil, err
	}
	if r.brightShader, err = device.CreateShader("brightpass", brightpassShaderSource); err != nil {
		return nil, err
	}
	if r.blurShader, err = device.CreateShader("blur", blurShaderSource); err != nil {
		return nil, err
	}
	if r.postShader, err = device.CreateShader("postprocess", postprocessShaderSource); err != nil {
		return nil, err
	}

	if r.sceneFB, err = device.CreateFramebuffer(width, height); err != nil {
		return nil, err
	}
	if r.brightFB, err = device.CreateFramebuffer(width, height); err != nil {
		return nil, err
	}
	for i := range r.blurFB {
		if r.blurFB[i], err = device.CreateFramebuffer(width/2, height/2); err != nil {
			return nil, err
		}
	}

	if r.screenQuad, err = newScreenQuad(device); err != nil {
		return nil, err
	}
	r.defaultMaterial = scene.NewMaterial("default")

	core.LogInfo("renderer ready: %dx%d, %s / %s", width, height, device.Vendor(), device.Renderer())
	return r, nil
}

func newScreenQuad(device gfx.Device) (gfx.VertexArray, error) {
	vertices := []float32{
		-1, -1, 0, 0,
		1, -1, 1, 0,
		1, 1, 1, 1,
		-1, 1, 0, 1,
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}
	layout := gfx.VertexLayout{
		Stride: 16,
		Attributes: []gfx.VertexAttrib{
			{Location: 0, Size: 2, Type: gfx.AttribFloat32, Offset: 0},
			{Location: 1, Size: 2, Type: gfx.AttribFloat32, Offset: 8},
		},
	}
	return device.CreateVertexArray(vertices, layout, indices)
}

// DefaultShader returns the built-in lit shader. Meshes without bespoke
// shaders are typically created with it.
func (r *Renderer) DefaultShader() gfx.Shader { return r.defaultShader }

// SkyboxShader returns the built-in cubemap background shader.
func (r *Renderer) SkyboxShader() gfx.Shader { return r.skyboxShader }

// Stats reports the counters of the most recently rendered frame.
func (r *Renderer) Stats() Stats { return r.stats }

// Render draws an entire frame for the given scene and camera. Either
// being nil renders nothing. The pass order is fixed: shadow depth,
// opaque HDR, bloom, tone-mapped composite.
func (r *Renderer) Render(sc *scene.Scene, camera *scene.Camera) {
	if sc == nil || camera == nil {
		return
	}
	defer profiler.Start("renderer.frame")()

	r.stats = Stats{}
	r.queue = r.queue[:0]
	r.shadowQueue = r.shadowQueue[:0]
	r.lastMaterial = nil
	r.dirLights = r.dirLights[:0]
	r.pointLights = r.pointLights[:0]
	r.spotLights = r.spotLights[:0]

	r.frustum.SetFromMatrix(camera.ViewProjectionMatrix())
	r.buildQueue(sc.Root(), mgl32.Ident4(), camera.Position())
	r.collectLights(sc)
	sortRenderQueue(r.queue)
	r.stats.Submitted = len(r.queue)

	r.shadowPass(sc)
	r.scenePass(sc, camera)
	r.postProcess()
}

// buildQueue walks the node tree composing transforms locally, frustum
// tests each mesh's world-space bounding sphere, and queues survivors.
// Nodes with LOD chains substitute the level matching camera distance.
func (r *Renderer) buildQueue(node *scene.Node, parentTransform mgl32.Mat4, cameraPos mgl32.Vec3) {
	if node == nil {
		return
	}
	world := parentTransform.Mul4(node.LocalTransform())
	worldPos := world.Col(3).Vec3()

	mesh := node.Mesh()
	if lod := node.LOD(); lod != nil && lod.HasLevels() {
		mesh = lod.MeshFor(cameraPos, worldPos)
	}

	if mesh != nil {
		distSq := worldPos.Sub(cameraPos).Dot(worldPos.Sub(cameraPos))
		transparent := mesh.Material() != nil && mesh.Material().Transparent()
		layer := LayerOpaque
		if transparent {
			layer = LayerTransparent
		}
		item := RenderItem{
			Mesh:               mesh,
			Transform:          world,
			DistanceSqToCamera: distSq,
			Layer:              layer,
			Transparent:        transparent,
		}
		r.shadowQueue = append(r.shadowQueue, item)

		if r.frustum.ContainsSphere(mesh.BoundingSphere().Transform(world)) {
			r.queue = append(r.queue, item)
		} else {
			r.stats.Culled++
		}
	}

	for _, child := range node.Children() {
		r.buildQueue(child, world, cameraPos)
	}
}

// collectLights gathers the scene's flat light list plus any lights
// attached to nodes. Node-attached point and spot lights take their
// position from the node's world transform so they follow the graph.
func (r *Renderer) collectLights(sc *scene.Scene) {
	for _, l := range sc.Lights() {
		r.addLight(l)
	}
	r.collectNodeLights(sc.Root())
}

func (r *Renderer) collectNodeLights(node *scene.Node) {
	if node == nil {
		return
	}
	if l := node.Light(); l != nil {
		if l.Type != scene.LightDirectional {
			l.Position = node.WorldPosition()
		}
		r.addLight(l)
	}
	for _, child := range node.Children() {
		r.collectNodeLights(child)
	}
}

func (r *Renderer) addLight(l *scene.Light) {
	switch l.Type {
	case scene.LightDirectional:
		r.dirLights = append(r.dirLights, l)
	case scene.LightPoint:
		r.pointLights = append(r.pointLights, l)
	case scene.LightSpot:
		r.spotLights = append(r.spotLights, l)
	}
}

// scenePass draws the skybox and the sorted queue into the HDR target.
func (r *Renderer) scenePass(sc *scene.Scene, camera *scene.Camera) {
	r.sceneFB.Bind()
	r.device.ClearColor(r.clearColor.X(), r.clearColor.Y(), r.clearColor.Z(), r.clearColor.W())
	r.device.Clear(gfx.ClearColor | gfx.ClearDepth)
	r.device.SetDepthTest(r.depthTest)
	r.applyCulling()
	r.applyRenderMode()

	if sb := sc.Skybox(); sb != nil {
		sb.Render(r.device, camera)
		r.stats.DrawCalls++
		r.stats.Triangles += 12 // unit cube
	}

	view := camera.ViewMatrix()
	proj := camera.ProjectionMatrix()
	blending := false
	for i := range r.queue {
		item := &r.queue[i]
		if item.Transparent != blending {
			blending = item.Transparent
			r.device.SetBlending(blending)
		}
		r.renderMesh(item, view, proj, camera.Position())
	}
	if blending {
		r.device.SetBlending(false)
	}
}

func (r *Renderer) renderMesh(item *RenderItem, view, proj mgl32.Mat4, cameraPos mgl32.Vec3) {
	mesh := item.Mesh
	shader := mesh.Shader()
	if shader == nil || mesh.VertexArray() == nil {
		return
	}

	shader.Bind()
	mvp := proj.Mul4(view).Mul4(item.Transform)
	normalMat := item.Transform.Mat3().Inv().Transpose()
	shader.SetMat4("u_Model", item.Transform)
	shader.SetMat4("u_MVP", mvp)
	shader.SetMat3("u_NormalMatrix", normalMat)
	shader.SetVec3("u_CameraPos", cameraPos)

	r.bindShadow(shader)
	r.bindLights(shader)
	r.bindMaterial(mesh, shader)

	mesh.VertexArray().Bind()
	r.device.DrawIndexed(mesh.IndexCount())
	r.stats.DrawCalls++
	r.stats.Triangles += mesh.IndexCount() / 3
}

func (r *Renderer) bindShadow(shader gfx.Shader) {
	if !r.shadowActive {
		shader.SetInt("u_UseShadows", 0)
		return
	}
	r.shadowMap.BindTexture(shadowTextureSlot)
	shader.SetInt("u_UseShadows", 1)
	shader.SetInt("u_ShadowMap", shadowTextureSlot)
	shader.SetMat4("u_LightSpaceMatrix", r.lightSpace)
}

func (r *Renderer) bindLights(shader gfx.Shader) {
	nDir := len(r.dirLights)
	if nDir > maxDirectionalLights {
		nDir = maxDirectionalLights
	}
	shader.SetInt("u_NumDirLights", int32(nDir))
	for i := 0; i < nDir; i++ {
		l := r.dirLights[i]
		shader.SetVec3(lightUniform("u_DirLights", i, "direction"), l.Direction())
		shader.SetVec3(lightUniform("u_DirLights", i, "color"), l.Color)
		shader.SetFloat(lightUniform("u_DirLights", i, "intensity"), l.Intensity)
	}

	nPoint := len(r.pointLights)
	if nPoint > maxPointLights {
		nPoint = maxPointLights
	}
	shader.SetInt("u_NumPointLights", int32(nPoint))
	for i := 0; i < nPoint; i++ {
		l := r.pointLights[i]
		shader.SetVec3(lightUniform("u_PointLights", i, "position"), l.Position)
		shader.SetVec3(lightUniform("u_PointLights", i, "color"), l.Color)
		shader.SetFloat(lightUniform("u_PointLights", i, "intensity"), l.Intensity)
		shader.SetFloat(lightUniform("u_PointLights", i, "range"), l.Range)
	}

	nSpot := len(r.spotLights)
	if nSpot > maxSpotLights {
		nSpot = maxSpotLights
	}
	shader.SetInt("u_NumSpotLights", int32(nSpot))
	for i := 0; i < nSpot; i++ {
		l := r.spotLights[i]
		shader.SetVec3(lightUniform("u_SpotLights", i, "position"), l.Position)
		shader.SetVec3(lightUniform("u_SpotLights", i, "direction"), l.Direction())
		shader.SetVec3(lightUniform("u_SpotLights", i, "color"), l.Color)
		shader.SetFloat(lightUniform("u_SpotLights", i, "intensity"), l.Intensity)
		shader.SetFloat(lightUniform("u_SpotLights", i, "range"), l.Range)
		shader.SetFloat(lightUniform("u_SpotLights", i, "cosInner"), math32.Cos(l.InnerCone))
		shader.SetFloat(lightUniform("u_SpotLights", i, "cosOuter"), math32.Cos(l.OuterCone))
	}
}

// bindMaterial binds the mesh's material unless it is the one bound for
// the previous draw. Items are sorted by material so runs of identical
// materials pay a single bind.
func (r *Renderer) bindMaterial(mesh *scene.Mesh, shader gfx.Shader) {
	mat := mesh.Material()
	if mat == nil {
		mat = r.defaultMaterial
	}
	if mat == r.lastMaterial {
		return
	}
	mat.Bind(shader)
	r.lastMaterial = mat
}

// postProcess runs the bloom chain and composites the HDR scene to the
// default framebuffer with the configured tone map operator.
func (r *Renderer) postProcess() {
	r.device.SetPolygonMode(gfx.PolygonFill)
	r.device.SetDepthTest(false)
	r.device.SetCulling(gfx.CullNone)

	if r.bloomEnabled {
		r.bloomPass()
	}

	r.device.BindDefaultFramebuffer()
	r.device.Viewport(0, 0, r.width, r.height)
	r.device.Clear(gfx.ClearColor)

	r.postShader.Bind()
	r.sceneFB.ColorTexture().Bind(0)
	r.postShader.SetInt("u_Scene", 0)
	r.postShader.SetInt("u_BloomEnabled", boolToInt(r.bloomEnabled))
	if r.bloomEnabled {
		r.blurFB[0].ColorTexture().Bind(1)
		r.postShader.SetInt("u_Bloom", 1)
		r.postShader.SetFloat("u_BloomIntensity", r.bloomIntensity)
	}
	r.postShader.SetInt("u_ToneMapMode", int32(r.toneMap))
	r.postShader.SetFloat("u_Exposure", r.exposure)
	r.postShader.SetFloat("u_Gamma", r.gamma)
	r.drawScreenQuad()

	r.device.SetDepthTest(r.depthTest)
	r.applyCulling()
}

// bloomPass extracts pixels above the brightness threshold, then blurs
// them with alternating horizontal and vertical separable passes whose
// result ends in blurFB[0].
func (r *Renderer) bloomPass() {
	r.brightFB.Bind()
	r.device.Clear(gfx.ClearColor)
	r.brightShader.Bind()
	r.sceneFB.ColorTexture().Bind(0)
	r.brightShader.SetInt("u_Scene", 0)
	r.brightShader.SetFloat("u_Threshold", r.bloomThreshold)
	r.drawScreenQuad()

	r.blurShader.Bind()
	r.blurShader.SetInt("u_Image", 0)
	src := r.brightFB.ColorTexture()
	for i := 0; i < blurPassCount; i++ {
		horizontal := i%2 == 0
		target := r.blurFB[1]
		if !horizontal {
			target = r.blurFB[0]
		}
		target.Bind()
		r.blurShader.SetInt("u_Horizontal", boolToInt(horizontal))
		src.Bind(0)
		r.drawScreenQuad()
		src = target.ColorTexture()
	}
}

func (r *Renderer) drawScreenQuad() {
	r.screenQuad.Bind()
	r.device.DrawIndexed(r.screenQuad.IndexCount())
	r.stats.DrawCalls++
}

func (r *Renderer) applyRenderMode() {
	switch r.renderMode {
	case RenderModeWireframe:
		r.device.SetPolygonMode(gfx.PolygonLine)
	case RenderModePoints:
		r.device.SetPolygonMode(gfx.PolygonPoint)
	default:
		r.device.SetPolygonMode(gfx.PolygonFill)
	}
}

func (r *Renderer) applyCulling() {
	if r.faceCulling {
		r.device.SetCulling(gfx.CullBack)
	} else {
		r.device.SetCulling(gfx.CullNone)
	}
}

// Resize adjusts the backbuffer-sized render targets. Zero or negative
// dimensions (a minimized window) are ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height
	r.sceneFB.Resize(width, height)
	r.brightFB.Resize(width, height)
	for i := range r.blurFB {
		r.blurFB[i].Resize(width/2, height/2)
	}
}

func (r *Renderer) SetClearColor(c mgl32.Vec4)      { r.clearColor = c }
func (r *Renderer) SetRenderMode(m RenderMode)      { r.renderMode = m }
func (r *Renderer) RenderMode() RenderMode          { return r.renderMode }
func (r *Renderer) SetDepthTest(enabled bool)       { r.depthTest = enabled }
func (r *Renderer) SetFaceCulling(enabled bool)     { r.faceCulling = enabled }
func (r *Renderer) SetBloom(enabled bool)           { r.bloomEnabled = enabled }
func (r *Renderer) SetBloomThreshold(t float32)     { r.bloomThreshold = t }
func (r *Renderer) SetBloomIntensity(v float32)     { r.bloomIntensity = v }
func (r *Renderer) SetToneMapping(mode ToneMapMode) { r.toneMap = mode }
func (r *Renderer) SetExposure(e float32)           { r.exposure = e }
func (r *Renderer) SetGamma(g float32)              { r.gamma = g }

// SetShadowBounds positions the directional shadow's orthographic volume.
func (r *Renderer) SetShadowBounds(center mgl32.Vec3, radius float32) {
	r.shadowCenter = center
	r.shadowRadius = radius
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
