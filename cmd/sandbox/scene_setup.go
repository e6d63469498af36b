package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lmgl/lmgl/engine/colors"
	"github.com/lmgl/lmgl/engine/gfx"
	"github.com/lmgl/lmgl/engine/renderer"
	"github.com/lmgl/lmgl/engine/scene"
)

// buildScene assembles the demo: a ground plane, a spinning parented cube
// stack, an LOD sphere, and a glowing orb that feeds the bloom pass. The
// orb draws with orbShader, which the app loads through the asset cache
// so edits to it reload live.
func buildScene(device gfx.Device, r *renderer.Renderer, orbShader gfx.Shader) (*scene.Scene, error) {
	sc := scene.NewScene("sandbox")
	shader := r.DefaultShader()

	ground, err := scene.NewQuad(device, shader, 40, 40)
	if err != nil {
		return nil, err
	}
	groundMat := scene.NewMaterial("ground")
	groundMat.Albedo = colors.Gray.Vec3()
	groundMat.Roughness = 0.9
	ground.SetMaterial(groundMat)
	groundNode := scene.NewNode("ground")
	groundNode.SetRotation(mgl32.AnglesToQuat(mgl32.DegToRad(-90), 0, 0, mgl32.XYZ))
	groundNode.SetMesh(ground)
	sc.Root().AddChild(groundNode)

	cube, err := scene.NewCube(device, shader, 1)
	if err != nil {
		return nil, err
	}
	cubeMat := scene.NewMaterial("crate")
	cubeMat.Albedo = mgl32.Vec3{0.7, 0.45, 0.2}
	cubeMat.Roughness = 0.6
	cube.SetMaterial(cubeMat)

	// pivot spins around Y; the orbiter hangs off it so its world
	// transform composes both rotations.
	pivot := scene.NewNode("pivot")
	pivot.SetPosition(mgl32.Vec3{0, 1, 0})
	pivot.SetMesh(cube)
	sc.Root().AddChild(pivot)

	orbiter := scene.NewNode("orbiter")
	orbiter.SetPosition(mgl32.Vec3{2.5, 0.5, 0})
	orbiter.SetUniformScale(0.5)
	orbiter.SetMesh(cube)
	pivot.AddChild(orbiter)

	if err := addLODSphere(device, shader, sc); err != nil {
		return nil, err
	}

	// emissive orb pushes past the bloom threshold
	orb, err := scene.NewUVSphere(device, orbShader, 0.4, 16, 24)
	if err != nil {
		return nil, err
	}
	orbMat := scene.NewMaterial("orb")
	orbMat.Albedo = mgl32.Vec3{0.1, 0.1, 0.1}
	orbMat.Emissive = colors.Cyan.Scaled(4).Vec3()
	orb.SetMaterial(orbMat)
	orbNode := scene.NewNode("orb")
	orbNode.SetPosition(mgl32.Vec3{-3, 1.5, -1})
	orbNode.SetMesh(orb)
	sc.Root().AddChild(orbNode)

	sun := scene.NewDirectionalLight(mgl32.Vec3{-0.4, -1, -0.3}, colors.White.Vec3())
	sun.Intensity = 3
	sun.CastsShadows = true
	sc.AddLight(sun)

	fill := scene.NewPointLight(mgl32.Vec3{4, 3, 4}, 15, mgl32.Vec3{1, 0.8, 0.6})
	fill.Intensity = 8
	sc.AddLight(fill)

	// spot cone aimed down at the LOD sphere
	spot := scene.NewSpotLight(mgl32.Vec3{3.5, 6, -3}, mgl32.Vec3{0, -1, 0}, 30, colors.White.Vec3())
	spot.Intensity = 10
	spot.Range = 12
	sc.AddLight(spot)

	// lamp rides the orbiter to exercise node-attached lights
	lamp := scene.NewPointLight(mgl32.Vec3{}, 8, colors.Cyan.Vec3())
	lamp.Intensity = 5
	lampNode := scene.NewNode("lamp")
	lampNode.SetLight(lamp)
	orbiter.AddChild(lampNode)

	sc.Update()
	return sc, nil
}

func addLODSphere(device gfx.Device, shader gfx.Shader, sc *scene.Scene) error {
	fine, err := scene.NewUVSphere(device, shader, 1, 32, 48)
	if err != nil {
		return err
	}
	mid, err := scene.NewUVSphere(device, shader, 1, 16, 24)
	if err != nil {
		return err
	}
	coarse, err := scene.NewUVSphere(device, shader, 1, 6, 8)
	if err != nil {
		return err
	}
	mat := scene.NewMaterial("lod-sphere")
	mat.Albedo = mgl32.Vec3{0.2, 0.4, 0.8}
	mat.Metallic = 0.8
	mat.Roughness = 0.3
	fine.SetMaterial(mat)
	mid.SetMaterial(mat)
	coarse.SetMaterial(mat)

	lod := &scene.LOD{}
	lod.AddLevel(fine, 10)
	lod.AddLevel(mid, 30)
	lod.AddLevel(coarse, 200)

	node := scene.NewNode("lod-sphere")
	node.SetPosition(mgl32.Vec3{3.5, 1, -3})
	node.SetLOD(lod)
	sc.Root().AddChild(node)
	return nil
}
