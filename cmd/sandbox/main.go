package main

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lmgl/lmgl/engine/assets"
	"github.com/lmgl/lmgl/engine/core"
	"github.com/lmgl/lmgl/engine/gfx"
	glbackend "github.com/lmgl/lmgl/engine/gfx/gl"
	"github.com/lmgl/lmgl/engine/platform"
	"github.com/lmgl/lmgl/engine/profiler"
	"github.com/lmgl/lmgl/engine/renderer"
	"github.com/lmgl/lmgl/engine/scene"
)

// App owns the demo scene: a parented hierarchy of spinning cubes, an
// LOD sphere, all three light kinds, shadows and bloom.
type App struct {
	renderer *renderer.Renderer
	scene    *scene.Scene
	camera   *scene.Camera

	assets  *assets.ResourceCache
	watcher *assets.ShaderWatcher

	pivot   *scene.Node
	orbiter *scene.Node

	sceneLayer *SceneLayer
	debugLayer *DebugLayer
	cfg        core.Config
}

func (a *App) OnStart(e *core.Engine) {
	device := glbackend.NewDevice()

	w, h := e.Window.FramebufferSize()
	r, err := renderer.New(device, w, h)
	if err != nil {
		core.LogFatal("renderer init: %v", err)
	}
	a.renderer = r
	applyRendererConfig(r, a.cfg)

	a.camera = scene.NewPerspectiveCamera(60, float32(w)/float32(h), 0.1, 200)
	a.camera.SetPosition(mgl32.Vec3{0, 4, 10})
	a.camera.SetTarget(mgl32.Vec3{0, 1, 0})

	// orb shader comes from disk through the cache so saving the file
	// while the sandbox runs swaps it in place
	a.assets = assets.NewResourceCache(device, "assets")
	var orbShader gfx.Shader = r.DefaultShader()
	if s, serr := a.assets.Shader("orb.glsl"); serr != nil {
		core.LogWarn("orb shader: %v, using built-in", serr)
	} else {
		orbShader = s
		if w, werr := assets.WatchShaders(a.assets); werr != nil {
			core.LogWarn("shader watch: %v", werr)
		} else {
			a.watcher = w
		}
	}

	sc, err := buildScene(device, r, orbShader)
	if err != nil {
		core.LogFatal("scene build: %v", err)
	}
	a.scene = sc
	a.scene.SetShadowsEnabled(a.cfg.Renderer.ShadowsEnabled)
	a.scene.SetShadowResolution(a.cfg.Renderer.ShadowResolution)
	a.pivot = sc.Root().Find("pivot")
	a.orbiter = sc.Root().Find("orbiter")

	a.sceneLayer = &SceneLayer{app: a}
	e.PushLayer(a.sceneLayer)
	a.debugLayer = &DebugLayer{app: a}
	e.PushLayer(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if a.watcher != nil {
		a.watcher.Poll()
	}
	spin := float32(dt) * 45
	if a.pivot != nil {
		a.pivot.Rotate(spin, mgl32.Vec3{0, 1, 0})
	}
	if a.orbiter != nil {
		a.orbiter.Rotate(spin*2, mgl32.Vec3{1, 0, 0})
	}
	a.scene.Update()
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.renderer.Render(a.scene, a.camera)
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch v := ev.(type) {
	case core.EventResize:
		a.renderer.Resize(v.W, v.H)
		a.camera.SetAspect(float32(v.W) / float32(max(v.H, 1)))
	case core.EventKey:
		if !v.Down {
			return
		}
		switch v.Key {
		case core.KeyB:
			a.renderer.SetBloom(!a.cfg.Renderer.BloomEnabled)
			a.cfg.Renderer.BloomEnabled = !a.cfg.Renderer.BloomEnabled
		case core.KeyL:
			a.scene.SetShadowsEnabled(!a.scene.ShadowsEnabled())
		case core.KeyT:
			a.renderer.SetRenderMode((a.renderer.RenderMode() + 1) % 3)
		case core.Key1:
			a.renderer.SetToneMapping(renderer.ToneMapNone)
		case core.Key2:
			a.renderer.SetToneMapping(renderer.ToneMapReinhard)
		case core.Key3:
			a.renderer.SetToneMapping(renderer.ToneMapACES)
		}
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.watcher != nil {
		a.watcher.Close()
	}
}

func applyRendererConfig(r *renderer.Renderer, cfg core.Config) {
	rc := cfg.Renderer
	r.SetClearColor(mgl32.Vec4{cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], cfg.ClearColor[3]})
	r.SetBloom(rc.BloomEnabled)
	r.SetBloomThreshold(rc.BloomThreshold)
	r.SetBloomIntensity(rc.BloomIntensity)
	r.SetExposure(rc.Exposure)
	r.SetGamma(rc.Gamma)
	switch rc.ToneMap {
	case "none":
		r.SetToneMapping(renderer.ToneMapNone)
	case "reinhard":
		r.SetToneMapping(renderer.ToneMapReinhard)
	default:
		r.SetToneMapping(renderer.ToneMapACES)
	}
}

func main() {
	cfg, err := core.LoadConfig("sandbox.toml")
	if err != nil {
		core.LogError("%v", err)
		os.Exit(1)
	}
	cfg.Title = "LMGL Sandbox"
	profiler.SetEnabled(true)

	app := &App{cfg: cfg}
	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	if err := core.Run(app, cfg, newWindow); err != nil {
		core.LogError("%v", err)
		os.Exit(1)
	}
}
