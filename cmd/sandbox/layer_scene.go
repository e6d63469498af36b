package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lmgl/lmgl/engine/core"
)

// SceneLayer drives an orbit camera around the scene center: arrow keys
// rotate, W/S (or the scroll wheel) zoom.
type SceneLayer struct {
	app *App

	yaw      float32 // radians around Y
	pitch    float32
	distance float32
}

func (l *SceneLayer) OnAttach(e *core.Engine) {
	l.yaw = math32.Pi / 2
	l.pitch = 0.35
	l.distance = 11
}

func (l *SceneLayer) OnDetach(e *core.Engine) {}

func (l *SceneLayer) OnUpdate(e *core.Engine, dt float64) {
	const rotSpeed = 1.6
	const zoomSpeed = 8.0
	step := float32(dt)

	if e.Input.IsKeyDown(core.KeyLeft) {
		l.yaw -= rotSpeed * step
	}
	if e.Input.IsKeyDown(core.KeyRight) {
		l.yaw += rotSpeed * step
	}
	if e.Input.IsKeyDown(core.KeyUp) {
		l.pitch += rotSpeed * step
	}
	if e.Input.IsKeyDown(core.KeyDown) {
		l.pitch -= rotSpeed * step
	}
	if e.Input.IsKeyDown(core.KeyW) {
		l.distance -= zoomSpeed * step
	}
	if e.Input.IsKeyDown(core.KeyS) {
		l.distance += zoomSpeed * step
	}
	l.distance -= float32(e.Input.ConsumeScroll())

	l.pitch = mgl32.Clamp(l.pitch, -1.4, 1.4)
	l.distance = mgl32.Clamp(l.distance, 2, 60)

	target := mgl32.Vec3{0, 1, 0}
	offset := mgl32.Vec3{
		math32.Cos(l.pitch) * math32.Cos(l.yaw),
		math32.Sin(l.pitch),
		math32.Cos(l.pitch) * math32.Sin(l.yaw),
	}.Mul(l.distance)
	l.app.camera.SetPosition(target.Add(offset))
	l.app.camera.SetTarget(target)
}

func (l *SceneLayer) OnRender(e *core.Engine, alpha float64) {}

func (l *SceneLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }
