package core

import (
	"runtime"
	"time"
)

// Run wires the platform window and executes the main loop. The app owns
// its renderer; window/GL context setup happens inside newWindow.
func Run(app App, cfg Config, newWindow func(Config) (Window, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	SetLogLevel(cfg.LogLevel)

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	eng := &Engine{Window: win, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		if !eng.Layers.Dispatch(eng, ev) {
			app.OnEvent(eng, ev)
		}
	})

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		// Run fixed updates
		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.Update(eng, dt)
			accum -= tick
			steps++
		}
		// Interpolation factor for rendering
		alpha := float64(accum) / float64(tick)

		app.OnRender(eng, alpha)
		eng.Layers.Render(eng, alpha)

		// Present
		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	LogInfo("engine exit")
	return nil
}
