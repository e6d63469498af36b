package main

import (
	"time"

	"github.com/lmgl/lmgl/engine/core"
	"github.com/lmgl/lmgl/engine/profiler"
)

// DebugLayer logs renderer and profiler statistics once a second, and
// dumps them immediately when P is pressed.
type DebugLayer struct {
	app    *App
	last   time.Time
	frames int
}

func (l *DebugLayer) OnAttach(e *core.Engine) { l.last = time.Now() }
func (l *DebugLayer) OnDetach(e *core.Engine) {}

func (l *DebugLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *DebugLayer) OnRender(e *core.Engine, alpha float64) {
	l.frames++
	if time.Since(l.last) < time.Second {
		return
	}
	l.report()
	l.frames = 0
	l.last = time.Now()
}

func (l *DebugLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyP {
		l.report()
		return true
	}
	return false
}

func (l *DebugLayer) report() {
	stats := l.app.renderer.Stats()
	heap, gc := profiler.HeapStats()
	core.LogInfo("fps=%d draws=%d tris=%d submitted=%d culled=%d heap=%.1fMB gc=%d",
		l.frames, stats.DrawCalls, stats.Triangles, stats.Submitted, stats.Culled,
		float64(heap)/(1<<20), gc)
	for _, s := range profiler.Drain() {
		core.LogDebug("scope %-24s calls=%-6d avg=%s max=%s", s.Name, s.Calls, s.Average(), s.Max)
	}
}
