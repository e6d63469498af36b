package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	body := `
title = "demo"
width = 1920

[renderer]
bloom = false
tone_map = "reinhard"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 1920, cfg.Width)
	assert.False(t, cfg.Renderer.BloomEnabled)
	assert.Equal(t, "reinhard", cfg.Renderer.ToneMap)

	// untouched fields keep defaults
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, 2048, cfg.Renderer.ShadowResolution)
	assert.InDelta(t, 2.2, cfg.Renderer.Gamma, 1e-6)
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = ["), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestInputTracksState(t *testing.T) {
	in := NewInput()

	in.Handle(EventKey{Key: KeyW, Down: true})
	assert.True(t, in.IsKeyDown(KeyW))
	in.Handle(EventKey{Key: KeyW, Down: false})
	assert.False(t, in.IsKeyDown(KeyW))

	in.Handle(EventMouseMove{X: 10, Y: 20})
	x, y := in.Mouse()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)

	in.Handle(EventScroll{Yoff: 1.5})
	in.Handle(EventScroll{Yoff: 0.5})
	assert.Equal(t, 2.0, in.ConsumeScroll())
	assert.Zero(t, in.ConsumeScroll())
}

func TestLayerStackUpdateRunsBottomUp(t *testing.T) {
	e := &Engine{}
	var ls LayerStack
	_, ok := ls.Pop()
	assert.False(t, ok)

	var log []string
	ls.Push(&orderedLayer{name: "bottom", log: &log})
	ls.Push(&orderedLayer{name: "top", log: &log})
	require.Equal(t, 2, ls.Len())

	ls.Update(e, 1.0/60)
	assert.Equal(t, []string{"bottom", "top"}, log)

	log = nil
	ls.Render(e, 0.5)
	assert.Equal(t, []string{"bottom", "top"}, log)
}

func TestLayerStackDispatchStopsAtConsumer(t *testing.T) {
	e := &Engine{}
	var ls LayerStack
	bottom := &recordingLayer{}
	top := &recordingLayer{handles: true}
	ls.Push(bottom)
	ls.Push(top)

	assert.True(t, ls.Dispatch(e, EventCloseRequested{}))
	assert.Equal(t, 1, top.events)
	assert.Zero(t, bottom.events, "consumed events never reach lower layers")

	top.handles = false
	assert.False(t, ls.Dispatch(e, EventCloseRequested{}))
	assert.Equal(t, 1, bottom.events)
}

func TestEnginePushLayerFiresHooks(t *testing.T) {
	e := &Engine{}
	l := &recordingLayer{}

	e.PushLayer(l)
	assert.Equal(t, 1, l.attached)

	assert.True(t, e.PopLayer())
	assert.Equal(t, 1, l.detached)
	assert.False(t, e.PopLayer())
}

type recordingLayer struct {
	handles  bool
	attached int
	detached int
	events   int
}

func (l *recordingLayer) OnAttach(e *Engine)                { l.attached++ }
func (l *recordingLayer) OnDetach(e *Engine)                { l.detached++ }
func (l *recordingLayer) OnUpdate(e *Engine, dt float64)    {}
func (l *recordingLayer) OnRender(e *Engine, alpha float64) {}
func (l *recordingLayer) OnEvent(e *Engine, ev Event) bool {
	l.events++
	return l.handles
}

type orderedLayer struct {
	recordingLayer
	name string
	log  *[]string
}

func (l *orderedLayer) OnUpdate(e *Engine, dt float64)    { *l.log = append(*l.log, l.name) }
func (l *orderedLayer) OnRender(e *Engine, alpha float64) { *l.log = append(*l.log, l.name) }
