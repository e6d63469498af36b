package renderer

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lmgl/lmgl/engine/scene"
)

// RenderLayer buckets draw order: lower layers draw first.
type RenderLayer int

const (
	LayerBackground RenderLayer = iota
	LayerOpaque
	LayerTransparent
	LayerOverlay
)

// RenderItem is one culled draw, rebuilt every frame. The transform is the
// renderer's own frame-scoped composition, not the node's cached world
// matrix. The camera distance is kept squared; sorting only needs the
// ordering.
type RenderItem struct {
	Mesh               *scene.Mesh
	Transform          mgl32.Mat4
	DistanceSqToCamera float32
	Layer              RenderLayer
	Transparent        bool
}

// sortRenderQueue orders items by: layer, then shader identity, then
// material identity, then camera distance: front-to-back for opaque
// items (early-z) and back-to-front for transparent ones (blend order).
func sortRenderQueue(items []RenderItem) {
	sort.Slice(items, func(i, j int) bool {
		a, b := &items[i], &items[j]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		sa, sb := shaderID(a.Mesh), shaderID(b.Mesh)
		if sa != sb {
			return sa < sb
		}
		ma, mb := materialID(a.Mesh), materialID(b.Mesh)
		if ma != mb {
			return ma < mb
		}
		if a.Transparent {
			return a.DistanceSqToCamera > b.DistanceSqToCamera
		}
		return a.DistanceSqToCamera < b.DistanceSqToCamera
	})
}

func shaderID(m *scene.Mesh) uint32 {
	if m == nil || m.Shader() == nil {
		return 0
	}
	return m.Shader().ID()
}

func materialID(m *scene.Mesh) uint64 {
	if m == nil || m.Material() == nil {
		return 0
	}
	return m.Material().ID()
}

// Stats captures the counters generated during a renderer frame.
type Stats struct {
	DrawCalls int
	Triangles int
	Submitted int // queue items after culling
	Culled    int // meshes rejected by the frustum
}
