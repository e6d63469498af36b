package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3Near(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Y(), got.Y(), 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Z(), got.Z(), 1e-4, msgAndArgs...)
}

func TestNodeDefaults(t *testing.T) {
	n := NewNode("thing")
	assert.Equal(t, "thing", n.Name())
	assert.Equal(t, mgl32.Vec3{}, n.Position())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, n.Scale())
	assert.Equal(t, mgl32.Ident4(), n.LocalTransform())
	assert.NotEqual(t, NewNode("other").ID(), n.ID())
}

// a chain of translated nodes accumulates the sum of the offsets
func TestTransformChainAccumulatesTranslation(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	root.AddChild(a)
	a.AddChild(b)
	b.AddChild(c)

	a.SetPosition(mgl32.Vec3{1, 0, 0})
	b.SetPosition(mgl32.Vec3{0, 2, 0})
	c.SetPosition(mgl32.Vec3{0, 0, 3})
	root.UpdateTransform(mgl32.Ident4())

	assertVec3Near(t, mgl32.Vec3{1, 2, 3}, c.WorldPosition())
}

func TestParentScalePropagates(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	parent.SetUniformScale(2)
	child.SetPosition(mgl32.Vec3{1, 0, 0})
	parent.UpdateTransform(mgl32.Ident4())

	assertVec3Near(t, mgl32.Vec3{2, 0, 0}, child.WorldPosition())
}

func TestRotationComposes(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	parent.SetEulerAngles(mgl32.Vec3{0, 90, 0})
	child.SetPosition(mgl32.Vec3{1, 0, 0})
	parent.UpdateTransform(mgl32.Ident4())

	// +X rotated 90° about Y lands on -Z
	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, child.WorldPosition())
}

func TestEulerAnglesRoundTrip(t *testing.T) {
	n := NewNode("n")
	n.SetEulerAngles(mgl32.Vec3{30, 45, 60})

	got := n.EulerAngles()
	assert.InDelta(t, 30, got.X(), 1e-3)
	assert.InDelta(t, 45, got.Y(), 1e-3)
	assert.InDelta(t, 60, got.Z(), 1e-3)
}

func TestRotateIsWorldSpacePreMultiply(t *testing.T) {
	n := NewNode("n")
	n.SetEulerAngles(mgl32.Vec3{90, 0, 0})
	n.Rotate(90, mgl32.Vec3{0, 1, 0})

	// applying the delta in world space: local +Z first goes to -Y (X
	// rotation), which the Y rotation leaves in place
	p := n.LocalTransform().Mul4x1(mgl32.Vec4{0, 0, 1, 1}).Vec3()
	assertVec3Near(t, mgl32.Vec3{0, -1, 0}, p)
}

func TestAddChildReparents(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	child := NewNode("child")

	a.AddChild(child)
	require.Len(t, a.Children(), 1)
	require.Same(t, a, child.Parent())

	b.AddChild(child)
	assert.Empty(t, a.Children(), "old parent must forget the child")
	assert.Len(t, b.Children(), 1)
	assert.Same(t, b, child.Parent())
}

func TestAddChildRefreshesWorldImmediately(t *testing.T) {
	parent := NewNode("parent")
	parent.SetPosition(mgl32.Vec3{5, 0, 0})
	parent.UpdateTransform(mgl32.Ident4())

	child := NewNode("child")
	child.SetPosition(mgl32.Vec3{1, 0, 0})
	parent.AddChild(child)

	// no explicit scene update needed after attach
	assertVec3Near(t, mgl32.Vec3{6, 0, 0}, child.WorldPosition())
}

func TestRemoveChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	other := NewNode("other")
	parent.AddChild(child)

	parent.RemoveChild(other) // not a child: no-op
	assert.Len(t, parent.Children(), 1)

	parent.RemoveChild(child)
	assert.Empty(t, parent.Children())
	assert.Nil(t, child.Parent())
}

func TestNilNodeOperationsAreSafe(t *testing.T) {
	var n *Node
	assert.NotPanics(t, func() {
		n.AddChild(NewNode("x"))
		n.RemoveChild(nil)
		n.DetachFromParent()
		n.UpdateTransform(mgl32.Ident4())
		_ = n.Find("x")
	})

	parent := NewNode("parent")
	assert.NotPanics(t, func() {
		parent.AddChild(nil)
		parent.RemoveChild(nil)
	})
	assert.Empty(t, parent.Children())
}

func TestLookAt(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(mgl32.Vec3{0, 0, 5})
	n.LookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	forward := n.Rotation().Rotate(mgl32.Vec3{0, 0, -1})
	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, forward)
}

func TestLookAtDegenerateUp(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(mgl32.Vec3{0, 5, 0})

	// looking straight down with up parallel to the view direction
	assert.NotPanics(t, func() {
		n.LookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	})
	forward := n.Rotation().Rotate(mgl32.Vec3{0, 0, -1})
	assertVec3Near(t, mgl32.Vec3{0, -1, 0}, forward)
}

func TestLookAtAtTargetIsNoOp(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(mgl32.Vec3{1, 2, 3})
	before := n.Rotation()
	n.LookAt(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, before, n.Rotation())
}

func TestFind(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	assert.Same(t, leaf, root.Find("leaf"))
	assert.Same(t, root, root.Find("root"))
	assert.Nil(t, root.Find("missing"))
}

func TestReparentingKeepsLocalTransform(t *testing.T) {
	a := NewNode("a")
	a.SetPosition(mgl32.Vec3{10, 0, 0})
	b := NewNode("b")
	b.SetPosition(mgl32.Vec3{0, 10, 0})
	child := NewNode("child")
	child.SetPosition(mgl32.Vec3{1, 1, 1})

	a.AddChild(child)
	a.UpdateTransform(mgl32.Ident4())
	assertVec3Near(t, mgl32.Vec3{11, 1, 1}, child.WorldPosition())

	b.AddChild(child)
	b.UpdateTransform(mgl32.Ident4())
	assertVec3Near(t, mgl32.Vec3{1, 11, 1}, child.WorldPosition())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, child.Position())
}
