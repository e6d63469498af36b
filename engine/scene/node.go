package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Node is one element of the scene graph. It holds a local TRS transform,
// an optional mesh/light/LOD payload and an ordered child list. World
// transforms become valid only after UpdateTransform runs, directly or via
// an ancestor (normally through Scene.Update).
type Node struct {
	id   uuid.UUID
	name string

	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3

	local mgl32.Mat4
	world mgl32.Mat4

	parent   *Node
	children []*Node

	mesh  *Mesh
	light *Light
	lod   *LOD
}

// NewNode creates a detached node at the origin with identity rotation and
// unit scale.
func NewNode(name string) *Node {
	n := &Node{
		id:       uuid.New(),
		name:     name,
		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},
		world:    mgl32.Ident4(),
	}
	n.updateLocalTransform()
	return n
}

func (n *Node) ID() uuid.UUID { return n.id }

func (n *Node) Name() string        { return n.name }
func (n *Node) SetName(name string) { n.name = name }

// SetPosition moves the node and recomputes its local transform.
func (n *Node) SetPosition(p mgl32.Vec3) {
	n.position = p
	n.updateLocalTransform()
}

func (n *Node) Position() mgl32.Vec3 { return n.position }

// SetRotation replaces the rotation quaternion.
func (n *Node) SetRotation(q mgl32.Quat) {
	n.rotation = q
	n.updateLocalTransform()
}

func (n *Node) Rotation() mgl32.Quat { return n.rotation }

// SetEulerAngles sets the rotation from XYZ Euler angles in degrees.
func (n *Node) SetEulerAngles(deg mgl32.Vec3) {
	n.rotation = mgl32.AnglesToQuat(
		mgl32.DegToRad(deg.X()),
		mgl32.DegToRad(deg.Y()),
		mgl32.DegToRad(deg.Z()),
		mgl32.XYZ,
	)
	n.updateLocalTransform()
}

// EulerAngles returns the rotation as XYZ Euler angles in degrees. At
// gimbal lock (pitch near ±90°) the Z angle folds into X.
func (n *Node) EulerAngles() mgl32.Vec3 {
	m := n.rotation.Mat4()
	sy := mgl32.Clamp(m.At(0, 2), -1, 1)
	y := math32.Asin(sy)
	var x, z float32
	if math32.Abs(sy) < 0.9999 {
		x = math32.Atan2(-m.At(1, 2), m.At(2, 2))
		z = math32.Atan2(-m.At(0, 1), m.At(0, 0))
	} else {
		x = math32.Atan2(m.At(2, 1), m.At(1, 1))
	}
	return mgl32.Vec3{mgl32.RadToDeg(x), mgl32.RadToDeg(y), mgl32.RadToDeg(z)}
}

// SetScale sets a per-axis scale.
func (n *Node) SetScale(s mgl32.Vec3) {
	n.scale = s
	n.updateLocalTransform()
}

// SetUniformScale sets the same scale on all three axes.
func (n *Node) SetUniformScale(s float32) {
	n.SetScale(mgl32.Vec3{s, s, s})
}

func (n *Node) Scale() mgl32.Vec3 { return n.scale }

// Rotate applies an angle-axis delta in world space: the delta quaternion
// pre-multiplies the current rotation. Angle is in degrees.
func (n *Node) Rotate(angleDeg float32, axis mgl32.Vec3) {
	delta := mgl32.QuatRotate(mgl32.DegToRad(angleDeg), axis.Normalize())
	n.rotation = delta.Mul(n.rotation)
	n.updateLocalTransform()
}

// LookAt orients the node so its forward (-Z) axis points at target. When
// the view direction is parallel to up, a substitute up axis is used so
// the rotation stays well defined.
func (n *Node) LookAt(target, up mgl32.Vec3) {
	dir := target.Sub(n.position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	u := up.Normalize()
	if math32.Abs(dir.Dot(u)) > 0.9995 {
		u = mgl32.Vec3{0, 0, 1}
		if math32.Abs(dir.Dot(u)) > 0.9995 {
			u = mgl32.Vec3{1, 0, 0}
		}
	}
	n.SetRotation(mgl32.QuatLookAtV(n.position, target, u))
}

// AddChild appends child to this node's child list, detaching it from any
// previous parent first. A node belongs to at most one parent. The child's
// world transform is refreshed immediately from this node's.
func (n *Node) AddChild(child *Node) {
	if n == nil || child == nil {
		return
	}
	child.DetachFromParent()
	child.parent = n
	n.children = append(n.children, child)
	child.UpdateTransform(n.world)
}

// RemoveChild removes child from the child list and clears its parent
// back-reference. No-op when child is nil or not a child of this node.
func (n *Node) RemoveChild(child *Node) {
	if n == nil || child == nil {
		return
	}
	for i, c := range n.children {
		if c == child {
			c.parent = nil
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// DetachFromParent removes the node from its parent's child list.
func (n *Node) DetachFromParent() {
	if n == nil || n.parent == nil {
		return
	}
	n.parent.RemoveChild(n)
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// UpdateTransform recomputes this node's world transform from the parent
// world transform and recurses into every child. This is the sole path by
// which world transforms become valid.
func (n *Node) UpdateTransform(parentWorld mgl32.Mat4) {
	if n == nil {
		return
	}
	n.world = parentWorld.Mul4(n.local)
	for _, c := range n.children {
		c.UpdateTransform(n.world)
	}
}

func (n *Node) LocalTransform() mgl32.Mat4 { return n.local }
func (n *Node) WorldTransform() mgl32.Mat4 { return n.world }

// WorldPosition returns the translation column of the world transform.
func (n *Node) WorldPosition() mgl32.Vec3 { return n.world.Col(3).Vec3() }

func (n *Node) SetMesh(m *Mesh) { n.mesh = m }
func (n *Node) Mesh() *Mesh     { return n.mesh }
func (n *Node) HasMesh() bool   { return n.mesh != nil }

func (n *Node) SetLight(l *Light) { n.light = l }
func (n *Node) Light() *Light     { return n.light }
func (n *Node) HasLight() bool    { return n.light != nil }

func (n *Node) SetLOD(l *LOD) { n.lod = l }
func (n *Node) LOD() *LOD     { return n.lod }

// Find returns the first descendant (depth-first, including this node)
// with the given name, or nil.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// local = T * R * S, recomputed eagerly on every setter.
func (n *Node) updateLocalTransform() {
	t := mgl32.Translate3D(n.position.X(), n.position.Y(), n.position.Z())
	r := n.rotation.Mat4()
	s := mgl32.Scale3D(n.scale.X(), n.scale.Y(), n.scale.Z())
	n.local = t.Mul4(r).Mul4(s)
}
