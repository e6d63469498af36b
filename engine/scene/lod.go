package scene

import "github.com/go-gl/mathgl/mgl32"

// LODLevel pairs a mesh with the maximum squared distance at which it is
// used. Distances are kept squared to avoid square roots in selection.
type LODLevel struct {
	Mesh          *Mesh
	MaxDistanceSq float32
}

// LOD manages discrete detail levels for an object. Levels should be added
// in order of increasing distance; beyond the last threshold the coarsest
// level stays selected.
type LOD struct {
	levels []LODLevel
}

// AddLevel appends a level usable up to maxDistance. Nil meshes are ignored.
func (l *LOD) AddLevel(mesh *Mesh, maxDistance float32) {
	if mesh == nil {
		return
	}
	l.levels = append(l.levels, LODLevel{Mesh: mesh, MaxDistanceSq: maxDistance * maxDistance})
}

// MeshAt selects the level for a squared distance.
func (l *LOD) MeshAt(distanceSq float32) *Mesh {
	if len(l.levels) == 0 {
		return nil
	}
	for _, lvl := range l.levels {
		if distanceSq <= lvl.MaxDistanceSq {
			return lvl.Mesh
		}
	}
	return l.levels[len(l.levels)-1].Mesh
}

// MeshFor selects the level for the camera/object pair.
func (l *LOD) MeshFor(cameraPos, objectPos mgl32.Vec3) *Mesh {
	diff := cameraPos.Sub(objectPos)
	return l.MeshAt(diff.Dot(diff))
}

func (l *LOD) LevelCount() int { return len(l.levels) }

func (l *LOD) Level(i int) LODLevel { return l.levels[i] }

func (l *LOD) HasLevels() bool { return len(l.levels) > 0 }

func (l *LOD) Clear() { l.levels = l.levels[:0] }
