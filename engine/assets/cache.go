package assets

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lmgl/lmgl/engine/gfx"
)

// ResourceCache loads and deduplicates GPU resources from an asset root
// laid out as <root>/shaders and <root>/textures. It is handed to whatever
// needs assets instead of living as package state, so two windows or a
// test can each own one.
type ResourceCache struct {
	device gfx.Device
	root   string

	mu       sync.Mutex
	shaders  map[string]*reloadableShader
	textures map[string]gfx.Texture
	cubemaps map[string]gfx.Cubemap
}

func NewResourceCache(device gfx.Device, root string) *ResourceCache {
	return &ResourceCache{
		device:   device,
		root:     root,
		shaders:  map[string]*reloadableShader{},
		textures: map[string]gfx.Texture{},
		cubemaps: map[string]gfx.Cubemap{},
	}
}

// ShaderDir returns the directory shaders are loaded from.
func (c *ResourceCache) ShaderDir() string { return filepath.Join(c.root, "shaders") }

// Shader compiles <root>/shaders/<name> on first use and returns the
// cached result after. The returned shader stays valid across hot
// reloads: ReloadShader swaps the program underneath it.
func (c *ResourceCache) Shader(name string) (gfx.Shader, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.shaders[name]; ok {
		return s, nil
	}
	compiled, err := c.compile(name)
	if err != nil {
		return nil, err
	}
	rs := &reloadableShader{}
	rs.current.Store(compiled)
	c.shaders[name] = rs
	return rs, nil
}

// ReloadShader recompiles a previously loaded shader from disk. On
// compile failure the old program keeps running. Must be called on the
// thread owning the GL context.
func (c *ResourceCache) ReloadShader(name string) error {
	c.mu.Lock()
	rs, ok := c.shaders[name]
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("shader %q not loaded", name)
	}
	compiled, err := c.compile(name)
	if err != nil {
		return err
	}
	rs.current.Store(compiled)
	return nil
}

func (c *ResourceCache) compile(name string) (gfx.Shader, error) {
	src, err := LoadShaderSource(filepath.Join(c.ShaderDir(), name))
	if err != nil {
		return nil, err
	}
	return c.device.CreateShader(name, src)
}

// Texture loads <root>/textures/<name> as an RGBA8 texture on first use.
func (c *ResourceCache) Texture(name string) (gfx.Texture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.textures[name]; ok {
		return t, nil
	}
	w, h, pixels, err := LoadPNG(filepath.Join(c.root, "textures", name))
	if err != nil {
		return nil, err
	}
	t, err := c.device.CreateTexture(gfx.TextureDesc{
		Width:  w,
		Height: h,
		Format: gfx.TextureRGBA8,
		Pixels: pixels,
	})
	if err != nil {
		return nil, err
	}
	c.textures[name] = t
	return t, nil
}

// Cubemap loads six face textures (+X -X +Y -Y +Z -Z) under
// <root>/textures and caches the result under the given name. All faces
// must be square and the same size.
func (c *ResourceCache) Cubemap(name string, faces [6]string) (gfx.Cubemap, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cm, ok := c.cubemaps[name]; ok {
		return cm, nil
	}
	var desc gfx.CubemapDesc
	for i, face := range faces {
		w, h, pixels, err := LoadPNG(filepath.Join(c.root, "textures", face))
		if err != nil {
			return nil, err
		}
		if w != h {
			return nil, fmt.Errorf("cubemap face %q is %dx%d, want square", face, w, h)
		}
		if i == 0 {
			desc.Size = w
		} else if w != desc.Size {
			return nil, fmt.Errorf("cubemap face %q size %d, want %d", face, w, desc.Size)
		}
		desc.Faces[i] = pixels
	}
	cm, err := c.device.CreateCubemap(desc)
	if err != nil {
		return nil, err
	}
	c.cubemaps[name] = cm
	return cm, nil
}

// SolidTexture creates a 1x1 texture of the given color, cached by color.
func (c *ResourceCache) SolidTexture(color mgl32.Vec4) (gfx.Texture, error) {
	key := fmt.Sprintf("solid:%v", color)
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.textures[key]; ok {
		return t, nil
	}
	pixels := []byte{
		byte(mgl32.Clamp(color.X(), 0, 1) * 255),
		byte(mgl32.Clamp(color.Y(), 0, 1) * 255),
		byte(mgl32.Clamp(color.Z(), 0, 1) * 255),
		byte(mgl32.Clamp(color.W(), 0, 1) * 255),
	}
	t, err := c.device.CreateTexture(gfx.TextureDesc{
		Width:  1,
		Height: 1,
		Format: gfx.TextureRGBA8,
		Pixels: pixels,
	})
	if err != nil {
		return nil, err
	}
	c.textures[key] = t
	return t, nil
}

// reloadableShader is the stable handle the cache returns: meshes keep
// it forever while reloads swap the compiled program it forwards to.
type reloadableShader struct {
	current atomic.Value // gfx.Shader
}

func (r *reloadableShader) live() gfx.Shader { return r.current.Load().(gfx.Shader) }

func (r *reloadableShader) Bind()      { r.live().Bind() }
func (r *reloadableShader) Unbind()    { r.live().Unbind() }
func (r *reloadableShader) ID() uint32 { return r.live().ID() }

func (r *reloadableShader) SetInt(name string, v int32)       { r.live().SetInt(name, v) }
func (r *reloadableShader) SetFloat(name string, v float32)   { r.live().SetFloat(name, v) }
func (r *reloadableShader) SetVec2(name string, v mgl32.Vec2) { r.live().SetVec2(name, v) }
func (r *reloadableShader) SetVec3(name string, v mgl32.Vec3) { r.live().SetVec3(name, v) }
func (r *reloadableShader) SetVec4(name string, v mgl32.Vec4) { r.live().SetVec4(name, v) }
func (r *reloadableShader) SetMat3(name string, v mgl32.Mat3) { r.live().SetMat3(name, v) }
func (r *reloadableShader) SetMat4(name string, v mgl32.Mat4) { r.live().SetMat4(name, v) }
