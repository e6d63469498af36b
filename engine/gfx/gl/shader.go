package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lmgl/lmgl/engine/gfx"
)

// Shader wraps a linked GL program. Uniform locations are cached; a
// missing uniform is warned about once and then silently skipped.
type Shader struct {
	name      string
	program   uint32
	locations map[string]int32
}

// CreateShader compiles a single-file GLSL source split into stages by
// "#type vertex" / "#type geometry" / "#type fragment" section markers.
// Compile/link failures are logged and returned; the caller may keep
// running with a nil shader.
func (d *Device) CreateShader(name, source string) (gfx.Shader, error) {
	stages, err := splitStages(source)
	if err != nil {
		logGLError("shader %q: %v", name, err)
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}

	var compiled []uint32
	for stage, src := range stages {
		sh, err := compileStage(stage, src)
		if err != nil {
			logGLError("shader %q: %v", name, err)
			for _, c := range compiled {
				gl.DeleteShader(c)
			}
			return nil, fmt.Errorf("shader %q: %w", name, err)
		}
		compiled = append(compiled, sh)
	}

	program := gl.CreateProgram()
	for _, sh := range compiled {
		gl.AttachShader(program, sh)
	}
	gl.LinkProgram(program)
	for _, sh := range compiled {
		gl.DeleteShader(sh)
	}

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		lg := programLog(program)
		gl.DeleteProgram(program)
		logGLError("shader %q link: %s", name, lg)
		return nil, fmt.Errorf("shader %q link: %s", name, lg)
	}

	return &Shader{name: name, program: program, locations: map[string]int32{}}, nil
}

func (s *Shader) Bind()   { gl.UseProgram(s.program) }
func (s *Shader) Unbind() { gl.UseProgram(0) }

func (s *Shader) ID() uint32 { return s.program }

func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	if loc == -1 {
		logGLError("shader %q: uniform %q not found", s.name, name)
	}
	s.locations[name] = loc
	return loc
}

func (s *Shader) SetInt(name string, v int32)     { gl.Uniform1i(s.location(name), v) }
func (s *Shader) SetFloat(name string, v float32) { gl.Uniform1f(s.location(name), v) }

func (s *Shader) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(s.location(name), v.X(), v.Y())
}

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(s.location(name), v.X(), v.Y(), v.Z())
}

func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(s.location(name), v.X(), v.Y(), v.Z(), v.W())
}

func (s *Shader) SetMat3(name string, v mgl32.Mat3) {
	gl.UniformMatrix3fv(s.location(name), 1, false, &v[0])
}

func (s *Shader) SetMat4(name string, v mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &v[0])
}

// splitStages cuts a combined GLSL file into its stage sources.
func splitStages(source string) (map[uint32]string, error) {
	stages := map[uint32]string{}
	var current uint32
	var sb *strings.Builder
	builders := map[uint32]*strings.Builder{}

	for _, line := range strings.SplitAfter(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#type") {
			switch strings.TrimSpace(strings.TrimPrefix(trimmed, "#type")) {
			case "vertex":
				current = gl.VERTEX_SHADER
			case "geometry":
				current = gl.GEOMETRY_SHADER
			case "fragment":
				current = gl.FRAGMENT_SHADER
			default:
				return nil, fmt.Errorf("unknown stage marker %q", trimmed)
			}
			sb = &strings.Builder{}
			builders[current] = sb
			continue
		}
		if sb != nil {
			sb.WriteString(line)
		}
	}
	if len(builders) < 2 {
		return nil, fmt.Errorf("need at least vertex and fragment sections, got %d", len(builders))
	}
	for stage, b := range builders {
		stages[stage] = b.String()
	}
	return stages, nil
}

func compileStage(stage uint32, src string) (uint32, error) {
	sh := gl.CreateShader(stage)
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		lg := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(sh, n, nil, gl.Str(lg))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("%s compile: %s", stageName(stage), strings.TrimRight(lg, "\x00"))
	}
	return sh, nil
}

func programLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	lg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(lg))
	return strings.TrimRight(lg, "\x00")
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}
