package compute

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/san-kum/heartbeat/internal/scene"
)

const pointVertexShader = `#version 330 core
layout(location = 0) in vec3 position;
uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform float pointSize;
uniform float viewportHeight;
void main() {
	vec4 eye = view * model * vec4(position, 1.0);
	gl_Position = projection * eye;
	gl_PointSize = max(1.0, pointSize * projection[1][1] * viewportHeight * 0.5 / -eye.z);
}
` + "\x00"

const pointFragmentShader = `#version 330 core
uniform vec4 tint;
out vec4 fragColor;
void main() {
	vec2 d = gl_PointCoord - vec2(0.5);
	float r = dot(d, d) * 4.0;
	if (r > 1.0) discard;
	fragColor = vec4(tint.rgb, tint.a * (1.0 - r));
}
` + "\x00"

// OpenGLBackend keeps each cloud in its own vertex buffer and draws it as
// GL_POINTS, so per-frame work is a handful of uniform writes.
type OpenGLBackend struct {
	Program     uint32
	VAO         map[string]uint32
	VBO         map[string]uint32
	Counts      map[string]int32
	Initialized bool
}

func NewOpenGLBackend() *OpenGLBackend {
	return &OpenGLBackend{
		VAO:    make(map[string]uint32),
		VBO:    make(map[string]uint32),
		Counts: make(map[string]int32),
	}
}

// Init loads GL entry points, compiles the point program and uploads clouds.
// It must run on the thread that owns the current GL context.
func (c *OpenGLBackend) Init(clouds map[string]scene.PointCloud) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to init opengl: %v", err)
	}

	program, err := createRenderProgram(pointVertexShader, pointFragmentShader)
	if err != nil {
		return err
	}
	c.Program = program

	for name, pc := range clouds {
		if pc.Len() == 0 {
			continue
		}
		var vao, vbo uint32
		gl.GenVertexArrays(1, &vao)
		gl.BindVertexArray(vao)

		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(pc)*4, gl.Ptr([]float32(pc)), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

		c.VAO[name], c.VBO[name], c.Counts[name] = vao, vbo, int32(pc.Len())
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	c.Initialized = true
	return nil
}

// Draw renders one shape with its frame values. view and projection are
// column-major camera matrices.
func (c *OpenGLBackend) Draw(name string, f scene.ShapeFrame, view, projection [16]float32, viewportHeight float32) {
	vao, ok := c.VAO[name]
	if !c.Initialized || !ok || !f.Visible {
		return
	}

	gl.UseProgram(c.Program)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	model := FromShape(f).Matrix()
	gl.UniformMatrix4fv(uniform(c.Program, "model"), 1, false, &model[0])
	gl.UniformMatrix4fv(uniform(c.Program, "view"), 1, false, &view[0])
	gl.UniformMatrix4fv(uniform(c.Program, "projection"), 1, false, &projection[0])
	gl.Uniform1f(uniform(c.Program, "pointSize"), float32(f.Size))
	gl.Uniform1f(uniform(c.Program, "viewportHeight"), viewportHeight)

	col := f.Color.Clamp()
	gl.Uniform4f(uniform(c.Program, "tint"), float32(col.R), float32(col.G), float32(col.B), float32(f.Opacity))

	gl.BindVertexArray(vao)
	gl.DrawArrays(gl.POINTS, 0, c.Counts[name])
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.UseProgram(0)
}

func (c *OpenGLBackend) Cleanup() {
	if !c.Initialized {
		return
	}
	for name := range c.VAO {
		vao, vbo := c.VAO[name], c.VBO[name]
		gl.DeleteBuffers(1, &vbo)
		gl.DeleteVertexArrays(1, &vao)
	}
	gl.DeleteProgram(c.Program)
	c.Initialized = false
}

func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}

func createRenderProgram(vertSource, fragSource string) (uint32, error) {
	vShader, err := compileShader(vertSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fShader, err := compileShader(fragSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vShader)
	gl.AttachShader(program, fShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("failed to link render program")
	}

	gl.DeleteShader(vShader)
	gl.DeleteShader(fShader)
	return program, nil
}

func (c *OpenGLBackend) Name() string    { return "opengl" }
func (c *OpenGLBackend) Available() bool { return c.Initialized }

// Transform runs on the host; the GPU path applies the same matrix in Draw.
func (c *OpenGLBackend) Transform(dst []float32, src scene.PointCloud, xf Transform) {
	transformRange(dst, src, xf, 0, src.Len())
}
