package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/emberline/progressbar/engine/core"
	"github.com/emberline/progressbar/engine/storage"
	"github.com/emberline/progressbar/progressbar"
)

// Storage buffer bindings consumed by the bar fragment shader.
const (
	bindingSectionColors = 2
	bindingSectionStarts = 3
)

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls int
	BarCount  int
}

// RendererGL implements core.Renderer plus the progressbar.Renderer drawing
// surface on OpenGL 4.3 core.
type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32
	ssbo    [2]uint32

	locEmptyColor int32
	locProgress   int32
	locCount      int32
	locRect       int32

	fbW, fbH int
	stats    Statistics
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	return nil
}

// CompileBarPipeline builds the bar program from the registered fragment
// source and sets up the unit quad + storage buffers it draws with.
func (r *RendererGL) CompileBarPipeline(fragmentSrc string) error {
	prog, err := makeProgram(vertexSource, nullTerminate(fragmentSrc))
	if err != nil {
		return err
	}
	r.program = prog

	// Unit quad [0,1]^2, two triangles
	verts := []float32{
		0, 0,
		1, 0,
		1, 1,
		0, 0,
		1, 1,
		0, 1,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, unsafe.Pointer(uintptr(0)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenBuffers(2, &r.ssbo[0])

	r.locEmptyColor = gl.GetUniformLocation(prog, gl.Str("uEmptyColor\x00"))
	r.locProgress = gl.GetUniformLocation(prog, gl.Str("uProgress\x00"))
	r.locCount = gl.GetUniformLocation(prog, gl.Str("uSectionCount\x00"))
	r.locRect = gl.GetUniformLocation(prog, gl.Str("uRect\x00"))
	return nil
}

// DrawBar uploads mat's buffers and uniforms and draws one bar quad. rect is
// (x, y, w, h) in framebuffer pixels, y down from the top-left. A material
// whose buffers do not resolve draws with zero sections (empty color only).
func (r *RendererGL) DrawBar(mat *progressbar.Material, bufs *storage.Buffers, rect [4]float32) {
	if r.program == 0 || r.fbW < 1 || r.fbH < 1 {
		return
	}

	count := mat.SectionCount
	colorBuf, okC := bufs.Get(mat.SectionColors)
	startBuf, okS := bufs.Get(mat.SectionStarts)
	if !okC || !okS {
		count = 0
	}

	gl.UseProgram(r.program)

	uploadStorage(r.ssbo[0], bindingSectionColors, colorBuf.Data)
	uploadStorage(r.ssbo[1], bindingSectionStarts, startBuf.Data)

	gl.Uniform4f(r.locEmptyColor, mat.EmptyColor[0], mat.EmptyColor[1], mat.EmptyColor[2], mat.EmptyColor[3])
	gl.Uniform1f(r.locProgress, mat.Progress)
	gl.Uniform1ui(r.locCount, count)

	// Pixel rect -> NDC (origin bottom-left in GL)
	w, h := float32(r.fbW), float32(r.fbH)
	gl.Uniform4f(r.locRect,
		2*rect[0]/w-1,
		1-2*(rect[1]+rect[3])/h,
		2*rect[2]/w,
		2*rect[3]/h,
	)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	r.stats.DrawCalls++
	r.stats.BarCount++
}

// Stats returns the counts since the last Clear.
func (r *RendererGL) Stats() Statistics { return r.stats }

func uploadStorage(buf uint32, binding uint32, data []byte) {
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, buf)
	if len(data) > 0 {
		gl.BufferData(gl.SHADER_STORAGE_BUFFER, len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.SHADER_STORAGE_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	}
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, binding, buf)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, 0)
}

func (r *RendererGL) Shutdown() {
	if r.ssbo[0] != 0 {
		gl.DeleteBuffers(2, &r.ssbo[0])
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	r.fbW, r.fbH = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	r.stats = Statistics{}
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// --- Shader utilities ---

const vertexSource = `
#version 430 core
layout(location=0) in vec2 aPos;
uniform vec4 uRect; // x, y, w, h in NDC
out vec2 vUV;
void main() {
    vUV = aPos;
    vec2 p = uRect.xy + aPos * uRect.zw;
    gl_Position = vec4(p, 0.0, 1.0);
}
` + "\x00"

func nullTerminate(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
