// Package renderer draws procedural item meshes with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hoverkit/internal/engine/mesh"
	"github.com/Faultbox/hoverkit/internal/engine/shader"
	"github.com/Faultbox/hoverkit/internal/logger"
	"github.com/Faultbox/hoverkit/pkg/math"
)

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec2 vUV;

void main() {
	vUV = aUV;
	gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
}
`

const fragmentShader = `
#version 410 core

in vec2 vUV;
out vec4 FragColor;

uniform vec4 uColor;

void main() {
	FragColor = uColor;
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Stats counts the work done in the last frame.
type Stats struct {
	Draws     int
	Triangles int
}

// Renderer draws meshes with a flat color. All meshes stream through a
// single dynamic VAO since they are rebuilt every frame anyway.
type Renderer struct {
	config  Config
	program *shader.Program

	vao, vbo, ebo uint32
	scratch       []float32

	viewProj math.Mat4
	stats    Stats
	log      *zap.Logger
}

// New creates a renderer. It must be called after the OpenGL context
// exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		viewProj: math.Identity(),
		log:      logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = shader.Compile(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.createBuffers()
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(mesh.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.log.Debug("mesh buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
		zap.Uint32("ebo", r.ebo),
	)
}

// SetClearColor sets the background color.
func (r *Renderer) SetClearColor(c [4]float32) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

// Close frees GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize sets the viewport to the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the frame and sets the camera matrix for the draws that
// follow.
func (r *Renderer) Begin(viewProj math.Mat4) {
	r.viewProj = viewProj
	r.stats = Stats{}
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	r.program.SetMat4("uViewProj", r.viewProj)
	gl.BindVertexArray(r.vao)
}

// End finishes the frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// DrawMesh draws m with the model transform and a straight-alpha RGBA
// color. Empty meshes and fully transparent colors are skipped.
func (r *Renderer) DrawMesh(m *mesh.Mesh, model math.Mat4, color [4]float32) {
	if m.IsEmpty() || color[3] <= 0 {
		return
	}

	r.scratch = m.AppendInterleaved(r.scratch[:0])
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.scratch)*4, unsafe.Pointer(&r.scratch[0]), gl.STREAM_DRAW)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STREAM_DRAW)

	r.program.SetMat4("uModel", model)
	r.program.SetVec4("uColor", color)

	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(m.Indices)), gl.UNSIGNED_INT, 0)

	r.stats.Draws++
	r.stats.Triangles += m.TriangleCount()
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}

// Stats returns the counters for the current frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}
