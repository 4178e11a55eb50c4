package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/devices/display"
)

// Renderer draws the framebuffer as a single full-window texture.
type Renderer struct {
	pixels      [display.Width * display.Height]byte
	foreground  [3]float32
	background  [3]float32
	shader      uint32
	vao         uint32
	vbo         uint32
	tex         uint32
	initialized bool
}

// NewRenderer creates a renderer with the given pixel colors.
func NewRenderer(foreground, background [3]float32) *Renderer {
	return &Renderer{
		foreground: foreground,
		background: background,
	}
}

// Init creates the GL resources. It requires a current GL context.
func (r *Renderer) Init() error {
	var err error

	r.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return errors.Wrapf(err, "failed to compile shaders")
	}

	gl.UseProgram(r.shader)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(r.shader, glStr("vertPos")))
	texCoordAttrib := uint32(gl.GetAttribLocation(r.shader, glStr("vertTexCoord")))

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(texCoordAttrib)
	gl.VertexAttribPointer(texCoordAttrib, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))

	gl.Uniform1i(gl.GetUniformLocation(r.shader, glStr("cells")), 0)
	gl.Uniform3fv(gl.GetUniformLocation(r.shader, glStr("foreground")), 1, &r.foreground[0])
	gl.Uniform3fv(gl.GetUniformLocation(r.shader, glStr("background")), 1, &r.background[0])

	r.tex = makeTexture()
	uploadTexture(r.tex, display.Width, display.Height, r.pixels[:])
	r.initialized = true
	return nil
}

// Upload copies the framebuffer contents to the texture.
func (r *Renderer) Upload(b *display.Buffer) {
	if !r.initialized {
		return
	}

	for i, v := range b.Pixels() {
		r.pixels[i] = v * 0xff
	}

	uploadTexture(r.tex, display.Width, display.Height, r.pixels[:])
}

// Draw renders the display contents.
func (r *Renderer) Draw() {
	if !r.initialized {
		return
	}

	gl.UseProgram(r.shader)
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// Dispose clears up GL resources.
func (r *Renderer) Dispose() {
	if !r.initialized {
		return
	}

	r.initialized = false
	gl.DeleteTextures(1, &r.tex)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.shader)
}

var quadVertices = []float32{
	//  X, Y, Z, U, V
	-1.0, -1.0, 0.0, 0.0, 1.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	1.0, 1.0, 0.0, 1.0, 0.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
}

const vertex = `
#version 410

in  vec3 vertPos;
in  vec2 vertTexCoord;
out vec2 fragTexCoord;

void main() {
    fragTexCoord = vertTexCoord;
    gl_Position  = vec4(vertPos, 1);
}
`

const fragment = `
#version 410

uniform sampler2D cells;
uniform vec3 foreground;
uniform vec3 background;

in  vec2 fragTexCoord;
out vec4 outputColor;

void main() {
    // Cells hold 0 or 255 in the red channel.
    float on = texture(cells, fragTexCoord).r;
    outputColor = vec4(mix(background, foreground, on), 1);
}
`
