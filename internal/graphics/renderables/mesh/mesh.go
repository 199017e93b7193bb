package mesh

import (
	"path/filepath"

	"starscape/internal/config"
	"starscape/internal/graphics"
	renderer "starscape/internal/graphics/renderer"
	"starscape/internal/profiling"
	"starscape/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	VertShader = filepath.Join(graphics.ShadersDir, "mesh", "mesh.vert")
	FragShader = filepath.Join(graphics.ShadersDir, "mesh", "mesh.frag")
)

// Meshes draws every scene.Mesh as an unlit solid box.
type Meshes struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewMeshes() *Meshes {
	return &Meshes{}
}

func (m *Meshes) Init() error {
	var err error
	m.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(scene.CubeVertices)*4, gl.Ptr(scene.CubeVertices), gl.STATIC_DRAW)

	// pos.xyz, normal.xyz
	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.BindVertexArray(0)
	return nil
}

func (m *Meshes) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.mesh")()

	meshes := ctx.Scene.Meshes()
	if len(meshes) == 0 {
		return
	}

	if config.IsWireframeMode() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	m.shader.Use()
	m.shader.SetMatrix4("proj", &ctx.Proj[0])
	m.shader.SetMatrix4("view", &ctx.View[0])

	gl.BindVertexArray(m.vao)
	for _, mesh := range meshes {
		model := mesh.ModelMatrix()
		mat := mesh.Material()
		c := mat.Color.Vec3()
		m.shader.SetMatrix4("model", &model[0])
		m.shader.SetVector3("color", c.X(), c.Y(), c.Z())
		m.shader.SetFloat("opacity", mat.Opacity)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(scene.CubeVertices)/6))
	}
	gl.BindVertexArray(0)
}

func (m *Meshes) SetViewport(width, height int) {}

func (m *Meshes) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.shader != nil {
		m.shader.Delete()
	}
}
