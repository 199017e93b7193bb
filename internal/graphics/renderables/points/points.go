package points

import (
	"path/filepath"

	"starscape/internal/graphics"
	renderer "starscape/internal/graphics/renderer"
	"starscape/internal/profiling"
	"starscape/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	VertShader = filepath.Join(graphics.ShadersDir, "points", "points.vert")
	FragShader = filepath.Join(graphics.ShadersDir, "points", "points.frag")
)

type cloud struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Points draws scene point clouds as size-attenuated square sprites.
// Position buffers are uploaded once per cloud; scene.Points is immutable.
type Points struct {
	shader *graphics.Shader
	clouds map[*scene.Points]*cloud
	height int
}

func NewPoints() *Points {
	return &Points{clouds: make(map[*scene.Points]*cloud)}
}

func (p *Points) Init() error {
	var err error
	p.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return nil
}

func (p *Points) upload(pts *scene.Points) *cloud {
	if c, ok := p.clouds[pts]; ok {
		return c
	}
	c := &cloud{count: int32(pts.Len())}
	positions := pts.Positions()

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	if len(positions) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	}
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	p.clouds[pts] = c
	return c
}

func (p *Points) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.points")()

	clouds := ctx.Scene.PointClouds()
	if len(clouds) == 0 {
		return
	}

	p.shader.Use()
	p.shader.SetMatrix4("proj", &ctx.Proj[0])
	p.shader.SetMatrix4("view", &ctx.View[0])
	// world-size points: pixels = size * (viewport half height / depth)
	p.shader.SetFloat("scale", float32(p.height)/2)

	for _, pts := range clouds {
		c := p.upload(pts)
		if c.count == 0 {
			continue
		}
		mat := pts.Material()
		col := mat.Color.Vec3()
		model := pts.ModelMatrix()
		p.shader.SetMatrix4("model", &model[0])
		p.shader.SetVector3("color", col.X(), col.Y(), col.Z())
		p.shader.SetFloat("opacity", mat.Opacity)
		p.shader.SetFloat("size", mat.Size)

		if mat.Transparent {
			gl.Enable(gl.BLEND)
			gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
			gl.DepthMask(false)
		}
		gl.BindVertexArray(c.vao)
		gl.DrawArrays(gl.POINTS, 0, c.count)
		if mat.Transparent {
			gl.DepthMask(true)
			gl.Disable(gl.BLEND)
		}
	}
	gl.BindVertexArray(0)
}

func (p *Points) SetViewport(width, height int) {
	p.height = height
}

func (p *Points) Dispose() {
	for key, c := range p.clouds {
		gl.DeleteVertexArrays(1, &c.vao)
		gl.DeleteBuffers(1, &c.vbo)
		delete(p.clouds, key)
	}
	if p.shader != nil {
		p.shader.Delete()
	}
}
