package renderer

import (
	"starscape/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext is the per-frame state shared by all renderables.
type RenderContext struct {
	Scene  *scene.Scene
	Camera *scene.PerspectiveCamera
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	Width  int
	Height int
}

// Renderable is one drawable feature with a GL lifecycle.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
