package renderer

import (
	"fmt"
	"log/slog"

	"starscape/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer clears the frame and draws every renderable in order.
type Renderer struct {
	renderables []Renderable
	log         *slog.Logger

	width  int
	height int
}

// NewRenderer configures global GL state and initialises rs in order. A GL
// context must be current.
func NewRenderer(log *slog.Logger, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		renderables: rs,
		log:         log.With(slog.String("component", "renderer")),
	}
	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			// dispose the ones that did initialise
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %T: %w", rr, err)
		}
	}
	r.log.Info("renderer ready",
		"gl_version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderables", len(rs))
	return r, nil
}

// Render draws the scene from cam.
func (r *Renderer) Render(s *scene.Scene, cam *scene.PerspectiveCamera, dt float64) {
	bg := s.Background.Vec3()
	gl.ClearColor(bg.X(), bg.Y(), bg.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Scene:  s,
		Camera: cam,
		DT:     dt,
		View:   cam.ViewMatrix(),
		Proj:   cam.ProjectionMatrix(),
		Width:  r.width,
		Height: r.height,
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// SetViewport forwards the window size to every renderable.
func (r *Renderer) SetViewport(width, height int) {
	r.width, r.height = width, height
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order.
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
