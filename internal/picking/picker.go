// Package picking turns pointer clicks into scene hits and recolours the
// nearest object that was hit.
package picking

import (
	"log/slog"

	"starscape/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Result describes a successful pick.
type Result struct {
	Object   scene.Object
	Previous scene.Color
	Color    scene.Color
	Distance float32
	Index    int
}

// Picker recolours the nearest object under a click.
type Picker struct {
	scene  *scene.Scene
	camera *scene.PerspectiveCamera
	rng    scene.Rand
	log    *slog.Logger
}

func NewPicker(s *scene.Scene, cam *scene.PerspectiveCamera, rng scene.Rand, log *slog.Logger) *Picker {
	return &Picker{
		scene:  s,
		camera: cam,
		rng:    rng,
		log:    log.With(slog.String("component", "picker")),
	}
}

// Click handles a click at pos in a viewport of the given size. When the
// ray hits something, the nearest object's material gets a random colour.
// A miss, or a degenerate viewport, changes nothing.
func (p *Picker) Click(pos, size mgl32.Vec2) (Result, bool) {
	if size.X() <= 0 || size.Y() <= 0 {
		return Result{}, false
	}
	ndc := ToNDC(pos, size)
	ray := RayFromCamera(ndc, p.camera)

	hit, ok := PickNearest(ray, p.scene.Children())
	if !ok {
		p.log.Debug("click missed", "x", pos.X(), "y", pos.Y())
		return Result{}, false
	}

	mat := hit.Object.Material()
	res := Result{
		Object:   hit.Object,
		Previous: mat.Color,
		Color:    scene.RandomColor(p.rng),
		Distance: hit.Distance,
		Index:    hit.Index,
	}
	mat.Color = res.Color

	p.log.Info("recoloured object",
		"object", hit.Object.Name(),
		"from", res.Previous.Hex(),
		"to", res.Color.Hex(),
		"distance", hit.Distance)
	return res, true
}
