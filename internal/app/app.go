// Package app ties the scene, camera, controls and picker into one context
// object that the host loop drives through Frame, Resize and Click.
package app

import (
	"fmt"
	"log/slog"

	"starscape/internal/config"
	"starscape/internal/controls"
	"starscape/internal/picking"
	"starscape/internal/profiling"
	"starscape/internal/scene"
	"starscape/internal/starfield"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws a scene from a camera. The GL renderer implements it;
// tests use a recorder.
type Renderer interface {
	Render(s *scene.Scene, cam *scene.PerspectiveCamera, dt float64)
	SetViewport(width, height int)
}

// App owns all mutable demo state.
type App struct {
	Scene  *scene.Scene
	Camera *scene.PerspectiveCamera
	Cube   *scene.Mesh
	Stars  *scene.Points
	Orbit  *controls.Orbit
	Picker *picking.Picker

	renderer     Renderer
	log          *slog.Logger
	rotationStep float32

	lastPick picking.Result
	hasPick  bool
}

// New builds the scene described by cfg. rng seeds both the star positions
// and the colours chosen on click.
func New(cfg config.Settings, rng scene.Rand, r Renderer, log *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log = log.With(slog.String("component", "app"))

	cam := scene.NewPerspectiveCamera(cfg.Camera.FOV, cfg.Window.Width, cfg.Window.Height, cfg.Camera.Near, cfg.Camera.Far)
	cam.Position = mgl32.Vec3{0, 0, cfg.Camera.Distance}

	s := scene.New()
	s.Background = scene.Color(cfg.Render.Background)

	cube := scene.NewBox("cube", cfg.Cube.Size, scene.NewBasicMaterial(scene.Color(cfg.Cube.Color)))
	if err := s.Add(cube); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	stars := starfield.New(rng, starfield.Options{
		Count:     cfg.Stars.Count,
		Extent:    cfg.Stars.Extent,
		Color:     scene.Color(cfg.Stars.Color),
		Size:      cfg.Stars.Size,
		Opacity:   cfg.Stars.Opacity,
		Threshold: cfg.Picking.PointThreshold,
	})
	if err := s.Add(stars); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	orbit := controls.NewOrbit(cam, controls.Options{
		RotateSpeed: cfg.Controls.RotateSpeed,
		ZoomSpeed:   cfg.Controls.ZoomSpeed,
		MinDistance: cfg.Controls.MinDistance,
		MaxDistance: cfg.Controls.MaxDistance,
		Damping:     cfg.Controls.Damping,
	})

	a := &App{
		Scene:        s,
		Camera:       cam,
		Cube:         cube,
		Stars:        stars,
		Orbit:        orbit,
		Picker:       picking.NewPicker(s, cam, rng, log),
		renderer:     r,
		log:          log,
		rotationStep: cfg.Cube.RotationStep,
	}
	if r != nil {
		r.SetViewport(cfg.Window.Width, cfg.Window.Height)
	}
	log.Info("scene ready", "stars", stars.Len(), "objects", len(s.Children()))
	return a, nil
}

// Advance rotates the cube by delta radians about X and Y.
func (a *App) Advance(delta float32) {
	a.Cube.Rotate(delta, delta)
}

// Frame runs one frame: fixed-step cube rotation, camera controls, render.
func (a *App) Frame(dt float64) {
	a.Advance(a.rotationStep)
	a.Orbit.Update()
	a.Render(dt)
}

// Render draws the current state without advancing it.
func (a *App) Render(dt float64) {
	if a.renderer == nil {
		return
	}
	defer profiling.Track("renderer.Render")()
	a.renderer.Render(a.Scene, a.Camera, dt)
}

// Resize applies a new surface size to the camera and the renderer.
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		a.log.Debug("ignoring empty resize", "width", width, "height", height)
		return
	}
	a.Camera.SetViewport(width, height)
	if a.renderer != nil {
		a.renderer.SetViewport(width, height)
	}
	a.log.Debug("resized", "width", width, "height", height, "aspect", a.Camera.Aspect)
}

// Click picks at a cursor position in window coordinates.
func (a *App) Click(x, y float64) (picking.Result, bool) {
	w, h := a.Camera.Viewport()
	res, ok := a.Picker.Click(mgl32.Vec2{float32(x), float32(y)}, mgl32.Vec2{float32(w), float32(h)})
	if ok {
		a.lastPick, a.hasPick = res, true
	}
	return res, ok
}

// LastPick returns the most recent successful pick.
func (a *App) LastPick() (picking.Result, bool) {
	return a.lastPick, a.hasPick
}

// ResetCamera puts the orbit camera back to its starting pose.
func (a *App) ResetCamera() {
	a.Orbit.Reset()
}
