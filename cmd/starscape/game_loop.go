package main

import (
	"log/slog"
	"time"

	"starscape/internal/app"
	"starscape/internal/config"
	"starscape/internal/graphics/renderables/hud"
	"starscape/internal/input"
	"starscape/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// GameLoop drives the app from GLFW events and presents frames.
type GameLoop struct {
	window       *glfw.Window
	app          *app.App
	hudRenderer  *hud.HUD
	inputManager *input.InputManager
	log          *slog.Logger

	fpsLimiter *app.FPSLimiter
	counter    app.FrameCounter
	lastTime   time.Time
}

func NewGameLoop(window *glfw.Window, a *app.App, hudRenderer *hud.HUD, im *input.InputManager, log *slog.Logger) *GameLoop {
	return &GameLoop{
		window:       window,
		app:          a,
		hudRenderer:  hudRenderer,
		inputManager: im,
		log:          log.With(slog.String("component", "loop")),
		fpsLimiter:   app.NewFPSLimiter(),
		lastTime:     time.Now(),
	}
}

// Run loops until the window is asked to close.
func (gl *GameLoop) Run() {
	for !gl.window.ShouldClose() {
		gl.tick()
	}
}

func (gl *GameLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	gl.handleInputActions()
	gl.updateStatus()

	gl.app.Frame(dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); gl.window.SwapBuffers() }()

	gl.inputManager.PostUpdate()

	if fps, ok := gl.counter.Tick(time.Now()); ok {
		gl.log.Debug("fps", "fps", fps)
	}
	gl.warnSlowFrame(time.Since(now) - profiling.SumWithPrefix("glfw."))

	gl.fpsLimiter.Wait(config.GetFPSLimit())
}

func (gl *GameLoop) handleInputActions() {
	im := gl.inputManager

	if im.JustPressed(input.ActionOrbit) {
		gl.app.Orbit.BeginDrag()
	}
	if im.JustReleased(input.ActionOrbit) {
		x, y := gl.window.GetCursorPos()
		func() { defer profiling.Track("picking.Click")(); gl.app.Click(x, y) }()
		gl.app.Orbit.EndDrag()
	}

	if im.JustPressed(input.ActionQuit) {
		gl.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionResetCamera) {
		gl.app.ResetCamera()
	}
	if im.JustPressed(input.ActionToggleHUD) {
		gl.hudRenderer.Toggle()
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		gl.hudRenderer.ToggleProfiling()
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		config.ToggleWireframeMode()
		gl.log.Debug("wireframe toggled", "enabled", config.IsWireframeMode())
	}
}

func (gl *GameLoop) updateStatus() {
	s := hud.Status{
		FPS:       gl.counter.FPS(),
		Stars:     gl.app.Stars.Len(),
		Wireframe: config.IsWireframeMode(),
	}
	if res, ok := gl.app.LastPick(); ok {
		s.HasPick = true
		s.PickName = res.Object.Name()
		s.PickIndex = res.Index
		s.PickColor = res.Color
	}
	gl.hudRenderer.SetStatus(s)
}

// warnSlowFrame logs when processing alone overruns the configured frame budget.
func (gl *GameLoop) warnSlowFrame(processing time.Duration) {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		return
	}
	target := time.Second / time.Duration(limit)
	if processing > target {
		gl.log.Warn("frame processing too slow",
			"took_ms", float64(processing.Microseconds())/1000,
			"target_ms", float64(target.Microseconds())/1000)
	}
}

// RefreshRender redraws without advancing the scene, for window refresh events.
func (gl *GameLoop) RefreshRender() {
	gl.app.Render(0)
	gl.window.SwapBuffers()
}
