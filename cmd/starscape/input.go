package main

import (
	"starscape/internal/app"
	"starscape/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, loop *GameLoop, a *app.App, im *input.InputManager) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		a.Orbit.HandleMouseMovement(xpos, ypos)
	})

	// Press and release are turned into drag and pick by the loop.
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		a.Orbit.HandleScroll(yoff)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	// GL works in framebuffer pixels, the camera and picking in window coordinates.
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	})

	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		a.Resize(width, height)
	})

	// Keep drawing while the user drags the window border.
	window.SetRefreshCallback(func(w *glfw.Window) {
		loop.RefreshRender()
	})
}
