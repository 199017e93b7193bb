package input_test

import (
	"testing"

	"starscape/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyEdges(t *testing.T) {
	im := input.NewInputManager()

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	assert.True(t, im.IsActive(input.ActionQuit))
	assert.True(t, im.JustPressed(input.ActionQuit))

	im.PostUpdate()
	assert.True(t, im.IsActive(input.ActionQuit))
	assert.False(t, im.JustPressed(input.ActionQuit))

	// key repeat does not create a new press edge
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Repeat)
	assert.False(t, im.JustPressed(input.ActionQuit))

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Release)
	assert.False(t, im.IsActive(input.ActionQuit))
	assert.True(t, im.JustReleased(input.ActionQuit))
}

func TestMouseButtonPressRelease(t *testing.T) {
	im := input.NewInputManager()

	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)

	// both edges seen within the same frame
	assert.True(t, im.JustPressed(input.ActionOrbit))
	assert.True(t, im.JustReleased(input.ActionOrbit))
	assert.False(t, im.IsActive(input.ActionOrbit))

	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	assert.False(t, im.IsActive(input.ActionOrbit))
}

func TestBindAndUnbind(t *testing.T) {
	im := input.NewInputManager()
	im.BindKey(glfw.KeyQ, input.ActionQuit)
	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	assert.True(t, im.JustPressed(input.ActionQuit))

	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyQ, glfw.Release)
	im.UnbindKey(glfw.KeyQ)
	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	assert.False(t, im.JustPressed(input.ActionQuit))

	// out of range actions are ignored
	im.BindKey(glfw.KeyZ, input.ActionCount)
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	assert.False(t, im.IsActive(input.ActionCount))
	assert.Equal(t, "unknown", input.ActionCount.String())
	assert.Equal(t, "toggle_hud", input.ActionToggleHUD.String())
}
