package hud

import (
	"strings"
	"testing"
	"time"

	"starscape/internal/profiling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusLinesWithoutPick(t *testing.T) {
	lines := Status{FPS: 60, Stars: 5000}.Lines()
	require.Len(t, lines, statusLineCount)
	assert.Equal(t, "FPS: 60", lines[0])
	assert.Equal(t, "Stars: 5000 | solid", lines[1])
	assert.Equal(t, "Last pick: none", lines[2])
}

func TestStatusLinesCubePick(t *testing.T) {
	lines := Status{HasPick: true, PickName: "cube", PickIndex: -1, PickColor: 0x12ab00, Wireframe: true}.Lines()
	require.Len(t, lines, statusLineCount)
	assert.Equal(t, "Stars: 0 | wireframe", lines[1])
	assert.Equal(t, "Last pick: cube -> #12ab00", lines[2])
}

func TestStatusLinesStarPick(t *testing.T) {
	lines := Status{HasPick: true, PickName: "stars", PickIndex: 42, PickColor: 0xffffff}.Lines()
	assert.Equal(t, "Last pick: stars[42] -> #ffffff", lines[2])
}

func TestToggles(t *testing.T) {
	h := NewHUD(true)
	assert.True(t, h.Visible())
	h.Toggle()
	assert.False(t, h.Visible())

	assert.False(t, h.ShowProfiling())
	h.ToggleProfiling()
	assert.True(t, h.ShowProfiling())
}

func TestProfilingLinesSkipsIdleSections(t *testing.T) {
	profiling.ResetFrame()
	stop := profiling.Track("renderer.points")
	time.Sleep(2 * time.Millisecond)
	stop()
	profiling.Track("renderer.idle")()

	lines := ProfilingLines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "Profiling (last frame):", lines[0])
	var found bool
	for _, l := range lines[1:] {
		assert.NotContains(t, l, "renderer.idle")
		if strings.HasPrefix(l, "  renderer.points:") {
			found = true
		}
	}
	assert.True(t, found, "lines: %v", lines)
}
