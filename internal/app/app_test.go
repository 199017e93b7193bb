package app_test

import (
	"math/rand"
	"testing"
	"time"

	"starscape/internal/app"
	"starscape/internal/config"
	"starscape/internal/logging"
	"starscape/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	frames    int
	viewports [][2]int
}

func (r *recorder) Render(*scene.Scene, *scene.PerspectiveCamera, float64) { r.frames++ }
func (r *recorder) SetViewport(w, h int)                                   { r.viewports = append(r.viewports, [2]int{w, h}) }

func newApp(t *testing.T, seed int64) (*app.App, *recorder) {
	t.Helper()
	rec := &recorder{}
	a, err := app.New(config.Default(), rand.New(rand.NewSource(seed)), rec, logging.Discard())
	require.NoError(t, err)
	return a, rec
}

func TestNewBuildsScene(t *testing.T) {
	a, rec := newApp(t, 1)

	assert.Len(t, a.Scene.Children(), 2)
	assert.Equal(t, 5000, a.Stars.Len())
	assert.Len(t, a.Stars.Positions(), 15000)
	assert.Equal(t, scene.Color(0x00FF00), a.Cube.Material().Color)
	assert.Equal(t, float32(5), a.Camera.Position.Z())
	assert.Equal(t, float32(1.5), a.Camera.Aspect)
	assert.Equal(t, [][2]int{{900, 600}}, rec.viewports)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.FOV = 0
	_, err := app.New(cfg, rand.New(rand.NewSource(1)), nil, logging.Discard())
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestFrameRotatesCubeAndRenders(t *testing.T) {
	a, rec := newApp(t, 1)

	const k = 50
	for i := 0; i < k; i++ {
		a.Frame(1.0 / 60)
	}
	assert.Equal(t, k, rec.frames)
	assert.InDelta(t, k*0.01, a.Cube.Rotation.X(), 1e-4)
	assert.InDelta(t, k*0.01, a.Cube.Rotation.Y(), 1e-4)
	assert.Zero(t, a.Cube.Rotation.Z())
}

func TestRenderDoesNotAdvance(t *testing.T) {
	a, rec := newApp(t, 1)
	a.Render(0)
	a.Render(0)
	assert.Equal(t, 2, rec.frames)
	assert.Zero(t, a.Cube.Rotation.X())
}

func TestAdvanceIsAdditive(t *testing.T) {
	a, _ := newApp(t, 1)
	a.Advance(0.25)
	a.Advance(0.25)
	assert.InDelta(t, 0.5, a.Cube.Rotation.X(), 1e-6)
	assert.InDelta(t, 0.5, a.Cube.Rotation.Y(), 1e-6)
}

func TestResize(t *testing.T) {
	a, rec := newApp(t, 1)

	a.Resize(1920, 1080)
	assert.Equal(t, float32(1920)/float32(1080), a.Camera.Aspect)
	w, h := a.Camera.Viewport()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
	assert.Equal(t, [2]int{1920, 1080}, rec.viewports[len(rec.viewports)-1])

	// same size again is harmless
	a.Resize(1920, 1080)
	assert.Equal(t, float32(1920)/float32(1080), a.Camera.Aspect)

	// minimised
	n := len(rec.viewports)
	a.Resize(0, 0)
	assert.Len(t, rec.viewports, n)
	assert.Equal(t, float32(1920)/float32(1080), a.Camera.Aspect)
}

func TestClickCentreRecoloursCube(t *testing.T) {
	a, _ := newApp(t, 1)
	// keep the stars out of the way of the centre ray
	a.Stars.Threshold = 0

	res, ok := a.Click(450, 300)
	require.True(t, ok)
	assert.Same(t, a.Cube, res.Object)
	assert.Equal(t, res.Color, a.Cube.Material().Color)
	assert.Equal(t, scene.Color(0xFFFFFF), a.Stars.Material().Color)

	last, ok := a.LastPick()
	require.True(t, ok)
	assert.Equal(t, res, last)
}

func TestClickMissChangesNothing(t *testing.T) {
	a, _ := newApp(t, 1)
	a.Stars.Threshold = 0

	_, ok := a.Click(5, 5)
	assert.False(t, ok)
	assert.Equal(t, scene.Color(0x00FF00), a.Cube.Material().Color)
	assert.Equal(t, scene.Color(0xFFFFFF), a.Stars.Material().Color)
	_, ok = a.LastPick()
	assert.False(t, ok)
}

func TestClickUsesResizedViewport(t *testing.T) {
	a, _ := newApp(t, 1)
	a.Stars.Threshold = 0
	a.Resize(400, 400)

	// centre of the new viewport, outside the old one's centre
	_, ok := a.Click(200, 200)
	assert.True(t, ok)
}

func TestFrameCounter(t *testing.T) {
	var c app.FrameCounter
	start := time.Unix(0, 0)

	for i := 0; i < 59; i++ {
		_, ok := c.Tick(start.Add(time.Duration(i) * time.Second / 60))
		assert.False(t, ok)
	}
	fps, ok := c.Tick(start.Add(time.Second))
	assert.True(t, ok)
	assert.Equal(t, 60, fps)
	assert.Equal(t, 60, c.FPS())
}

func TestFPSLimiterPaces(t *testing.T) {
	l := app.NewFPSLimiter()

	start := time.Now()
	l.Wait(0)
	assert.Less(t, time.Since(start), 5*time.Millisecond)

	start = time.Now()
	for i := 0; i < 5; i++ {
		l.Wait(200)
	}
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
