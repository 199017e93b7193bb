package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"starscape/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	s := config.Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, 5000, s.Stars.Count)
	assert.Equal(t, float32(100), s.Stars.Extent)
	assert.Equal(t, float32(75), s.Camera.FOV)
	assert.Equal(t, uint32(0x00FF00), s.Cube.Color)
	assert.Equal(t, float32(0.01), s.Cube.RotationStep)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starscape.toml")
	data := `
[window]
width = 1280
height = 720

[stars]
count = 250
seed = 42

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, s.Window.Width)
	assert.Equal(t, 720, s.Window.Height)
	assert.Equal(t, 250, s.Stars.Count)
	assert.Equal(t, int64(42), s.Stars.Seed)
	assert.Equal(t, "debug", s.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, float32(100), s.Stars.Extent)
	assert.Equal(t, "starscape", s.Window.Title)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[camera]\nnear = 10.0\nfar = 1.0\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestValidateColourRange(t *testing.T) {
	s := config.Default()
	s.Cube.Color = 0x1000000
	assert.ErrorIs(t, s.Validate(), config.ErrInvalid)
}

func TestFPSLimitClamped(t *testing.T) {
	defer config.SetFPSLimit(0)

	config.SetFPSLimit(-5)
	assert.Equal(t, 0, config.GetFPSLimit())
	config.SetFPSLimit(60)
	assert.Equal(t, 60, config.GetFPSLimit())
	config.SetFPSLimit(5000)
	assert.Equal(t, 1000, config.GetFPSLimit())
}

func TestToggleWireframe(t *testing.T) {
	before := config.IsWireframeMode()
	config.ToggleWireframeMode()
	assert.Equal(t, !before, config.IsWireframeMode())
	config.ToggleWireframeMode()
	assert.Equal(t, before, config.IsWireframeMode())
}
