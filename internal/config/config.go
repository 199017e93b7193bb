package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned (wrapped) when a settings value is out of range.
var ErrInvalid = errors.New("invalid setting")

// Settings is the full start-up configuration of the demo.
type Settings struct {
	Window   WindowSettings  `toml:"window"`
	Camera   CameraSettings  `toml:"camera"`
	Stars    StarSettings    `toml:"stars"`
	Cube     CubeSettings    `toml:"cube"`
	Picking  PickingSettings `toml:"picking"`
	Controls ControlSettings `toml:"controls"`
	Render   RenderSettings  `toml:"render"`
	Log      LogSettings     `toml:"log"`
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// CameraSettings describes the perspective camera. FOV is the vertical field of view in degrees.
type CameraSettings struct {
	FOV      float32 `toml:"fov"`
	Near     float32 `toml:"near"`
	Far      float32 `toml:"far"`
	Distance float32 `toml:"distance"`
}

type StarSettings struct {
	Count   int     `toml:"count"`
	Extent  float32 `toml:"extent"`
	Size    float32 `toml:"size"`
	Opacity float32 `toml:"opacity"`
	Color   uint32  `toml:"color"`
	// Seed for the star generator; 0 means seed from the clock.
	Seed int64 `toml:"seed"`
}

type CubeSettings struct {
	Size         float32 `toml:"size"`
	Color        uint32  `toml:"color"`
	RotationStep float32 `toml:"rotation_step"`
}

type PickingSettings struct {
	// PointThreshold is the world-space distance within which a ray hits a star.
	PointThreshold float32 `toml:"point_threshold"`
}

type ControlSettings struct {
	RotateSpeed float32 `toml:"rotate_speed"`
	ZoomSpeed   float32 `toml:"zoom_speed"`
	MinDistance float32 `toml:"min_distance"`
	MaxDistance float32 `toml:"max_distance"`
	Damping     float32 `toml:"damping"`
}

type RenderSettings struct {
	// FPSLimit caps the frame rate; 0 renders as fast as possible.
	FPSLimit   int    `toml:"fps_limit"`
	Background uint32 `toml:"background"`
	ShowHUD    bool   `toml:"show_hud"`
	VSync      bool   `toml:"vsync"`
}

type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Window: WindowSettings{Width: 900, Height: 600, Title: "starscape"},
		Camera: CameraSettings{FOV: 75, Near: 0.1, Far: 1000, Distance: 5},
		Stars: StarSettings{
			Count:   5000,
			Extent:  100,
			Size:    0.5,
			Opacity: 0.7,
			Color:   0xFFFFFF,
		},
		Cube:     CubeSettings{Size: 1, Color: 0x00FF00, RotationStep: 0.01},
		Picking:  PickingSettings{PointThreshold: 1},
		Controls: ControlSettings{RotateSpeed: 1, ZoomSpeed: 1, MinDistance: 1, MaxDistance: 500, Damping: 0},
		Render:   RenderSettings{FPSLimit: 0, Background: 0x000000, ShowHUD: true, VSync: true},
		Log:      LogSettings{Level: "info", Format: "text"},
	}
}

// Load reads a TOML file and overlays it on the defaults. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate reports the first out-of-range value.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)
	case s.Camera.FOV <= 0 || s.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %v", ErrInvalid, s.Camera.FOV)
	case s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near:
		return fmt.Errorf("%w: camera clip planes %v..%v", ErrInvalid, s.Camera.Near, s.Camera.Far)
	case s.Stars.Count < 0:
		return fmt.Errorf("%w: star count %d", ErrInvalid, s.Stars.Count)
	case s.Stars.Extent <= 0:
		return fmt.Errorf("%w: star extent %v", ErrInvalid, s.Stars.Extent)
	case s.Stars.Opacity < 0 || s.Stars.Opacity > 1:
		return fmt.Errorf("%w: star opacity %v", ErrInvalid, s.Stars.Opacity)
	case s.Stars.Color > 0xFFFFFF || s.Cube.Color > 0xFFFFFF || s.Render.Background > 0xFFFFFF:
		return fmt.Errorf("%w: colours must fit in 24 bits", ErrInvalid)
	case s.Cube.Size <= 0:
		return fmt.Errorf("%w: cube size %v", ErrInvalid, s.Cube.Size)
	case s.Picking.PointThreshold < 0:
		return fmt.Errorf("%w: point threshold %v", ErrInvalid, s.Picking.PointThreshold)
	case s.Controls.MinDistance <= 0 || s.Controls.MaxDistance < s.Controls.MinDistance:
		return fmt.Errorf("%w: orbit distance %v..%v", ErrInvalid, s.Controls.MinDistance, s.Controls.MaxDistance)
	case s.Controls.Damping < 0 || s.Controls.Damping >= 1:
		return fmt.Errorf("%w: damping %v", ErrInvalid, s.Controls.Damping)
	case s.Render.FPSLimit < 0:
		return fmt.Errorf("%w: fps limit %d", ErrInvalid, s.Render.FPSLimit)
	}
	return nil
}

// Runtime toggles are read every frame by the loop and the renderer.
type runtimeSettings struct {
	mu        sync.RWMutex
	fpsLimit  int
	wireframe bool
}

var globalRuntime = &runtimeSettings{}

// GetFPSLimit returns the current frame rate cap (0 = uncapped).
func GetFPSLimit() int {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.fpsLimit
}

// SetFPSLimit sets the frame rate cap
func SetFPSLimit(limit int) {
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalRuntime.fpsLimit = limit
}

func IsWireframeMode() bool {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.wireframe
}

// ToggleWireframeMode flips mesh polygon mode between fill and line.
func ToggleWireframeMode() {
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()
	globalRuntime.wireframe = !globalRuntime.wireframe
}
