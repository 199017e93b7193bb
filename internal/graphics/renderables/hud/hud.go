package hud

import (
	"strings"

	"starscape/internal/graphics"
	renderer "starscape/internal/graphics/renderer"
	"starscape/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"
)

const fontPixels = 32

// HUD draws status text and the profiling overlay in the top-left corner.
type HUD struct {
	text          *graphics.TextRenderer
	width, height int

	visible       bool
	showProfiling bool
	status        Status
}

// NewHUD creates a HUD. It stays hidden until Init when visible is set.
func NewHUD(visible bool) *HUD {
	return &HUD{visible: visible}
}

// Init bakes the embedded Go Regular face and uploads it.
func (h *HUD) Init() error {
	atlas, err := graphics.BakeFontAtlas(goregular.TTF, fontPixels)
	if err != nil {
		return err
	}
	h.text, err = graphics.NewTextRenderer(atlas, max(h.width, 1), max(h.height, 1))
	return err
}

func (h *HUD) Render(ctx renderer.RenderContext) {
	if !h.visible || h.text == nil {
		return
	}
	defer profiling.Track("renderer.hud")()

	white := mgl32.Vec3{1.0, 1.0, 1.0}
	h.text.RenderLines(h.status.Lines(), 10, 24, 20, 0.55, white)

	if h.showProfiling {
		h.text.RenderLines(ProfilingLines(), 10, 24+20*float32(statusLineCount)+10, 17, 0.45, mgl32.Vec3{0.8, 0.9, 1.0})
	}
}

func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	if h.text != nil {
		h.text.SetViewport(width, height)
	}
}

func (h *HUD) Dispose() {
	if h.text != nil {
		h.text.Dispose()
		h.text = nil
	}
}

// SetStatus replaces the status block shown on the next frame.
func (h *HUD) SetStatus(s Status) {
	h.status = s
}

// Toggle shows or hides the whole HUD.
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

func (h *HUD) Visible() bool { return h.visible }

// ToggleProfiling toggles the profiling overlay.
func (h *HUD) ToggleProfiling() {
	h.showProfiling = !h.showProfiling
}

func (h *HUD) ShowProfiling() bool { return h.showProfiling }

// ProfilingLines lists the busiest tracked sections of the last frame.
func ProfilingLines() []string {
	lines := []string{"Profiling (last frame):"}
	if top := profiling.TopN(8); top != "" {
		for _, line := range strings.Split(top, ", ") {
			if line != "" && !strings.HasSuffix(line, ":0.0ms") {
				lines = append(lines, "  "+line)
			}
		}
	}
	return lines
}
