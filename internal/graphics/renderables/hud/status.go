package hud

import (
	"fmt"

	"starscape/internal/scene"
)

const statusLineCount = 4

// Status is the per-frame information shown by the HUD.
type Status struct {
	FPS       int
	Stars     int
	Wireframe bool

	HasPick   bool
	PickName  string
	PickIndex int
	PickColor scene.Color
}

// Lines renders the status block. It always returns statusLineCount lines.
func (s Status) Lines() []string {
	pick := "Last pick: none"
	if s.HasPick {
		target := s.PickName
		if s.PickIndex >= 0 {
			target = fmt.Sprintf("%s[%d]", s.PickName, s.PickIndex)
		}
		pick = fmt.Sprintf("Last pick: %s -> %s", target, s.PickColor.Hex())
	}
	mode := "solid"
	if s.Wireframe {
		mode = "wireframe"
	}
	return []string{
		fmt.Sprintf("FPS: %d", s.FPS),
		fmt.Sprintf("Stars: %d | %s", s.Stars, mode),
		pick,
		"drag: orbit  wheel: zoom  click: pick  R: reset  H: hud  V: profiling  F: wireframe",
	}
}
