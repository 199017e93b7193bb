package picking

import "github.com/go-gl/mathgl/mgl32"

// ToNDC maps a viewport position (origin top-left, y down) to normalised
// device coordinates: top-left -> (-1, 1), bottom-right -> (1, -1).
// size must be non-zero on both axes.
func ToNDC(pos, size mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		(pos.X()/size.X())*2 - 1,
		-(pos.Y()/size.Y())*2 + 1,
	}
}
