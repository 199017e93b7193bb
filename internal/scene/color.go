package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxColor is the largest 24-bit RGB value.
const MaxColor Color = 0xFFFFFF

// Color is a packed 0xRRGGBB value.
type Color uint32

// Rand is the subset of *math/rand.Rand used by the scene, so a seeded
// source can be injected in tests.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// RandomColor draws a colour uniformly from the full 24-bit range.
func RandomColor(rng Rand) Color {
	return Color(rng.Intn(int(MaxColor) + 1))
}

// RGB returns the 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Vec3 returns the colour as normalised floats for shader uniforms.
func (c Color) Vec3() mgl32.Vec3 {
	r, g, b := c.RGB()
	return mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c&MaxColor))
}

func (c Color) String() string { return c.Hex() }
