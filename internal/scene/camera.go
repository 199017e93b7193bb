package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveCamera handles the view and projection matrices.
type PerspectiveCamera struct {
	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	width, height int
}

func NewPerspectiveCamera(fov float32, width, height int, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:  fov,
		Near: near,
		Far:  far,
		Up:   mgl32.Vec3{0, 1, 0},
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport stores the surface size and sets Aspect to width/height.
// Non-positive sizes (a minimised window) are ignored.
func (c *PerspectiveCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	c.Aspect = float32(width) / float32(height)
}

// Viewport returns the last size passed to SetViewport.
func (c *PerspectiveCamera) Viewport() (int, int) {
	return c.width, c.height
}

func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}
