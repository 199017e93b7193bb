// Package controls implements an orbit camera controller: drag to rotate
// around a target point, scroll to move closer or further away.
package controls

import (
	"math"

	"starscape/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const polarEpsilon = 1e-6

// Options configures an Orbit controller.
type Options struct {
	RotateSpeed float32
	ZoomSpeed   float32
	MinDistance float32
	MaxDistance float32
	// Damping in [0, 1): fraction of the rotation delta carried to the
	// next frame. 0 disables inertia.
	Damping float32
}

// Orbit moves a PerspectiveCamera on a sphere around Target.
type Orbit struct {
	camera *scene.PerspectiveCamera
	opts   Options

	Target mgl32.Vec3

	// spherical coordinates of the camera relative to Target
	radius float32
	theta  float32 // around +Y, 0 looks down -Z
	phi    float32 // from +Y

	deltaTheta float32
	deltaPhi   float32
	scale      float32

	dragging   bool
	firstMouse bool
	lastX      float64
	lastY      float64

	home mgl32.Vec3
}

// NewOrbit takes the camera's current position and target as the start and
// home pose.
func NewOrbit(cam *scene.PerspectiveCamera, opts Options) *Orbit {
	o := &Orbit{
		camera: cam,
		opts:   opts,
		Target: cam.Target,
		scale:  1,
		home:   cam.Position,
	}
	o.setFromCamera()
	return o
}

func (o *Orbit) setFromCamera() {
	offset := o.camera.Position.Sub(o.Target)
	o.radius = offset.Len()
	if o.radius == 0 {
		o.theta, o.phi = 0, math.Pi/2
		return
	}
	o.theta = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
	o.phi = float32(math.Acos(float64(mgl32.Clamp(offset.Y()/o.radius, -1, 1))))
}

// Distance returns the current camera distance from Target.
func (o *Orbit) Distance() float32 { return o.radius }

// Dragging reports whether a rotate drag is in progress.
func (o *Orbit) Dragging() bool { return o.dragging }

// BeginDrag starts rotating from the cursor position.
func (o *Orbit) BeginDrag() {
	o.dragging = true
	o.firstMouse = true
}

func (o *Orbit) EndDrag() {
	o.dragging = false
}

// HandleMouseMovement rotates by the cursor delta while dragging. A full
// viewport height of movement is one full turn.
func (o *Orbit) HandleMouseMovement(xpos, ypos float64) {
	if !o.dragging {
		return
	}
	if o.firstMouse {
		o.lastX, o.lastY = xpos, ypos
		o.firstMouse = false
		return
	}

	dx := xpos - o.lastX
	dy := ypos - o.lastY
	o.lastX, o.lastY = xpos, ypos

	_, h := o.camera.Viewport()
	if h <= 0 {
		return
	}
	turn := 2 * math.Pi / float64(h) * float64(o.opts.RotateSpeed)
	o.deltaTheta -= float32(dx * turn)
	o.deltaPhi -= float32(dy * turn)
}

// HandleScroll zooms: positive offsets move the camera closer.
func (o *Orbit) HandleScroll(yoff float64) {
	if yoff == 0 {
		return
	}
	o.scale *= float32(math.Pow(0.95, float64(o.opts.ZoomSpeed)*yoff))
}

// Reset returns the camera to the pose it had at construction.
func (o *Orbit) Reset() {
	o.camera.Position = o.home
	o.deltaTheta, o.deltaPhi, o.scale = 0, 0, 1
	o.setFromCamera()
	o.camera.Target = o.Target
}

// Update applies pending rotation and zoom to the camera. Call once per frame.
func (o *Orbit) Update() {
	o.theta += o.deltaTheta
	o.phi = mgl32.Clamp(o.phi+o.deltaPhi, polarEpsilon, math.Pi-polarEpsilon)
	o.radius = mgl32.Clamp(o.radius*o.scale, o.opts.MinDistance, o.opts.MaxDistance)

	sinPhi := float32(math.Sin(float64(o.phi)))
	offset := mgl32.Vec3{
		o.radius * sinPhi * float32(math.Sin(float64(o.theta))),
		o.radius * float32(math.Cos(float64(o.phi))),
		o.radius * sinPhi * float32(math.Cos(float64(o.theta))),
	}
	o.camera.Position = o.Target.Add(offset)
	o.camera.Target = o.Target

	if o.opts.Damping > 0 {
		o.deltaTheta *= o.opts.Damping
		o.deltaPhi *= o.opts.Damping
	} else {
		o.deltaTheta, o.deltaPhi = 0, 0
	}
	o.scale = 1
}
