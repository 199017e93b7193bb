package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const fullTurn = 2 * math.Pi

// Mesh is an axis-aligned box in object space, placed in the world by
// Position and Rotation (Euler X, Y, Z in radians, applied in that order).
type Mesh struct {
	name     string
	material *Material

	Size     mgl32.Vec3
	Position mgl32.Vec3
	Rotation mgl32.Vec3
}

// NewBox creates a cube with edge length size centred at the origin.
func NewBox(name string, size float32, m *Material) *Mesh {
	return &Mesh{
		name:     name,
		material: m,
		Size:     mgl32.Vec3{size, size, size},
	}
}

func (m *Mesh) Name() string        { return m.name }
func (m *Mesh) Material() *Material { return m.material }

// Rotate adds to the X and Y rotation angles, wrapping each at a full turn.
func (m *Mesh) Rotate(dx, dy float32) {
	m.Rotation[0] = wrapAngle(m.Rotation[0] + dx)
	m.Rotation[1] = wrapAngle(m.Rotation[1] + dy)
}

func wrapAngle(a float32) float32 {
	w := float32(math.Mod(float64(a), fullTurn))
	if w < 0 {
		w += fullTurn
	}
	return w
}

func (m *Mesh) rotationMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(m.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(m.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(m.Rotation[2]))
}

// ModelMatrix returns translate * rotate * scale.
func (m *Mesh) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2]).
		Mul4(m.rotationMatrix()).
		Mul4(mgl32.Scale3D(m.Size[0], m.Size[1], m.Size[2]))
}

// Intersect tests the ray against the unit box in object space. Only
// front faces are hit, so a ray starting inside the box reports nothing.
func (m *Mesh) Intersect(ray Ray, near, far float32) []Hit {
	inv := m.ModelMatrix().Inv()
	o := inv.Mul4x1(ray.Origin.Vec4(1)).Vec3()
	d := inv.Mul4x1(ray.Direction.Vec4(0)).Vec3()

	t, ok := slab(o, d, 0.5)
	if !ok || t < near || t > far {
		return nil
	}
	return []Hit{{Object: m, Distance: t, Point: ray.At(t), Index: -1}}
}

// slab returns the entry distance of a ray into the cube [-h, h]^3.
func slab(o, d mgl32.Vec3, h float32) (float32, bool) {
	tMin := float32(math.Inf(-1))
	tMax := float32(math.Inf(1))
	for axis := 0; axis < 3; axis++ {
		if abs32(d[axis]) < 1e-8 {
			// parallel to this slab
			if o[axis] < -h || o[axis] > h {
				return 0, false
			}
			continue
		}
		inv := 1 / d[axis]
		t1 := (-h - o[axis]) * inv
		t2 := (h - o[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	if tMin < 0 {
		return 0, false
	}
	return tMin, true
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// CubeVertices is a unit cube as triangles with per-face normals (pos.xyz, normal.xyz).
var CubeVertices = []float32{
	// front
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,
	// back
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	// left
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	// right
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	// top
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
	// bottom
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
}
