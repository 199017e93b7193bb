package scene

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line; Direction is expected to be normalised so that
// distances along it are world units.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit is a single ray intersection.
type Hit struct {
	Object   Object
	Distance float32
	Point    mgl32.Vec3
	// Index is the point index for point clouds, -1 otherwise.
	Index int
}

// Object is anything held by a Scene: it can be hit by a ray and has a
// mutable display colour through its material.
type Object interface {
	Name() string
	Material() *Material
	ModelMatrix() mgl32.Mat4
	// Intersect returns every hit with distance in [near, far], in no particular order.
	Intersect(ray Ray, near, far float32) []Hit
}
