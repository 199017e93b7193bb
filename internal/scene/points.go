package scene

import "github.com/go-gl/mathgl/mgl32"

// DefaultPointThreshold is the distance within which a ray hits a point.
const DefaultPointThreshold = 1

// Points is a point cloud backed by a flat xyz position buffer.
type Points struct {
	name      string
	material  *Material
	positions []float32

	Position mgl32.Vec3
	// Threshold is the world-space pick radius around each point.
	Threshold float32
}

// NewPoints wraps positions, which must hold three values per point. A
// trailing partial triple is ignored.
func NewPoints(name string, positions []float32, m *Material) *Points {
	return &Points{
		name:      name,
		material:  m,
		positions: positions[:len(positions)-len(positions)%3],
		Threshold: DefaultPointThreshold,
	}
}

func (p *Points) Name() string        { return p.name }
func (p *Points) Material() *Material { return p.material }

// Positions returns the position buffer. Callers must not modify it.
func (p *Points) Positions() []float32 { return p.positions }

// Len returns the number of points.
func (p *Points) Len() int { return len(p.positions) / 3 }

// At returns the world position of point i.
func (p *Points) At(i int) mgl32.Vec3 {
	return mgl32.Vec3{p.positions[3*i], p.positions[3*i+1], p.positions[3*i+2]}.Add(p.Position)
}

func (p *Points) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(p.Position[0], p.Position[1], p.Position[2])
}

// Intersect reports one hit per point lying within Threshold of the ray.
// The hit point is the closest point on the ray, and Distance is measured
// from the ray origin to it.
func (p *Points) Intersect(ray Ray, near, far float32) []Hit {
	var hits []Hit
	limit := p.Threshold * p.Threshold
	for i := 0; i < p.Len(); i++ {
		pt := p.At(i)
		t := pt.Sub(ray.Origin).Dot(ray.Direction)
		if t < 0 {
			t = 0
		}
		closest := ray.At(t)
		off := pt.Sub(closest)
		if off.Dot(off) >= limit {
			continue
		}
		if t < near || t > far {
			continue
		}
		hits = append(hits, Hit{Object: p, Distance: t, Point: closest, Index: i})
	}
	return hits
}
