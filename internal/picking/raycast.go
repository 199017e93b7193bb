package picking

import (
	"math"
	"sort"

	"starscape/internal/profiling"
	"starscape/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RayFromCamera returns the world-space ray from the camera through the
// given NDC position.
func RayFromCamera(ndc mgl32.Vec2, cam *scene.PerspectiveCamera) scene.Ray {
	inv := cam.ProjectionMatrix().Mul4(cam.ViewMatrix()).Inv()
	p := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 0.5, 1})
	target := p.Vec3().Mul(1 / p.W())
	return scene.Ray{
		Origin:    cam.Position,
		Direction: target.Sub(cam.Position).Normalize(),
	}
}

// IntersectObjects collects every hit on objects with distance in
// [near, far], nearest first. Hits at equal distance keep object order.
func IntersectObjects(ray scene.Ray, objects []scene.Object, near, far float32) []scene.Hit {
	defer profiling.Track("picking.IntersectObjects")()
	var hits []scene.Hit
	for _, obj := range objects {
		hits = append(hits, obj.Intersect(ray, near, far)...)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// PickNearest returns the closest hit along the ray, if any.
func PickNearest(ray scene.Ray, objects []scene.Object) (scene.Hit, bool) {
	hits := IntersectObjects(ray, objects, 0, math.MaxFloat32)
	if len(hits) == 0 {
		return scene.Hit{}, false
	}
	return hits[0], true
}
