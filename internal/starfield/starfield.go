// Package starfield generates the random point cloud surrounding the cube.
package starfield

import (
	"math"

	"starscape/internal/scene"
)

const (
	DefaultCount  = 5000
	DefaultExtent = 100
)

// Generate returns 3*count coordinates, each drawn independently and
// uniformly from [-extent, extent). Offsets 3i, 3i+1, 3i+2 hold the x, y, z
// of point i.
func Generate(rng scene.Rand, count int, extent float32) []float32 {
	if count <= 0 {
		return []float32{}
	}
	positions := make([]float32, count*3)
	for i := range positions {
		positions[i] = coord(rng, extent)
	}
	return positions
}

func coord(rng scene.Rand, extent float32) float32 {
	v := float32(rng.Float64()*2*float64(extent) - float64(extent))
	// float64 -> float32 rounding can land exactly on the open upper bound
	if v >= extent {
		v = math.Nextafter32(extent, 0)
	}
	return v
}

// Options configures a star cloud.
type Options struct {
	Count     int
	Extent    float32
	Color     scene.Color
	Size      float32
	Opacity   float32
	Threshold float32
}

// New builds the star point cloud ready to be added to a scene.
func New(rng scene.Rand, opts Options) *scene.Points {
	positions := Generate(rng, opts.Count, opts.Extent)
	stars := scene.NewPoints("stars", positions, scene.NewPointsMaterial(opts.Color, opts.Size, opts.Opacity))
	if opts.Threshold > 0 {
		stars.Threshold = opts.Threshold
	}
	return stars
}
