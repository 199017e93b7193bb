package scene

// Material carries the display attributes shared by meshes and point clouds.
type Material struct {
	Color       Color
	Opacity     float32
	Transparent bool
	// Size is the point size in world units; meshes ignore it.
	Size float32
}

// NewBasicMaterial returns an opaque, unlit material.
func NewBasicMaterial(c Color) *Material {
	return &Material{Color: c, Opacity: 1}
}

// NewPointsMaterial returns a material for point clouds.
func NewPointsMaterial(c Color, size, opacity float32) *Material {
	return &Material{
		Color:       c,
		Opacity:     opacity,
		Transparent: opacity < 1,
		Size:        size,
	}
}
