// Package scene holds the renderable objects, their materials and the
// perspective camera. It has no GL dependency, so everything here can be
// exercised without a window.
package scene

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned when an object is added to a scene twice.
var ErrDuplicate = errors.New("object already in scene")

// Scene is an ordered collection of objects.
type Scene struct {
	Background Color
	children   []Object
}

func New() *Scene {
	return &Scene{}
}

// Add appends obj. Each object may be added only once.
func (s *Scene) Add(obj Object) error {
	for _, c := range s.children {
		if c == obj {
			return fmt.Errorf("add %q: %w", obj.Name(), ErrDuplicate)
		}
	}
	s.children = append(s.children, obj)
	return nil
}

// Children returns the objects in insertion order.
func (s *Scene) Children() []Object {
	return s.children
}

// Find returns the first object with the given name.
func (s *Scene) Find(name string) (Object, bool) {
	for _, c := range s.children {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Meshes returns the mesh children.
func (s *Scene) Meshes() []*Mesh {
	var out []*Mesh
	for _, c := range s.children {
		if m, ok := c.(*Mesh); ok {
			out = append(out, m)
		}
	}
	return out
}

// PointClouds returns the point-cloud children.
func (s *Scene) PointClouds() []*Points {
	var out []*Points
	for _, c := range s.children {
		if p, ok := c.(*Points); ok {
			out = append(out, p)
		}
	}
	return out
}
