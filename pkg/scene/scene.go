package scene

import (
	"math"

	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/geometry"
	"github.com/df07/go-padvinder/pkg/renderer"
)

// Scene is an ordered collection of shapes. Intersection queries scan the shapes
// in insertion order, so the order decides exact ties.
type Scene struct {
	shapes []geometry.Shape
}

// New creates a scene from the given shapes
func New(shapes ...geometry.Shape) *Scene {
	s := &Scene{shapes: make([]geometry.Shape, 0, len(shapes))}
	s.shapes = append(s.shapes, shapes...)
	return s
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.shapes = append(s.shapes, shapes...)
}

// Shapes returns the shapes in insertion order
func (s *Scene) Shapes() []geometry.Shape {
	return s.shapes
}

// Len returns the number of shapes in the scene
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Intersect returns the nearest shape hit by the ray and the distance to it.
// A miss, including any ray cast into an empty scene, returns (+Inf, nil).
// On an exact tie the shape added first wins.
func (s *Scene) Intersect(ray core.Ray) (float64, geometry.Shape) {
	nearest := math.Inf(1)
	var hit geometry.Shape
	for _, shape := range s.shapes {
		if d := shape.Intersect(ray); d < nearest {
			nearest = d
			hit = shape
		}
	}
	return nearest, hit
}

// Setup bundles a scene with the camera and render configuration it was designed for
type Setup struct {
	Scene  *Scene
	Camera *geometry.PerspectiveCamera
	Config renderer.Config
}
