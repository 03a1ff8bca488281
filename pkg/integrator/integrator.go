package integrator

import (
	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/geometry"
)

// Scene is the nearest-hit query the integrator needs.
// Defined here to avoid circular imports (actual type is *scene.Scene)
type Scene interface {
	// Intersect returns the distance to and the nearest shape hit by the ray,
	// or (+Inf, nil) on a miss
	Intersect(ray core.Ray) (float64, geometry.Shape)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the color arriving at the ray origin along the ray
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3
}
