package integrator

import (
	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/material"
)

// surfaceOffset moves bounce origins off the surface so the next ray does not hit it again
const surfaceOffset = 1e-4

// PathTracingIntegrator implements unidirectional path tracing with a fixed path length
type PathTracingIntegrator struct {
	pathLength int
	background core.Vec3
}

// NewPathTracingIntegrator creates a new path tracing integrator. Paths are cut off
// after pathLength segments; rays leaving the scene pick up the background color.
func NewPathTracingIntegrator(pathLength int, background core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		pathLength: pathLength,
		background: background,
	}
}

// PathLength returns the maximum number of path segments
func (pt *PathTracingIntegrator) PathLength() int {
	return pt.pathLength
}

// Background returns the color of rays that leave the scene
func (pt *PathTracingIntegrator) Background() core.Vec3 {
	return pt.background
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, scene, sampler, 0)
}

// Trace follows a path from the given depth on and returns the color it carries back
func (pt *PathTracingIntegrator) Trace(ray core.Ray, scene Scene, sampler core.Sampler, depth int) core.Vec3 {
	// Path budget exhausted, no more light is gathered
	if depth >= pt.pathLength {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	t, shape := scene.Intersect(ray)
	if shape == nil {
		return pt.background
	}

	mat := shape.Material()

	// Emitters ignore the light arriving from further along the path
	if emission, ok := mat.(*material.Emission); ok {
		return emission.Color()
	}

	point := ray.At(t)
	normal := shape.Normal(point)
	point = point.Add(normal.Multiply(surfaceOffset))

	outDirection := mat.OutgoingDirection(normal, ray.Direction, sampler)
	upstream := pt.Trace(core.MakeRay(point, outDirection), scene, sampler, depth+1)

	// Shading looks at the path in the direction light travels
	return mat.Shade(normal, upstream, outDirection.Negate(), ray.Direction.Negate())
}
