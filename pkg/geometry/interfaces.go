package geometry

import (
	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/material"
)

// Shape is an implicit surface that can be intersected by rays. The set of
// shapes is closed: Sphere and Plane.
type Shape interface {
	// Intersect returns the smallest positive distance along the ray to the
	// surface, or +Inf when the ray misses.
	Intersect(ray core.Ray) float64

	// Normal returns the unit surface normal at a point on the surface
	Normal(point core.Vec3) core.Vec3

	// Material returns the material the shape is made of
	Material() material.Material

	shape()
}

var (
	_ Shape = (*Sphere)(nil)
	_ Shape = (*Plane)(nil)
)

// orDefault gives each shape built without a material its own default material
func orDefault(m material.Material) material.Material {
	if m == nil {
		return material.DefaultLambert()
	}
	return m
}
