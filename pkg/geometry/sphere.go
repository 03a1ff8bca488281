package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	center   core.Vec3
	radius   float64
	material material.Material
}

// NewSphere creates a new sphere. A nil material gets a fresh default Lambert.
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if err := core.CheckFinite(center); err != nil {
		return nil, fmt.Errorf("sphere center: %w", err)
	}
	if err := core.CheckFiniteScalars(radius); err != nil {
		return nil, fmt.Errorf("sphere radius: %w", err)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius %g must be positive: %w", radius, core.ErrInvalidParameter)
	}
	return &Sphere{
		center:   center,
		radius:   radius,
		material: orDefault(mat),
	}, nil
}

// Intersect returns the distance to the nearest intersection in front of the ray origin.
// When the origin is inside the sphere this is the exit point.
func (s *Sphere) Intersect(ray core.Ray) float64 {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.center)

	// Quadratic equation coefficients: t² + bt + c = 0 (direction is unit length)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := b*b - 4*c
	if discriminant <= 0 {
		return math.Inf(1)
	}

	// Stable form avoids cancellation between -b and the square root
	sqrtD := math.Sqrt(discriminant)
	var q float64
	if b < 0 {
		q = (-b + sqrtD) / 2
	} else {
		q = (-b - sqrtD) / 2
	}
	t0, t1 := q, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	// Sphere entirely behind the ray
	if t1 < 0 {
		return math.Inf(1)
	}
	if t0 < 0 {
		return t1
	}
	return t0
}

// Normal returns the outward normal at a point on the sphere
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.center).Normalize()
}

// Center returns the center of the sphere
func (s *Sphere) Center() core.Vec3 {
	return s.center
}

// Radius returns the radius of the sphere
func (s *Sphere) Radius() float64 {
	return s.radius
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.material
}

func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere(%v, position=%v, radius=%g)", s.material, s.center, s.radius)
}

func (s *Sphere) shape() {}
