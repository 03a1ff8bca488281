package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/material"
)

// parallelEpsilon is the largest |direction·normal| treated as a ray parallel to the plane
const parallelEpsilon = 1e-8

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	point    core.Vec3 // A point on the plane
	normal   core.Vec3 // Unit normal
	material material.Material
}

// NewPlane creates a new plane. The normal is normalized; a nil material gets a fresh default Lambert.
func NewPlane(point, normal core.Vec3, mat material.Material) (*Plane, error) {
	if err := core.CheckFinite(point, normal); err != nil {
		return nil, fmt.Errorf("plane: %w", err)
	}
	unit, err := core.Normalize(normal)
	if err != nil {
		return nil, fmt.Errorf("plane normal: %w", err)
	}
	return &Plane{
		point:    point,
		normal:   unit,
		material: orDefault(mat),
	}, nil
}

// Intersect returns the distance along the ray to the plane, or +Inf for parallel rays
// and planes behind the ray origin
func (p *Plane) Intersect(ray core.Ray) float64 {
	// Calculate denominator: dot product of ray direction and plane normal
	denominator := ray.Direction.Dot(p.normal)

	// Ray parallel to the plane, including rays lying in it
	if math.Abs(denominator) <= parallelEpsilon {
		return math.Inf(1)
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.point.Subtract(ray.Origin).Dot(p.normal) / denominator
	if t > 0 {
		return t
	}
	return math.Inf(1)
}

// Point returns the point the plane was constructed through
func (p *Plane) Point() core.Vec3 {
	return p.point
}

// Normal returns the plane normal, which is the same everywhere
func (p *Plane) Normal(point core.Vec3) core.Vec3 {
	return p.normal
}

// Material returns the plane's material
func (p *Plane) Material() material.Material {
	return p.material
}

func (p *Plane) String() string {
	return fmt.Sprintf("Plane(%v, position=%v, normal=%v)", p.material, p.point, p.normal)
}

func (p *Plane) shape() {}
