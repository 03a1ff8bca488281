package core

import "fmt"

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a ray after checking both vectors for NaN/Inf and normalizing the direction.
// It fails with ErrNonFinite or ErrDegenerateLength.
func NewRay(origin, direction Vec3) (Ray, error) {
	if err := CheckFinite(origin, direction); err != nil {
		return Ray{}, err
	}
	dir, err := Normalize(direction)
	if err != nil {
		return Ray{}, err
	}
	return Ray{Origin: origin, Direction: dir}, nil
}

// MakeRay creates a ray whose direction is known to be valid, e.g. one computed
// from an orthonormal basis or sampled around a unit normal. The direction is
// normalized but not validated.
func MakeRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// DefaultRay returns the ray from the origin along +X
func DefaultRay() Ray {
	return Ray{Origin: NewVec3(0, 0, 0), Direction: NewVec3(1, 0, 0)}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(%v, %v)", r.Origin, r.Direction)
}
