package core

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D vector. It is used for positions, directions, normals and colors.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec2 represents a 2D vector, mostly used for sample pairs
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Normalize returns a unit vector in the same direction without validating the input.
// A zero vector stays zero. Use the package-level Normalize when the input is untrusted.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// IsFinite reports whether no component is NaN or Inf
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// IsClose reports whether every component of v is close to other, using the
// tolerance convention |a-b| <= atol + rtol*|b|.
func (v Vec3) IsClose(other Vec3, rtol, atol float64) bool {
	closeTo := func(a, b float64) bool {
		return math.Abs(a-b) <= atol+rtol*math.Abs(b)
	}
	return closeTo(v.X, other.X) && closeTo(v.Y, other.Y) && closeTo(v.Z, other.Z)
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// GammaCorrect applies gamma correction to color values
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X: math.Pow(v.X, invGamma),
		Y: math.Pow(v.Y, invGamma),
		Z: math.Pow(v.Z, invGamma),
	}
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (v Vec3) Luminance() float64 {
	return 0.299*v.X + 0.587*v.Y + 0.114*v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v.X, v.Y, v.Z)
}

// Normalize returns v scaled to unit length. It fails with ErrNonFinite if v contains
// NaN or Inf and with ErrDegenerateLength if the length of v is below 1e-9.
func Normalize(v Vec3) (Vec3, error) {
	if !v.IsFinite() {
		return Vec3{}, fmt.Errorf("can not normalize %v: %w", v, ErrNonFinite)
	}
	length := v.Length()
	if length < MinLength {
		return Vec3{}, fmt.Errorf("can not normalize %v: %w", v, ErrDegenerateLength)
	}
	return v.Multiply(1.0 / length), nil
}

// CheckFinite fails with ErrNonFinite if any component of the given vectors is NaN or Inf
func CheckFinite(values ...Vec3) error {
	for _, v := range values {
		if !v.IsFinite() {
			return fmt.Errorf("input was %v: %w", v, ErrNonFinite)
		}
	}
	return nil
}

// CheckFiniteScalars fails with ErrNonFinite if any value is NaN or Inf
func CheckFiniteScalars(values ...float64) error {
	for _, f := range values {
		if !isFinite(f) {
			return fmt.Errorf("input was %g: %w", f, ErrNonFinite)
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
