package material

import (
	"fmt"

	"github.com/df07/go-padvinder/pkg/core"
)

// Lambert represents a perfectly diffuse reflector
type Lambert struct {
	color   core.Vec3
	diffuse float64 // Fraction of incoming light that is reflected, in [0,1]
}

// NewLambert creates a new lambertian material
func NewLambert(color core.Vec3, diffuse float64) (*Lambert, error) {
	if err := core.CheckFinite(color); err != nil {
		return nil, fmt.Errorf("lambert color: %w", err)
	}
	if !(diffuse >= 0 && diffuse <= 1) {
		return nil, fmt.Errorf("lambert diffuse %g not in [0,1]: %w", diffuse, core.ErrInvalidParameter)
	}
	return &Lambert{color: color, diffuse: diffuse}, nil
}

// DefaultLambert returns a fresh grey material that reflects all light
func DefaultLambert() *Lambert {
	return &Lambert{color: core.NewVec3(0.5, 0.5, 0.5), diffuse: 1}
}

// Color returns the albedo of the material
func (l *Lambert) Color() core.Vec3 {
	return l.color
}

// Diffuse returns the diffuse reflection coefficient
func (l *Lambert) Diffuse() float64 {
	return l.diffuse
}

// OutgoingDirection samples a cosine-weighted bounce direction in the hemisphere of the normal
func (l *Lambert) OutgoingDirection(normal, incoming core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.SampleCosineHemisphere(normal, sampler.Get2D())
}

// Shade attenuates the incoming light by the diffuse coefficient and modulates it by the color.
//
// The BRDF is diffuse*color/π. With directions drawn from OutgoingDirection the
// sampling PDF is cosθ/π, so BRDF*cosθ/PDF reduces to diffuse*color.
func (l *Lambert) Shade(normal, incomingColor, incomingDirection, outgoingDirection core.Vec3) core.Vec3 {
	// incomingDirection points toward the surface
	cosTheta := -incomingDirection.Dot(normal)
	if cosTheta <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Below surface
	}
	return l.color.Multiply(l.diffuse).MultiplyVec(incomingColor)
}

func (l *Lambert) String() string {
	return fmt.Sprintf("Lambert(color=%v, diffuse=%g)", l.color, l.diffuse)
}

func (l *Lambert) material() {}
