package material

import (
	"fmt"

	"github.com/df07/go-padvinder/pkg/core"
)

// Emission represents a light source. It terminates a path with a constant color.
type Emission struct {
	color core.Vec3
}

// NewEmission creates a new emissive material
func NewEmission(color core.Vec3) (*Emission, error) {
	if err := core.CheckFinite(color); err != nil {
		return nil, fmt.Errorf("emission color: %w", err)
	}
	return &Emission{color: color}, nil
}

// DefaultEmission returns a fresh white light of intensity 10
func DefaultEmission() *Emission {
	return &Emission{color: core.NewVec3(10, 10, 10)}
}

// Color returns the emitted color
func (e *Emission) Color() core.Vec3 {
	return e.color
}

// OutgoingDirection returns the normal; light sources do not continue a path
func (e *Emission) OutgoingDirection(normal, incoming core.Vec3, sampler core.Sampler) core.Vec3 {
	return normal
}

// Shade ignores all transport inputs and returns the emitted color
func (e *Emission) Shade(normal, incomingColor, incomingDirection, outgoingDirection core.Vec3) core.Vec3 {
	return e.color
}

func (e *Emission) String() string {
	return fmt.Sprintf("Emission(color=%v)", e.color)
}

func (e *Emission) material() {}
