package material

import (
	"github.com/df07/go-padvinder/pkg/core"
)

// Material describes how a surface turns light arriving along a path into the
// color seen from the previous path vertex.
//
// Paths are traced backwards from the camera, so "incoming" refers to the
// light arriving from further along the path and "outgoing" to the direction
// back toward the camera. The set of materials is closed: Emission and Lambert.
type Material interface {
	// Color returns the base color of the material
	Color() core.Vec3

	// OutgoingDirection picks the direction the path continues in after hitting
	// a surface with the given unit normal, travelling along incoming.
	OutgoingDirection(normal, incoming core.Vec3, sampler core.Sampler) core.Vec3

	// Shade composes the color leaving the surface toward outgoingDirection from
	// incomingColor arriving along incomingDirection.
	Shade(normal, incomingColor, incomingDirection, outgoingDirection core.Vec3) core.Vec3

	material()
}

var (
	_ Material = (*Emission)(nil)
	_ Material = (*Lambert)(nil)
)
