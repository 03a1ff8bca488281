package geometry

import (
	"fmt"

	"github.com/df07/go-padvinder/pkg/core"
)

// Tolerances used to decide whether the camera position and look-at point coincide
const (
	cameraRelTolerance = 1e-5
	cameraAbsTolerance = 1e-8
)

// referenceFocalLength is the focal length (in mm, 35mm-equivalent) that places the
// image plane at unit distance from the camera
const referenceFocalLength = 24.0

// Camera holds an orthonormal camera basis. The optical axis runs from the camera
// position through the look-at point; the up vector given by the user only needs to
// point vaguely upwards. Camera itself has no image plane and cannot generate rays;
// use PerspectiveCamera for rendering.
type Camera struct {
	position    core.Vec3
	opticalAxis core.Vec3
	right       core.Vec3
	up          core.Vec3
}

// NewCamera builds the camera basis.
//
// It fails with ErrNonFinite for NaN/Inf inputs, ErrDegenerateCamera when position and
// lookAt coincide, and ErrDegenerateLength when up is zero or parallel to the optical axis.
func NewCamera(position, up, lookAt core.Vec3) (*Camera, error) {
	if err := core.CheckFinite(position, up, lookAt); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	if position.IsClose(lookAt, cameraRelTolerance, cameraAbsTolerance) {
		return nil, fmt.Errorf("camera at %v looking at %v: %w", position, lookAt, core.ErrDegenerateCamera)
	}

	vagueUp, err := core.Normalize(up)
	if err != nil {
		return nil, fmt.Errorf("camera up: %w", err)
	}
	opticalAxis, err := core.Normalize(lookAt.Subtract(position))
	if err != nil {
		return nil, fmt.Errorf("camera optical axis: %w", err)
	}
	right, err := core.Normalize(vagueUp.Cross(opticalAxis))
	if err != nil {
		return nil, fmt.Errorf("camera up %v is parallel to the optical axis: %w", up, err)
	}

	return &Camera{
		position:    position,
		opticalAxis: opticalAxis,
		right:       right,
		up:          opticalAxis.Cross(right),
	}, nil
}

// DefaultCamera returns a camera at the origin looking down +Z with +Y up
func DefaultCamera() *Camera {
	return &Camera{
		position:    core.NewVec3(0, 0, 0),
		opticalAxis: core.NewVec3(0, 0, 1),
		right:       core.NewVec3(1, 0, 0),
		up:          core.NewVec3(0, 1, 0),
	}
}

// Position returns the origin of all primary rays
func (c *Camera) Position() core.Vec3 { return c.position }

// OpticalAxis returns the unit viewing direction
func (c *Camera) OpticalAxis() core.Vec3 { return c.opticalAxis }

// Right returns the unit vector spanning the image plane horizontally
func (c *Camera) Right() core.Vec3 { return c.right }

// Up returns the orthogonalized unit up vector
func (c *Camera) Up() core.Vec3 { return c.up }

func (c *Camera) String() string {
	return fmt.Sprintf("Camera(position=%v, up=%v, optical axis=%v)", c.position, c.up, c.opticalAxis)
}

// PerspectiveCamera is a pinhole camera with an image plane in front of the camera
// position. The focal length follows the 35mm convention: 24 puts the image plane
// at unit distance.
type PerspectiveCamera struct {
	Camera
	focalLength      float64
	imagePlaneCenter core.Vec3
}

// NewPerspectiveCamera creates a perspective camera; focalLength must be positive
func NewPerspectiveCamera(position, up, lookAt core.Vec3, focalLength float64) (*PerspectiveCamera, error) {
	base, err := NewCamera(position, up, lookAt)
	if err != nil {
		return nil, err
	}
	if err := core.CheckFiniteScalars(focalLength); err != nil {
		return nil, fmt.Errorf("focal length: %w", err)
	}
	if focalLength <= 0 {
		return nil, fmt.Errorf("focal length %g must be larger than zero: %w", focalLength, core.ErrInvalidParameter)
	}
	return newPerspective(*base, focalLength), nil
}

// DefaultPerspectiveCamera returns the default camera with a 24mm focal length
func DefaultPerspectiveCamera() *PerspectiveCamera {
	return newPerspective(*DefaultCamera(), referenceFocalLength)
}

func newPerspective(base Camera, focalLength float64) *PerspectiveCamera {
	return &PerspectiveCamera{
		Camera:           base,
		focalLength:      focalLength,
		imagePlaneCenter: base.position.Add(base.opticalAxis.Multiply(focalLength / referenceFocalLength)),
	}
}

// FocalLength returns the 35mm-equivalent focal length
func (c *PerspectiveCamera) FocalLength() float64 { return c.focalLength }

// ImagePlaneCenter returns the point the central primary ray passes through
func (c *PerspectiveCamera) ImagePlaneCenter() core.Vec3 { return c.imagePlaneCenter }

// Ray generates the primary ray for pixel (px, py) of an image with dimensions (dx, dy).
//
// Pixel coordinates follow image indexing: (0,0) is the upper-left corner, px selects
// the row and py the column. Both are mapped to [-1,1] relative to the larger image
// dimension, with increasing indices moving toward -1. With jitter the ray is offset
// by up to one pixel in each direction for anti-aliasing.
func (c *PerspectiveCamera) Ray(px, py, dx, dy int, sampler core.Sampler, jitter bool) core.Ray {
	maxDim := float64(max(dx, dy))
	x := float64(dx-2*px) / maxDim
	y := float64(dy-2*py) / maxDim

	if jitter {
		offset := core.SampleSquare(sampler.Get2D())
		x += offset.X / float64(dx)
		y += offset.Y / float64(dy)
	}

	world := c.imagePlaneCenter.Add(c.right.Multiply(x)).Add(c.up.Multiply(y))
	return core.MakeRay(c.position, world.Subtract(c.position))
}

func (c *PerspectiveCamera) String() string {
	return fmt.Sprintf("PerspectiveCamera(position=%v, up=%v, optical axis=%v, focal length=%g)",
		c.position, c.up, c.opticalAxis, c.focalLength)
}
