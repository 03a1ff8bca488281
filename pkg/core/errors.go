package core

import "errors"

// MinLength is the smallest vector length that can still be normalized
const MinLength = 1e-9

// Construction errors. All of them are raised before rendering starts; the trace
// path itself never fails.
var (
	// ErrNonFinite is returned when a position, direction, normal or color contains NaN or Inf
	ErrNonFinite = errors.New("value contains NaN or Inf")

	// ErrDegenerateLength is returned when a vector that must be normalized is (nearly) zero
	ErrDegenerateLength = errors.New("vector length too close to zero")

	// ErrDegenerateCamera is returned when the camera position coincides with its look-at point
	ErrDegenerateCamera = errors.New("camera position and look_at are the same point")

	// ErrInvalidParameter is returned for out-of-range scalar parameters
	ErrInvalidParameter = errors.New("invalid parameter")
)
