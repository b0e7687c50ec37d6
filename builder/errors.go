package builder

import "errors"

// Sentinel errors for mesh constructors. Branch with errors.Is; constructors
// attach context via %w wrapping and never panic at runtime.
var (
	// ErrIndexRange indicates a triangle in an index list references a
	// point index outside the point slice.
	ErrIndexRange = errors.New("builder: triangle index out of range")

	// ErrBadDimension indicates a size parameter is outside its allowed
	// range: radius must be positive, a UV sphere needs at least 3 segments
	// and 2 rings.
	ErrBadDimension = errors.New("builder: dimension parameter out of range")
)
