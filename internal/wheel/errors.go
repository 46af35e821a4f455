package wheel

import "errors"

var (
	// ErrInvalidSegmentCount is returned when too few active segments remain
	// for the requested mode (1 for normal, 2 for elimination).
	ErrInvalidSegmentCount = errors.New("wheel: invalid segment count")

	// ErrInvalidMode is returned for an unknown mode name.
	ErrInvalidMode = errors.New("wheel: invalid mode")

	// ErrInvalidPhysics is returned when physics constants cannot terminate a spin.
	ErrInvalidPhysics = errors.New("wheel: invalid physics")
)
