package geom

import "errors"

var (
	// ErrInsufficientVertices is returned when fewer than 3 distinct vertices remain after deduplication.
	ErrInsufficientVertices = errors.New("geom: fewer than 3 distinct vertices")
	// ErrSelfIntersection is returned when a ring crosses itself.
	ErrSelfIntersection = errors.New("geom: ring self-intersects")
	// ErrZeroArea is returned when a ring encloses no area (collinear vertices).
	ErrZeroArea = errors.New("geom: ring encloses no area")
	// ErrProjectionSpan is returned when a ring is too large for a single local projection.
	ErrProjectionSpan = errors.New("geom: ring exceeds local projection span")
)
