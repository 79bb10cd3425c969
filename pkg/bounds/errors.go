package bounds

import "errors"

var (
	ErrNoVertices   = errors.New("bounds: cannot bound an object without vertices")
	ErrInvalidAngle = errors.New("bounds: angle step must be positive and not exceed the maximum angle")
	ErrUnknownKind  = errors.New("bounds: unknown bounding volume kind")
)
