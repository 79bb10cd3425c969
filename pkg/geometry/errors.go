package geometry

import "errors"

var (
	ErrFaceIndex = errors.New("geometry: face references a vertex that does not exist")
)
