package scene

import "errors"

var (
	ErrUnknownView   = errors.New("scene: unknown view direction")
	ErrLightIndex    = errors.New("scene: light index out of range")
	ErrInvalidSize   = errors.New("scene: image width and height must be positive")
	ErrMissingVolume = errors.New("scene: no bounding volume object in scene")
)
