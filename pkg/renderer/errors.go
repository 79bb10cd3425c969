package renderer

import "errors"

var (
	ErrUnsupportedThreading = errors.New("renderer: threading must be one of 1, 2, 4, 8 or 16")
	ErrTileOutOfBounds      = errors.New("renderer: tile exceeds the framebuffer")
	ErrNoScene              = errors.New("renderer: no scene to render")
)
