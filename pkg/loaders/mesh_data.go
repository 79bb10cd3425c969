package loaders

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/log"
)

var (
	ErrMalformedOBJ      = errors.New("loaders: malformed OBJ data")
	ErrMalformedPLY      = errors.New("loaders: malformed PLY data")
	ErrUnsupportedFormat = errors.New("loaders: unsupported mesh file format")
)

var logger = log.New("loaders")

// MeshData is a triangle mesh as read from disk, before any transform
type MeshData struct {
	Vertices []core.Vec3
	Faces    [][3]int // Zero-based vertex indices
}

// LoadMesh loads a .obj or .ply file based on its extension
func LoadMesh(path string) (*MeshData, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".ply":
		return LoadPLY(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// fan triangulates a convex polygon around its first vertex
func fan(polygon []int) [][3]int {
	if len(polygon) < 3 {
		return nil
	}
	faces := make([][3]int, 0, len(polygon)-2)
	for k := 1; k < len(polygon)-1; k++ {
		faces = append(faces, [3]int{polygon[0], polygon[k], polygon[k+1]})
	}
	return faces
}
