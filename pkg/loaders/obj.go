package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// LoadOBJ loads a Wavefront OBJ file
func LoadOBJ(path string) (*MeshData, error) {
	startTime := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Infof("Loaded %s: %d vertices, %d triangles in %v", path, len(data.Vertices), len(data.Faces), time.Since(startTime))
	return data, nil
}

// ParseOBJ reads vertex positions and faces from OBJ text. Polygons are fan
// triangulated; texture and normal references in face tokens are ignored.
// The optional "# vertex count = N" and "# face count = N" comments are
// checked against the parsed data.
func ParseOBJ(r io.Reader) (*MeshData, error) {
	data := &MeshData{}
	declaredVertices, declaredFaces := -1, -1
	polygons := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if n, ok := headerCount(line, "vertex count"); ok {
				declaredVertices = n
			} else if n, ok := headerCount(line, "face count"); ok {
				declaredFaces = n
			}
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates: %w", lineNo, ErrMalformedOBJ)
			}
			var xyz [3]float64
			for k := range xyz {
				value, err := strconv.ParseFloat(fields[k+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %v: %w", lineNo, err, ErrMalformedOBJ)
				}
				xyz[k] = value
			}
			data.Vertices = append(data.Vertices, core.NewVec3(xyz[0], xyz[1], xyz[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices: %w", lineNo, ErrMalformedOBJ)
			}
			polygon := make([]int, 0, len(fields)-1)
			for _, token := range fields[1:] {
				index, err := faceIndex(token, len(data.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %v: %w", lineNo, err, ErrMalformedOBJ)
				}
				polygon = append(polygon, index)
			}
			data.Faces = append(data.Faces, fan(polygon)...)
			polygons++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ data: %w", err)
	}

	if declaredVertices >= 0 && declaredVertices != len(data.Vertices) {
		return nil, fmt.Errorf("declared %d vertices, found %d: %w", declaredVertices, len(data.Vertices), ErrMalformedOBJ)
	}
	if declaredFaces >= 0 && declaredFaces != polygons {
		return nil, fmt.Errorf("declared %d faces, found %d: %w", declaredFaces, polygons, ErrMalformedOBJ)
	}

	return data, nil
}

// faceIndex resolves a face token such as "3", "3/1/2" or "-1" to a zero-based index
func faceIndex(token string, vertexCount int) (int, error) {
	if slash := strings.IndexByte(token, '/'); slash >= 0 {
		token = token[:slash]
	}

	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", token)
	}

	switch {
	case index > 0 && index <= vertexCount:
		return index - 1, nil
	case index < 0 && -index <= vertexCount:
		return vertexCount + index, nil
	default:
		return 0, fmt.Errorf("face index %d out of range for %d vertices", index, vertexCount)
	}
}

// headerCount parses comments like "# vertex count = 42"
func headerCount(line, key string) (int, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	if !strings.HasPrefix(strings.ToLower(rest), key) {
		return 0, false
	}

	rest = strings.TrimSpace(rest[len(key):])
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "="))

	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
