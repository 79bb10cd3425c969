package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const quadOBJ = `# vertex count = 4
# face count = 1
v -0.5 0 -0.5
v 0.5 0 -0.5
v 0.5 0 0.5
v -0.5 0 0.5
f 1 4 3 2
`

func TestParseOBJ(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(data.Vertices) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(data.Vertices))
	}
	if data.Vertices[2] != core.NewVec3(0.5, 0, 0.5) {
		t.Errorf("Expected third vertex (0.5,0,0.5), got %v", data.Vertices[2])
	}

	expected := [][3]int{{0, 3, 2}, {0, 2, 1}}
	if len(data.Faces) != len(expected) {
		t.Fatalf("Expected %d triangles, got %d", len(expected), len(data.Faces))
	}
	for i := range expected {
		if data.Faces[i] != expected[i] {
			t.Errorf("Triangle %d: expected %v, got %v", i, expected[i], data.Faces[i])
		}
	}
}

func TestParseOBJ_FaceTokens(t *testing.T) {
	input := `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
f 1/1/1 2//1 -1
`
	data, err := ParseOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(data.Faces) != 1 || data.Faces[0] != [3]int{0, 1, 2} {
		t.Errorf("Expected one triangle {0,1,2}, got %v", data.Faces)
	}
}

func TestParseOBJ_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Short vertex", "v 1 2\n"},
		{"Bad coordinate", "v 1 two 3\n"},
		{"Index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"Zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"Two vertex face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"Vertex count mismatch", "# vertex count = 5\nv 0 0 0\n"},
		{"Face count mismatch", "# face count = 2\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(tt.input)); !errors.Is(err, ErrMalformedOBJ) {
				t.Errorf("Expected ErrMalformedOBJ, got %v", err)
			}
		})
	}
}

func TestLoadMesh(t *testing.T) {
	dir := t.TempDir()

	objPath := filepath.Join(dir, "quad.obj")
	if err := os.WriteFile(objPath, []byte(quadOBJ), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	data, err := LoadMesh(objPath)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(data.Faces) != 2 {
		t.Errorf("Expected 2 triangles, got %d", len(data.Faces))
	}

	if _, err := LoadMesh(filepath.Join(dir, "model.stl")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := LoadMesh(filepath.Join(dir, "missing.obj")); err == nil {
		t.Error("Expected error for missing file")
	}
}
