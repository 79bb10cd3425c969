package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format      string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version     string // Usually "1.0"
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// LoadPLY loads a PLY file. Only vertex positions and face indices are kept.
func LoadPLY(path string) (*MeshData, error) {
	startTime := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ParsePLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Infof("Loaded %s: %d vertices, %d triangles in %v", path, len(data.Vertices), len(data.Faces), time.Since(startTime))
	return data, nil
}

// ParsePLY reads an ascii or binary PLY stream
func ParsePLY(r io.Reader) (*MeshData, error) {
	reader := bufio.NewReaderSize(r, 1024*1024)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, err
	}

	var body plyValueReader
	switch header.Format {
	case "ascii":
		body = &asciiValueReader{scanner: newWordScanner(reader)}
	case "binary_little_endian":
		body = &binaryValueReader{r: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		body = &binaryValueReader{r: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("format %q: %w", header.Format, ErrMalformedPLY)
	}

	return readPLYBody(header, body)
}

// parsePLYHeader consumes the header up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	var currentElement string
	first := true

	for {
		raw, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("header ended early: %v: %w", err, ErrMalformedPLY)
		}
		line := strings.TrimSpace(raw)

		if first {
			if line != "ply" {
				return nil, fmt.Errorf("missing ply magic: %w", ErrMalformedPLY)
			}
			first = false
			continue
		}
		if line == "end_header" {
			return header, nil
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line %q: %w", line, ErrMalformedPLY)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("invalid element count %q: %w", parts[2], ErrMalformedPLY)
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			switch currentElement {
			case "vertex":
				header.VertexProps = append(header.VertexProps, prop)
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition: %w", ErrMalformedPLY)
	}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition: %w", ErrMalformedPLY)
		}
		return PLYProperty{IsList: true, ListType: parts[1], DataType: parts[2], Name: parts[3]}, nil
	}

	return PLYProperty{Type: parts[0], Name: parts[1]}, nil
}

// plyValueReader reads one scalar of the given PLY type
type plyValueReader interface {
	read(plyType string) (float64, error)
}

func readPLYBody(header *PLYHeader, body plyValueReader) (*MeshData, error) {
	data := &MeshData{
		Vertices: make([]core.Vec3, 0, header.VertexCount),
		Faces:    make([][3]int, 0, header.FaceCount),
	}

	for i := 0; i < header.VertexCount; i++ {
		var xyz [3]float64
		for _, prop := range header.VertexProps {
			if prop.IsList {
				if _, err := readList(body, prop); err != nil {
					return nil, fmt.Errorf("vertex %d: %w", i, err)
				}
				continue
			}
			value, err := body.read(prop.Type)
			if err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
			switch prop.Name {
			case "x":
				xyz[0] = value
			case "y":
				xyz[1] = value
			case "z":
				xyz[2] = value
			}
		}
		data.Vertices = append(data.Vertices, core.NewVec3(xyz[0], xyz[1], xyz[2]))
	}

	for i := 0; i < header.FaceCount; i++ {
		for _, prop := range header.FaceProps {
			if !prop.IsList {
				if _, err := body.read(prop.Type); err != nil {
					return nil, fmt.Errorf("face %d: %w", i, err)
				}
				continue
			}

			values, err := readList(body, prop)
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
			if prop.Name != "vertex_indices" && prop.Name != "vertex_index" {
				continue
			}

			polygon := make([]int, len(values))
			for k, v := range values {
				index := int(v)
				if index < 0 || index >= header.VertexCount {
					return nil, fmt.Errorf("face %d index %d out of range: %w", i, index, ErrMalformedPLY)
				}
				polygon[k] = index
			}
			data.Faces = append(data.Faces, fan(polygon)...)
		}
	}

	return data, nil
}

func readList(body plyValueReader, prop PLYProperty) ([]float64, error) {
	count, err := body.read(prop.ListType)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("negative list length %v: %w", count, ErrMalformedPLY)
	}
	values := make([]float64, int(count))
	for k := range values {
		if values[k], err = body.read(prop.DataType); err != nil {
			return nil, err
		}
	}
	return values, nil
}

// binaryValueReader decodes packed binary scalars
type binaryValueReader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *binaryValueReader) read(plyType string) (float64, error) {
	size := plyTypeSize(plyType)
	if size == 0 {
		return 0, fmt.Errorf("unknown property type %q: %w", plyType, ErrMalformedPLY)
	}
	if _, err := io.ReadFull(b.r, b.buf[:size]); err != nil {
		return 0, fmt.Errorf("reading %s: %v: %w", plyType, err, ErrMalformedPLY)
	}

	raw := b.buf[:size]
	switch plyType {
	case "char", "int8":
		return float64(int8(raw[0])), nil
	case "uchar", "uint8":
		return float64(raw[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(raw))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(raw)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(raw))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(raw)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(raw))), nil
	default: // double, float64
		return math.Float64frombits(b.order.Uint64(raw)), nil
	}
}

// plyTypeSize returns the size in bytes of a PLY scalar type, or 0 if unknown
func plyTypeSize(plyType string) int {
	switch plyType {
	case "char", "int8", "uchar", "uint8":
		return 1
	case "short", "int16", "ushort", "uint16":
		return 2
	case "int", "int32", "uint", "uint32", "float", "float32":
		return 4
	case "double", "float64":
		return 8
	default:
		return 0
	}
}

// asciiValueReader parses whitespace separated scalars
type asciiValueReader struct {
	scanner *bufio.Scanner
}

func newWordScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return scanner
}

func (a *asciiValueReader) read(plyType string) (float64, error) {
	if plyTypeSize(plyType) == 0 {
		return 0, fmt.Errorf("unknown property type %q: %w", plyType, ErrMalformedPLY)
	}
	if !a.scanner.Scan() {
		return 0, fmt.Errorf("unexpected end of data: %w", ErrMalformedPLY)
	}
	value, err := strconv.ParseFloat(a.scanner.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", a.scanner.Text(), ErrMalformedPLY)
	}
	return value, nil
}
