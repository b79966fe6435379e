// Package obj reads and writes building meshes in the Wavefront OBJ format.
// Only geometry is kept: vertex positions and polygon faces.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
)

// Parse reads an OBJ file and returns a Model
func Parse(filename string) (*mesh.Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads OBJ records from r. Vertices get IDs in file order starting at 0
// and faces reference them through the 1-based (or negative, relative) indices
// of the file. A usemtl record naming a surface label (as written by
// WithSurfaceGroups) labels the faces that follow; any other material resets
// them to Unknown. Records other than v, f, o and usemtl are ignored.
func Decode(r io.Reader) (*mesh.Model, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	model := mesh.NewModel("")
	surface := geometry.Unknown
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "o":
			if len(fields) > 1 && model.Name == "" {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "usemtl":
			surface = geometry.Unknown
			if len(fields) > 1 {
				if st, err := geometry.ParseSurfaceType(fields[1]); err == nil {
					surface = st
				}
			}

		case "v":
			pos, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			model.AddVertex(geometry.Vertex{ID: model.VertexCount(), Position: pos})

		case "f":
			face, err := parseFace(fields[1:], model.VertexCount())
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			face.Surface = surface
			model.AddFace(face)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	return model, nil
}

// parseVertex reads "x y z [w]"; the optional weight is ignored
func parseVertex(fields []string) (geometry.Vector3, error) {
	if len(fields) < 3 {
		return geometry.Vector3{}, fmt.Errorf("%w: vertex needs 3 coordinates, got %d", mesh.ErrMalformedModel, len(fields))
	}

	var c [3]float64
	for i := range c {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("%w: bad coordinate %q", mesh.ErrMalformedModel, fields[i])
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// parseFace resolves face tokens against the vertices read so far. Each token
// is v, v/vt, v//vn or v/vt/vn; only v is used.
func parseFace(fields []string, vertexCount int) (geometry.Face, error) {
	if len(fields) < 3 {
		return geometry.Face{}, fmt.Errorf("%w: face needs at least 3 vertices, got %d", mesh.ErrMalformedModel, len(fields))
	}

	ids := make([]int, len(fields))
	for i, token := range fields {
		ref, _, _ := strings.Cut(token, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return geometry.Face{}, fmt.Errorf("%w: bad vertex reference %q", mesh.ErrMalformedModel, token)
		}

		switch {
		case idx > 0:
			idx--
		case idx < 0:
			idx += vertexCount
		default:
			return geometry.Face{}, fmt.Errorf("%w: vertex index 0 is invalid, indices start at 1", mesh.ErrMalformedModel)
		}

		if idx < 0 || idx >= vertexCount {
			return geometry.Face{}, fmt.Errorf("%w: vertex reference %q out of range (%d vertices)", mesh.ErrMalformedModel, token, vertexCount)
		}
		ids[i] = idx
	}
	return geometry.NewFace(ids...), nil
}
