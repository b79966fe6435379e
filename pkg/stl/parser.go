// Package stl reads STL files into indexed building meshes and writes meshes
// back out as binary STL.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
)

const (
	headerSize   = 80
	triangleSize = 50
)

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*mesh.Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads an ASCII or binary STL stream. Corners closer than
// WeldTolerance are merged into one vertex.
func Decode(r io.Reader) (*mesh.Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL: %w", err)
	}

	// Binary files may also start with "solid", so trust the size first
	if isBinary(data) {
		return parseBinary(bytes.NewReader(data))
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return parseASCII(bytes.NewReader(data))
	}
	return parseBinary(bytes.NewReader(data))
}

func isBinary(data []byte) bool {
	if len(data) < headerSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[headerSize : headerSize+4])
	return int64(len(data)) == headerSize+4+int64(count)*triangleSize
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*mesh.Model, error) {
	scanner := bufio.NewScanner(reader)
	builder := newModelBuilder("")

	var vertices []geometry.Vector3
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 && builder.model.Name == "" {
				builder.model.Name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %w: vertex needs 3 coordinates", lineNo, mesh.ErrMalformedModel)
			}
			var c [3]float64
			for i := range c {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w: bad coordinate %q", lineNo, mesh.ErrMalformedModel, fields[i+1])
				}
				c[i] = v
			}
			vertices = append(vertices, geometry.NewVector3(c[0], c[1], c[2]))

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("line %d: %w: facet has %d vertices", lineNo, mesh.ErrMalformedModel, len(vertices))
			}
			builder.addTriangle(vertices[0], vertices[1], vertices[2])
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return builder.model, nil
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*mesh.Model, error) {
	// Read 80-byte header
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	builder := newModelBuilder(strings.TrimSpace(string(bytes.TrimRight(header, "\x00"))))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	// normal, three corners and the attribute byte count
	var record struct {
		Normal    [3]float32
		Corners   [3][3]float32
		Attribute uint16
	}
	for i := uint32(0); i < triangleCount; i++ {
		if err := binary.Read(reader, binary.LittleEndian, &record); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		var corners [3]geometry.Vector3
		for j, c := range record.Corners {
			corners[j] = geometry.NewVector3(float64(c[0]), float64(c[1]), float64(c[2]))
		}
		builder.addTriangle(corners[0], corners[1], corners[2])
	}

	return builder.model, nil
}
