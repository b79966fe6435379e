package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/lodconv/pkg/mesh"
	"github.com/philipparndt/lodconv/pkg/obj"
	"github.com/philipparndt/lodconv/pkg/stl"
)

// readModel decodes a mesh file, choosing the format by extension
func readModel(path string) (*mesh.Model, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return obj.Parse(path)
	case ".stl":
		return stl.Parse(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .obj or .stl)", ext)
	}
}

// writeModel encodes a mesh file, choosing the format by extension. Surface
// groups are only representable in OBJ.
func writeModel(path string, m *mesh.Model, semantic bool) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		var opts []obj.EncodeOption
		if semantic {
			opts = append(opts, obj.WithSurfaceGroups())
		}
		return obj.Write(path, m, opts...)
	case ".stl":
		return stl.Write(path, m)
	default:
		return fmt.Errorf("unsupported output format %q (want .obj or .stl)", ext)
	}
}
