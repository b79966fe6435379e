package stl

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
)

// Triangles fans every face of the model into triangles, keeping the face winding
func Triangles(m *mesh.Model) ([]*sdf.Triangle3, error) {
	tris := make([]*sdf.Triangle3, 0, m.FaceCount())

	for i, f := range m.Faces {
		if len(f.VertexIDs) < 3 {
			return nil, fmt.Errorf("%w: face %d has %d vertices", mesh.ErrMalformedModel, i, len(f.VertexIDs))
		}

		corners := make([]v3.Vec, len(f.VertexIDs))
		for j, id := range f.VertexIDs {
			if _, ok := m.VertexIndex(id); !ok {
				return nil, fmt.Errorf("%w: face %d references unknown vertex %d", mesh.ErrMalformedModel, i, id)
			}
			corners[j] = toVec(m.Point(id))
		}

		for j := 1; j < len(corners)-1; j++ {
			tris = append(tris, &sdf.Triangle3{corners[0], corners[j], corners[j+1]})
		}
	}
	return tris, nil
}

// Write saves the model as a binary STL file
func Write(filename string, m *mesh.Model) error {
	tris, err := Triangles(m)
	if err != nil {
		return err
	}
	if err := render.SaveSTL(filename, tris); err != nil {
		return fmt.Errorf("failed to write STL: %w", err)
	}
	return nil
}

func toVec(p geometry.Vector3) v3.Vec {
	return v3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}
