package lod

import (
	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
)

// gableHouse is a closed 10x6 footprint at z=0 with two roof planes rising
// from the long edges to a ridge at z=3 along y=3.
func gableHouse() *mesh.Model {
	return mesh.New(
		[]geometry.Vertex{
			geometry.NewVertex(0, 0, 0, 0),
			geometry.NewVertex(1, 10, 0, 0),
			geometry.NewVertex(2, 10, 6, 0),
			geometry.NewVertex(3, 0, 6, 0),
			geometry.NewVertex(4, 0, 3, 3),
			geometry.NewVertex(5, 10, 3, 3),
		},
		[]geometry.Face{
			geometry.NewFace(0, 2, 1), // ground
			geometry.NewFace(0, 3, 2), // ground
			geometry.NewFace(0, 1, 5), // south roof
			geometry.NewFace(0, 5, 4), // south roof
			geometry.NewFace(2, 3, 4), // north roof
			geometry.NewFace(2, 4, 5), // north roof
			geometry.NewFace(3, 0, 4), // west gable
			geometry.NewFace(1, 2, 5), // east gable
		},
	)
}

// box is a closed w x d x h block with its floor at z0, triangulated
func box(w, d, h, z0 float64) *mesh.Model {
	return mesh.New(
		[]geometry.Vertex{
			geometry.NewVertex(0, 0, 0, z0),
			geometry.NewVertex(1, w, 0, z0),
			geometry.NewVertex(2, w, d, z0),
			geometry.NewVertex(3, 0, d, z0),
			geometry.NewVertex(4, 0, 0, z0+h),
			geometry.NewVertex(5, w, 0, z0+h),
			geometry.NewVertex(6, w, d, z0+h),
			geometry.NewVertex(7, 0, d, z0+h),
		},
		[]geometry.Face{
			geometry.NewFace(0, 2, 1), geometry.NewFace(0, 3, 2), // floor
			geometry.NewFace(4, 5, 6), geometry.NewFace(4, 6, 7), // roof
			geometry.NewFace(0, 1, 5), geometry.NewFace(0, 5, 4), // south
			geometry.NewFace(1, 2, 6), geometry.NewFace(1, 6, 5), // east
			geometry.NewFace(2, 3, 7), geometry.NewFace(2, 7, 6), // north
			geometry.NewFace(3, 0, 4), geometry.NewFace(3, 4, 7), // west
		},
	)
}

// flatSquare is a single 1x1 ground quad split into two triangles
func flatSquare() *mesh.Model {
	return mesh.New(
		[]geometry.Vertex{
			geometry.NewVertex(0, 0, 0, 0),
			geometry.NewVertex(1, 1, 0, 0),
			geometry.NewVertex(2, 1, 1, 0),
			geometry.NewVertex(3, 0, 1, 0),
		},
		[]geometry.Face{
			geometry.NewFace(0, 1, 2),
			geometry.NewFace(0, 2, 3),
		},
	)
}

// addAntenna adds a thin, steep, free-standing roof fragment reaching z=6
func addAntenna(m *mesh.Model) {
	base := 100
	m.AddVertex(geometry.NewVertex(base, 5, 1, 1.5))
	m.AddVertex(geometry.NewVertex(base+1, 5.2, 1, 1.5))
	m.AddVertex(geometry.NewVertex(base+2, 5.1, 1.1, 6))
	m.AddFace(geometry.NewFace(base, base+1, base+2))
}

func labels(m *mesh.Model) []geometry.SurfaceType {
	out := make([]geometry.SurfaceType, len(m.Faces))
	for i, f := range m.Faces {
		out[i] = f.Surface
	}
	return out
}
