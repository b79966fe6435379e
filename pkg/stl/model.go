package stl

import (
	"math"

	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
)

// WeldTolerance is the grid size used to merge triangle corners into shared
// vertices. STL stores every triangle with its own copies of the corners, so
// without welding no two faces would share an edge.
const WeldTolerance = geometry.Epsilon

type gridKey [3]int64

// modelBuilder collects STL triangles into an indexed mesh.Model
type modelBuilder struct {
	model     *mesh.Model
	cells     map[gridKey][]int
	collapsed int
}

func newModelBuilder(name string) *modelBuilder {
	return &modelBuilder{
		model: mesh.NewModel(name),
		cells: make(map[gridKey][]int),
	}
}

func cellOf(p geometry.Vector3) gridKey {
	return gridKey{
		int64(math.Round(p.X / WeldTolerance)),
		int64(math.Round(p.Y / WeldTolerance)),
		int64(math.Round(p.Z / WeldTolerance)),
	}
}

// vertex returns the ID of the welded vertex at p, adding it on first use.
// Neighbouring cells are searched too, so corners that straddle a cell
// border still weld.
func (b *modelBuilder) vertex(p geometry.Vector3) int {
	key := cellOf(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, id := range b.cells[gridKey{key[0] + dx, key[1] + dy, key[2] + dz}] {
					if b.model.Point(id).ApproxEqual(p) {
						return id
					}
				}
			}
		}
	}

	id := b.model.VertexCount()
	b.cells[key] = append(b.cells[key], id)
	b.model.AddVertex(geometry.Vertex{ID: id, Position: p})
	return id
}

// addTriangle adds a face for the triangle. Triangles whose corners weld
// together are dropped and counted.
func (b *modelBuilder) addTriangle(v1, v2, v3 geometry.Vector3) {
	a, c, d := b.vertex(v1), b.vertex(v2), b.vertex(v3)
	if a == c || c == d || a == d {
		b.collapsed++
		return
	}
	b.model.AddFace(geometry.NewFace(a, c, d))
}
