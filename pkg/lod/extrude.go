package lod

import (
	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
)

// ExtrusionStats describes the solid produced by Extrude
type ExtrusionStats struct {
	GroundVertices int
	GroundFaces    int
	BoundaryEdges  int
	WallFaces      int
	Islands        int
	OpenLoops      int
}

// Extrude builds the LoD1.2 solid from the model's Ground faces: the ground
// itself as the bottom cap, a copy raised by height as the top cap, and a ring
// of walls along every boundary edge of the ground. Disconnected ground
// islands each become their own solid in the returned model.
//
// The returned model holds the ground vertices followed by their raised
// copies; the copy of vertex i has ID i+n. Cap windings are kept as they are.
func Extrude(m *mesh.Model, height float64, cfg Config) (*mesh.Model, ExtrusionStats, error) {
	ground := m.FacesOf(geometry.Ground)
	if len(ground) == 0 {
		return nil, ExtrusionStats{}, ErrNoGroundSurface
	}

	base := m.Compact(ground)
	n := base.VertexCount()

	out := mesh.NewModel(m.Name)
	for _, v := range base.Vertices {
		out.AddVertex(v)
	}
	for _, v := range base.Vertices {
		out.AddVertex(geometry.Vertex{ID: v.ID + n, Position: v.Position.Lift(height)})
	}

	top := func(id int) int { return id + n }

	faces := make([]geometry.Face, 0, 2*len(base.Faces))
	for _, f := range base.Faces {
		faces = append(faces, geometry.Face{VertexIDs: f.VertexIDs, Surface: geometry.Ground})
	}
	for _, f := range base.Faces {
		ids := make([]int, len(f.VertexIDs))
		for i, id := range f.VertexIDs {
			ids[i] = top(id)
		}
		faces = append(faces, geometry.Face{VertexIDs: ids, Surface: geometry.Roof})
	}

	all := make([]int, len(base.Faces))
	for i := range all {
		all[i] = i
	}
	edges := BoundaryEdges(base, all)

	walls := 0
	for _, e := range edges {
		a, b := e[0], e[1]
		switch cfg.WallFaces {
		case WallTriangles:
			faces = append(faces,
				geometry.Face{VertexIDs: []int{a, b, top(b)}, Surface: geometry.Wall},
				geometry.Face{VertexIDs: []int{a, top(b), top(a)}, Surface: geometry.Wall},
			)
			walls += 2
		default:
			faces = append(faces, geometry.Face{VertexIDs: []int{a, b, top(b), top(a)}, Surface: geometry.Wall})
			walls++
		}
	}
	out.SetFaces(faces)

	openLoops := 0
	for _, l := range BoundaryLoops(edges) {
		if !l.Closed {
			openLoops++
		}
	}

	stats := ExtrusionStats{
		GroundVertices: n,
		GroundFaces:    len(base.Faces),
		BoundaryEdges:  len(edges),
		WallFaces:      walls,
		Islands:        len(Islands(base, all)),
		OpenLoops:      openLoops,
	}
	return out, stats, nil
}
