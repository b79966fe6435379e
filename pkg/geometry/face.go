package geometry

import "math"

// Up is the vertical axis
var Up = Vector3{X: 0, Y: 0, Z: 1}

// Face is a planar polygon referencing vertices by ID.
// All derived properties are computed from the PointSource on demand.
type Face struct {
	VertexIDs []int
	Surface   SurfaceType
}

// NewFace creates an unclassified face
func NewFace(ids ...int) Face {
	return Face{VertexIDs: ids, Surface: Unknown}
}

// Normal returns the unit normal from the cross product of the first two edges,
// following the face's own winding. The sign is not corrected; a degenerate
// face reports Up.
func (f Face) Normal(src PointSource) Vector3 {
	if len(f.VertexIDs) < 3 {
		return Up
	}

	p0 := src.Point(f.VertexIDs[0])
	p1 := src.Point(f.VertexIDs[1])
	p2 := src.Point(f.VertexIDs[2])

	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Length() < Epsilon {
		return Up
	}
	return n.Normalize()
}

// AngleToVertical returns the angle in degrees between the face normal and the
// vertical axis, folded into [0, 90] so either winding gives the same answer.
func (f Face) AngleToVertical(src PointSource) float64 {
	cos := math.Abs(f.Normal(src).Dot(Up))
	if cos > 1 {
		cos = 1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// ZRange returns the minimum and maximum Z over the face's vertices
func (f Face) ZRange(src PointSource) (float64, float64) {
	if len(f.VertexIDs) == 0 {
		return 0, 0
	}

	minZ := src.Point(f.VertexIDs[0]).Z
	maxZ := minZ
	for _, id := range f.VertexIDs[1:] {
		z := src.Point(id).Z
		minZ = math.Min(minZ, z)
		maxZ = math.Max(maxZ, z)
	}
	return minZ, maxZ
}

// Height returns max Z - min Z
func (f Face) Height(src PointSource) float64 {
	minZ, maxZ := f.ZRange(src)
	return maxZ - minZ
}

// ProjectedArea returns the area of the face projected onto the XY plane.
// Polygons are fanned from the first vertex.
func (f Face) ProjectedArea(src PointSource) float64 {
	if len(f.VertexIDs) < 3 {
		return 0
	}

	p0 := src.Point(f.VertexIDs[0])
	total := 0.0
	for i := 1; i < len(f.VertexIDs)-1; i++ {
		p1 := src.Point(f.VertexIDs[i])
		p2 := src.Point(f.VertexIDs[i+1])

		ax, ay := p1.X-p0.X, p1.Y-p0.Y
		bx, by := p2.X-p0.X, p2.Y-p0.Y
		total += math.Abs(ax*by-ay*bx) / 2
	}
	return total
}

// Area returns the 3D surface area of the face
func (f Face) Area(src PointSource) float64 {
	if len(f.VertexIDs) < 3 {
		return 0
	}

	p0 := src.Point(f.VertexIDs[0])
	total := 0.0
	for i := 1; i < len(f.VertexIDs)-1; i++ {
		e1 := src.Point(f.VertexIDs[i]).Sub(p0)
		e2 := src.Point(f.VertexIDs[i+1]).Sub(p0)
		total += e1.Cross(e2).Length() / 2
	}
	return total
}

// Edges returns the directed edges of the face in winding order, closing the loop
func (f Face) Edges() [][2]int {
	n := len(f.VertexIDs)
	if n < 2 {
		return nil
	}

	edges := make([][2]int, 0, n)
	for i, id := range f.VertexIDs {
		edges = append(edges, [2]int{id, f.VertexIDs[(i+1)%n]})
	}
	return edges
}

// IsAdjacentTo reports whether the faces share at least two distinct vertex IDs
func (f Face) IsAdjacentTo(other Face) bool {
	shared := make(map[int]struct{}, 2)
	for _, id := range f.VertexIDs {
		if _, counted := shared[id]; counted {
			continue
		}
		for _, o := range other.VertexIDs {
			if id == o {
				shared[id] = struct{}{}
				break
			}
		}
		if len(shared) >= 2 {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the ID slice
func (f Face) Clone() Face {
	ids := make([]int, len(f.VertexIDs))
	copy(ids, f.VertexIDs)
	return Face{VertexIDs: ids, Surface: f.Surface}
}
