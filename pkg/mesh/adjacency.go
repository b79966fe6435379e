package mesh

import (
	"sort"

	"github.com/philipparndt/lodconv/pkg/geometry"
)

// Edge is an undirected edge keyed by its two vertex IDs, lower ID first
type Edge struct {
	A, B int
}

// NewEdge returns the canonical edge for two vertex IDs
func NewEdge(a, b int) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Adjacency maps each face (by position in the face list) to the faces that
// share an edge with it.
type Adjacency struct {
	neighbors [][]int
	edges     map[Edge][]int
}

// BuildAdjacency indexes faces by edge and links every pair of faces that
// share one. Edges used by more than two faces link all of them.
func BuildAdjacency(faces []geometry.Face) *Adjacency {
	edges := make(map[Edge][]int)
	for fi, f := range faces {
		for _, e := range f.Edges() {
			if e[0] == e[1] {
				continue
			}
			key := NewEdge(e[0], e[1])
			incident := edges[key]
			if len(incident) > 0 && incident[len(incident)-1] == fi {
				continue
			}
			edges[key] = append(incident, fi)
		}
	}

	sets := make([]map[int]struct{}, len(faces))
	for _, incident := range edges {
		for _, a := range incident {
			for _, b := range incident {
				if a == b {
					continue
				}
				if sets[a] == nil {
					sets[a] = make(map[int]struct{})
				}
				sets[a][b] = struct{}{}
			}
		}
	}

	neighbors := make([][]int, len(faces))
	for i, set := range sets {
		list := make([]int, 0, len(set))
		for n := range set {
			list = append(list, n)
		}
		sort.Ints(list)
		neighbors[i] = list
	}

	return &Adjacency{neighbors: neighbors, edges: edges}
}

// Len returns the number of indexed faces
func (a *Adjacency) Len() int {
	return len(a.neighbors)
}

// Neighbors returns the sorted indices of faces sharing an edge with face i
func (a *Adjacency) Neighbors(i int) []int {
	if i < 0 || i >= len(a.neighbors) {
		return nil
	}
	return a.neighbors[i]
}

// Adjacent reports whether faces i and j share an edge
func (a *Adjacency) Adjacent(i, j int) bool {
	list := a.Neighbors(i)
	k := sort.SearchInts(list, j)
	return k < len(list) && list[k] == j
}

// IncidentFaces returns the faces using the edge between vertices u and v
func (a *Adjacency) IncidentFaces(u, v int) []int {
	return a.edges[NewEdge(u, v)]
}

// Edges returns the distinct edges ordered by vertex IDs
func (a *Adjacency) Edges() []Edge {
	out := make([]Edge, 0, len(a.edges))
	for e := range a.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// EdgeCount returns the number of distinct edges
func (a *Adjacency) EdgeCount() int {
	return len(a.edges)
}

// EdgeUse counts edges by how many faces use them. Key 1 holds open
// (boundary) edges, key 2 manifold edges, higher keys non-manifold edges.
func (a *Adjacency) EdgeUse() map[int]int {
	use := make(map[int]int)
	for _, incident := range a.edges {
		use[len(incident)]++
	}
	return use
}

// BoundaryFaces returns the faces with fewer than expected neighbors, in face order.
// For a closed triangle mesh expected is 3.
func (a *Adjacency) BoundaryFaces(expected int) []int {
	var out []int
	for i, list := range a.neighbors {
		if len(list) < expected {
			out = append(out, i)
		}
	}
	return out
}
