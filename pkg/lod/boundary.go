package lod

import (
	"sort"

	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
)

// BoundaryEdges returns the edges used by exactly one face of the subset,
// directed as they are wound in that face. Order follows faceIdx and then
// each face's winding.
func BoundaryEdges(m *mesh.Model, faceIdx []int) [][2]int {
	subset := make([]geometry.Face, len(faceIdx))
	for i, fi := range faceIdx {
		subset[i] = m.Faces[fi]
	}
	adj := mesh.BuildAdjacency(subset)

	var edges [][2]int
	for _, f := range subset {
		for _, e := range f.Edges() {
			if e[0] == e[1] {
				continue
			}
			if len(adj.IncidentFaces(e[0], e[1])) == 1 {
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// Loop is a chain of boundary vertices. A closed loop returns to its first
// vertex after the last one; the first vertex is not repeated.
type Loop struct {
	Vertices []int
	Closed   bool
}

// BoundaryLoops chains boundary edges into loops. Edges are followed without
// regard to direction so inconsistently wound input still closes. Where more
// than two boundary edges meet at one vertex the lowest unused edge wins.
func BoundaryLoops(edges [][2]int) []Loop {
	incident := make(map[int][]int)
	for i, e := range edges {
		incident[e[0]] = append(incident[e[0]], i)
		incident[e[1]] = append(incident[e[1]], i)
	}

	used := make([]bool, len(edges))
	next := func(v int) (int, bool) {
		for _, ei := range incident[v] {
			if !used[ei] {
				return ei, true
			}
		}
		return 0, false
	}

	var loops []Loop
	for start := range edges {
		if used[start] {
			continue
		}
		used[start] = true

		first := edges[start][0]
		vertices := []int{first}
		cur := edges[start][1]
		closed := false
		for {
			if cur == first {
				closed = true
				break
			}
			vertices = append(vertices, cur)

			ei, ok := next(cur)
			if !ok {
				break
			}
			used[ei] = true
			if edges[ei][0] == cur {
				cur = edges[ei][1]
			} else {
				cur = edges[ei][0]
			}
		}
		loops = append(loops, Loop{Vertices: vertices, Closed: closed})
	}
	return loops
}

// Islands groups the subset into connected components under face adjacency.
// Each island lists face indices in ascending order; islands are ordered by
// their lowest face index.
func Islands(m *mesh.Model, faceIdx []int) [][]int {
	in := make(map[int]bool, len(faceIdx))
	for _, fi := range faceIdx {
		in[fi] = true
	}

	adj := m.Adjacency()
	seen := make(map[int]bool, len(faceIdx))

	sorted := append([]int(nil), faceIdx...)
	sort.Ints(sorted)

	var islands [][]int
	for _, start := range sorted {
		if seen[start] {
			continue
		}
		seen[start] = true

		island := []int{}
		queue := []int{start}
		for len(queue) > 0 {
			fi := queue[0]
			queue = queue[1:]
			island = append(island, fi)

			for _, n := range adj.Neighbors(fi) {
				if in[n] && !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		sort.Ints(island)
		islands = append(islands, island)
	}
	return islands
}
