// Package mesh holds the vertex/face model shared by the decoders, the
// conversion pipeline and the encoders.
package mesh

import (
	"fmt"

	"github.com/philipparndt/lodconv/pkg/geometry"
)

// Model is an indexed polygon mesh. Vertices keep insertion order so that
// re-serialization is stable; faces reference vertices by ID.
type Model struct {
	Name     string
	Vertices []geometry.Vertex
	Faces    []geometry.Face

	index     map[int]int
	adjacency *Adjacency
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:     name,
		Vertices: make([]geometry.Vertex, 0),
		Faces:    make([]geometry.Face, 0),
		index:    make(map[int]int),
	}
}

// New creates a model from existing vertices and faces
func New(vertices []geometry.Vertex, faces []geometry.Face) *Model {
	m := NewModel("")
	for _, v := range vertices {
		m.AddVertex(v)
	}
	m.Faces = append(m.Faces, faces...)
	return m
}

// AddVertex appends a vertex. Duplicate IDs are kept so Validate can report
// them; lookups resolve to the first.
func (m *Model) AddVertex(v geometry.Vertex) {
	if m.index == nil {
		m.reindex()
	}
	if _, exists := m.index[v.ID]; !exists {
		m.index[v.ID] = len(m.Vertices)
	}
	m.Vertices = append(m.Vertices, v)
}

// AddFace appends a face and invalidates the adjacency index
func (m *Model) AddFace(f geometry.Face) {
	m.Faces = append(m.Faces, f)
	m.adjacency = nil
}

// SetFaces replaces the face list and invalidates the adjacency index
func (m *Model) SetFaces(faces []geometry.Face) {
	m.Faces = faces
	m.adjacency = nil
}

// RemoveFaces drops every face for which remove returns true and returns the
// number of faces removed
func (m *Model) RemoveFaces(remove func(geometry.Face) bool) int {
	kept := m.Faces[:0]
	for _, f := range m.Faces {
		if !remove(f) {
			kept = append(kept, f)
		}
	}
	removed := len(m.Faces) - len(kept)
	m.SetFaces(kept)
	return removed
}

// VertexCount returns the number of vertices in the model
func (m *Model) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces in the model
func (m *Model) FaceCount() int {
	return len(m.Faces)
}

// VertexIndex returns the position of the vertex with the given ID
func (m *Model) VertexIndex(id int) (int, bool) {
	if m.index == nil {
		m.reindex()
	}
	i, ok := m.index[id]
	return i, ok
}

// Point returns the coordinate of the vertex with the given ID. Unknown IDs
// resolve to the origin; Validate rejects models that contain them.
func (m *Model) Point(id int) geometry.Vector3 {
	i, ok := m.VertexIndex(id)
	if !ok {
		return geometry.Vector3{}
	}
	return m.Vertices[i].Position
}

// MinZ returns the lowest vertex elevation; ok is false for a model without vertices
func (m *Model) MinZ() (minZ float64, ok bool) {
	if len(m.Vertices) == 0 {
		return 0, false
	}
	minZ = m.Vertices[0].Position.Z
	for _, v := range m.Vertices[1:] {
		if v.Position.Z < minZ {
			minZ = v.Position.Z
		}
	}
	return minZ, true
}

// BoundingBox calculates the bounding box of all vertices
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v.Position)
	}
	return bbox
}

// FacesOf returns the indices of faces with the given label, in face order
func (m *Model) FacesOf(surface geometry.SurfaceType) []int {
	var idx []int
	for i, f := range m.Faces {
		if f.Surface == surface {
			idx = append(idx, i)
		}
	}
	return idx
}

// Adjacency returns the face adjacency index, building it on first use
func (m *Model) Adjacency() *Adjacency {
	if m.adjacency == nil {
		m.adjacency = BuildAdjacency(m.Faces)
	}
	return m.adjacency
}

// Validate checks the structural invariants the conversion relies on
func (m *Model) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrMalformedModel)
	}
	if len(m.Faces) == 0 {
		return fmt.Errorf("%w: no faces", ErrMalformedModel)
	}

	seen := make(map[int]struct{}, len(m.Vertices))
	for _, v := range m.Vertices {
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("%w: duplicate vertex id %d", ErrMalformedModel, v.ID)
		}
		seen[v.ID] = struct{}{}
	}

	for i, f := range m.Faces {
		if len(f.VertexIDs) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices, need at least 3", ErrMalformedModel, i, len(f.VertexIDs))
		}
		for _, id := range f.VertexIDs {
			if _, ok := seen[id]; !ok {
				return fmt.Errorf("%w: face %d references unknown vertex %d", ErrMalformedModel, i, id)
			}
		}
	}
	return nil
}

// Compact returns a new model holding only the given faces and the vertices
// they reference. Vertex order is preserved and IDs are renumbered 0..n-1.
func (m *Model) Compact(faceIdx []int) *Model {
	used := make(map[int]bool)
	for _, fi := range faceIdx {
		for _, id := range m.Faces[fi].VertexIDs {
			used[id] = true
		}
	}

	out := NewModel(m.Name)
	remap := make(map[int]int, len(used))
	for _, v := range m.Vertices {
		if !used[v.ID] {
			continue
		}
		if _, done := remap[v.ID]; done {
			continue
		}
		newID := len(out.Vertices)
		remap[v.ID] = newID
		out.AddVertex(geometry.Vertex{ID: newID, Position: v.Position})
	}

	for _, fi := range faceIdx {
		src := m.Faces[fi]
		ids := make([]int, len(src.VertexIDs))
		for i, id := range src.VertexIDs {
			ids[i] = remap[id]
		}
		out.AddFace(geometry.Face{VertexIDs: ids, Surface: src.Surface})
	}
	return out
}

func (m *Model) reindex() {
	m.index = make(map[int]int, len(m.Vertices))
	for i, v := range m.Vertices {
		if _, exists := m.index[v.ID]; !exists {
			m.index[v.ID] = i
		}
	}
}
