package geometry

// Vertex is a point with an identity that is stable within one model.
// Faces reference vertices by ID, never by coordinate equality.
type Vertex struct {
	ID       int
	Position Vector3
}

// NewVertex creates a vertex
func NewVertex(id int, x, y, z float64) Vertex {
	return Vertex{ID: id, Position: NewVector3(x, y, z)}
}

// PointSource resolves vertex IDs to coordinates.
type PointSource interface {
	Point(id int) Vector3
}
