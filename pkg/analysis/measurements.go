// Package analysis reports statistics of building meshes
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
	"github.com/samber/lo"
)

// EdgeInfo contains information about an edge in the model
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	// Faces is the number of faces using the edge
	Faces int
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	ProjectedArea float64
	VertexCount   int
	FaceCount     int
	EdgeCount     int
	// BoundaryEdges are used by a single face, NonManifoldEdges by three or more
	BoundaryEdges    int
	NonManifoldEdges int
	Surfaces         map[geometry.SurfaceType]int
	MinEdgeLength    float64
	MaxEdgeLength    float64
	AvgEdgeLength    float64
	AllEdges         []EdgeInfo
}

// AnalyzeModel performs comprehensive analysis on a mesh. Edges shared by
// several faces are reported once.
func AnalyzeModel(model *mesh.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox: model.BoundingBox(),
		VertexCount: model.VertexCount(),
		FaceCount:   model.FaceCount(),
		AllEdges:    make([]EdgeInfo, 0),
	}

	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	for _, f := range model.Faces {
		result.SurfaceArea += f.Area(model)
		result.ProjectedArea += f.ProjectedArea(model)
	}

	result.Surfaces = lo.CountValuesBy(model.Faces, func(f geometry.Face) geometry.SurfaceType {
		return f.Surface
	})

	adj := model.Adjacency()
	use := adj.EdgeUse()
	result.BoundaryEdges = use[1]
	for n, count := range use {
		if n >= 3 {
			result.NonManifoldEdges += count
		}
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, e := range adj.Edges() {
		start, end := model.Point(e.A), model.Point(e.B)
		length := start.Distance(end)

		result.AllEdges = append(result.AllEdges, EdgeInfo{
			Start:  start,
			End:    end,
			Length: length,
			Faces:  len(adj.IncidentFaces(e.A, e.B)),
		})

		totalLength += length
		minLength = math.Min(minLength, length)
		maxLength = math.Max(maxLength, length)
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	return lo.Filter(result.AllEdges, func(e EdgeInfo, _ int) bool {
		return e.Length >= minLength && e.Length <= maxLength
	})
}

// FindOpenEdges returns the edges used by exactly one face
func FindOpenEdges(result *MeasurementResult) []EdgeInfo {
	return lo.Filter(result.AllEdges, func(e EdgeInfo, _ int) bool {
		return e.Faces == 1
	})
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// IsClosed reports whether every edge is shared by exactly two faces
func (r *MeasurementResult) IsClosed() bool {
	return r.EdgeCount > 0 && r.BoundaryEdges == 0 && r.NonManifoldEdges == 0
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
