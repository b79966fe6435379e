// Package footprint turns the ground surface of a building mesh into 2D
// polygons and writes them as GeoJSON.
package footprint

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/lod"
	"github.com/philipparndt/lodconv/pkg/mesh"
)

// Footprint is the outline of the ground surface
type Footprint struct {
	Polygons orb.MultiPolygon
	// GroundZ is the lowest elevation of the ground faces
	GroundZ float64
	// OpenLoops counts boundary chains that do not close and were left out
	OpenLoops int
}

// FromModel builds the footprint from the Ground faces of a classified model.
// Every closed boundary loop becomes a ring: rings nested an even number of
// times are shells (counter-clockwise), the others are holes (clockwise) of
// the smallest shell around them.
func FromModel(m *mesh.Model) (*Footprint, error) {
	ground := m.FacesOf(geometry.Ground)
	if len(ground) == 0 {
		return nil, lod.ErrNoGroundSurface
	}

	fp := &Footprint{GroundZ: math.Inf(1)}
	for _, fi := range ground {
		minZ, _ := m.Faces[fi].ZRange(m)
		fp.GroundZ = math.Min(fp.GroundZ, minZ)
	}

	var rings []orb.Ring
	for _, loop := range lod.BoundaryLoops(lod.BoundaryEdges(m, ground)) {
		if !loop.Closed || len(loop.Vertices) < 3 {
			fp.OpenLoops++
			continue
		}
		ring := make(orb.Ring, 0, len(loop.Vertices)+1)
		for _, id := range loop.Vertices {
			ring = append(ring, orb.Point(m.Point(id).XY()))
		}
		ring = append(ring, ring[0])
		rings = append(rings, ring)
	}

	fp.Polygons = assemble(rings)
	return fp, nil
}

// assemble sorts rings into polygons by nesting depth
func assemble(rings []orb.Ring) orb.MultiPolygon {
	// Largest first so every container precedes what it contains
	sort.SliceStable(rings, func(i, j int) bool {
		return ringArea(rings[i]) > ringArea(rings[j])
	})

	parent := make([]int, len(rings))
	depth := make([]int, len(rings))
	for i := range rings {
		parent[i] = -1
		for j := i - 1; j >= 0; j-- {
			if within(rings[i], rings[j]) {
				// j is the smallest container seen so far
				parent[i] = j
				depth[i] = depth[j] + 1
				break
			}
		}
	}

	var mp orb.MultiPolygon
	shellOf := make(map[int]int)
	for i, ring := range rings {
		if depth[i]%2 == 0 {
			shellOf[i] = len(mp)
			mp = append(mp, orb.Polygon{orient(ring, orb.CCW)})
		}
	}
	for i, ring := range rings {
		if depth[i]%2 == 1 {
			p := shellOf[parent[i]]
			mp[p] = append(mp[p], orient(ring, orb.CW))
		}
	}
	return mp
}

// within reports whether inner lies inside outer. Shared vertices and edges
// count as inside, but at least one point of inner must be off the boundary
// of outer, so rings that only touch at a corner stay separate.
func within(inner, outer orb.Ring) bool {
	interior := false
	for _, p := range inner {
		if !planar.RingContains(outer, p) {
			return false
		}
		if planar.DistanceFrom(outer, p) > geometry.Epsilon {
			interior = true
		}
	}
	if interior {
		return true
	}

	// Every vertex is on the boundary: decide by the centroid
	c, _ := planar.CentroidArea(inner)
	return planar.RingContains(outer, c) && planar.DistanceFrom(outer, c) > geometry.Epsilon
}

func orient(r orb.Ring, o orb.Orientation) orb.Ring {
	if r.Orientation() != o {
		r = r.Clone()
		r.Reverse()
	}
	return r
}

func ringArea(r orb.Ring) float64 {
	return math.Abs(planar.Area(r))
}

// Area returns the enclosed area of the footprint, holes excluded
func (f *Footprint) Area() float64 {
	total := 0.0
	for _, p := range f.Polygons {
		total += math.Abs(planar.Area(p))
	}
	return total
}

// Feature returns the footprint as a GeoJSON feature carrying the block height
func (f *Footprint) Feature(height float64, props map[string]interface{}) *geojson.Feature {
	var g orb.Geometry = f.Polygons
	if len(f.Polygons) == 1 {
		g = f.Polygons[0]
	}

	feature := geojson.NewFeature(g)
	for k, v := range props {
		feature.Properties[k] = v
	}
	feature.Properties["height"] = height
	feature.Properties["ground_z"] = f.GroundZ
	feature.Properties["area"] = f.Area()
	return feature
}

// WriteGeoJSON writes the features as a FeatureCollection
func WriteGeoJSON(filename string, features ...*geojson.Feature) error {
	fc := geojson.NewFeatureCollection()
	for _, feature := range features {
		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write GeoJSON: %w", err)
	}
	return nil
}
