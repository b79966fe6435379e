package footprint

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/lod"
	"github.com/philipparndt/lodconv/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ground(ids ...int) geometry.Face {
	return geometry.Face{VertexIDs: ids, Surface: geometry.Ground}
}

// frame is a 3x3 square at z=2 with a 1x1 courtyard in the middle
func frame() *mesh.Model {
	return mesh.New(
		[]geometry.Vertex{
			geometry.NewVertex(0, 0, 0, 2),
			geometry.NewVertex(1, 3, 0, 2),
			geometry.NewVertex(2, 3, 3, 2),
			geometry.NewVertex(3, 0, 3, 2),
			geometry.NewVertex(4, 1, 1, 2),
			geometry.NewVertex(5, 2, 1, 2),
			geometry.NewVertex(6, 2, 2, 2),
			geometry.NewVertex(7, 1, 2, 2),
		},
		[]geometry.Face{
			ground(0, 1, 5, 4),
			ground(1, 2, 6, 5),
			ground(2, 3, 7, 6),
			ground(3, 0, 4, 7),
		},
	)
}

func TestFromModelWithHole(t *testing.T) {
	fp, err := FromModel(frame())
	require.NoError(t, err)

	require.Len(t, fp.Polygons, 1)
	poly := fp.Polygons[0]
	require.Len(t, poly, 2)

	assert.Equal(t, orb.CCW, poly[0].Orientation())
	assert.Equal(t, orb.CW, poly[1].Orientation())
	assert.True(t, poly[0].Closed())
	assert.Len(t, poly[0], 5)

	assert.InDelta(t, 8.0, fp.Area(), 1e-9)
	assert.Equal(t, 2.0, fp.GroundZ)
	assert.Zero(t, fp.OpenLoops)
}

func TestFromModelIslands(t *testing.T) {
	m := mesh.New(
		[]geometry.Vertex{
			geometry.NewVertex(0, 0, 0, 0),
			geometry.NewVertex(1, 1, 0, 0),
			geometry.NewVertex(2, 1, 1, 0),
			geometry.NewVertex(3, 0, 1, 0),
			geometry.NewVertex(4, 5, 0, 0),
			geometry.NewVertex(5, 7, 0, 0),
			geometry.NewVertex(6, 7, 2, 0),
			geometry.NewVertex(7, 5, 2, 0),
		},
		[]geometry.Face{
			ground(0, 1, 2), ground(0, 2, 3),
			ground(4, 5, 6), ground(4, 6, 7),
			// a wall is ignored
			{VertexIDs: []int{0, 1, 5}, Surface: geometry.Wall},
		},
	)

	fp, err := FromModel(m)
	require.NoError(t, err)

	require.Len(t, fp.Polygons, 2)
	assert.InDelta(t, 5.0, fp.Area(), 1e-9)
	for _, p := range fp.Polygons {
		assert.Len(t, p, 1)
		assert.Equal(t, orb.CCW, p[0].Orientation())
	}
}

func TestFromModelIslandsTouchingAtCorner(t *testing.T) {
	m := mesh.New(
		[]geometry.Vertex{
			geometry.NewVertex(0, 0, 0, 0),
			geometry.NewVertex(1, 1, 0, 0),
			geometry.NewVertex(2, 1, 1, 0),
			geometry.NewVertex(3, 0, 1, 0),
			geometry.NewVertex(4, 2, 1, 0),
			geometry.NewVertex(5, 2, 2, 0),
			geometry.NewVertex(6, 1, 2, 0),
		},
		[]geometry.Face{
			ground(0, 1, 2, 3),
			ground(2, 4, 5, 6),
		},
	)

	fp, err := FromModel(m)
	require.NoError(t, err)

	require.Len(t, fp.Polygons, 2)
	assert.InDelta(t, 2.0, fp.Area(), 1e-9)
	for _, p := range fp.Polygons {
		assert.Len(t, p, 1)
	}
}

func TestWithin(t *testing.T) {
	outer := orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}

	tests := []struct {
		name  string
		inner orb.Ring
		want  bool
	}{
		{"strictly inside", orb.Ring{{1, 1}, {2, 1}, {2, 2}, {1, 1}}, true},
		{"touching an edge", orb.Ring{{0, 1}, {1, 1}, {1, 2}, {0, 1}}, true},
		{"touching a corner from outside", orb.Ring{{4, 4}, {5, 4}, {5, 5}, {4, 4}}, false},
		{"all vertices on the boundary", orb.Ring{{0, 0}, {4, 0}, {0, 4}, {0, 0}}, true},
		{"outside", orb.Ring{{5, 5}, {6, 5}, {6, 6}, {5, 5}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, within(tt.inner, outer))
		})
	}
}

func TestFromModelSingleTriangle(t *testing.T) {
	m := mesh.New(
		[]geometry.Vertex{
			geometry.NewVertex(0, 0, 0, 0),
			geometry.NewVertex(1, 1, 0, 0),
			geometry.NewVertex(2, 1, 1, 0),
		},
		[]geometry.Face{ground(0, 1, 2)},
	)

	fp, err := FromModel(m)
	require.NoError(t, err)
	require.Len(t, fp.Polygons, 1)
	assert.InDelta(t, 0.5, fp.Area(), 1e-9)
}

func TestFromModelNoGround(t *testing.T) {
	m := frame()
	for i := range m.Faces {
		m.Faces[i].Surface = geometry.Roof
	}

	_, err := FromModel(m)
	assert.ErrorIs(t, err, lod.ErrNoGroundSurface)
}

func TestFeatureAndWrite(t *testing.T) {
	fp, err := FromModel(frame())
	require.NoError(t, err)

	f := fp.Feature(7.5, map[string]interface{}{"name": "court"})
	assert.Equal(t, "Polygon", f.Geometry.GeoJSONType())
	assert.Equal(t, 7.5, f.Properties["height"])
	assert.Equal(t, 2.0, f.Properties["ground_z"])
	assert.Equal(t, "court", f.Properties["name"])

	path := filepath.Join(t.TempDir(), "fp.geojson")
	require.NoError(t, WriteGeoJSON(path, f))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "FeatureCollection", doc.Type)
	require.Len(t, doc.Features, 1)
	assert.Equal(t, 7.5, doc.Features[0].Properties["height"])
	assert.InDelta(t, 8.0, doc.Features[0].Properties["area"], 1e-9)
}
