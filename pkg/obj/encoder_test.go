package obj

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(t *testing.T, out string) []string {
	t.Helper()
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func TestEncode(t *testing.T) {
	m := mesh.New(
		[]geometry.Vertex{
			geometry.NewVertex(10, 0, 0, 0),
			geometry.NewVertex(20, 1.5, 0, 0),
			geometry.NewVertex(30, 1.5, 2, 0.25),
		},
		[]geometry.Face{geometry.NewFace(10, 20, 30), geometry.NewFace(30, 20, 10)},
	)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))

	assert.True(t, strings.HasPrefix(buf.String(), "# lodconv"))
	assert.Equal(t, []string{
		"v 0 0 0",
		"v 1.5 0 0",
		"v 1.5 2 0.25",
		"f 1 2 3",
		"f 3 2 1",
	}, records(t, buf.String()))
}

func TestEncodeSurfaceGroups(t *testing.T) {
	m := mesh.New(
		[]geometry.Vertex{
			geometry.NewVertex(0, 0, 0, 0),
			geometry.NewVertex(1, 1, 0, 0),
			geometry.NewVertex(2, 0, 1, 0),
		},
		[]geometry.Face{
			{VertexIDs: []int{0, 1, 2}, Surface: geometry.Ground},
			{VertexIDs: []int{0, 2, 1}, Surface: geometry.Ground},
			{VertexIDs: []int{0, 1, 2}, Surface: geometry.Wall},
		},
	)
	m.Name = "house"

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m, WithSurfaceGroups()))

	assert.Equal(t, []string{
		"o house",
		"v 0 0 0",
		"v 1 0 0",
		"v 0 1 0",
		"usemtl Ground",
		"f 1 2 3",
		"f 1 3 2",
		"usemtl Wall",
		"f 1 2 3",
	}, records(t, buf.String()))
}

func TestEncodeUnknownVertex(t *testing.T) {
	m := mesh.New(
		[]geometry.Vertex{geometry.NewVertex(0, 0, 0, 0)},
		[]geometry.Face{geometry.NewFace(0, 1, 2)},
	)

	err := Encode(&bytes.Buffer{}, m)
	assert.ErrorIs(t, err, mesh.ErrMalformedModel)
}

func TestWriteThenParse(t *testing.T) {
	m, err := Decode(strings.NewReader(square))
	require.NoError(t, err)
	m.Faces[0].Surface = geometry.Ground
	m.Faces[1].Surface = geometry.Roof

	path := filepath.Join(t.TempDir(), "out.obj")
	require.NoError(t, Write(path, m, WithSurfaceGroups()))

	back, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, m.Name, back.Name)
	assert.Equal(t, m.Vertices, back.Vertices)
	assert.Equal(t, m.Faces, back.Faces)
}
