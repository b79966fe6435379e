package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
	"github.com/philipparndt/lodconv/version"
)

type encodeOptions struct {
	groups bool
}

// EncodeOption configures Encode
type EncodeOption func(*encodeOptions)

// WithSurfaceGroups writes a usemtl record named after the surface label
// whenever the label changes between consecutive faces.
func WithSurfaceGroups() EncodeOption {
	return func(o *encodeOptions) {
		o.groups = true
	}
}

// Write encodes the model into filename, replacing any existing file
func Write(filename string, m *mesh.Model, opts ...EncodeOption) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Encode(file, m, opts...); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// Encode writes the vertices in model order, then the faces. Face indices are
// the 1-based positions of their vertices, so the output does not depend on
// the vertex IDs of the model.
func Encode(w io.Writer, m *mesh.Model, opts ...EncodeOption) error {
	o := encodeOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# lodconv %s\n", version.Version)
	fmt.Fprintf(bw, "# %d vertices, %d faces\n", m.VertexCount(), m.FaceCount())
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}

	buf := make([]byte, 0, 64)
	for _, v := range m.Vertices {
		buf = append(buf[:0], 'v')
		for _, c := range []float64{v.Position.X, v.Position.Y, v.Position.Z} {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c, 'f', -1, 64)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	current := geometry.Unknown
	for i, f := range m.Faces {
		if o.groups && (i == 0 || f.Surface != current) {
			fmt.Fprintf(bw, "usemtl %s\n", f.Surface)
			current = f.Surface
		}

		buf = append(buf[:0], 'f')
		for _, id := range f.VertexIDs {
			idx, ok := m.VertexIndex(id)
			if !ok {
				return fmt.Errorf("%w: face %d references unknown vertex %d", mesh.ErrMalformedModel, i, id)
			}
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx+1), 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write OBJ: %w", err)
	}
	return nil
}
