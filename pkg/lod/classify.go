// Package lod converts LoD2.2 building meshes into LoD1.2 block models:
// faces are labelled from their geometry, a single height is derived from
// the roof, and the ground footprint is extruded to that height.
package lod

import (
	"fmt"

	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
	"github.com/samber/lo"
)

// Counts is the number of faces per label
type Counts struct {
	Ground int
	Wall   int
	Roof   int
}

// Total returns the number of labelled faces
func (c Counts) Total() int {
	return c.Ground + c.Wall + c.Roof
}

// CountSurfaces tallies the labels of the model's faces
func CountSurfaces(m *mesh.Model) Counts {
	return Counts{
		Ground: lo.CountBy(m.Faces, func(f geometry.Face) bool { return f.Surface == geometry.Ground }),
		Wall:   lo.CountBy(m.Faces, func(f geometry.Face) bool { return f.Surface == geometry.Wall }),
		Roof:   lo.CountBy(m.Faces, func(f geometry.Face) bool { return f.Surface == geometry.Roof }),
	}
}

// ClassifyFace labels a single face. minZ is the lowest elevation of the whole model.
// Ground is tested first, so a low near-horizontal face is never a wall or roof.
func ClassifyFace(f geometry.Face, src geometry.PointSource, minZ float64, cfg Config) geometry.SurfaceType {
	angle := f.AngleToVertical(src)
	faceMinZ, _ := f.ZRange(src)

	if geometry.Within(angle, 0, cfg.GroundAngle) && geometry.Within(faceMinZ, minZ, cfg.GroundHeightTolerance) {
		return geometry.Ground
	}
	if geometry.Within(angle, 90, cfg.WallAngle) {
		return geometry.Wall
	}
	return geometry.Roof
}

// Classify labels every face of the model in place. Each face is judged on its
// own geometry against the model's minimum z; no labels propagate between faces.
func Classify(m *mesh.Model, cfg Config) (Counts, error) {
	if len(m.Faces) == 0 {
		return Counts{}, fmt.Errorf("%w: no faces to classify", ErrMalformedModel)
	}
	minZ, ok := m.MinZ()
	if !ok {
		return Counts{}, fmt.Errorf("%w: no vertices to derive minimum z", ErrMalformedModel)
	}

	for i := range m.Faces {
		m.Faces[i].Surface = ClassifyFace(m.Faces[i], m, minZ, cfg)
	}

	for i, f := range m.Faces {
		if f.Surface == geometry.Unknown {
			return Counts{}, fmt.Errorf("%w: face %d", ErrUnclassifiedFace, i)
		}
	}
	return CountSurfaces(m), nil
}
