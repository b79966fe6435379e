package lod

import (
	"fmt"

	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
)

// HeightEstimate is the LoD1.2 height and the roof surface it was derived from
type HeightEstimate struct {
	Height    float64
	RoofFaces int
	RoofArea  float64
	// MinFaceHeight and MaxFaceHeight bound Height
	MinFaceHeight float64
	MaxFaceHeight float64
}

// faceHeight returns the per-face value averaged by EstimateHeight
func faceHeight(f geometry.Face, src geometry.PointSource, reference float64, mode HeightMode) float64 {
	minZ, maxZ := f.ZRange(src)
	if mode == HeightMidpoint {
		return (minZ+maxZ)/2 - reference
	}
	return maxZ - minZ
}

// EstimateHeight returns the projected-area weighted average of the heights of
// all Roof faces. Small fragments such as chimneys and antennas carry little
// weight against the main roof planes.
func EstimateHeight(m *mesh.Model, cfg Config) (HeightEstimate, error) {
	roofs := m.FacesOf(geometry.Roof)
	if len(roofs) == 0 {
		return HeightEstimate{}, ErrNoRoofSurface
	}

	reference, _ := m.MinZ()

	est := HeightEstimate{RoofFaces: len(roofs)}
	weighted := 0.0
	for i, fi := range roofs {
		f := m.Faces[fi]
		h := faceHeight(f, m, reference, cfg.HeightMode)
		area := f.ProjectedArea(m)

		weighted += h * area
		est.RoofArea += area

		if i == 0 || h < est.MinFaceHeight {
			est.MinFaceHeight = h
		}
		if i == 0 || h > est.MaxFaceHeight {
			est.MaxFaceHeight = h
		}
	}

	if est.RoofArea <= geometry.Epsilon {
		return HeightEstimate{}, fmt.Errorf("%w: roof faces have zero projected area (%d faces)", ErrDegenerateGeometry, len(roofs))
	}

	est.Height = weighted / est.RoofArea
	return est, nil
}
