package lod

import (
	"fmt"
	"math"
)

// HeightMode selects the per-face height fed into the area-weighted average
type HeightMode string

const (
	// HeightExtent uses the vertical extent of each roof face (max z - min z)
	HeightExtent HeightMode = "extent"
	// HeightMidpoint uses the mid elevation of each roof face above the model's lowest point
	HeightMidpoint HeightMode = "midpoint"
)

// WallFaceMode selects how each boundary edge is closed by the extruder
type WallFaceMode string

const (
	// WallQuads emits one quadrilateral per boundary edge
	WallQuads WallFaceMode = "quad"
	// WallTriangles emits two triangles per boundary edge
	WallTriangles WallFaceMode = "triangles"
)

// Config holds the thresholds of the conversion. Angles are in degrees.
type Config struct {
	// GroundAngle is the largest angle between a ground face normal and the vertical
	GroundAngle float64
	// WallAngle is the largest deviation from 90 degrees for a wall face normal
	WallAngle float64
	// GroundHeightTolerance is the largest distance of a ground face's min z from the model's min z
	GroundHeightTolerance float64

	HeightMode HeightMode
	WallFaces  WallFaceMode
}

// DefaultConfig returns the thresholds used when nothing else is configured
func DefaultConfig() Config {
	return Config{
		GroundAngle:           8.0,
		WallAngle:             0.6,
		GroundHeightTolerance: 1.0,
		HeightMode:            HeightExtent,
		WallFaces:             WallQuads,
	}
}

// Validate rejects thresholds that cannot classify anything meaningfully
func (c Config) Validate() error {
	angles := []struct {
		name  string
		value float64
	}{
		{"ground angle", c.GroundAngle},
		{"wall angle", c.WallAngle},
	}
	for _, a := range angles {
		if math.IsNaN(a.value) || a.value < 0 || a.value > 90 {
			return fmt.Errorf("%s %v out of range [0, 90]", a.name, a.value)
		}
	}

	if math.IsNaN(c.GroundHeightTolerance) || c.GroundHeightTolerance < 0 {
		return fmt.Errorf("ground height tolerance %v must not be negative", c.GroundHeightTolerance)
	}

	switch c.HeightMode {
	case HeightExtent, HeightMidpoint:
	default:
		return fmt.Errorf("unknown height mode %q", c.HeightMode)
	}

	switch c.WallFaces {
	case WallQuads, WallTriangles:
	default:
		return fmt.Errorf("unknown wall face mode %q", c.WallFaces)
	}
	return nil
}
