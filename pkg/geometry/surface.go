package geometry

import (
	"fmt"
	"strings"
)

// SurfaceType is the semantic label of a face
type SurfaceType int

const (
	Unknown SurfaceType = iota
	Ground
	Wall
	Roof
)

var surfaceNames = [...]string{
	Unknown: "Unknown",
	Ground:  "Ground",
	Wall:    "Wall",
	Roof:    "Roof",
}

// String returns the label name
func (s SurfaceType) String() string {
	if s < 0 || int(s) >= len(surfaceNames) {
		return fmt.Sprintf("SurfaceType(%d)", int(s))
	}
	return surfaceNames[s]
}

// ParseSurfaceType parses a label name, case-insensitive
func ParseSurfaceType(name string) (SurfaceType, error) {
	for i, n := range surfaceNames {
		if strings.EqualFold(n, name) {
			return SurfaceType(i), nil
		}
	}
	return Unknown, fmt.Errorf("unknown surface type %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (s SurfaceType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *SurfaceType) UnmarshalText(text []byte) error {
	parsed, err := ParseSurfaceType(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
