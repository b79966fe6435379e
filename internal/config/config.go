// Package config handles lodconv configuration loading and management.
package config

import "github.com/philipparndt/lodconv/pkg/lod"

// Config holds all converter settings.
type Config struct {
	Classification ClassificationConfig `yaml:"classification"`
	Height         HeightConfig         `yaml:"height"`
	Extrusion      ExtrusionConfig      `yaml:"extrusion"`
	Output         OutputConfig         `yaml:"output"`
	Logging        LoggingConfig        `yaml:"logging"`
}

// ClassificationConfig holds the surface classification thresholds. Angles are in degrees.
type ClassificationConfig struct {
	GroundAngle           float64 `yaml:"ground_angle"`
	WallAngle             float64 `yaml:"wall_angle"`
	GroundHeightTolerance float64 `yaml:"ground_height_tolerance"`
}

// HeightConfig selects how the block height is derived from the roof.
type HeightConfig struct {
	Mode string `yaml:"mode"` // extent or midpoint
}

// ExtrusionConfig controls the generated walls.
type ExtrusionConfig struct {
	WallFaces string `yaml:"wall_faces"` // quad or triangles
}

// OutputConfig holds settings for written files.
type OutputConfig struct {
	Semantic bool `yaml:"semantic"` // usemtl groups per surface label in OBJ output
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	lc := lod.DefaultConfig()
	return &Config{
		Classification: ClassificationConfig{
			GroundAngle:           lc.GroundAngle,
			WallAngle:             lc.WallAngle,
			GroundHeightTolerance: lc.GroundHeightTolerance,
		},
		Height: HeightConfig{
			Mode: string(lc.HeightMode),
		},
		Extrusion: ExtrusionConfig{
			WallFaces: string(lc.WallFaces),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// LodConfig returns the conversion thresholds, validated
func (c *Config) LodConfig() (lod.Config, error) {
	lc := lod.Config{
		GroundAngle:           c.Classification.GroundAngle,
		WallAngle:             c.Classification.WallAngle,
		GroundHeightTolerance: c.Classification.GroundHeightTolerance,
		HeightMode:            lod.HeightMode(c.Height.Mode),
		WallFaces:             lod.WallFaceMode(c.Extrusion.WallFaces),
	}
	if err := lc.Validate(); err != nil {
		return lod.Config{}, err
	}
	return lc, nil
}
