package config

// Overrides carries command line values. Empty fields leave the loaded value alone.
type Overrides struct {
	ConfigPath string
	Verbose    bool
	LogLevel   string
	LogFile    string
	HeightMode string
	WallFaces  string
	Semantic   bool
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, ov Overrides) {
	if ov.LogLevel != "" {
		cfg.Logging.Level = ov.LogLevel
	}
	if ov.Verbose {
		cfg.Logging.Level = "debug"
	}
	if ov.LogFile != "" {
		cfg.Logging.LogFile = ov.LogFile
	}
	if ov.HeightMode != "" {
		cfg.Height.Mode = ov.HeightMode
	}
	if ov.WallFaces != "" {
		cfg.Extrusion.WallFaces = ov.WallFaces
	}
	if ov.Semantic {
		cfg.Output.Semantic = true
	}
}
