package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/philipparndt/lodconv/internal/config"
	"github.com/philipparndt/lodconv/internal/logger"
	"github.com/philipparndt/lodconv/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string
	logFile    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "lodconv",
	Short: "Convert LoD2.2 building meshes into LoD1.2 block models",
	Long: `lodconv reduces detailed building meshes (LoD2.2) to block models (LoD1.2).
Faces are classified into ground, wall and roof surfaces, a single building
height is estimated from the roof, and the ground footprint is extruded to
that height. OBJ and STL files are supported.`,
	Version: version.GetFullVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./lodconv.yaml or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file (rotated)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every conversion step")
}

// setup loads the configuration and starts logging. The returned logger
// carries a run id so the lines of one invocation can be told apart.
func setup(ov config.Overrides) (*config.Config, *zap.Logger, error) {
	ov.ConfigPath = configPath
	ov.LogLevel = logLevel
	ov.LogFile = logFile
	ov.Verbose = verbose

	cfg, err := config.Load(ov)
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, nil, err
	}

	return cfg, logger.Log.With(zap.String("run", uuid.NewString())), nil
}

// fail prints the error and exits
func fail(format string, args ...interface{}) {
	logger.Sync()
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
