package main

import (
	"fmt"

	"github.com/philipparndt/lodconv/internal/config"
	"github.com/philipparndt/lodconv/pkg/footprint"
	"github.com/philipparndt/lodconv/pkg/lod"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	footprintInput  string
	footprintOutput string
)

var footprintCmd = &cobra.Command{
	Use:   "footprint",
	Short: "Export the ground footprint of a building as GeoJSON",
	Long: `Classify the input mesh and write its ground outline as a GeoJSON polygon.
The feature carries the estimated LoD1.2 height, the ground elevation and the
footprint area as properties.`,
	Args: cobra.NoArgs,
	Run:  runFootprint,
}

func init() {
	rootCmd.AddCommand(footprintCmd)

	footprintCmd.Flags().StringVarP(&footprintInput, "input", "i", "", "Input mesh (.obj or .stl)")
	footprintCmd.Flags().StringVarP(&footprintOutput, "output", "o", "", "Output GeoJSON file")
	_ = footprintCmd.MarkFlagRequired("input")
	_ = footprintCmd.MarkFlagRequired("output")
}

func runFootprint(cmd *cobra.Command, args []string) {
	cfg, log, err := setup(config.Overrides{})
	if err != nil {
		fail("%v", err)
	}
	lc, err := cfg.LodConfig()
	if err != nil {
		fail("invalid configuration: %v", err)
	}

	fp, height, err := exportFootprint(footprintInput, footprintOutput, lc)
	if err != nil {
		fail("%v", err)
	}
	log.Info("footprint written",
		zap.String("input", footprintInput),
		zap.String("output", footprintOutput),
		zap.Int("polygons", len(fp.Polygons)),
	)

	fmt.Printf("Footprint of %s -> %s\n", footprintInput, footprintOutput)
	fmt.Printf("  Polygons: %d\n", len(fp.Polygons))
	fmt.Printf("  Area: %.3f\n", fp.Area())
	fmt.Printf("  Height: %.3f\n", height)
}

// exportFootprint classifies the input and writes the ground outline
func exportFootprint(input, output string, cfg lod.Config) (*footprint.Footprint, float64, error) {
	model, err := readModel(input)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", input, err)
	}
	if err := model.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", input, err)
	}
	if _, err := lod.Classify(model, cfg); err != nil {
		return nil, 0, fmt.Errorf("classifying %s: %w", input, err)
	}

	est, err := lod.EstimateHeight(model, cfg)
	if err != nil {
		return nil, 0, fmt.Errorf("estimating height of %s: %w", input, err)
	}

	fp, err := footprint.FromModel(model)
	if err != nil {
		return nil, 0, fmt.Errorf("footprint of %s: %w", input, err)
	}

	feature := fp.Feature(est.Height, map[string]interface{}{"source": input})
	if err := footprint.WriteGeoJSON(output, feature); err != nil {
		return nil, 0, err
	}
	return fp, est.Height, nil
}
