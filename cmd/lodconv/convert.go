package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/lodconv/internal/config"
	"github.com/philipparndt/lodconv/pkg/footprint"
	"github.com/philipparndt/lodconv/pkg/lod"
	"github.com/philipparndt/lodconv/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	convertInput      string
	convertOutput     string
	convertFootprint  string
	convertSemantic   bool
	convertWatch      bool
	convertHeightMode string
	convertWallFaces  string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a LoD2.2 building into a LoD1.2 block model",
	Long: `Classify the faces of the input mesh, estimate the building height from the
roof and extrude the ground footprint to that height. The result replaces the
output file. Use --watch to convert again whenever the input changes.`,
	Args: cobra.NoArgs,
	Run:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Input mesh (.obj or .stl)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output mesh (.obj or .stl)")
	convertCmd.Flags().StringVar(&convertFootprint, "footprint", "", "Also write the footprint with its height as GeoJSON")
	convertCmd.Flags().BoolVar(&convertSemantic, "semantic", false, "Group OBJ faces by surface label (usemtl)")
	convertCmd.Flags().BoolVar(&convertWatch, "watch", false, "Convert again whenever the input file changes")
	convertCmd.Flags().StringVar(&convertHeightMode, "height-mode", "", "Roof height per face: extent or midpoint")
	convertCmd.Flags().StringVar(&convertWallFaces, "wall-faces", "", "Wall faces per footprint edge: quad or triangles")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")
}

func runConvert(cmd *cobra.Command, args []string) {
	cfg, log, err := setup(config.Overrides{
		HeightMode: convertHeightMode,
		WallFaces:  convertWallFaces,
		Semantic:   convertSemantic,
	})
	if err != nil {
		fail("%v", err)
	}

	job := conversion{
		input:     convertInput,
		output:    convertOutput,
		footprint: convertFootprint,
		cfg:       cfg,
		log:       log,
	}

	res, err := job.run()
	if !convertWatch {
		if err != nil {
			fail("%v", err)
		}
		printSummary(job, res)
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		printSummary(job, res)
	}
	if err := job.watch(); err != nil {
		fail("%v", err)
	}
}

// conversion is one input/output pairing with its settings
type conversion struct {
	input     string
	output    string
	footprint string
	cfg       *config.Config
	log       *zap.Logger
}

// run converts the input file and writes the outputs
func (c conversion) run() (*lod.Result, error) {
	start := time.Now()

	lc, err := c.cfg.LodConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	res, err := convertFile(c.input, c.output, lc, c.cfg.Output.Semantic, c.log)
	if err != nil {
		c.log.Error("conversion failed", zap.String("input", c.input), zap.String("step", lod.FailedStep(err)), zap.Error(err))
		return nil, err
	}

	if c.footprint != "" {
		fp, err := footprint.FromModel(res.Model)
		if err != nil {
			return nil, fmt.Errorf("footprint: %w", err)
		}
		feature := fp.Feature(res.Height.Height, map[string]interface{}{"source": c.input})
		if err := footprint.WriteGeoJSON(c.footprint, feature); err != nil {
			return nil, err
		}
	}

	c.log.Info("converted",
		zap.String("input", c.input),
		zap.String("output", c.output),
		zap.Float64("height", res.Height.Height),
		zap.Int("faces", res.Model.FaceCount()),
		zap.Duration("took", time.Since(start)),
	)
	return res, nil
}

// watch converts again on every change of the input until interrupted
func (c conversion) watch() error {
	fw, err := watcher.NewFileWatcher(300*time.Millisecond, c.log)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{c.input}, func(string) {
		c.log.Info("input changed", zap.String("input", c.input))
		if res, err := c.run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			printSummary(c, res)
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", c.input)
	if err := fw.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// convertFile reads input, converts it and writes output. Nothing is written
// when any step fails.
func convertFile(input, output string, cfg lod.Config, semantic bool, log *zap.Logger) (*lod.Result, error) {
	model, err := readModel(input)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", input, err)
	}

	res, err := lod.Convert(model, cfg, lod.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", input, err)
	}

	if err := writeModel(output, res.Model, semantic); err != nil {
		return nil, fmt.Errorf("writing %s: %w", output, err)
	}
	return res, nil
}

func printSummary(c conversion, res *lod.Result) {
	fmt.Printf("Converted %s -> %s\n", c.input, c.output)
	fmt.Printf("  Surfaces: %d ground, %d wall, %d roof\n", res.Counts.Ground, res.Counts.Wall, res.Counts.Roof)
	fmt.Printf("  Height: %.3f (%s, %d roof faces)\n", res.Height.Height, c.cfg.Height.Mode, res.Height.RoofFaces)
	fmt.Printf("  Output: %d vertices, %d faces (%d walls)\n",
		res.Model.VertexCount(), res.Model.FaceCount(), res.Extrusion.WallFaces)
	if res.Extrusion.Islands > 1 {
		fmt.Printf("  Note: ground has %d separate parts\n", res.Extrusion.Islands)
	}
	if c.footprint != "" {
		fmt.Printf("  Footprint: %s\n", c.footprint)
	}
}
