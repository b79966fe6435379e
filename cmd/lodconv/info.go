package main

import (
	"fmt"

	"github.com/philipparndt/lodconv/internal/config"
	"github.com/philipparndt/lodconv/pkg/analysis"
	"github.com/philipparndt/lodconv/pkg/lod"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a building mesh",
	Long: `Show dimensions, face and edge statistics, the surface classification and
the height a conversion would use. No file is written.`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, _, err := setup(config.Overrides{})
	if err != nil {
		fail("%v", err)
	}
	lc, err := cfg.LodConfig()
	if err != nil {
		fail("invalid configuration: %v", err)
	}

	model, err := readModel(filename)
	if err != nil {
		fail("reading %s: %v", filename, err)
	}
	if err := model.Validate(); err != nil {
		fail("%s: %v", filename, err)
	}

	result := analysis.AnalyzeModel(model)

	fmt.Println("Mesh Information")
	fmt.Println("================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Faces: %d\n", result.FaceCount)
	fmt.Printf("  Edges: %d (%d open, %d non-manifold)\n", result.EdgeCount, result.BoundaryEdges, result.NonManifoldEdges)
	fmt.Printf("  Closed: %t\n", result.IsClosed())
	fmt.Printf("  Surface Area: %s\n", analysis.FormatMeasurement(result.SurfaceArea, "square units"))
	fmt.Printf("  Projected Area: %s\n\n", analysis.FormatMeasurement(result.ProjectedArea, "square units"))

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.BoundingBox.Height())
	fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n\n", result.AvgEdgeLength)

	counts, err := lod.Classify(model, lc)
	if err != nil {
		fail("classifying %s: %v", filename, err)
	}
	fmt.Println("Surfaces:")
	fmt.Printf("  Ground: %d\n", counts.Ground)
	fmt.Printf("  Wall: %d\n", counts.Wall)
	fmt.Printf("  Roof: %d\n\n", counts.Roof)

	fmt.Println("LoD1.2 Height:")
	est, err := lod.EstimateHeight(model, lc)
	if err != nil {
		fmt.Printf("  Not available: %v\n", err)
		return
	}
	fmt.Printf("  Height: %.6f units (%s)\n", est.Height, lc.HeightMode)
	fmt.Printf("  Roof faces: %d, projected area %.6f\n", est.RoofFaces, est.RoofArea)
	fmt.Printf("  Face heights: %.6f to %.6f\n", est.MinFaceHeight, est.MaxFaceHeight)
}
