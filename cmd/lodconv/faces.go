package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/philipparndt/lodconv/internal/config"
	"github.com/philipparndt/lodconv/pkg/analysis"
	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/lod"
	"github.com/spf13/cobra"
)

var (
	facesCount    int
	facesLargest  bool
	facesSmallest bool
	facesSurface  string
)

type faceInfo struct {
	Index    int
	Surface  geometry.SurfaceType
	Area     float64
	Angle    float64
	Height   float64
	Vertices string
}

var facesCmd = &cobra.Command{
	Use:   "faces [file]",
	Short: "List classified faces of a building mesh",
	Long: `Classify every face and display its label, area, angle to the vertical and
height. Use --surface to inspect only ground, wall or roof faces.`,
	Args: cobra.ExactArgs(1),
	Run:  runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)

	facesCmd.Flags().IntVarP(&facesCount, "count", "n", 10, "Number of faces to display")
	facesCmd.Flags().BoolVarP(&facesLargest, "largest", "l", false, "Show largest faces by area")
	facesCmd.Flags().BoolVarP(&facesSmallest, "smallest", "s", false, "Show smallest faces by area")
	facesCmd.Flags().StringVar(&facesSurface, "surface", "", "Only show faces with this label (ground, wall, roof)")
}

func runFaces(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, _, err := setup(config.Overrides{})
	if err != nil {
		fail("%v", err)
	}
	lc, err := cfg.LodConfig()
	if err != nil {
		fail("invalid configuration: %v", err)
	}

	var only geometry.SurfaceType
	if facesSurface != "" {
		if only, err = geometry.ParseSurfaceType(facesSurface); err != nil {
			fail("%v", err)
		}
	}

	model, err := readModel(filename)
	if err != nil {
		fail("reading %s: %v", filename, err)
	}
	if err := model.Validate(); err != nil {
		fail("%s: %v", filename, err)
	}
	if _, err := lod.Classify(model, lc); err != nil {
		fail("classifying %s: %v", filename, err)
	}

	faces := make([]faceInfo, 0, model.FaceCount())
	totalArea := 0.0
	for i, f := range model.Faces {
		if only != geometry.Unknown && f.Surface != only {
			continue
		}

		corners := make([]string, len(f.VertexIDs))
		for j, id := range f.VertexIDs {
			corners[j] = analysis.FormatVector(model.Point(id))
		}

		info := faceInfo{
			Index:    i,
			Surface:  f.Surface,
			Area:     f.Area(model),
			Angle:    f.AngleToVertical(model),
			Height:   f.Height(model),
			Vertices: strings.Join(corners, ", "),
		}
		faces = append(faces, info)
		totalArea += info.Area
	}

	if facesLargest {
		sort.SliceStable(faces, func(i, j int) bool { return faces[i].Area > faces[j].Area })
	} else if facesSmallest {
		sort.SliceStable(faces, func(i, j int) bool { return faces[i].Area < faces[j].Area })
	}

	var title string
	if facesLargest {
		title = fmt.Sprintf("Top %d Largest Faces", facesCount)
	} else if facesSmallest {
		title = fmt.Sprintf("Top %d Smallest Faces", facesCount)
	} else {
		title = fmt.Sprintf("First %d Faces", facesCount)
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Matching faces: %d of %d\n", len(faces), model.FaceCount())
	fmt.Printf("Total area: %.6f square units\n\n", totalArea)

	for i := 0; i < facesCount && i < len(faces); i++ {
		f := faces[i]
		fmt.Printf("Face #%d (%s):\n", f.Index, f.Surface)
		fmt.Printf("  Area: %.6f square units\n", f.Area)
		fmt.Printf("  Angle to vertical: %.3f degrees\n", f.Angle)
		fmt.Printf("  Height: %.6f units\n", f.Height)
		fmt.Printf("  Vertices: %s\n\n", f.Vertices)
	}
}
