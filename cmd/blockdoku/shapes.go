package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	bcore "github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
)

var flagShapesDifficulty string

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the shape catalog",
	Long: `Print every catalog shape with its size, or only the pool used by one
difficulty.

Examples:
  blockdoku shapes
  blockdoku shapes --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runShapes,
}

func init() {
	shapesCmd.Flags().StringVar(&flagShapesDifficulty, "difficulty", "", "Only shapes drawn at this difficulty")
}

func runShapes(_ *cobra.Command, _ []string) error {
	shapes := bcore.All()
	if flagShapesDifficulty != "" {
		d, err := bcore.ParseDifficulty(flagShapesDifficulty)
		if err != nil {
			return err
		}
		shapes = bcore.ByDifficulty(d)
	}

	for _, s := range shapes {
		rows, cols := s.BoundingBox()
		fmt.Printf("%s  (%d cells, %dx%d)\n", s.Name(), s.Size(), rows, cols)
		for _, line := range strings.Split(s.String(), "\n") {
			fmt.Printf("  %s\n", line)
		}
		fmt.Println()
	}
	fmt.Printf("%d shapes\n", len(shapes))
	return nil
}
