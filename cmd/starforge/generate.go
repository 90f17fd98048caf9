package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davisw/starforge/internal/catalog"
	"github.com/davisw/starforge/internal/store"
	"github.com/davisw/starforge/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fully procedural star catalog",
	Long: `Generate produces a catalog of procedural stars without any source
data: Sol at the origin plus randomly placed stars with spectral classes
drawn from the solar-neighborhood distribution. Output goes to
data/build/stars.csv in the same schema as build.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int("count", 100, "total number of stars including Sol")
	generateCmd.Flags().Float64("max-distance", 80, "maximum distance from Sol in light years")
	generateCmd.Flags().Int64("seed", 0, "random seed (0 = time-seeded)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	maxDistance, _ := cmd.Flags().GetFloat64("max-distance")
	seed, _ := cmd.Flags().GetInt64("seed")

	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	stars := catalog.GenerateCatalog(count, maxDistance, seed)

	result := catalog.Result{
		Stars:      stars,
		Companions: make(types.CompanionMapping),
	}
	if err := writeBuildOutput(dataDir(cmd), result); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Generated %d stars to %s\n", len(stars),
		filepath.Join(dataDir(cmd), buildDir, store.StarsFile))
	return nil
}
