// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davisw/starforge/internal/catalog"
	"github.com/davisw/starforge/internal/fetch"
	"github.com/davisw/starforge/internal/store"
	"github.com/davisw/starforge/pkg/logging"
	"github.com/davisw/starforge/pkg/types"
)

const buildDir = "build"

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the clean catalog from the raw source file",
	Long: `Build runs the full normalization pipeline over data/raw/star-ref.csv:
text de-corruption, distance unit resolution, coordinate conversion,
companion grouping, and stellar property synthesis. It writes
data/build/stars.csv and data/build/companion_mapping.csv.

Rows that cannot be used (no name, no resolvable distance, beyond the
distance cutoff) are skipped, never fatal.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("source", defaultSourceFile, "raw catalog filename under the raw directory")
	buildCmd.Flags().Float64("max-distance", 80, "exclude stars beyond this many light years")
	buildCmd.Flags().Int("target-size", 0, "pad the catalog with generated stars up to this count (0 = no padding)")
	buildCmd.Flags().Int64("seed", 0, "random seed for fallback positions and synthesis (0 = time-seeded)")
	buildCmd.Flags().Float64("parsec-threshold", 0, "treat unmarked distances below this value as parsecs (0 = default 50)")
	buildCmd.Flags().Bool("assume-parsecs", false, "treat unmarked distances above the threshold as parsecs too")

	rootCmd.AddCommand(buildCmd)
}

func buildConfigFromFlags(cmd *cobra.Command) types.BuildConfig {
	source, _ := cmd.Flags().GetString("source")
	maxDistance, _ := cmd.Flags().GetFloat64("max-distance")
	targetSize, _ := cmd.Flags().GetInt("target-size")
	seed, _ := cmd.Flags().GetInt64("seed")
	threshold, _ := cmd.Flags().GetFloat64("parsec-threshold")
	assumeParsecs, _ := cmd.Flags().GetBool("assume-parsecs")

	policy := types.DefaultDistancePolicy()
	if threshold > 0 {
		policy.ParsecThreshold = threshold
	}
	if assumeParsecs {
		policy.RequireExplicitMarker = false
	}

	return types.BuildConfig{
		DataDir:     dataDir(cmd),
		SourceFile:  source,
		MaxDistance: maxDistance,
		TargetSize:  targetSize,
		Distance:    policy,
		Seed:        seed,
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfigFromFlags(cmd)

	raw, err := os.ReadFile(filepath.Join(cfg.DataDir, fetch.RawDir, cfg.SourceFile))
	if err != nil {
		return fmt.Errorf("reading source catalog: %w", err)
	}

	result := catalog.Build(raw, cfg, *logging.Default(), os.Stdout)

	if err := writeBuildOutput(cfg.DataDir, result); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Wrote %s and %s\n",
		filepath.Join(cfg.DataDir, buildDir, store.StarsFile),
		filepath.Join(cfg.DataDir, buildDir, store.CompanionsFile))
	return nil
}

func writeBuildOutput(dataDir string, result catalog.Result) error {
	outDir := filepath.Join(dataDir, buildDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating build directory: %w", err)
	}

	sf, err := os.Create(filepath.Join(outDir, store.StarsFile))
	if err != nil {
		return fmt.Errorf("creating stars file: %w", err)
	}
	defer sf.Close()
	if err := catalog.WriteStars(sf, result.Stars); err != nil {
		return err
	}

	cf, err := os.Create(filepath.Join(outDir, store.CompanionsFile))
	if err != nil {
		return fmt.Errorf("creating companion mapping file: %w", err)
	}
	defer cf.Close()
	return catalog.WriteCompanions(cf, result.Companions)
}
