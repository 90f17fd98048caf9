package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davisw/starforge/internal/catalog"
	"github.com/davisw/starforge/internal/store"
	"github.com/davisw/starforge/pkg/types"
)

var viewExportCmd = &cobra.Command{
	Use:   "view-export",
	Short: "Export the built catalog in the visualization schema",
	Long: `View-export converts the built catalog back to the observational
schema used by visualization tools: Name, Distance, RA, Dec,
SpectralType, and Allegiance. RA/Dec are derived from the stored
Cartesian coordinates; Allegiance is the primary star for companions and
the star's own name otherwise.`,
	RunE: runViewExport,
}

func init() {
	viewExportCmd.Flags().String("output", "", "output file (default data/build/viewer.csv, \"-\" for stdout)")

	rootCmd.AddCommand(viewExportCmd)
}

func runViewExport(cmd *cobra.Command, args []string) error {
	dir := dataDir(cmd)

	stars, mapping, err := readBuildOutput(dir)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = filepath.Join(dir, buildDir, "viewer.csv")
	}

	var w io.Writer
	if output == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating viewer file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := catalog.WriteViewer(w, stars, mapping); err != nil {
		return err
	}

	if output != "-" {
		fmt.Fprintf(os.Stdout, "Wrote %d stars to %s\n", len(stars), output)
	}
	return nil
}

func readBuildOutput(dir string) ([]types.StarRecord, types.CompanionMapping, error) {
	sf, err := os.Open(filepath.Join(dir, buildDir, store.StarsFile))
	if err != nil {
		return nil, nil, fmt.Errorf("opening built catalog: %w", err)
	}
	defer sf.Close()

	stars, err := catalog.ReadStars(sf)
	if err != nil {
		return nil, nil, err
	}

	mapping := make(types.CompanionMapping)
	if mf, err := os.Open(filepath.Join(dir, buildDir, store.CompanionsFile)); err == nil {
		defer mf.Close()
		if mapping, err = catalog.ReadCompanions(mf); err != nil {
			return nil, nil, err
		}
	}

	return stars, mapping, nil
}
