//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// run executes the built starforge binary with the given arguments.
func run(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("starforge %s: %w", args[0], err)
	}
	return nil
}

// BuildCatalog runs the normalization pipeline over data/raw/star-ref.csv.
func BuildCatalog() error {
	mg.Deps(Build, Init)
	return run("build")
}

// Index ingests the built catalog into the SQLite index.
func Index() error {
	mg.Deps(Build)
	return run("catalog", "index")
}

// ViewExport writes the visualization schema from the built catalog.
func ViewExport() error {
	mg.Deps(Build)
	return run("view-export")
}
