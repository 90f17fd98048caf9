// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davisw/starforge/internal/store"
	"github.com/davisw/starforge/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the queryable catalog index (index, query, export)",
	Long: `Catalog manages a local SQLite index built from the catalog files in
data/build/. Use subcommands to index the built catalog, query it, or
export it.`,
}

// --- index subcommand ---

var catalogIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Ingest the built catalog into the SQLite index",
	Long: `Index reads data/build/stars.csv and companion_mapping.csv into a
SQLite database under data/index/. An unchanged catalog file is skipped
on subsequent runs.`,
	RunE: runCatalogIndex,
}

func runCatalogIndex(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.Ingest(context.Background(), os.Stdout)
	return err
}

// --- query subcommand ---

var catalogQueryCmd = &cobra.Command{
	Use:   "query [name]",
	Short: "Query the catalog index with filters",
	Long: `Query searches the catalog index by name substring, spectral class
letter, or maximum distance, nearest star first. Use --companions-of to
list the companions recorded for a primary star.`,
	RunE: runCatalogQuery,
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	// No filters is fine: the result is simply the nearest stars.
	opts := queryOptsFromFlags(cmd, args)

	results, err := s.Query(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []store.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-24s  %9s  %-8s  %7s  %6s  %s\n",
		"Rank", "Name", "Dist(ly)", "Class", "Mass", "Temp", "Primary")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))

	for i, r := range results {
		name := r.Name
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-24s  %9.3f  %-8s  %7.3f  %6d  %s\n",
			i+1, name, r.Distance, r.SpectralClass, r.Mass, r.Temperature, r.Primary)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog index to YAML or JSON",
	Long: `Export writes the full indexed catalog to data/index/export.yaml or
export.json, nearest star first.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	var path string
	switch format {
	case "yaml", "":
		path, err = s.ExportYAML(context.Background())
	case "json":
		path, err = s.ExportJSON(context.Background())
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("Exported to", path)
	return nil
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*store.Store, error) {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return store.NewStore(types.StoreConfig{
		DataDir:    dataDir(cmd),
		MaxResults: maxResults,
	})
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) store.QueryOptions {
	name, _ := cmd.Flags().GetString("name")
	if name == "" && len(args) > 0 {
		name = strings.Join(args, " ")
	}

	class, _ := cmd.Flags().GetString("class")
	maxDistance, _ := cmd.Flags().GetFloat64("within")
	companionsOf, _ := cmd.Flags().GetString("companions-of")
	generated, _ := cmd.Flags().GetBool("generated")
	limit, _ := cmd.Flags().GetInt("limit")

	return store.QueryOptions{
		Name:          name,
		ClassLetter:   class,
		MaxDistance:   maxDistance,
		CompanionsOf:  companionsOf,
		GeneratedOnly: generated,
		MaxResults:    limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().Int("max-results", 20, "default maximum number of query results")

	// Query flags.
	catalogQueryCmd.Flags().String("name", "", "filter by name substring")
	catalogQueryCmd.Flags().String("class", "", "filter by spectral class letter (O, B, A, F, G, K, M, L, T, Y, D)")
	catalogQueryCmd.Flags().Float64("within", 0, "filter to stars within this many light years")
	catalogQueryCmd.Flags().String("companions-of", "", "list companions of the named primary star")
	catalogQueryCmd.Flags().Bool("generated", false, "only procedurally generated stars")
	catalogQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogIndexCmd)
	catalogCmd.AddCommand(catalogQueryCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
