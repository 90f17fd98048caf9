// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the starforge CLI. Each pipeline
// stage is a subcommand: fetch, build, generate, catalog, view-export.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/davisw/starforge/pkg/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the starforge CLI.
var rootCmd = &cobra.Command{
	Use:   "starforge",
	Short: "Normalize noisy star survey data into a clean catalog",
	Long: `starforge turns a noisy nearby-star reference file into a clean,
sorted stellar catalog. The raw source mixes character-set corruption,
ambiguous distance units, and companion stars listed under their parent
system; starforge resolves all of that and writes catalog files other
tools can consume directly.

Each pipeline stage is a subcommand: fetch downloads the raw source,
build runs the normalization pipeline, generate produces a fully
procedural catalog, catalog manages the queryable SQLite index, and
view-export emits the visualization schema.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logging.SetLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./starforge.yaml or ~/.config/starforge/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "base directory for catalog data (contains raw/, build/, index/)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log row-level skips and fallbacks")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("starforge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "starforge"))
		}
	}

	viper.SetEnvPrefix("STARFORGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// dataDir resolves the base data directory from flag, then config file.
func dataDir(cmd *cobra.Command) string {
	if cmd.Flags().Changed("data-dir") || !viper.IsSet("data_dir") {
		dir, _ := cmd.Flags().GetString("data-dir")
		return dir
	}
	return viper.GetString("data_dir")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
