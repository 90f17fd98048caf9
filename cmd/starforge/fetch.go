package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/davisw/starforge/internal/fetch"
	"github.com/davisw/starforge/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "starforge/0.1"

	// defaultSourceFile is the raw catalog filename under data/raw/.
	defaultSourceFile = "star-ref.csv"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Download the raw source catalog",
	Long: `Fetch downloads the raw star reference file into data/raw/ and writes
a metadata sidecar recording the source URL and fetch time. An already
downloaded file is skipped.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().String("file", defaultSourceFile, "destination filename under the raw directory")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide the source catalog URL")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	filename, _ := cmd.Flags().GetString("file")

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		DataDir: dataDir(cmd),
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	_, err := fetch.Fetch(context.Background(), client, args[0], filename, cfg, os.Stdout)
	return err
}
