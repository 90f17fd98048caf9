// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the raw source catalog and records a metadata
// sidecar describing where it came from.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/davisw/starforge/internal/httputil"
	"github.com/davisw/starforge/pkg/types"
)

// RawDir is the subdirectory under the data base for raw catalog files.
const RawDir = "raw"

// Source records the provenance of a downloaded catalog file.
type Source struct {
	// URL is where the file was fetched from.
	URL string `yaml:"url"`

	// File is the local path under the data directory.
	File string `yaml:"file"`

	// FetchedAt is the download timestamp.
	FetchedAt time.Time `yaml:"fetched_at"`

	// Bytes is the downloaded size.
	Bytes int64 `yaml:"bytes"`
}

// Fetch downloads url into cfg.DataDir/raw/, writing through a temp file
// so a failed transfer never leaves a partial catalog behind. A file
// that already exists is not re-downloaded. Rate-limit responses are
// retried with backoff.
func Fetch(ctx context.Context, client *http.Client, url, filename string, cfg types.FetchConfig, w io.Writer) (*Source, error) {
	rawDir := filepath.Join(cfg.DataDir, RawDir)
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating raw directory: %w", err)
	}
	destPath := filepath.Join(rawDir, filename)

	if info, err := os.Stat(destPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists, %d bytes)\n", filename, info.Size())
		return &Source{URL: url, File: destPath, Bytes: info.Size()}, nil
	}

	fmt.Fprintf(w, "downloading: %s\n", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(rawDir, ".fetch-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("renaming temp file: %w", err)
	}

	src := &Source{
		URL:       url,
		File:      destPath,
		FetchedAt: time.Now().UTC(),
		Bytes:     n,
	}
	if err := writeSidecar(src, destPath+".yaml"); err != nil {
		fmt.Fprintf(w, "  warning: metadata sidecar write failed: %v\n", err)
	}

	fmt.Fprintf(w, "fetched: %s (%d bytes)\n", filename, n)
	return src, nil
}

func writeSidecar(src *Source, path string) error {
	data, err := yaml.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshaling source metadata: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
