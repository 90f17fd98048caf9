// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davisw/starforge/pkg/types"
)

func testConfig(dir string) types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "starforge-test/0.1"},
		DataDir:    dir,
	}
}

func TestFetchDownloads(t *testing.T) {
	const body = "System,Star Name,Distance\nSol,Sol,0.0000158\n"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "starforge-test/0.1" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Write([]byte(body))
	}))
	defer ts.Close()

	dir := t.TempDir()
	var out bytes.Buffer

	src, err := Fetch(context.Background(), ts.Client(), ts.URL, "star-ref.csv", testConfig(dir), &out)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if src.Bytes != int64(len(body)) {
		t.Errorf("Bytes = %d, want %d", src.Bytes, len(body))
	}

	data, err := os.ReadFile(filepath.Join(dir, RawDir, "star-ref.csv"))
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != body {
		t.Errorf("downloaded content = %q", data)
	}

	// Metadata sidecar records provenance.
	sidecar, err := os.ReadFile(filepath.Join(dir, RawDir, "star-ref.csv.yaml"))
	if err != nil {
		t.Fatalf("reading sidecar: %v", err)
	}
	if !strings.Contains(string(sidecar), ts.URL) {
		t.Errorf("sidecar missing source URL:\n%s", sidecar)
	}

	if !strings.Contains(out.String(), "fetched: star-ref.csv") {
		t.Errorf("status output = %q", out.String())
	}
}

func TestFetchSkipsExisting(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte("data"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	rawDir := filepath.Join(dir, RawDir)
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(rawDir, "star-ref.csv"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	src, err := Fetch(context.Background(), ts.Client(), ts.URL, "star-ref.csv", testConfig(dir), &out)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if calls != 0 {
		t.Errorf("server called %d times for an existing file", calls)
	}
	if src.Bytes != int64(len("existing")) {
		t.Errorf("Bytes = %d, want existing file size", src.Bytes)
	}
	if !strings.Contains(out.String(), "skipped:") {
		t.Errorf("status output = %q, want skip notice", out.String())
	}
}

func TestFetchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	dir := t.TempDir()
	var out bytes.Buffer

	_, err := Fetch(context.Background(), ts.Client(), ts.URL, "star-ref.csv", testConfig(dir), &out)
	if err == nil || !strings.Contains(err.Error(), "HTTP 404") {
		t.Fatalf("Fetch error = %v, want HTTP 404", err)
	}

	// No partial or empty file left behind.
	if _, statErr := os.Stat(filepath.Join(dir, RawDir, "star-ref.csv")); !os.IsNotExist(statErr) {
		t.Error("failed fetch left a destination file behind")
	}
}
