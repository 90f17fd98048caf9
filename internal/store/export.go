// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// exportLimit caps a full-catalog export. Far above any realistic
// catalog size; it only guards against unbounded memory use.
const exportLimit = 100000

// ExportYAML writes the full indexed catalog to dataDir/index/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	results, err := s.Query(ctx, QueryOptions{MaxResults: exportLimit})
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("marshaling export: %w", err)
	}

	path := filepath.Join(s.dataDir, indexDir, "export.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// ExportJSON writes the full indexed catalog to dataDir/index/export.json.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	results, err := s.Query(ctx, QueryOptions{MaxResults: exportLimit})
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling export: %w", err)
	}

	path := filepath.Join(s.dataDir, indexDir, "export.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}
