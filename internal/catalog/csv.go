// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/davisw/starforge/internal/astrometry"
	"github.com/davisw/starforge/pkg/types"
)

// starHeader is the output catalog schema.
var starHeader = []string{"name", "x", "y", "z", "stellar_class", "mass", "temperature", "luminosity", "absolute_magnitude"}

// companionHeader is the companion mapping schema.
var companionHeader = []string{"companion_name", "primary_star_name"}

// viewerHeader is the schema the visualization collaborator reads. It is
// deliberately distinct from starHeader: the viewer works in spherical
// coordinates and groups territory by allegiance.
var viewerHeader = []string{"Name", "Distance", "RA", "Dec", "SpectralType", "Allegiance"}

// WriteStars writes the catalog in the stars.csv schema with fixed
// rounding: positions 6 decimals, mass 3, luminosity 6, magnitude 2,
// temperature integral.
func WriteStars(w io.Writer, stars []types.StarRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(starHeader); err != nil {
		return fmt.Errorf("writing catalog header: %w", err)
	}
	for _, s := range stars {
		record := []string{
			s.Name,
			formatFloat(s.X, 6),
			formatFloat(s.Y, 6),
			formatFloat(s.Z, 6),
			s.SpectralClass,
			formatFloat(s.Mass, 3),
			strconv.Itoa(s.Temperature),
			formatFloat(s.Luminosity, 6),
			formatFloat(s.AbsoluteMagnitude, 2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing star %s: %w", s.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCompanions writes the companion mapping sorted by companion name.
func WriteCompanions(w io.Writer, mapping types.CompanionMapping) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(companionHeader); err != nil {
		return fmt.Errorf("writing mapping header: %w", err)
	}

	companions := make([]string, 0, len(mapping))
	for companion := range mapping {
		companions = append(companions, companion)
	}
	sort.Strings(companions)

	for _, companion := range companions {
		if err := cw.Write([]string{companion, mapping[companion]}); err != nil {
			return fmt.Errorf("writing mapping %s: %w", companion, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteViewer writes the catalog in the visualization schema, deriving
// spherical coordinates from the stored Cartesian positions. Allegiance
// is the star's primary when it is a mapped companion, otherwise the
// star itself.
func WriteViewer(w io.Writer, stars []types.StarRecord, mapping types.CompanionMapping) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(viewerHeader); err != nil {
		return fmt.Errorf("writing viewer header: %w", err)
	}
	for _, s := range stars {
		distance, eq := astrometry.FromCartesian(s.X, s.Y, s.Z)
		allegiance := s.Name
		if primary, ok := mapping[s.Name]; ok {
			allegiance = primary
		}
		record := []string{
			s.Name,
			formatFloat(distance, 4),
			formatFloat(eq.RAHours, 4),
			formatFloat(eq.DecDegrees, 4),
			s.SpectralClass,
			allegiance,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing viewer row %s: %w", s.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadStars parses a stars.csv back into records, for the store and the
// viewer export.
func ReadStars(r io.Reader) ([]types.StarRecord, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	stars := make([]types.StarRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < len(starHeader) {
			return nil, fmt.Errorf("catalog row %d: want %d fields, got %d", i+2, len(starHeader), len(row))
		}
		s := types.StarRecord{Name: row[0], SpectralClass: row[4]}
		if s.X, err = strconv.ParseFloat(row[1], 64); err != nil {
			return nil, fmt.Errorf("catalog row %d: x: %w", i+2, err)
		}
		if s.Y, err = strconv.ParseFloat(row[2], 64); err != nil {
			return nil, fmt.Errorf("catalog row %d: y: %w", i+2, err)
		}
		if s.Z, err = strconv.ParseFloat(row[3], 64); err != nil {
			return nil, fmt.Errorf("catalog row %d: z: %w", i+2, err)
		}
		if s.Mass, err = strconv.ParseFloat(row[5], 64); err != nil {
			return nil, fmt.Errorf("catalog row %d: mass: %w", i+2, err)
		}
		if s.Temperature, err = strconv.Atoi(row[6]); err != nil {
			return nil, fmt.Errorf("catalog row %d: temperature: %w", i+2, err)
		}
		if s.Luminosity, err = strconv.ParseFloat(row[7], 64); err != nil {
			return nil, fmt.Errorf("catalog row %d: luminosity: %w", i+2, err)
		}
		if s.AbsoluteMagnitude, err = strconv.ParseFloat(row[8], 64); err != nil {
			return nil, fmt.Errorf("catalog row %d: absolute_magnitude: %w", i+2, err)
		}
		stars = append(stars, s)
	}
	return stars, nil
}

// ReadCompanions parses a companion_mapping.csv.
func ReadCompanions(r io.Reader) (types.CompanionMapping, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading companion mapping: %w", err)
	}

	mapping := make(types.CompanionMapping)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("mapping row %d: want 2 fields, got %d", i+1, len(row))
		}
		mapping[row[0]] = row[1]
	}
	return mapping, nil
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
