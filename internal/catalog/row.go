// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog builds the clean stellar catalog from raw source rows:
// field splitting, system/companion grouping, alias resolution, and
// final assembly with procedural padding.
package catalog

import (
	"strings"

	"github.com/davisw/starforge/internal/textnorm"
	"github.com/davisw/starforge/pkg/types"
)

// minFields is the fewest comma-separated fields a line can have and
// still describe a star (system and name).
const minFields = 2

// SplitFields splits a catalog line on commas, honoring double quotes so
// embedded commas do not split a field. Quotes themselves are dropped
// and fields are trimmed. The source is too irregular for
// encoding/csv's strict quoting rules (quotes open mid-field, lines
// change arity), so splitting is done by hand.
func SplitFields(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		fields = append(fields, strings.TrimSpace(current.String()))
	}
	return fields
}

// ParseRow turns one source line into a CatalogRow. The system, name,
// and spectral class fields are cleaned; the distance and coordinate
// fields stay raw because their resolvers need the original markers.
// It returns false for lines with too few fields.
func ParseRow(line string, lineNo int) (types.CatalogRow, bool) {
	fields := SplitFields(line)
	if len(fields) < minFields {
		return types.CatalogRow{}, false
	}

	row := types.CatalogRow{
		System: textnorm.Clean(fields[0]),
		Name:   textnorm.Clean(fields[1]),
		Line:   lineNo,
	}
	if len(fields) > 2 {
		row.Distance = fields[2]
	}
	if len(fields) > 3 {
		row.Coordinates = fields[3]
	}
	if len(fields) > 4 {
		row.SpectralClass = textnorm.Clean(fields[4])
	}
	return row, true
}
