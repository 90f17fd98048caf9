// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package astrometry resolves raw catalog distances and coordinates into
// Cartesian positions in light-years relative to Sol.
package astrometry

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/davisw/starforge/pkg/types"
)

// numericToken matches the first run of digits and decimal points in a
// raw distance string (e.g. "4.24 ± 0.01" yields "4.24").
var numericToken = regexp.MustCompile(`[\d.]+`)

// parsecMarkers are substrings that explicitly mark a parsec value. The
// error-term markers count because the source tabulates parsec distances
// in the "X.XX ± Y.YY" format.
var parsecMarkers = []string{"pc", "parsec", "±", "+/-"}

// ResolveDistance extracts a distance in light-years from a raw catalog
// string. The second return value is false when the field is empty, the
// "N/A" sentinel, or carries no numeric token.
//
// Units are inferred per the policy: tiny values are already light-years
// (Sol's placeholder), values under the parsec threshold are converted,
// and larger values convert only on an explicit parsec marker. This is a
// heuristic; stars near the threshold can be misclassified.
func ResolveDistance(raw string, policy types.DistancePolicy) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "N/A" {
		return 0, false
	}

	token := numericToken.FindString(raw)
	if token == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.Trim(token, "."), 64)
	if err != nil {
		return 0, false
	}

	switch {
	case value < policy.SmallValueEpsilon:
		return value, true
	case value < policy.ParsecThreshold:
		return value * types.LightYearsPerParsec, true
	case !policy.RequireExplicitMarker || hasParsecMarker(raw):
		return value * types.LightYearsPerParsec, true
	default:
		return value, true
	}
}

func hasParsecMarker(raw string) bool {
	lower := strings.ToLower(raw)
	for _, m := range parsecMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
