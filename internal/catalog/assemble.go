// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"math/rand"
	"sort"

	"github.com/rs/zerolog"

	"github.com/davisw/starforge/pkg/types"
)

// Assemble turns resolved rows and the raw companion mapping into the
// final catalog: aliases applied once, duplicates dropped, a Sol record
// guaranteed at the origin, stars sorted by distance from Sol, optional
// procedural padding to the target size, and the mapping filtered to
// names that survived.
func Assemble(stars []types.StarRecord, mapping types.CompanionMapping, cfg types.BuildConfig, rng *rand.Rand, log zerolog.Logger) ([]types.StarRecord, types.CompanionMapping) {
	stars, mapping = applyAliases(stars, mapping)
	stars = dedupe(stars, log)
	stars = ensureSol(stars)

	// Stable: ties keep their insertion order.
	sort.SliceStable(stars, func(i, j int) bool {
		return stars[i].DistanceFromOrigin() < stars[j].DistanceFromOrigin()
	})

	if cfg.TargetSize > len(stars) {
		filler := GenerateStars(cfg.TargetSize-len(stars), cfg.MaxDistance, rng)
		log.Info().Int("generated", len(filler)).Int("target", cfg.TargetSize).
			Msg("padding catalog with procedural stars")
		stars = append(stars, filler...)
		sort.SliceStable(stars, func(i, j int) bool {
			return stars[i].DistanceFromOrigin() < stars[j].DistanceFromOrigin()
		})
	}

	return stars, filterMapping(mapping, stars, log)
}

// dedupe keeps the first record for each name. Later occurrences are
// catalog revisions repeating a star and carry no extra information.
func dedupe(stars []types.StarRecord, log zerolog.Logger) []types.StarRecord {
	seen := make(map[string]bool, len(stars))
	out := stars[:0]
	for _, s := range stars {
		if seen[s.Name] {
			log.Debug().Str("name", s.Name).Msg("duplicate star dropped")
			continue
		}
		seen[s.Name] = true
		out = append(out, s)
	}
	return out
}

// ensureSol inserts the canonical Sol record at the front when the
// source rows did not produce one. A Sol row that did survive parsing is
// pinned to the origin reference values rather than trusted.
func ensureSol(stars []types.StarRecord) []types.StarRecord {
	for i := range stars {
		if stars[i].Name == types.SolName {
			stars[i] = types.NewSolRecord()
			return stars
		}
	}
	return append([]types.StarRecord{types.NewSolRecord()}, stars...)
}

// filterMapping drops entries whose companion or primary is absent from
// the final catalog, along with self-references.
func filterMapping(mapping types.CompanionMapping, stars []types.StarRecord, log zerolog.Logger) types.CompanionMapping {
	present := make(map[string]bool, len(stars))
	for _, s := range stars {
		present[s.Name] = true
	}

	filtered := make(types.CompanionMapping, len(mapping))
	for companion, primary := range mapping {
		if companion == primary {
			continue
		}
		if !present[companion] || !present[primary] {
			log.Debug().Str("companion", companion).Str("primary", primary).
				Msg("orphaned companion mapping dropped")
			continue
		}
		filtered[companion] = primary
	}
	return filtered
}
