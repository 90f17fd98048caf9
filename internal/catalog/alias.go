// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strings"

	"github.com/davisw/starforge/pkg/types"
)

// aliasRule canonicalizes one well-known star whose name varies across
// catalog revisions. A record whose name contains the match substring is
// renamed to canonical; when primary is non-empty the renamed star is
// additionally mapped as a companion of that primary.
type aliasRule struct {
	match     string
	canonical string
	primary   string
}

// aliasRules is the single canonical alias table, shared by assembly so
// renames happen exactly once. The Alpha Centauri triple is the
// motivating case: the source names its members "Rigil Kentaurus (A)",
// "Toliman (B)", and "Proxima Centauri (C, V645 Centauri)" depending on
// revision.
var aliasRules = []aliasRule{
	{match: "Rigil Kentaurus", canonical: "Alpha Centauri A"},
	{match: "Toliman", canonical: "Alpha Centauri B", primary: "Alpha Centauri A"},
	{match: "Proxima", canonical: "Proxima Centauri", primary: "Alpha Centauri A"},
}

// applyAliases renames records per the alias table and rewrites the
// companion mapping so its keys and values reflect post-alias names.
// Forced companion entries from the table are added on top. Callers run
// this exactly once, before deduplication.
func applyAliases(stars []types.StarRecord, mapping types.CompanionMapping) ([]types.StarRecord, types.CompanionMapping) {
	renames := make(map[string]string)

	for i := range stars {
		for _, rule := range aliasRules {
			if strings.Contains(stars[i].Name, rule.match) {
				renames[stars[i].Name] = rule.canonical
				stars[i].Name = rule.canonical
				break
			}
		}
	}

	remapped := make(types.CompanionMapping, len(mapping))
	for companion, primary := range mapping {
		if to, ok := renames[companion]; ok {
			companion = to
		}
		if to, ok := renames[primary]; ok {
			primary = to
		}
		if companion != primary {
			remapped[companion] = primary
		}
	}

	// Forced mappings for aliased companions, regardless of what the
	// generic grouping saw.
	for _, rule := range aliasRules {
		if rule.primary != "" && rule.canonical != rule.primary {
			remapped[rule.canonical] = rule.primary
		}
	}

	return stars, remapped
}
