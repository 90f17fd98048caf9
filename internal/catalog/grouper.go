// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strings"

	"github.com/davisw/starforge/pkg/types"
)

// companionTokens are the bare designations the source uses for member
// stars of a multi-star system. A row named just "B" inside the
// "Alpha Centauri" block means "Alpha Centauri B".
var companionTokens = map[string]bool{
	"A": true, "B": true, "C": true, "D": true,
	"Ba": true, "Bb": true, "Ab": true, "Bc": true, "Bd": true,
	"Ca": true, "Cb": true, "Da": true, "Db": true,
}

// companionSuffixes mark full names that end in a member designation,
// e.g. "Luyten 726-8 B".
var companionSuffixes = []string{" B", " C", " D", " Ba", " Bb", " Ab", " Bc", " Bd", " Ca", " Cb", " Da", " Db"}

// Grouper is a state machine over catalog rows in file order. A
// non-empty system field opens a block; the block closes when the next
// system header arrives or the stream ends. On close, every member
// except the tracked primary is mapped to the primary.
type Grouper struct {
	system string

	// Fallback values from the system header row, used by member rows
	// with empty distance or class columns.
	systemDistance   float64
	systemDistanceOK bool
	systemClass      string

	primary string
	members []string

	mapping types.CompanionMapping
}

// NewGrouper returns a Grouper with no open system.
func NewGrouper() *Grouper {
	return &Grouper{mapping: make(types.CompanionMapping)}
}

// OpenSystem closes any open block and starts a new one. distance and
// class are the header row's values, kept as fallbacks for member rows.
func (g *Grouper) OpenSystem(name string, distance float64, distanceOK bool, class string) {
	g.closeBlock()
	g.system = name
	g.systemDistance = distance
	g.systemDistanceOK = distanceOK
	g.systemClass = class
	g.primary = ""
	g.members = nil
}

// System returns the name of the open system, or "" when none is open.
func (g *Grouper) System() string { return g.system }

// FallbackDistance returns the open system's header distance.
func (g *Grouper) FallbackDistance() (float64, bool) {
	return g.systemDistance, g.systemDistanceOK
}

// FallbackClass returns the open system's header spectral class.
func (g *Grouper) FallbackClass() string { return g.systemClass }

// ResolveName rewrites a bare companion token to "<system> <token>".
// Names that are not bare tokens, or arrive with no open system, pass
// through unchanged.
func (g *Grouper) ResolveName(name string) string {
	if g.system != "" && companionTokens[name] {
		return g.system + " " + name
	}
	return name
}

// Observe records a star in the open block and updates primary
// tracking. originalName is the name before token expansion; the
// primary is the first star that is not a lettered companion, and a
// bare "A" token or a name ending in " A" always takes (or retakes)
// the primary slot.
func (g *Grouper) Observe(originalName, finalName string) {
	if g.system == "" {
		return
	}
	g.members = append(g.members, finalName)

	switch {
	case originalName == "A" || strings.HasSuffix(finalName, " A"):
		g.primary = finalName
	case g.primary == "" && !isCompanionName(originalName):
		g.primary = finalName
	}
}

// Close finalizes the open block and returns the accumulated companion
// mapping. The Grouper must not be reused afterwards.
func (g *Grouper) Close() types.CompanionMapping {
	g.closeBlock()
	return g.mapping
}

func (g *Grouper) closeBlock() {
	if g.primary == "" {
		return
	}
	for _, member := range g.members {
		if member != g.primary {
			g.mapping[member] = g.primary
		}
	}
}

// isCompanionName reports whether a cleaned name is a lettered
// companion designation, either a bare token or a suffixed full name.
func isCompanionName(name string) bool {
	if companionTokens[name] {
		return true
	}
	for _, suffix := range companionSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
