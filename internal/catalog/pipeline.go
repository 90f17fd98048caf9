// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/davisw/starforge/internal/astrometry"
	"github.com/davisw/starforge/internal/spectral"
	"github.com/davisw/starforge/internal/textnorm"
	"github.com/davisw/starforge/pkg/types"
)

// tenParsecMarker identifies the distance-band divider rows the source
// interleaves with real stars ("Stars within 10 parsecs", ...).
const tenParsecMarker = "10 parsecs"

// Result holds the output of a catalog build.
type Result struct {
	Stars      []types.StarRecord
	Companions types.CompanionMapping

	// Row accounting for the batch summary.
	Parsed  int
	Skipped int
}

// Build runs the whole normalization pipeline over raw source catalog
// bytes: decode, per-row field cleaning, distance and coordinate
// resolution, companion grouping, property synthesis, and final
// assembly. Rows it cannot use are skipped, never fatal; per-row status
// goes to w and anomalies to log.
//
// Rows must be processed strictly in file order: the grouper's
// primary/companion classification depends on system headers opening
// blocks that only close at the next header or end of input.
func Build(raw []byte, cfg types.BuildConfig, log zerolog.Logger, w io.Writer) Result {
	rng := newRand(cfg.Seed)
	grouper := NewGrouper()

	var stars []types.StarRecord
	var skipped int

	lines := strings.Split(textnorm.Decode(raw), "\n")
	for i, line := range lines {
		if i == 0 { // header row
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, ok := ParseRow(line, i+1)
		if !ok {
			skipped++
			continue
		}

		// A changed system field opens a new block. A repeated system
		// name is the source restating the header on a member row and
		// must not reset the block's primary.
		if row.System != "" && row.System != grouper.System() {
			dist, distOK := astrometry.ResolveDistance(row.Distance, cfg.Distance)
			grouper.OpenSystem(row.System, dist, distOK, row.SpectralClass)
		}

		star, ok := resolveRow(row, grouper, cfg, rng, log)
		if !ok {
			skipped++
			continue
		}

		stars = append(stars, star)
	}

	mapping := grouper.Close()
	stars, mapping = Assemble(stars, mapping, cfg, rng, log)

	fmt.Fprintf(w, "\nBuild summary: %d stars, %d companion mappings, %d rows skipped\n",
		len(stars), len(mapping), skipped)

	return Result{
		Stars:      stars,
		Companions: mapping,
		Parsed:     len(stars),
		Skipped:    skipped,
	}
}

// resolveRow turns one parsed row into a StarRecord, or reports it
// unusable. Unusable rows are a filtering decision, not an error: no
// name, a band-divider marker, no resolvable distance, or a distance
// past the configured maximum.
func resolveRow(row types.CatalogRow, grouper *Grouper, cfg types.BuildConfig, rng *rand.Rand, log zerolog.Logger) (types.StarRecord, bool) {
	if row.Name == "" {
		log.Debug().Int("line", row.Line).Msg("row without star name skipped")
		return types.StarRecord{}, false
	}
	if strings.Contains(row.Name, tenParsecMarker) {
		return types.StarRecord{}, false
	}

	originalName := row.Name
	name := grouper.ResolveName(row.Name)

	distance, ok := astrometry.ResolveDistance(row.Distance, cfg.Distance)
	if !ok {
		// Member rows of a system often leave the distance column to
		// the header row.
		distance, ok = grouper.FallbackDistance()
	}
	if !ok {
		log.Debug().Str("name", name).Int("line", row.Line).Msg("no resolvable distance, row skipped")
		return types.StarRecord{}, false
	}
	if distance > cfg.MaxDistance {
		log.Debug().Str("name", name).Float64("distance_ly", distance).Msg("beyond maximum distance, row skipped")
		return types.StarRecord{}, false
	}

	class := row.SpectralClass
	if class == "" {
		class = grouper.FallbackClass()
	}
	if class == "" {
		log.Debug().Str("name", name).Msg("unknown spectral class, using default")
		class = spectral.DefaultClass
	}

	var x, y, z float64
	if eq, ok := astrometry.ParseCoordinates(textnorm.Clean(row.Coordinates)); ok {
		x, y, z = astrometry.ToCartesian(eq, distance)
	} else {
		// No usable coordinates: place the star at its known distance
		// in a uniform random direction.
		x, y, z = astrometry.RandomOnSphere(rng, distance)
	}

	props := spectral.Synthesize(class, rng)

	star := types.StarRecord{
		Name:              name,
		X:                 round6(x),
		Y:                 round6(y),
		Z:                 round6(z),
		SpectralClass:     class,
		Mass:              round3(props.Mass),
		Temperature:       props.Temperature,
		Luminosity:        round6(props.Luminosity),
		AbsoluteMagnitude: round2(props.AbsoluteMagnitude),
	}

	grouper.Observe(originalName, name)
	return star, true
}

// newRand returns a seeded source, or a clock-seeded one when seed is
// zero (the reference behavior).
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }
func round3(v float64) float64 { return math.Round(v*1e3) / 1e3 }
func round2(v float64) float64 { return math.Round(v*1e2) / 1e2 }
