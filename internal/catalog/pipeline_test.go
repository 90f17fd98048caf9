// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/davisw/starforge/pkg/types"
)

// testSource is a small but representative raw catalog: a header row,
// Sol's placeholder distance, a multi-star system with a bare companion
// token and a member inheriting the header distance, a band-divider
// marker row, corrupted text, and a star beyond the distance cutoff.
const testSource = `System,Star Name,Distance,Coordinates,Spectral Class
Sol,Sol,0.0000158,,G2V
Alpha Centauri,Rigil Kentaurus (A),1.301 ± 0.001,14h 39m 36.5s -60° 50′ 02″,G2V
Alpha Centauri,B,,14h 39m 35.1s -60° 50′ 15″,K1V
Alpha Centauri,Proxima Centauri,1.295,14h 29m 43.0s -62° 40′ 46″,M5.5Ve
,Stars within 10 parsecs,,,
Barnard's Star,BarnardM-Js Star,1.834,17h 57m 48.5s +04° 41′ 36″,M4Ve
Distant,Distant Star,90 pc,,G0V
`

func buildTestCatalog(t *testing.T, cfg types.BuildConfig) Result {
	t.Helper()
	var out bytes.Buffer
	return Build([]byte(testSource), cfg, zerolog.Nop(), &out)
}

func TestBuildEndToEnd(t *testing.T) {
	result := buildTestCatalog(t, testBuildConfig())

	wantOrder := []string{
		"Sol",
		"Proxima Centauri",
		"Alpha Centauri A",
		"Alpha Centauri B",
		"Barnard s Star",
	}
	if len(result.Stars) != len(wantOrder) {
		names := make([]string, len(result.Stars))
		for i, s := range result.Stars {
			names[i] = s.Name
		}
		t.Fatalf("got %d stars (%v), want %d", len(result.Stars), names, len(wantOrder))
	}
	for i, want := range wantOrder {
		if result.Stars[i].Name != want {
			t.Errorf("stars[%d].Name = %q, want %q", i, result.Stars[i].Name, want)
		}
	}

	// The band-divider marker row and the beyond-cutoff star.
	if result.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", result.Skipped)
	}

	// Companion grouping survived aliasing.
	if got := result.Companions["Alpha Centauri B"]; got != "Alpha Centauri A" {
		t.Errorf("mapping[Alpha Centauri B] = %q, want Alpha Centauri A", got)
	}
	if got := result.Companions["Proxima Centauri"]; got != "Alpha Centauri A" {
		t.Errorf("mapping[Proxima Centauri] = %q, want Alpha Centauri A", got)
	}
}

func TestBuildDistances(t *testing.T) {
	result := buildTestCatalog(t, testBuildConfig())

	byName := make(map[string]types.StarRecord)
	for _, s := range result.Stars {
		byName[s.Name] = s
	}

	// Parsec columns converted to light years.
	a := byName["Alpha Centauri A"]
	if want := 1.301 * types.LightYearsPerParsec; math.Abs(a.DistanceFromOrigin()-want) > 1e-3 {
		t.Errorf("Alpha Centauri A distance = %v, want %v", a.DistanceFromOrigin(), want)
	}

	// The bare-token member had no distance column and inherited the
	// system header's.
	b := byName["Alpha Centauri B"]
	if want := 1.301 * types.LightYearsPerParsec; math.Abs(b.DistanceFromOrigin()-want) > 1e-3 {
		t.Errorf("Alpha Centauri B distance = %v, want %v", b.DistanceFromOrigin(), want)
	}

	// Sol's placeholder stays near zero and is pinned to the origin.
	if sol := byName["Sol"]; sol.DistanceFromOrigin() != 0 {
		t.Errorf("Sol distance = %v, want 0", sol.DistanceFromOrigin())
	}
}

func TestBuildCoordinates(t *testing.T) {
	result := buildTestCatalog(t, testBuildConfig())

	for _, s := range result.Stars {
		if s.Name != "Barnard s Star" {
			continue
		}
		// RA ~18h puts the star at negative x; Dec +4.7° keeps z small
		// and positive.
		if s.X >= 0 {
			t.Errorf("Barnard x = %v, want negative", s.X)
		}
		if s.Z <= 0 || s.Z > 1.0 {
			t.Errorf("Barnard z = %v, want small positive", s.Z)
		}
		return
	}
	t.Fatal("Barnard s Star missing from catalog")
}

func TestBuildSeedDeterminism(t *testing.T) {
	a := buildTestCatalog(t, testBuildConfig())
	b := buildTestCatalog(t, testBuildConfig())

	if len(a.Stars) != len(b.Stars) {
		t.Fatalf("star counts differ: %d vs %d", len(a.Stars), len(b.Stars))
	}
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Errorf("stars[%d] differ across identically seeded builds:\n%+v\n%+v",
				i, a.Stars[i], b.Stars[i])
		}
	}
}

func TestBuildWithPadding(t *testing.T) {
	cfg := testBuildConfig()
	cfg.TargetSize = 12
	result := buildTestCatalog(t, cfg)

	if len(result.Stars) != 12 {
		t.Fatalf("got %d stars, want 12", len(result.Stars))
	}
	generated := 0
	for _, s := range result.Stars {
		if s.Generated {
			generated++
		}
	}
	if generated != 7 {
		t.Errorf("%d generated stars, want 7", generated)
	}
}

func TestBuildSummaryOutput(t *testing.T) {
	var out bytes.Buffer
	Build([]byte(testSource), testBuildConfig(), zerolog.Nop(), &out)

	summary := out.String()
	if !strings.Contains(summary, "Build summary:") {
		t.Errorf("summary output missing:\n%s", summary)
	}
	if !strings.Contains(summary, "5 stars") {
		t.Errorf("summary star count wrong:\n%s", summary)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	var out bytes.Buffer
	result := Build(nil, testBuildConfig(), zerolog.Nop(), &out)

	// Even an empty source yields the guaranteed Sol record.
	if len(result.Stars) != 1 || result.Stars[0].Name != types.SolName {
		t.Errorf("empty build = %+v, want just Sol", result.Stars)
	}
}
