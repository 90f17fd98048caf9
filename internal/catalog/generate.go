// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/davisw/starforge/internal/astrometry"
	"github.com/davisw/starforge/internal/spectral"
	"github.com/davisw/starforge/pkg/types"
)

// generatedNameBase offsets procedural star numbering so generated names
// never collide across padding runs against the same real-data catalog.
const generatedNameBase = 1000

// GenerateStar creates one procedural star: volume-uniform position
// within maxDistance, a weighted spectral class, and synthesized
// properties. index feeds the "Star-NNNN" name.
func GenerateStar(index int, maxDistance float64, rng *rand.Rand) types.StarRecord {
	class := spectral.RandomClass(rng)
	props := spectral.Synthesize(class, rng)
	x, y, z := astrometry.RandomInSphere(rng, maxDistance)

	return types.StarRecord{
		Name:              fmt.Sprintf("Star-%04d", generatedNameBase+index),
		X:                 round6(x),
		Y:                 round6(y),
		Z:                 round6(z),
		SpectralClass:     class,
		Mass:              round3(props.Mass),
		Temperature:       props.Temperature,
		Luminosity:        round6(props.Luminosity),
		AbsoluteMagnitude: round2(props.AbsoluteMagnitude),
		Generated:         true,
	}
}

// GenerateCatalog creates a fully procedural catalog: Sol at the
// origin plus count-1 generated stars, sorted by distance from Sol.
func GenerateCatalog(count int, maxDistance float64, seed int64) []types.StarRecord {
	rng := newRand(seed)
	stars := append([]types.StarRecord{types.NewSolRecord()},
		GenerateStars(count-1, maxDistance, rng)...)
	sort.SliceStable(stars, func(i, j int) bool {
		return stars[i].DistanceFromOrigin() < stars[j].DistanceFromOrigin()
	})
	return stars
}

// GenerateStars creates n procedural filler stars.
func GenerateStars(n int, maxDistance float64, rng *rand.Rand) []types.StarRecord {
	if n <= 0 {
		return nil
	}
	stars := make([]types.StarRecord, n)
	for i := range stars {
		stars[i] = GenerateStar(i+1, maxDistance, rng)
	}
	return stars
}
