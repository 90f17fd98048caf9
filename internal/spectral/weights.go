// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spectral

import (
	"fmt"
	"math/rand"
)

// classWeight is one entry of the solar-neighborhood class distribution.
type classWeight struct {
	letter byte
	weight float64
}

// neighborhoodWeights approximates the spectral mix within ~80 ly of
// Sol: late-type dwarfs dominate heavily.
var neighborhoodWeights = []classWeight{
	{'M', 0.765},
	{'K', 0.121},
	{'G', 0.076},
	{'F', 0.030},
	{'A', 0.006},
	{'D', 0.001},
	{'B', 0.001},
}

// RandomClass draws a full classification string for a procedural star:
// a weighted letter, a uniform subclass digit, and a "V" luminosity
// suffix for everything except white dwarfs.
func RandomClass(rng *rand.Rand) string {
	letter := weightedLetter(rng)
	sub := rng.Intn(10)
	if letter == 'D' {
		return fmt.Sprintf("%c%d", letter, sub)
	}
	return fmt.Sprintf("%c%dV", letter, sub)
}

func weightedLetter(rng *rand.Rand) byte {
	total := 0.0
	for _, cw := range neighborhoodWeights {
		total += cw.weight
	}
	draw := rng.Float64() * total
	for _, cw := range neighborhoodWeights {
		draw -= cw.weight
		if draw < 0 {
			return cw.letter
		}
	}
	return neighborhoodWeights[0].letter
}
