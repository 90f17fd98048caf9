// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package astrometry

import (
	"math"
	"math/rand"
)

// RandomOnSphere places a point uniformly on the sphere of the given
// radius. Azimuth is uniform in [0, 2π); the polar angle is drawn as
// acos(1−2u) so the surface density is uniform rather than clustered at
// the poles, which a naive uniform polar angle would produce.
//
// It backs the coordinate fallback: when a catalog row has no parseable
// RA/Dec, the star is placed at its known distance in a random direction.
func RandomOnSphere(rng *rand.Rand, radius float64) (x, y, z float64) {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(1 - 2*rng.Float64())

	x = radius * math.Sin(phi) * math.Cos(theta)
	y = radius * math.Sin(phi) * math.Sin(theta)
	z = radius * math.Cos(phi)
	return x, y, z
}

// RandomInSphere places a point uniformly within the ball of the given
// maximum radius. The radial draw uses a cube root so star density is
// uniform per unit volume, not per unit radius. Procedural filler stars
// are positioned with this.
func RandomInSphere(rng *rand.Rand, maxRadius float64) (x, y, z float64) {
	r := math.Cbrt(rng.Float64()) * maxRadius
	return RandomOnSphere(rng, r)
}
