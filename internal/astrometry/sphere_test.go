// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package astrometry

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomOnSphereRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		x, y, z := RandomOnSphere(rng, 25.0)
		r := math.Sqrt(x*x + y*y + z*z)
		if math.Abs(r-25.0) > 1e-9 {
			t.Fatalf("draw %d: |(%v, %v, %v)| = %v, want 25.0", i, x, y, z, r)
		}
	}
}

func TestRandomOnSphereUniform(t *testing.T) {
	// For a uniform surface distribution z/r is uniform on [-1, 1]:
	// mean 0, and half the draws land in |z/r| < 0.5. A naive polar
	// draw fails both by clustering at the poles.
	rng := rand.New(rand.NewSource(42))
	const n = 20000

	var sum float64
	middle := 0
	for i := 0; i < n; i++ {
		_, _, z := RandomOnSphere(rng, 1.0)
		sum += z
		if math.Abs(z) < 0.5 {
			middle++
		}
	}

	if mean := sum / n; math.Abs(mean) > 0.02 {
		t.Errorf("mean z = %v, want ~0", mean)
	}
	if frac := float64(middle) / n; math.Abs(frac-0.5) > 0.02 {
		t.Errorf("fraction with |z| < 0.5 = %v, want ~0.5", frac)
	}
}

func TestRandomInSphereBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		x, y, z := RandomInSphere(rng, 80.0)
		r := math.Sqrt(x*x + y*y + z*z)
		if r > 80.0+1e-9 {
			t.Fatalf("draw %d: radius %v exceeds 80", i, r)
		}
	}
}

func TestRandomInSphereVolumeUniform(t *testing.T) {
	// Uniform density per unit volume puts 1/8 of the draws inside
	// half the radius. A uniform radial draw would put 1/2 there.
	rng := rand.New(rand.NewSource(99))
	const n = 20000

	inner := 0
	for i := 0; i < n; i++ {
		x, y, z := RandomInSphere(rng, 1.0)
		if math.Sqrt(x*x+y*y+z*z) < 0.5 {
			inner++
		}
	}

	if frac := float64(inner) / n; math.Abs(frac-0.125) > 0.015 {
		t.Errorf("fraction inside half radius = %v, want ~0.125", frac)
	}
}
