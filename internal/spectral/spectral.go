// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package spectral synthesizes physically plausible stellar properties
// from spectral classification strings.
//
// The values are order-of-magnitude illustrative draws from per-class
// ranges, not results of luminosity-mass relations. A subclass digit
// makes the draw deterministic via interpolation; without one the
// properties are sampled from the class range using the injected random
// source, so callers needing reproducibility must seed it.
package spectral

import (
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// DefaultClass is assumed when the classification is empty or
// unrecognized: a generic late-type red dwarf.
const DefaultClass = "M5V"

// Properties is a synthesized (mass, temperature, luminosity, absolute
// magnitude) tuple in solar masses, Kelvin, solar luminosities, and
// magnitudes.
type Properties struct {
	Mass              float64
	Temperature       int
	Luminosity        float64
	AbsoluteMagnitude float64
}

// classRange bounds one spectral letter class. Luminosity spans orders
// of magnitude within a class, so its interpolation is geometric.
type classRange struct {
	massMin, massMax float64
	tempMin, tempMax float64
	lumMin, lumMax   float64
	magMin, magMax   float64
}

// classTable covers main-sequence letters O through Y plus D for compact
// remnants. Magnitude bounds are (brightest, faintest).
var classTable = map[byte]classRange{
	'O': {15, 90, 30000, 50000, 30000, 1000000, -6.5, -4.0},
	'B': {2.1, 16, 10000, 30000, 25, 30000, -4.0, 1.0},
	'A': {1.4, 2.1, 7500, 10000, 5, 25, 1.0, 2.5},
	'F': {1.04, 1.4, 6000, 7500, 1.5, 5, 2.5, 4.5},
	'G': {0.8, 1.04, 5200, 6000, 0.6, 1.5, 4.5, 6.0},
	'K': {0.45, 0.8, 3700, 5200, 0.08, 0.6, 6.0, 9.0},
	'M': {0.08, 0.45, 2400, 3700, 0.0001, 0.08, 9.0, 17.0},
	'L': {0.06, 0.08, 1300, 2400, 0.00001, 0.0001, 17.0, 20.0},
	'T': {0.02, 0.06, 600, 1300, 0.000001, 0.00001, 20.0, 25.0},
	'Y': {0.01, 0.02, 300, 600, 0.0000001, 0.000001, 25.0, 30.0},
	'D': {0.5, 1.4, 8000, 40000, 0.0001, 0.01, 11.0, 16.0},
}

// subclassPattern finds the numeric subclass digit(s), e.g. the "5.5" in
// "M5.5Ve".
var subclassPattern = regexp.MustCompile(`(\d+\.?\d*)`)

// Letter resolves a classification string to its table letter. Empty or
// unrecognized input resolves to 'M'. "sd" (subdwarf) prefixes are
// stripped; "D"-, "WD"- and "W"-prefixed strings are compact remnants
// and resolve to 'D'.
func Letter(class string) byte {
	upper := strings.ToUpper(strings.TrimSpace(class))
	if upper == "" {
		upper = DefaultClass
	}

	if strings.HasPrefix(upper, "SD") {
		upper = upper[2:]
	}
	if strings.HasPrefix(upper, "D") || strings.HasPrefix(upper, "W") {
		return 'D'
	}

	for i := 0; i < len(upper); i++ {
		if _, ok := classTable[upper[i]]; ok {
			return upper[i]
		}
	}
	return 'M'
}

// Synthesize maps a spectral classification to a property tuple. The
// base values are independent uniform draws from the class ranges; a
// subclass digit of 9 or below replaces them with the deterministic
// interpolation from Interpolate.
func Synthesize(class string, rng *rand.Rand) Properties {
	if strings.TrimSpace(class) == "" {
		class = DefaultClass
	}
	r := classTable[Letter(class)]

	p := Properties{
		Mass:              uniform(rng, r.massMin, r.massMax),
		Temperature:       int(uniform(rng, r.tempMin, r.tempMax)),
		Luminosity:        uniform(rng, r.lumMin, r.lumMax),
		AbsoluteMagnitude: uniform(rng, r.magMin, r.magMax),
	}

	if sub, ok := subclass(class); ok {
		p = Interpolate(Letter(class), sub)
	}
	return p
}

// Interpolate returns the deterministic property tuple for a letter
// class and subclass. factor = (9−subclass)/9, so subclass 0 is the hot,
// massive end of the class. Mass and temperature interpolate linearly
// from the low bound toward the high bound; luminosity interpolates
// geometrically because it spans orders of magnitude; absolute magnitude
// runs the opposite way, from the faint bound toward the bright bound,
// since magnitude falls as temperature rises within a class.
func Interpolate(letter byte, sub float64) Properties {
	r, ok := classTable[letter]
	if !ok {
		r = classTable['M']
	}
	factor := (9 - sub) / 9.0

	return Properties{
		Mass:              r.massMin + (r.massMax-r.massMin)*factor,
		Temperature:       int(r.tempMin + (r.tempMax-r.tempMin)*factor),
		Luminosity:        r.lumMin * math.Pow(r.lumMax/r.lumMin, factor),
		AbsoluteMagnitude: r.magMax + (r.magMin-r.magMax)*factor,
	}
}

// subclass extracts the numeric subclass from a classification string.
// Values above 9 (catalog identifiers leaking into the class column) are
// rejected.
func subclass(class string) (float64, bool) {
	m := subclassPattern.FindString(class)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || v > 9 {
		return 0, false
	}
	return v, true
}

// Bounds reports the inclusive property ranges for a letter class, for
// containment checks by callers and tests.
func Bounds(letter byte) (low, high Properties, ok bool) {
	r, found := classTable[letter]
	if !found {
		return Properties{}, Properties{}, false
	}
	low = Properties{Mass: r.massMin, Temperature: int(r.tempMin), Luminosity: r.lumMin, AbsoluteMagnitude: r.magMin}
	high = Properties{Mass: r.massMax, Temperature: int(r.tempMax), Luminosity: r.lumMax, AbsoluteMagnitude: r.magMax}
	return low, high, true
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
