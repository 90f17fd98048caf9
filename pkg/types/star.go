// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "math"

// LightYearsPerParsec converts parsec distances to light-years.
const LightYearsPerParsec = 3.26156

// CatalogRow is one non-empty line of the raw source catalog after field
// splitting. It is transient: built per line, consumed by the pipeline,
// and discarded.
type CatalogRow struct {
	// System is the system-name column. Non-empty values open a new
	// system block for companion grouping.
	System string

	// Name is the star-name column. Rows with an empty cleaned name are
	// dropped.
	Name string

	// Distance is the raw distance column (mixed parsec/light-year
	// units, possibly with an error term).
	Distance string

	// Coordinates is the raw RA/Dec column in sexagesimal notation.
	Coordinates string

	// SpectralClass is the raw spectral classification column.
	SpectralClass string

	// Line is the 1-based source line number, kept for diagnostics.
	Line int
}

// StarRecord is one star in the final catalog. Positions are Cartesian
// light-years relative to Sol. Records are immutable once the assembler
// has resolved aliases.
type StarRecord struct {
	// Name is the unique catalog key after alias resolution.
	Name string `json:"name" yaml:"name"`

	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`

	// SpectralClass is the cleaned classification string (e.g. "M5V").
	SpectralClass string `json:"stellar_class" yaml:"stellar_class"`

	// Mass is in solar masses.
	Mass float64 `json:"mass" yaml:"mass"`

	// Temperature is the effective temperature in Kelvin.
	Temperature int `json:"temperature" yaml:"temperature"`

	// Luminosity is in solar luminosities.
	Luminosity float64 `json:"luminosity" yaml:"luminosity"`

	// AbsoluteMagnitude is brightness at the standard distance; lower
	// is brighter.
	AbsoluteMagnitude float64 `json:"absolute_magnitude" yaml:"absolute_magnitude"`

	// Generated marks procedurally generated filler stars added to
	// reach a target catalog size.
	Generated bool `json:"generated,omitempty" yaml:"generated,omitempty"`
}

// DistanceFromOrigin returns the Euclidean distance from Sol in light-years.
func (s StarRecord) DistanceFromOrigin() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}

// CompanionMapping maps companion star names to their primary star name.
// Keys are unique; a name is never its own value. After assembly every
// key and value names a StarRecord present in the final catalog.
type CompanionMapping map[string]string

// Sol reference values. The assembler guarantees exactly one record
// named "Sol" at the origin with these properties.
const (
	SolName              = "Sol"
	SolSpectralClass     = "G2V"
	SolMass              = 1.0
	SolTemperature       = 5778
	SolLuminosity        = 1.0
	SolAbsoluteMagnitude = 4.83
)

// NewSolRecord returns the canonical Sol entry at the origin.
func NewSolRecord() StarRecord {
	return StarRecord{
		Name:              SolName,
		SpectralClass:     SolSpectralClass,
		Mass:              SolMass,
		Temperature:       SolTemperature,
		Luminosity:        SolLuminosity,
		AbsoluteMagnitude: SolAbsoluteMagnitude,
	}
}
