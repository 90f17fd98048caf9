// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package astrometry

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Sexagesimal patterns for the cleaned coordinate column. The declination
// pattern accepts both the proper prime/double-prime marks and their
// ASCII stand-ins left by the encoding repair.
var (
	raPattern  = regexp.MustCompile(`(\d+)h\s*(\d+)m\s*([\d.]+)s`)
	decPattern = regexp.MustCompile(`([+-]?\d+)°\s*(\d+)[′']\s*([\d.]+)[″"]?`)
)

// Equatorial holds a right ascension in hours and a declination in degrees.
type Equatorial struct {
	RAHours    float64
	DecDegrees float64
}

// ParseCoordinates extracts RA/Dec from a cleaned coordinate string in
// "HHh MMm SS.Ss ±DD° MM′ SS″" form. It returns false when the field is
// empty, "N/A", or either component fails to match.
func ParseCoordinates(raw string) (Equatorial, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "N/A" {
		return Equatorial{}, false
	}

	ra := raPattern.FindStringSubmatch(raw)
	dec := decPattern.FindStringSubmatch(raw)
	if ra == nil || dec == nil {
		return Equatorial{}, false
	}

	raH, _ := strconv.ParseFloat(ra[1], 64)
	raM, _ := strconv.ParseFloat(ra[2], 64)
	raS, _ := strconv.ParseFloat(ra[3], 64)

	decD, _ := strconv.ParseFloat(dec[1], 64)
	decM, _ := strconv.ParseFloat(dec[2], 64)
	decS, _ := strconv.ParseFloat(dec[3], 64)

	// Minutes and seconds carry the sign of the degree component.
	sign := 1.0
	if decD < 0 || strings.HasPrefix(dec[1], "-") {
		sign = -1.0
	}

	return Equatorial{
		RAHours:    raH + raM/60 + raS/3600,
		DecDegrees: decD + sign*(decM/60+decS/3600),
	}, true
}

// ToCartesian converts equatorial coordinates and a distance in
// light-years to Cartesian light-years: RA is converted to degrees (×15)
// then radians, and
//
//	x = d·cos(dec)·cos(ra)
//	y = d·cos(dec)·sin(ra)
//	z = d·sin(dec)
func ToCartesian(eq Equatorial, distanceLY float64) (x, y, z float64) {
	ra := eq.RAHours * 15.0 * math.Pi / 180.0
	dec := eq.DecDegrees * math.Pi / 180.0

	x = distanceLY * math.Cos(dec) * math.Cos(ra)
	y = distanceLY * math.Cos(dec) * math.Sin(ra)
	z = distanceLY * math.Sin(dec)
	return x, y, z
}

// FromCartesian recovers distance, RA, and Dec from a Cartesian position.
// It is the inverse of ToCartesian and backs the viewer-schema export.
// The zero position (Sol) yields zero distance and zero angles.
func FromCartesian(x, y, z float64) (distanceLY float64, eq Equatorial) {
	distanceLY = math.Sqrt(x*x + y*y + z*z)
	if distanceLY == 0 {
		return 0, Equatorial{}
	}

	raHours := math.Atan2(y, x) * 180.0 / math.Pi / 15.0
	if raHours < 0 {
		raHours += 24.0
	}

	return distanceLY, Equatorial{
		RAHours:    raHours,
		DecDegrees: math.Asin(z/distanceLY) * 180.0 / math.Pi,
	}
}
