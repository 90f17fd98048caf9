// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/davisw/starforge/pkg/types"
)

func sampleStars() []types.StarRecord {
	return []types.StarRecord{
		types.NewSolRecord(),
		{
			Name: "Proxima Centauri", X: -1.543, Y: -1.178, Z: -3.768,
			SpectralClass: "M5.5Ve", Mass: 0.122, Temperature: 3042,
			Luminosity: 0.001567, AbsoluteMagnitude: 15.53,
		},
		{
			Name: "Alpha Centauri A", X: -1.611, Y: -1.252, Z: -3.835,
			SpectralClass: "G2V", Mass: 1.079, Temperature: 5790,
			Luminosity: 1.519, AbsoluteMagnitude: 4.38,
		},
	}
}

func TestWriteStarsFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStars(&buf, sampleStars()); err != nil {
		t.Fatalf("WriteStars: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header plus 3 rows", len(lines))
	}
	if lines[0] != "name,x,y,z,stellar_class,mass,temperature,luminosity,absolute_magnitude" {
		t.Errorf("header = %q", lines[0])
	}
	// Fixed decimal places: position 6, mass 3, luminosity 6, magnitude 2.
	if lines[1] != "Sol,0.000000,0.000000,0.000000,G2V,1.000,5778,1.000000,4.83" {
		t.Errorf("Sol row = %q", lines[1])
	}
}

func TestStarsRoundTrip(t *testing.T) {
	want := sampleStars()

	var buf bytes.Buffer
	if err := WriteStars(&buf, want); err != nil {
		t.Fatalf("WriteStars: %v", err)
	}
	got, err := ReadStars(&buf)
	if err != nil {
		t.Fatalf("ReadStars: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d stars, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name || got[i].SpectralClass != want[i].SpectralClass {
			t.Errorf("star %d = %+v, want %+v", i, got[i], want[i])
		}
		if math.Abs(got[i].X-want[i].X) > 1e-6 || got[i].Temperature != want[i].Temperature {
			t.Errorf("star %d numeric fields drifted: %+v", i, got[i])
		}
	}
}

func TestReadStarsErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if _, err := ReadStars(strings.NewReader("")); err == nil {
			t.Error("ReadStars accepted empty input")
		}
	})

	t.Run("bad numeric field", func(t *testing.T) {
		input := "name,x,y,z,stellar_class,mass,temperature,luminosity,absolute_magnitude\n" +
			"Sol,zero,0,0,G2V,1.0,5778,1.0,4.83\n"
		_, err := ReadStars(strings.NewReader(input))
		if err == nil || !strings.Contains(err.Error(), "row 2") {
			t.Errorf("ReadStars error = %v, want row-indexed parse failure", err)
		}
	})
}

func TestCompanionsRoundTrip(t *testing.T) {
	mapping := types.CompanionMapping{
		"Proxima Centauri": "Alpha Centauri A",
		"Alpha Centauri B": "Alpha Centauri A",
		"Sirius B":         "Sirius",
	}

	var buf bytes.Buffer
	if err := WriteCompanions(&buf, mapping); err != nil {
		t.Fatalf("WriteCompanions: %v", err)
	}

	// Sorted by companion name.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	wantLines := []string{
		"companion_name,primary_star_name",
		"Alpha Centauri B,Alpha Centauri A",
		"Proxima Centauri,Alpha Centauri A",
		"Sirius B,Sirius",
	}
	for i, want := range wantLines {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}

	got, err := ReadCompanions(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadCompanions: %v", err)
	}
	if len(got) != len(mapping) {
		t.Fatalf("got %d mappings, want %d", len(got), len(mapping))
	}
	for companion, primary := range mapping {
		if got[companion] != primary {
			t.Errorf("mapping[%q] = %q, want %q", companion, got[companion], primary)
		}
	}
}

func TestWriteViewer(t *testing.T) {
	stars := sampleStars()
	mapping := types.CompanionMapping{"Proxima Centauri": "Alpha Centauri A"}

	var buf bytes.Buffer
	if err := WriteViewer(&buf, stars, mapping); err != nil {
		t.Fatalf("WriteViewer: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Name,Distance,RA,Dec,SpectralType,Allegiance" {
		t.Errorf("header = %q", lines[0])
	}

	// Sol sits at the origin and owes allegiance to itself.
	if lines[1] != "Sol,0.0000,0.0000,0.0000,G2V,Sol" {
		t.Errorf("Sol row = %q", lines[1])
	}

	// Proxima is a mapped companion: distance derived from x/y/z,
	// allegiance from the mapping.
	proxima := strings.Split(lines[2], ",")
	if proxima[0] != "Proxima Centauri" {
		t.Fatalf("row 2 = %q, want Proxima Centauri", lines[2])
	}
	if proxima[5] != "Alpha Centauri A" {
		t.Errorf("Proxima allegiance = %q, want Alpha Centauri A", proxima[5])
	}
	s := stars[1]
	wantDistance := math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
	if !strings.HasPrefix(proxima[1], "4.2") {
		t.Errorf("Proxima distance = %q, want ~%.4f", proxima[1], wantDistance)
	}

	// Unmapped stars owe allegiance to themselves.
	alpha := strings.Split(lines[3], ",")
	if alpha[5] != "Alpha Centauri A" {
		t.Errorf("Alpha Centauri A allegiance = %q, want itself", alpha[5])
	}
}
