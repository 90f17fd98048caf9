// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"reflect"
	"testing"

	"github.com/davisw/starforge/pkg/types"
)

func TestGrouperResolveName(t *testing.T) {
	g := NewGrouper()
	g.OpenSystem("Alpha Centauri", 4.24, true, "G2V")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare token B", "B", "Alpha Centauri B"},
		{"bare token A", "A", "Alpha Centauri A"},
		{"two-letter token", "Bb", "Alpha Centauri Bb"},
		{"full name passes through", "Proxima Centauri", "Proxima Centauri"},
		{"lowercase b is not a token", "b", "b"},
		{"unknown token", "E", "E"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ResolveName(tt.in); got != tt.want {
				t.Errorf("ResolveName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	t.Run("no open system", func(t *testing.T) {
		g := NewGrouper()
		if got := g.ResolveName("B"); got != "B" {
			t.Errorf("ResolveName(B) with no system = %q, want B", got)
		}
	})
}

func TestGrouperMapping(t *testing.T) {
	t.Run("members map to first non-companion", func(t *testing.T) {
		g := NewGrouper()
		g.OpenSystem("Alpha Centauri", 4.24, true, "G2V")
		g.Observe("Rigil Kentaurus", "Rigil Kentaurus")
		g.Observe("B", "Alpha Centauri B")
		g.Observe("Proxima Centauri", "Proxima Centauri")

		want := types.CompanionMapping{
			"Alpha Centauri B": "Rigil Kentaurus",
			"Proxima Centauri": "Rigil Kentaurus",
		}
		if got := g.Close(); !reflect.DeepEqual(got, want) {
			t.Errorf("mapping = %v, want %v", got, want)
		}
	})

	t.Run("token A retakes primary", func(t *testing.T) {
		g := NewGrouper()
		g.OpenSystem("Luyten 726-8", 8.7, true, "M5.5Ve")
		g.Observe("Luyten 726-8", "Luyten 726-8")
		g.Observe("A", "Luyten 726-8 A")
		g.Observe("B", "Luyten 726-8 B")

		want := types.CompanionMapping{
			"Luyten 726-8":   "Luyten 726-8 A",
			"Luyten 726-8 B": "Luyten 726-8 A",
		}
		if got := g.Close(); !reflect.DeepEqual(got, want) {
			t.Errorf("mapping = %v, want %v", got, want)
		}
	})

	t.Run("companion-only block produces no mapping", func(t *testing.T) {
		g := NewGrouper()
		g.OpenSystem("Sirius", 8.6, true, "A1V")
		g.Observe("B", "Sirius B")

		if got := g.Close(); len(got) != 0 {
			t.Errorf("mapping = %v, want empty: no primary was seen", got)
		}
	})

	t.Run("new system closes the previous block", func(t *testing.T) {
		g := NewGrouper()
		g.OpenSystem("Alpha Centauri", 4.24, true, "G2V")
		g.Observe("A", "Alpha Centauri A")
		g.Observe("B", "Alpha Centauri B")
		g.OpenSystem("Sirius", 8.6, true, "A1V")
		g.Observe("Sirius", "Sirius")
		g.Observe("B", "Sirius B")

		want := types.CompanionMapping{
			"Alpha Centauri B": "Alpha Centauri A",
			"Sirius B":         "Sirius",
		}
		if got := g.Close(); !reflect.DeepEqual(got, want) {
			t.Errorf("mapping = %v, want %v", got, want)
		}
	})

	t.Run("single star system", func(t *testing.T) {
		g := NewGrouper()
		g.OpenSystem("Barnard's Star", 5.96, true, "M4Ve")
		g.Observe("Barnard's Star", "Barnard's Star")

		if got := g.Close(); len(got) != 0 {
			t.Errorf("mapping = %v, want empty", got)
		}
	})

	t.Run("observe without open system is ignored", func(t *testing.T) {
		g := NewGrouper()
		g.Observe("Wolf 359", "Wolf 359")
		if got := g.Close(); len(got) != 0 {
			t.Errorf("mapping = %v, want empty", got)
		}
	})
}

func TestGrouperFallbacks(t *testing.T) {
	g := NewGrouper()
	g.OpenSystem("Alpha Centauri", 4.2438, true, "G2V")

	if d, ok := g.FallbackDistance(); !ok || d != 4.2438 {
		t.Errorf("FallbackDistance = %v, %v; want 4.2438, true", d, ok)
	}
	if c := g.FallbackClass(); c != "G2V" {
		t.Errorf("FallbackClass = %q, want G2V", c)
	}

	// A header row without a resolvable distance gives members nothing
	// to fall back on.
	g.OpenSystem("Ross 248", 0, false, "")
	if _, ok := g.FallbackDistance(); ok {
		t.Error("FallbackDistance ok = true after header without distance")
	}
}

func TestIsCompanionName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"bare token", "B", true},
		{"two-letter token", "Ca", true},
		{"suffixed name", "Luyten 726-8 B", true},
		{"suffixed two-letter", "Kruger 60 Ba", true},
		{"plain name", "Proxima Centauri", false},
		{"name ending in A is not a companion", "Gliese 65 A", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCompanionName(tt.in); got != tt.want {
				t.Errorf("isCompanionName(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
