// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm repairs encoding damage in raw catalog text.
//
// The source catalog is a Latin-1 export that has been round-tripped
// through at least two wrong decoders, so the same logical character
// shows up as several different byte sequences ("M-!" and "¡" are both
// a degree sign). Clean applies a fixed substitution table and collapses
// whitespace; Decode turns the raw Latin-1 bytes into UTF-8 without ever
// failing on bad input.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// replacements is the ordered repair table. Order matters: multi-byte
// mojibake markers ("M-J") must be rewritten before their single-byte
// substrings, so the most specific patterns come first.
var replacements = []struct {
	old, new string
}{
	// cat -v style control renderings left behind by an earlier export.
	{"M-J", " "},
	{"M-!", "°"},
	{"M-P", "-"},
	{"M-$", ""},
	{"M-`", ""},
	{"M-1", "±"},
	{"M-^", ""},

	// Mis-decoded single characters.
	{"Ê", " "}, // Ê standing in for a non-breaking space
	{" ", " "}, // non-breaking space
	{"¡", "°"}, // ¡ standing in for the degree sign
	{"–", "-"}, // en dash
	{"—", "-"}, // em dash
	{"−", "-"}, // minus sign
	{"�", " "}, // replacement character from lossy decodes

	// Stray markup markers in the source.
	{"$", ""},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Clean repairs known mis-decoded sequences in text, collapses whitespace
// runs to single spaces, and trims. It is pure and total: empty input is
// returned unchanged and no input can fail.
func Clean(text string) string {
	if text == "" {
		return text
	}
	for _, r := range replacements {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Decode converts raw Latin-1 catalog bytes to UTF-8 and normalizes line
// endings to "\n". Latin-1 maps every byte to a code point, so decoding
// cannot fail; genuinely garbage bytes surface as odd characters that
// Clean repairs later.
func Decode(raw []byte) string {
	normalized := strings.ReplaceAll(string(raw), "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	decoded, err := charmap.ISO8859_1.NewDecoder().String(normalized)
	if err != nil {
		// Unreachable for ISO 8859-1, but degrade instead of aborting.
		return normalized
	}
	return decoded
}
