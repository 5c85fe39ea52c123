package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalized is a query collapsed into its three comparable forms.
type Normalized struct {
	// Full keeps spaces and hyphens: decomposed, diacritics and punctuation
	// removed, lowercased.
	Full string
	// Tokens is Full with hyphens treated as spaces, split into words.
	Tokens []string
	// Stripped is Full with everything but letters and digits removed.
	Stripped string
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize collapses free text into the forms used by name matching. Pure
// and idempotent on the Full form.
func Normalize(raw string) Normalized {
	folded, _, err := transform.String(stripMarks, strings.ToLower(raw))
	if err != nil {
		folded = strings.ToLower(raw)
	}

	var full strings.Builder
	for _, r := range folded {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ' || r == '-' {
			full.WriteRune(r)
		}
	}

	fullStr := full.String()

	return Normalized{
		Full:     fullStr,
		Tokens:   strings.Fields(strings.ReplaceAll(fullStr, "-", " ")),
		Stripped: strings.Map(keepAlphanumeric, fullStr),
	}
}

func keepAlphanumeric(r rune) rune {
	if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
		return r
	}
	return -1
}
