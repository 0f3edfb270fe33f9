// Package slug derives URL-safe identifiers for news articles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxLength caps generated slugs.
	MaxLength = 80

	// FallbackBase is used when a title yields an empty slug.
	FallbackBase = "actualite"
)

// stripMarks decomposes to NFD and drops combining marks, so that
// "Répétition générale" slugs the same as "Repetition generale".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make turns a title into a slug: lowercase ASCII letters, digits and
// single hyphens only, at most MaxLength runes, no leading, trailing
// or repeated hyphens.
func Make(title string) string {
	s, _, err := transform.String(stripMarks, title)
	if err != nil {
		s = title
	}

	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '-':
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	s = strings.Join(fields, "-")

	if len(s) > MaxLength {
		s = strings.Trim(s[:MaxLength], "-")
	}

	return s
}

// MakeWithFallback is Make with the fixed fallback base substituted
// for empty results.
func MakeWithFallback(title string) string {
	if s := Make(title); s != "" {
		return s
	}
	return FallbackBase
}
