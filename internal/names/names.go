// Package names normalizes player names into a cross-source join key.
// Normalization is lossy and not injective; two players can share a
// normalized name, so callers must treat it as a matching hint and never
// as an identity.
package names

import (
	"regexp"
	"strings"
)

var (
	suffixPattern     = regexp.MustCompile(`\b(jr\.?|sr\.?|ii|iii|iv|v)\b`)
	punctuationRunes  = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize lowercases a name, strips generational suffixes and
// punctuation, and collapses runs of whitespace. Applying it twice yields
// the same result as applying it once.
func Normalize(name string) string {
	out := strings.ToLower(name)
	out = suffixPattern.ReplaceAllString(out, "")
	out = punctuationRunes.ReplaceAllString(out, "")
	out = whitespacePattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// DefenseName builds the synthetic full name used for team defenses, which
// have no person name upstream.
func DefenseName(team string) string {
	return team + " Defense"
}
