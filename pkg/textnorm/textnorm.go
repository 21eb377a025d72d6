// Package textnorm folds free text into a comparable form: lower-cased,
// accents stripped, punctuation collapsed to single spaces.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s and removes combining marks ("Réservé" -> "reserve").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Words folds s and replaces every run of non letter/digit runes with a
// single space. The result is padded with one space on each side so callers
// can match whole words with " word ".
func Words(s string) string {
	folded := Fold(s)

	var b strings.Builder
	b.Grow(len(folded) + 2)
	b.WriteByte(' ')
	space := true
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	if !space {
		b.WriteByte(' ')
	}
	return b.String()
}

// Match reports whether key occurs in padded text produced by Words. A key
// ending in '*' matches any word starting with the key; otherwise the key
// must match whole words. Keys are folded before matching.
func Match(padded, key string) bool {
	prefix := strings.HasSuffix(key, "*")
	key = strings.TrimSpace(Words(strings.TrimSuffix(key, "*")))
	if key == "" {
		return false
	}
	if prefix {
		return strings.Contains(padded, " "+key)
	}
	return strings.Contains(padded, " "+key+" ")
}

// MatchAny reports whether any key matches.
func MatchAny(padded string, keys []string) bool {
	for _, k := range keys {
		if Match(padded, k) {
			return true
		}
	}
	return false
}
