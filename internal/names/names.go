// Package names folds player display names to plain ASCII.
//
// Provider rosters carry accented and otherwise decorated names
// (e.g. Dončić, Jokić, Šarić) that older mail clients and terminals
// mangle. Every name is folded once, at the point it enters a
// PerformanceRecord, and again before any output sink that cannot be
// trusted with Unicode.
package names

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes combining characters (NFKD) and drops every rune
// without an ASCII representation.
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Normalize returns the ASCII-only form of s. Deterministic and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		// The fold chain never errors on valid UTF-8; a malformed input
		// falls back to byte-wise stripping.
		b := make([]byte, 0, len(s))
		for i := 0; i < len(s); i++ {
			if s[i] <= unicode.MaxASCII {
				b = append(b, s[i])
			}
		}
		return string(b)
	}
	return out
}
