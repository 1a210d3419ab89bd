package search

import (
	"strings"
	"unicode"
)

// CJK Unified Ideographs block handled at single-character granularity
const (
	cjkLo = 0x4E00
	cjkHi = 0x9FA5
)

func isCJK(r rune) bool {
	return r >= cjkLo && r <= cjkHi
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// Tokenize splits text into normalized tokens: one token per CJK character,
// one token per maximal alphanumeric run. Input is lowercased first and any
// character that is neither alphanumeric, whitespace, nor CJK is stripped.
// The result is deduplicated, keeping first-occurrence order.
func Tokenize(text string) []string {
	var tokens []string
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			tokens = append(tokens, run.String())
			run.Reset()
		}
	}

	for _, r := range strings.ToLower(text) {
		switch {
		case isCJK(r):
			// A CJK char closes any open Latin run and stands alone
			flush()
			tokens = append(tokens, string(r))
		case isAlnum(r):
			run.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			// Stripped entirely; does not close the open run
		}
	}
	flush()

	return dedupe(tokens)
}

// dedupe collapses duplicates while preserving first-occurrence order
func dedupe(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := tokens[:0]
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
