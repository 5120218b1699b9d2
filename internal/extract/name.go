// Package extract pulls payer names out of free-text bank ledger memos.
package extract

import "strings"

// Precomposed Hangul syllable block.
const (
	hangulFirst = '가'
	hangulLast  = '힣'
)

// IsNameRune reports whether r can appear in an extracted name.
func IsNameRune(r rune) bool {
	return r >= hangulFirst && r <= hangulLast
}

// Name keeps only precomposed Hangul syllables from raw, in order. Everything
// else, including conjoining jamo and invalid UTF-8, is dropped; nothing is
// normalised, so every output rune appears in raw.
func Name(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if IsNameRune(r) {
			return r
		}
		return -1
	}, raw)
}
