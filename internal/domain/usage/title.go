package usage

import (
	"strings"
	"unicode"
)

const (
	brailleFirst = '\u2800'
	brailleLast  = '\u28FF'
)

// NormalizeTitle strips volatile noise from a window title so that titles
// differing only by a spinner frame compare equal. It removes every rune in
// the Braille Patterns block, collapses runs of spaces into one and trims
// surrounding spaces and tabs. A nil title stays nil.
//
// NormalizeTitle is idempotent.
func NormalizeTitle(title *string) *string {
	if title == nil {
		return nil
	}

	var b strings.Builder
	b.Grow(len(*title))

	prevSpace := false
	for _, r := range *title {
		if r >= brailleFirst && r <= brailleLast {
			continue
		}
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}

	out := strings.TrimFunc(b.String(), isHorizontalSpace)
	return &out
}

// isHorizontalSpace matches tab and the Unicode space separators (Zs).
// Line breaks are not trimmed.
func isHorizontalSpace(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}

// SameTitle compares two optional titles; two nils are equal.
func SameTitle(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
