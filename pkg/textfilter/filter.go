package textfilter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxFieldLength is the largest size in bytes of a room name, clue id or suspect id.
const MaxFieldLength = 49

var folder = cases.Fold()

// Bound truncates s to at most MaxFieldLength bytes without splitting a rune.
// Every name-like field in the game passes through Bound at construction.
func Bound(s string) string {
	if len(s) <= MaxFieldLength {
		return s
	}
	cut := MaxFieldLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Line strips the line terminator from a line read from the terminal.
func Line(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// Fold returns the case-folded form of s with surrounding whitespace removed,
// suitable for case-insensitive comparison.
func Fold(s string) string {
	return folder.String(strings.TrimSpace(s))
}

// EqualFold reports whether a and b match after case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Title renders s in title case, e.g. for banner headings.
func Title(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}

// FirstRune returns the first non-blank rune of s, lowercased, or 0 if s is blank.
func FirstRune(s string) rune {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToLower(r)
}
