package lexicon

import "unicode/utf8"

// lastRune returns the final rune of s, or 0 if s is empty.
func lastRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// secondToLastRune returns the rune immediately preceding the final rune
// of s, or 0 if s has fewer than two runes.
func secondToLastRune(s string) rune {
	r, size := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError && size == 0 {
		return 0
	}
	rest := s[:len(s)-size]
	if rest == "" {
		return 0
	}
	r2, _ := utf8.DecodeLastRuneInString(rest)
	return r2
}

// trimLastRune returns s with its final rune removed.
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// runeLen returns the number of runes in s.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
