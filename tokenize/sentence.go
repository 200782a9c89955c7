package tokenize

import (
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/g2p-en/internal/stringutil"
)

// abbreviations maps common English abbreviations (lowercase, trailing
// dot) to true, suppressing false sentence breaks after them.
var abbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true,
	"sr.": true, "jr.": true, "st.": true, "mt.": true, "mx.": true,
	"vs.": true, "etc.": true, "e.g.": true, "i.e.": true,
	"jan.": true, "feb.": true, "mar.": true, "apr.": true, "jun.": true,
	"jul.": true, "aug.": true, "sep.": true, "sept.": true, "oct.": true,
	"nov.": true, "dec.": true,
	"inc.": true, "ltd.": true, "co.": true, "corp.": true,
	"no.": true, "vol.": true, "ch.": true, "fig.": true, "al.": true,
	"u.s.": true, "u.s.a.": true, "u.k.": true,
}

// Sentences splits text into sentence strings. Boundaries are terminal
// punctuation (. ? !) followed by whitespace and an uppercase letter,
// or a blank line, with a built-in abbreviation list suppressing false
// breaks.
func Sentences(s string) []string {
	if s == "" {
		return nil
	}
	toks := sentenceTokens(s)
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func sentenceTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/60+1)
	sentStart := 0

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if r == '\n' && i+1 < len(s) && s[i+1] == '\n' {
			j := i
			for j < len(s) && s[j] == '\n' {
				j++
			}
			tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j})
			sentStart = j
			i = j
			continue
		}

		if r == '.' || r == '?' || r == '!' {
			if r == '.' && i+2 < len(s) && s[i+1] == '.' && s[i+2] == '.' {
				j := i
				for j < len(s) && s[j] == '.' {
					j++
				}
				if followedByWhitespaceUppercase(s, j) {
					tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j})
					sentStart = j
				}
				i = j
				continue
			}

			if r == '.' && isAbbreviation(s, i) {
				i += size
				continue
			}

			j := i + size
			for j < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[j:])
				if nr == '.' || nr == '?' || nr == '!' {
					j += ns
				} else {
					break
				}
			}

			if followedByWhitespaceUppercase(s, j) {
				tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j})
				sentStart = j
			}
			i = j
			continue
		}

		if r == '…' {
			j := i + size
			if followedByWhitespaceUppercase(s, j) {
				tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j})
				sentStart = j
			}
			i = j
			continue
		}

		i += size
	}

	if sentStart < len(s) {
		tokens = append(tokens, Token{Text: s[sentStart:], Start: sentStart, End: len(s)})
	}

	return tokens
}

func followedByWhitespaceUppercase(s string, pos int) bool {
	i := pos
	foundSpace := false
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			foundSpace = true
			i += size
		} else {
			return foundSpace && unicode.IsUpper(r)
		}
	}
	return false
}

// isAbbreviation reports whether the dot at byte offset dotPos in s
// belongs to a known abbreviation rather than ending a sentence.
func isAbbreviation(s string, dotPos int) bool {
	word, wordStart := wordBefore(s, dotPos)
	if word == "" {
		return false
	}

	lower := stringutil.Lower(word)
	candidate := lower + "."

	if !abbreviations[candidate] {
		return false
	}

	afterDot := dotPos + 1
	return greedyAbbreviation(s, candidate, afterDot)
}

func greedyAbbreviation(s, prefix string, pos int) bool {
	if pos >= len(s) {
		return true
	}

	j := pos
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.IsLetter(r) {
			j += size
		} else {
			break
		}
	}

	if j == pos || j >= len(s) || s[j] != '.' {
		return true
	}

	nextWord := stringutil.Lower(s[pos:j])
	extended := prefix + nextWord + "."

	if abbreviations[extended] {
		return greedyAbbreviation(s, extended, j+1)
	}

	return true
}

func wordBefore(s string, pos int) (string, int) {
	i := pos
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if r == '.' {
			i -= size
		} else {
			break
		}
	}

	end := i
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsLetter(r) {
			i -= size
		} else {
			break
		}
	}

	if i == end {
		return "", pos
	}

	return s[i:end], i
}
