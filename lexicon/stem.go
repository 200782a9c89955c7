package lexicon

import (
	"strings"

	"github.com/az-ai-labs/g2p-en/internal/phonalg"
	"github.com/az-ai-labs/g2p-en/tagger"
)

// Stemmers are methods on the immutable *Lexicon. They call lookup and
// IsKnown; lookup never calls a stemmer, and IsKnown is non-recursive.

// stemS implements the plural/possessive stemmer (spec §4.2.2).
func (lex *Lexicon) stemS(word string, tag tagger.Tag, stress *float64) string {
	if len(word) < 3 || !strings.HasSuffix(word, "s") {
		return ""
	}

	var stem string
	switch {
	case !strings.HasSuffix(word, "ss") && lex.IsKnown(word[:len(word)-1]):
		stem = word[:len(word)-1]
	case (strings.HasSuffix(word, "'s") ||
		(len(word) > 4 && strings.HasSuffix(word, "es") && !strings.HasSuffix(word, "ies"))) &&
		lex.IsKnown(word[:len(word)-2]):
		stem = word[:len(word)-2]
	case len(word) > 4 && strings.HasSuffix(word, "ies") && lex.IsKnown(word[:len(word)-3]+"y"):
		stem = word[:len(word)-3] + "y"
	default:
		return ""
	}

	p := lex.lookup(stem, tag, stress)
	if p == "" {
		return ""
	}

	switch c := lastRune(p); {
	case c == 'p' || c == 't' || c == 'k' || c == 'f' || c == 'θ':
		return p + "s"
	case c == 's' || c == 'z' || c == 'ʃ' || c == 'ʒ' || c == 'ʧ' || c == 'ʤ':
		if lex.lang == EnGB {
			return p + "ɪz"
		}
		return p + "ᵻz"
	default:
		return p + "z"
	}
}

// stemEd implements the past-tense stemmer (spec §4.2.2).
func (lex *Lexicon) stemEd(word string, tag tagger.Tag, stress *float64) string {
	if len(word) < 4 || !strings.HasSuffix(word, "d") {
		return ""
	}

	var stem string
	switch {
	case !strings.HasSuffix(word, "dd") && lex.IsKnown(word[:len(word)-1]):
		stem = word[:len(word)-1]
	case len(word) > 4 && strings.HasSuffix(word, "ed") && !strings.HasSuffix(word, "eed") &&
		lex.IsKnown(word[:len(word)-2]):
		stem = word[:len(word)-2]
	default:
		return ""
	}

	p := lex.lookup(stem, tag, stress)
	if p == "" {
		return ""
	}

	c := lastRune(p)
	switch {
	case c == 'p' || c == 'k' || c == 'f' || c == 'θ' || c == 'ʃ' || c == 's' || c == 'ʧ':
		return p + "t"
	case c == 'd':
		if lex.lang == EnGB {
			return p + "ɪd"
		}
		return p + "ᵻd"
	case c != 't':
		return p + "d"
	case lex.lang == EnGB || runeLen(p) < 2:
		return p + "ɪd"
	case phonalg.IsUSTapVowel(secondToLastRune(p)):
		return trimLastRune(p) + "ɾᵻd"
	default:
		return p + "ᵻd"
	}
}

// stemIng implements the progressive stemmer (spec §4.2.2).
func (lex *Lexicon) stemIng(word string, tag tagger.Tag, stress *float64) string {
	if len(word) < 5 || !strings.HasSuffix(word, "ing") {
		return ""
	}

	var stem string
	switch {
	case len(word) > 5 && lex.IsKnown(word[:len(word)-3]):
		stem = word[:len(word)-3]
	case lex.IsKnown(word[:len(word)-3] + "e"):
		stem = word[:len(word)-3] + "e"
	case len(word) > 5 && hasDoubledIngConsonant(word) && lex.IsKnown(word[:len(word)-4]):
		stem = word[:len(word)-4]
	default:
		return ""
	}

	p := lex.lookup(stem, tag, stress)
	if p == "" {
		return ""
	}

	c := lastRune(p)
	if lex.lang == EnGB && (c == 'ə' || c == 'ː') {
		return p
	}
	if c == 't' && phonalg.IsUSTapVowel(secondToLastRune(p)) {
		return trimLastRune(p) + "ɾɪŋ"
	}
	return p + "ɪŋ"
}

// hasDoubledIngConsonant reports whether word (known to end in "ing")
// matches the pattern of a doubled consonant, or a "c"→"ck" insertion,
// immediately preceding the "ing" suffix: ([bcdgklmnprstvxz])\1ing$ or
// cking$.
func hasDoubledIngConsonant(word string) bool {
	beforeIng := word[:len(word)-3]
	if strings.HasSuffix(beforeIng, "ck") {
		return true
	}
	if len(beforeIng) < 2 {
		return false
	}
	last := beforeIng[len(beforeIng)-1]
	secondLast := beforeIng[len(beforeIng)-2]
	return last == secondLast && strings.ContainsRune("bcdgklmnprstvxz", rune(last))
}
