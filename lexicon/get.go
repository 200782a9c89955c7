package lexicon

import (
	"unicode/utf8"

	"github.com/az-ai-labs/g2p-en/internal/phonalg"
	"github.com/az-ai-labs/g2p-en/internal/stringutil"
	"github.com/az-ai-labs/g2p-en/tagger"
)

// Get resolves the phonemization of word (spec §4.2 get). baseStress and
// vowelNext are optional (nil means "unset"/"unknown").
func (lex *Lexicon) Get(word string, tag tagger.Tag, baseStress *float64, vowelNext *bool) string {
	lower := stringutil.Lower(word)
	upper := stringutil.Upper(word)

	var caseStress *float64
	switch {
	case word == lower:
		caseStress = nil
	case word == upper:
		caseStress = floatPtr(2.0)
	default:
		caseStress = floatPtr(0.5)
	}

	p := lex.getWord(word, tag, caseStress, vowelNext)
	if p != "" && baseStress != nil {
		return phonalg.ApplyStress(p, *baseStress)
	}
	return p
}

// getWord is the lookup cascade (spec §4.2): first nonempty result wins.
func (lex *Lexicon) getWord(word string, tag tagger.Tag, stress *float64, vowelNext *bool) string {
	if p := lex.lookupSpecial(word, tag, vowelNext); p != "" {
		return p
	}

	word = lex.normalizeCase(word, tag)

	if lex.IsKnown(word) {
		return lex.lookup(word, tag, stress)
	}

	switch {
	case len(word) >= 2 && word[len(word)-2:] == "s'":
		candidate := word[:len(word)-2] + "'s"
		if lex.IsKnown(candidate) {
			return lex.lookup(candidate, tag, stress)
		}
	case len(word) >= 1 && word[len(word)-1] == '\'':
		candidate := word[:len(word)-1]
		if lex.IsKnown(candidate) {
			return lex.lookup(candidate, tag, stress)
		}
	}

	if p := lex.stemS(word, tag, stress); p != "" {
		return p
	}
	if p := lex.stemEd(word, tag, stress); p != "" {
		return p
	}
	if p := lex.stemIng(word, tag, maxStress(stress, 0.5)); p != "" {
		return p
	}

	// Last resort: a final attempt through the general lookup primitive,
	// which itself tries the lowercase form and (for NNP-tagged words
	// with no dictionary entry) falls back to letter-by-letter spelling.
	// This is what lets an unknown proper noun like "NASA" resolve via
	// lookupNNP even though is_known("NASA") is false — see DESIGN.md.
	return lex.lookup(word, tag, stress)
}

// normalizeCase implements the case-normalization heuristic (spec
// §4.2 step 2): substitute word for its lowercase form under a narrow
// set of conditions designed to catch sentence-initial capitalization
// and shouting without disturbing genuine proper nouns.
func (lex *Lexicon) normalizeCase(word string, tag tagger.Tag) string {
	if utf8.RuneCountInString(word) <= 1 {
		return word
	}
	if !stringutil.IsLettersAndApostrophes(word) {
		return word
	}

	lower := stringutil.Lower(word)
	if word == lower {
		return word
	}
	if tag == "NNP" && len([]rune(word)) <= 7 {
		return word
	}
	if _, ok := lex.dict[word]; ok {
		return word
	}

	rest := word[1:]
	if !(stringutil.IsAllUpper(word) || rest == stringutil.Lower(rest)) {
		return word
	}

	if _, ok := lex.dict[lower]; ok {
		return lower
	}
	if lex.stemS(lower, tag, nil) != "" || lex.stemEd(lower, tag, nil) != "" || lex.stemIng(lower, tag, nil) != "" {
		return lower
	}
	return word
}

// maxStress returns the larger of stress and floor, treating a nil
// stress as "unset" (so the result is floor).
func maxStress(stress *float64, floor float64) *float64 {
	if stress == nil {
		return floatPtr(floor)
	}
	if *stress > floor {
		return stress
	}
	return floatPtr(floor)
}
