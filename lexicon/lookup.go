package lexicon

import (
	"github.com/az-ai-labs/g2p-en/internal/phonalg"
	"github.com/az-ai-labs/g2p-en/internal/stringutil"
	"github.com/az-ai-labs/g2p-en/tagger"
)

// lookup is the base dictionary lookup (spec §4.2.3): try word then its
// lowercase form; if empty, or the word is tagged NNP and the result
// carries no primary stress, fall back to letter-by-letter spelling via
// lookupNNP. Applies stress if supplied.
func (lex *Lexicon) lookup(word string, tag tagger.Tag, stress *float64) string {
	p, ok := lex.dict[word]
	if !ok {
		p, ok = lex.dict[stringutil.Lower(word)]
	}
	if !ok {
		p = ""
	}

	if p == "" || (tag == "NNP" && !phonalg.HasPrimary([]rune(p))) {
		if nnp := lex.lookupNNP(word); nnp != "" {
			p = nnp
		}
	}

	if stress != nil && p != "" {
		return phonalg.ApplyStress(p, *stress)
	}
	return p
}

// lookupNNP spells word letter-by-letter using single-letter dictionary
// entries (spec §4.2.3), e.g. "NASA" -> dict["N"]+dict["A"]+dict["S"]+dict["A"].
// Applies stress level 1.0 to the whole (which adds a secondary marker
// when the spelling carries no marker), then promotes the last secondary
// marker (if any) to primary.
func (lex *Lexicon) lookupNNP(word string) string {
	var letters []rune
	for _, r := range word {
		if stringutil.IsAlphaRune(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return ""
	}

	spelled := make([]byte, 0, len(letters)*2)
	for _, r := range letters {
		p, ok := lex.dict[string(r)]
		if !ok {
			return ""
		}
		spelled = append(spelled, p...)
	}

	stressed := phonalg.ApplyStress(string(spelled), 1.0)

	runes := []rune(stressed)
	lastSecondary := -1
	for i, r := range runes {
		if r == phonalg.SecondaryStress {
			lastSecondary = i
		}
	}
	if lastSecondary >= 0 {
		runes[lastSecondary] = phonalg.PrimaryStress
	}
	return string(runes)
}
