package lexicon

import (
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/g2p-en/internal/phonalg"
	"github.com/az-ai-labs/g2p-en/internal/stringutil"
	"github.com/az-ai-labs/g2p-en/tagger"
)

func floatPtr(v float64) *float64 { return &v }

func isNNTag(tag tagger.Tag) bool {
	return strings.HasPrefix(string(tag), "NN")
}

// lookupSpecial resolves context-dependent special words (spec §4.2.1).
// Rules fire in order; the first match wins. Returns "" if nothing
// matches, letting the caller continue the general cascade.
func (lex *Lexicon) lookupSpecial(word string, tag tagger.Tag, vowelNext *bool) string {
	single := utf8.RuneCountInString(word) == 1

	if single && tag == "ADD" && (word == "." || word == "/") {
		target := "slash"
		if word == "." {
			target = "dot"
		}
		return lex.lookup(target, "", floatPtr(-0.5))
	}

	if single {
		r, _ := utf8.DecodeRuneInString(word)
		if name, ok := symbolWords[r]; ok {
			return lex.lookup(name, "", nil)
		}
	}

	if isDottedAcronym(word) {
		return lex.lookupNNP(word)
	}

	if word == "a" || word == "A" {
		if tag == "DT" {
			return "ɐ"
		}
		return string(phonalg.PrimaryStress) + "A"
	}

	lower := stringutil.Lower(word)

	if lower == "am" {
		if isNNTag(tag) {
			return lex.lookupNNP(word)
		}
		stressedForm := word != lower || vowelNext == nil
		if stressedForm {
			return lex.dict["am"]
		}
		return "ɐm"
	}

	if lower == "an" {
		if stringutil.IsAllUpper(word) && isNNTag(tag) {
			return lex.lookupNNP(word)
		}
		return "ɐn"
	}

	if word == "I" && tag == "PRP" {
		return string(phonalg.SecondaryStress) + "I"
	}

	if lower == "by" && tag.ParentTag() == "ADV" {
		return "b" + string(phonalg.PrimaryStress) + "I"
	}

	if lower == "to" && (tag == "TO" || tag == "IN") {
		switch {
		case vowelNext == nil:
			return lex.dict["to"]
		case *vowelNext:
			return "tʊ"
		default:
			return "tə"
		}
	}

	if lower == "in" && tag != "NNP" {
		prefix := ""
		if vowelNext == nil && tag != "IN" {
			prefix = string(phonalg.PrimaryStress)
		}
		return prefix + "ɪn"
	}

	if lower == "the" && tag == "DT" {
		if vowelNext != nil && *vowelNext {
			return "ði"
		}
		return "ðə"
	}

	if lower == "vs" || lower == "vs." {
		return lex.lookup("versus", "", nil)
	}

	if lower == "used" {
		return lex.dict["used"]
	}

	return ""
}

// isDottedAcronym reports whether word contains a '.', the non-dot
// residue is entirely alphabetic, and every dot-separated piece has
// length < 3 (e.g. "U.S.A.").
func isDottedAcronym(word string) bool {
	if !strings.Contains(word, ".") {
		return false
	}
	pieces := strings.Split(word, ".")
	for _, piece := range pieces {
		if piece == "" {
			continue
		}
		if len(piece) >= 3 {
			return false
		}
		if !stringutil.IsAlpha(piece) {
			return false
		}
	}
	return true
}
