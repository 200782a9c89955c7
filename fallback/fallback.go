// Package fallback implements the dynamic-programming syllabification
// phonemizer used when the lexicon has no entry for a word (spec §4.3).
package fallback

import (
	"strings"

	"github.com/az-ai-labs/g2p-en/internal/phonalg"
	"github.com/az-ai-labs/g2p-en/internal/stringutil"
	"github.com/az-ai-labs/g2p-en/tagger"
)

// maxSyllableLength is the fixed implementation constant L bounding how
// many codepoints a candidate syllable may span (spec §4.3: "in practice
// 5-6").
const maxSyllableLength = 6

// vowelOnsetPenalty is the fixed additive DP cost discouraging syllable
// boundaries that place a vowel at the start of a non-initial syllable.
const vowelOnsetPenalty = 2

// inf is the DP sentinel cost for "no phonemization found yet",
// mirroring the original's INF = 1e5 (spec §4.3).
const inf = 1e5

// lexiconView is the minimal surface fallback needs from *lexicon.Lexicon;
// expressed as an interface so fallback does not depend on the concrete
// lexicon type (lexicon never imports fallback, so there is no import
// cycle either way), matching how the orchestrator wires both together.
type lexiconView interface {
	IsKnown(word string) bool
	Get(word string, tag tagger.Tag, baseStress *float64, vowelNext *bool) string
}

type cell struct {
	cost     float64
	phonemes string
}

// Syllabify produces the minimum-length phonemization of word by
// syllable-level DP over its lowercase form, using lex for syllable
// lookups. Returns "" if no syllabification is found.
func Syllabify(word string, lex lexiconView) string {
	w := []rune(stringutil.Lower(word))
	n := len(w)
	if n == 0 {
		return ""
	}

	dp := make([]cell, n)
	for i := range dp {
		dp[i] = cell{cost: inf}
	}

	for i := 0; i < n; i++ {
		maxD := i
		if maxD > maxSyllableLength-1 {
			maxD = maxSyllableLength - 1
		}
		for d := maxD; d >= 0; d-- {
			syl := string(w[i-d : i+1])

			if len(syl) > 1 && !hasVowelRune(syl) {
				continue
			}
			if !lex.IsKnown(syl) {
				continue
			}
			phs := lex.Get(syl, "", nil, nil)
			if phs == "" {
				continue
			}

			// Silent-e handling: an opaque, intentionally-unresolved
			// two-codepoint sentinel carried through verbatim (spec §9
			// open question) when a non-final syllable ends in
			// orthographic 'e' after a consonant phoneme.
			if i < n-1 && w[i] == 'e' && phonalg.IsConsonant(lastRune(phs)) {
				phs += "Éœ"
			}

			nonInitial := i > d
			if nonInitial && phonalg.HasPrimary([]rune(phs)) {
				phs = demoteFirstPrimary(phs)
			}

			cost := float64(len([]rune(phs)))
			if nonInitial && phonalg.IsVowel(w[i-d]) {
				cost += vowelOnsetPenalty
			}

			var totalCost float64
			var totalPhs string
			if nonInitial {
				prev := dp[i-d-1]
				totalCost = prev.cost + cost
				totalPhs = prev.phonemes + phs
			} else {
				totalCost = cost
				totalPhs = phs
			}

			if totalCost < dp[i].cost {
				dp[i] = cell{cost: totalCost, phonemes: totalPhs}
			}
		}
	}

	if dp[n-1].cost < inf {
		return dp[n-1].phonemes
	}
	return ""
}

// hasVowelRune reports whether the lowercase orthographic syllable s
// contains a vowel letter (a, e, i, o, u or y).
func hasVowelRune(s string) bool {
	for _, r := range s {
		if strings.ContainsRune("aeiouy", r) {
			return true
		}
	}
	return false
}

func lastRune(s string) rune {
	r := []rune(s)
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}

// demoteFirstPrimary replaces the first primary stress marker in p with
// a secondary marker (spec §4.3: non-initial syllables are demoted).
func demoteFirstPrimary(p string) string {
	r := []rune(p)
	for i, c := range r {
		if c == phonalg.PrimaryStress {
			r[i] = phonalg.SecondaryStress
			break
		}
	}
	return string(r)
}
