// Package diagnostics reports lexicon/tagger coverage statistics over a
// corpus of words (SPEC_FULL.md §13), adapted from the teacher's
// `validate` package: a quality-Report shape (score + categorized
// issue counts) repurposed from Azerbaijani spelling validation to
// English G2P coverage.
package diagnostics

import (
	"encoding/json"
	"fmt"

	"github.com/az-ai-labs/g2p-en/fallback"
	"github.com/az-ai-labs/g2p-en/internal/stringutil"
	"github.com/az-ai-labs/g2p-en/lexicon"
	"github.com/az-ai-labs/g2p-en/tagger"
)

// Outcome classifies how a single word was resolved.
type Outcome int

const (
	LexiconHit Outcome = iota // resolved by the lexicon cascade
	FallbackHit               // resolved by the DP syllabifier
	Unresolved                // neither produced phonemes
)

var outcomeNames = [...]string{
	LexiconHit: "lexicon_hit",
	FallbackHit: "fallback_hit",
	Unresolved:  "unresolved",
}

// String returns the outcome's name.
func (o Outcome) String() string {
	if int(o) >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalJSON encodes the outcome as a JSON string.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "lexicon_hit") into an Outcome.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range outcomeNames {
		if name == s {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("diagnostics: unknown outcome: %q", s)
}

// WordResult is a single corpus word's resolution outcome.
type WordResult struct {
	Word    string  `json:"word"`
	Outcome Outcome `json:"outcome"`
}

// Report summarizes coverage over a corpus: per-outcome counts and rates
// as fractions of Total (0 to 1), mirroring the teacher's Report.Score
// shape but scored as separate rates instead of a single quality number — coverage
// has no natural single "good/bad" axis the way spelling validation
// does.
type Report struct {
	Total           int          `json:"total"`
	LexiconHits     int          `json:"lexicon_hits"`
	FallbackHits    int          `json:"fallback_hits"`
	Unresolved      int          `json:"unresolved"`
	LexiconHitRate  float64      `json:"lexicon_hit_rate"`
	FallbackRate    float64      `json:"fallback_rate"`
	UnresolvedRate  float64      `json:"unresolved_rate"`
	UnknownTagRate  float64      `json:"unknown_tag_rate"`
	Words           []WordResult `json:"words,omitempty"`
}

const unknownTag tagger.Tag = "XX"

// Coverage runs every word in corpus through the lexicon and fallback
// syllabifier (and, if tg is non-nil, the tagger) and tallies
// resolution outcomes. Passing includeWords=true populates Report.Words
// with the per-word breakdown; leave it false for large corpora to
// keep the report small.
func Coverage(corpus []string, lex *lexicon.Lexicon, tg *tagger.Tagger, includeWords bool) Report {
	var report Report
	if len(corpus) == 0 {
		return report
	}

	var tags []tagger.Tag
	if tg != nil {
		tags = tg.Tag(corpus)
	}

	var unknownTagCount int
	for i, word := range corpus {
		tag := unknownTag
		if tags != nil && i < len(tags) {
			tag = tags[i]
		}
		if tag == unknownTag {
			unknownTagCount++
		}

		outcome := classify(word, tag, lex)
		report.Total++
		switch outcome {
		case LexiconHit:
			report.LexiconHits++
		case FallbackHit:
			report.FallbackHits++
		case Unresolved:
			report.Unresolved++
		}
		if includeWords {
			report.Words = append(report.Words, WordResult{Word: word, Outcome: outcome})
		}
	}

	if report.Total > 0 {
		n := float64(report.Total)
		report.LexiconHitRate = float64(report.LexiconHits) / n
		report.FallbackRate = float64(report.FallbackHits) / n
		report.UnresolvedRate = float64(report.Unresolved) / n
		report.UnknownTagRate = float64(unknownTagCount) / n
	}
	return report
}

// classify resolves word exactly as the g2p orchestrator's phonemize
// step would (lexicon cascade, then DP fallback for alphabetic words),
// without threading vowel_next/stress state — coverage only cares
// whether some non-empty phoneme string was produced, not its content.
func classify(word string, tag tagger.Tag, lex *lexicon.Lexicon) Outcome {
	if lex.Get(word, tag, nil, nil) != "" {
		return LexiconHit
	}
	if stringutil.IsAlpha(word) && fallback.Syllabify(word, lex) != "" {
		return FallbackHit
	}
	return Unresolved
}
