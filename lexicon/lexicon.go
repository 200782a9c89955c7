// Package lexicon implements the lexicon-driven phonemizer: a load-once,
// immutable word→phoneme dictionary with morphological stemming,
// proper-noun spelling, and contextual special-word resolution.
package lexicon

import (
	"encoding/json"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/az-ai-labs/g2p-en/internal/loaderr"
	"github.com/az-ai-labs/g2p-en/internal/stringutil"
)

const component = "lexicon"

// Language selects the English variant consulted by stemming and the
// fallback phonemizer.
type Language int

const (
	EnUS Language = iota
	EnGB
)

// symbolWords maps single-character symbols to their spoken-word lexicon
// keys (spec §4.2.1, confirmed against original_source/constants.h kSymbols).
var symbolWords = map[rune]string{
	'%': "percent",
	'&': "and",
	'+': "plus",
	'@': "at",
	'=': "equals",
}

// Lexicon is the immutable, case-expanded word→phoneme dictionary.
// Safe for concurrent use: nothing mutates state after Load returns
// (spec §5).
type Lexicon struct {
	dict map[string]string
	lang Language
	log  zerolog.Logger
}

// Load reads a lexicon JSON file: a flat object mapping surface form to
// phoneme string. A non-string value anywhere in the object is a fatal
// LoadError. Case-expansion (spec §3) is performed once here.
func Load(path string, lang Language) (*Lexicon, error) {
	return LoadWithLogger(path, lang, log.Logger)
}

// LoadWithLogger is Load with an explicit logger for load diagnostics.
func LoadWithLogger(path string, lang Language, logger zerolog.Logger) (*Lexicon, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loaderr.New(component, path, errors.Wrap(err, "read file"))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, loaderr.New(component, path, errors.Wrap(err, "parse json"))
	}

	dict := make(map[string]string, len(raw)*2)
	for word, v := range raw {
		var phonemes string
		if err := json.Unmarshal(v, &phonemes); err != nil {
			return nil, loaderr.New(component, path,
				errors.Wrapf(err, "entry %q: value is not a string", word))
		}
		dict[word] = phonemes
	}

	expandCase(dict)

	lex := &Lexicon{dict: dict, lang: lang, log: logger}
	logger.Debug().
		Str("path", path).
		Int("entries", len(dict)).
		Dur("elapsed", time.Since(start)).
		Msg("lexicon: loaded dictionary")

	return lex, nil
}

// expandCase performs the load-time case-expansion invariant (spec §3):
// for every all-lowercase key of length >= 2, insert a capitalized-first-
// letter variant; for every capitalized key of length >= 2, insert the
// fully-lowered variant. Both map to the same phonemes.
func expandCase(dict map[string]string) {
	type pair struct{ key, phonemes string }
	var additions []pair

	for word, phonemes := range dict {
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		lower := stringutil.Lower(word)
		capitalized := stringutil.UpperFirst(lower)

		if word == lower && word != capitalized {
			if _, exists := dict[capitalized]; !exists {
				additions = append(additions, pair{capitalized, phonemes})
			}
		} else if word == capitalized && word != lower {
			if _, exists := dict[lower]; !exists {
				additions = append(additions, pair{lower, phonemes})
			}
		}
	}

	for _, a := range additions {
		dict[a.key] = a.phonemes
	}
}

// IsKnown reports whether word (or its lowercase form) is present in the
// dictionary, or word is a single character that is alphabetic or a
// member of the symbol set {%, &, +, @, =} (spec §4.2).
func (lex *Lexicon) IsKnown(word string) bool {
	if _, ok := lex.dict[word]; ok {
		return true
	}
	if _, ok := lex.dict[stringutil.Lower(word)]; ok {
		return true
	}
	if utf8.RuneCountInString(word) == 1 {
		r, _ := utf8.DecodeRuneInString(word)
		if stringutil.IsAlphaRune(r) {
			return true
		}
		if _, ok := symbolWords[r]; ok {
			return true
		}
	}
	return false
}
