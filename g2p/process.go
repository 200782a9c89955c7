package g2p

import (
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/g2p-en/fallback"
	"github.com/az-ai-labs/g2p-en/internal/phonalg"
	"github.com/az-ai-labs/g2p-en/internal/stringutil"
	"github.com/az-ai-labs/g2p-en/tagger"
)

// unknownTag is assigned to every token when no tagger was configured
// (spec §6).
const unknownTag tagger.Tag = "XX"

// Process drives text through verbalize_numbers -> split_sentences ->
// (tokenize -> tag -> phonemize)* -> concatenate (spec §4.5).
// Empty input returns "" (spec §7 EmptyInput).
func (e *Engine) Process(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	verbalized := e.verbalizerOrDefault().Verbalize(text)

	var out strings.Builder
	for _, sentence := range e.splitterOrDefault().Sentences(verbalized) {
		out.WriteString(e.processSentence(sentence))
	}
	return out.String(), nil
}

func (e *Engine) verbalizerOrDefault() Verbalizer {
	if e.verbalizer != nil {
		return e.verbalizer
	}
	return defaultVerbalizer{}
}

func (e *Engine) splitterOrDefault() SentenceSplitter {
	if e.splitter != nil {
		return e.splitter
	}
	return defaultSentenceSplitter{}
}

func (e *Engine) tokenizerOrDefault() Tokenizer {
	if e.tokenizer != nil {
		return e.tokenizer
	}
	return defaultTokenizer{}
}

func (e *Engine) processSentence(sentence string) string {
	tokens := tokensWithWhitespace(e.tokenizerOrDefault().Tokenize(sentence))
	if len(tokens) == 0 {
		return ""
	}

	// The tagger only ever sees real word text; a leading zero-width
	// placeholder token (see tokensWithWhitespace) is skipped so it
	// cannot reach the tagger as an empty "word".
	taggableIdx := make([]int, 0, len(tokens))
	words := make([]string, 0, len(tokens))
	for i, t := range tokens {
		if t.Text == "" {
			continue
		}
		taggableIdx = append(taggableIdx, i)
		words = append(words, t.Text)
	}

	var tags []tagger.Tag
	if e.tg != nil {
		tags = e.tg.Tag(words)
	}
	for i := range tokens {
		tokens[i].Tag = unknownTag
	}
	for j, idx := range taggableIdx {
		if tags != nil && j < len(tags) {
			tokens[idx].Tag = tags[j]
		}
	}

	var sb strings.Builder
	var vowelNext *bool
	for i, t := range tokens {
		isLast := i == len(tokens)-1
		phonemes := e.phonemize(t.Text, t.Tag, vowelNext)
		sb.WriteString(phonemes)

		if phonemes == "" && utf8.RuneCountInString(t.Text) == 1 {
			r, _ := utf8.DecodeRuneInString(t.Text)
			if isElidedPunct(r, t.Whitespace, isLast) {
				// elided: no whitespace follows and this is not the
				// final token, so the bare punctuation mark is dropped.
			} else if isASCIIPunct(r) {
				sb.WriteRune(r)
			}
		}

		vowelNext = nextVowelNext(vowelNext, phonemes)
		sb.WriteString(t.Whitespace)
	}
	return sb.String()
}

// phonemize resolves a single token's phonemes: the lexicon cascade
// first, then the DP fallback for entirely-alphabetic words the lexicon
// could not resolve (spec §4.3).
func (e *Engine) phonemize(word string, tag tagger.Tag, vowelNext *bool) string {
	if word == "" {
		return ""
	}
	p := e.lex.Get(word, tag, nil, vowelNext)
	if p != "" {
		return p
	}
	if stringutil.IsAlpha(word) {
		return fallback.Syllabify(word, e.lex)
	}
	return ""
}

// isElidedPunct implements the special rule: a dot or hyphen with no
// trailing whitespace and not the last token is elided rather than
// copied through raw (spec §4.5).
func isElidedPunct(r rune, whitespace string, isLast bool) bool {
	return (r == '.' || r == '-') && whitespace == "" && !isLast
}

func isASCIIPunct(r rune) bool {
	return r < utf8.RuneSelf && (r >= '!' && r <= '/' ||
		r >= ':' && r <= '@' ||
		r >= '[' && r <= '`' ||
		r >= '{' && r <= '~')
}

// isDecisivePunct is the ASCII punctuation set consulted by the
// vowel_next scan — ASCII punctuation minus the two stress-marker
// codepoints (U+0027 apostrophe, U+002C comma), which carry a stress
// meaning inside phoneme output rather than a clause-punctuation one
// (DESIGN.md Open Question decision #7).
func isDecisivePunct(r rune) bool {
	return isASCIIPunct(r) && !phonalg.IsStressMarker(r)
}

// nextVowelNext scans phonemes left-to-right for the first decisive
// codepoint — ASCII punctuation (resets to unset), a vowel (true), or a
// consonant (false) — and returns the updated vowel_next state. If no
// decisive codepoint is found, the previous state is kept unchanged
// (spec §4.5).
func nextVowelNext(vowelNext *bool, phonemes string) *bool {
	for _, r := range phonemes {
		switch {
		case isDecisivePunct(r):
			return nil
		case phonalg.IsVowel(r):
			v := true
			return &v
		case phonalg.IsConsonant(r):
			v := false
			return &v
		}
	}
	return vowelNext
}

// tokensWithWhitespace merges a Tokenizer's raw output so each
// non-space token owns the whitespace that trails it, matching the
// orchestrator's expected collaborator contract (spec §6).
func tokensWithWhitespace(raw []RawToken) []Token {
	tokens := make([]Token, 0, len(raw))
	for _, t := range raw {
		if t.IsSpace {
			if len(tokens) == 0 {
				// Leading whitespace with nothing to attach to yet: keep
				// it as a zero-width token so it still round-trips.
				tokens = append(tokens, Token{})
			}
			tokens[len(tokens)-1].Whitespace += t.Text
			continue
		}
		tokens = append(tokens, Token{Text: t.Text})
	}
	return tokens
}
