package g2p

import (
	"github.com/az-ai-labs/g2p-en/numtext"
	"github.com/az-ai-labs/g2p-en/tokenize"
)

// Verbalizer rewrites numeric spans in running text into their spoken
// word form ahead of tokenization (spec §6: "verbalize_numbers").
type Verbalizer interface {
	Verbalize(text string) string
}

// SentenceSplitter divides text into sentence-sized spans (spec §6:
// "split_sentences"). Concatenating every returned sentence must
// reconstruct the input exactly.
type SentenceSplitter interface {
	Sentences(text string) []string
}

// Tokenizer splits a single sentence into raw spans: words/numbers to
// phonemize and the whitespace/punctuation between them (spec §6:
// "tokenize"). Concatenating every returned RawToken's Text must
// reconstruct the sentence exactly.
type Tokenizer interface {
	Tokenize(sentence string) []RawToken
}

// RawToken is the Tokenizer's unit of output: a span of text and
// whether it is whitespace.
type RawToken struct {
	Text    string
	IsSpace bool
}

// defaultVerbalizer, defaultSentenceSplitter, and defaultTokenizer
// adapt the supplemented `numtext`/`tokenize` packages (§12) to the
// Orchestrator's own collaborator interfaces, so the orchestrator
// never depends on those packages' concrete types — only a caller's
// choice of default wiring does (spec §6: "process(text) remains
// usable with caller-supplied collaborators").
type defaultVerbalizer struct{}

func (defaultVerbalizer) Verbalize(text string) string { return numtext.Verbalize(text) }

type defaultSentenceSplitter struct{}

func (defaultSentenceSplitter) Sentences(text string) []string { return tokenize.Sentences(text) }

type defaultTokenizer struct{}

func (defaultTokenizer) Tokenize(sentence string) []RawToken {
	raw := tokenize.WordTokens(sentence)
	out := make([]RawToken, 0, len(raw))
	for _, t := range raw {
		out = append(out, RawToken{Text: t.Text, IsSpace: t.Type == tokenize.Space})
	}
	return out
}
