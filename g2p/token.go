package g2p

import "github.com/az-ai-labs/g2p-en/tagger"

// Token is a single orchestrator-level unit: a word/number/punctuation/
// symbol span plus the whitespace that trails it and its assigned tag.
type Token struct {
	Text       string
	Whitespace string
	Tag        tagger.Tag
}
