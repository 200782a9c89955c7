package tagger

import (
	"unicode/utf8"

	"github.com/az-ai-labs/g2p-en/internal/stringutil"
)

// Tag assigns a POS tag to each word in sentence via a modified Viterbi
// decode over the bigram HMM (spec §4.4). An empty sentence is a no-op.
// The tagger never fails: unknown words are handled by epsilon smoothing,
// never by returning an error.
func (t *Tagger) Tag(sentence []string) []Tag {
	n := len(sentence)
	if n == 0 {
		return nil
	}

	v := make([]map[Tag]float64, n)
	bp := make([]map[Tag]Tag, n)
	v[0] = make(map[Tag]float64, len(t.tags))

	for _, s := range t.tags {
		e := t.emit(s, sentence[0])
		if r, size := utf8.DecodeRuneInString(sentence[0]); size > 0 && stringutil.IsAlphaRune(r) {
			lowered := stringutil.LowerFirst(sentence[0])
			if e2 := t.emit(s, lowered); e2 > e {
				e = e2
			}
		}
		v[0][s] = t.start(s) * e
	}

	for i := 1; i < n; i++ {
		v[i] = make(map[Tag]float64, len(t.tags))
		bp[i] = make(map[Tag]Tag, len(t.tags))
		word := sentence[i]
		for _, s := range t.tags {
			emit := t.emit(s, word)
			var bestProb float64
			var bestPrev Tag
			first := true
			for _, sp := range t.tags {
				p := v[i-1][sp] * t.trans(sp, s) * emit
				if first || p > bestProb {
					bestProb = p
					bestPrev = sp
					first = false
				}
			}
			v[i][s] = bestProb
			bp[i][s] = bestPrev
		}
	}

	var best Tag
	var bestProb float64
	first := true
	for _, s := range t.tags {
		p := v[n-1][s]
		if first || p > bestProb {
			bestProb = p
			best = s
			first = false
		}
	}

	tags := make([]Tag, n)
	tags[n-1] = best
	for i := n - 1; i > 0; i-- {
		tags[i-1] = bp[i][tags[i]]
	}
	return tags
}
