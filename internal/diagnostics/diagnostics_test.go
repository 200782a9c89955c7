package diagnostics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/g2p-en/lexicon"
)

const fixtureDict = `{
  "cat": "kæt",
  "the": "ðə",
  "x": "ɛks",
  "il": "'ɪl",
  "o": "'oʊ",
  "phone": "f'oʊn"
}`

func newFixtureLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lex.json")
	require.NoError(t, os.WriteFile(path, []byte(fixtureDict), 0o644))
	lex, err := lexicon.Load(path, lexicon.EnUS)
	require.NoError(t, err)
	return lex
}

func TestCoverageEmptyCorpus(t *testing.T) {
	lex := newFixtureLexicon(t)
	report := Coverage(nil, lex, nil, false)
	require.Equal(t, 0, report.Total)
}

func TestCoverageClassifiesLexiconFallbackUnresolved(t *testing.T) {
	lex := newFixtureLexicon(t)
	// "cat" is a lexicon hit, "xilophone" resolves via the DP fallback
	// (all-alphabetic, no lexicon entry), "123" is neither (not alphabetic).
	report := Coverage([]string{"cat", "xilophone", "123"}, lex, nil, true)

	require.Equal(t, 3, report.Total)
	require.Equal(t, 1, report.LexiconHits)
	require.Equal(t, 1, report.Unresolved)
	require.Len(t, report.Words, 3)
	require.Equal(t, LexiconHit, report.Words[0].Outcome)
	require.Equal(t, Unresolved, report.Words[2].Outcome)
}

func TestCoverageOmitsWordsWhenNotRequested(t *testing.T) {
	lex := newFixtureLexicon(t)
	report := Coverage([]string{"cat"}, lex, nil, false)
	require.Nil(t, report.Words)
}

func TestCoverageUnknownTagRateWithoutTagger(t *testing.T) {
	lex := newFixtureLexicon(t)
	report := Coverage([]string{"cat", "the"}, lex, nil, false)
	require.Equal(t, 1.0, report.UnknownTagRate)
}

func TestOutcomeJSONRoundTrip(t *testing.T) {
	data, err := LexiconHit.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `"lexicon_hit"`, string(data))
}
