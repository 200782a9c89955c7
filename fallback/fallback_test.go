package fallback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/g2p-en/lexicon"
)

const fixtureDict = `{
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

func TestSyllabifyEmptyWord(t *testing.T) {
	lex := newFixtureLexicon(t)
	require.Equal(t, "", Syllabify("", lex))
}

func TestSyllabifyUnknownSyllablesReturnsEmpty(t *testing.T) {
	lex := newFixtureLexicon(t)
	require.Equal(t, "", Syllabify("zzqqxx", lex))
}

func TestSyllabifyMultiSyllableWord(t *testing.T) {
	lex := newFixtureLexicon(t)
	// Only segmentation covering the whole word from known syllables:
	// x + il + o + phone. Every non-initial syllable's primary marker is
	// demoted to secondary, so "phone" contributes "f,oʊn", not "f'oʊn".
	got := Syllabify("xilophone", lex)
	require.Equal(t, "ɛks,ɪl,oʊf,oʊn", got)
}
