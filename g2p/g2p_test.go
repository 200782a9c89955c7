package g2p

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/g2p-en/lexicon"
)

const fixtureDict = `{
  "the": "ðə",
  "cat": "kæt",
  "sat": "s'æt",
  "on": "'ɑn",
  "mat": "m'æt"
}`

func newFixtureEngine(t *testing.T) *Engine {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lex.json")
	require.NoError(t, os.WriteFile(path, []byte(fixtureDict), 0o644))
	lex, err := lexicon.Load(path, lexicon.EnUS)
	require.NoError(t, err)
	return &Engine{lex: lex}
}

func TestProcessEmptyInput(t *testing.T) {
	e := newFixtureEngine(t)
	got, err := e.Process("")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestProcessSimpleSentence(t *testing.T) {
	e := newFixtureEngine(t)
	got, err := e.Process("The cat sat on the mat.")
	require.NoError(t, err)
	require.Contains(t, got, "kæt")
	require.Contains(t, got, "m'æt")
}

func TestProcessPreservesWhitespace(t *testing.T) {
	e := newFixtureEngine(t)
	got, err := e.Process("cat  cat")
	require.NoError(t, err)
	require.Equal(t, "kæt  kæt", got)
}

func TestNewRequiresLexiconPath(t *testing.T) {
	_, err := New(context.Background(), Config{})
	require.Error(t, err)
}

func TestNewLoadsLexiconOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.json")
	require.NoError(t, os.WriteFile(path, []byte(fixtureDict), 0o644))

	e, err := New(context.Background(), Config{LexiconPath: path, Language: lexicon.EnUS})
	require.NoError(t, err)
	require.Nil(t, e.tg)

	got, err := e.Process("cat")
	require.NoError(t, err)
	require.Equal(t, "kæt", got)
}
