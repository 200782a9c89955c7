package tagger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureHMM = `{
  "start_prob": {"PRP": 0.5, "VBP": 0.3, ".": 0.2},
  "emission": {
    "PRP": {"I": 0.9},
    "VBP": {"love": 0.8},
    ".": {"!": 0.9}
  },
  "transition": {
    "PRP": {"VBP": 0.7},
    "VBP": {"PRP": 0.1, ".": 0.2},
    ".": {}
  }
}`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hmm.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeFixture(t, fixtureHMM)
	tg, err := Load(path)
	require.NoError(t, err)
	require.ElementsMatch(t, []Tag{"PRP", "VBP", "."}, tg.Tags())
}

func TestLoadMissingField(t *testing.T) {
	path := writeFixture(t, `{"start_prob": {"NN": 1.0}, "emission": {}}`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeFixture(t, `{not json`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestTagEmptySentence(t *testing.T) {
	tg, err := Load(writeFixture(t, fixtureHMM))
	require.NoError(t, err)
	require.Nil(t, tg.Tag(nil))
	require.Nil(t, tg.Tag([]string{}))
}

func TestTagSimpleSentence(t *testing.T) {
	tg, err := Load(writeFixture(t, fixtureHMM))
	require.NoError(t, err)
	tags := tg.Tag([]string{"I", "love", "it", "!"})
	require.Len(t, tags, 4)
	require.Equal(t, Tag("PRP"), tags[0])
	require.Equal(t, Tag("VBP"), tags[1])
}

func TestParentTag(t *testing.T) {
	tests := []struct {
		tag  Tag
		want Tag
	}{
		{"VBD", "VERB"}, {"VERB", "VERB"},
		{"NNP", "NOUN"}, {"NOUN", "NOUN"},
		{"RB", "ADV"}, {"ADVP", "ADV"},
		{"JJ", "ADJ"}, {"ADJS", "ADJ"},
		{"DT", "DT"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.tag.ParentTag(), tt.tag)
	}
}
