package tokenize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWordsBasic(t *testing.T) {
	require.Equal(t, []string{"The", "cat", "sat"}, Words("The cat sat."))
}

func TestWordsKeepsApostropheAndHyphen(t *testing.T) {
	require.Equal(t, []string{"don't", "well-known"}, Words("don't well-known"))
}

func TestWordTokensReconstructsInput(t *testing.T) {
	s := "Hello, world! 123.45 done."
	toks := WordTokens(s)
	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Text
	}
	require.Equal(t, s, rebuilt)
}

func TestWordTokensExactStructure(t *testing.T) {
	got := WordTokens("Hi, cat.")
	want := []Token{
		{Text: "Hi", Start: 0, End: 2, Type: Word},
		{Text: ",", Start: 2, End: 3, Type: Punctuation},
		{Text: " ", Start: 3, End: 4, Type: Space},
		{Text: "cat", Start: 4, End: 7, Type: Word},
		{Text: ".", Start: 7, End: 8, Type: Punctuation},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WordTokens mismatch (-want +got):\n%s", diff)
	}
}

func TestSentencesSplitsOnTerminalPunctuation(t *testing.T) {
	// The break point sits right after the terminal dot; the following
	// sentence keeps its leading space.
	got := Sentences("This is one. This is two.")
	require.Equal(t, []string{"This is one.", " This is two."}, got)
}

func TestSentencesSuppressesAbbreviation(t *testing.T) {
	got := Sentences("Dr. Smith arrived. He left soon after.")
	require.Equal(t, []string{"Dr. Smith arrived.", " He left soon after."}, got)
}

func TestSentencesEmptyInput(t *testing.T) {
	require.Nil(t, Sentences(""))
}
