package numtext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertBasic(t *testing.T) {
	cases := map[int64]string{
		0:     "zero",
		7:     "seven",
		21:    "twenty-one",
		100:   "hundred",
		105:   "one hundred and five",
		999:   "nine hundred and ninety-nine",
		1000:  "one thousand",
		2021:  "two thousand and twenty-one",
		-5:    "minus five",
	}
	for n, want := range cases {
		require.Equal(t, want, Convert(n), "Convert(%d)", n)
	}
}

func TestConvertLargeMagnitude(t *testing.T) {
	require.Equal(t, "one million, two hundred", Convert(1_000_200))
}

func TestConvertOutOfRange(t *testing.T) {
	require.Equal(t, "", Convert(maxAbs+1))
}

func TestConvertOrdinal(t *testing.T) {
	require.Equal(t, "first", ConvertOrdinal(1))
	require.Equal(t, "twenty-first", ConvertOrdinal(21))
	require.Equal(t, "hundredth", ConvertOrdinal(100))
	require.Equal(t, "thirtieth", ConvertOrdinal(30))
	require.Equal(t, "twelfth", ConvertOrdinal(12))
}

func TestConvertFloat(t *testing.T) {
	require.Equal(t, "three point one four", ConvertFloat("3.14"))
	require.Equal(t, "minus zero point five", ConvertFloat("-0.5"))
	require.Equal(t, "", ConvertFloat(""))
}

func TestConvertYear(t *testing.T) {
	require.Equal(t, "nineteen eighty-four", ConvertYear(1984))
	require.Equal(t, "nineteen oh-five", ConvertYear(1905))
	require.Equal(t, "two thousand", ConvertYear(2000))
}

func TestVerbalizeMixedText(t *testing.T) {
	got := Verbalize("I was born in 1990 and finished 3rd in the race, 2 times.")
	require.Contains(t, got, "nineteen ninety")
	require.Contains(t, got, "third")
	require.Contains(t, got, "two")
}
