package phonalg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyStress(t *testing.T) {
	tests := []struct {
		name string
		p    string
		s    float64
		want string
	}{
		{"delete_all_below_negative_one", "'kæt", -2, "kæt"},
		{"downgrade_primary_at_zero", "'kæt", 0, ",kæt"},
		{"downgrade_primary_at_minus_one", "'kæt", -1, ",kæt"},
		{"prepend_secondary_no_markers", "kæt", 0, "k,æt"},
		{"prepend_primary_above_one", "kæt", 2, "k'æt"},
		{"upgrade_secondary_at_one", ",kæt", 1, "'kæt"},
		{"unchanged_no_vowel", "mm", 2, "mm"},
		{"unchanged_domain_gap", "'kæt", 0.75, "'kæt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyStress(tt.p, tt.s)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestApplyStressRoundTrip(t *testing.T) {
	// A vowel-bearing, stress-free phoneme string promoted to primary then
	// stripped to nothing must end with zero stress markers.
	p := "kæt"
	up := ApplyStress(p, 2.0)
	down := ApplyStress(up, -2.0)
	require.False(t, HasPrimary([]rune(down)))
	require.False(t, HasSecondary([]rune(down)))
}

func TestApplyStressPromotionIsSingular(t *testing.T) {
	p := "kæt"
	up := ApplyStress(ApplyStress(p, -2), 1)
	require.Equal(t, 1, countRunes(up, PrimaryStress))
}

func countRunes(s string, want rune) int {
	n := 0
	for _, r := range s {
		if r == want {
			n++
		}
	}
	return n
}

func TestRestressIsPermutation(t *testing.T) {
	p := ",əbaʊt"
	got := Restress(p)
	require.ElementsMatch(t, []rune(p), []rune(got))
}

func TestRestressMovesMarkerBeforeNextVowel(t *testing.T) {
	// marker at index 0 should move to sit immediately before the first vowel.
	got := Restress(",bæt")
	require.Equal(t, "b,æt", got)
}

func TestRestressKeepsMarkerWithNoFollowingVowel(t *testing.T) {
	got := Restress("bt,")
	require.Equal(t, "bt,", got)
}
