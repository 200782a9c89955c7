// Package phonalg provides the vowel/consonant codepoint sets and the
// stress-rewriting algebra shared by the lexicon and fallback phonemizer.
package phonalg

// PrimaryStress and SecondaryStress are the two stress marker codepoints
// that may be interleaved into a phoneme string immediately before a vowel.
const (
	PrimaryStress   = '\''
	SecondaryStress = ','
)

// vowels is the fixed set of codepoints treated as vowels for stress
// placement and syllable scoring: ASCII letters reused as phoneme symbols
// plus the IPA vowel subset.
var vowels = map[rune]bool{
	'A': true, 'I': true, 'O': true, 'Q': true, 'W': true, 'Y': true,
	'a': true, 'i': true, 'u': true,
	'æ': true, 'ɑ': true, 'ɒ': true, 'ɔ': true, 'ə': true,
	'ɛ': true, 'ɜ': true, 'ɪ': true, 'ʊ': true, 'ʌ': true, 'ᵻ': true,
}

// consonants is the fixed set of IPA consonant codepoints used by the
// fallback phonemizer to score syllable boundaries.
var consonants = map[rune]bool{
	'b': true, 'd': true, 'f': true, 'g': true, 'h': true, 'j': true,
	'k': true, 'l': true, 'm': true, 'n': true, 'p': true, 'r': true,
	's': true, 't': true, 'v': true, 'w': true, 'z': true,
	'ð': true, 'ŋ': true, 'ɡ': true, 'ɹ': true, 'ʃ': true, 'ʒ': true,
	'ʤ': true, 'ʧ': true, 'θ': true, 'ɾ': true, 'ɫ': true,
}

// usTapVowels is the US-tap set: vowel codepoints that license a flap
// allophone ɾ after t, immediately before the ɪd/ɪŋ suffixes.
var usTapVowels = map[rune]bool{
	'ə': true, 'ɜ': true, 'ɪ': true, 'ᵻ': true, 'ʌ': true,
}

// IsVowel reports whether r is a member of the fixed vowel set.
func IsVowel(r rune) bool {
	return vowels[r]
}

// IsConsonant reports whether r is a member of the fixed consonant set.
func IsConsonant(r rune) bool {
	return consonants[r]
}

// IsUSTapVowel reports whether r licenses the US flap allophone.
func IsUSTapVowel(r rune) bool {
	return usTapVowels[r]
}

// IsStressMarker reports whether r is either stress marker codepoint.
func IsStressMarker(r rune) bool {
	return r == PrimaryStress || r == SecondaryStress
}

// HasVowel reports whether p contains at least one vowel codepoint.
func HasVowel(p []rune) bool {
	for _, r := range p {
		if IsVowel(r) {
			return true
		}
	}
	return false
}

// HasPrimary reports whether p contains a primary stress marker.
func HasPrimary(p []rune) bool {
	for _, r := range p {
		if r == PrimaryStress {
			return true
		}
	}
	return false
}

// HasSecondary reports whether p contains a secondary stress marker.
func HasSecondary(p []rune) bool {
	for _, r := range p {
		if r == SecondaryStress {
			return true
		}
	}
	return false
}
