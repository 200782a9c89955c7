// Package numtext converts numbers to their spoken English text, and
// verbalizes numeric spans found in running text ahead of tokenization
// (spec §4's pipeline runs number verbalization before the tokenizer, per
// original_source/phonemis/src/pipeline.cpp).
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Integer range is limited to ±10^18; Convert and ConvertOrdinal
//     return an empty string for larger magnitudes.
//   - ConvertFloat always reads fractional digits individually ("point
//     one four"); there is no separate fraction-word mode.
package numtext

// Convert returns the English cardinal text for n. Zero returns "zero".
// Negative numbers are prefixed with "minus". Numbers with absolute
// value exceeding 10^18 return an empty string.
func Convert(n int64) string {
	return convert(n)
}

// ConvertOrdinal returns the English ordinal text for n ("twenty-first",
// "hundredth"). Zero returns "zeroth" implicitly via the regular -th
// suffix rule. Negative ordinals prefix "minus" to the ordinal of the
// absolute value.
func ConvertOrdinal(n int64) string {
	return convertOrdinal(n)
}

// ConvertFloat converts a decimal number string to English text.
// Accepts dot or comma as decimal separator, and a leading sign.
// Input without a decimal separator is treated as a plain integer.
// Returns an empty string for invalid input.
func ConvertFloat(s string) string {
	return convertFloat(s)
}

// ConvertYear renders n the way a calendar year is conventionally read
// aloud in English (e.g. 1984 -> "nineteen eighty-four", 1905 ->
// "nineteen oh-five"), falling back to the plain cardinal form for years
// with no natural two-group reading (e.g. 2000, 1000).
func ConvertYear(n int64) string {
	return convertYear(n)
}
