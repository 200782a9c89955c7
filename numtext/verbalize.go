package numtext

import (
	"regexp"
	"strconv"
	"strings"
)

// ordinalRe matches a digit-suffix ordinal like "1st", "22nd", "103rd".
var ordinalRe = regexp.MustCompile(`\b(\d+)(st|nd|rd|th)\b`)

// yearRe matches a bare four-digit span that looks like a calendar year
// (1000-2999), deliberately narrow to avoid mis-reading arbitrary
// four-digit quantities.
var yearRe = regexp.MustCompile(`\b([12]\d{3})\b`)

// decimalRe matches a signed integer or decimal number.
var decimalRe = regexp.MustCompile(`[-+]?\d+(?:[.,]\d+)?`)

// Verbalize replaces numeric spans in text with their spoken English
// form: ordinal suffixes first, then bare four-digit years, then any
// remaining integers/decimals. Non-numeric text is passed through
// unchanged.
func Verbalize(text string) string {
	text = ordinalRe.ReplaceAllStringFunc(text, func(m string) string {
		digits := ordinalRe.FindStringSubmatch(m)[1]
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return m
		}
		return ConvertOrdinal(n)
	})

	text = yearRe.ReplaceAllStringFunc(text, func(m string) string {
		n, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return m
		}
		return ConvertYear(n)
	})

	text = decimalRe.ReplaceAllStringFunc(text, func(m string) string {
		if strings.ContainsAny(m, ".,") {
			return ConvertFloat(m)
		}
		n, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return m
		}
		return Convert(n)
	})

	return text
}
