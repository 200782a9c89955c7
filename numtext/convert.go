// Unexported conversion functions for English number-to-text conversion,
// ported from original_source/phonemis/src/num2word.cpp's
// to_cardinal_int/to_cardinal_float/to_ordinal/to_year.
package numtext

import (
	"strconv"
	"strings"
)

// convert converts n to English cardinal text. Returns "" if abs(n)
// exceeds maxAbs.
func convert(n int64) string {
	if n > maxAbs || n < -maxAbs {
		return ""
	}
	if n < 0 {
		return wordNegative + " " + convert(-n)
	}
	if word, ok := cardinals[n]; ok {
		return word
	}
	if n < 100 {
		t := (n / 10) * 10
		u := n % 10
		return cardinals[t] + "-" + cardinals[u]
	}
	if n < 1000 {
		h := n / 100
		rest := n % 100
		res := cardinals[h] + " " + wordHundred
		if rest > 0 {
			res += " " + wordAnd + " " + convert(rest)
		}
		return res
	}
	for _, mag := range largeCardinals {
		if n >= mag.value {
			high := n / mag.value
			low := n % mag.value
			res := convert(high) + " " + mag.word
			if low > 0 {
				sep := ", "
				if low < 100 {
					sep = " " + wordAnd + " "
				}
				res += sep + convert(low)
			}
			return res
		}
	}
	return strconv.FormatInt(n, 10)
}

// convertFloat converts a decimal-number string to English text, reading
// the fractional part digit by digit after "point" (e.g. "3.14" ->
// "three point one four").
func convertFloat(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	sepIdx := strings.IndexAny(s, ".,")
	if sepIdx == -1 {
		val, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return ""
		}
		if negative {
			val = -val
		}
		return convert(val)
	}

	wholePart := s[:sepIdx]
	fracPart := s[sepIdx+1:]
	if (wholePart != "" && !allDigits(wholePart)) || !allDigits(fracPart) || fracPart == "" {
		return ""
	}
	if wholePart == "" {
		wholePart = "0"
	}

	wholeVal, err := strconv.ParseInt(wholePart, 10, 64)
	if err != nil {
		return ""
	}
	if negative && wholeVal == 0 && allZeros(fracPart) {
		negative = false
	}

	wholeText := convert(wholeVal)
	if wholeText == "" {
		return ""
	}

	var b strings.Builder
	if negative {
		b.WriteString(wordNegative)
		b.WriteByte(' ')
	}
	b.WriteString(wholeText)
	b.WriteByte(' ')
	b.WriteString(wordPoint)
	for _, ch := range fracPart {
		d := int64(ch - '0')
		b.WriteByte(' ')
		b.WriteString(cardinals[d])
	}
	return b.String()
}

// convertOrdinal converts n to English ordinal text by rewriting the
// last hyphen-group of its cardinal form, mirroring to_ordinal's
// split-rewrite-join over the cardinal's words.
func convertOrdinal(n int64) string {
	if n > maxAbs || n < -maxAbs {
		return ""
	}
	negative := n < 0
	abs := n
	if negative {
		abs = -n
	}

	card := convert(abs)
	words := strings.Split(card, " ")
	if len(words) == 0 {
		return card
	}

	last := words[len(words)-1]
	if strings.Contains(last, "-") {
		parts := strings.Split(last, "-")
		parts[len(parts)-1] = ordinalSuffixWord(parts[len(parts)-1])
		words[len(words)-1] = strings.Join(parts, "-")
	} else {
		words[len(words)-1] = ordinalSuffixWord(last)
	}

	result := strings.Join(words, " ")
	if negative {
		return wordNegative + " " + result
	}
	return result
}

// ordinalSuffixWord returns the ordinal form of a single cardinal word.
func ordinalSuffixWord(word string) string {
	if irregular, ok := ordinals[word]; ok {
		return irregular
	}
	if strings.HasSuffix(word, "y") {
		return word[:len(word)-1] + "ieth"
	}
	return word + "th"
}

// convertYear converts n to the way English typically reads a calendar
// year aloud ("nineteen oh-five" rather than "one thousand nine hundred
// and five"), falling back to the plain cardinal outside that pattern.
func convertYear(n int64) string {
	if n < 0 {
		return convertYear(-n) + " BC"
	}

	high := n / 100
	low := n % 100

	if high == 0 || (high%10 == 0 && low < 10) || high >= 100 {
		return convert(n)
	}

	highText := convert(high)
	var lowText string
	switch {
	case low == 0:
		lowText = wordHundred
	case low < 10:
		lowText = "oh-" + convert(low)
	default:
		lowText = convert(low)
	}

	return highText + " " + lowText
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
