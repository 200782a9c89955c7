// Word tables for English number-to-text conversion, ported from the
// Azerbaijani tables this package used to hold.
package numtext

const (
	maxAbs  int64 = 1_000_000_000_000_000_000
	hundred int64 = 100

	wordNegative = "minus"
	wordHundred  = "hundred"
	wordAnd      = "and"
	wordPoint    = "point"
)

// cardinals gives the direct-lookup English word for every value with an
// irregular or non-compositional cardinal form: 0-20, the decade words,
// and 100.
var cardinals = map[int64]string{
	0: "zero", 1: "one", 2: "two", 3: "three", 4: "four",
	5: "five", 6: "six", 7: "seven", 8: "eight", 9: "nine",
	10: "ten", 11: "eleven", 12: "twelve", 13: "thirteen", 14: "fourteen",
	15: "fifteen", 16: "sixteen", 17: "seventeen", 18: "eighteen", 19: "nineteen",
	20: "twenty", 30: "thirty", 40: "forty", 50: "fifty",
	60: "sixty", 70: "seventy", 80: "eighty", 90: "ninety",
	100: wordHundred,
}

// largeCardinals maps named powers of a thousand to their scale word,
// largest first — the order Convert tries them in.
var largeCardinals = []struct {
	value int64
	word  string
}{
	{1_000_000_000_000_000, "quadrillion"},
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

// ordinals gives the irregular ordinal word for a cardinal word whose
// suffix does not follow the regular "drop trailing -y, add -ieth" /
// "add -th" pattern.
var ordinals = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}
