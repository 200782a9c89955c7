package phonalg

import "sort"

// ApplyStress rewrites the stress markers in p according to the target
// stress level s. s must be one of the enumerated domain values
// {-2, -1, 0, 0.5, 1, 2}; values outside that domain only ever satisfy
// the "less than -1" / "greater than 1" comparisons below, which is the
// documented behavior for out-of-domain input.
func ApplyStress(p string, s float64) string {
	r := []rune(p)
	hasPrimary := HasPrimary(r)
	hasSecondary := HasSecondary(r)
	hasVowel := HasVowel(r)

	switch {
	case s < -1:
		return stripStress(r)

	case s == -1 || ((s == 0 || s == 0.5) && hasPrimary):
		r = stripSecondary(r)
		r = downgradePrimary(r)
		return string(r)

	case (s == 0 || s == 0.5 || s == 1) && !hasPrimary && !hasSecondary && hasVowel:
		r = append([]rune{SecondaryStress}, r...)
		return Restress(string(r))

	case s >= 1 && !hasPrimary && hasSecondary:
		return string(upgradeSecondary(r))

	case s > 1 && !hasPrimary && !hasSecondary && hasVowel:
		r = append([]rune{PrimaryStress}, r...)
		return Restress(string(r))

	default:
		return p
	}
}

func stripStress(r []rune) string {
	out := make([]rune, 0, len(r))
	for _, c := range r {
		if !IsStressMarker(c) {
			out = append(out, c)
		}
	}
	return string(out)
}

func stripSecondary(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for _, c := range r {
		if c != SecondaryStress {
			out = append(out, c)
		}
	}
	return out
}

func downgradePrimary(r []rune) []rune {
	out := make([]rune, len(r))
	for i, c := range r {
		if c == PrimaryStress {
			out[i] = SecondaryStress
		} else {
			out[i] = c
		}
	}
	return out
}

func upgradeSecondary(r []rune) []rune {
	out := make([]rune, len(r))
	for i, c := range r {
		if c == SecondaryStress {
			out[i] = PrimaryStress
		} else {
			out[i] = c
		}
	}
	return out
}

// Restress repositions every stress marker in p to immediately precede
// the next vowel that follows it. A marker with no following vowel keeps
// its original position relative to the rest of the string. Implemented
// by attaching a floating-point sort key to every codepoint — j-0.5 for a
// marker whose next vowel is at index j, i for everything else — and
// stable-sorting by that key.
func Restress(p string) string {
	r := []rune(p)
	n := len(r)
	keys := make([]float64, n)

	for i, c := range r {
		if !IsStressMarker(c) {
			keys[i] = float64(i)
			continue
		}
		j := nextVowelIndex(r, i+1)
		if j >= 0 {
			keys[i] = float64(j) - 0.5
		} else {
			keys[i] = float64(i)
		}
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]] < keys[idx[b]]
	})

	out := make([]rune, n)
	for pos, i := range idx {
		out[pos] = r[i]
	}
	return string(out)
}

func nextVowelIndex(r []rune, from int) int {
	for i := from; i < len(r); i++ {
		if IsVowel(r[i]) {
			return i
		}
	}
	return -1
}
