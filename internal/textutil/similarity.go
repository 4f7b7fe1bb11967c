package textutil

// DiceSimilarity computes the Sørensen–Dice coefficient between two
// strings using multisets of character bigrams. Returns a value in
// [0, 1]: 1 for identical strings, 0 when the inputs share no bigrams.
// Inputs are expected to be normalized keys (see Normalize).
func DiceSimilarity(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	aBigrams := bigrams(a)
	bBigrams := bigrams(b)
	if len(aBigrams) == 0 || len(bBigrams) == 0 {
		return 0
	}

	counts := make(map[string]int, len(aBigrams))
	for _, bg := range aBigrams {
		counts[bg]++
	}
	overlap := 0
	for _, bg := range bBigrams {
		if counts[bg] > 0 {
			counts[bg]--
			overlap++
		}
	}
	return 2 * float64(overlap) / float64(len(aBigrams)+len(bBigrams))
}

// bigrams returns the sequence of adjacent rune pairs in s. A string
// shorter than two runes yields its single rune as a degenerate bigram
// so one-letter titles still compare by equality.
func bigrams(s string) []string {
	rs := []rune(s)
	if len(rs) == 0 {
		return nil
	}
	if len(rs) == 1 {
		return []string{string(rs)}
	}
	out := make([]string, 0, len(rs)-1)
	for i := 0; i+1 < len(rs); i++ {
		out = append(out, string(rs[i:i+2]))
	}
	return out
}
