package align

// Pair is an unordered pair of codepoints in canonical order: the
// numerically smaller rune first. Build one with MakePair.
type Pair [2]rune

// MakePair returns the canonical Pair for a and b.
func MakePair(a, b rune) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{a, b}
}

// Weights maps canonical codepoint pairs to real-valued substitution scores.
// Symmetry is assumed and never verified: storing the pair for ("a","b")
// also answers lookups for ("b","a"). Higher scores mean better matches;
// mismatch scores are typically negative.
//
// Weights is read-only to the alignment engine, so a single table may be
// shared across concurrent Align calls.
type Weights map[Pair]float64

// Set records the score for the unordered pair {a, b}.
func (w Weights) Set(a, b rune, score float64) {
	w[MakePair(a, b)] = score
}

// Lookup returns the score for the unordered pair {a, b} and whether the
// pair is present.
func (w Weights) Lookup(a, b rune) (float64, bool) {
	s, ok := w[MakePair(a, b)]

	return s, ok
}
