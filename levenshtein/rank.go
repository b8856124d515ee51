package levenshtein

import "sort"

// PairDistance is the edit distance between the fragments at input positions
// I and J, with I < J. It is only meaningful relative to the slice passed to
// RankAll that produced it.
type PairDistance struct {
	// Dist is the Levenshtein distance between the two fragments.
	Dist int

	// I is the index of the first fragment compared (always the smaller index).
	I int

	// J is the index of the second fragment compared.
	J int
}

// RankAll computes the Levenshtein distance for every unordered pair (i, j)
// with i < j in seqs and returns the results sorted ascending by distance.
//
// The sort is stable: pairs with equal distance keep their enumeration order
// (outer index ascending, then inner index ascending), so the output is fully
// deterministic. Fewer than two fragments yield an empty result.
//
// Complexity: O(K²) distance computations for K fragments, plus the sort.
func RankAll(seqs [][]rune) []PairDistance {
	n := len(seqs)
	if n < 2 {
		return nil
	}

	results := make([]PairDistance, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			results = append(results, PairDistance{
				Dist: Distance(seqs[i], seqs[j]),
				I:    i,
				J:    j,
			})
		}
	}

	sort.SliceStable(results, func(x, y int) bool {
		return results[x].Dist < results[y].Dist
	})

	return results
}
