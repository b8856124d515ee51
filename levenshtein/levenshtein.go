package levenshtein

// Distance returns the Levenshtein distance between the codepoint sequences
// a and b: the minimum number of single-character insertions, deletions, or
// substitutions needed to transform a into b. Each edit costs 1.
//
// The implementation keeps a single rolling row of length len(b)+1 and
// consumes a left to right, so memory stays O(len(b)) while time is
// O(len(a)·len(b)). Empty inputs short-circuit: Distance(a, nil) == len(a).
//
// Deterministic and symmetric: Distance(a, b) == Distance(b, a).
func Distance(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// row[j] holds D(i, j) for the row currently being filled; it starts as
	// the border row D(0, j) = j.
	row := make([]int, lb+1)
	for j := range row {
		row[j] = j
	}

	var prev, diag int // D(i-1, j-1) and a scratch for D(i-1, j)
	for i := 1; i <= la; i++ {
		prev = row[0] // D(i-1, 0)
		row[0] = i    // D(i, 0): i deletions
		for j := 1; j <= lb; j++ {
			diag = row[j] // save D(i-1, j) before overwriting
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min3(prev+cost, row[j-1]+1, row[j]+1)
			prev = diag
		}
	}

	return row[lb]
}

// min3 returns the minimum of three int values.
func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}

	return a
}
