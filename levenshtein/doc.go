// Package levenshtein computes codepoint-wise edit distances between short
// text fragments and ranks every pair of a fragment set by similarity.
//
// 🚀 What is an edit distance?
//
//	The minimum number of single-character insertions, deletions, or
//	substitutions that transforms one sequence into another. Each edit
//	costs exactly 1. It is the workhorse metric for:
//	  • OCR output comparison & fuzzy matching
//	  • Spelling correction and suggestion ranking
//	  • Deduplication of near-identical records
//
// ✨ Key features:
//   - Distance — single rolling row, O(len(a)·len(b)) time, O(len(b)) memory
//   - RankAll — every unordered pair (i<j), stably sorted ascending by
//     distance, so equal distances keep their enumeration order
//   - operates on []rune: one Unicode scalar value per comparison unit,
//     no normalization, no encoding concerns
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/textalign/levenshtein"
//
//	d := levenshtein.Distance([]rune("kitten"), []rune("sitting")) // 3
//
//	pairs := levenshtein.RankAll([][]rune{
//	  []rune("aa"), []rune("bb"), []rune("ab"),
//	})
//	// pairs[0] is the most similar pair
//
// Performance:
//
//   - Distance: O(N·M) time, O(M) memory
//   - RankAll:  O(K²) distance computations for K fragments
package levenshtein
