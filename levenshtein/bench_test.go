package levenshtein_test

import (
	"testing"

	"github.com/katalvlaran/textalign/levenshtein"
)

// synthetic builds a deterministic fragment of length n over a small alphabet.
func synthetic(n, phase int) []rune {
	alphabet := []rune("abcdefgh ")
	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet[(i+phase)%len(alphabet)]
	}

	return out
}

// benchmarkDistance runs Distance on two synthetic fragments of lengths n and m.
func benchmarkDistance(b *testing.B, n, m int) {
	x := synthetic(n, 0)
	y := synthetic(m, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = levenshtein.Distance(x, y)
	}
}

// BenchmarkDistance_Short benchmarks typical OCR-line lengths (~50 runes).
func BenchmarkDistance_Short(b *testing.B) {
	benchmarkDistance(b, 50, 50)
}

// BenchmarkDistance_Medium benchmarks 500×500 fragments.
func BenchmarkDistance_Medium(b *testing.B) {
	benchmarkDistance(b, 500, 500)
}

// BenchmarkDistance_Uneven benchmarks strongly uneven lengths.
func BenchmarkDistance_Uneven(b *testing.B) {
	benchmarkDistance(b, 1000, 50)
}

// BenchmarkRankAll_TenFragments benchmarks the all-pairs ranking of ten
// ~50-rune fragments (45 distance computations per iteration).
func BenchmarkRankAll_TenFragments(b *testing.B) {
	seqs := make([][]rune, 10)
	for i := range seqs {
		seqs[i] = synthetic(50, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = levenshtein.RankAll(seqs)
	}
}
