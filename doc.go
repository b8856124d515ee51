// Package textalign aligns sets of similar short text fragments — the kind
// produced by running several OCR engines over the same scanned label — and
// measures how far apart they are.
//
// 🚀 What is textalign?
//
//	A small, deterministic, pure-Go toolkit built around three operations:
//	  • levenshtein.Distance — codepoint-wise edit distance between two fragments
//	  • levenshtein.RankAll  — all-pairs distances, stably ranked by similarity
//	  • align.Align          — progressive multiple alignment with affine gap
//	    penalties, producing equal-length gap-marked rows
//
//	Plus two supporting packages:
//	  • consensus — collapse aligned rows into a single best-guess line
//	  • charsub   — load character substitution matrices (SQLite or YAML)
//
// ✨ Why choose textalign?
//
//   - Deterministic – identical inputs always produce identical output,
//     including gap placement (fixed diagonal > up > left tie-breaking)
//   - Rock-solid contracts – sentinel errors, no panics on user input
//   - Pure Go core – the library packages allocate one dense DP matrix per
//     alignment step and nothing else
//
// Everything is organized under five packages:
//
//	levenshtein/ — edit distance & all-pairs ranking
//	align/       — progressive multiple alignment (affine gaps, traceback)
//	consensus/   — per-column plurality vote over aligned rows
//	charsub/     — substitution-matrix persistence (SQLite, YAML, uniform)
//	cmd/         — the textalign CLI (the only place text encoding lives)
package textalign
