// Package align builds a progressive multiple alignment of similar short
// text fragments, such as several OCR readings of the same label line.
//
// 🚀 What is progressive alignment?
//
//	Given fragments like:
//
//	  MOJAVE DESERT, PROVIDENCE MTS.: canyon above
//	  E. MOJAVE DESERT , PROVIDENCE MTS . : canyon above
//	  E MOJAVE DESERT PROVTDENCE MTS. # canyon above
//
//	Align produces equal-length rows where '⋄' marks a gap:
//
//	  ⋄⋄⋄⋄MOJAVE DESERT⋄, PROVIDENCE MTS⋄⋄.: canyon above
//	  E⋄. MOJAVE DESERT , PROVIDENCE MTS . : canyon above
//	  E⋄⋄ MOJAVE DESERT⋄⋄ PROVTDENCE MTS⋄. # canyon above
//
//	The exact gap placement depends on the substitution weights and the two
//	affine gap penalties (open + extend).
//
// Algorithm outline (seed + incremental extension):
//  1. Seed the profile with the first fragment as its only row.
//  2. For each later fragment, fill an affine-gap dynamic-programming matrix
//     of (profileLen+1)×(fragmentLen+1) cells. Each cell tracks the best
//     overall score, the best vertical-gap-run score, the best
//     horizontal-gap-run score, and the winning direction.
//  3. The diagonal move scores the new character against a profile column by
//     taking the maximum substitution weight over all non-gap rows at that
//     column (max-consensus; deliberately not sum-of-pairs).
//  4. Trace back from the terminal cell, emitting one output column per step,
//     until the origin cell is reached. Replace the profile with the new rows.
//
// Determinism: score ties resolve with fixed priority diagonal > up > left,
// so ambiguous inputs always produce the same gap placement.
//
// Errors:
//   - ErrEmptyInput    — Align requires at least one fragment.
//   - ErrMissingWeight — a required character pair is absent from the
//     substitution table; the error names the pair and no partial
//     alignment is returned.
//
// Performance: each extension step costs O(rows·cols·rowCount) time because
// of the per-column consensus scan, and one dense matrix of
// (rows+1)·(cols+1) cells. Fine for short fragments and small row counts;
// not built for genome-scale inputs.
package align
