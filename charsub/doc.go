// Package charsub loads character substitution matrices for align.Align.
//
// Trained matrices live in a SQLite table:
//
//	char_sub_matrix(char1, char2, char_set, score, sub)
//
// where char1/char2 are single characters in canonical order (smaller
// codepoint first), char_set names the matrix variant, and sub is the
// substitution weight actually used for alignment. Load reads one char set
// into an align.Weights table.
//
// Lighter-weight sources are also supported:
//   - LoadYAML — a flat YAML mapping of two-character keys to scores,
//     e.g. `ab: -1.5` scores the pair {a, b}
//   - Uniform — a synthetic match/mismatch table over a known alphabet,
//     handy for tests and as a CLI fallback when no trained matrix exists
//
// All constructors canonicalize pair keys, so either member of a pair may
// come first in the source data.
package charsub
