// Package consensus collapses the gap-marked rows produced by align.Align
// into a single best-guess line.
//
// Each output character is chosen by a per-column plurality vote over all
// rows, gap markers included. Columns where the gap marker wins are dropped
// from the output, so noise present in only a minority of readings
// disappears. Ties resolve to the symbol appearing first when scanning the
// column top to bottom, keeping the result deterministic.
//
// ⚙️ Usage:
//
//	rows, err := align.Align(fragments, weights, gap, skew)
//	if err != nil { ... }
//	best := consensus.Text(rows)
//
// Complexity: O(rows·columns) time, O(rows) scratch memory.
package consensus
