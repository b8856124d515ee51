package align

import (
	"fmt"
	"math"
)

// Align builds a progressive multiple alignment of seqs and returns one row
// per input fragment, in input order. All rows share one length; stripping
// Gap runes from row i reproduces seqs[i] exactly.
//
// weights scores substitutions between codepoints (see Weights). gapOpen is
// charged for the first gap of a run and gapExtend for every further gap
// extending it; both are typically negative.
//
// Align returns ErrEmptyInput for zero fragments and an error wrapping
// ErrMissingWeight when a required pair is absent from weights. On error no
// partial alignment is returned. Inputs are never mutated.
func Align(seqs [][]rune, weights Weights, gapOpen, gapExtend float64) ([][]rune, error) {
	if len(seqs) == 0 {
		return nil, ErrEmptyInput
	}

	// Seed the profile with a copy of the first fragment so the result never
	// aliases a caller's buffer.
	profile := [][]rune{append([]rune(nil), seqs[0]...)}

	for s := 1; s < len(seqs); s++ {
		next, err := extend(profile, seqs[s], weights, gapOpen, gapExtend)
		if err != nil {
			return nil, err
		}
		profile = next
	}

	return profile, nil
}

// extend aligns seq against the current profile and returns the replacement
// rows: every existing row re-emitted with gaps where needed, plus one new
// row for seq. All returned rows share one length.
func extend(profile [][]rune, seq []rune, weights Weights, gapOpen, gapExtend float64) ([][]rune, error) {
	rows := len(profile[0]) // shared length of all profile rows
	cols := len(seq)

	// Flat (rows+1)×(cols+1) matrix, indexed r*stride+c.
	stride := cols + 1
	matrix := make([]cell, (rows+1)*stride)

	// Border cells encode pure-gap paths with affine cost
	// gapOpen + (k-1)·gapExtend. The origin keeps dirNone and stops traceback.
	g := gapOpen
	for r := 1; r <= rows; r++ {
		border := &matrix[r*stride]
		border.val, border.up, border.left = g, g, g
		border.dir = dirUp
		g += gapExtend
	}
	g = gapOpen
	for c := 1; c <= cols; c++ {
		border := &matrix[c]
		border.val, border.up, border.left = g, g, g
		border.dir = dirLeft
		g += gapExtend
	}

	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			cur := &matrix[r*stride+c]
			above := &matrix[(r-1)*stride+c]
			before := &matrix[r*stride+c-1]

			// Extend an existing gap run or open a new one.
			cur.up = math.Max(above.up+gapExtend, above.val+gapOpen)
			cur.left = math.Max(before.left+gapExtend, before.val+gapOpen)

			// Max-consensus diagonal: the best substitution weight of the new
			// character against any non-gap row character in this column.
			diag := math.Inf(-1)
			for k := range profile {
				rowChar := profile[k][r-1]
				if rowChar == Gap {
					continue
				}
				score, ok := weights.Lookup(rowChar, seq[c-1])
				if !ok {
					pair := MakePair(rowChar, seq[c-1])

					return nil, fmt.Errorf("%w: %q/%q", ErrMissingWeight, pair[0], pair[1])
				}
				if score > diag {
					diag = score
				}
			}
			diag += matrix[(r-1)*stride+c-1].val

			// Tie-break priority: diagonal > up > left.
			cur.val = math.Max(diag, math.Max(cur.up, cur.left))
			switch {
			case cur.val == diag:
				cur.dir = dirDiag
			case cur.val == cur.up:
				cur.dir = dirUp
			default:
				cur.dir = dirLeft
			}
		}
	}

	return traceback(matrix, stride, profile, seq, rows, cols), nil
}

// traceback walks the recorded directions from (rows, cols) back to the
// origin and materializes the replacement rows. Columns are discovered in
// reverse order, so rows are written back to front into a single flat buffer
// sized for the worst case (rows+cols steps); no reversal pass is needed.
func traceback(matrix []cell, stride int, profile [][]rune, seq []rune, rows, cols int) [][]rune {
	width := rows + cols // upper bound on traceback steps
	count := len(profile) + 1
	buf := make([]rune, count*width)

	pos := width
	r, c := rows, cols
	for {
		dir := matrix[r*stride+c].dir
		if dir == dirNone {
			break
		}
		pos--
		switch dir {
		case dirDiag:
			// Consume one profile column and one fragment character.
			for k := range profile {
				buf[k*width+pos] = profile[k][r-1]
			}
			buf[len(profile)*width+pos] = seq[c-1]
			r--
			c--
		case dirUp:
			// Consume one profile column; the new row gets a gap.
			for k := range profile {
				buf[k*width+pos] = profile[k][r-1]
			}
			buf[len(profile)*width+pos] = Gap
			r--
		case dirLeft:
			// Consume one fragment character; existing rows get a gap.
			for k := range profile {
				buf[k*width+pos] = Gap
			}
			buf[len(profile)*width+pos] = seq[c-1]
			c--
		}
	}

	// Every row advanced in lockstep, so all share the suffix [pos:width).
	next := make([][]rune, count)
	for k := range next {
		next[k] = buf[k*width+pos : (k+1)*width]
	}

	return next
}
