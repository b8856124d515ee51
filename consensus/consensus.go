package consensus

import "github.com/katalvlaran/textalign/align"

// Text votes each column of the aligned rows and returns the winning
// characters in column order. Rows must share one length, as align.Align
// guarantees. Columns won by the gap marker are omitted. Ties go to the
// symbol seen first scanning the column top to bottom. An empty row set
// yields nil.
func Text(rows [][]rune) []rune {
	if len(rows) == 0 {
		return nil
	}

	width := len(rows[0])
	out := make([]rune, 0, width)

	counts := make(map[rune]int, len(rows))
	order := make([]rune, 0, len(rows)) // first-appearance order for tie-breaks

	for c := 0; c < width; c++ {
		for _, row := range rows {
			ch := row[c]
			if counts[ch] == 0 {
				order = append(order, ch)
			}
			counts[ch]++
		}

		best := order[0]
		for _, ch := range order[1:] {
			if counts[ch] > counts[best] {
				best = ch
			}
		}
		if best != align.Gap {
			out = append(out, best)
		}

		for _, ch := range order {
			delete(counts, ch)
		}
		order = order[:0]
	}

	return out
}
