package align

import "errors"

// Gap is the reserved rune that marks an alignment gap in output rows.
// Callers must guarantee it never occurs in real input; the engine treats
// its presence in a fragment as undefined behavior.
const Gap rune = '⋄'

var (
	// ErrEmptyInput indicates Align was called with zero fragments.
	ErrEmptyInput = errors.New("align: at least one fragment is required")

	// ErrMissingWeight indicates a character pair required during scoring is
	// absent from the substitution table. Returned errors wrap this sentinel
	// and name the offending pair.
	ErrMissingWeight = errors.New("align: character pair missing from substitution table")
)

// direction tags the winning move recorded in a DP cell. The set is closed:
// dirNone occurs only at the origin and terminates traceback.
type direction uint8

const (
	dirNone direction = iota
	dirDiag
	dirUp
	dirLeft
)

// cell is one entry of the DP matrix: the best overall score, the best
// score ending in a vertical (up) gap run, the best score ending in a
// horizontal (left) gap run, and the direction that produced val.
type cell struct {
	val  float64
	up   float64
	left float64
	dir  direction
}
