package align_test

import (
	"fmt"

	"github.com/katalvlaran/textalign/align"
)

// ExampleAlign aligns three readings of the same two-character fragment.
// The middle reading lost its first character, so it gets a leading gap;
// the other rows come through untouched.
func ExampleAlign() {
	weights := make(align.Weights)
	weights.Set('a', 'a', 2)
	weights.Set('b', 'b', 2)
	weights.Set('a', 'b', -1)

	rows, err := align.Align([][]rune{
		[]rune("ab"),
		[]rune("b"),
		[]rune("ab"),
	}, weights, -3, -1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range rows {
		fmt.Println(string(row))
	}
	// Output:
	// ab
	// ⋄b
	// ab
}

// ExampleAlign_missingWeight shows the failure mode when the substitution
// table does not cover the input alphabet.
func ExampleAlign_missingWeight() {
	weights := make(align.Weights)
	weights.Set('a', 'a', 2) // pair {a,b} never stored

	_, err := align.Align([][]rune{
		[]rune("a"),
		[]rune("b"),
	}, weights, -3, -1)
	fmt.Println(err)
	// Output:
	// align: character pair missing from substitution table: 'a'/'b'
}
