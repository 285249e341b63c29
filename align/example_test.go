package align_test

import (
	"fmt"

	"github.com/katalvlaran/edist/align"
)

// ExampleEditDistance computes the classic global distance between
// kitten and sitting.
func ExampleEditDistance() {
	d, ok, err := align.EditDistance([]byte("kitten"), []byte("sitting"), align.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d, ok)
	// Output:
	// 3 true
}

// ExampleAlign searches for a query inside a longer target and
// reconstructs the edit script of the best occurrence.
func ExampleAlign() {
	opts := align.DefaultOptions()
	opts.Mode = align.ModeInfix
	opts.Task = align.TaskAlignment

	res, err := align.Align([]byte("missing"), []byte("mississippi"), opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	d, _ := res.Distance()
	s, _ := res.Cigar(true)
	fmt.Println("distance:", d)
	fmt.Println("range:", res.Ranges()[0])
	fmt.Println("cigar:", s)
	// Output:
	// distance: 2
	// range: [0 4]
	// cigar: 5=2I
}

// ExampleEditDistance_bounded shows the bounded search: a bound below
// the true distance reports not found instead of a distance.
func ExampleEditDistance_bounded() {
	opts := align.DefaultOptions()
	opts.MaxDistance = 2

	_, ok, _ := align.EditDistance([]byte("kitten"), []byte("sitting"), opts)
	fmt.Println(ok)
	// Output:
	// false
}
