// Package align - start-position search.
//
// The engine's forward sweep yields end positions only. Start positions
// come from a second, reversed sweep: an optimal alignment that ends at
// target offset e and starts at s corresponds, after reversing both
// sequences, to a prefix-mode alignment of the reversed query against
// the reversed target prefix t[0..e] that ends at offset e-s. The
// largest reversed end offset therefore marks the earliest start.
package align

// findStarts returns, parallel to ends, the earliest target start
// offset of an optimal alignment with the given distance ending there.
//
// Global and prefix alignments are anchored at the target start, so
// their start is always 0. Infix alignments need one reversed
// prefix-mode sweep per end position, each bounded by the known
// distance: O(|ends| * e*m/64) overall.
func findStarts(mq, mt []uint8, ab *alphabet, mode Mode, distance int, ends []int) ([]int, error) {
	starts := make([]int, len(ends))
	if mode != ModeInfix {
		return starts, nil
	}

	rq := reverseCodes(mq)
	rt := reverseCodes(mt)
	rs := newSearcher(rq, ab)
	n := len(mt)
	for i, e := range ends {
		got, revEnds := rs.search(rt[n-1-e:], ModePrefix, distance, nil)
		if got != distance || len(revEnds) == 0 {
			// The reversed sweep must reproduce the forward minimum.
			return nil, ErrInternal
		}
		starts[i] = e - revEnds[len(revEnds)-1]
	}

	return starts, nil
}

func reverseCodes(s []uint8) []uint8 {
	rev := make([]uint8, len(s))
	for i, c := range s {
		rev[len(s)-1-i] = c
	}

	return rev
}
