// Package align - bit-parallel distance engine.
//
// The engine evaluates the unit-cost edit-distance recurrence one target
// position at a time, packing 64 query rows per machine word (Myers'
// bit-vector algorithm in the block formulation of Hyyrö). Each column
// keeps, per 64-row block, two delta words (P: rows where the value grows
// downward, M: rows where it shrinks) plus the value at the block's
// bottom row; a column update is a handful of word operations per block.
//
// When a distance bound k is supplied, the set of active blocks forms a
// band maintained by Ukkonen's argument: values never decrease along a
// diagonal, so a block whose bottom value reaches k+64 holds no cell of
// value <= k and may be dropped, while the band is grown one block
// downward as soon as the bottom value of the last active block falls to
// k or below. When every block has been dropped, no later column can
// reach a value within the bound and the search exits early.
//
// Complexity: O(n * m/64) time unbounded; bounded searches touch only the
// banded blocks. Memory is O(m/64), plus O(n * m/64) when a trace of the
// column states is recorded for path reconstruction.
package align

import "math/bits"

const (
	wordSize = 64
	hiBit    = uint64(1) << (wordSize - 1)
)

// block is the engine's view of 64 consecutive DP rows within one
// column: vertical deltas plus the running value at the bottom row.
type block struct {
	p     uint64 // rows whose value is one above the row before it
	m     uint64 // rows whose value is one below the row before it
	score int    // value at the block's bottom bit row
}

// value recovers the cell value at the given bit row of the block by
// undoing the deltas between it and the bottom row.
func (bl *block) value(bit uint) int {
	above := ^uint64(0) << (bit + 1)

	return bl.score - bits.OnesCount64(bl.p&above) + bits.OnesCount64(bl.m&above)
}

// advanceBlock moves one 64-row block of the DP one target position to
// the right. Eq marks the rows whose query symbol matches the current
// target symbol, hin is the horizontal delta entering the block's top
// (-1, 0 or +1) and hout the delta leaving its bottom.
func advanceBlock(pv, mv, eq uint64, hin int) (pvOut, mvOut uint64, hout int) {
	xv := eq | mv
	if hin < 0 {
		eq |= 1
	}
	xh := (((eq & pv) + pv) ^ pv) | eq

	ph := mv | ^(xh | pv)
	mh := pv & xh

	if ph&hiBit != 0 {
		hout = 1
	} else if mh&hiBit != 0 {
		hout = -1
	}

	ph <<= 1
	mh <<= 1
	if hin < 0 {
		mh |= 1
	} else if hin > 0 {
		ph |= 1
	}

	pvOut = mh | ^(xv | ph)
	mvOut = ph & xv

	return pvOut, mvOut, hout
}

// searcher holds the per-query precomputation: the blocked match masks
// for every alphabet code. One searcher serves any number of search
// calls against different targets; each call owns its own column state.
type searcher struct {
	m   int      // query length, >= 1
	nb  int      // number of 64-row blocks covering the query
	hb  uint     // bit row of the last query row within the final block
	peq []uint64 // match masks, nb words per code; padding rows never match
}

// newSearcher precomputes match masks for the mapped query. Declared
// equalities are folded in here: a mask bit is set when the row's query
// code and the mask's code are interchangeable.
func newSearcher(mq []uint8, ab *alphabet) *searcher {
	m := len(mq)
	nb := (m + wordSize - 1) / wordSize
	s := &searcher{
		m:   m,
		nb:  nb,
		hb:  uint((m - 1) % wordSize),
		peq: make([]uint64, ab.size*nb),
	}

	var b int
	var bit uint64
	for r, c := range mq {
		b, bit = r/wordSize, uint64(1)<<(r%wordSize)
		s.peq[int(c)*nb+b] |= bit
		for _, peer := range ab.peers[c] {
			s.peq[int(peer)*nb+b] |= bit
		}
	}

	return s
}

// search runs the banded column sweep over tgt and returns the minimum
// distance under mode together with every 0-indexed target end offset
// achieving it, ascending. A distance of -1 means no alignment within
// bound exists. bound < 0 disables the band.
//
// When tr is non-nil the per-column block states are recorded so a path
// can be reconstructed afterwards; trace runs use ModeGlobal.
func (s *searcher) search(tgt []uint8, mode Mode, bound int, tr *trace) (int, []int) {
	n := len(tgt)
	k := bound
	if k < 0 || k > s.m+n {
		// The distance never exceeds max(m, n); a band this wide prunes
		// nothing, which is exactly the unbounded behavior.
		k = s.m + n
	}
	startHin := 1
	if mode == ModeInfix {
		// A zero top boundary lets the alignment restart at every target
		// position for free.
		startHin = 0
	}

	// Only rows that can hold a value <= k at column 0 start active.
	last := min((k+wordSize)/wordSize, s.nb) - 1
	blocks := make([]block, s.nb)
	for b := 0; b <= last; b++ {
		blocks[b] = block{p: ^uint64(0), m: 0, score: (b + 1) * wordSize}
	}

	best := -1
	var ends []int
	var (
		hin, hout, col int
		pq             []uint64
	)
	for j := 1; j <= n; j++ {
		pq = s.peq[int(tgt[j-1])*s.nb:]
		hin = startHin
		for b := 0; b <= last; b++ {
			blocks[b].p, blocks[b].m, hout = advanceBlock(blocks[b].p, blocks[b].m, pq[b], hin)
			blocks[b].score += hout
			hin = hout
		}

		// Band upkeep: grow one block downward while the bottom of the
		// band can still reach the bound, otherwise drop dead blocks.
		if last < s.nb-1 && blocks[last].score-hout <= k {
			last++
			prev := blocks[last-1].score - hout + wordSize
			bl := &blocks[last]
			bl.p, bl.m = ^uint64(0), 0
			bl.p, bl.m, hout = advanceBlock(bl.p, bl.m, pq[last], hout)
			bl.score = prev + hout
		} else {
			for last >= 0 && blocks[last].score >= k+wordSize {
				last--
			}
			if last < 0 {
				// No cell in this or any later column fits the bound.
				return best, ends
			}
		}

		if tr != nil {
			tr.record(j, blocks[:last+1])
		}

		// The bottom row is reachable only while the final block is active.
		if last != s.nb-1 {
			continue
		}
		col = blocks[last].value(s.hb)
		if col > k {
			continue
		}
		switch mode {
		case ModeGlobal:
			if j == n {
				best = col
				ends = append(ends, j-1)
			}
		case ModePrefix, ModeInfix:
			switch {
			case best < 0 || col < best:
				best = col
				ends = append(ends[:0], j-1)
				k = col // keep only ties from here on
			case col == best:
				ends = append(ends, j-1)
			}
		}
	}

	return best, ends
}
