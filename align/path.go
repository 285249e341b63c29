// Package align - path reconstruction.
//
// Reconstruction replays the engine over the located target window in
// global mode, recording every column's block state, then walks the
// matrix backwards from the bottom-right corner. At each cell the move
// is chosen in a fixed priority order, which pins down which of several
// co-optimal alignments is produced:
//
//  1. diagonal (match or mismatch),
//  2. vertical, consuming a query symbol (OpInsertTarget),
//  3. horizontal, consuming a target symbol (OpInsertQuery).
//
// The walk takes O(m+span) steps; cell values are recovered from the
// recorded delta words in O(1) via popcount.
package align

import (
	"math"

	"github.com/katalvlaran/edist/cigar"
)

// infCost stands in for cells outside the recorded band; their true
// value provably exceeds the distance bound, so no backtracking step
// ever accepts them.
const infCost = math.MaxInt32

// traceCol is one recorded column: the active blocks, top block first.
type traceCol struct {
	last   int
	blocks []block
}

// trace is the engine state retained for backtracking: one traceCol per
// target position of the aligned window.
type trace struct {
	m    int
	cols []traceCol
}

func newTrace(m, span int) *trace {
	return &trace{m: m, cols: make([]traceCol, span)}
}

// record snapshots the active blocks after column j (1-based) was
// computed.
func (tr *trace) record(j int, active []block) {
	tr.cols[j-1] = traceCol{
		last:   len(active) - 1,
		blocks: append([]block(nil), active...),
	}
}

// cell returns D[i][j] of the window's global DP matrix, where i query
// symbols and j window symbols have been consumed. Boundaries are
// analytic; cells outside the recorded band report infCost.
func (tr *trace) cell(i, j int) int {
	if j == 0 {
		return i
	}
	if i == 0 {
		return j
	}
	col := &tr.cols[j-1]
	b := (i - 1) / wordSize
	if b > col.last {
		return infCost
	}

	return col.blocks[b].value(uint((i - 1) % wordSize))
}

// reconstructPath builds the edit-operation sequence of one optimal
// alignment of the whole query against tgt[start..end] (inclusive) with
// the known distance. The supplied location must come from the engine;
// a walk that cannot account for the claimed distance is a bug and
// surfaces as ErrInternal.
func reconstructPath(mq, mt []uint8, ab *alphabet, start, end, distance int) ([]cigar.Op, error) {
	window := mt[start : end+1]
	s := newSearcher(mq, ab)
	tr := newTrace(len(mq), len(window))
	got, _ := s.search(window, ModeGlobal, distance, tr)
	if got != distance {
		return nil, ErrInternal
	}

	ops := make([]cigar.Op, 0, len(mq)+len(window))
	i, j := len(mq), len(window)
	cur := distance
	var cost, d int
	for i > 0 || j > 0 {
		if i > 0 && j > 0 {
			cost = 1
			if ab.equal(mq[i-1], window[j-1]) {
				cost = 0
			}
			if d = tr.cell(i-1, j-1); d+cost == cur {
				if cost == 0 {
					ops = append(ops, cigar.OpMatch)
				} else {
					ops = append(ops, cigar.OpMismatch)
				}
				i, j, cur = i-1, j-1, d

				continue
			}
		}
		if i > 0 {
			if d = tr.cell(i-1, j); d+1 == cur {
				ops = append(ops, cigar.OpInsertTarget)
				i, cur = i-1, d

				continue
			}
		}
		if j > 0 {
			if d = tr.cell(i, j-1); d+1 == cur {
				ops = append(ops, cigar.OpInsertQuery)
				j, cur = j-1, d

				continue
			}
		}

		return nil, ErrInternal
	}
	if cur != 0 {
		return nil, ErrInternal
	}

	// The walk ran end to start; flip it forward.
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops, nil
}
