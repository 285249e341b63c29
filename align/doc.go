// Package align computes unit-cost edit-distance alignments between two
// byte sequences with a bit-parallel dynamic-programming engine, and
// optionally reports optimal locations, the explicit edit-operation path
// and its CIGAR encoding.
//
// 🚀 What does align do?
//
//	Given a query of length m and a target of length n it evaluates the
//	Levenshtein recurrence column by column, packing 64 query rows into
//	each machine word (Myers' bit-vector algorithm), so a column update
//	costs O(m/64) word operations instead of O(m) cell operations.
//
// ✨ Key features:
//   - three alignment modes: ModeGlobal (both sequences consumed in
//     full), ModePrefix (trailing target suffix free) and ModeInfix
//     (leading target prefix free as well)
//   - optional MaxDistance bound with Ukkonen banding: only the 64-row
//     blocks that can still satisfy the bound are computed, and the
//     search exits early once none can
//   - every optimal end position is reported, ascending; TaskLocations
//     adds the earliest start per end, TaskAlignment adds the edit
//     script of the first location
//   - custom symbol equalities consulted by every comparison, including
//     path reconstruction
//
// ⚙️ Usage:
//
//	opts := align.DefaultOptions()
//	opts.Mode = align.ModeInfix
//	opts.Task = align.TaskAlignment
//	opts.MaxDistance = 4
//
//	res, err := align.Align(query, target, opts)
//	if err != nil {
//	    // invalid options
//	}
//	if d, ok := res.Distance(); ok {
//	    s, _ := res.Cigar(true)
//	    fmt.Println(d, res.Ranges(), s)
//	}
//
// Performance:
//
//   - Time:   O(m*n/64) unbounded; output-sensitive with MaxDistance
//   - Memory: O(m/64) for the sweep, O(m*span/64) while reconstructing
//     a path over a target window of length span
//
// The package is stateless: concurrent calls need no synchronization.
// See example_test.go for worked scenarios.
package align
