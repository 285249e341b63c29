// Package align - unified dispatcher for alignment calls.
//
// This file provides the canonical entry points:
//
//   - Align: validate options, map the alphabet, run the distance sweep
//     and, per Task, the start-position search and path reconstruction.
//   - EditDistance / Locations / Alignment / Cigar: thin conveniences
//     over Align for the common call shapes.
//
// Design principles:
//   - Deterministic: fixed tie-breaks, no randomness, no global state.
//   - Strict sentinels: configuration errors only from types.go.
//   - A bounded search that finds nothing is a value-level outcome
//     (Result.Found() == false), never an error.
package align

import "github.com/katalvlaran/edist/cigar"

// Align computes the edit-distance alignment of query against target
// under opts and returns a Result populated according to opts.Task.
//
// Contracts:
//   - Both sequences are treated as raw bytes; nil and empty are valid.
//   - The call is self-contained and reentrant: it owns every buffer it
//     allocates and hands them to the caller inside the Result.
//
// Errors: ErrBadMaxDistance, ErrBadMode, ErrBadTask before any work;
// ErrInternal only on an engine bug.
//
// Complexity: O(m*n/64) time unbounded; a MaxDistance bound restricts
// work to the band of rows that can still satisfy it.
func Align(query, target []byte, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	ab, mq, mt := buildAlphabet(query, target, opts.Equalities)
	res := Result{AlphabetLength: ab.size, task: opts.Task}
	m, n := len(mq), len(mt)
	if m == 0 || n == 0 {
		return degenerateResult(m, n, opts, res), nil
	}

	s := newSearcher(mq, ab)
	distance, ends := s.search(mt, opts.Mode, opts.MaxDistance, nil)
	if distance < 0 {
		return res, nil // bound exceeded: defined outcome, not an error
	}
	res.found, res.distance = true, distance
	res.Ends = ends

	if opts.Task >= TaskLocations {
		starts, err := findStarts(mq, mt, ab, opts.Mode, distance, ends)
		if err != nil {
			return Result{}, err
		}
		res.Starts = starts
	}
	if opts.Task >= TaskAlignment {
		ops, err := reconstructPath(mq, mt, ab, res.Starts[0], res.Ends[0], distance)
		if err != nil {
			return Result{}, err
		}
		res.Ops = ops
	}

	return res, nil
}

// degenerateResult settles calls where either sequence is empty without
// running the engine: the distance is forced (only insertions remain)
// and the sole location is the empty or full consumption of the target.
// An end offset of -1 marks an alignment that consumes no target.
func degenerateResult(m, n int, opts Options, res Result) Result {
	var distance int
	var op cigar.Op
	switch {
	case m == 0 && opts.Mode == ModeGlobal:
		distance, op = n, cigar.OpInsertQuery
	case m == 0:
		distance = 0
	default: // n == 0
		distance, op = m, cigar.OpInsertTarget
	}
	if opts.MaxDistance != NoLimit && distance > opts.MaxDistance {
		return res
	}

	res.found, res.distance = true, distance
	end := -1
	if m == 0 && opts.Mode == ModeGlobal {
		end = n - 1
	}
	res.Ends = []int{end}
	if opts.Task >= TaskLocations {
		res.Starts = []int{0}
	}
	if opts.Task >= TaskAlignment {
		res.Ops = make([]cigar.Op, distance)
		for i := range res.Ops {
			res.Ops[i] = op
		}
	}

	return res
}

// EditDistance returns the edit distance between query and target and
// whether one exists within opts.MaxDistance. opts.Task is ignored.
func EditDistance(query, target []byte, opts Options) (int, bool, error) {
	opts.Task = TaskDistance
	res, err := Align(query, target, opts)
	if err != nil {
		return 0, false, err
	}
	d, ok := res.Distance()

	return d, ok, nil
}

// Locations runs Align with at least TaskLocations, so the Result
// carries paired start and end positions (see Result.Ranges).
func Locations(query, target []byte, opts Options) (Result, error) {
	if opts.Task < TaskLocations {
		opts.Task = TaskLocations
	}

	return Align(query, target, opts)
}

// Alignment runs Align with TaskAlignment, so the Result carries the
// edit-operation path of the first optimal location.
func Alignment(query, target []byte, opts Options) (Result, error) {
	opts.Task = TaskAlignment

	return Align(query, target, opts)
}

// Cigar aligns query against target and encodes the resulting operation
// path. A bounded search that finds nothing yields "" with no error.
func Cigar(query, target []byte, opts Options, extended bool) (string, error) {
	res, err := Alignment(query, target, opts)
	if err != nil {
		return "", err
	}

	return res.Cigar(extended)
}
