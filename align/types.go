// Package align defines configuration, result types and sentinel errors
// for pairwise edit-distance alignment of byte sequences.
package align

import (
	"errors"

	"github.com/katalvlaran/edist/cigar"
)

// Sentinel errors returned by the align entry points.
var (
	// ErrBadMaxDistance indicates a MaxDistance that is neither a
	// non-negative bound nor the NoLimit marker.
	ErrBadMaxDistance = errors.New("align: MaxDistance must be non-negative or NoLimit")

	// ErrBadMode indicates a Mode value outside the declared enum.
	ErrBadMode = errors.New("align: unknown alignment mode")

	// ErrBadTask indicates a Task value outside the declared enum.
	ErrBadTask = errors.New("align: unknown alignment task")

	// ErrNoAlignmentOps indicates a CIGAR request on a result whose task
	// did not include path reconstruction (Task < TaskAlignment).
	ErrNoAlignmentOps = errors.New("align: result carries no operations; run with TaskAlignment")

	// ErrInternal indicates an inconsistency between the distance matrix
	// and a reconstruction step. It signals a bug in the engine, not a
	// problem with the inputs, and should be unreachable.
	ErrInternal = errors.New("align: internal inconsistency in alignment state")
)

// NoLimit disables the distance bound: the search runs to completion and
// always reports the exact distance.
const NoLimit = -1

// Mode selects which alignments of the query against the target are
// eligible.
//
//   - ModeGlobal: the query must span the entire target; gaps at either
//     end of the target are penalized.
//   - ModePrefix: the alignment is anchored at the start of the target
//     and a trailing target suffix is free.
//   - ModeInfix: both a leading target prefix and a trailing target
//     suffix are free; the query may match anywhere inside the target.
type Mode int

const (
	// ModeGlobal aligns the whole query against the whole target.
	ModeGlobal Mode = iota
	// ModePrefix aligns the whole query against a target prefix.
	ModePrefix
	// ModeInfix aligns the whole query against any target substring.
	ModeInfix
)

// Task selects how much work Align performs and how much of the Result
// is populated. The tasks form a strict ladder: every task also produces
// everything the tasks below it produce.
type Task int

const (
	// TaskDistance computes the distance and the optimal end positions.
	TaskDistance Task = iota
	// TaskLocations additionally finds the earliest start position for
	// every optimal end position.
	TaskLocations
	// TaskAlignment additionally reconstructs the edit-operation path
	// for the first optimal location.
	TaskAlignment
)

// EqualPair declares two byte values equal in addition to identity.
// Pairs are unordered and not transitive: declaring (a,b) and (b,c)
// does not make a equal to c.
type EqualPair struct {
	First, Second byte
}

// Options configures a single alignment call. The value is read once at
// the start of the call and never mutated.
//
// Fields:
//   - MaxDistance — upper bound on the reported distance, or NoLimit.
//     When bounded, alignments costing more than MaxDistance are
//     reported as not found rather than computed.
//   - Mode       — which alignments are eligible (see Mode).
//   - Task       — how much output to produce (see Task).
//   - Equalities — extra symbol pairs that compare equal.
//
// Use DefaultOptions as the starting point; the zero Options value bounds
// the search at distance 0.
type Options struct {
	MaxDistance int
	Mode        Mode
	Task        Task
	Equalities  []EqualPair
}

// DefaultOptions returns the baseline configuration: unbounded global
// distance with no extra equalities.
func DefaultOptions() Options {
	return Options{
		MaxDistance: NoLimit,
		Mode:        ModeGlobal,
		Task:        TaskDistance,
	}
}

// validate rejects malformed configuration before any work happens.
func (o Options) validate() error {
	if o.MaxDistance < NoLimit {
		return ErrBadMaxDistance
	}
	switch o.Mode {
	case ModeGlobal, ModePrefix, ModeInfix:
	default:
		return ErrBadMode
	}
	switch o.Task {
	case TaskDistance, TaskLocations, TaskAlignment:
	default:
		return ErrBadTask
	}

	return nil
}

// Result carries the outcome of one Align call. All slices are owned by
// the caller once returned; the engine keeps no reference to them.
//
// A bounded search that finds no alignment within MaxDistance yields a
// Result whose Found reports false and whose slices are empty. That is a
// normal outcome, not an error.
type Result struct {
	// AlphabetLength is the number of distinct symbol codes the call
	// mapped internally. Diagnostic only.
	AlphabetLength int

	// Ends holds every target end offset (0-indexed, inclusive,
	// ascending, duplicate-free) achieving the minimum distance. An end
	// of -1 marks the degenerate alignment that consumes no target.
	Ends []int

	// Starts is parallel to Ends when the task was at least
	// TaskLocations: Starts[i] is the earliest target start offset of an
	// optimal alignment ending at Ends[i].
	Starts []int

	// Ops is the edit-operation path for the first location when the
	// task was TaskAlignment.
	Ops []cigar.Op

	distance int
	found    bool
	task     Task
}

// Distance returns the edit distance and whether one was found within
// the configured bound.
func (r Result) Distance() (int, bool) {
	if !r.found {
		return 0, false
	}

	return r.distance, true
}

// Found reports whether an alignment within the bound exists.
func (r Result) Found() bool { return r.found }

// Ranges pairs Starts and Ends into inclusive [start, end] target
// ranges. It returns nil unless start positions were computed.
func (r Result) Ranges() [][2]int {
	if len(r.Starts) != len(r.Ends) || len(r.Starts) == 0 {
		return nil
	}
	ranges := make([][2]int, len(r.Starts))
	for i := range ranges {
		ranges[i] = [2]int{r.Starts[i], r.Ends[i]}
	}

	return ranges
}

// Cigar encodes the reconstructed operation path. It fails with
// ErrNoAlignmentOps when the call did not run TaskAlignment; a bounded
// search that found nothing yields "" with no error.
func (r Result) Cigar(extended bool) (string, error) {
	if r.task < TaskAlignment {
		return "", ErrNoAlignmentOps
	}
	if !r.found {
		return "", nil
	}

	return cigar.Encode(r.Ops, extended), nil
}
