// Package edist is an in-memory toolkit for pairwise edit-distance
// alignment of byte sequences, built around a bit-parallel dynamic
// programming core.
//
// 🚀 What is edist?
//
//	A pure-Go library that answers three questions about a query and a
//	target byte sequence, each strictly more detailed than the last:
//	  • How far apart are they? (unit-cost Levenshtein distance)
//	  • Where in the target do the best alignments start and end?
//	  • Which exact edit operations make up one optimal alignment,
//	    and what is its CIGAR string?
//
// ✨ Why choose edist?
//
//   - Word-parallel core: Myers' bit-vector recurrence packs 64 DP rows
//     into each machine word, so a column costs O(m/64) instead of O(m)
//   - Banded search: an optional distance bound prunes the DP down to
//     the rows that can still matter, with early exit once none can
//   - Three alignment modes (global, prefix, infix), selected by a
//     closed enum and validated up front
//   - Custom equalities: declare extra symbol pairs that compare equal,
//     e.g. degenerate nucleotide codes
//   - Pure Go: no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	align/ — alphabet mapping, the bit-parallel engine, location search,
//	         path reconstruction and the user-facing entry points
//	cigar/ — edit-operation tags and CIGAR encoding/decoding
//
// Quick taste:
//
//	opts := align.DefaultOptions()
//	opts.Mode = align.ModeInfix
//	opts.Task = align.TaskAlignment
//	res, err := align.Align([]byte("missing"), []byte("mississippi"), opts)
//	// distance 2, first location [0,4], CIGAR "5=2I"
//
// Dive into the align package docs for mode semantics and complexity.
package edist
