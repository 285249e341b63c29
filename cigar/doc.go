// Package cigar defines the edit-operation tags produced by alignment
// and their CIGAR text encoding (Compact Idiosyncratic Gapped Alignment
// Representation).
//
// A CIGAR string is a run-length encoding of an operation sequence:
// each maximal run of operations that share an output letter is written
// as <count><letter>. Two flavors exist:
//
//   - standard: matches and mismatches collapse into a single 'M' run
//   - extended: matches are '=' and mismatches are 'X'
//
// Letter convention (fixed, SAM-compatible, with the query playing the
// role of the read):
//
//	'I' — OpInsertTarget: a query symbol with no counterpart in the
//	      target; it would have to be inserted into the target to make
//	      the two equal. Consumes one query symbol.
//	'D' — OpInsertQuery: a target symbol with no counterpart in the
//	      query. Consumes one target symbol.
//	'M', '=', 'X' consume one symbol from each sequence.
//
// Replaying an operation sequence therefore walks both sequences in
// lockstep: the sum of query-consuming counts equals the query length
// and the sum of target-consuming counts equals the aligned target span.
//
// Encode never fails; an empty operation sequence encodes to the empty
// string. Parse is the inverse and rejects malformed input with
// ErrCigarSyntax.
package cigar
