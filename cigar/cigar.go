package cigar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCigarSyntax indicates a CIGAR string that cannot be decoded:
// a run without a count, a zero count, or an unknown operation letter.
var ErrCigarSyntax = errors.New("cigar: malformed CIGAR string")

// Op is a single edit operation in an alignment path.
type Op byte

const (
	// OpMatch aligns two symbols that compare equal.
	OpMatch Op = iota
	// OpMismatch aligns two symbols that differ (a substitution).
	OpMismatch
	// OpInsertTarget is a query symbol absent from the target; making the
	// sequences equal would require inserting it into the target.
	OpInsertTarget
	// OpInsertQuery is a target symbol absent from the query.
	OpInsertQuery

	lastOp
)

var opNames = []string{"Match", "Mismatch", "InsertTarget", "InsertQuery", "?"}

// String returns the operation's human-readable name.
func (op Op) String() string {
	if op >= lastOp {
		op = lastOp
	}

	return opNames[op]
}

// Letter returns the CIGAR letter for op. In the standard flavor both
// OpMatch and OpMismatch map to 'M'; the extended flavor distinguishes
// them as '=' and 'X'.
func (op Op) Letter(extended bool) byte {
	switch op {
	case OpMatch:
		if extended {
			return '='
		}

		return 'M'
	case OpMismatch:
		if extended {
			return 'X'
		}

		return 'M'
	case OpInsertTarget:
		return 'I'
	case OpInsertQuery:
		return 'D'
	default:
		return '?'
	}
}

// ConsumesQuery reports whether op advances the query cursor on replay.
func (op Op) ConsumesQuery() bool {
	return op == OpMatch || op == OpMismatch || op == OpInsertTarget
}

// ConsumesTarget reports whether op advances the target cursor on replay.
func (op Op) ConsumesTarget() bool {
	return op == OpMatch || op == OpMismatch || op == OpInsertQuery
}

// Encode run-length-encodes ops into a CIGAR string. Consecutive
// operations that share an output letter merge into a single run, so in
// the standard flavor a match followed by a mismatch is one 'M' run.
// An empty (or nil) sequence encodes to "".
//
// Complexity: O(len(ops)) time, output-sized memory.
func Encode(ops []Op, extended bool) string {
	if len(ops) == 0 {
		return ""
	}

	var (
		sb      strings.Builder
		letter  = ops[0].Letter(extended)
		runLen  = 1
		current byte
	)
	for _, op := range ops[1:] {
		current = op.Letter(extended)
		if current == letter {
			runLen++

			continue
		}
		sb.WriteString(strconv.Itoa(runLen))
		sb.WriteByte(letter)
		letter, runLen = current, 1
	}
	sb.WriteString(strconv.Itoa(runLen))
	sb.WriteByte(letter)

	return sb.String()
}

// Parse decodes a CIGAR string back into an operation sequence.
// 'M' and '=' decode to OpMatch, 'X' to OpMismatch, 'I' to OpInsertTarget
// and 'D' to OpInsertQuery, so Parse followed by Encode in the same
// flavor reproduces the input string exactly. The empty string decodes
// to an empty sequence.
func Parse(s string) ([]Op, error) {
	ops := make([]Op, 0, len(s))
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start || i == len(s) {
			return nil, fmt.Errorf("%w: run without count and letter at offset %d", ErrCigarSyntax, start)
		}
		count, err := strconv.Atoi(s[start:i])
		if err != nil || count == 0 {
			return nil, fmt.Errorf("%w: bad run count %q", ErrCigarSyntax, s[start:i])
		}

		var op Op
		switch s[i] {
		case 'M', '=':
			op = OpMatch
		case 'X':
			op = OpMismatch
		case 'I':
			op = OpInsertTarget
		case 'D':
			op = OpInsertQuery
		default:
			return nil, fmt.Errorf("%w: unknown operation letter %q", ErrCigarSyntax, s[i])
		}
		i++
		for ; count > 0; count-- {
			ops = append(ops, op)
		}
	}

	return ops, nil
}
