package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildAlphabet_DenseCodes verifies that only occurring bytes are
// mapped and that codes are dense in order of first sight.
func TestBuildAlphabet_DenseCodes(t *testing.T) {
	ab, mq, mt := buildAlphabet([]byte("abca"), []byte("cbd"), nil)

	assert.Equal(t, 4, ab.size, "a, b, c, d occur")
	assert.Equal(t, []uint8{0, 1, 2, 0}, mq, "codes assigned in order of first sight")
	assert.Equal(t, []uint8{2, 1, 3}, mt)
	assert.Equal(t, int16(-1), ab.codes['z'], "unused bytes stay unmapped")
}

// TestBuildAlphabet_Empty confirms an empty alphabet is valid.
func TestBuildAlphabet_Empty(t *testing.T) {
	ab, mq, mt := buildAlphabet(nil, nil, nil)

	assert.Equal(t, 0, ab.size)
	assert.Empty(t, mq)
	assert.Empty(t, mt)
}

// TestBuildAlphabet_EqualityPairs checks that declared pairs are
// symmetric, that identity always holds, and that equality is not
// transitive across pairs.
func TestBuildAlphabet_EqualityPairs(t *testing.T) {
	pairs := []EqualPair{{'a', 'b'}, {'b', 'c'}}
	ab, _, _ := buildAlphabet([]byte("a"), []byte("bc"), pairs)

	ca, cb, cc := uint8(ab.codes['a']), uint8(ab.codes['b']), uint8(ab.codes['c'])
	assert.True(t, ab.equal(ca, cb))
	assert.True(t, ab.equal(cb, ca), "equality is symmetric")
	assert.True(t, ab.equal(cb, cc))
	assert.False(t, ab.equal(ca, cc), "equality is not transitive")
	assert.True(t, ab.equal(ca, ca), "identity always holds")
}

// TestBuildAlphabet_PairOnlyBytes verifies bytes occurring only inside
// an equality pair still receive codes.
func TestBuildAlphabet_PairOnlyBytes(t *testing.T) {
	ab, _, _ := buildAlphabet([]byte("x"), []byte("x"), []EqualPair{{'x', 'y'}})

	require.Equal(t, 2, ab.size, "y is mapped through the pair")
	assert.True(t, ab.equal(uint8(ab.codes['x']), uint8(ab.codes['y'])))
}

// TestBuildAlphabet_DuplicatePairs confirms repeated or reflexive pairs
// are tolerated and collapse to one relation.
func TestBuildAlphabet_DuplicatePairs(t *testing.T) {
	pairs := []EqualPair{{'a', 'b'}, {'b', 'a'}, {'a', 'a'}}
	ab, _, _ := buildAlphabet([]byte("ab"), nil, pairs)

	assert.True(t, ab.equal(uint8(ab.codes['a']), uint8(ab.codes['b'])))
	assert.Len(t, ab.peers[ab.codes['a']], 1, "duplicate pair must not register twice")
}
