package align

// alphabet remaps the raw byte values occurring in the query, the target
// or a declared equality pair onto dense integer codes, so the engine can
// index its match masks by code instead of by byte value. Bytes that
// never occur stay unmapped.
//
// Construction is O(m+n+|pairs|); equality lookups are O(1).
type alphabet struct {
	size  int
	codes [256]int16 // byte value -> dense code, -1 when unmapped
	eq    []bool     // size×size matrix of declared equalities, identity excluded
	peers [][]uint8  // per code: the codes declared equal to it
}

// buildAlphabet maps both sequences and registers the equality pairs.
// It returns the alphabet together with the code-mapped query and target.
func buildAlphabet(query, target []byte, pairs []EqualPair) (*alphabet, []uint8, []uint8) {
	ab := &alphabet{}
	for i := range ab.codes {
		ab.codes[i] = -1
	}
	mq := ab.mapBytes(query)
	mt := ab.mapBytes(target)
	// Bytes occurring only in an equality pair still get codes, so the
	// pair stays representable.
	for _, p := range pairs {
		ab.code(p.First)
		ab.code(p.Second)
	}

	ab.eq = make([]bool, ab.size*ab.size)
	ab.peers = make([][]uint8, ab.size)
	var a, b uint8
	for _, p := range pairs {
		a, b = uint8(ab.codes[p.First]), uint8(ab.codes[p.Second])
		if a == b || ab.eq[int(a)*ab.size+int(b)] {
			continue
		}
		ab.eq[int(a)*ab.size+int(b)] = true
		ab.eq[int(b)*ab.size+int(a)] = true
		ab.peers[a] = append(ab.peers[a], b)
		ab.peers[b] = append(ab.peers[b], a)
	}

	return ab, mq, mt
}

// code returns the dense code for b, assigning the next free one on
// first sight.
func (ab *alphabet) code(b byte) uint8 {
	if ab.codes[b] < 0 {
		ab.codes[b] = int16(ab.size)
		ab.size++
	}

	return uint8(ab.codes[b])
}

func (ab *alphabet) mapBytes(s []byte) []uint8 {
	mapped := make([]uint8, len(s))
	for i, b := range s {
		mapped[i] = ab.code(b)
	}

	return mapped
}

// equal reports whether two codes are interchangeable: identical, or
// joined by a declared equality pair. Identity always holds.
func (ab *alphabet) equal(x, y uint8) bool {
	return x == y || ab.eq[int(x)*ab.size+int(y)]
}
