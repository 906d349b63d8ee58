package region

import "bytes"

// getIdx searches the chain rooted at home for key, returning the slot
// index on a match or -1. It fails fast when home itself is empty, a
// collision member or a spill fragment (count <= 0), otherwise it walks
// linearly from home counting only slots that belong to this home's chain
// (hash == home and count is either positive or -1, i.e. head or
// collision member) until the head's own count of members has been
// visited.
func (t *Table) getIdx(key []byte, home int) int {
	headCount := t.slot(home).count()
	if headCount <= 0 {
		return -1
	}

	visited := 0
	for i := 0; i < t.maxslots && visited < int(headCount); i++ {
		idx := wrap(home+i, t.maxslots)
		s := t.slot(idx)
		if int(s.hashLink()) != home {
			continue
		}
		if !(s.isHead() || s.isMember()) {
			continue
		}
		visited++
		if t.keyMatches(s, key) {
			return idx
		}
	}
	return -1
}

// keyMatches compares key against the key stored in a head/collision
// slot: lengths must match; if the key fit inline (keylen <= K), the raw
// inline bytes must match exactly; otherwise the stored first-K-bytes
// prefix and the full-key MD5 digest must both match.
func (t *Table) keyMatches(s slotView, key []byte) bool {
	kl := int(s.keylen())
	if kl != len(key) {
		return false
	}
	if kl <= t.layout.KeySize {
		return bytes.Equal(s.keyBytes(), key)
	}
	prefix := key[:t.layout.KeySize]
	if !bytes.Equal(s.keyBytes(), prefix) {
		return false
	}
	digest := keyDigest(key)
	return bytes.Equal(s.md5(), digest[:])
}
