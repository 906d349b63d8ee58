package region

import "encoding/binary"

// countEmpty, countMember and countSpill mark the three count tags that are
// not "this slot holds N elements at this home" (spec's "count tag encoding").
const (
	countEmpty  = 0
	countMember = -1
	countSpill  = -2
)

// slotView is a zero-copy window onto one slot record's bytes. It never
// allocates; every accessor reads or writes directly into the backing
// region, matching phash.go's pattern of indexing straight into the mmap'd
// byte slice rather than decoding into a Go struct.
type slotView struct {
	b []byte
	l Layout
}

func (t *Table) slot(idx int) slotView {
	off := t.slotsOffset + idx*t.slotSize
	return slotView{b: t.buf[off : off+t.slotSize], l: t.layout}
}

func (s slotView) count() int32     { return int32(binary.BigEndian.Uint32(s.b[0:4])) }
func (s slotView) hashLink() int32  { return int32(binary.BigEndian.Uint32(s.b[4:8])) }
func (s slotView) link() int32      { return int32(binary.BigEndian.Uint32(s.b[8:12])) }
func (s slotView) size() int32      { return int32(binary.BigEndian.Uint32(s.b[12:16])) }

func (s slotView) setCount(v int32)    { binary.BigEndian.PutUint32(s.b[0:4], uint32(v)) }
func (s slotView) setHashLink(v int32) { binary.BigEndian.PutUint32(s.b[4:8], uint32(v)) }
func (s slotView) setLink(v int32)     { binary.BigEndian.PutUint32(s.b[8:12], uint32(v)) }
func (s slotView) setSize(v int32)     { binary.BigEndian.PutUint32(s.b[12:16], uint32(v)) }

func (s slotView) body() []byte { return s.b[slotFixedSize:] }

func (s slotView) isEmpty() bool  { return s.count() == countEmpty }
func (s slotView) isHead() bool   { return s.count() > 0 }
func (s slotView) isMember() bool { return s.count() == countMember }
func (s slotView) isSpill() bool  { return s.count() == countSpill }

// keyBytes returns the inline key bytes for a head/collision-member slot,
// trimmed to the slot's recorded keylen when the full key was shorter than
// K.
func (s slotView) keyBytes() []byte {
	body := s.body()
	kl := s.keylen()
	if kl < int32(s.l.KeySize) {
		return body[s.l.keyOffset() : s.l.keyOffset()+int(kl)]
	}
	return body[s.l.keyOffset() : s.l.keyOffset()+s.l.KeySize]
}

func (s slotView) setKeyBytes(key []byte) {
	body := s.body()
	dst := body[s.l.keyOffset() : s.l.keyOffset()+s.l.KeySize]
	for i := range dst {
		dst[i] = 0
	}
	n := len(key)
	if n > s.l.KeySize {
		n = s.l.KeySize
	}
	copy(dst, key[:n])
}

func (s slotView) md5() []byte {
	body := s.body()
	return body[s.l.md5Offset() : s.l.md5Offset()+16]
}

func (s slotView) setMD5(digest [16]byte) {
	copy(s.md5(), digest[:])
}

func (s slotView) keylen() int32 {
	body := s.body()
	return int32(binary.BigEndian.Uint32(body[s.l.keylenOffset() : s.l.keylenOffset()+4]))
}

func (s slotView) setKeylen(n int32) {
	body := s.body()
	binary.BigEndian.PutUint32(body[s.l.keylenOffset():s.l.keylenOffset()+4], uint32(n))
}

// headValue returns the up-to-V inline value bytes in a head/collision
// slot, trimmed by this slot's own recorded size.
func (s slotView) headValue() []byte {
	body := s.body()
	n := int(s.size())
	return body[s.l.valueOffset() : s.l.valueOffset()+n]
}

func (s slotView) setHeadValue(v []byte) {
	body := s.body()
	dst := body[s.l.valueOffset() : s.l.valueOffset()+s.l.ValueSize]
	copy(dst, v)
	s.setSize(int32(len(v)))
}

// spillValue returns this spill fragment's continuation bytes, trimmed by
// its own recorded size.
func (s slotView) spillValue() []byte {
	return s.body()[:s.size()]
}

func (s slotView) setSpillValue(v []byte) {
	dst := s.body()[:len(v)]
	copy(dst, v)
	s.setSize(int32(len(v)))
}

// zero clears every field of the slot, returning it to the empty state.
func (s slotView) zero() {
	for i := range s.b {
		s.b[i] = 0
	}
}
