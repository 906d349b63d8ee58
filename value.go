package region

import "fmt"

// Get looks up key and returns a freshly allocated copy of its value.
// Returns ErrNotFound if key is absent.
func (t *Table) Get(key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrInvalidArg
	}
	home := homeIndex(key, t.maxslots)
	idx := t.getIdx(key, home)
	if idx == -1 {
		return nil, ErrNotFound
	}
	return t.getData(idx)
}

// getData reassembles the full value stored starting at a head or
// collision-member slot idx. First pass follows link from idx summing
// size fields to get the total byte count; second pass allocates that
// much once and copies each fragment's payload in order (grounded on
// storj-storj's hashtbl "sum sizes then allocate once" read pattern,
// rather than repeated append-growth).
func (t *Table) getData(idx int) ([]byte, error) {
	total := 0
	for cur := idx; cur != -1; {
		s := t.slot(cur)
		total += int(s.size())
		cur = int(s.link())
	}

	out := make([]byte, 0, total)
	for cur := idx; cur != -1; {
		s := t.slot(cur)
		if s.isSpill() {
			out = append(out, s.spillValue()...)
		} else {
			out = append(out, s.headValue()...)
		}
		cur = int(s.link())
	}
	return out, nil
}

// putData writes a brand-new key/value record into the empty slot idx,
// which becomes the head of its chain (home == idx for a fresh head,
// home != idx when idx was chosen by findAvail for a collision member).
// countTag is the value the head's own count field should carry once
// placed (a positive head count for a first element at this home, or -1
// for a collision member whose home is elsewhere).
//
// Precondition: t.slot(idx).isEmpty().
func (t *Table) putData(idx, home int, key, value []byte, countTag int32) error {
	s := t.slot(idx)

	digest := keyDigest(key)
	s.setKeyBytes(key)
	s.setMD5(digest)
	s.setKeylen(int32(len(key)))
	s.setCount(countTag)
	s.setHashLink(int32(home))
	s.setLink(-1)

	headCap := t.layout.ValueSize
	headChunk := value
	if len(headChunk) > headCap {
		headChunk = value[:headCap]
	}
	s.setHeadValue(headChunk)
	t.incUsedslots(1)
	t.incNum(1)

	remaining := value[len(headChunk):]
	prev := idx
	spillCap := t.layout.SpillValueSize()

	for len(remaining) > 0 {
		j := t.findAvail(prev + 1)
		if j == -1 {
			t.removeData(idx)
			t.incNum(-1)
			return fmt.Errorf("region: spill chain ran out of empty slots: %w", ErrNoSpace)
		}
		chunk := remaining
		if len(chunk) > spillCap {
			chunk = remaining[:spillCap]
		}

		js := t.slot(j)
		js.setCount(countSpill)
		js.setHashLink(int32(prev))
		js.setLink(-1)
		js.setSpillValue(chunk)
		t.incUsedslots(1)

		t.slot(prev).setLink(int32(j))

		prev = j
		remaining = remaining[len(chunk):]
	}

	return nil
}

// removeData unwinds the payload chain rooted at idx without touching
// chain-membership bookkeeping on any other slot (no counter decrement, no
// sibling relocation, no num adjustment — callers own that) — used both by
// putData's NO_SPACE unwind and as the low-level step shared by
// remove_by_idx's cases in remove.go.
func (t *Table) removeData(idx int) {
	cur := idx
	for cur != -1 {
		s := t.slot(cur)
		next := int(s.link())
		s.zero()
		t.incUsedslots(-1)
		cur = next
	}
}
