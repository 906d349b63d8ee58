package region

import "fmt"

// Put inserts or overwrites key with value, following the four-case
// decision on the home slot's tag (spec's "Insertion (the hardest case)").
func (t *Table) Put(key, value []byte) error {
	if len(key) == 0 {
		return ErrInvalidArg
	}
	return t.put(key, value)
}

func (t *Table) put(key, value []byte) error {
	home := homeIndex(key, t.maxslots)
	head := t.slot(home)

	switch {
	case head.isEmpty():
		// Case A: empty home. Write a fresh head here.
		return t.putData(home, home, key, value, 1)

	case head.isHead():
		// Case B: someone already owns this home.
		if existing := t.getIdx(key, home); existing != -1 {
			// Last-write-wins: remove the stale element, then retry the
			// whole insert against the now-simpler chain.
			if err := t.removeByIdx(existing); err != nil {
				return err
			}
			return t.put(key, value)
		}

		j := t.findAvail(home)
		if j == -1 {
			return ErrNoSpace
		}
		if err := t.putData(j, home, key, value, countMember); err != nil {
			return err
		}
		head.setCount(head.count() + 1)
		return nil

	default:
		// Case C: home is squatted by a foreigner (a collision member
		// belonging elsewhere, or a spill fragment). Evict it, then place
		// the new head.
		if err := t.evictHome(home); err != nil {
			return err
		}
		return t.putData(home, home, key, value, 1)
	}
}

// evictHome relocates whatever currently occupies home to a fresh slot
// and repairs that occupant's links so the chain it belongs to still
// finds it, freeing home for a new head.
func (t *Table) evictHome(home int) error {
	j := t.findAvail(home + 1)
	if j == -1 {
		return ErrNoSpace
	}

	occupant := t.slot(home)
	wasSpill := occupant.isSpill()
	wasMember := occupant.isMember()
	prevLink := occupant.hashLink()
	valueLink := occupant.link()

	dst := t.slot(j)
	copy(dst.b, occupant.b)
	t.incUsedslots(1)

	occupant.zero()
	t.incUsedslots(-1)

	if wasSpill {
		// Predecessor's forward link must now point at j instead of home.
		if prevLink < 0 || int(prevLink) >= t.maxslots {
			return fmt.Errorf("region: spill fragment at %d has invalid prev-link: %w", home, ErrCorrupt)
		}
		t.slot(int(prevLink)).setLink(int32(j))

		// If the relocated fragment had a successor, fix its back-link.
		if valueLink != -1 {
			t.slot(int(valueLink)).setHashLink(int32(j))
		}
	}
	// A collision member's membership in its home's collision chain needs
	// no repair: that chain is tracked by the counter on its own home
	// slot, not by a link, and that home slot is untouched by this
	// relocation. But the member may itself own a value spill chain
	// (putData streams spill fragments the same way regardless of whether
	// the slot it's writing is a true head or a collision member), and
	// that chain's first fragment holds a back-link (hash) pointing at
	// home — it must be repointed at j exactly like the spill case above.
	if wasMember && valueLink != -1 {
		t.slot(int(valueLink)).setHashLink(int32(j))
	}

	return nil
}
