package region

// Remove deletes key if present. It is a no-op error (ErrNotFound) when
// the key is absent.
func (t *Table) Remove(key []byte) error {
	if len(key) == 0 {
		return ErrInvalidArg
	}
	home := homeIndex(key, t.maxslots)
	idx := t.getIdx(key, home)
	if idx == -1 {
		return ErrNotFound
	}
	return t.removeByIdx(idx)
}

// removeByIdx dispatches on slots[i].count, the four cases of spec's
// "Removal": a solitary head, a head with collision siblings, a collision
// member, or neither (not found).
func (t *Table) removeByIdx(i int) error {
	s := t.slot(i)

	switch {
	case s.count() == 1:
		t.removeData(i)
		t.incNum(-1)
		return nil

	case s.count() > 1:
		return t.removeHeadWithSiblings(i)

	case s.isMember():
		return t.removeMember(i)

	default:
		return ErrNotFound
	}
}

// removeHeadWithSiblings handles count > 1: the head at i has at least one
// collision sibling elsewhere. A sibling is promoted into i so the home
// slot keeps owning this chain.
func (t *Table) removeHeadWithSiblings(i int) error {
	s := t.slot(i)
	oldCount := s.count()

	sibling := t.findCollisionSibling(i, i)
	if sibling == -1 {
		return ErrCorrupt
	}

	t.removeData(i)
	t.incNum(-1)

	k := t.slot(sibling)
	dst := t.slot(i)
	copy(dst.b, k.b)
	t.incUsedslots(1)
	k.zero()
	t.incUsedslots(-1)

	dst.setCount(oldCount - 1)

	if dst.link() != -1 {
		t.slot(int(dst.link())).setHashLink(int32(i))
	}
	return nil
}

// removeMember handles count == -1: i is a collision member. The counter
// on its home slot is decremented; dropping below 1 would mean the home's
// own element vanished without updating its counter, which is corruption.
func (t *Table) removeMember(i int) error {
	s := t.slot(i)
	homeIdx := int(s.hashLink())
	home := t.slot(homeIdx)
	newCount := home.count() - 1
	if newCount < 1 {
		return ErrCorrupt
	}
	home.setCount(newCount)

	t.removeData(i)
	t.incNum(-1)
	return nil
}

// findCollisionSibling scans the ring for a slot whose count == -1 and
// whose hash (home link) equals home, skipping the slot at skip (the head
// itself, never a valid sibling of itself).
func (t *Table) findCollisionSibling(home, skip int) int {
	for i := 0; i < t.maxslots; i++ {
		if i == skip {
			continue
		}
		s := t.slot(i)
		if s.isMember() && int(s.hashLink()) == home {
			return i
		}
	}
	return -1
}
