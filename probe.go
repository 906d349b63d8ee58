package region

// findAvail returns the lowest index i >= start (wrapping around to 0 at
// maxslots) whose slot is empty, or -1 after a full ring traversal finds
// none. A start at or past maxslots is normalized to 0, matching
// phash.go's (idx+i) % numSlots probe loop generalized into a standalone
// step.
func (t *Table) findAvail(start int) int {
	if start >= t.maxslots {
		start = 0
	}
	start = wrap(start, t.maxslots)
	for i := 0; i < t.maxslots; i++ {
		idx := wrap(start+i, t.maxslots)
		if t.slot(idx).isEmpty() {
			return idx
		}
	}
	return -1
}
