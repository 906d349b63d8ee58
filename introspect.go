package region

// SlotInfo is a read-only snapshot of one slot's tag fields, exposed for
// debug tooling (spec.md names "debug pretty-printing" as an external
// collaborator, not part of the core's contract).
type SlotInfo struct {
	Index int
	Count int32
	Hash  int32
	Link  int32
	Size  int32
}

// DebugSlot returns a snapshot of slot idx's fixed fields.
func (t *Table) DebugSlot(idx int) SlotInfo {
	s := t.slot(idx)
	return SlotInfo{
		Index: idx,
		Count: s.count(),
		Hash:  s.hashLink(),
		Link:  s.link(),
		Size:  s.size(),
	}
}
