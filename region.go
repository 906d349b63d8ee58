package region

import (
	"encoding/binary"
	"fmt"
)

// Table is a handle bound to a region: a backing byte slice plus the
// layout constants needed to interpret it. Destroying a Table (letting it
// be garbage collected) never touches the region's bytes.
type Table struct {
	buf         []byte
	layout      Layout
	slotSize    int
	slotsOffset int
	maxslots    int
}

// Open binds a Table to buf. When bytes is positive, the first bytes of
// buf are treated as a fresh region: they are zeroed, the header is
// initialized with maxslots computed from the layout, and usedslots/num
// are set to zero. When bytes is zero, buf is a re-attach: the header
// already present in buf is trusted as-is and len(buf) is otherwise
// unused for sizing (the stored maxslots governs everything from here).
//
// Open fails with ErrInvalidRegion if fewer than one slot would fit.
func Open(buf []byte, bytes int, layout Layout) (*Table, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	slotSize := layout.SlotSize()

	t := &Table{
		buf:         buf,
		layout:      layout,
		slotSize:    slotSize,
		slotsOffset: headerSize,
	}

	if bytes > 0 {
		if bytes > len(buf) {
			return nil, fmt.Errorf("region: requested %d bytes exceeds region of %d: %w", bytes, len(buf), ErrInvalidArg)
		}
		maxslots := layout.MaxSlotsFor(bytes)
		if maxslots < 1 {
			return nil, fmt.Errorf("region: %d bytes hosts no slots under this layout: %w", bytes, ErrInvalidRegion)
		}
		region := buf[:bytes]
		for i := range region {
			region[i] = 0
		}
		t.maxslots = maxslots
		t.setMaxslots(int32(maxslots))
		t.setUsedslots(0)
		t.setNum(0)
		return t, nil
	}

	if len(buf) < headerSize {
		return nil, fmt.Errorf("region: region smaller than header: %w", ErrInvalidRegion)
	}
	maxslots := int(t.rawMaxslots())
	if maxslots < 1 {
		return nil, fmt.Errorf("region: attached header reports no slots: %w", ErrInvalidRegion)
	}
	t.maxslots = maxslots
	return t, nil
}

// Close destroys the handle. It never touches the region's bytes; the
// caller remains responsible for unmapping or releasing the backing
// memory.
func (t *Table) Close() error {
	t.buf = nil
	return nil
}

// header accessors

func (t *Table) rawMaxslots() int32  { return int32(binary.BigEndian.Uint32(t.buf[0:4])) }
func (t *Table) rawUsedslots() int32 { return int32(binary.BigEndian.Uint32(t.buf[4:8])) }
func (t *Table) rawNum() int32       { return int32(binary.BigEndian.Uint32(t.buf[8:12])) }

func (t *Table) setMaxslots(v int32)  { binary.BigEndian.PutUint32(t.buf[0:4], uint32(v)) }
func (t *Table) setUsedslots(v int32) { binary.BigEndian.PutUint32(t.buf[4:8], uint32(v)) }
func (t *Table) setNum(v int32)       { binary.BigEndian.PutUint32(t.buf[8:12], uint32(v)) }

func (t *Table) usedslots() int     { return int(t.rawUsedslots()) }
func (t *Table) num() int           { return int(t.rawNum()) }
func (t *Table) incUsedslots(d int) { t.setUsedslots(t.rawUsedslots() + int32(d)) }
func (t *Table) incNum(d int)       { t.setNum(t.rawNum() + int32(d)) }

// Size returns the number of distinct keys (num), the number of occupied
// slots including spill fragments (usedslots), and the fixed slot
// capacity (maxslots).
func (t *Table) Size() (num, usedslots, maxslots int) {
	return t.num(), t.usedslots(), t.maxslots
}

// Clear empties the table: usedslots and num are reset to zero and the
// whole slot array is zeroed. maxslots is preserved.
func (t *Table) Clear() {
	t.setUsedslots(0)
	t.setNum(0)
	for i := 0; i < t.maxslots; i++ {
		t.slot(i).zero()
	}
}

// MaxSlots returns the region's fixed slot capacity.
func (t *Table) MaxSlots() int { return t.maxslots }

// Layout returns the layout this Table was opened with.
func (t *Table) Layout() Layout { return t.layout }

func wrap(i, n int) int {
	if i >= n {
		return i % n
	}
	if i < 0 {
		return ((i % n) + n) % n
	}
	return i
}
