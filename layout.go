package region

import (
	"crypto/md5"
	"fmt"
)

// headerFieldSize is the encoded width of each of the header's three signed
// counters. There is no magic number or version field: compatibility between
// processes attaching the same region is by build identity, not by a stamp
// in the bytes (spec's "EXTERNAL INTERFACES / Region layout (ABI)").
const headerFieldSize = 4

// headerSize is the fixed byte width of the region header: maxslots,
// usedslots, num, each a signed 32-bit counter.
const headerSize = 3 * headerFieldSize

// slotFixedSize is the byte width of a slot's four fixed-width fields
// (count, hash, link, size), each a signed 32-bit integer, ahead of the
// variable-layout body.
const slotFixedSize = 4 * headerFieldSize

// Layout pins the inline key width K and head value width V that every
// process attaching a region must agree on. These are compile-time
// constants of the region in spec terms; here they travel with the Go
// value passed to Open, since the header itself carries no room for them.
type Layout struct {
	// KeySize is K, the number of inline key bytes stored in a head or
	// collision-member slot.
	KeySize int

	// ValueSize is V, the number of value bytes stored inline in a head or
	// collision-member slot before spilling.
	ValueSize int
}

// DefaultLayout matches the sizes theflywheel-phash's examples use for
// small fixed-width keys and values, scaled up to accommodate the
// truncated-key digest this design adds.
var DefaultLayout = Layout{KeySize: 32, ValueSize: 64}

func (l Layout) validate() error {
	if l.KeySize <= 0 {
		return fmt.Errorf("region: key size must be positive: %w", ErrInvalidArg)
	}
	if l.ValueSize <= 0 {
		return fmt.Errorf("region: value size must be positive: %w", ErrInvalidArg)
	}
	return nil
}

// bodySize is the byte width shared by both body overlays described in
// spec's "Slot record": the key/value record (key[K] + keymd5[16] +
// keylen[4] + value[V]) and the spill record (value[V']). Pinning V' to
// this same width means a spill fragment's payload area is exactly the
// bytes a head/collision body would otherwise use, so both overlays occupy
// identical footprints without a union type.
func (l Layout) bodySize() int {
	return l.KeySize + md5.Size + headerFieldSize + l.ValueSize
}

// SpillValueSize is V', the number of continuation bytes a spill fragment
// carries.
func (l Layout) SpillValueSize() int {
	return l.bodySize()
}

// SlotSize is S, the fixed byte width of one slot record.
func (l Layout) SlotSize() int {
	return slotFixedSize + l.bodySize()
}

// HeaderSize returns the fixed header byte width.
func (l Layout) HeaderSize() int {
	return headerSize
}

// RegionBytes computes region_bytes(maxslots): the total byte count a
// region must have to host exactly maxslots slots under this layout.
func (l Layout) RegionBytes(maxslots int) int {
	return l.HeaderSize() + l.SlotSize()*maxslots
}

// MaxSlotsFor computes how many slots fit in a region of the given byte
// count: floor((bytes - header_size) / slot_size).
func (l Layout) MaxSlotsFor(bytes int) int {
	avail := bytes - l.HeaderSize()
	if avail < 0 {
		return 0
	}
	return avail / l.SlotSize()
}

// key/value body field offsets within a slot's body region, relative to
// the start of the body (i.e. after the four fixed fields).
func (l Layout) keyOffset() int    { return 0 }
func (l Layout) md5Offset() int    { return l.KeySize }
func (l Layout) keylenOffset() int { return l.KeySize + md5.Size }
func (l Layout) valueOffset() int  { return l.KeySize + md5.Size + headerFieldSize }
