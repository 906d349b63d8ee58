package region

import "errors"

// Sentinel errors for the kinds surfaced to callers (SPEC_FULL.md "ERROR
// HANDLING DESIGN"). Callers distinguish kinds with errors.Is; wrapped
// variants still satisfy errors.Is against these values.
var (
	// ErrInvalidArg covers null/empty inputs and negative indices.
	ErrInvalidArg = errors.New("region: invalid argument")

	// ErrInvalidRegion means the supplied byte range is too small to host
	// even one slot.
	ErrInvalidRegion = errors.New("region: region too small for one slot")

	// ErrNoSpace means the probe ring is full or a spill chain ran out of
	// empty slots mid-write.
	ErrNoSpace = errors.New("region: no space left")

	// ErrNotFound means the key (or index) does not name a live element.
	ErrNotFound = errors.New("region: not found")

	// ErrOutOfMemory means allocating the result buffer for a read failed.
	ErrOutOfMemory = errors.New("region: out of memory")

	// ErrCorrupt means an internal invariant check failed — most likely
	// because two writers mutated the region without external
	// synchronization. Non-recoverable.
	ErrCorrupt = errors.New("region: corrupt")
)
