// Package regiondebug renders a read-only, slot-by-slot view of a region
// table for troubleshooting. spec.md explicitly names debug
// pretty-printing as out of scope for the core's contract but still part
// of a complete implementation's external collaborators, the same way
// theflywheel-phash's example program reports progress with fmt.Printf
// rather than structured logging.
package regiondebug

import (
	"fmt"
	"io"

	"github.com/theflywheel/region"
)

// Dump writes one line per occupied slot (skipping empties) plus a
// trailing summary line, in the style of theflywheel-phash's
// fmt.Printf-based progress reports.
func Dump(w io.Writer, t *region.Table) {
	num, used, maxslots := t.Size()

	for i := 0; i < maxslots; i++ {
		info := t.DebugSlot(i)
		if info.Count == 0 {
			continue
		}

		switch {
		case info.Count > 0:
			fmt.Fprintf(w, "slot %d: head count=%d link=%d size=%d\n", i, info.Count, info.Link, info.Size)
		case info.Count == -1:
			fmt.Fprintf(w, "slot %d: member home=%d link=%d size=%d\n", i, info.Hash, info.Link, info.Size)
		case info.Count == -2:
			fmt.Fprintf(w, "slot %d: spill prev=%d next=%d size=%d\n", i, info.Hash, info.Link, info.Size)
		}
	}

	fmt.Fprintf(w, "summary: num=%d usedslots=%d maxslots=%d\n", num, used, maxslots)
}
