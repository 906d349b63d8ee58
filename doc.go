/*
Package region implements a fixed-capacity, in-place hash table that lives
entirely inside a caller-supplied contiguous byte range. Because that
range may be a shared-memory segment or a memory-mapped file, the table
stores no out-of-region pointers: every link between elements — a
collision chain, a spill chain — is a slot index, so the identical bytes
can be reattached by a second process, or the same process at a different
base address, and behave identically.

Basic usage:

	import "github.com/theflywheel/region"

	buf := make([]byte, region.DefaultLayout.RegionBytes(1024))
	t, err := region.Open(buf, len(buf), region.DefaultLayout)
	if err != nil {
		log.Fatal(err)
	}
	defer t.Close()

	if err := t.Put([]byte("e1"), []byte("a")); err != nil {
		log.Fatal(err)
	}

	val, err := t.Get([]byte("e1"))
	if err == nil {
		fmt.Println("value:", string(val))
	}

Reattaching an already-initialized region (a second process mapping the
same file, or the same process reopening it) passes a byte count of zero:

	t2, err := region.Open(buf, 0, region.DefaultLayout)

Features:

  - Fixed inline key/value widths chosen at Open time via Layout
  - Open addressing with linear probing and wrap-around
  - In-place collision chaining by counter on the home slot
  - Multi-slot spill chains for values larger than the inline value width
  - Home-slot eviction so a key's home slot is never left squatted
  - Truncated-key comparison backed by an MD5 digest for keys longer than K

Implementation details:

The region consists of a fixed header (three signed 32-bit counters:
maxslots, usedslots, num) followed by a dense array of maxslots fixed-size
slot records. Each slot's signed count field tags it as empty (0), the
head of a chain (+N, the number of elements sharing this home), a
collision member (-1), or a spill fragment (-2). There is no
version/magic field in the header: compatibility between processes
attaching the same region is by build identity, not by a stamp in the
bytes.

A Table performs no synchronization of its own: callers that share a
region across goroutines or processes must serialize writers externally.
*/
package region
