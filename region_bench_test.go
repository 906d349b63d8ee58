package region_test

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/theflywheel/region"
)

// BenchmarkTenThousandKeys evaluates insertion and lookup performance with
// ten thousand numeric keys, reporting the same three rates
// theflywheel-phash's scale benchmark tracked (insertion, random lookup,
// sequential lookup), adapted from a file-backed PersistentHash to an
// in-memory region.Table.
func BenchmarkTenThousandKeys(b *testing.B) {
	b.Logf("BenchmarkTenThousandKeys started, b.N = %d", b.N)
	b.N = 1
	b.ResetTimer()
	b.StopTimer()

	layout := region.Layout{KeySize: 8, ValueSize: 8}
	numKeys := 10_000
	progressInterval := 1_000

	buf := make([]byte, layout.RegionBytes(numKeys*2))
	tbl, err := region.Open(buf, len(buf), layout)
	if err != nil {
		b.Fatalf("Open failed: %v", err)
	}
	defer tbl.Close()

	runtime.GC()

	b.Logf("starting insertion of %d keys", numKeys)
	b.StartTimer()
	writeStart := time.Now()

	key := make([]byte, 8)
	value := make([]byte, 8)

	for i := 0; i < numKeys; i++ {
		binary.BigEndian.PutUint64(key, uint64(i))
		binary.BigEndian.PutUint64(value, uint64(i))

		if err := tbl.Put(key, value); err != nil {
			b.Fatalf("Put key %d failed: %v", i, err)
		}

		if (i+1)%progressInterval == 0 {
			b.StopTimer()
			elapsed := time.Since(writeStart)
			b.Logf("inserted %d keys (%.2f keys/sec)", i+1, float64(i+1)/elapsed.Seconds())
			b.StartTimer()
		}
	}

	b.StopTimer()
	writeTime := time.Since(writeStart)
	b.Logf("insertion: %v (%.2f keys/sec)", writeTime, float64(numKeys)/writeTime.Seconds())

	randomSampleSize := 1_000
	b.StartTimer()
	randomReadStart := time.Now()

	for i := 0; i < randomSampleSize; i++ {
		keyID := (i*31 + 17) % numKeys
		binary.BigEndian.PutUint64(key, uint64(keyID))

		val, err := tbl.Get(key)
		if err != nil {
			b.Fatalf("random key %d not found: %v", keyID, err)
		}
		if got := binary.BigEndian.Uint64(val); got != uint64(keyID) {
			b.Fatalf("value mismatch for random key %d: expected %d, got %d", keyID, keyID, got)
		}
	}

	b.StopTimer()
	randomReadTime := time.Since(randomReadStart)
	b.Logf("random lookups: %v (%.2f lookups/sec)", randomReadTime, float64(randomSampleSize)/randomReadTime.Seconds())

	b.StartTimer()
	seqReadStart := time.Now()

	for i := 0; i < numKeys; i++ {
		binary.BigEndian.PutUint64(key, uint64(i))
		val, err := tbl.Get(key)
		if err != nil {
			b.Fatalf("key %d not found: %v", i, err)
		}
		if got := binary.BigEndian.Uint64(val); got != uint64(i) {
			b.Fatalf("value mismatch for key %d: expected %d, got %d", i, i, got)
		}
	}

	b.StopTimer()
	seqReadTime := time.Since(seqReadStart)
	b.Logf("sequential lookups: %v (%.2f lookups/sec)", seqReadTime, float64(numKeys)/seqReadTime.Seconds())

	num, used, maxslots := tbl.Size()
	fmt.Printf("final: num=%d usedslots=%d maxslots=%d\n", num, used, maxslots)
}
