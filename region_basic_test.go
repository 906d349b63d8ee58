package region_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theflywheel/region"
)

func newTable(t *testing.T, maxslots int) *region.Table {
	t.Helper()
	layout := region.Layout{KeySize: 16, ValueSize: 16}
	buf := make([]byte, layout.RegionBytes(maxslots))
	tbl, err := region.Open(buf, len(buf), layout)
	require.NoError(t, err)
	return tbl
}

func TestBasicOperations(t *testing.T) {
	tbl := newTable(t, 10)
	defer tbl.Close()

	require.NoError(t, tbl.Put([]byte("e1"), []byte("a")))
	require.NoError(t, tbl.Put([]byte("e2"), []byte("b")))
	require.NoError(t, tbl.Put([]byte("e3"), []byte("c")))

	num, _, _ := tbl.Size()
	require.Equal(t, 3, num)

	val, err := tbl.Get([]byte("e2"))
	if err != nil {
		t.Fatalf("Get e2 failed: %v", err)
	}
	if !bytes.Equal(val, []byte("b")) {
		t.Errorf("expected value %q, got %q", "b", val)
	}
}

func TestRoundTrip(t *testing.T) {
	tbl := newTable(t, 64)
	defer tbl.Close()

	for i := 0; i < 10; i++ {
		key := []byte{byte('a' + i)}
		value := []byte{byte(i), byte(i + 1), byte(i + 2)}
		if err := tbl.Put(key, value); err != nil {
			t.Fatalf("Put key %d failed: %v", i, err)
		}
	}

	for i := 0; i < 10; i++ {
		key := []byte{byte('a' + i)}
		expected := []byte{byte(i), byte(i + 1), byte(i + 2)}

		value, err := tbl.Get(key)
		if err != nil {
			t.Fatalf("Get key %d failed: %v", i, err)
		}
		if !bytes.Equal(value, expected) {
			t.Errorf("value mismatch for key %d: expected %v, got %v", i, expected, value)
		}
	}
}

func TestLastWriteWins(t *testing.T) {
	tbl := newTable(t, 16)
	defer tbl.Close()

	key := []byte("k")
	if err := tbl.Put(key, []byte("v1")); err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	numBefore, _, _ := tbl.Size()

	if err := tbl.Put(key, []byte("v2")); err != nil {
		t.Fatalf("second put failed: %v", err)
	}
	numAfter, _, _ := tbl.Size()

	if numBefore != numAfter {
		t.Fatalf("expected num unchanged by overwrite: before %d, after %d", numBefore, numAfter)
	}

	val, err := tbl.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(val, []byte("v2")) {
		t.Errorf("expected v2, got %q", val)
	}
}

func TestRemoveThenMiss(t *testing.T) {
	tbl := newTable(t, 16)
	defer tbl.Close()

	key := []byte("gone")
	if err := tbl.Put(key, []byte("value")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	numBefore, _, _ := tbl.Size()

	if err := tbl.Remove(key); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	numAfter, _, _ := tbl.Size()

	if numAfter != numBefore-1 {
		t.Fatalf("expected num to drop by one: before %d, after %d", numBefore, numAfter)
	}

	if _, err := tbl.Get(key); err != region.ErrNotFound {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestInvalidInputs(t *testing.T) {
	tbl := newTable(t, 8)
	defer tbl.Close()

	if err := tbl.Put(nil, []byte("x")); err == nil {
		t.Error("expected error for empty key, got nil")
	}
	if _, err := tbl.Get(nil); err == nil {
		t.Error("expected error for empty key on Get, got nil")
	}
	if err := tbl.Remove(nil); err == nil {
		t.Error("expected error for empty key on Remove, got nil")
	}
}

func TestFullTable(t *testing.T) {
	tbl := newTable(t, 3)
	defer tbl.Close()

	for i := 0; i < 3; i++ {
		key := []byte{byte('a' + i)}
		if err := tbl.Put(key, []byte{byte(i)}); err != nil {
			t.Fatalf("Put %d failed: %v", i, err)
		}
	}

	numBefore, usedBefore, maxBefore := tbl.Size()

	err := tbl.Put([]byte("d"), []byte{9})
	if err != region.ErrNoSpace {
		t.Fatalf("expected ErrNoSpace on full table, got %v", err)
	}

	numAfter, usedAfter, maxAfter := tbl.Size()
	if numBefore != numAfter || usedBefore != usedAfter || maxBefore != maxAfter {
		t.Fatalf("expected counters unchanged after failed put: before (%d,%d,%d) after (%d,%d,%d)",
			numBefore, usedBefore, maxBefore, numAfter, usedAfter, maxAfter)
	}
}

func TestReattach(t *testing.T) {
	layout := region.Layout{KeySize: 8, ValueSize: 8}
	buf := make([]byte, layout.RegionBytes(32))

	t1, err := region.Open(buf, len(buf), layout)
	if err != nil {
		t.Fatalf("initial Open failed: %v", err)
	}
	if err := t1.Put([]byte("x"), []byte("y")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := t1.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	t2, err := region.Open(buf, 0, layout)
	if err != nil {
		t.Fatalf("reattach Open failed: %v", err)
	}
	defer t2.Close()

	val, err := t2.Get([]byte("x"))
	if err != nil {
		t.Fatalf("Get after reattach failed: %v", err)
	}
	if !bytes.Equal(val, []byte("y")) {
		t.Errorf("expected y, got %q", val)
	}
}

func TestClear(t *testing.T) {
	tbl := newTable(t, 16)
	defer tbl.Close()

	for i := 0; i < 5; i++ {
		if err := tbl.Put([]byte{byte('a' + i)}, []byte{byte(i)}); err != nil {
			t.Fatalf("Put %d failed: %v", i, err)
		}
	}

	tbl.Clear()

	num, used, maxslots := tbl.Size()
	if num != 0 || used != 0 {
		t.Fatalf("expected num and usedslots zero after Clear, got num=%d used=%d", num, used)
	}
	if maxslots != 16 {
		t.Fatalf("expected maxslots preserved at 16, got %d", maxslots)
	}

	if _, err := tbl.Get([]byte("a")); err != region.ErrNotFound {
		t.Fatalf("expected ErrNotFound after Clear, got %v", err)
	}
}
