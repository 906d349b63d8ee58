// Package mmapregion is the example backing-store collaborator that
// spec.md deliberately keeps out of the core: allocating and attaching the
// memory a region.Table runs over. It materializes a file of the
// requested size and memory-maps it, so the same bytes survive process
// exit and can be reattached later with region.Open(buf, 0, layout).
package mmapregion

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/natefinch/atomic"
	"golang.org/x/sys/unix"
)

var logger = log.New(os.Stderr, "mmapregion: ", log.LstdFlags)

// Region owns a memory-mapped file backing a region.Table.
type Region struct {
	file *os.File
	data []byte
	path string
}

// Create materializes a new zero-filled file of exactly size bytes at
// path and maps it. The file is written with natefinch/atomic so a crash
// mid-creation never leaves a partially-written file at path — the same
// crash-safety theflywheel-phash's resize() got from its tmp-file-then-
// rename idiom, reused here for one-shot initial materialization instead.
func Create(path string, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmapregion: size must be positive, got %d", size)
	}

	logger.Printf("materializing %s (%d bytes)", path, size)
	if err := atomic.WriteFile(path, bytes.NewReader(make([]byte, size))); err != nil {
		return nil, fmt.Errorf("mmapregion: failed to materialize %s: %w", path, err)
	}

	return open(path, size)
}

// Open maps an existing file at path, sized by the file's current length.
func Open(path string) (*Region, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("mmapregion: failed to stat %s: %w", path, err)
	}
	logger.Printf("attaching %s (%d bytes)", path, info.Size())
	return open(path, int(info.Size()))
}

func open(path string, size int) (*Region, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("mmapregion: failed to open %s: %w", path, err)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmapregion: mmap failed for %s: %w", path, err)
	}

	return &Region{file: f, data: data, path: path}, nil
}

// Bytes returns the mapped byte slice backing the region.
func (r *Region) Bytes() []byte {
	return r.data
}

// Sync flushes mapped writes back to the file.
func (r *Region) Sync() error {
	return unix.Msync(r.data, unix.MS_SYNC)
}

// Close unmaps the region and closes the underlying file. It does not
// delete the file.
func (r *Region) Close() error {
	logger.Printf("detaching %s", r.path)
	if err := unix.Munmap(r.data); err != nil {
		return fmt.Errorf("mmapregion: munmap failed for %s: %w", r.path, err)
	}
	return r.file.Close()
}
