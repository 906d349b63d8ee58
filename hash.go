package region

import (
	"crypto/md5"

	"github.com/spaolacci/murmur3"
)

// homeIndex computes the home slot for a key: murmur3_32(key) mod
// maxslots. This must be bit-for-bit reproducible by every process
// attaching the same region (spec's "Hash and home index"), which is why
// MurmurHash3-32 is pinned rather than left to a hash/maphash-style
// per-process seed.
func homeIndex(key []byte, maxslots int) int {
	h := murmur3.Sum32(key)
	return int(h % uint32(maxslots))
}

// keyDigest returns the MD5 digest of the full key, used to disambiguate
// keys longer than the inline key width K that share their first K bytes.
func keyDigest(key []byte) [md5.Size]byte {
	return md5.Sum(key)
}
