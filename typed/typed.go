// Package typed provides thin convenience adapters (string, formatted
// string, decimal-encoded int64) over region's byte-oriented Table, the
// way spec.md describes them: conveniences, not part of the core's
// byte-oriented contract.
package typed

import (
	"fmt"
	"strconv"

	"github.com/theflywheel/region"
)

// PutString stores value under key.
func PutString(t *region.Table, key, value string) error {
	return t.Put([]byte(key), []byte(value))
}

// GetString retrieves the string stored under key.
func GetString(t *region.Table, key string) (string, error) {
	v, err := t.Get([]byte(key))
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// PutInt64 stores v under key, encoded as decimal text with a terminating
// NUL byte, matching the encoding spec.md names for the int64 adapter.
func PutInt64(t *region.Table, key string, v int64) error {
	text := strconv.FormatInt(v, 10)
	buf := make([]byte, len(text)+1)
	copy(buf, text)
	return t.Put([]byte(key), buf)
}

// GetInt64 retrieves and decodes the int64 stored under key.
func GetInt64(t *region.Table, key string) (int64, error) {
	v, err := t.Get([]byte(key))
	if err != nil {
		return 0, err
	}
	if n := len(v); n > 0 && v[n-1] == 0 {
		v = v[:n-1]
	}
	return strconv.ParseInt(string(v), 10, 64)
}

// PutFmt stores the formatted string produced by format/args under key.
func PutFmt(t *region.Table, key, format string, args ...interface{}) error {
	return PutString(t, key, fmt.Sprintf(format, args...))
}
