package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string. The intern table uses it to
// bucket string values so lookups compare hashes before full string contents.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
