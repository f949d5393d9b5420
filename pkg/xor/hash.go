package xor

import (
	"github.com/OneOfOne/xxhash"
)

// HashString calculates the xxHash32 of the UTF-8 bytes of s with the given seed.
// A failure inside the hash function results in 0 rather than an error.
func HashString(s string, seed uint32) (sum uint32) {
	defer func() {
		if r := recover(); r != nil {
			sum = 0
		}
	}()
	return xxhash.ChecksumString32S(s, seed)
}

// Hash calculates the xxHash32 of data with the given seed.
// A failure inside the hash function results in 0 rather than an error.
func Hash(data []byte, seed uint32) (sum uint32) {
	defer func() {
		if r := recover(); r != nil {
			sum = 0
		}
	}()
	return xxhash.Checksum32S(data, seed)
}
