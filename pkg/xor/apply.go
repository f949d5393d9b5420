package xor

import (
	"errors"
)

var (
	ErrEmptyKey = errors.New("cannot use empty key")
)

// Apply will XOR data with key, returning a new slice.
//
// Data longer than the key is processed in chunks of len(key), with each chunk restarting at the first byte of key.
// Data shorter than the key, including the final partial chunk, uses the leading bytes of key.
// An empty key is only accepted for empty data.
func Apply(data, key []byte) ([]byte, error) {
	out := make([]byte, len(data))
	if len(data) == 0 {
		return out, nil
	}
	scr, err := newXorScreen(key)
	if err != nil {
		return nil, err
	}
	for start := 0; start < len(data); start += len(key) {
		end := min(start+len(key), len(data))
		scr.reset()
		for i := start; i < end; i++ {
			out[i] = scr.screen(data[i])
		}
	}
	return out, nil
}

// Screen will XOR data with a key derived from name with the same length as data.
// Screening the result with the same name restores the original data.
func Screen(name string, data []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	out, _ := Apply(data, DeriveKey(name, len(data)))
	return out
}
