package xor

import (
	"encoding/base64"

	"github.com/saylorsolutions/tablecrypt/pkg/mt"
)

const (
	// DefaultKeyLength is used when there's no data length to match.
	DefaultKeyLength = 8
	// PasswordKeyLength is the number of key bytes encoded by Password.
	PasswordKeyLength = 15
)

// DeriveKey will generate a key with the given length from name.
// The same name and length always produce the same key.
func DeriveKey(name string, length int) []byte {
	if length <= 0 {
		return []byte{}
	}
	return mt.New(HashString(name, 0)).Bytes(length)
}

// Password generates a human-typable secret from name by Base64 encoding a 15 byte key.
func Password(name string) string {
	return base64.StdEncoding.EncodeToString(DeriveKey(name, PasswordKeyLength))
}
