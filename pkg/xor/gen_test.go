package xor

import (
	"encoding/base64"
	"testing"

	"github.com/saylorsolutions/tablecrypt/pkg/mt"
	"github.com/stretchr/testify/assert"
)

func TestDeriveKey(t *testing.T) {
	key := DeriveKey("itemPrice", 32)
	assert.Len(t, key, 32)
	assert.Equal(t, key, DeriveKey("itemPrice", 32), "Keys should be reproducible")
	assert.Equal(t, mt.New(HashString("itemPrice", 0)).Bytes(32), key)
	assert.NotEqual(t, key, DeriveKey("itemPrices", 32))
	assert.NotEqual(t, key, DeriveKey("ItemPrice", 32))
	assert.Equal(t, key[:4], DeriveKey("itemPrice", 4), "Shorter keys should be a prefix of longer ones")
	assert.Empty(t, DeriveKey("itemPrice", 0))
}

func TestPassword(t *testing.T) {
	pass := Password("TableBundle")
	assert.Len(t, pass, 20)
	raw, err := base64.StdEncoding.DecodeString(pass)
	assert.NoError(t, err)
	assert.Equal(t, DeriveKey("TableBundle", PasswordKeyLength), raw)
	assert.Equal(t, pass, Password("TableBundle"))
}
