package table

import (
	"errors"
	"math"
	"testing"

	"github.com/saylorsolutions/tablecrypt/pkg/xor"
	"github.com/stretchr/testify/assert"
)

func TestConvertInt32_ItemPrice(t *testing.T) {
	screened, err := ConvertInt32(1500, xor.DeriveKey("itemPrice", 4))
	assert.NoError(t, err)
	assert.NotEqual(t, int32(1500), screened)

	restored, err := ConvertInt32(screened, xor.DeriveKey("itemPrice", 4))
	assert.NoError(t, err)
	assert.Equal(t, int32(1500), restored)
}

func TestConvertIntegers_Inverse(t *testing.T) {
	key := xor.DeriveKey("integers", 8)
	for _, v := range []int64{0, -1, 1, -1500, math.MinInt64, math.MaxInt64} {
		out, err := ConvertInt64(v, key)
		assert.NoError(t, err)
		out, err = ConvertInt64(out, key)
		assert.NoError(t, err)
		assert.Equal(t, v, out)
	}
	for _, v := range []int32{0, -1, math.MinInt32, math.MaxInt32} {
		out, err := ConvertInt32(v, key)
		assert.NoError(t, err)
		out, err = ConvertInt32(out, key)
		assert.NoError(t, err)
		assert.Equal(t, v, out)
	}
	for _, v := range []int16{0, -1, math.MinInt16, math.MaxInt16} {
		out, err := ConvertInt16(v, key)
		assert.NoError(t, err)
		out, err = ConvertInt16(out, key)
		assert.NoError(t, err)
		assert.Equal(t, v, out)
	}
	for _, v := range []int8{0, -1, math.MinInt8, math.MaxInt8} {
		out, err := ConvertInt8(v, key)
		assert.NoError(t, err)
		out, err = ConvertInt8(out, key)
		assert.NoError(t, err)
		assert.Equal(t, v, out)
	}
	for _, v := range []uint64{0, 1, math.MaxUint64} {
		out, err := ConvertUint64(v, key)
		assert.NoError(t, err)
		out, err = ConvertUint64(out, key)
		assert.NoError(t, err)
		assert.Equal(t, v, out)
	}
	for _, v := range []uint32{0, 1, math.MaxUint32} {
		out, err := ConvertUint32(v, key)
		assert.NoError(t, err)
		out, err = ConvertUint32(out, key)
		assert.NoError(t, err)
		assert.Equal(t, v, out)
	}
	for _, v := range []uint16{0, 1, math.MaxUint16} {
		out, err := ConvertUint16(v, key)
		assert.NoError(t, err)
		out, err = ConvertUint16(out, key)
		assert.NoError(t, err)
		assert.Equal(t, v, out)
	}
	for _, v := range []uint8{0, 1, math.MaxUint8} {
		out, err := ConvertUint8(v, key)
		assert.NoError(t, err)
		out, err = ConvertUint8(out, key)
		assert.NoError(t, err)
		assert.Equal(t, v, out)
	}
}

func TestConvertInt32_LittleEndian(t *testing.T) {
	out, err := ConvertInt32(0, []byte{0x01, 0x02, 0x03, 0x04})
	assert.NoError(t, err)
	assert.Equal(t, int32(0x04030201), out)

	out16, err := ConvertInt16(0, []byte{0xff, 0x7f})
	assert.NoError(t, err)
	assert.Equal(t, int16(math.MaxInt16), out16)
}

func TestConvertInt32_EmptyKey(t *testing.T) {
	_, err := ConvertInt32(1, nil)
	assert.True(t, errors.Is(err, xor.ErrEmptyKey))
}

func TestConvertFloat(t *testing.T) {
	key := xor.DeriveKey("moveSpeed", 4)
	screened, err := ConvertInt32(150000, key)
	assert.NoError(t, err)
	stored := math.Float32frombits(uint32(screened))

	out, err := ConvertFloat(stored, key)
	assert.NoError(t, err)
	assert.InDelta(t, 1.5, out, 0.00001)
}

func TestConvertDouble(t *testing.T) {
	key := xor.DeriveKey("moveSpeed", 8)
	screened, err := ConvertInt64(-250000, key)
	assert.NoError(t, err)
	stored := math.Float64frombits(uint64(screened))

	out, err := ConvertDouble(stored, key)
	assert.NoError(t, err)
	assert.InDelta(t, -2.5, out, 0.0000001)
}

func TestEncryptFloat(t *testing.T) {
	zeroKey := []byte{0, 0, 0, 0}
	out, err := EncryptFloat(1.5, zeroKey)
	assert.NoError(t, err)
	assert.Equal(t, uint32(150000), math.Float32bits(out), "Encrypted floats should carry the screened integer bits, without scaling")

	key := xor.DeriveKey("moveSpeed", 4)
	encrypted, err := EncryptFloat(1.5, key)
	assert.NoError(t, err)
	screened, err := ConvertInt32(150000, key)
	assert.NoError(t, err)
	assert.Equal(t, uint32(screened), math.Float32bits(encrypted))
}

func TestEncryptDouble(t *testing.T) {
	zeroKey := make([]byte, 8)
	out, err := EncryptDouble(2.5, zeroKey)
	assert.NoError(t, err)
	assert.Equal(t, uint64(250000), math.Float64bits(out))

	out, err = EncryptDouble(-2.5, zeroKey)
	assert.NoError(t, err)
	assert.Equal(t, int64(-250000), int64(math.Float64bits(out)))
}

func TestEncryptFloat_DiffersFromConvert(t *testing.T) {
	key := xor.DeriveKey("moveSpeed", 4)
	encrypted, err := EncryptFloat(1.5, key)
	assert.NoError(t, err)
	converted, err := ConvertFloat(1.5, key)
	assert.NoError(t, err)
	assert.NotEqual(t, math.Float32bits(encrypted), math.Float32bits(converted), "EncryptFloat and ConvertFloat are separate paths")

	key = xor.DeriveKey("moveSpeed", 8)
	encrypted64, err := EncryptDouble(1.5, key)
	assert.NoError(t, err)
	converted64, err := ConvertDouble(1.5, key)
	assert.NoError(t, err)
	assert.NotEqual(t, math.Float64bits(encrypted64), math.Float64bits(converted64))
}

func TestEncryptFloat_Rounds(t *testing.T) {
	zeroKey := []byte{0, 0, 0, 0}
	out, err := EncryptFloat(0.000019, zeroKey)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), int32(math.Float32bits(out)))

	out, err = EncryptFloat(-0.000019, zeroKey)
	assert.NoError(t, err)
	assert.Equal(t, int32(-2), int32(math.Float32bits(out)))

	out, err = EncryptFloat(0.000011, zeroKey)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), int32(math.Float32bits(out)))
}

func TestConvertBytes(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0xff}
	key := xor.DeriveKey("blob", len(data))
	out, err := ConvertBytes(data, key)
	assert.NoError(t, err)
	out, err = ConvertBytes(out, key)
	assert.NoError(t, err)
	assert.Equal(t, data, out)
}
