package table

import (
	"encoding/binary"
	"math"

	"github.com/saylorsolutions/tablecrypt/pkg/xor"
)

// screenWidth screens the low width bytes of bits, in little endian order.
func screenWidth(bits uint64, width int, key []byte) (uint64, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], bits)
	out, err := xor.Apply(buf[:width], key)
	if err != nil {
		return 0, err
	}
	var full [8]byte
	copy(full[:], out)
	return binary.LittleEndian.Uint64(full[:]), nil
}

func ConvertInt8(value int8, key []byte) (int8, error) {
	out, err := screenWidth(uint64(value), 1, key)
	return int8(out), err
}

func ConvertInt16(value int16, key []byte) (int16, error) {
	out, err := screenWidth(uint64(value), 2, key)
	return int16(out), err
}

func ConvertInt32(value int32, key []byte) (int32, error) {
	out, err := screenWidth(uint64(value), 4, key)
	return int32(out), err
}

func ConvertInt64(value int64, key []byte) (int64, error) {
	out, err := screenWidth(uint64(value), 8, key)
	return int64(out), err
}

func ConvertUint8(value uint8, key []byte) (uint8, error) {
	out, err := screenWidth(uint64(value), 1, key)
	return uint8(out), err
}

func ConvertUint16(value uint16, key []byte) (uint16, error) {
	out, err := screenWidth(uint64(value), 2, key)
	return uint16(out), err
}

func ConvertUint32(value uint32, key []byte) (uint32, error) {
	out, err := screenWidth(uint64(value), 4, key)
	return uint32(out), err
}

func ConvertUint64(value uint64, key []byte) (uint64, error) {
	return screenWidth(value, 8, key)
}

// ConvertFloat unscreens the bit pattern of value as an int32 and scales the result by 0.00001.
func ConvertFloat(value float32, key []byte) (float32, error) {
	out, err := ConvertInt32(int32(math.Float32bits(value)), key)
	if err != nil {
		return 0, err
	}
	return float32(out) * 0.00001, nil
}

// ConvertDouble unscreens the bit pattern of value as an int64 and scales the result by 0.00001.
func ConvertDouble(value float64, key []byte) (float64, error) {
	out, err := ConvertInt64(int64(math.Float64bits(value)), key)
	if err != nil {
		return 0, err
	}
	return float64(out) * 0.00001, nil
}

// EncryptFloat rounds value*100000 to an int32 and screens it.
// The bit pattern of the screened integer is returned as a float32, without scaling.
// Its result is not comparable to ConvertFloat over the same input.
func EncryptFloat(value float32, key []byte) (float32, error) {
	out, err := ConvertInt32(int32(math.Round(float64(value)*100000)), key)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(out)), nil
}

// EncryptDouble rounds value*100000 to an int64 and screens it.
// The bit pattern of the screened integer is returned as a float64, without scaling.
func EncryptDouble(value float64, key []byte) (float64, error) {
	out, err := ConvertInt64(int64(math.Round(value*100000)), key)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(out)), nil
}

// ConvertBytes screens a raw byte buffer.
func ConvertBytes(data []byte, key []byte) ([]byte, error) {
	return xor.Apply(data, key)
}
