package table

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/saylorsolutions/tablecrypt/pkg/xor"
	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func encodeUTF16(s string) ([]byte, error) {
	out, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode UTF-16: %w", err)
	}
	return out, nil
}

func decodeUTF16(data []byte) (string, error) {
	out, err := utf16le.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode UTF-16: %w", err)
	}
	return string(out), nil
}

// Envelope is the result of inspecting stored string data, either WellFormedBase64 or RawBytes.
type Envelope interface {
	// Payload returns the bytes to be unscreened.
	Payload() []byte
	envelope()
}

// WellFormedBase64 holds the decoded payload of valid Base64 input.
type WellFormedBase64 []byte

// RawBytes holds input that isn't valid Base64.
type RawBytes []byte

func (e WellFormedBase64) Payload() []byte { return e }
func (e RawBytes) Payload() []byte         { return e }
func (WellFormedBase64) envelope()         {}
func (RawBytes) envelope()                 {}

// DetectEnvelope checks whether data is standard, padded Base64.
func DetectEnvelope(data []byte) Envelope {
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(decoded, data)
	if err != nil {
		return RawBytes(data)
	}
	return WellFormedBase64(decoded[:n])
}

func unscreenEnvelope(env Envelope, key []byte) (string, error) {
	out, err := xor.Apply(env.Payload(), key)
	if err != nil {
		return "", err
	}
	switch env.(type) {
	case WellFormedBase64:
		return decodeUTF16(out)
	case RawBytes:
		return unicode.UTF8.NewDecoder().String(string(out))
	default:
		return "", fmt.Errorf("%w: unknown envelope %T", ErrInvalidArgument, env)
	}
}

// ConvertString unscreens stored string data.
// Valid Base64 is decoded, unscreened, and read as UTF-16LE.
// Anything else is unscreened as-is and read as UTF-8.
func ConvertString(data []byte, key []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	return unscreenEnvelope(DetectEnvelope(data), key)
}

// ConvertBase64String unscreens a Base64 envelope.
// Unlike ConvertString, there's no raw byte fallback for a string, so invalid Base64 is an error.
func ConvertBase64String(value string, key []byte) (string, error) {
	if len(value) == 0 {
		return "", nil
	}
	env := DetectEnvelope([]byte(value))
	if _, ok := env.(RawBytes); ok {
		return "", fmt.Errorf("%w: input is neither Base64 nor a byte buffer", ErrInvalidArgument)
	}
	return unscreenEnvelope(env, key)
}

// EncryptBase64String screens the UTF-16LE bytes of value and wraps them in a Base64 envelope.
func EncryptBase64String(value string, key []byte) (string, error) {
	if len(value) == 0 {
		return "", nil
	}
	raw, err := encodeUTF16(value)
	if err != nil {
		return "", err
	}
	out, err := xor.Apply(raw, key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// EncryptHexString screens the UTF-16LE bytes of value and encodes them as lowercase hex.
func EncryptHexString(value string, key []byte) (string, error) {
	if len(value) == 0 {
		return "", nil
	}
	raw, err := encodeUTF16(value)
	if err != nil {
		return "", err
	}
	out, err := xor.Apply(raw, key)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(out), nil
}

// DecryptHexString reverses EncryptHexString.
func DecryptHexString(value string, key []byte) (string, error) {
	if len(value) == 0 {
		return "", nil
	}
	raw, err := hex.DecodeString(value)
	if err != nil {
		return "", fmt.Errorf("%w: invalid hex envelope: %v", ErrInvalidArgument, err)
	}
	out, err := xor.Apply(raw, key)
	if err != nil {
		return "", err
	}
	return decodeUTF16(out)
}
