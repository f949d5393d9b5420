package table

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/saylorsolutions/tablecrypt/pkg/xor"
)

// KeyDeriver produces a key of the given length for a field name.
type KeyDeriver = func(name string, length int) []byte

// CodecOpt operates on a Codec in NewCodec.
// If any CodecOpt returns an error, then construction stops and the error is returned.
type CodecOpt = func(codec *Codec) error

// WithKeyDeriver replaces xor.DeriveKey as the source of keys.
func WithKeyDeriver(derive KeyDeriver) CodecOpt {
	return func(codec *Codec) error {
		if derive == nil {
			return errors.New("nil key deriver")
		}
		codec.derive = derive
		return nil
	}
}

// Codec screens Value instances, deriving a key from the field name that matches the encoded length of each value.
type Codec struct {
	derive KeyDeriver
}

func NewCodec(opts ...CodecOpt) (*Codec, error) {
	codec := &Codec{
		derive: xor.DeriveKey,
	}
	for _, opt := range opts {
		if err := opt(codec); err != nil {
			return nil, err
		}
	}
	return codec, nil
}

func (c *Codec) key(name string, length int) []byte {
	return c.derive(name, length)
}

// screenInt handles the kinds that are screened the same way in both directions.
func (c *Codec) screenInt(name string, value Value) (Value, bool, error) {
	switch v := value.(type) {
	case Int8:
		out, err := ConvertInt8(int8(v), c.key(name, 1))
		return Int8(out), true, err
	case Int16:
		out, err := ConvertInt16(int16(v), c.key(name, 2))
		return Int16(out), true, err
	case Int32:
		out, err := ConvertInt32(int32(v), c.key(name, 4))
		return Int32(out), true, err
	case Int64:
		out, err := ConvertInt64(int64(v), c.key(name, 8))
		return Int64(out), true, err
	case Uint8:
		out, err := ConvertUint8(uint8(v), c.key(name, 1))
		return Uint8(out), true, err
	case Uint16:
		out, err := ConvertUint16(uint16(v), c.key(name, 2))
		return Uint16(out), true, err
	case Uint32:
		out, err := ConvertUint32(uint32(v), c.key(name, 4))
		return Uint32(out), true, err
	case Uint64:
		out, err := ConvertUint64(uint64(v), c.key(name, 8))
		return Uint64(out), true, err
	case Bytes:
		out, err := ConvertBytes(v, c.key(name, len(v)))
		return Bytes(out), true, err
	}
	return nil, false, nil
}

// Encrypt screens a plain value for storage under the field name.
// Strings are returned as Base64 (String) or hex (HexString) envelopes, and floats take the EncryptFloat path.
func (c *Codec) Encrypt(name string, value Value) (Value, error) {
	if out, ok, err := c.screenInt(name, value); ok {
		return out, err
	}
	switch v := value.(type) {
	case Float32:
		out, err := EncryptFloat(float32(v), c.key(name, 4))
		return Float32(out), err
	case Float64:
		out, err := EncryptDouble(float64(v), c.key(name, 8))
		return Float64(out), err
	case String:
		return c.encryptString(name, string(v), base64.StdEncoding.EncodeToString, func(s string) Value { return String(s) })
	case HexString:
		return c.encryptString(name, string(v), hex.EncodeToString, func(s string) Value { return HexString(s) })
	}
	return nil, unsupported(value)
}

func (c *Codec) encryptString(name, value string, encode func([]byte) string, wrap func(string) Value) (Value, error) {
	if len(value) == 0 {
		return wrap(""), nil
	}
	raw, err := encodeUTF16(value)
	if err != nil {
		return nil, err
	}
	out, err := xor.Apply(raw, c.key(name, len(raw)))
	if err != nil {
		return nil, err
	}
	return wrap(encode(out)), nil
}

// Convert unscreens a stored value under the field name.
// Strings are expected to be Base64 (String) or hex (HexString) envelopes, and floats take the ConvertFloat path.
func (c *Codec) Convert(name string, value Value) (Value, error) {
	if out, ok, err := c.screenInt(name, value); ok {
		return out, err
	}
	switch v := value.(type) {
	case Float32:
		out, err := ConvertFloat(float32(v), c.key(name, 4))
		return Float32(out), err
	case Float64:
		out, err := ConvertDouble(float64(v), c.key(name, 8))
		return Float64(out), err
	case String:
		if len(v) == 0 {
			return String(""), nil
		}
		env := DetectEnvelope([]byte(v))
		if _, ok := env.(RawBytes); ok {
			return nil, fmt.Errorf("%w: field '%s' is not a Base64 envelope", ErrInvalidArgument, name)
		}
		out, err := unscreenEnvelope(env, c.key(name, len(env.Payload())))
		return String(out), err
	case HexString:
		if len(v) == 0 {
			return HexString(""), nil
		}
		raw, err := hex.DecodeString(string(v))
		if err != nil {
			return nil, fmt.Errorf("%w: field '%s' is not a hex envelope: %v", ErrInvalidArgument, name, err)
		}
		out, err := DecryptHexString(string(v), c.key(name, len(raw)))
		return HexString(out), err
	}
	return nil, unsupported(value)
}

// ConvertStringData unscreens stored string data that may or may not be Base64, see ConvertString.
func (c *Codec) ConvertStringData(name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	env := DetectEnvelope(data)
	return unscreenEnvelope(env, c.key(name, len(env.Payload())))
}

func unsupported(value Value) error {
	if value == nil {
		return fmt.Errorf("%w: nil value", ErrInvalidArgument)
	}
	return fmt.Errorf("%w: unsupported value kind %s", ErrInvalidArgument, value.Kind())
}
