package table

// Value is one of the supported table value types:
// Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Float32, Float64, String, HexString, or Bytes.
type Value interface {
	Kind() Kind
	tableValue()
}

type (
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Float32 float32
	Float64 float64
	// String is plain text when encrypting, and a Base64 envelope when converting.
	String string
	// HexString is plain text when encrypting, and a hex envelope when converting.
	HexString string
	Bytes     []byte
)

func (Int8) Kind() Kind      { return KindInt8 }
func (Int16) Kind() Kind     { return KindInt16 }
func (Int32) Kind() Kind     { return KindInt32 }
func (Int64) Kind() Kind     { return KindInt64 }
func (Uint8) Kind() Kind     { return KindUint8 }
func (Uint16) Kind() Kind    { return KindUint16 }
func (Uint32) Kind() Kind    { return KindUint32 }
func (Uint64) Kind() Kind    { return KindUint64 }
func (Float32) Kind() Kind   { return KindFloat32 }
func (Float64) Kind() Kind   { return KindFloat64 }
func (String) Kind() Kind    { return KindString }
func (HexString) Kind() Kind { return KindHexString }
func (Bytes) Kind() Kind     { return KindBytes }

func (Int8) tableValue()      {}
func (Int16) tableValue()     {}
func (Int32) tableValue()     {}
func (Int64) tableValue()     {}
func (Uint8) tableValue()     {}
func (Uint16) tableValue()    {}
func (Uint32) tableValue()    {}
func (Uint64) tableValue()    {}
func (Float32) tableValue()   {}
func (Float64) tableValue()   {}
func (String) tableValue()    {}
func (HexString) tableValue() {}
func (Bytes) tableValue()     {}
