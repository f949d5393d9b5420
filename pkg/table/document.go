package table

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Document is a named set of table fields, read from and written to YAML.
//
//	table: ItemExcel
//	fields:
//	  - name: itemPrice
//	    kind: int32
//	    value: "1500"
type Document struct {
	Table  string  `yaml:"table"`
	Fields []Field `yaml:"fields"`
}

// Field is a single value in a Document, in its text form.
// Bytes are written as Base64 text.
type Field struct {
	Name  string `yaml:"name"`
	Kind  Kind   `yaml:"kind"`
	Value string `yaml:"value"`
}

// ReadDocument decodes a YAML Document from r.
func ReadDocument(r io.Reader) (*Document, error) {
	doc := new(Document)
	if err := yaml.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to read table document: %w", err)
	}
	return doc, nil
}

// Write encodes the Document as YAML to w.
func (d *Document) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to write table document: %w", err)
	}
	return enc.Close()
}

// Parse parses the Field text according to its Kind.
func (f Field) Parse() (Value, error) {
	return ParseValue(f.Kind, f.Value)
}

// ParseValue parses text as a Value of the given Kind.
func ParseValue(kind Kind, text string) (Value, error) {
	var (
		v   Value
		err error
	)
	switch kind {
	case KindInt8:
		var i int64
		i, err = strconv.ParseInt(text, 10, 8)
		v = Int8(i)
	case KindInt16:
		var i int64
		i, err = strconv.ParseInt(text, 10, 16)
		v = Int16(i)
	case KindInt32:
		var i int64
		i, err = strconv.ParseInt(text, 10, 32)
		v = Int32(i)
	case KindInt64:
		var i int64
		i, err = strconv.ParseInt(text, 10, 64)
		v = Int64(i)
	case KindUint8:
		var u uint64
		u, err = strconv.ParseUint(text, 10, 8)
		v = Uint8(u)
	case KindUint16:
		var u uint64
		u, err = strconv.ParseUint(text, 10, 16)
		v = Uint16(u)
	case KindUint32:
		var u uint64
		u, err = strconv.ParseUint(text, 10, 32)
		v = Uint32(u)
	case KindUint64:
		var u uint64
		u, err = strconv.ParseUint(text, 10, 64)
		v = Uint64(u)
	case KindFloat32:
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		v = Float32(f)
	case KindFloat64:
		var f float64
		f, err = strconv.ParseFloat(text, 64)
		v = Float64(f)
	case KindString:
		v = String(text)
	case KindHexString:
		v = HexString(text)
	case KindBytes:
		var b []byte
		b, err = base64.StdEncoding.DecodeString(text)
		v = Bytes(b)
	default:
		return nil, fmt.Errorf("%w: unsupported value kind %s", ErrInvalidArgument, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse '%s' as %s: %v", ErrInvalidArgument, text, kind, err)
	}
	return v, nil
}

// FormatValue returns the text form of v, which ParseValue accepts.
func FormatValue(v Value) (string, error) {
	switch v := v.(type) {
	case Int8:
		return strconv.FormatInt(int64(v), 10), nil
	case Int16:
		return strconv.FormatInt(int64(v), 10), nil
	case Int32:
		return strconv.FormatInt(int64(v), 10), nil
	case Int64:
		return strconv.FormatInt(int64(v), 10), nil
	case Uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case Uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case Uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case Uint64:
		return strconv.FormatUint(uint64(v), 10), nil
	case Float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case Float64:
		return strconv.FormatFloat(float64(v), 'g', -1, 64), nil
	case String:
		return string(v), nil
	case HexString:
		return string(v), nil
	case Bytes:
		return base64.StdEncoding.EncodeToString(v), nil
	}
	return "", unsupported(v)
}

// EncryptDocument screens every field of doc with Encrypt, using the field name as the key name.
func (c *Codec) EncryptDocument(doc *Document) (*Document, error) {
	return c.processDocument(doc, c.Encrypt)
}

// ConvertDocument unscreens every field of doc with Convert, using the field name as the key name.
// Float fields written by EncryptDocument come back rounded to five decimal places, unless their screened bits form a NaN.
func (c *Codec) ConvertDocument(doc *Document) (*Document, error) {
	return c.processDocument(doc, c.Convert)
}

func (c *Codec) processDocument(doc *Document, process func(string, Value) (Value, error)) (*Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidArgument)
	}
	out := &Document{
		Table:  doc.Table,
		Fields: make([]Field, len(doc.Fields)),
	}
	for i, field := range doc.Fields {
		in, err := field.Parse()
		if err != nil {
			return nil, fmt.Errorf("field '%s': %w", field.Name, err)
		}
		result, err := process(field.Name, in)
		if err != nil {
			return nil, fmt.Errorf("field '%s': %w", field.Name, err)
		}
		text, err := FormatValue(result)
		if err != nil {
			return nil, fmt.Errorf("field '%s': %w", field.Name, err)
		}
		out.Fields[i] = Field{
			Name:  field.Name,
			Kind:  field.Kind,
			Value: text,
		}
	}
	return out, nil
}
