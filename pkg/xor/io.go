package xor

import (
	"io"
)

// Reader unscreens (or screens) everything read from an underlying source.
type Reader interface {
	io.Reader
	// Reset switches to a new source and moves back to the starting key position.
	Reset(source io.Reader)
}

// Writer screens (or unscreens) everything written before passing it to an underlying target.
type Writer interface {
	io.Writer
	// Reset switches to a new target and moves back to the starting key position.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *xorScreen
}

// NewReader constructs a Reader that will XOR all bytes read with key, starting at offset.
// The key repeats for as long as there's data, which matches the chunking behavior of Apply when offset is 0.
func NewReader(r io.Reader, key []byte, offset ...int) (Reader, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &reader{
		source: r,
		scr:    scr,
	}, nil
}

// NewNamedReader constructs a Reader using a key of keyLen bytes derived from name.
// A keyLen <= 0 uses DefaultKeyLength.
func NewNamedReader(r io.Reader, name string, keyLen int) (Reader, error) {
	if keyLen <= 0 {
		keyLen = DefaultKeyLength
	}
	return NewReader(r, DeriveKey(name, keyLen))
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	for i := 0; i < n; i++ {
		out[i] = r.scr.screen(out[i])
	}
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.scr.reset()
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	scr    *xorScreen
}

// NewWriter constructs a Writer that will XOR all bytes written with key, starting at offset.
func NewWriter(target io.Writer, key []byte, offset ...int) (Writer, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &writer{
		target: target,
		scr:    scr,
	}, nil
}

// NewNamedWriter constructs a Writer using a key of keyLen bytes derived from name.
// A keyLen <= 0 uses DefaultKeyLength.
func NewNamedWriter(w io.Writer, name string, keyLen int) (Writer, error) {
	if keyLen <= 0 {
		keyLen = DefaultKeyLength
	}
	return NewWriter(w, DeriveKey(name, keyLen))
}

func (w *writer) Write(in []byte) (n int, err error) {
	buf := make([]byte, len(in))
	for i := range in {
		buf[i] = w.scr.screen(in[i])
	}
	return w.target.Write(buf)
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.scr.reset()
}
