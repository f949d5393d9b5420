package bundle

import (
	"archive/zip"
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/saylorsolutions/tablecrypt/pkg/xor"
	"golang.org/x/crypto/scrypt"
)

var (
	binaryOrder binary.ByteOrder = binary.BigEndian

	ErrEmptyName     = errors.New("cannot use an empty bundle name")
	ErrInvalidBundle = errors.New("unable to read bundle")
)

// Entry is a single file in a bundle.
type Entry struct {
	Name string
	Data []byte
}

// Pack will write entries to w as a bundle sealed with the password for name.
func Pack(w io.Writer, name string, entries []Entry, opts ...Opt) error {
	if len(name) == 0 {
		return ErrEmptyName
	}
	h, err := newHeader(opts...)
	if err != nil {
		return err
	}
	archive, err := zipEntries(entries)
	if err != nil {
		return err
	}

	var hbuf bytes.Buffer
	if err := h.mapper().Write(&hbuf, binaryOrder); err != nil {
		return err
	}
	salt := make([]byte, h.keySize)
	if _, err := rand.Read(salt); err != nil {
		return err
	}
	hbuf.Write(salt)

	gcm, err := h.cipher(name, salt)
	if err != nil {
		return err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	sealed := gcm.Seal(nonce, nonce, archive, hbuf.Bytes())

	if _, err := w.Write(hbuf.Bytes()); err != nil {
		return err
	}
	_, err = w.Write(sealed)
	return err
}

// Unpack will read a bundle from r, opening it with the password for name.
// A bundle packed under a different name, or one that has been modified, fails to open.
func Unpack(r io.Reader, name string) ([]Entry, error) {
	if len(name) == 0 {
		return nil, ErrEmptyName
	}
	var (
		h    header
		hbuf bytes.Buffer
	)
	tee := io.TeeReader(r, &hbuf)
	if err := h.mapper().Read(tee, binaryOrder); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	if h.magic != magic {
		return nil, fmt.Errorf("%w: not a table bundle", ErrInvalidBundle)
	}
	if h.version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrInvalidBundle, h.version)
	}
	if err := h.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	salt := make([]byte, h.keySize)
	if _, err := io.ReadFull(tee, salt); err != nil {
		return nil, fmt.Errorf("%w: missing salt: %v", ErrInvalidBundle, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	gcm, err := h.cipher(name, salt)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, fmt.Errorf("%w: payload is too short", ErrInvalidBundle)
	}
	archive, err := gcm.Open(nil, data[:nonceSize], data[nonceSize:], hbuf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	return unzipEntries(archive)
}

func (h *header) cipher(name string, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(xor.Password(name)), salt, int(h.iterations), int(h.relativeBlockSize), int(h.cpuCost), int(h.keySize))
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func zipEntries(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   entry.Name,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", entry.Name, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", entry.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unzipEntries(archive []byte) ([]Entry, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open zip entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read zip entry %s: %w", f.Name, err)
		}
		entries = append(entries, Entry{Name: f.Name, Data: data})
	}
	return entries, nil
}
