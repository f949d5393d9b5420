package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saylorsolutions/tablecrypt/pkg/table"
	"github.com/saylorsolutions/tablecrypt/pkg/xor"
	"github.com/stretchr/testify/assert"
)

func TestRun_Key(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, run([]string{"key", "-n", "4", "itemPrice"}, &out))
	assert.Equal(t, hex.EncodeToString(xor.DeriveKey("itemPrice", 4))+"\n", out.String())

	out.Reset()
	assert.NoError(t, run([]string{"password", "Excel.zip"}, &out))
	assert.Equal(t, xor.Password("Excel.zip")+"\n", out.String())
}

func TestRun_EncryptConvert(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, run([]string{"encrypt", "--kind", "int32", "itemPrice", "1500"}, &out))
	encrypted := strings.TrimSpace(out.String())

	out.Reset()
	assert.NoError(t, run([]string{"convert", "-k", "int32", "itemPrice", "--", encrypted}, &out))
	assert.Equal(t, "1500\n", out.String())

	out.Reset()
	assert.NoError(t, run([]string{"encrypt", "-k", "string", "itemName", "Ether"}, &out))
	encrypted = strings.TrimSpace(out.String())
	out.Reset()
	assert.NoError(t, run([]string{"convert", "-k", "string", "itemName", encrypted}, &out))
	assert.Equal(t, "Ether\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, run([]string{"--help"}, &out))
	assert.Contains(t, out.String(), "USAGE:")

	assert.True(t, errors.Is(run([]string{"bogus"}, &out), errUsage))
	assert.True(t, errors.Is(run([]string{"key"}, &out), errUsage))
	assert.True(t, errors.Is(run([]string{"key", "-n", "0", "name"}, &out), errUsage))
	assert.True(t, errors.Is(run([]string{"encrypt", "-k", "decimal", "a", "1"}, &out), table.ErrInvalidArgument))
}

func TestRun_Table(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "item.yaml")
	screened := filepath.Join(dir, "item.screened.yaml")
	assert.NoError(t, os.WriteFile(input, []byte("table: ItemExcel\nfields:\n  - name: itemPrice\n    kind: int32\n    value: \"1500\"\n"), 0600))

	var out bytes.Buffer
	assert.NoError(t, run([]string{"table", "-o", screened, input}, &out))
	assert.NoError(t, run([]string{"table", "-d", screened}, &out))

	doc, err := table.ReadDocument(&out)
	assert.NoError(t, err)
	assert.Equal(t, "ItemExcel", doc.Table)
	assert.Equal(t, []table.Field{{Name: "itemPrice", Kind: table.KindInt32, Value: "1500"}}, doc.Fields)
}

func TestRun_Screen(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "plain.bin")
	screened := filepath.Join(dir, "screened.bin")
	restored := filepath.Join(dir, "restored.bin")
	data := []byte("raw table contents that run past the key length")
	assert.NoError(t, os.WriteFile(input, data, 0600))

	assert.NoError(t, run([]string{"screen", "ItemExcel", input, screened}, nil))
	got, err := os.ReadFile(screened)
	assert.NoError(t, err)
	expected, err := xor.Apply(data, xor.DeriveKey("ItemExcel", xor.DefaultKeyLength))
	assert.NoError(t, err)
	assert.Equal(t, expected, got)

	assert.NoError(t, run([]string{"screen", "ItemExcel", screened, restored}, nil))
	got, err = os.ReadFile(restored)
	assert.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestRun_PackUnpack(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "ItemExcel.yaml")
	second := filepath.Join(dir, "CharacterExcel.yaml")
	packed := filepath.Join(dir, "Excel.bundle")
	outDir := filepath.Join(dir, "out")
	assert.NoError(t, os.WriteFile(first, []byte("first"), 0600))
	assert.NoError(t, os.WriteFile(second, []byte("second"), 0600))

	assert.NoError(t, run([]string{"pack", "--iterations", "16", "Excel.zip", packed, first, second}, nil))
	assert.NoError(t, run([]string{"unpack", "Excel.zip", packed, outDir}, nil))

	got, err := os.ReadFile(filepath.Join(outDir, "ItemExcel.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "first", string(got))
	got, err = os.ReadFile(filepath.Join(outDir, "CharacterExcel.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "second", string(got))

	assert.Error(t, run([]string{"unpack", "Other.zip", packed, outDir}, nil))
}
