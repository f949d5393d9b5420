package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/saylorsolutions/tablecrypt/cmd/internal"
	"github.com/saylorsolutions/tablecrypt/pkg/bundle"
	"github.com/saylorsolutions/tablecrypt/pkg/table"
	"github.com/saylorsolutions/tablecrypt/pkg/xor"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

var (
	version = "dev"

	errUsage = errors.New("invalid usage")
)

type options struct {
	help       bool
	verbose    bool
	decrypt    bool
	keyLength  int
	kind       string
	output     string
	iterations uint64
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			internal.Echo("%v, run with --help for usage information", err)
			os.Exit(2)
		}
		internal.Fatal("Error: %v", err)
	}
}

func newFlags(opts *options) *flag.FlagSet {
	flags := flag.NewFlagSet("tablecrypt", flag.ContinueOnError)
	flags.BoolVarP(&opts.help, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enables debug logging to stderr.")
	flags.BoolVarP(&opts.decrypt, "decrypt", "d", false, "Unscreens a table document instead of screening it.")
	flags.IntVarP(&opts.keyLength, "length", "n", xor.DefaultKeyLength, "Key length in bytes for the key and screen commands.")
	flags.StringVarP(&opts.kind, "kind", "k", "int32", "Value kind for encrypt and convert: int8-64, uint8-64, float32, float64, string, hexstring, or bytes.")
	flags.StringVarP(&opts.output, "output", "o", "-", "Output file for the table command, '-' is stdout.")
	flags.Uint64Var(&opts.iterations, "iterations", bundle.DefaultIterations, "Scrypt iterations used by the pack command, must be a power of 2.")
	return flags
}

func usage(out io.Writer, flags *flag.FlagSet) {
	_, _ = fmt.Fprintf(out, `
tablecrypt screens data table values with keys derived from their names (version %s).

USAGE:  tablecrypt COMMAND [FLAGS] ARGS

COMMANDS:
    key NAME                Prints the key derived from NAME as hex, see --length.
    password NAME           Prints the password derived from NAME.
    encrypt NAME VALUE      Screens a plain VALUE of --kind for storage under NAME.
    convert NAME VALUE      Unscreens a stored VALUE of --kind under NAME.
    table FILE              Screens every field of a YAML table document, or unscreens with --decrypt. FILE may be '-' for stdin.
    screen NAME IN OUT      Screens the file IN to OUT with a key of --length bytes derived from NAME.
    pack NAME OUT FILE...   Seals FILEs into the bundle OUT using the password derived from NAME.
    unpack NAME IN DIR      Opens the bundle IN into DIR using the password derived from NAME.

Use -- before a negative VALUE so it isn't read as a flag.

FLAGS:
%s
SECURITY:
    This is obfuscation, not encryption. Anyone who knows a name can derive its key.
`, version, flags.FlagUsages())
}

func run(args []string, stdout io.Writer) error {
	var opts options
	flags := newFlags(&opts)
	flags.Usage = func() {
		usage(stdout, flags)
	}
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	internal.SetVerbose(opts.verbose)
	if opts.help || flags.NArg() == 0 {
		flags.Usage()
		return nil
	}

	cmd, cmdArgs := flags.Arg(0), flags.Args()[1:]
	log := internal.Log.WithField("command", cmd)
	log.Debug("Running command")
	switch cmd {
	case "key":
		if err := requireArgs(cmdArgs, 1); err != nil {
			return err
		}
		if opts.keyLength <= 0 {
			return fmt.Errorf("%w: key length must be positive", errUsage)
		}
		_, err := fmt.Fprintln(stdout, hex.EncodeToString(xor.DeriveKey(cmdArgs[0], opts.keyLength)))
		return err
	case "password":
		if err := requireArgs(cmdArgs, 1); err != nil {
			return err
		}
		_, err := fmt.Fprintln(stdout, xor.Password(cmdArgs[0]))
		return err
	case "encrypt", "convert":
		if err := requireArgs(cmdArgs, 2); err != nil {
			return err
		}
		return runValue(stdout, cmd == "encrypt", opts.kind, cmdArgs[0], cmdArgs[1])
	case "table":
		if err := requireArgs(cmdArgs, 1); err != nil {
			return err
		}
		return runTable(stdout, log, opts, cmdArgs[0])
	case "screen":
		if err := requireArgs(cmdArgs, 3); err != nil {
			return err
		}
		return runScreen(log, opts.keyLength, cmdArgs[0], cmdArgs[1], cmdArgs[2])
	case "pack":
		if len(cmdArgs) < 3 {
			return fmt.Errorf("%w: pack requires NAME, OUT, and at least one FILE", errUsage)
		}
		return runPack(log, opts.iterations, cmdArgs[0], cmdArgs[1], cmdArgs[2:])
	case "unpack":
		if err := requireArgs(cmdArgs, 3); err != nil {
			return err
		}
		return runUnpack(log, cmdArgs[0], cmdArgs[1], cmdArgs[2])
	default:
		return fmt.Errorf("%w: unknown command '%s'", errUsage, cmd)
	}
}

func requireArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %d arguments, got %d", errUsage, n, len(args))
	}
	return nil
}

func runValue(stdout io.Writer, encrypt bool, kindName, name, text string) error {
	kind, err := table.ParseKind(kindName)
	if err != nil {
		return err
	}
	value, err := table.ParseValue(kind, text)
	if err != nil {
		return err
	}
	codec, err := table.NewCodec()
	if err != nil {
		return err
	}
	var result table.Value
	if encrypt {
		result, err = codec.Encrypt(name, value)
	} else {
		result, err = codec.Convert(name, value)
	}
	if err != nil {
		return err
	}
	out, err := table.FormatValue(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func runTable(stdout io.Writer, log *logrus.Entry, opts options, input string) error {
	var in io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}
	doc, err := table.ReadDocument(in)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"table":  doc.Table,
		"fields": len(doc.Fields),
	}).Debug("Read table document")

	codec, err := table.NewCodec()
	if err != nil {
		return err
	}
	var result *table.Document
	if opts.decrypt {
		result, err = codec.ConvertDocument(doc)
	} else {
		result, err = codec.EncryptDocument(doc)
	}
	if err != nil {
		return err
	}

	if opts.output == "-" {
		return result.Write(stdout)
	}
	var buf bytes.Buffer
	if err := result.Write(&buf); err != nil {
		return err
	}
	return os.WriteFile(opts.output, buf.Bytes(), 0600)
}

func runScreen(log *logrus.Entry, keyLength int, name, input, output string) error {
	if keyLength <= 0 {
		return fmt.Errorf("%w: key length must be positive", errUsage)
	}
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()
	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	w, err := xor.NewNamedWriter(out, name, keyLength)
	if err != nil {
		return err
	}
	n, err := io.Copy(w, in)
	if err != nil {
		return err
	}
	log.WithField("bytes", n).Debug("Screened file")
	return out.Close()
}

func runPack(log *logrus.Entry, iterations uint64, name, output string, files []string) error {
	entries := make([]bundle.Entry, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		entries = append(entries, bundle.Entry{
			Name: filepath.Base(file),
			Data: data,
		})
		log.WithField("file", file).Debug("Adding file to bundle")
	}
	var buf bytes.Buffer
	if err := bundle.Pack(&buf, name, entries, bundle.SetIterations(iterations)); err != nil {
		return err
	}
	return os.WriteFile(output, buf.Bytes(), 0600)
}

func runUnpack(log *logrus.Entry, name, input, dir string) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	entries, err := bundle.Unpack(f, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	for _, entry := range entries {
		target := filepath.Join(dir, filepath.Base(entry.Name))
		if err := os.WriteFile(target, entry.Data, 0600); err != nil {
			return err
		}
		log.WithField("file", target).Debug("Extracted file from bundle")
	}
	return nil
}
