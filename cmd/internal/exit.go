package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// EchoTarget receives all Echo output.
	EchoTarget io.Writer = os.Stderr
	exit                 = os.Exit
)

// Fatal will Echo the message and exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	exit(1)
}

// Echo will emit the given message without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(EchoTarget, msg, args...)
}
