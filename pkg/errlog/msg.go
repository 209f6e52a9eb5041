package errlog

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Quiet suppresses info messages.
var Quiet bool

// Writer of all messages, defaults to stderr.
var out io.Writer

func writer() io.Writer {
	if out == nil {
		return os.Stderr
	}
	return out
}

// SetOutput redirects messages, nil means stderr.
func SetOutput(w io.Writer) {
	out = w
}

func Info(format string, args ...any) {
	if !Quiet {
		fmt.Fprintf(writer(), format+"\n", args...)
	}
}

func Warning(format string, args ...any) {
	PrintWithMarker("WARNING>>> ", format, args...)
}

func PrintWithMarker(m string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimSuffix(msg, "\n")
	msg = strings.ReplaceAll(msg, "\n", "\n"+m)
	fmt.Fprintln(writer(), m+msg)
}
