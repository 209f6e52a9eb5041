// Package capture collects output of programs in tests.
package capture

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Capture redirects *f into a pipe while calling fn and
// returns the captured output.
func Capture(f **os.File, fn func()) string {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	orig := *f
	*f = w
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		r.Close()
		done <- buf.String()
	}()
	defer func() { *f = orig }()
	fn()
	w.Close()
	return <-done
}

// CatchPanic calls fn and converts a panic into exit code 1.
// The panic message is printed to stderr.
func CatchPanic(fn func() int) (status int) {
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintln(os.Stderr, e)
			status = 1
		}
	}()
	return fn()
}
