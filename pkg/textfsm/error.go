package textfsm

import (
	"errors"
	"fmt"
)

// Kinds of errors. Use errors.Is to test for them.
var (
	ErrSyntax         = errors.New("syntax error")
	ErrUndefinedValue = errors.New("undefined value")
	ErrPattern        = errors.New("invalid pattern")
	ErrMissingStart   = errors.New("missing Start state")
	ErrUndefinedState = errors.New("undefined state")

	ErrTemplateAbort = errors.New("template error action")
	ErrInternal      = errors.New("internal error")
)

// LoadError is returned if template source can't be loaded.
// Line is 0 if the error isn't related to a single line.
type LoadError struct {
	Kind error
	Line int
	Text string
	Msg  string
}

func (e *LoadError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s in line %d:\n>>%s<<", e.Msg, e.Line, e.Text)
}

func (e *LoadError) Unwrap() error { return e.Kind }

func loadErr(kind error, line int, text, format string, args ...any) error {
	return &LoadError{
		Kind: kind,
		Line: line,
		Text: text,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// ParseError aborts a parse session.
// Records emitted before the error are returned together with it.
type ParseError struct {
	Kind  error
	State string
	Line  int
	Text  string
	Msg   string
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "State Error raised"
	}
	return fmt.Sprintf("%s in state '%s', line %d:\n>>%s<<",
		msg, e.State, e.Line, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Kind }
