package serdeconv

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"

	pkgerrors "github.com/pkg/errors"
)

// ErrorKind is the coarse category of an [Error].
type ErrorKind int

const (
	// Invalid indicates that a codec rejected its input or output, for example
	// malformed syntax, a type mismatch during decoding or a value that the
	// format cannot represent.
	Invalid ErrorKind = iota + 1

	// Other indicates that an underlying I/O operation failed, for example
	// because a file does not exist or cannot be written.
	Other
)

func (k ErrorKind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned by every conversion in this module.
type Error struct {
	// Kind is the category of the failure.
	Kind ErrorKind

	// Cause is the error produced by the codec or the I/O layer.
	Cause error

	// History is the sequence of call sites the error passed through, starting
	// with the site at which it was created.
	History pkgerrors.StackTrace
}

// NewError returns an [Error] of the given kind caused by cause.
//
// The caller's location becomes the first entry in the error's history.
func NewError(kind ErrorKind, cause error) *Error {
	return newError(kind, cause, 1)
}

func (e *Error) Error() string {
	var prefix string
	switch e.Kind {
	case Invalid:
		prefix = "invalid input"
	case Other:
		prefix = "i/o failure"
	default:
		prefix = e.Kind.String()
	}

	if e.Cause == nil {
		return prefix
	}

	return prefix + ": " + e.Cause.Error()
}

// Unwrap returns the cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// StackTrace returns the error's history.
func (e *Error) StackTrace() pkgerrors.StackTrace {
	return e.History
}

// Format implements [fmt.Formatter].
//
// The %+v verb includes the error kind and each entry of the error's history.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s (kind: %s)", e.Error(), e.Kind)
			for _, f := range e.History {
				fmt.Fprintf(s, "\n%+v", f)
			}
			return
		}
		io.WriteString(s, e.Error())
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// KindOf returns the kind of the [Error] in err's chain. ok is false if there
// is no such error.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsInvalid returns true if err is caused by an [Error] of kind [Invalid].
func IsInvalid(err error) bool {
	k, ok := KindOf(err)
	return ok && k == Invalid
}

// IsOther returns true if err is caused by an [Error] of kind [Other].
func IsOther(err error) bool {
	k, ok := KindOf(err)
	return ok && k == Other
}

var errInvalidUTF8 = errors.New("input is not valid UTF-8")

func invalid(cause error) error {
	return newError(Invalid, cause, 1)
}

func other(cause error) error {
	return newError(Other, cause, 1)
}

// newError returns a new error whose history starts at the caller skip frames
// above newError's caller.
func newError(kind ErrorKind, cause error, skip int) *Error {
	return &Error{
		Kind:    kind,
		Cause:   cause,
		History: pkgerrors.StackTrace{frameAt(skip + 1)},
	}
}

// track appends the caller's location to the history of err, if it is an
// [*Error], and passes v through unchanged.
func track[T any](v T, err error) (T, error) {
	return v, annotate(err, 2)
}

// trackErr is the single-result variant of [track].
func trackErr(err error) error {
	return annotate(err, 2)
}

// annotate returns a copy of err with an additional history entry. Errors of
// any other type are returned unchanged.
func annotate(err error, skip int) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}

	c := *e
	c.History = append(slices.Clip(e.History), frameAt(skip))
	return &c
}

// frameAt returns the frame skip levels above the caller of frameAt.
func frameAt(skip int) pkgerrors.Frame {
	var pcs [1]uintptr
	runtime.Callers(skip+2, pcs[:])
	return pkgerrors.Frame(pcs[0])
}
