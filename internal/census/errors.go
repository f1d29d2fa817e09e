package census

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds. Match them with errors.Is.
var (
	ErrFileNotFound       = errors.New("file not found")
	ErrInvalidFileType    = errors.New("invalid file type")
	ErrIncorrectHeader    = errors.New("incorrect header")
	ErrIncorrectDelimiter = errors.New("incorrect delimiter")
	ErrUnsupportedCountry = errors.New("unsupported country")
	ErrMalformedRow       = errors.New("malformed row")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrDuplicateKey       = errors.New("duplicate key")
)

// Error describes a failed load. Kind is always one of the Err* sentinels.
type Error struct {
	Kind   error
	Path   string // Input file, empty when the failure is not tied to one
	Line   int    // 1-based line number, 0 when not line-specific
	Detail string
	Err    error // Underlying cause, if any
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// at attaches file position to a row-level error produced by ParseRow or Insert.
func at(err error, path string, line int) error {
	var ce *Error
	if errors.As(err, &ce) {
		ce.Path = path
		ce.Line = line
		return ce
	}
	return &Error{Kind: ErrMalformedRow, Path: path, Line: line, Err: err}
}
