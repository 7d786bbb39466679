package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// Stdin is the source identifier that selects standard input.
// A file literally named "-" must be given as "./-".
const Stdin = "-"

var (
	// ErrUnreadable matches every failure returned by Reader.Read.
	ErrUnreadable = errors.New("source unreadable")

	// ErrInvalidEncoding is the cause when content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

// ReadError wraps the underlying read failure for a source.
// It matches both ErrUnreadable and the wrapped error with errors.Is.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrUnreadable, e.Err}
}

// Reader loads the full text content of a source
type Reader struct {
	stdin io.Reader
}

// NewReader creates a Reader that serves Stdin from stdin
func NewReader(stdin io.Reader) *Reader {
	return &Reader{stdin: stdin}
}

// Read returns the whole content identified by id. Any identifier other
// than Stdin is a file path. Content must be valid UTF-8.
func (r *Reader) Read(id string) (string, error) {
	var (
		data []byte
		err  error
	)

	if id == Stdin {
		data, err = r.readStdin()
	} else {
		data, err = os.ReadFile(id)
	}
	if err != nil {
		return "", &ReadError{Source: id, Err: err}
	}

	if !utf8.Valid(data) {
		return "", &ReadError{Source: id, Err: ErrInvalidEncoding}
	}

	return string(data), nil
}

func (r *Reader) readStdin() ([]byte, error) {
	if r.stdin == nil {
		return nil, fmt.Errorf("no standard input available")
	}
	return io.ReadAll(r.stdin)
}
