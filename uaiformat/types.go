package uaiformat

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates a model or evidence file did not
// match the expected token grammar (wrong counts, non-numeric field, a
// factor table whose declared size disagrees with its scope).
var ErrMalformedInput = errors.New("uaiformat: malformed input")

// ErrIoError wraps an underlying io failure while reading or writing a
// file (open, read, write, flush).
var ErrIoError = errors.New("uaiformat: io error")

func uaiErrorf(fn string, err error) error {
	return fmt.Errorf("uaiformat.%s: %w", fn, err)
}
