package device

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("could not find FlashBoy Plus device")

// ErrNoWriteToken is returned by WriteChunk when called without a token
// issued by BeginProgram on the same session.
var ErrNoWriteToken = errors.New("write requires a token from BeginProgram on this session")

// NotFoundError indicates that no usable FlashBoy is attached.
// Enumeration, open and identification failures all collapse into it;
// the underlying cause is kept for diagnostics only.
type NotFoundError struct {
	Err error
}

func (e *NotFoundError) Error() string {
	return ErrNotFound.Error()
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TransportError indicates that a USB transfer failed.
type TransportError struct {
	// Op describes the transfer, e.g. "write erase command"
	Op string

	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
