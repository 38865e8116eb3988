package rom

import (
	"errors"
	"fmt"
)

// ErrConsumed is returned by Image.Packets once the image has been streamed.
// Open the ROM again to program it a second time.
var ErrConsumed = errors.New("ROM image already consumed")

// SizeError indicates that an image size is not accepted by the flash geometry.
type SizeError struct {
	Size   int64
	Reason string
	Min    int64
	Max    int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("invalid ROM size %d bytes: %s (must be a power of two greater than %d and at most %d)",
		e.Size, e.Reason, e.Min, e.Max)
}

// ReadError indicates that image data for a packet could not be read.
type ReadError struct {
	Packet int
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read ROM data for packet %d: %v", e.Packet, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
