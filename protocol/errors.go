package protocol

import (
	"errors"
	"fmt"
)

// MismatchError represents a response whose echoed opcode does not match the
// command that was sent.
type MismatchError struct {
	// Expected is the opcode the device should have echoed
	Expected Opcode

	// Got is the byte found in the echo position
	Got byte

	// Code is the device error code from byte 1 of the response
	Code byte
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("bad response from FlashBoy after %s command: got 0x%02X, want 0x%02X (code 0x%02X)",
		e.Expected, e.Got, byte(e.Expected), e.Code)
}

// IsMismatchError returns true if err is or wraps a *MismatchError.
func IsMismatchError(err error) bool {
	var mm *MismatchError
	return errors.As(err, &mm)
}
