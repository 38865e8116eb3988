package protocol

import "fmt"

// DecodeResponse validates a response packet against the command it answers.
// Succeeds iff byte 0 equals the expected opcode.
//
// Response structure:
//
//	[ECHO][CODE][...]
//
// A wrong echo yields a *MismatchError carrying both the received echo and
// the device error code.
func DecodeResponse(resp []byte, expected Opcode) error {
	if len(resp) < ResponseCodeOffset+1 {
		return fmt.Errorf("response too short: got %d bytes, minimum is %d", len(resp), ResponseCodeOffset+1)
	}

	if resp[ResponseEchoOffset] == byte(expected) {
		return nil
	}

	return &MismatchError{
		Expected: expected,
		Got:      resp[ResponseEchoOffset],
		Code:     resp[ResponseCodeOffset],
	}
}
