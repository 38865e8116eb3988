// Package protocol implements the FlashBoy cartridge programmer HID protocol.
//
// This package provides functions to build command and payload packets and to
// decode response packets. It does not perform any I/O.
//
// # Protocol Overview
//
// Every packet exchanged with the device is a fixed-size HID report:
//
//	Command:  [REPORT_ID=0][OPCODE][0x00 * 63]
//	Payload:  [REPORT_ID=0][DATA(64)]
//	Response: [ECHO][CODE][...]
//
// Where:
//   - REPORT_ID is always zero
//   - OPCODE is one of OpErase (0xA1), OpStartProgram (0xB0), OpWrite1024 (0xB4)
//   - ECHO is the opcode of the command being acknowledged
//   - CODE is a device-specific error code, only meaningful when ECHO is wrong
//
// # Command Sequence
//
// Programming a cartridge is always the same linear sequence:
//
//	EncodeCommand(OpErase)         -> response expected
//	EncodeCommand(OpStartProgram)  -> no response
//	2048 times:
//	    EncodeCommand(OpWrite1024) -> no response
//	    16 x EncodePayload(...)    -> one response after the 16th payload
//
// # Response Decoding
//
// Use DecodeResponse to validate the echoed opcode:
//
//	if err := protocol.DecodeResponse(resp, protocol.OpErase); err != nil {
//	    var mm *protocol.MismatchError
//	    if errors.As(err, &mm) {
//	        fmt.Printf("device answered 0x%02X (code 0x%02X)\n", mm.Got, mm.Code)
//	    }
//	}
package protocol
