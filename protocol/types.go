package protocol

import "fmt"

// Opcode is a command byte carried in byte 1 of a command packet.
// The device echoes it in byte 0 of its response on success.
type Opcode byte

// String returns the command name used in logs and error messages.
func (o Opcode) String() string {
	switch o {
	case OpErase:
		return "erase"
	case OpStartProgram:
		return "start program"
	case OpWrite1024:
		return "write"
	default:
		return fmt.Sprintf("opcode 0x%02X", byte(o))
	}
}

// Packet is one fixed-size HID report as sent on the wire.
type Packet [PacketSize]byte

// Report returns the packet without its report ID, as the device receives it.
func (p *Packet) Report() []byte {
	return p[1:]
}
