package protocol

// Packet structure constants.
const (
	// ReportID is the HID report ID prepended to every outgoing packet
	ReportID = 0x00

	// PacketSize is the size of every packet sent to or read from the device:
	// REPORT_ID(1) + PAYLOAD(64)
	PacketSize = 65

	// PayloadSize is the number of data bytes carried by one payload packet
	PayloadSize = PacketSize - 1

	// ChunkSize is the number of bytes written by one OpWrite1024 command
	ChunkSize = 1024

	// PayloadsPerChunk is the number of payload packets following an OpWrite1024 command
	PayloadsPerChunk = ChunkSize / PayloadSize
)

// Opcodes understood by the device.
const (
	// OpErase erases the whole flash; the device answers once erase is done
	OpErase Opcode = 0xA1

	// OpStartProgram switches the device into programming mode; no response
	OpStartProgram Opcode = 0xB0

	// OpWrite1024 announces the next 1024-byte chunk, sent as PayloadsPerChunk payload packets
	OpWrite1024 Opcode = 0xB4
)

// Response layout.
const (
	// ResponseEchoOffset is the position of the echoed opcode in a response
	ResponseEchoOffset = 0

	// ResponseCodeOffset is the position of the device error code in a response
	ResponseCodeOffset = 1
)
