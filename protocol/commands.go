package protocol

import "fmt"

// EncodeCommand constructs a control packet for the given opcode.
//
// Packet structure:
//
//	[REPORT_ID][OPCODE][0x00 * 63]
func EncodeCommand(op Opcode) Packet {
	var pkt Packet
	pkt[0] = ReportID
	pkt[1] = byte(op)
	return pkt
}

// EncodePayload constructs a payload packet carrying PayloadSize bytes of
// image data. The opcode is written to byte 1 first and then replaced by the
// first data byte: payload packets carry raw data in that position.
//
// Packet structure:
//
//	[REPORT_ID][DATA(64)]
//
// Returns an error if data is not exactly PayloadSize bytes.
func EncodePayload(op Opcode, data []byte) (Packet, error) {
	if len(data) != PayloadSize {
		return Packet{}, fmt.Errorf("payload must be exactly %d bytes, got %d", PayloadSize, len(data))
	}

	pkt := EncodeCommand(op)
	copy(pkt[1:], data)
	return pkt, nil
}

// EncodeChunk splits a ChunkSize chunk into the PayloadsPerChunk payload
// packets that follow an OpWrite1024 command.
func EncodeChunk(chunk []byte) ([]Packet, error) {
	if len(chunk) != ChunkSize {
		return nil, fmt.Errorf("chunk must be exactly %d bytes, got %d", ChunkSize, len(chunk))
	}

	pkts := make([]Packet, 0, PayloadsPerChunk)
	for off := 0; off < ChunkSize; off += PayloadSize {
		pkt, err := EncodePayload(OpWrite1024, chunk[off:off+PayloadSize])
		if err != nil {
			return nil, err
		}
		pkts = append(pkts, pkt)
	}

	return pkts, nil
}
