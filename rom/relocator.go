package rom

import (
	"fmt"
	"io"
)

// Relocator produces the packets of an image in flash order, moving the
// header of a short image to the top of the address space.
// Packets are produced strictly forward; the source is never rewound.
type Relocator struct {
	img    *Image
	next   int
	header []byte
}

// Next fills buf with the next packet and returns its index.
// Returns io.EOF once every packet of the address space has been produced.
//
// Packet i is produced as:
//   - i <= HeaderPacket: image data; the trailing HeaderLen bytes of
//     HeaderPacket are saved aside when the image is relocated
//   - HeaderPacket < i < LastPacket: BlankByte filler
//   - i == LastPacket (relocated image): filler with the saved header at the end
func (r *Relocator) Next(buf []byte) (int, error) {
	g := r.img.Geometry
	if len(buf) != g.PacketSize {
		return 0, fmt.Errorf("packet buffer must be exactly %d bytes, got %d", g.PacketSize, len(buf))
	}

	idx := r.next
	if idx >= g.PacketCount {
		return 0, io.EOF
	}

	hp := r.img.HeaderPacket()
	switch {
	case idx <= hp:
		if _, err := io.ReadFull(r.img.r, buf); err != nil {
			return 0, &ReadError{Packet: idx, Err: err}
		}
		if idx == hp && r.img.Relocated() {
			r.header = make([]byte, g.HeaderLen)
			copy(r.header, buf[g.headerOffset():])
		}

	case idx < g.LastPacket():
		fill(buf, BlankByte)

	default:
		fill(buf, BlankByte)
		copy(buf[g.headerOffset():], r.header)
	}

	r.next++
	return idx, nil
}

// Remaining returns the number of packets not yet produced.
func (r *Relocator) Remaining() int {
	return r.img.Geometry.PacketCount - r.next
}

func fill(buf []byte, b byte) {
	for i := range buf {
		buf[i] = b
	}
}
