package programmer

import (
	"fmt"

	"github.com/moffa90/go-flashboy/rom"
)

// PacketError indicates that the device did not accept a flash packet.
type PacketError struct {
	Packet int
	Err    error
}

func (e *PacketError) Error() string {
	return fmt.Sprintf("write packet %d: %v", e.Packet, e.Err)
}

func (e *PacketError) Unwrap() error {
	return e.Err
}

// GeometryError indicates that an image is laid out over a flash address
// space other than the FlashBoy's.
type GeometryError struct {
	Got  rom.Geometry
	Want rom.Geometry
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("image geometry %d x %d bytes (header %d) does not match device geometry %d x %d bytes (header %d)",
		e.Got.PacketCount, e.Got.PacketSize, e.Got.HeaderLen,
		e.Want.PacketCount, e.Want.PacketSize, e.Want.HeaderLen)
}
