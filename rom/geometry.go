package rom

// Flash geometry constants for the FlashBoy cartridge.
const (
	// PacketSize is the number of bytes programmed per flash packet
	PacketSize = 1024

	// PacketCount is the number of packets in the flash address space
	PacketCount = 2048

	// HeaderLen is the size of the ROM header plus interrupt vectors
	// (512 + 32 bytes) at the top of the address space
	HeaderLen = 544

	// MinSize is the exclusive lower bound for an image size (16 KiB)
	MinSize = 16 * 1024

	// MaxSize is the full flash capacity (2 MiB)
	MaxSize = PacketSize * PacketCount

	// BlankByte is the value of erased flash
	BlankByte = 0xFF
)

// Geometry describes a flash address space. Packet size, packet count and
// header placement change together: the header always occupies the last
// HeaderLen bytes of packet PacketCount-1.
type Geometry struct {
	// PacketSize is the number of bytes per packet
	PacketSize int

	// PacketCount is the number of packets in the address space
	PacketCount int

	// HeaderLen is the number of bytes relocated to the top of the address space
	HeaderLen int

	// MinSize is the exclusive lower bound for an image size
	MinSize int64
}

// FlashBoy is the geometry of the FlashBoy cartridge.
var FlashBoy = Geometry{
	PacketSize:  PacketSize,
	PacketCount: PacketCount,
	HeaderLen:   HeaderLen,
	MinSize:     MinSize,
}

// Capacity returns the size of the address space in bytes.
func (g Geometry) Capacity() int64 {
	return int64(g.PacketSize) * int64(g.PacketCount)
}

// LastPacket returns the index of the packet holding the header.
func (g Geometry) LastPacket() int {
	return g.PacketCount - 1
}

// Validate checks that an image of the given size can be programmed.
// The size must be a power of two in (MinSize, Capacity].
func (g Geometry) Validate(size int64) error {
	switch {
	case size <= g.MinSize:
		return &SizeError{Size: size, Reason: "too small", Min: g.MinSize, Max: g.Capacity()}
	case size > g.Capacity():
		return &SizeError{Size: size, Reason: "too large", Min: g.MinSize, Max: g.Capacity()}
	case size&(size-1) != 0:
		return &SizeError{Size: size, Reason: "not a power of two", Min: g.MinSize, Max: g.Capacity()}
	case size%int64(g.PacketSize) != 0:
		return &SizeError{Size: size, Reason: "not a multiple of the packet size", Min: g.MinSize, Max: g.Capacity()}
	}
	return nil
}

// HeaderPacket returns the index of the last packet carrying image data for
// an image of the given size. The size must already be validated.
func (g Geometry) HeaderPacket(size int64) int {
	return int(size/int64(g.PacketSize)) - 1
}

// headerOffset is the position of the header inside a packet.
func (g Geometry) headerOffset() int {
	return g.PacketSize - g.HeaderLen
}
